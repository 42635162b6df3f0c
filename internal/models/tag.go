package models

// TagModel labels posts. Names are unique case-insensitively; the service
// layer resolves duplicate-name creates to the existing tag.
type TagModel struct {
	Base
	Name string `json:"name" gorm:"uniqueIndex;not null"`
	Slug string `json:"slug" gorm:"uniqueIndex;not null"`
}

func (TagModel) TableName() string { return "tags" }

// PostTagModel is the post↔tag association row. Existence means "post is
// tagged"; there is no payload. Rows are written only by the tag sync engine.
type PostTagModel struct {
	PostID string `json:"post_id" gorm:"type:char(36);primaryKey"`
	TagID  string `json:"tag_id"  gorm:"type:char(36);primaryKey"`
}

func (PostTagModel) TableName() string { return "post_tags" }
