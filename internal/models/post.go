package models

// PostModel is a blog post. Content is stored as markdown; rendering happens
// at read time in the markdown processing module.
type PostModel struct {
	Base
	Title       string         `json:"title"        gorm:"not null"`
	Slug        string         `json:"slug"         gorm:"uniqueIndex;not null"`
	Excerpt     string         `json:"excerpt"`
	Content     string         `json:"content"      gorm:"type:longtext"`
	Published   bool           `json:"published"    gorm:"default:false;index"`
	CategoryID  *string        `json:"category_id"  gorm:"type:char(36);index"`
	Category    *CategoryModel `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	SeriesID    *string        `json:"series_id"    gorm:"type:char(36);index"`
	Series      *SeriesModel   `json:"series,omitempty"   gorm:"foreignKey:SeriesID"`
	SeriesOrder *int           `json:"series_order"`
	ViewCount   int            `json:"view_count"   gorm:"default:0"`

	Tags []TagModel `json:"tags,omitempty" gorm:"many2many:post_tags;joinForeignKey:PostID;joinReferences:TagID"`
}

func (PostModel) TableName() string { return "posts" }
