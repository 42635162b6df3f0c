package models

// SeriesModel is an ordered collection of posts meant to be read in sequence.
// Member posts carry the ranking in PostModel.SeriesOrder.
type SeriesModel struct {
	Base
	Name        string `json:"name"        gorm:"not null"`
	Slug        string `json:"slug"        gorm:"uniqueIndex;not null"`
	Description string `json:"description"`

	Posts []PostModel `json:"posts,omitempty" gorm:"foreignKey:SeriesID"`
}

func (SeriesModel) TableName() string { return "series" }
