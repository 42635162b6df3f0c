package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReactionEmoji is one of the fixed set of reactions a reader can leave.
type ReactionEmoji string

const (
	ReactionThumbsUp ReactionEmoji = "thumbs_up"
	ReactionHeart    ReactionEmoji = "heart"
	ReactionFire     ReactionEmoji = "fire"
	ReactionEyes     ReactionEmoji = "eyes"
	ReactionRocket   ReactionEmoji = "rocket"
)

// ReactionEmojis lists every accepted emoji in display order.
var ReactionEmojis = []ReactionEmoji{
	ReactionThumbsUp,
	ReactionHeart,
	ReactionFire,
	ReactionEyes,
	ReactionRocket,
}

// Valid reports whether e belongs to the fixed emoji set.
func (e ReactionEmoji) Valid() bool {
	for _, known := range ReactionEmojis {
		if e == known {
			return true
		}
	}
	return false
}

// PostReactionModel is an append-only reaction row. Counts are never stored;
// they are aggregated per (post_id, emoji) at read time.
type PostReactionModel struct {
	ID        string        `json:"id"         gorm:"type:char(36);primaryKey"`
	PostID    string        `json:"post_id"    gorm:"type:char(36);index;not null"`
	Emoji     ReactionEmoji `json:"emoji"      gorm:"type:varchar(32);index;not null"`
	CreatedAt time.Time     `json:"created_at"`
}

func (PostReactionModel) TableName() string { return "post_reactions" }

func (r *PostReactionModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
