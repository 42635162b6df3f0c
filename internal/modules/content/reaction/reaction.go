package reaction

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/misterbista/portfolio-api/internal/models"
	"github.com/misterbista/portfolio-api/internal/pkg/response"
	"gorm.io/gorm"
)

// Service handles post reactions. Rows are append-only; counts are always
// aggregated at read time, never stored.
type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Add appends one reaction to a post.
func (s *Service) Add(postID string, emoji models.ReactionEmoji) error {
	return s.db.Create(&models.PostReactionModel{PostID: postID, Emoji: emoji}).Error
}

// Counts aggregates reactions per emoji for a post. Every known emoji is
// present in the result, zero when nobody reacted with it.
func (s *Service) Counts(postID string) (map[models.ReactionEmoji]int64, error) {
	type row struct {
		Emoji models.ReactionEmoji
		Count int64
	}
	var rows []row
	err := s.db.Model(&models.PostReactionModel{}).
		Select("emoji, COUNT(*) AS count").
		Where("post_id = ?", postID).
		Group("emoji").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.ReactionEmoji]int64, len(models.ReactionEmojis))
	for _, e := range models.ReactionEmojis {
		counts[e] = 0
	}
	for _, r := range rows {
		if r.Emoji.Valid() {
			counts[r.Emoji] = r.Count
		}
	}
	return counts, nil
}

// postExists checks the post table without loading the row.
func (s *Service) postExists(id string) (bool, error) {
	var count int64
	err := s.db.Model(&models.PostModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (s *Service) postIDBySlug(slug string) (string, error) {
	var post models.PostModel
	err := s.db.Select("id").
		Where("slug = ? AND published = ?", slug, true).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return post.ID, nil
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts reaction routes under the posts tree. Both routes are
// public; reacting needs no account.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, _ gin.HandlerFunc) {
	posts := rg.Group("/posts")
	posts.GET("/:slug/reactions", h.counts)
	posts.POST("/:slug/reactions", h.add)
}

type addReactionDTO struct {
	Emoji models.ReactionEmoji `json:"emoji" binding:"required"`
}

func (h *Handler) add(c *gin.Context) {
	var dto addReactionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !dto.Emoji.Valid() {
		response.UnprocessableEntity(c, "unknown reaction emoji")
		return
	}

	postID := c.Param("slug")
	ok, err := h.svc.postExists(postID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !ok {
		// the frontend sends the post id, but accept a slug too
		if postID, err = h.svc.postIDBySlug(postID); err != nil {
			response.InternalError(c, err)
			return
		}
		if postID == "" {
			response.NotFoundMsg(c, "post not found")
			return
		}
	}

	if err := h.svc.Add(postID, dto.Emoji); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{"post_id": postID, "emoji": dto.Emoji})
}

func (h *Handler) counts(c *gin.Context) {
	postID, err := h.svc.postIDBySlug(c.Param("slug"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if postID == "" {
		response.NotFoundMsg(c, "post not found")
		return
	}
	counts, err := h.svc.Counts(postID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"post_id": postID, "counts": counts})
}
