package tag

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/misterbista/portfolio-api/internal/models"
	"github.com/misterbista/portfolio-api/internal/pkg/response"
	"github.com/misterbista/portfolio-api/internal/pkg/slugify"
	"gorm.io/gorm"
)

// Service handles tag business logic, including the post↔tag association
// sync used by post create and update.
type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns all tags ordered alphabetically by name.
func (s *Service) List() ([]models.TagModel, error) {
	var tags []models.TagModel
	return tags, s.db.Order("name ASC").Find(&tags).Error
}

// GetBySlug fetches a single tag by slug.
func (s *Service) GetBySlug(slug string) (*models.TagModel, error) {
	var t models.TagModel
	if err := s.db.Where("slug = ?", slug).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// CreateOrGet resolves a tag name to a tag row, matching existing tags
// case-insensitively so "Go" and "go" never become two tags. New tags get a
// derived slug.
func (s *Service) CreateOrGet(name string) (*models.TagModel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("tag name is required")
	}

	var t models.TagModel
	err := s.db.Where("LOWER(name) = ?", strings.ToLower(name)).First(&t).Error
	if err == nil {
		return &t, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	t = models.TagModel{Name: name, Slug: slugify.Make(name)}
	if err := s.db.Create(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// Delete removes a tag and detaches it from every post.
func (s *Service) Delete(id string) error {
	s.db.Delete(&models.PostTagModel{}, "tag_id = ?", id)
	return s.db.Delete(&models.TagModel{}, "id = ?", id).Error
}

// ForPost returns the tags currently associated with a post, alphabetically.
func (s *Service) ForPost(postID string) ([]models.TagModel, error) {
	var tags []models.TagModel
	err := s.db.Model(&models.TagModel{}).
		Joins("JOIN post_tags ON post_tags.tag_id = tags.id").
		Where("post_tags.post_id = ?", postID).
		Order("tags.name ASC").
		Find(&tags).Error
	return tags, err
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	t := rg.Group("/tags")
	t.GET("", h.list)

	a := t.Group("", authMW)
	a.POST("", h.create)
	a.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	tags, err := h.svc.List()
	if err != nil {
		// public reads fail open to an empty result
		response.OK(c, []models.TagModel{})
		return
	}
	response.OK(c, tags)
}

type createTagDTO struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handler) create(c *gin.Context) {
	var dto createTagDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	t, err := h.svc.CreateOrGet(dto.Name)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, t)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
