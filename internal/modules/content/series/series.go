package series

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/misterbista/portfolio-api/internal/database"
	"github.com/misterbista/portfolio-api/internal/models"
	"github.com/misterbista/portfolio-api/internal/pkg/response"
	"github.com/misterbista/portfolio-api/internal/pkg/slugify"
	"gorm.io/gorm"
)

type CreateSeriesDTO struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type UpdateSeriesDTO struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}

// ListItem is one row of the public series listing.
type ListItem struct {
	models.SeriesModel
	PostCount int64 `json:"post_count"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns every series that has at least one published post, with its
// published member count, ordered by name.
func (s *Service) List() ([]ListItem, error) {
	var items []ListItem
	err := s.db.Model(&models.SeriesModel{}).
		Select("series.*, COUNT(posts.id) AS post_count").
		Joins("JOIN posts ON posts.series_id = series.id AND posts.published = ?", true).
		Group("series.id").
		Order("series.name ASC").
		Find(&items).Error
	return items, err
}

// GetBySlug fetches a series with its published members in reading order.
func (s *Service) GetBySlug(slug string) (*models.SeriesModel, error) {
	var sr models.SeriesModel
	if err := s.db.Where("slug = ?", slug).First(&sr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	members, err := s.Members(sr.ID)
	if err != nil {
		return nil, err
	}
	sr.Posts = members
	return &sr, nil
}

// Members returns a series' published posts ordered by series_order ascending.
func (s *Service) Members(seriesID string) ([]models.PostModel, error) {
	var posts []models.PostModel
	err := s.db.Where("series_id = ? AND published = ?", seriesID, true).
		Order("series_order ASC").
		Find(&posts).Error
	return posts, err
}

// PositionOf computes the prev/next navigation for a post inside its series.
// Posts outside any series yield nil.
func (s *Service) PositionOf(post *models.PostModel) (*Position, error) {
	if post.SeriesID == nil {
		return nil, nil
	}
	members, err := s.Members(*post.SeriesID)
	if err != nil {
		return nil, err
	}
	return Sequence(members, post.Slug), nil
}

func (s *Service) Create(dto *CreateSeriesDTO) (*models.SeriesModel, error) {
	slug := dto.Slug
	if slug == "" {
		slug = slugify.Make(dto.Name)
	}
	var count int64
	if err := s.db.Model(&models.SeriesModel{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("slug already exists")
	}
	sr := models.SeriesModel{Name: dto.Name, Slug: slug, Description: dto.Description}
	if err := s.db.Create(&sr).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return nil, fmt.Errorf("slug already exists")
		}
		return nil, err
	}
	return &sr, nil
}

func (s *Service) Update(id string, dto *UpdateSeriesDTO) (*models.SeriesModel, error) {
	var sr models.SeriesModel
	if err := s.db.First(&sr, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Slug != nil {
		updates["slug"] = *dto.Slug
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	return &sr, s.db.Model(&sr).Updates(updates).Error
}

// Delete removes a series and detaches its posts rather than deleting them.
func (s *Service) Delete(id string) error {
	s.db.Model(&models.PostModel{}).Where("series_id = ?", id).
		Updates(map[string]interface{}{"series_id": nil, "series_order": nil})
	return s.db.Delete(&models.SeriesModel{}, "id = ?", id).Error
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	sr := rg.Group("/series")
	sr.GET("", h.list)
	sr.GET("/:slug", h.getBySlug)

	a := sr.Group("", authMW)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		// public reads fail open to an empty result
		response.OK(c, []ListItem{})
		return
	}
	response.OK(c, items)
}

func (h *Handler) getBySlug(c *gin.Context) {
	sr, err := h.svc.GetBySlug(c.Param("slug"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if sr == nil {
		response.NotFoundMsg(c, "series not found")
		return
	}
	response.OK(c, sr)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateSeriesDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	sr, err := h.svc.Create(&dto)
	if err != nil {
		if err.Error() == "slug already exists" {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, sr)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateSeriesDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	sr, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if sr == nil {
		response.NotFoundMsg(c, "series not found")
		return
	}
	response.OK(c, sr)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
