package category

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

type CreateCategoryDTO struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug"`
}

type UpdateCategoryDTO struct {
	Name *string `json:"name"`
	Slug *string `json:"slug"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns all categories alphabetically by name.
func (s *Service) List() ([]models.CategoryModel, error) {
	var categories []models.CategoryModel
	return categories, s.db.Order("name ASC").Find(&categories).Error
}

func (s *Service) GetBySlug(slug string) (*models.CategoryModel, error) {
	var cat models.CategoryModel
	if err := s.db.Where("slug = ?", slug).First(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

func (s *Service) Create(dto *CreateCategoryDTO) (*models.CategoryModel, error) {
	slug := dto.Slug
	if slug == "" {
		slug = slugify.Make(dto.Name)
	}
	var count int64
	if err := s.db.Model(&models.CategoryModel{}).Where("slug = ? OR name = ?", slug, dto.Name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("name or slug already exists")
	}
	cat := models.CategoryModel{Name: dto.Name, Slug: slug}
	if err := s.db.Create(&cat).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return nil, fmt.Errorf("name or slug already exists")
		}
		return nil, err
	}
	return &cat, nil
}

func (s *Service) Update(id string, dto *UpdateCategoryDTO) (*models.CategoryModel, error) {
	var cat models.CategoryModel
	if err := s.db.First(&cat, "id = ?", id).Error; err != nil {
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
	return &cat, s.db.Model(&cat).Updates(updates).Error
}

// Delete removes a category and detaches its posts.
func (s *Service) Delete(id string) error {
	s.db.Model(&models.PostModel{}).Where("category_id = ?", id).Update("category_id", nil)
	return s.db.Delete(&models.CategoryModel{}, "id = ?", id).Error
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	cat := rg.Group("/categories")
	cat.GET("", h.list)

	a := cat.Group("", authMW)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	categories, err := h.svc.List()
	if err != nil {
		// public reads fail open to an empty result
		response.OK(c, []models.CategoryModel{})
		return
	}
	response.OK(c, categories)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateCategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cat, err := h.svc.Create(&dto)
	if err != nil {
		if err.Error() == "name or slug already exists" {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, cat)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateCategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cat, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if cat == nil {
		response.NotFoundMsg(c, "category not found")
		return
	}
	response.OK(c, cat)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
