// Package aggregate serves the combined sidebar payload: every taxonomy list
// the blog shell needs, in one request, independent of any active filter.
package aggregate

import (
	"github.com/gin-gonic/gin"
	"github.com/misterbista/portfolio-api/internal/models"
	"github.com/misterbista/portfolio-api/internal/modules/content/category"
	"github.com/misterbista/portfolio-api/internal/modules/content/series"
	"github.com/misterbista/portfolio-api/internal/modules/content/tag"
	"github.com/misterbista/portfolio-api/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	categorySvc *category.Service
	tagSvc      *tag.Service
	seriesSvc   *series.Service
	logger      *zap.Logger
}

func NewHandler(categorySvc *category.Service, tagSvc *tag.Service, seriesSvc *series.Service, logger *zap.Logger) *Handler {
	return &Handler{categorySvc: categorySvc, tagSvc: tagSvc, seriesSvc: seriesSvc, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, _ gin.HandlerFunc) {
	rg.GET("/aggregate", h.aggregate)
}

// aggregate GET /aggregate
//
// Each section fails open independently: a broken tag query still leaves
// categories and series usable.
func (h *Handler) aggregate(c *gin.Context) {
	categories, err := h.categorySvc.List()
	if err != nil {
		h.logger.Warn("aggregate: category list failed", zap.Error(err))
		categories = []models.CategoryModel{}
	}
	tags, err := h.tagSvc.List()
	if err != nil {
		h.logger.Warn("aggregate: tag list failed", zap.Error(err))
		tags = []models.TagModel{}
	}
	seriesList, err := h.seriesSvc.List()
	if err != nil {
		h.logger.Warn("aggregate: series list failed", zap.Error(err))
		seriesList = []series.ListItem{}
	}

	response.OK(c, gin.H{
		"categories": categories,
		"tags":       tags,
		"series":     seriesList,
	})
}
