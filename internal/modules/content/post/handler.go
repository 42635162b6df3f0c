package post

import (
	"github.com/gin-gonic/gin"
	"github.com/misterbista/portfolio-api/internal/middleware"
	"github.com/misterbista/portfolio-api/internal/modules/content/series"
	"github.com/misterbista/portfolio-api/internal/pkg/pagination"
	"github.com/misterbista/portfolio-api/internal/pkg/response"
	"go.uber.org/zap"
)

// Handler handles post HTTP requests.
type Handler struct {
	svc       *Service
	seriesSvc *series.Service
	logger    *zap.Logger
}

func NewHandler(svc *Service, seriesSvc *series.Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, seriesSvc: seriesSvc, logger: logger}
}

// RegisterRoutes mounts post routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	posts := rg.Group("/posts")
	posts.GET("", h.list)
	posts.GET("/:slug", h.getBySlug)

	authed := posts.Group("", authMW)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.PATCH("/:id", h.update) // admin UI sends PATCH for partial edits
	authed.DELETE("/:id", h.delete)

	rg.Group("/admin", authMW).GET("/posts", h.adminList)
}

// list GET /posts
//
// Store errors fail open: visitors get an empty page, never a 500.
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)

	var lq ListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	posts, pag, err := h.svc.List(q, lq)
	if err != nil {
		h.logger.Warn("post listing failed, serving empty page", zap.Error(err))
		response.Paged(c, []postListItem{}, pagination.Meta(0, q))
		return
	}

	items := make([]postListItem, len(posts))
	for i, p := range posts {
		items[i] = toListItem(&p)
	}
	response.Paged(c, items, pag)
}

// getBySlug GET /posts/:slug
//
// Draft posts stay invisible to visitors but resolve for the signed-in admin.
// A store failure degrades to not-found so the public surface never 500s.
func (h *Handler) getBySlug(c *gin.Context) {
	post, err := h.svc.GetBySlug(c.Param("slug"), middleware.IsAuthenticated(c))
	if err != nil {
		h.logger.Warn("post detail read failed", zap.String("slug", c.Param("slug")), zap.Error(err))
		response.NotFoundMsg(c, "post not found")
		return
	}
	if post == nil {
		response.NotFoundMsg(c, "post not found")
		return
	}

	pos, err := h.seriesSvc.PositionOf(post)
	if err != nil {
		h.logger.Warn("series position lookup failed", zap.String("post", post.ID), zap.Error(err))
	}

	go func() { _ = h.svc.IncrementViewCount(post.ID) }()

	response.OK(c, toDetail(post, pos))
}

// adminList GET /admin/posts  [auth]
func (h *Handler) adminList(c *gin.Context) {
	q := pagination.AdminFromContext(c)

	posts, pag, err := h.svc.AdminList(q)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	items := make([]postListItem, len(posts))
	for i, p := range posts {
		items[i] = toListItem(&p)
	}
	response.Paged(c, items, pag)
}

// create POST /posts  [auth]
func (h *Handler) create(c *gin.Context) {
	var dto CreatePostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.svc.Create(&dto)
	if err != nil {
		switch err.Error() {
		case "slug already exists":
			response.Conflict(c, err.Error())
		case "title is required", "a slug could not be derived from the title":
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.Created(c, toDetail(post, nil))
}

// update PUT /posts/:id  [auth]
func (h *Handler) update(c *gin.Context) {
	var dto UpdatePostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		switch err.Error() {
		case "slug already exists":
			response.Conflict(c, err.Error())
		case "title is required", "a slug could not be derived from the title":
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	if post == nil {
		response.NotFoundMsg(c, "post not found")
		return
	}

	response.OK(c, toDetail(post, nil))
}

// delete DELETE /posts/:id  [auth]
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
