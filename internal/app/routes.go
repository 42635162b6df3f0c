package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/misterbista/portfolio-api/internal/middleware"
	"github.com/misterbista/portfolio-api/internal/modules/auth"
	"github.com/misterbista/portfolio-api/internal/modules/content/category"
	"github.com/misterbista/portfolio-api/internal/modules/content/post"
	"github.com/misterbista/portfolio-api/internal/modules/content/reaction"
	"github.com/misterbista/portfolio-api/internal/modules/content/series"
	"github.com/misterbista/portfolio-api/internal/modules/content/tag"
	"github.com/misterbista/portfolio-api/internal/modules/stats/aggregate"
	"github.com/misterbista/portfolio-api/internal/pkg/response"
	"go.uber.org/zap"
)

const apiPrefix = "/api/v1"

func (a *App) registerRoutes() {
	r := a.router
	db := a.db
	authMW := middleware.Auth()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	appInfo := gin.H{
		"name":     "portfolio-api",
		"version":  "1.0.0",
		"homepage": "https://github.com/misterbista/portfolio-api",
	}

	api := r.Group(apiPrefix)
	api.Use(middleware.OptionalAuth())
	api.Use(middleware.RateLimit(a.rc.Raw()))
	api.Use(middleware.HTTPCache(a.rc.Raw(), middleware.HTTPCacheOptions{
		TTL:       15 * time.Second,
		Disable:   a.cfg.IsDev(),
		SkipPaths: httpCacheSkipPaths(apiPrefix),
	}))
	api.Use(a.purgeCacheOnWrite())

	api.GET("", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })

	// Shared services
	tagSvc := tag.NewService(db)
	categorySvc := category.NewService(db)
	seriesSvc := series.NewService(db)
	postSvc := post.NewService(db, tagSvc)
	reactionSvc := reaction.NewService(db)

	gate := auth.NewGate(a.cfg.AdminUser, time.Duration(a.cfg.AuthTimeoutSeconds)*time.Second)

	post.NewHandler(postSvc, seriesSvc, a.logger).RegisterRoutes(api, authMW)
	reaction.NewHandler(reactionSvc).RegisterRoutes(api, authMW)
	category.NewHandler(categorySvc).RegisterRoutes(api, authMW)
	series.NewHandler(seriesSvc).RegisterRoutes(api, authMW)
	tag.NewHandler(tagSvc).RegisterRoutes(api, authMW)
	aggregate.NewHandler(categorySvc, tagSvc, seriesSvc, a.logger).RegisterRoutes(api, authMW)
	auth.NewHandler(a.cfg, gate, a.logger).RegisterRoutes(api, authMW)
}

// httpCacheSkipPaths lists responses that must never come from the shared
// cache: auth and admin payloads differ per caller, and the post detail
// increments its view counter on every render, so a cached detail hit would
// swallow increments for the whole TTL. The listing stays cacheable.
func httpCacheSkipPaths(prefix string) []string {
	return []string{
		prefix + "/auth*",
		prefix + "/admin*",
		prefix + "/posts/*",
	}
}

// purgeCacheOnWrite drops the shared response cache after any successful
// mutation so the public surface never serves a stale page for the full TTL.
func (a *App) purgeCacheOnWrite() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.Request.Method == http.MethodGet {
			return
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if _, err := middleware.PurgeHTTPCache(ctx, a.rc.Raw()); err != nil {
				a.logger.Warn("cache purge failed", zap.Error(err))
			}
		}()
	}
}
