package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/brainbridge/catalog-gateway/api/swagger"
	"github.com/brainbridge/catalog-gateway/internal/handler"
	"github.com/brainbridge/catalog-gateway/internal/middleware"
	"github.com/brainbridge/catalog-gateway/internal/repository"
	"github.com/brainbridge/catalog-gateway/internal/service"
	"github.com/brainbridge/catalog-gateway/internal/upstream"
	"github.com/brainbridge/catalog-gateway/pkg/cache"
	"github.com/brainbridge/catalog-gateway/pkg/config"
	"github.com/brainbridge/catalog-gateway/pkg/logger"
	corsmiddleware "github.com/brainbridge/catalog-gateway/pkg/middleware/cors"
	reqidmiddleware "github.com/brainbridge/catalog-gateway/pkg/middleware/requestid"
)

// @title BrainBridge Catalog Gateway
// @version 0.1.0
// @description BFF for the course catalog: views, filters, pagination, bookmarks
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	cacheEnabled := false
	if cfg.Catalog.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, catalog cache disabled", "error", err)
		} else {
			repo := repository.NewCacheRepository(redisClient, logr)
			defer repo.Close() //nolint:errcheck
			cacheRepo = repo
			cacheEnabled = true
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Catalog.CacheTTL, logr, cacheEnabled)

	upstreamClient := upstream.NewClient(cfg.Upstream, logr)
	upstreamClient.SetObserver(metrics)

	catalogSvc := service.NewCatalogService(upstreamClient, cacheSvc, cfg.Catalog.CacheTTL, logr)
	bookmarkSvc := service.NewBookmarkService(upstreamClient, metrics, cfg.Views.RedirectDelay, logr)
	viewSvc := service.NewViewService(catalogSvc, bookmarkSvc, metrics, service.ViewServiceConfig{
		PageSize:      cfg.Catalog.PageSize,
		ViewTTL:       cfg.Views.TTL,
		SweepInterval: cfg.Views.SweepInterval,
		NotifyTTL:     cfg.Views.NotifyTTL,
		RedirectDelay: cfg.Views.RedirectDelay,
	}, logr)
	accountSvc := service.NewAccountService(upstreamClient, cfg.Views.RedirectDelay, logr)
	contactSvc := service.NewContactService(upstreamClient, validator.New(), logr)

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	viewSvc.StartSweeper(sweepCtx)

	viewHandler := handler.NewViewHandler(viewSvc)
	accountHandler := handler.NewAccountHandler(accountSvc)
	contactHandler := handler.NewContactHandler(contactSvc)
	metricsHandler := handler.NewMetricsHandler(metrics)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(middleware.BearerToken())
	r.Use(logger.GinMiddleware(logr, middleware.LogFields))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/catalog/views", viewHandler.Create)
		api.GET("/catalog/views/:id", viewHandler.Get)
		api.DELETE("/catalog/views/:id", viewHandler.Delete)
		api.POST("/catalog/views/:id/search", viewHandler.Search)
		api.POST("/catalog/views/:id/category", viewHandler.Category)
		api.POST("/catalog/views/:id/filters", viewHandler.ToggleFilter)
		api.DELETE("/catalog/views/:id/filters", viewHandler.ClearFilters)
		api.POST("/catalog/views/:id/page", viewHandler.SetPage)
		api.POST("/catalog/views/:id/page/next", viewHandler.NextPage)
		api.POST("/catalog/views/:id/page/previous", viewHandler.PrevPage)
		api.POST("/catalog/views/:id/bookmarks/:courseId", viewHandler.ToggleBookmark)
		api.DELETE("/catalog/views/:id/notification", viewHandler.DismissNotification)

		api.GET("/profile", accountHandler.Profile)
		api.POST("/contacts", contactHandler.Submit)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "upstream", cfg.Upstream.BaseURL)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
