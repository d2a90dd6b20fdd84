package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Antivenom-Brazil/antivenom-app/internal/adapter/handler"
	"github.com/Antivenom-Brazil/antivenom-app/internal/infrastructure/metrics"
	"github.com/Antivenom-Brazil/antivenom-app/internal/infrastructure/middleware"
)

type Router struct {
	engine        *gin.Engine
	searchHandler *handler.SearchHandler
	centerHandler *handler.CenterHandler
	statsHandler  *handler.StatsHandler
	rateLimiter   *middleware.RateLimiter
	metrics       *metrics.Provider
	logger        *zap.Logger
}

type RouterConfig struct {
	SearchHandler *handler.SearchHandler
	CenterHandler *handler.CenterHandler
	StatsHandler  *handler.StatsHandler
	RateLimiter   *middleware.RateLimiter
	Metrics       *metrics.Provider
	Logger        *zap.Logger
	Environment   string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:        engine,
		searchHandler: cfg.SearchHandler,
		centerHandler: cfg.CenterHandler,
		statsHandler:  cfg.StatsHandler,
		rateLimiter:   cfg.RateLimiter,
		metrics:       cfg.Metrics,
		logger:        cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS())

	if r.rateLimiter != nil {
		r.engine.Use(r.rateLimiter.Limit())
	}
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if r.metrics != nil {
		r.engine.GET("/metrics", gin.WrapH(r.metrics.Handler()))
	}

	api := r.engine.Group("/api/v1")
	{
		centers := api.Group("/centers")
		{
			centers.GET("/nearest", r.searchHandler.Nearest)
			centers.GET("", r.centerHandler.List)
			centers.GET("/:id", r.centerHandler.Get)
		}

		api.GET("/filters", r.centerHandler.Filters)
		api.GET("/stats", r.statsHandler.Summary)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
