package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Antivenom-Brazil/antivenom-app/internal/adapter/handler"
	"github.com/Antivenom-Brazil/antivenom-app/internal/adapter/repository"
	"github.com/Antivenom-Brazil/antivenom-app/internal/adapter/repository/jsonfile"
	"github.com/Antivenom-Brazil/antivenom-app/internal/adapter/repository/postgres"
	"github.com/Antivenom-Brazil/antivenom-app/internal/infrastructure/cache"
	"github.com/Antivenom-Brazil/antivenom-app/internal/infrastructure/config"
	"github.com/Antivenom-Brazil/antivenom-app/internal/infrastructure/database"
	"github.com/Antivenom-Brazil/antivenom-app/internal/infrastructure/metrics"
	"github.com/Antivenom-Brazil/antivenom-app/internal/infrastructure/middleware"
	"github.com/Antivenom-Brazil/antivenom-app/internal/infrastructure/observability"
	"github.com/Antivenom-Brazil/antivenom-app/internal/infrastructure/server"
	"github.com/Antivenom-Brazil/antivenom-app/internal/usecase/center"
	"github.com/Antivenom-Brazil/antivenom-app/internal/usecase/search"
	"github.com/Antivenom-Brazil/antivenom-app/internal/usecase/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// Center store
	var centerRepo repository.CenterRepository
	switch cfg.Data.Source {
	case config.DataSourcePostgres:
		pool, err := database.NewPostgresPool(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer pool.Close()

		if err := database.RunMigrations(ctx, pool, "migrations"); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}

		centerRepo = postgres.NewCenterRepo(pool)
	default:
		centerRepo = jsonfile.NewCenterRepo(cfg.Data.Path, logger)
	}

	// Use cases
	searchSvc := search.NewService(centerRepo)
	centerSvc := center.NewService(centerRepo)
	statsSvc := stats.NewService(centerRepo)

	// Metrics
	var metricsProvider *metrics.Provider
	if cfg.Metrics.Enabled {
		metricsProvider = metrics.New()
	}

	// Handlers
	searchHandler := handler.NewSearchHandler(searchSvc, metricsProvider)
	centerHandler := handler.NewCenterHandler(centerSvc)
	statsHandler := handler.NewStatsHandler(statsSvc)

	// Rate limiting is optional: a missing redis logs a warning and the
	// API runs unthrottled.
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			logger.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit)
		}
	}

	// Router
	router := server.NewRouter(server.RouterConfig{
		SearchHandler: searchHandler,
		CenterHandler: centerHandler,
		StatsHandler:  statsHandler,
		RateLimiter:   rateLimiter,
		Metrics:       metricsProvider,
		Logger:        logger,
		Environment:   cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
