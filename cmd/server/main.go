package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"github.com/leaflift/analytics/internal/adapter/cache"
	"github.com/leaflift/analytics/internal/adapter/http/fiber/handlers"
	"github.com/leaflift/analytics/internal/adapter/http/fiber/middleware"
	"github.com/leaflift/analytics/internal/adapter/storage/postgres"
	"github.com/leaflift/analytics/internal/ports"
	"github.com/leaflift/analytics/internal/service/analytics"
	"github.com/leaflift/analytics/internal/service/dataset"
	"github.com/leaflift/analytics/pkg/config"
)

const serviceName = "leaflift-analytics"

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Starting LeafLift analytics service",
		zap.String("service", serviceName),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	// Ride store is optional: without it every snapshot is synthetic.
	var rideRepo ports.RideRepository
	if cfg.Database.URL != "" {
		db, dbErr := postgres.NewConnection(cfg.Database, logger)
		if dbErr != nil {
			logger.Warn("Ride store unavailable, running on synthetic data", zap.Error(dbErr))
		} else {
			defer postgres.Close(db)
			if migErr := postgres.RunMigrations(db); migErr != nil {
				logger.Warn("Failed to run migrations", zap.Error(migErr))
			}
			rideRepo = postgres.NewRideRepository(db, logger)
		}
	} else {
		logger.Info("No database configured, running on synthetic data")
	}

	// Result cache: Redis when configured and reachable, otherwise the
	// in-process fallback. Never fatal.
	var resultCache ports.Cache
	if cfg.Redis.URL != "" {
		redisCache, cacheErr := cache.NewRedisCache(cfg.Redis, logger)
		if cacheErr != nil {
			logger.Warn("Redis unavailable, falling back to local cache", zap.Error(cacheErr))
		} else {
			resultCache = redisCache
		}
	}
	if resultCache == nil {
		resultCache = cache.NewLocalCache(cfg.Cache.CleanupInterval, logger)
	}
	defer resultCache.Close()

	provider := dataset.NewProvider(rideRepo, cfg.Analytics.MinLiveRecords, logger)
	analyticsService := analytics.NewService(provider, resultCache, cfg.Analytics, cfg.Cache, logger)

	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		DisableStartupMessage: true,
		ReadTimeout:           cfg.HTTP.ReadTimeout,
		WriteTimeout:          cfg.HTTP.WriteTimeout,
		IdleTimeout:           cfg.HTTP.IdleTimeout,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORS.AllowedOrigins, ","),
		AllowMethods: strings.Join(cfg.CORS.AllowedMethods, ","),
		AllowHeaders: strings.Join(cfg.CORS.AllowedHeaders, ","),
	}))

	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		// Synthetic-only mode is a valid deployment, so readiness only
		// checks backends that are actually configured.
		if rideRepo != nil {
			if err := rideRepo.Ping(c.Context()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).SendString("Ride store not ready")
			}
		}
		if err := resultCache.Ping(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).SendString("Cache not ready")
		}
		return c.SendString("Ready")
	})

	if cfg.Prometheus.Enabled {
		metricsHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
		app.Get(cfg.Prometheus.Path, func(c *fiber.Ctx) error {
			metricsHandler(c.Context())
			return nil
		})
	}

	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, logger)
	ml := app.Group("/api/ml")
	ml.Get("/predict-demand", analyticsHandler.PredictDemand)
	ml.Get("/peak-hours", analyticsHandler.PeakHours)
	ml.Get("/bottlenecks", analyticsHandler.Bottlenecks)
	ml.Get("/fleet-optimization", analyticsHandler.FleetOptimization)
	ml.Get("/sustainability", analyticsHandler.Sustainability)
	ml.Get("/health", analyticsHandler.Health)

	go func() {
		logger.Info("Starting HTTP server", zap.Int("port", cfg.HTTP.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}
