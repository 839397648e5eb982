package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/leaflift/analytics/internal/adapter/storage/postgres"
	"github.com/leaflift/analytics/internal/service/dataset"
	"github.com/leaflift/analytics/pkg/config"
)

// Seeder fills the ride store with generated traffic so the live data
// path can be exercised without a production dump.
func main() {
	count := flag.Int("count", 5000, "number of rides to insert")
	seed := flag.Int64("seed", time.Now().UnixNano(), "generator seed")
	intervalMin := flag.Int("interval", 20, "minutes between consecutive rides")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	if cfg.Database.URL == "" {
		logger.Fatal("DATABASE_URL is required to seed the ride store")
	}

	db, err := postgres.NewConnection(cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer postgres.Close(db)

	if err := postgres.RunMigrations(db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	generator := dataset.NewSeededGenerator(*seed, *count, time.Duration(*intervalMin)*time.Minute)
	rides := generator.Generate(time.Now())
	// Fresh primary keys so repeated seeding appends instead of colliding.
	for i := range rides {
		rides[i].ID = uuid.NewString()
	}

	repo := postgres.NewRideRepository(db, logger)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := repo.SaveBatch(ctx, rides); err != nil {
		logger.Fatal("Failed to insert rides", zap.Error(err))
	}

	logger.Info("Seeded ride store",
		zap.Int("rides", len(rides)),
		zap.Int64("seed", *seed),
	)
}
