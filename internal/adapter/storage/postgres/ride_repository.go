package postgres

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/leaflift/analytics/internal/domain"
	"github.com/leaflift/analytics/internal/ports"
)

type RideRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewRideRepository(db *gorm.DB, log *zap.Logger) ports.RideRepository {
	return &RideRepository{
		db:  db,
		log: log,
	}
}

// FindRecent loads the newest rides, restricted to the columns the
// analytics pipeline consumes.
func (r *RideRepository) FindRecent(ctx context.Context, limit int) ([]domain.RideRecord, error) {
	var rides []domain.RideRecord
	err := r.db.WithContext(ctx).
		Select("id", "created_at", "fare", "status", "is_pooled",
			"vehicle_category", "co2_saved", "co2_emissions", "distance").
		Order("created_at desc").
		Limit(limit).
		Find(&rides).Error
	if err != nil {
		return nil, err
	}
	return rides, nil
}

func (r *RideRepository) SaveBatch(ctx context.Context, rides []domain.RideRecord) error {
	if len(rides) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(rides, 500).Error
}

func (r *RideRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
