package ports

import (
	"context"

	"github.com/leaflift/analytics/internal/domain"
)

// RideRepository reads ride transactions from the persistent store.
type RideRepository interface {
	// FindRecent returns up to limit rides, newest first, restricted to the
	// analytics schema fields.
	FindRecent(ctx context.Context, limit int) ([]domain.RideRecord, error)
	SaveBatch(ctx context.Context, rides []domain.RideRecord) error
	Ping(ctx context.Context) error
}
