package ports

import (
	"context"

	"github.com/leaflift/analytics/internal/domain"
)

// DatasetProvider supplies the bounded ride snapshot every computation
// starts from. Synthetic reports whether the snapshot came from the
// deterministic generator rather than the live store.
type DatasetProvider interface {
	Snapshot(ctx context.Context, limit int) (records []domain.RideRecord, synthetic bool, err error)
	Connected(ctx context.Context) bool
}

// AnalyticsService exposes the five derived views plus health.
type AnalyticsService interface {
	PredictDemand(ctx context.Context, region string, hoursAhead int) (*domain.DemandForecast, error)
	PeakHours(ctx context.Context) (*domain.PeakHourReport, error)
	Bottlenecks(ctx context.Context) (*domain.BottleneckReport, error)
	FleetOptimization(ctx context.Context) (*domain.FleetReport, error)
	Sustainability(ctx context.Context) (*domain.SustainabilityReport, error)
	Health(ctx context.Context) *domain.HealthStatus
}
