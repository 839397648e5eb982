package dataset

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/leaflift/analytics/internal/domain"
	"github.com/leaflift/analytics/internal/observability/telemetry"
	"github.com/leaflift/analytics/internal/ports"
)

const DefaultFetchLimit = 10000

// Provider is the single data source the analytics pipeline sees. It
// reads the live store through a circuit breaker and falls back to the
// deterministic synthetic set when the store is absent, unreachable, or
// too sparse to analyze. The fallback is a supported mode, not an error.
type Provider struct {
	repo           ports.RideRepository // nil when no store is configured
	generator      *SyntheticGenerator
	breaker        *gobreaker.CircuitBreaker
	minLiveRecords int
	now            func() time.Time
	log            *zap.Logger
}

func NewProvider(repo ports.RideRepository, minLiveRecords int, log *zap.Logger) *Provider {
	if minLiveRecords <= 0 {
		minLiveRecords = 50
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:     "ride-store",
		Interval: time.Minute,
		Timeout:  30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn("Ride store breaker state changed",
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &Provider{
		repo:           repo,
		generator:      NewSyntheticGenerator(),
		breaker:        breaker,
		minLiveRecords: minLiveRecords,
		now:            time.Now,
		log:            log,
	}
}

// Snapshot returns up to limit schema-valid rides. synthetic reports the
// provenance so callers can log it; the shape of downstream results never
// depends on it.
func (p *Provider) Snapshot(ctx context.Context, limit int) ([]domain.RideRecord, bool, error) {
	if limit <= 0 {
		limit = DefaultFetchLimit
	}

	if p.repo != nil {
		if rides, ok := p.fetchLive(ctx, limit); ok {
			telemetry.SnapshotRecords.Observe(float64(len(rides)))
			return rides, false, nil
		}
	}

	rides := p.generator.Generate(p.now())
	telemetry.SyntheticFallbacksTotal.Inc()
	telemetry.SnapshotRecords.Observe(float64(len(rides)))
	return rides, true, nil
}

func (p *Provider) fetchLive(ctx context.Context, limit int) ([]domain.RideRecord, bool) {
	result, err := p.breaker.Execute(func() (interface{}, error) {
		return p.repo.FindRecent(ctx, limit)
	})
	if err != nil {
		p.log.Warn("Ride store unavailable, using synthetic dataset", zap.Error(err))
		return nil, false
	}

	rides := filterValid(result.([]domain.RideRecord))
	if len(rides) < p.minLiveRecords {
		p.log.Info("Ride store too sparse, using synthetic dataset",
			zap.Int("usable_records", len(rides)),
			zap.Int("required", p.minLiveRecords),
		)
		return nil, false
	}
	return rides, true
}

func (p *Provider) Connected(ctx context.Context) bool {
	if p.repo == nil {
		return false
	}
	return p.repo.Ping(ctx) == nil
}

// filterValid drops malformed records: missing timestamps or out-of-enum
// status/category values never reach aggregation and never fail a batch.
func filterValid(rides []domain.RideRecord) []domain.RideRecord {
	valid := rides[:0]
	for i := range rides {
		if rides[i].Valid() {
			valid = append(valid, rides[i])
		}
	}
	return valid
}
