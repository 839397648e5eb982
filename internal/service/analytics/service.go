package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/leaflift/analytics/internal/domain"
	"github.com/leaflift/analytics/internal/observability/telemetry"
	"github.com/leaflift/analytics/internal/ports"
	"github.com/leaflift/analytics/pkg/config"
)

// Deterministic cache keys per operation; parameterized operations embed
// their parameters.
const (
	keyPeakHours      = "ml:peak-hours"
	keyBottlenecks    = "ml:bottlenecks"
	keyFleet          = "ml:fleet-opt"
	keySustainability = "ml:sustainability"
)

func demandKey(region string, hoursAhead int) string {
	return fmt.Sprintf("ml:demand:%s:%d", region, hoursAhead)
}

// Service derives the five analytics views from ride snapshots. Every view
// is recomputed from scratch on a cache miss; concurrent misses for the
// same key just recompute redundantly, which is safe because the
// computation is idempotent over the snapshot.
type Service struct {
	provider ports.DatasetProvider
	cache    ports.Cache // optional capability, may be nil
	cfg      config.AnalyticsConfig
	ttls     config.CacheConfig

	// fitSlots bounds concurrent CPU-heavy computations so a burst of
	// cache misses cannot starve cache-hit requests.
	fitSlots chan struct{}

	now func() time.Time
	log *zap.Logger
}

func NewService(provider ports.DatasetProvider, cache ports.Cache, cfg config.AnalyticsConfig, ttls config.CacheConfig, log *zap.Logger) *Service {
	slots := cfg.MaxConcurrentFit
	if slots <= 0 {
		slots = 4
	}
	return &Service{
		provider: provider,
		cache:    cache,
		cfg:      cfg,
		ttls:     ttls,
		fitSlots: make(chan struct{}, slots),
		now:      time.Now,
		log:      log,
	}
}

func (s *Service) PredictDemand(ctx context.Context, region string, hoursAhead int) (*domain.DemandForecast, error) {
	if region == "" {
		region = "all"
	}
	if hoursAhead <= 0 {
		hoursAhead = s.cfg.DefaultHorizon
	}
	if hoursAhead <= 0 {
		hoursAhead = 24
	}

	key := demandKey(region, hoursAhead)
	var cached domain.DemandForecast
	if s.cacheGet(ctx, "demand", key, &cached) {
		return &cached, nil
	}

	rides, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var forecast *domain.DemandForecast
	s.withFitSlot("demand", func() {
		forecast = forecastDemand(rides, region, hoursAhead, s.cfg.ForestSize, s.cfg.ForestDepth, s.now())
	})

	s.cacheSet(ctx, key, forecast, s.ttls.DemandTTL)
	return forecast, nil
}

func (s *Service) PeakHours(ctx context.Context) (*domain.PeakHourReport, error) {
	var cached domain.PeakHourReport
	if s.cacheGet(ctx, "peak-hours", keyPeakHours, &cached) {
		return &cached, nil
	}

	rides, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var report *domain.PeakHourReport
	s.withFitSlot("peak-hours", func() {
		report = buildPeakHourReport(rides)
	})

	s.cacheSet(ctx, keyPeakHours, report, s.ttls.PeakHoursTTL)
	return report, nil
}

func (s *Service) Bottlenecks(ctx context.Context) (*domain.BottleneckReport, error) {
	var cached domain.BottleneckReport
	if s.cacheGet(ctx, "bottlenecks", keyBottlenecks, &cached) {
		return &cached, nil
	}

	rides, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var report *domain.BottleneckReport
	s.withFitSlot("bottlenecks", func() {
		report = buildBottleneckReport(rides)
	})

	s.cacheSet(ctx, keyBottlenecks, report, s.ttls.BottlenecksTTL)
	return report, nil
}

func (s *Service) FleetOptimization(ctx context.Context) (*domain.FleetReport, error) {
	var cached domain.FleetReport
	if s.cacheGet(ctx, "fleet", keyFleet, &cached) {
		return &cached, nil
	}

	rides, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var report *domain.FleetReport
	s.withFitSlot("fleet", func() {
		report = buildFleetReport(rides)
	})

	s.cacheSet(ctx, keyFleet, report, s.ttls.FleetTTL)
	return report, nil
}

func (s *Service) Sustainability(ctx context.Context) (*domain.SustainabilityReport, error) {
	var cached domain.SustainabilityReport
	if s.cacheGet(ctx, "sustainability", keySustainability, &cached) {
		return &cached, nil
	}

	rides, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var report *domain.SustainabilityReport
	s.withFitSlot("sustainability", func() {
		report = buildSustainabilityReport(rides)
	})

	s.cacheSet(ctx, keySustainability, report, s.ttls.SustainabilityTTL)
	return report, nil
}

// Health is never cached.
func (s *Service) Health(ctx context.Context) *domain.HealthStatus {
	return &domain.HealthStatus{
		Status:              "ok",
		DataSourceConnected: s.provider.Connected(ctx),
		CacheAvailable:      s.cache != nil && s.cache.Ping() == nil,
	}
}

func (s *Service) snapshot(ctx context.Context) ([]domain.RideRecord, error) {
	rides, synthetic, err := s.provider.Snapshot(ctx, s.cfg.FetchLimit)
	if err != nil {
		return nil, err
	}
	if synthetic {
		s.log.Debug("Serving analytics from synthetic dataset", zap.Int("records", len(rides)))
	}
	return rides, nil
}

// withFitSlot runs fn on the calling goroutine once a compute slot is
// free, and records its duration.
func (s *Service) withFitSlot(view string, fn func()) {
	s.fitSlots <- struct{}{}
	defer func() { <-s.fitSlots }()

	start := time.Now()
	fn()
	telemetry.ComputationDuration.WithLabelValues(view).Observe(time.Since(start).Seconds())
}

// cacheGet treats every cache failure, absence, and decode error as a
// plain miss; the cache is an optional capability and never on the error
// path.
func (s *Service) cacheGet(ctx context.Context, view, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	payload, err := s.cache.Get(ctx, key)
	if err != nil || payload == "" {
		telemetry.CacheMissesTotal.WithLabelValues(view).Inc()
		return false
	}
	if err := json.Unmarshal([]byte(payload), dest); err != nil {
		s.log.Warn("Discarding undecodable cache entry", zap.String("key", key), zap.Error(err))
		telemetry.CacheMissesTotal.WithLabelValues(view).Inc()
		return false
	}
	telemetry.CacheHitsTotal.WithLabelValues(view).Inc()
	return true
}

// cacheSet is best effort: a failed write only costs a future
// recomputation.
func (s *Service) cacheSet(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		s.log.Warn("Failed to encode result for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(payload), ttl); err != nil {
		s.log.Warn("Failed to write result cache", zap.String("key", key), zap.Error(err))
	}
}
