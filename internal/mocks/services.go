package mocks

import (
	"context"

	"github.com/leaflift/analytics/internal/domain"
)

// MockAnalyticsService is a func-field mock of ports.AnalyticsService.
type MockAnalyticsService struct {
	PredictDemandFunc     func(ctx context.Context, region string, hoursAhead int) (*domain.DemandForecast, error)
	PeakHoursFunc         func(ctx context.Context) (*domain.PeakHourReport, error)
	BottlenecksFunc       func(ctx context.Context) (*domain.BottleneckReport, error)
	FleetOptimizationFunc func(ctx context.Context) (*domain.FleetReport, error)
	SustainabilityFunc    func(ctx context.Context) (*domain.SustainabilityReport, error)
	HealthFunc            func(ctx context.Context) *domain.HealthStatus
}

func (m *MockAnalyticsService) PredictDemand(ctx context.Context, region string, hoursAhead int) (*domain.DemandForecast, error) {
	if m.PredictDemandFunc != nil {
		return m.PredictDemandFunc(ctx, region, hoursAhead)
	}
	return &domain.DemandForecast{}, nil
}

func (m *MockAnalyticsService) PeakHours(ctx context.Context) (*domain.PeakHourReport, error) {
	if m.PeakHoursFunc != nil {
		return m.PeakHoursFunc(ctx)
	}
	return &domain.PeakHourReport{}, nil
}

func (m *MockAnalyticsService) Bottlenecks(ctx context.Context) (*domain.BottleneckReport, error) {
	if m.BottlenecksFunc != nil {
		return m.BottlenecksFunc(ctx)
	}
	return &domain.BottleneckReport{}, nil
}

func (m *MockAnalyticsService) FleetOptimization(ctx context.Context) (*domain.FleetReport, error) {
	if m.FleetOptimizationFunc != nil {
		return m.FleetOptimizationFunc(ctx)
	}
	return &domain.FleetReport{}, nil
}

func (m *MockAnalyticsService) Sustainability(ctx context.Context) (*domain.SustainabilityReport, error) {
	if m.SustainabilityFunc != nil {
		return m.SustainabilityFunc(ctx)
	}
	return &domain.SustainabilityReport{}, nil
}

func (m *MockAnalyticsService) Health(ctx context.Context) *domain.HealthStatus {
	if m.HealthFunc != nil {
		return m.HealthFunc(ctx)
	}
	return &domain.HealthStatus{Status: "ok"}
}
