package mocks

import (
	"context"

	"github.com/leaflift/analytics/internal/domain"
)

// MockRideRepository is a func-field mock of ports.RideRepository.
type MockRideRepository struct {
	FindRecentFunc func(ctx context.Context, limit int) ([]domain.RideRecord, error)
	SaveBatchFunc  func(ctx context.Context, rides []domain.RideRecord) error
	PingFunc       func(ctx context.Context) error
}

func (m *MockRideRepository) FindRecent(ctx context.Context, limit int) ([]domain.RideRecord, error) {
	if m.FindRecentFunc != nil {
		return m.FindRecentFunc(ctx, limit)
	}
	return nil, nil
}

func (m *MockRideRepository) SaveBatch(ctx context.Context, rides []domain.RideRecord) error {
	if m.SaveBatchFunc != nil {
		return m.SaveBatchFunc(ctx, rides)
	}
	return nil
}

func (m *MockRideRepository) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// MockDatasetProvider is a func-field mock of ports.DatasetProvider.
type MockDatasetProvider struct {
	SnapshotFunc  func(ctx context.Context, limit int) ([]domain.RideRecord, bool, error)
	ConnectedFunc func(ctx context.Context) bool
}

func (m *MockDatasetProvider) Snapshot(ctx context.Context, limit int) ([]domain.RideRecord, bool, error) {
	if m.SnapshotFunc != nil {
		return m.SnapshotFunc(ctx, limit)
	}
	return nil, false, nil
}

func (m *MockDatasetProvider) Connected(ctx context.Context) bool {
	if m.ConnectedFunc != nil {
		return m.ConnectedFunc(ctx)
	}
	return false
}
