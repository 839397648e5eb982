package dataset

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/leaflift/analytics/internal/domain"
	"github.com/leaflift/analytics/internal/mocks"
)

func liveRides(n int) []domain.RideRecord {
	rides := make([]domain.RideRecord, 0, n)
	base := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		rides = append(rides, domain.RideRecord{
			ID:              uuidLike(i),
			CreatedAt:       base.Add(time.Duration(i) * time.Minute),
			Fare:            75,
			Status:          domain.RideStatusCompleted,
			VehicleCategory: domain.VehicleCar,
		})
	}
	return rides
}

func uuidLike(i int) string {
	return string(rune('a'+i%26)) + "-ride"
}

func TestProvider_NilRepoServesSynthetic(t *testing.T) {
	p := NewProvider(nil, 50, zap.NewNop())

	rides, synthetic, err := p.Snapshot(context.Background(), 0)

	require.NoError(t, err)
	assert.True(t, synthetic)
	assert.Len(t, rides, 3000)
	assert.False(t, p.Connected(context.Background()))
}

func TestProvider_RepoErrorFallsBack(t *testing.T) {
	repo := &mocks.MockRideRepository{
		FindRecentFunc: func(ctx context.Context, limit int) ([]domain.RideRecord, error) {
			return nil, errors.New("connection reset")
		},
	}

	p := NewProvider(repo, 50, zap.NewNop())
	rides, synthetic, err := p.Snapshot(context.Background(), 100)

	require.NoError(t, err, "store failure is a fallback, never a request error")
	assert.True(t, synthetic)
	assert.NotEmpty(t, rides)
}

func TestProvider_SparseStoreFallsBack(t *testing.T) {
	repo := &mocks.MockRideRepository{
		FindRecentFunc: func(ctx context.Context, limit int) ([]domain.RideRecord, error) {
			return liveRides(49), nil
		},
	}

	p := NewProvider(repo, 50, zap.NewNop())
	_, synthetic, err := p.Snapshot(context.Background(), 100)

	require.NoError(t, err)
	assert.True(t, synthetic, "49 usable records is below the live threshold")
}

func TestProvider_EnoughLiveRecordsServesLive(t *testing.T) {
	live := liveRides(50)
	repo := &mocks.MockRideRepository{
		FindRecentFunc: func(ctx context.Context, limit int) ([]domain.RideRecord, error) {
			return live, nil
		},
	}

	p := NewProvider(repo, 50, zap.NewNop())
	rides, synthetic, err := p.Snapshot(context.Background(), 100)

	require.NoError(t, err)
	assert.False(t, synthetic)
	assert.Len(t, rides, 50)
}

func TestProvider_InvalidRecordsAreFilteredBeforeThreshold(t *testing.T) {
	// 50 returned rows but only 49 usable: the malformed row must not count
	// toward the live threshold.
	live := liveRides(50)
	live[10].Status = "TELEPORTING"
	repo := &mocks.MockRideRepository{
		FindRecentFunc: func(ctx context.Context, limit int) ([]domain.RideRecord, error) {
			return live, nil
		},
	}

	p := NewProvider(repo, 50, zap.NewNop())
	_, synthetic, err := p.Snapshot(context.Background(), 100)

	require.NoError(t, err)
	assert.True(t, synthetic)
}

func TestProvider_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	calls := 0
	repo := &mocks.MockRideRepository{
		FindRecentFunc: func(ctx context.Context, limit int) ([]domain.RideRecord, error) {
			calls++
			return nil, errors.New("timeout")
		},
	}

	p := NewProvider(repo, 50, zap.NewNop())
	for i := 0; i < 5; i++ {
		_, synthetic, err := p.Snapshot(context.Background(), 100)
		require.NoError(t, err)
		assert.True(t, synthetic)
	}

	assert.Equal(t, 3, calls, "breaker should stop hitting the store after three consecutive failures")
}

func TestProvider_ConnectedReflectsPing(t *testing.T) {
	repo := &mocks.MockRideRepository{
		PingFunc: func(ctx context.Context) error { return nil },
	}
	p := NewProvider(repo, 50, zap.NewNop())
	assert.True(t, p.Connected(context.Background()))

	repo.PingFunc = func(ctx context.Context) error { return errors.New("down") }
	assert.False(t, p.Connected(context.Background()))
}
