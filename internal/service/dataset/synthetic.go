package dataset

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/leaflift/analytics/internal/domain"
)

const (
	syntheticSeed     = 42
	syntheticRecords  = 3000
	syntheticInterval = 20 * time.Minute
)

// SyntheticGenerator produces a demonstration ride set when no live store
// is available. Output is fully determined by the seed and the reference
// time, so repeated invocations are reproducible.
type SyntheticGenerator struct {
	seed     int64
	count    int
	interval time.Duration
}

func NewSyntheticGenerator() *SyntheticGenerator {
	return NewSeededGenerator(syntheticSeed, syntheticRecords, syntheticInterval)
}

// NewSeededGenerator is the parameterized variant used by the seeder.
func NewSeededGenerator(seed int64, count int, interval time.Duration) *SyntheticGenerator {
	if count <= 0 {
		count = syntheticRecords
	}
	if interval <= 0 {
		interval = syntheticInterval
	}
	return &SyntheticGenerator{
		seed:     seed,
		count:    count,
		interval: interval,
	}
}

// Generate returns rides spaced at the generator interval, oldest first,
// ending at now. All fields are drawn from a private seeded source in a
// fixed per-record order.
func (g *SyntheticGenerator) Generate(now time.Time) []domain.RideRecord {
	rng := rand.New(rand.NewSource(g.seed))

	start := now.Add(-time.Duration(g.count-1) * g.interval)
	rides := make([]domain.RideRecord, 0, g.count)
	for i := 0; i < g.count; i++ {
		rides = append(rides, domain.RideRecord{
			ID:              syntheticID(i),
			CreatedAt:       start.Add(time.Duration(i) * g.interval),
			Fare:            rng.ExpFloat64()*120 + 30,
			Status:          sampleStatus(rng),
			IsPooled:        rng.Float64() < 0.35,
			VehicleCategory: sampleCategory(rng),
			CO2Saved:        rng.ExpFloat64() * 0.5,
			CO2Emissions:    rng.ExpFloat64() * 1.2,
		})
	}
	return rides
}

// syntheticID derives a stable UUID per position so rerunning the
// generator never produces colliding or shifting keys.
func syntheticID(i int) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("leaflift-synthetic-ride-%d", i))).String()
}

func sampleStatus(rng *rand.Rand) domain.RideStatus {
	switch p := rng.Float64(); {
	case p < 0.75:
		return domain.RideStatusCompleted
	case p < 0.90:
		return domain.RideStatusCanceled
	default:
		return domain.RideStatusSearching
	}
}

func sampleCategory(rng *rand.Rand) domain.VehicleCategory {
	switch p := rng.Float64(); {
	case p < 0.35:
		return domain.VehicleBike
	case p < 0.60:
		return domain.VehicleAuto
	case p < 0.90:
		return domain.VehicleCar
	default:
		return domain.VehicleBigCar
	}
}
