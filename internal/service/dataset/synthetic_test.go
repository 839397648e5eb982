package dataset

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var refTime = time.Date(2025, time.March, 12, 15, 0, 0, 0, time.UTC)

func TestSyntheticGenerator_Deterministic(t *testing.T) {
	gen := NewSyntheticGenerator()

	first := gen.Generate(refTime)
	second := gen.Generate(refTime)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("two generations from the same seed and reference time must be identical")
	}
}

func TestSyntheticGenerator_ShapeAndSpacing(t *testing.T) {
	gen := NewSyntheticGenerator()

	rides := gen.Generate(refTime)

	assert.Len(t, rides, 3000)
	assert.True(t, rides[len(rides)-1].CreatedAt.Equal(refTime), "newest ride ends at the reference time")

	for i := 1; i < len(rides); i++ {
		gap := rides[i].CreatedAt.Sub(rides[i-1].CreatedAt)
		if gap != 20*time.Minute {
			t.Fatalf("ride %d spaced %v from predecessor, want 20m", i, gap)
		}
	}
}

func TestSyntheticGenerator_AllRecordsValid(t *testing.T) {
	rides := NewSyntheticGenerator().Generate(refTime)

	seen := make(map[string]struct{}, len(rides))
	for i := range rides {
		if !rides[i].Valid() {
			t.Fatalf("record %d fails validation: %+v", i, rides[i])
		}
		if rides[i].Fare < 30 {
			t.Fatalf("record %d fare %v below floor", i, rides[i].Fare)
		}
		if _, dup := seen[rides[i].ID]; dup {
			t.Fatalf("duplicate synthetic ID %s", rides[i].ID)
		}
		seen[rides[i].ID] = struct{}{}
	}
}

func TestNewSeededGenerator_ParameterOverrides(t *testing.T) {
	gen := NewSeededGenerator(7, 10, time.Hour)

	rides := gen.Generate(refTime)

	assert.Len(t, rides, 10)
	assert.Equal(t, time.Hour, rides[1].CreatedAt.Sub(rides[0].CreatedAt))

	other := NewSeededGenerator(8, 10, time.Hour).Generate(refTime)
	assert.NotEqual(t, rides[0].Fare, other[0].Fare, "different seeds must draw different values")
}
