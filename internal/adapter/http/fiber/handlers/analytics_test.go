package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/leaflift/analytics/internal/domain"
	"github.com/leaflift/analytics/internal/mocks"
)

func testApp(service *mocks.MockAnalyticsService) *fiber.App {
	app := fiber.New()
	h := NewAnalyticsHandler(service, zap.NewNop())

	ml := app.Group("/api/ml")
	ml.Get("/predict-demand", h.PredictDemand)
	ml.Get("/peak-hours", h.PeakHours)
	ml.Get("/bottlenecks", h.Bottlenecks)
	ml.Get("/fleet-optimization", h.FleetOptimization)
	ml.Get("/sustainability", h.Sustainability)
	ml.Get("/health", h.Health)
	return app
}

func TestPredictDemand_PassesQueryParams(t *testing.T) {
	var gotRegion string
	var gotHours int
	service := &mocks.MockAnalyticsService{
		PredictDemandFunc: func(ctx context.Context, region string, hoursAhead int) (*domain.DemandForecast, error) {
			gotRegion, gotHours = region, hoursAhead
			return &domain.DemandForecast{Region: region, HoursAhead: hoursAhead, Model: "RandomForestRegressor"}, nil
		},
	}

	resp, err := testApp(service).Test(httptest.NewRequest("GET", "/api/ml/predict-demand?region=downtown&hours_ahead=12", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "downtown", gotRegion)
	assert.Equal(t, 12, gotHours)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var forecast domain.DemandForecast
	require.NoError(t, json.Unmarshal(body, &forecast))
	assert.Equal(t, "RandomForestRegressor", forecast.Model)
}

func TestPredictDemand_DefaultsRegionAndHorizon(t *testing.T) {
	var gotRegion string
	var gotHours int
	service := &mocks.MockAnalyticsService{
		PredictDemandFunc: func(ctx context.Context, region string, hoursAhead int) (*domain.DemandForecast, error) {
			gotRegion, gotHours = region, hoursAhead
			return &domain.DemandForecast{}, nil
		},
	}

	resp, err := testApp(service).Test(httptest.NewRequest("GET", "/api/ml/predict-demand", nil))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "all", gotRegion)
	assert.Equal(t, 24, gotHours)
}

func TestPredictDemand_RejectsOutOfRangeHorizon(t *testing.T) {
	service := &mocks.MockAnalyticsService{
		PredictDemandFunc: func(ctx context.Context, region string, hoursAhead int) (*domain.DemandForecast, error) {
			t.Fatal("invalid horizon must be rejected before the service")
			return nil, nil
		},
	}
	app := testApp(service)

	for _, horizon := range []string{"0", "-3", "169"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/ml/predict-demand?hours_ahead="+horizon, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "hours_ahead=%s", horizon)
		resp.Body.Close()
	}
}

func TestPeakHours_ServiceErrorIs500(t *testing.T) {
	service := &mocks.MockAnalyticsService{
		PeakHoursFunc: func(ctx context.Context) (*domain.PeakHourReport, error) {
			return nil, errors.New("dataset unavailable")
		},
	}

	resp, err := testApp(service).Test(httptest.NewRequest("GET", "/api/ml/peak-hours", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestHealth_ReportsBackendState(t *testing.T) {
	service := &mocks.MockAnalyticsService{
		HealthFunc: func(ctx context.Context) *domain.HealthStatus {
			return &domain.HealthStatus{Status: "ok", DataSourceConnected: false, CacheAvailable: true}
		},
	}

	resp, err := testApp(service).Test(httptest.NewRequest("GET", "/api/ml/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var status map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, false, status["data_source_connected"])
	assert.Equal(t, true, status["cache_available"])
}

func TestSustainability_SerializesSnakeCase(t *testing.T) {
	service := &mocks.MockAnalyticsService{
		SustainabilityFunc: func(ctx context.Context) (*domain.SustainabilityReport, error) {
			return &domain.SustainabilityReport{
				TotalCO2SavedKg:     12.5,
				NetReductionPct:     42.0,
				SustainabilityGrade: "A+",
			}, nil
		},
	}

	resp, err := testApp(service).Test(httptest.NewRequest("GET", "/api/ml/sustainability", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, 12.5, payload["total_co2_saved_kg"])
	assert.Equal(t, "A+", payload["sustainability_grade"])
}
