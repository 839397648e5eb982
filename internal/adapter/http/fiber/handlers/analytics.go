package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/leaflift/analytics/internal/ports"
)

type AnalyticsHandler struct {
	service ports.AnalyticsService
	log     *zap.Logger
}

func NewAnalyticsHandler(service ports.AnalyticsService, log *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		log:     log,
	}
}

// PredictDemand handles GET /api/ml/predict-demand?region=all&hours_ahead=24
func (h *AnalyticsHandler) PredictDemand(c *fiber.Ctx) error {
	region := c.Query("region", "all")
	hoursAhead := c.QueryInt("hours_ahead", 24)
	if hoursAhead <= 0 || hoursAhead > 168 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "hours_ahead must be between 1 and 168"})
	}

	forecast, err := h.service.PredictDemand(c.Context(), region, hoursAhead)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(forecast)
}

// PeakHours handles GET /api/ml/peak-hours
func (h *AnalyticsHandler) PeakHours(c *fiber.Ctx) error {
	report, err := h.service.PeakHours(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// Bottlenecks handles GET /api/ml/bottlenecks
func (h *AnalyticsHandler) Bottlenecks(c *fiber.Ctx) error {
	report, err := h.service.Bottlenecks(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// FleetOptimization handles GET /api/ml/fleet-optimization
func (h *AnalyticsHandler) FleetOptimization(c *fiber.Ctx) error {
	report, err := h.service.FleetOptimization(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// Sustainability handles GET /api/ml/sustainability
func (h *AnalyticsHandler) Sustainability(c *fiber.Ctx) error {
	report, err := h.service.Sustainability(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// Health handles GET /api/ml/health; degraded backends change provenance,
// never the response shape.
func (h *AnalyticsHandler) Health(c *fiber.Ctx) error {
	return c.JSON(h.service.Health(c.Context()))
}
