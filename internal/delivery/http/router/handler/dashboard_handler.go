package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"terrasense/internal/delivery/http/response"
	"terrasense/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler holds dependencies for per-user aggregation endpoints.
type DashboardHandler struct {
	uc     usecase.DashboardUsecase
	logger *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetStats handles the dashboard statistics request.
func (h *DashboardHandler) GetStats(c echo.Context) error {
	ownerID, err := authenticatedUserID(c)
	if err != nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	stats, err := h.uc.GetStats(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Dashboard stats retrieved successfully")
}

// GetTemperatureTrend handles the temperature trend request. An optional
// limit query parameter overrides the configured window.
func (h *DashboardHandler) GetTemperatureTrend(c echo.Context) error {
	ownerID, err := authenticatedUserID(c)
	if err != nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return response.BadRequest(c, "VALIDATION_FAILED", "Limit must be a positive integer")
		}
		limit = parsed
	}

	trend, err := h.uc.GetTemperatureTrend(c.Request().Context(), ownerID, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, trend, "Temperature trend retrieved successfully")
}
