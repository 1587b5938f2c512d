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

// ReadingHandler holds dependencies for sensor data ingestion and listing.
type ReadingHandler struct {
	uc     usecase.ReadingUsecase
	logger *slog.Logger
}

// NewReadingHandler is the constructor for ReadingHandler, injected by Fx.
func NewReadingHandler(uc usecase.ReadingUsecase, logger *slog.Logger) *ReadingHandler {
	return &ReadingHandler{
		uc:     uc,
		logger: logger,
	}
}

// Add handles appending a reading to an owned sensor's time series.
func (h *ReadingHandler) Add(c echo.Context) error {
	ownerID, err := authenticatedUserID(c)
	if err != nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	sensorID, ok := pathID(c, "sensorId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Sensor ID must be a positive integer")
	}

	var input *usecase.AddReadingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reading input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "A numeric value is required")
	}

	reading, err := h.uc.Add(c.Request().Context(), ownerID, sensorID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, reading, "Reading recorded successfully")
}

// List handles querying an owned sensor's readings. Supports limit and
// orderBy query parameters; defaults are newest-first with a bounded window.
func (h *ReadingHandler) List(c echo.Context) error {
	ownerID, err := authenticatedUserID(c)
	if err != nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	sensorID, ok := pathID(c, "sensorId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Sensor ID must be a positive integer")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return response.BadRequest(c, "VALIDATION_FAILED", "Limit must be a positive integer")
		}
		limit = parsed
	}

	readings, err := h.uc.List(c.Request().Context(), ownerID, sensorID, limit, c.QueryParam("orderBy"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, readings, "Readings retrieved successfully")
}
