package handler

import (
	"log/slog"
	"net/http"

	"terrasense/internal/delivery/http/response"
	"terrasense/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SensorHandler holds dependencies for sensor-related handlers.
type SensorHandler struct {
	uc     usecase.SensorUsecase
	logger *slog.Logger
}

// NewSensorHandler is the constructor for SensorHandler, injected by Fx.
func NewSensorHandler(uc usecase.SensorUsecase, logger *slog.Logger) *SensorHandler {
	return &SensorHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the sensor creation request.
func (h *SensorHandler) Create(c echo.Context) error {
	ownerID, err := authenticatedUserID(c)
	if err != nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var input *usecase.CreateSensorInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sensor input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Name, type and areaId are required")
	}

	sensor, err := h.uc.Create(c.Request().Context(), ownerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, sensor, "Sensor created successfully")
}

// List handles listing the caller's sensors.
func (h *SensorHandler) List(c echo.Context) error {
	ownerID, err := authenticatedUserID(c)
	if err != nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	sensors, err := h.uc.List(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sensors, "Sensors retrieved successfully")
}

// GetByID handles fetching a single owned sensor.
func (h *SensorHandler) GetByID(c echo.Context) error {
	ownerID, err := authenticatedUserID(c)
	if err != nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	sensorID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Sensor ID must be a positive integer")
	}

	sensor, err := h.uc.GetByID(c.Request().Context(), ownerID, sensorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sensor, "Sensor retrieved successfully")
}

// Update handles a partial update of an owned sensor.
func (h *SensorHandler) Update(c echo.Context) error {
	ownerID, err := authenticatedUserID(c)
	if err != nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	sensorID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Sensor ID must be a positive integer")
	}

	var patch *usecase.SensorPatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sensor patch")
	}

	sensor, err := h.uc.Update(c.Request().Context(), ownerID, sensorID, patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sensor, "Sensor updated successfully")
}

// Delete handles removing an owned sensor together with its readings.
func (h *SensorHandler) Delete(c echo.Context) error {
	ownerID, err := authenticatedUserID(c)
	if err != nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	sensorID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Sensor ID must be a positive integer")
	}

	if err := h.uc.Delete(c.Request().Context(), ownerID, sensorID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
