package handler

import (
	"log/slog"
	"net/http"

	"terrasense/internal/delivery/http/response"
	"terrasense/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AreaHandler holds dependencies for area-related handlers.
type AreaHandler struct {
	uc     usecase.AreaUsecase
	logger *slog.Logger
}

// NewAreaHandler is the constructor for AreaHandler, injected by Fx.
func NewAreaHandler(uc usecase.AreaUsecase, logger *slog.Logger) *AreaHandler {
	return &AreaHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the area creation request.
func (h *AreaHandler) Create(c echo.Context) error {
	ownerID, err := authenticatedUserID(c)
	if err != nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var input *usecase.CreateAreaInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid area input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Name and areaType are required")
	}

	area, err := h.uc.Create(c.Request().Context(), ownerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, area, "Area created successfully")
}

// List handles listing the caller's areas.
func (h *AreaHandler) List(c echo.Context) error {
	ownerID, err := authenticatedUserID(c)
	if err != nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	areas, err := h.uc.List(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, areas, "Areas retrieved successfully")
}

// GetByID handles fetching a single owned area.
func (h *AreaHandler) GetByID(c echo.Context) error {
	ownerID, err := authenticatedUserID(c)
	if err != nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	areaID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Area ID must be a positive integer")
	}

	area, err := h.uc.GetByID(c.Request().Context(), ownerID, areaID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, area, "Area retrieved successfully")
}

// Update handles a partial update of an owned area.
func (h *AreaHandler) Update(c echo.Context) error {
	ownerID, err := authenticatedUserID(c)
	if err != nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	areaID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Area ID must be a positive integer")
	}

	var patch *usecase.AreaPatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid area patch")
	}

	area, err := h.uc.Update(c.Request().Context(), ownerID, areaID, patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, area, "Area updated successfully")
}

// Delete handles removing an owned area.
func (h *AreaHandler) Delete(c echo.Context) error {
	ownerID, err := authenticatedUserID(c)
	if err != nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	areaID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Area ID must be a positive integer")
	}

	if err := h.uc.Delete(c.Request().Context(), ownerID, areaID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
