package middleware

import (
	"log/slog"
	"net/http"

	"terrasense/internal/delivery/http/response"
	domainerrors "terrasense/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Ownership violations leave the boundary as plain not-found so the
	// existence of other users' resources is never confirmed.
	if errors.Is(err, domainerrors.ErrOwnershipViolation) {
		m.writeError(c, domainerrors.ErrNotFound)

		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.writeError(c, appErr)

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		//nolint:errcheck // the response writer error has nowhere to go
		c.JSON(httpErr.Code, response.Response{
			Success: false,
			Code:    httpErr.Code,
			Message: message,
			Error: &response.ErrorInfo{
				Code:    "HTTP_ERROR",
				Details: message,
			},
		})

		return
	}

	// Default to internal error, log details and return a generic message.
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	//nolint:errcheck // the response writer error has nowhere to go
	c.JSON(http.StatusInternalServerError, response.Response{
		Success: false,
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
		Error: &response.ErrorInfo{
			Code:    "INTERNAL_ERROR",
			Details: "An unexpected error occurred",
		},
	})
}

func (m *ErrorMiddleware) writeError(c echo.Context, appErr domainerrors.AppError) {
	if appErr.HTTPCode() >= http.StatusInternalServerError {
		m.logger.Error("Request failed",
			"error", appErr.Error(),
			"errorCode", appErr.ErrorCode(),
			"path", c.Request().URL.Path,
			"method", c.Request().Method,
		)
	}

	//nolint:errcheck // the response writer error has nowhere to go
	c.JSON(appErr.HTTPCode(), response.Response{
		Success: false,
		Code:    appErr.HTTPCode(),
		Message: appErr.Message(),
		Error: &response.ErrorInfo{
			Code:    appErr.ErrorCode(),
			Details: appErr.Details(),
		},
	})
}
