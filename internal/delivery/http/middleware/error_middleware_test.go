package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"terrasense/internal/delivery/http/response"
	domainerrors "terrasense/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runErrorMiddleware(t *testing.T, err error) (*httptest.ResponseRecorder, response.Response) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/areas/10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	NewErrorMiddleware(logger).HandleHTTPError(err, c)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return rec, resp
}

func TestErrorMiddleware_OwnershipCollapsesToNotFound(t *testing.T) {
	rec, resp := runErrorMiddleware(t, errors.Wrap(domainerrors.ErrOwnershipViolation, "area 10"))

	// The response is indistinguishable from a plain missing resource.
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	assert.Equal(t, "Resource not found", resp.Message)
}

func TestErrorMiddleware_NotFound(t *testing.T) {
	rec, resp := runErrorMiddleware(t, errors.Wrap(domainerrors.ErrNotFound, "area 99"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestErrorMiddleware_Forbidden(t *testing.T) {
	rec, resp := runErrorMiddleware(t, errors.Wrap(domainerrors.ErrForbidden, "profile 2"))

	// ErrForbidden is the non-collapsed variant and keeps its status.
	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "FORBIDDEN", resp.Error.Code)
}

func TestErrorMiddleware_EmailTaken(t *testing.T) {
	rec, resp := runErrorMiddleware(t, domainerrors.ErrEmailTaken)

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "EMAIL_TAKEN", resp.Error.Code)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec, resp := runErrorMiddleware(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "HTTP_ERROR", resp.Error.Code)
}

func TestErrorMiddleware_UnknownErrorHidesDetails(t *testing.T) {
	rec, resp := runErrorMiddleware(t, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)

	// Internal failure details never leak into the payload.
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.Equal(t, "An unexpected error occurred", resp.Error.Details)
}

func TestErrorMiddleware_CommittedResponseUntouched(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/areas/10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, c.NoContent(http.StatusNoContent))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	NewErrorMiddleware(logger).HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
