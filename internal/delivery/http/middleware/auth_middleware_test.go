package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"terrasense/internal/delivery/http/response"
	"terrasense/internal/domain/service"
	mockService "terrasense/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthMiddleware(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, bool, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/areas", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := NewAuthMiddleware(tokenSvc).Authenticate(func(c echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, reached, c
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)

	return resp.Error.Code
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken("good-token").
		Return(&service.Claims{UserID: 42, Email: "alice@example.com"}, nil)

	rec, reached, c := runAuthMiddleware(t, tokenSvc, "Bearer good-token")

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), c.Get(ContextKeyUserID))
	assert.Equal(t, "alice@example.com", c.Get(ContextKeyEmail))
}

func TestAuthMiddleware_SchemeCaseInsensitive(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken("good-token").
		Return(&service.Claims{UserID: 42}, nil)

	_, reached, _ := runAuthMiddleware(t, tokenSvc, "bearer good-token")

	assert.True(t, reached)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)

	rec, reached, _ := runAuthMiddleware(t, tokenSvc, "")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", decodeErrorCode(t, rec))
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)

	for _, header := range []string{"good-token", "Basic abc123", "Bearer one two"} {
		rec, reached, _ := runAuthMiddleware(t, tokenSvc, header)

		assert.False(t, reached, "header %q should be rejected", header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHENTICATED", decodeErrorCode(t, rec))
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken("stale-token").
		Return(nil, errors.Wrap(service.ErrTokenExpired, "token is expired"))

	rec, reached, _ := runAuthMiddleware(t, tokenSvc, "Bearer stale-token")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_EXPIRED", decodeErrorCode(t, rec))
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken("forged-token").
		Return(nil, errors.Wrap(service.ErrTokenInvalid, "signature is invalid"))

	rec, reached, _ := runAuthMiddleware(t, tokenSvc, "Bearer forged-token")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_INVALID", decodeErrorCode(t, rec))
}
