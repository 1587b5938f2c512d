package middleware

import (
	"strings"

	"terrasense/internal/delivery/http/response"
	"terrasense/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyEmail  = "email"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stashes the caller's identity
// on the request context. The scheme comparison is case-insensitive; the
// header must be exactly two space-separated parts.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header must be a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(parts[1])
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return response.Unauthorized(c, "TOKEN_EXPIRED", "Token has expired")
			}

			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid token")
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyEmail, claims.Email)

		return next(c)
	}
}
