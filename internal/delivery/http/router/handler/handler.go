// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	"terrasense/internal/delivery/http/middleware"
	"terrasense/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// errNoIdentity signals a request that slipped past the auth middleware
// without a usable identity. It should never happen on a wired router.
var errNoIdentity = errors.New("authenticated user ID missing from context")

// authenticatedUserID extracts the caller's ID set by the auth middleware.
func authenticatedUserID(c echo.Context) (int64, error) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(int64)
	if !ok {
		return 0, errNoIdentity
	}

	return userID, nil
}

// pathID parses a numeric path parameter. Non-numeric values are a client
// error, not a lookup miss.
func pathID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
