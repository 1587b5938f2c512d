// Package router contains routing setup for the HTTP delivery.
package router

import (
	"terrasense/internal/delivery/http/middleware"
	"terrasense/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	AreaHandler      *handler.AreaHandler
	SensorHandler    *handler.SensorHandler
	ReadingHandler   *handler.ReadingHandler
	DashboardHandler *handler.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	areaHandler      *handler.AreaHandler
	sensorHandler    *handler.SensorHandler
	readingHandler   *handler.ReadingHandler
	dashboardHandler *handler.DashboardHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		areaHandler:      params.AreaHandler,
		sensorHandler:    params.SensorHandler,
		readingHandler:   params.ReadingHandler,
		dashboardHandler: params.DashboardHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// User routes. Registration and login are public; the dashboard and
	// profile reads require a valid token. The static dashboard paths are
	// registered before the :id route so Echo never treats them as IDs.
	userGroup := e.Group("/users")
	{
		userGroup.POST("/register", r.userHandler.Register)
		userGroup.POST("/login", r.userHandler.Login)

		userGroup.GET("/dashboard-stats", r.dashboardHandler.GetStats, r.authMiddleware.Authenticate)
		userGroup.GET("/dashboard/temperature-trend", r.dashboardHandler.GetTemperatureTrend, r.authMiddleware.Authenticate)
		userGroup.GET("/:id", r.userHandler.GetByID, r.authMiddleware.Authenticate)
	}

	// Area routes, all ownership-scoped.
	areaGroup := e.Group("/areas")
	areaGroup.Use(r.authMiddleware.Authenticate)
	{
		areaGroup.POST("", r.areaHandler.Create)
		areaGroup.GET("", r.areaHandler.List)
		areaGroup.GET("/:id", r.areaHandler.GetByID)
		areaGroup.PUT("/:id", r.areaHandler.Update)
		areaGroup.DELETE("/:id", r.areaHandler.Delete)
	}

	// Sensor routes, all ownership-scoped. The nested data routes append to
	// and query a sensor's time series.
	sensorGroup := e.Group("/sensors")
	sensorGroup.Use(r.authMiddleware.Authenticate)
	{
		sensorGroup.POST("", r.sensorHandler.Create)
		sensorGroup.GET("", r.sensorHandler.List)
		sensorGroup.GET("/:id", r.sensorHandler.GetByID)
		sensorGroup.PUT("/:id", r.sensorHandler.Update)
		sensorGroup.DELETE("/:id", r.sensorHandler.Delete)

		sensorGroup.POST("/:sensorId/data", r.readingHandler.Add)
		sensorGroup.GET("/:sensorId/data", r.readingHandler.List)
	}
}
