package server

import (
	"github.com/labstack/echo/v4"

	"example.com/fitness-planner/backend/internal/handlers"
)

func registerRoutes(e *echo.Echo, optimizeHandler *handlers.OptimizeHandler, optimizeRateLimiter echo.MiddlewareFunc) {
	e.GET("/health", handlers.Health)

	api := e.Group("/api/v1")
	api.POST("/optimize", optimizeHandler.Optimize, optimizeRateLimiter)
}
