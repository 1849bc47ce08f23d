// Package server exposes the scheduler over HTTP. The API is a thin
// transport shell: it binds and validates the request body, hands the flat
// task list to the schedule package, and maps the scheduler's error kinds to
// status codes. No state survives a request.
package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with all routes and middleware attached.
func NewRouter(logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger(logger))

	router.GET("/health", handleHealth)

	v1 := router.Group("/v1")
	v1.POST("/schedule", handleSchedule)

	return router
}
