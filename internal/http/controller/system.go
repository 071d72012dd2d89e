package controller

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"userapi/internal/http/dto"
	"userapi/internal/telemetry"
)

func (h *Handler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, dto.WelcomeResponse{
		Message: "Welcome to the user API",
		Info:    "In-memory user records over JSON/HTTP",
		Author:  "DevZAKRI",
	})
}

func (h *Handler) Health(c *gin.Context) {
	now := h.now()
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "healthy",
		Timestamp: now.Format(time.RFC3339),
		Uptime:    now.Sub(h.started).Round(time.Second).String(),
	})
}

func (h *Handler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, dto.InfoResponse{
		Server:    h.cfg.OTELServiceName,
		Framework: "gin " + gin.Version,
		Version:   telemetry.ServiceVersion,
		GoVersion: runtime.Version(),
		Features: []string{
			"concurrency-safe in-memory store",
			"offset pagination",
			"server-sent user events",
			"prometheus metrics",
			"opentelemetry tracing",
		},
		Endpoints: map[string]string{
			"GET /":                 "welcome message",
			"GET /health":           "health check",
			"GET /api/users":        "list users (limit, offset)",
			"POST /api/users":       "create user",
			"GET /api/users/:id":    "get user",
			"PUT /api/users/:id":    "replace user",
			"DELETE /api/users/:id": "delete user",
			"GET /api/users/events": "user change stream",
			"GET /api/info":         "server info",
			"GET /metrics":          "prometheus metrics",
		},
	})
}
