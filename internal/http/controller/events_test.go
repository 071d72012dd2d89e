package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"userapi/internal/config"
	"userapi/internal/metrics"
	"userapi/internal/queue"
	"userapi/internal/service/users"
	"userapi/internal/sse"
	"userapi/internal/store/memory"
)

func setupEventsRouter(t *testing.T, cfg *config.Config) (*gin.Engine, *Handler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	hub := sse.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	svc := users.NewService(cfg, memory.New(logger), hub, queue.Publisher(noopPublisher{}), metrics.New(), logger)
	handler := NewHandler(cfg, svc, hub, logger)

	router := gin.New()
	router.GET("/api/users/events", handler.Events)
	return router, handler
}

func TestEventsController(t *testing.T) {
	t.Run("unset heartbeat falls back to default", func(t *testing.T) {
		router, handler := setupEventsRouter(t, &config.Config{})
		require.Equal(t, defaultSSEHeartbeat, handler.heartbeat)

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()
		req := httptest.NewRequest(http.MethodGet, "/api/users/events", nil).WithContext(ctx)
		rec := httptest.NewRecorder()

		require.NotPanics(t, func() { router.ServeHTTP(rec, req) })
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	})

	t.Run("configured heartbeat is kept", func(t *testing.T) {
		_, handler := setupEventsRouter(t, &config.Config{SSEHeartbeat: 2 * time.Second})
		require.Equal(t, 2*time.Second, handler.heartbeat)
	})

	t.Run("unknown type", func(t *testing.T) {
		router, _ := setupEventsRouter(t, &config.Config{})
		rec := performRequest(t, router, http.MethodGet, "/api/users/events?types=created,renamed", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
