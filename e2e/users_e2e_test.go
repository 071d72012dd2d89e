package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"userapi/internal/config"
	httpserver "userapi/internal/http"
	"userapi/internal/http/controller"
	"userapi/internal/http/dto"
	"userapi/internal/metrics"
	"userapi/internal/model"
	"userapi/internal/queue"
	"userapi/internal/service/users"
	"userapi/internal/sse"
	"userapi/internal/store/memory"
)

type noopPublisher struct{}

func (n *noopPublisher) Publish(context.Context, string, []byte) error {
	return nil
}

func newServer(t *testing.T, seed ...model.User) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		HTTPAddr:        ":0",
		SSEHeartbeat:    5 * time.Second,
		OTELServiceName: "userapi",
	}
	logger := zap.NewNop()
	m := metrics.New()
	repo := memory.New(logger, seed...)
	hub := sse.NewHub()
	svc := users.NewService(cfg, repo, hub, queue.Publisher(&noopPublisher{}), m, logger)
	handler := controller.NewHandler(cfg, svc, hub, logger)
	router := httpserver.NewRouter(cfg, handler, m, logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	go svc.Run(ctx)

	server := httptest.NewServer(httpserver.NewHandler(router))
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url string, body any, out any) int {
	t.Helper()
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req, err := http.NewRequest(method, url, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestUserLifecycle(t *testing.T) {
	server := newServer(t)
	base := server.URL + "/api/users"

	var alice model.User
	status := doJSON(t, http.MethodPost, base, map[string]any{"name": "Alice", "email": "a@x.com", "age": 30}, &alice)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, model.User{ID: 1, Name: "Alice", Email: "a@x.com", Age: 30}, alice)

	var bob model.User
	status = doJSON(t, http.MethodPost, base, map[string]any{"name": "Bob", "email": "b@x.com", "age": 40}, &bob)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, uint32(2), bob.ID)

	var list dto.ListUsersResponse
	status = doJSON(t, http.MethodGet, base+"?limit=10&offset=0", nil, &list)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 2, list.Total)
	require.Equal(t, 10, list.Limit)
	require.Equal(t, 0, list.Offset)
	require.ElementsMatch(t, []model.User{alice, bob}, list.Users)

	status = doJSON(t, http.MethodGet, base+"/999", nil, nil)
	require.Equal(t, http.StatusNotFound, status)

	var updated model.User
	status = doJSON(t, http.MethodPut, base+"/1", map[string]any{"name": "Alice2", "email": "a2@x.com", "age": 31}, &updated)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, model.User{ID: 1, Name: "Alice2", Email: "a2@x.com", Age: 31}, updated)

	var fetched model.User
	status = doJSON(t, http.MethodGet, base+"/1", nil, &fetched)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, updated, fetched)

	var msg dto.MessageResponse
	status = doJSON(t, http.MethodDelete, base+"/1", nil, &msg)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "User 1 deleted successfully", msg.Message)

	list = dto.ListUsersResponse{}
	status = doJSON(t, http.MethodGet, base, nil, &list)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 1, list.Total)
	require.Equal(t, []model.User{bob}, list.Users)
}

func TestCORS(t *testing.T) {
	server := newServer(t)

	t.Run("simple request", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, server.URL+"/api/users", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", "http://example.com")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodOptions, server.URL+"/api/users/1", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", "http://example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodDelete)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Less(t, resp.StatusCode, 300)
		require.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
		require.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), http.MethodDelete)
	})
}

func TestSystemEndpoints(t *testing.T) {
	server := newServer(t)

	for _, path := range []string{"/", "/health", "/api/info"} {
		var body map[string]any
		status := doJSON(t, http.MethodGet, server.URL+path, nil, &body)
		require.Equal(t, http.StatusOK, status, path)
		require.NotEmpty(t, body, path)
	}

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
