package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"userapi/internal/config"
	"userapi/internal/http/dto"
	"userapi/internal/http/resp"
	"userapi/internal/service/users"
	"userapi/internal/sse"
)

const defaultSSEHeartbeat = 15 * time.Second

type Handler struct {
	cfg       *config.Config
	svc       *users.Service
	hub       *sse.Hub
	log       *zap.Logger
	heartbeat time.Duration
	started   time.Time
	now       func() time.Time
}

func NewHandler(cfg *config.Config, svc *users.Service, hub *sse.Hub, logger *zap.Logger) *Handler {
	now := func() time.Time { return time.Now().UTC() }
	heartbeat := cfg.SSEHeartbeat
	if heartbeat <= 0 {
		heartbeat = defaultSSEHeartbeat
	}
	return &Handler{cfg: cfg, svc: svc, hub: hub, log: logger, heartbeat: heartbeat, started: now(), now: now}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: message})
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, dto.ErrorResponse{Code: resp.CodeNotFound, Message: message})
}

func internalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Code: resp.CodeInternalError, Message: message})
}

// bindingMessage turns a gin binding error into a client-facing message.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid json"
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return fmt.Sprintf("missing required fields: %s", strings.Join(fields, ", "))
}

func parseID(c *gin.Context) (uint32, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		badRequest(c, "invalid id: must be an unsigned integer")
		return 0, false
	}
	return uint32(id), true
}

// queryUint reads an optional non-negative integer query parameter.
func queryUint(c *gin.Context, name string, fallback int) (int, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return fallback, true
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		badRequest(c, name+" must be a non-negative integer")
		return 0, false
	}
	return int(n), true
}
