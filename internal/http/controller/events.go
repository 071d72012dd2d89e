package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"userapi/internal/domain"
	"userapi/internal/model"
	"userapi/internal/sse"
)

// Events streams user change events as server-sent events. The optional
// `types` query parameter is a comma separated subset of created, updated
// and deleted.
func (h *Handler) Events(c *gin.Context) {
	types := make(map[string]struct{})
	if raw := c.Query("types"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			t = strings.TrimSpace(t)
			if !domain.IsValidUserEventType(t) {
				badRequest(c, "types must be a subset of: created, updated, deleted")
				return
			}
			types[t] = struct{}{}
		}
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		h.log.Error("streaming unsupported")
		internalError(c, "streaming unsupported")
		return
	}

	// Register before the headers go out so a client that has seen the
	// response cannot miss events broadcast afterwards.
	client := &sse.Client{
		Types: types,
		Ch:    make(chan model.UserEvent, 16),
	}
	h.hub.Register(client)
	defer h.hub.Unregister(client)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	flusher.Flush()

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case <-h.hub.Done():
			return
		case <-heartbeat.C:
			if _, err := fmt.Fprint(c.Writer, ": ping\n\n"); err != nil {
				h.log.Debug("heartbeat write failed", zap.Error(err))
				return
			}
			flusher.Flush()
		case event := <-client.Ch:
			if err := writeEvent(c.Writer, event); err != nil {
				h.log.Debug("write event failed", zap.Error(err))
				return
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, event model.UserEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: user.%s\ndata: %s\n\n", event.Type, payload)
	return err
}
