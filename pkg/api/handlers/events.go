package handlers

import (
	"encoding/json"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/urmzd/homeview/pkg/entity"
)

// heartbeatInterval is how often an idle event stream sends a heartbeat.
var heartbeatInterval = 30 * time.Second

// EventsHandler streams entity change events
type EventsHandler struct {
	subscriber entity.EventSubscriber
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(subscriber entity.EventSubscriber) *EventsHandler {
	return &EventsHandler{subscriber: subscriber}
}

// Events handles GET /events (SSE stream)
// @Summary      Subscribe to entity events
// @Description  Server-Sent Events stream of entity_updated and entity_removed notifications
// @Tags         events
// @Produce      text/event-stream
// @Success      200  {string}  string  "SSE event stream"
// @Router       /events [get]
func (h *EventsHandler) Events(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	eventChan := h.subscriber.Subscribe()
	defer h.subscriber.Unsubscribe(eventChan)

	sendSSEEvent(c.Writer, "connected", map[string]any{
		"timestamp": time.Now(),
		"message":   "Connected to entity event stream",
	})
	c.Writer.Flush()

	clientGone := c.Request.Context().Done()

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-clientGone:
			return

		case event, ok := <-eventChan:
			if !ok {
				return
			}
			sendSSEEvent(c.Writer, event.Type, event)
			c.Writer.Flush()

		case <-ticker.C:
			sendSSEEvent(c.Writer, "heartbeat", map[string]any{
				"timestamp": time.Now(),
			})
			c.Writer.Flush()
		}
	}
}

// sendSSEEvent writes an SSE event to the response
func sendSSEEvent(w io.Writer, eventType string, data any) {
	jsonData, _ := json.Marshal(data)
	_, _ = io.WriteString(w, "event: "+eventType+"\n")
	_, _ = io.WriteString(w, "data: "+string(jsonData)+"\n\n")
}
