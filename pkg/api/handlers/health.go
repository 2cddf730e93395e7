package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/urmzd/homeview/pkg/api/types"
	"github.com/urmzd/homeview/pkg/entity"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	source entity.Source
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(source entity.Source) *HealthHandler {
	return &HealthHandler{source: source}
}

// Health handles GET /health
// @Summary      Health check
// @Description  Returns the health status of the service and its storage
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.HealthResponse  "Service is healthy"
// @Failure      503  {object}  types.HealthResponse  "Service is degraded"
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	status, storage, httpStatus := "healthy", "connected", http.StatusOK
	if err := h.source.Ping(c.Request.Context()); err != nil {
		status, storage, httpStatus = "degraded", "disconnected", http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, types.HealthResponse{
		Status:    status,
		Storage:   storage,
		Timestamp: time.Now(),
	})
}
