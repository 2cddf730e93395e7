package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urmzd/homeview/pkg/api/types"
	"github.com/urmzd/homeview/pkg/route"
)

// RoutesHandler exposes the page route table
type RoutesHandler struct {
	routes   []route.Route
	basePath string
}

// NewRoutesHandler creates a new routes handler
func NewRoutesHandler(routes []route.Route, basePath string) *RoutesHandler {
	return &RoutesHandler{routes: routes, basePath: basePath}
}

// Routes handles GET /routes
// @Summary      Route table
// @Description  Returns the navigable page routes in evaluation order
// @Tags         routes
// @Produce      json
// @Success      200  {object}  types.RoutesResponse
// @Router       /routes [get]
func (h *RoutesHandler) Routes(c *gin.Context) {
	c.JSON(http.StatusOK, types.RoutesResponse{
		BasePath: h.basePath,
		Routes:   h.routes,
	})
}
