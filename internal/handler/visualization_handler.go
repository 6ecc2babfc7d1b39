package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/saferoute-backend-go/internal/service"
	"github.com/jengzang/saferoute-backend-go/pkg/response"
)

// VisualizationHandler handles HTTP requests for visualization data
type VisualizationHandler struct {
	service *service.VisualizationService
}

// NewVisualizationHandler creates a new visualization handler
func NewVisualizationHandler(service *service.VisualizationService) *VisualizationHandler {
	return &VisualizationHandler{service: service}
}

// GetHeatmap handles GET /accidents/heatmap
func (h *VisualizationHandler) GetHeatmap(c *gin.Context) {
	switch format := c.DefaultQuery("format", "json"); format {
	case "json":
		heatmap, err := h.service.Heatmap(c.Request.Context())
		if err != nil {
			response.InternalError(c, "Failed to build heatmap", err)
			return
		}
		response.Success(c, heatmap)

	case "geojson":
		fc, err := h.service.HeatmapGeoJSON(c.Request.Context())
		if err != nil {
			response.InternalError(c, "Failed to build heatmap", err)
			return
		}
		data, err := fc.MarshalJSON()
		if err != nil {
			response.InternalError(c, "Failed to encode heatmap", err)
			return
		}
		c.Data(http.StatusOK, "application/geo+json", data)

	default:
		response.BadRequest(c, "Unsupported format: "+format, nil)
	}
}
