package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/saferoute-backend-go/internal/models"
	"github.com/jengzang/saferoute-backend-go/internal/service"
	"github.com/jengzang/saferoute-backend-go/pkg/response"
)

// RouteHandler handles HTTP requests for route safety and blackspots
type RouteHandler struct {
	service *service.RouteService
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(service *service.RouteService) *RouteHandler {
	return &RouteHandler{service: service}
}

// PredictRoute handles POST /predict/route
func (h *RouteHandler) PredictRoute(c *gin.Context) {
	var req models.RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid route request", err)
		return
	}

	report, err := h.service.PredictRoute(req.Origin.Location(), req.Destination.Location())
	if errors.Is(err, models.ErrInvalidCoordinate) {
		response.BadRequest(c, "Invalid coordinates", err)
		return
	}
	if err != nil {
		response.InternalError(c, "Failed to score route", err)
		return
	}

	response.Success(c, report)
}

// GetBlackspots handles GET /blackspots
func (h *RouteHandler) GetBlackspots(c *gin.Context) {
	response.Success(c, h.service.Blackspots(c.Query("zone")))
}
