package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jengzang/saferoute-backend-go/internal/service"
	"github.com/jengzang/saferoute-backend-go/pkg/response"
)

// APIVersion is reported by the service info endpoint
const APIVersion = "2.0.0"

// StatsHandler handles HTTP requests for statistics
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(service *service.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetStatistics handles GET /stats
func (h *StatsHandler) GetStatistics(c *gin.Context) {
	stats, err := h.service.Statistics(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to get statistics", err)
		return
	}

	response.Success(c, stats)
}

// GetInfo handles GET /
func (h *StatsHandler) GetInfo(c *gin.Context) {
	blackspots, reports, err := h.service.Overview(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to get service info", err)
		return
	}

	response.Success(c, gin.H{
		"message":          "Nagpur Traffic Accident Prediction API",
		"version":          APIVersion,
		"status":           "active",
		"total_blackspots": blackspots,
		"user_reports":     reports,
		"endpoints": []string{
			"/blackspots", "/stats", "/predict/route", "/accidents/heatmap", "/report/accident", "/reports/recent",
		},
	})
}
