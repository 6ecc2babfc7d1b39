package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/saferoute-backend-go/internal/config"
	"github.com/jengzang/saferoute-backend-go/internal/handler"
	"github.com/jengzang/saferoute-backend-go/internal/middleware"
	"github.com/jengzang/saferoute-backend-go/internal/repository"
	"github.com/jengzang/saferoute-backend-go/internal/service"
	"github.com/jengzang/saferoute-backend-go/pkg/response"
)

// Dependencies are the collaborators the router wires into handlers
type Dependencies struct {
	Hazards   *repository.HazardRegistry
	Incidents repository.IncidentStore
	Stats     *repository.StatsRepository
	Limiter   *middleware.RateLimiter // Guards report submission; nil disables the limit
}

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(), middleware.CORS())
	r.MaxMultipartMemory = cfg.MaxUploadMB << 20

	routeHandler := handler.NewRouteHandler(service.NewRouteService(deps.Hazards))
	incidentHandler := handler.NewIncidentHandler(service.NewIncidentService(deps.Incidents), cfg.RecentLimit)
	statsHandler := handler.NewStatsHandler(service.NewStatsService(deps.Stats, deps.Hazards, deps.Incidents))
	vizHandler := handler.NewVisualizationHandler(service.NewVisualizationService(deps.Hazards, deps.Incidents))

	reportChain := []gin.HandlerFunc{incidentHandler.ReportAccident}
	if deps.Limiter != nil {
		reportChain = append([]gin.HandlerFunc{deps.Limiter.Handler()}, reportChain...)
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "SafeRoute API is running",
		})
	})

	r.GET("/", statsHandler.GetInfo)
	r.GET("/stats", statsHandler.GetStatistics)
	r.GET("/blackspots", routeHandler.GetBlackspots)
	r.POST("/predict/route", routeHandler.PredictRoute)
	r.GET("/accidents/heatmap", vizHandler.GetHeatmap)
	r.POST("/report/accident", reportChain...)
	r.GET("/reports/recent", incidentHandler.GetRecentReports)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Endpoint not found: "+c.Request.Method+" "+c.Request.URL.Path)
	})

	return r
}
