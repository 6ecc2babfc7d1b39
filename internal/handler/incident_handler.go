package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/saferoute-backend-go/internal/models"
	"github.com/jengzang/saferoute-backend-go/internal/service"
	"github.com/jengzang/saferoute-backend-go/pkg/response"
)

const maxRecentLimit = 100

// IncidentHandler handles HTTP requests for user accident reports
type IncidentHandler struct {
	service      *service.IncidentService
	defaultLimit int
}

// NewIncidentHandler creates a new incident handler
func NewIncidentHandler(service *service.IncidentService, defaultLimit int) *IncidentHandler {
	return &IncidentHandler{service: service, defaultLimit: defaultLimit}
}

// ReportAccident handles POST /report/accident
func (h *IncidentHandler) ReportAccident(c *gin.Context) {
	var form models.IncidentForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, "Invalid report form", err)
		return
	}

	files := make([]*multipart.FileHeader, service.MaxAttachments)
	for i := range files {
		fh, err := c.FormFile(fmt.Sprintf("file%d", i))
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			continue
		}
		if err != nil {
			response.BadRequest(c, "Invalid attachment", err)
			return
		}
		files[i] = fh
	}

	report, err := h.service.Submit(c.Request.Context(), form, files)
	if errors.Is(err, models.ErrInvalidCoordinate) {
		response.BadRequest(c, "Invalid coordinates", err)
		return
	}
	if err != nil {
		response.InternalError(c, "Failed to submit report", err)
		return
	}

	response.Created(c, gin.H{
		"success":   true,
		"message":   fmt.Sprintf("Report submitted with %d file(s)", len(report.Files)),
		"report_id": report.ID,
	})
}

// GetRecentReports handles GET /reports/recent
func (h *IncidentHandler) GetRecentReports(c *gin.Context) {
	limit := h.defaultLimit
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			response.BadRequest(c, "Invalid limit parameter", err)
			return
		}
		limit = n
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	recent, err := h.service.Recent(c.Request.Context(), limit)
	if err != nil {
		response.InternalError(c, "Failed to get recent reports", err)
		return
	}

	response.Success(c, recent)
}
