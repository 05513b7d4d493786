package analytics

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"reinsure/internal/domain/lead"
	"reinsure/internal/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handler handles analytics HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates analytics handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetAnalytics handles GET /api/analytics
// @Summary Lead analytics
// @Description Summary counts and breakdowns by campaign, source, service, day and status
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param startDate query string false "Start date (YYYY-MM-DD or RFC3339)"
// @Param endDate query string false "End date (YYYY-MM-DD or RFC3339)"
// @Param campaign query string false "utm_campaign"
// @Param source query string false "utm_source"
// @Success 200 {object} response.Response{data=Report}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /analytics [get]
func (h *Handler) GetAnalytics(c *gin.Context) {
	f, err := lead.FilterFromQuery(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid date filter")
		return
	}

	report, err := h.service.Report(c.Request.Context(), f)
	if err != nil {
		response.InternalError(c, err, "Failed to fetch analytics")
		return
	}

	response.Success(c, http.StatusOK, report)
}

// ExportLeads handles GET /api/analytics/export
// @Summary Export leads
// @Description Download matching leads as CSV, or as a spreadsheet with format=xlsx
// @Tags Analytics
// @Security BearerAuth
// @Produce text/csv
// @Param startDate query string false "Start date"
// @Param endDate query string false "End date"
// @Param campaign query string false "utm_campaign"
// @Param source query string false "utm_source"
// @Param service query string false "Service"
// @Param status query string false "Lead status"
// @Param format query string false "csv (default) or xlsx"
// @Success 200 {file} file
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /analytics/export [get]
func (h *Handler) ExportLeads(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		response.Error(c, http.StatusBadRequest, "Invalid export format")
		return
	}

	f, err := lead.FilterFromQuery(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid date filter")
		return
	}

	leads, err := h.service.Export(c.Request.Context(), f)
	if err != nil {
		response.InternalError(c, err, "Failed to export leads")
		return
	}

	// Render fully before writing so a failure can still produce a JSON error.
	var buf bytes.Buffer
	contentType := "text/csv"
	if format == "xlsx" {
		contentType = xlsxContentType
		err = WriteXLSX(&buf, leads)
	} else {
		err = WriteCSV(&buf, leads)
	}
	if err != nil {
		response.InternalError(c, err, "Failed to export leads")
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+exportFilename(h.service.now(), format))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
