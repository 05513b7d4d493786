package lead

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"reinsure/internal/domain"
	"reinsure/internal/pkg/response"
	"reinsure/internal/pkg/utils"
)

// Handler handles lead HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates lead handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// SubmitLead handles POST /api/leads (public, rate limited)
// @Summary Submit lead
// @Description Public endpoint for the marketing site's lead form
// @Tags Leads
// @Accept json
// @Produce json
// @Param request body SubmitLeadRequest true "Lead submission"
// @Success 201 {object} response.Response{data=Lead}
// @Failure 400 {object} response.Response
// @Failure 429 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /leads [post]
func (h *Handler) SubmitLead(c *gin.Context) {
	var req SubmitLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	meta := Metadata{
		IP:        utils.ClientIP(c),
		UserAgent: c.Request.UserAgent(),
	}

	lead, err := h.service.SubmitLead(c.Request.Context(), &req, meta)
	if err != nil {
		if errors.Is(err, ErrMissingContact) {
			response.Error(c, http.StatusBadRequest, "Name, email, and phone are required")
			return
		}
		response.InternalError(c, err, "Failed to create lead")
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, lead, "Lead created successfully")
}

// ListLeads handles GET /api/leads
// @Summary List leads
// @Tags Leads
// @Produce json
// @Security BearerAuth
// @Param campaign query string false "utm_campaign"
// @Param source query string false "utm_source"
// @Param service query string false "Service"
// @Param status query string false "Status" Enums(new, contacted, converted, closed)
// @Param startDate query string false "Created on or after"
// @Param endDate query string false "Created on or before"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} response.Response{data=ListResponse}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /leads [get]
func (h *Handler) ListLeads(c *gin.Context) {
	filter, err := FilterFromQuery(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid date filter")
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	result, err := h.service.List(c.Request.Context(), ListQuery{
		Filter: filter,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		response.InternalError(c, err, "Failed to fetch leads")
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetLead handles GET /api/leads/:id
// @Summary Get lead by ID
// @Tags Leads
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Success 200 {object} response.Response{data=Lead}
// @Failure 404 {object} response.Response
// @Router /leads/{id} [get]
func (h *Handler) GetLead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "Lead not found")
		return
	}

	lead, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			response.Error(c, http.StatusNotFound, "Lead not found")
			return
		}
		response.InternalError(c, err, "Failed to fetch lead")
		return
	}

	response.Success(c, http.StatusOK, lead)
}

// UpdateStatus handles PATCH /api/leads/:id/status
// @Summary Update lead status
// @Tags Leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} response.Response{data=Lead}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /leads/{id}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Status.Valid() {
		response.Error(c, http.StatusBadRequest, "Invalid status")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "Lead not found")
		return
	}

	lead, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "Invalid status")
		case errors.Is(err, ErrLeadNotFound):
			response.Error(c, http.StatusNotFound, "Lead not found")
		default:
			response.InternalError(c, err, "Failed to update lead status")
		}
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, lead, "Lead status updated")
}

// FilterFromQuery reads the shared lead filters from the query string.
func FilterFromQuery(c *gin.Context) (Filter, error) {
	from, err := utils.ParseDateParam(c.Query("startDate"), false)
	if err != nil {
		return Filter{}, ErrInvalidDateSpan
	}
	to, err := utils.ParseDateParam(c.Query("endDate"), true)
	if err != nil {
		return Filter{}, ErrInvalidDateSpan
	}

	return Filter{
		Campaign: c.Query("campaign"),
		Source:   c.Query("source"),
		Service:  c.Query("service"),
		Status:   domain.Status(c.Query("status")),
		From:     from,
		To:       to,
	}, nil
}
