package quote

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"reinsure/internal/pkg/response"
	"reinsure/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateQuote handles POST /api/quotes
// @Summary Request a quote
// @Tags Quotes
// @Accept json
// @Produce json
// @Param request body CreateQuoteRequest true "Quote request"
// @Success 201 {object} response.Response{data=Quote}
// @Failure 400 {object} response.Response
// @Router /quotes [post]
func (h *Handler) CreateQuote(c *gin.Context) {
	var req CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	q, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err, "Failed to create quote")
		return
	}

	response.Success(c, http.StatusCreated, q)
}

// ListQuotes handles GET /api/quotes
// @Summary List quotes
// @Tags Quotes
// @Produce json
// @Success 200 {object} response.Response{data=[]Quote}
// @Router /quotes [get]
func (h *Handler) ListQuotes(c *gin.Context) {
	quotes, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err, "Failed to fetch quotes")
		return
	}
	response.Success(c, http.StatusOK, quotes)
}

// GetQuote handles GET /api/quotes/:id
// @Summary Get quote by ID
// @Tags Quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} response.Response{data=Quote}
// @Failure 404 {object} response.Response
// @Router /quotes/{id} [get]
func (h *Handler) GetQuote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "Quote not found")
		return
	}

	q, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to fetch quote")
		return
	}
	response.Success(c, http.StatusOK, q)
}

// UpdateQuote handles PATCH /api/quotes/:id
// @Summary Update quote
// @Tags Quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param request body UpdateQuoteRequest true "Fields to change"
// @Success 200 {object} response.Response{data=Quote}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /quotes/{id} [patch]
func (h *Handler) UpdateQuote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "Quote not found")
		return
	}

	var req UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	q, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err, "Failed to update quote")
		return
	}
	response.Success(c, http.StatusOK, q)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	var verrs validator.Errors
	switch {
	case errors.As(err, &verrs):
		response.Error(c, http.StatusBadRequest, verrs.Error())
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "Invalid status")
	case errors.Is(err, ErrQuoteNotFound):
		response.Error(c, http.StatusNotFound, "Quote not found")
	default:
		response.InternalError(c, err, fallback)
	}
}
