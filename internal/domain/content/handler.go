package content

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"reinsure/internal/pkg/response"
	"reinsure/internal/pkg/validator"
)

// record is satisfied by pointers to the content entities.
type record[T any] interface {
	*T
	normalize()
	base() *Base
}

// Handler serves list/get/create/update/delete for one content type.
type Handler[T any, P record[T]] struct {
	repo     *Repository[T]
	name     string
	newModel func() P
	isAdmin  func(*gin.Context) bool
}

// NewHandler builds a handler. name is used in messages ("Service not
// found"); isAdmin reports whether the caller presented a valid admin token.
func NewHandler[T any, P record[T]](repo *Repository[T], name string, newModel func() P, isAdmin func(*gin.Context) bool) *Handler[T, P] {
	if isAdmin == nil {
		isAdmin = func(*gin.Context) bool { return false }
	}
	return &Handler[T, P]{repo: repo, name: name, newModel: newModel, isAdmin: isAdmin}
}

// List handles GET /api/<resource>
func (h *Handler[T, P]) List(c *gin.Context) {
	includeHidden := c.Query("all") == "true" && h.isAdmin(c)

	items, err := h.repo.List(c.Request.Context(), includeHidden)
	if err != nil {
		response.InternalError(c, err, "Failed to fetch records")
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Get handles GET /api/<resource>/:id
func (h *Handler[T, P]) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	item, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

// Create handles POST /api/<resource>
func (h *Handler[T, P]) Create(c *gin.Context) {
	item := h.newModel()
	if err := c.ShouldBindJSON(item); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	*item.base() = Base{}

	item.normalize()
	if errs := validator.Validate(item); errs != nil {
		response.Error(c, http.StatusBadRequest, errs.Error())
		return
	}

	if err := h.repo.Create(c.Request.Context(), (*T)(item)); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item)
}

// Update handles PUT /api/<resource>/:id. Fields absent from the body keep
// their stored values.
func (h *Handler[T, P]) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	stored, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	item := P(stored)
	keep := *item.base()

	if err := c.ShouldBindJSON(item); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	*item.base() = keep

	item.normalize()
	if errs := validator.Validate(item); errs != nil {
		response.Error(c, http.StatusBadRequest, errs.Error())
		return
	}

	if err := h.repo.Save(c.Request.Context(), stored); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

// Delete handles DELETE /api/<resource>/:id
func (h *Handler[T, P]) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{})
}

func (h *Handler[T, P]) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, h.name+" not found")
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler[T, P]) writeError(c *gin.Context, err error) {
	if errors.Is(err, ErrNotFound) {
		response.Error(c, http.StatusNotFound, h.name+" not found")
		return
	}
	response.InternalError(c, err, "Internal server error")
}
