package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"reinsure/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Login godoc
// @Summary Admin Login
// @Description Authenticate as admin and get JWT token
// @Tags Admin Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response{data=LoginResult}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 429 {object} response.Response
// @Router /admin/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingCredentials):
			response.Error(c, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "Invalid credentials")
		default:
			response.InternalError(c, err, "Login failed")
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Register godoc
// @Summary Register admin
// @Description Create another admin account
// @Tags Admin Auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "New admin"
// @Success 201 {object} response.Response{data=Profile}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /admin/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email, password, and name are required")
		return
	}

	admin, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			response.Error(c, http.StatusBadRequest, "Email, password, and name are required")
		case errors.Is(err, ErrEmailExists):
			response.Error(c, http.StatusBadRequest, "Admin with this email already exists")
		default:
			response.InternalError(c, err, "Registration failed")
		}
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, admin.Profile(), "Admin created successfully")
}

// GetMe godoc
// @Summary Get current admin
// @Tags Admin Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=Admin}
// @Failure 401 {object} response.Response
// @Router /admin/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	admin, ok := FromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "No token provided. Authorization required.")
		return
	}
	response.Success(c, http.StatusOK, admin)
}
