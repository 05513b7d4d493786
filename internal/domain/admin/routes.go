package admin

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts /admin and the unauthenticated /setup bootstrap.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, loginLimit, requireAdmin gin.HandlerFunc) {
	admin := r.Group("/admin")
	{
		admin.POST("/login", loginLimit, h.Login)
		admin.POST("/register", requireAdmin, h.Register)
		admin.GET("/me", requireAdmin, h.GetMe)
	}

	// Setup is open so the first admin can be created on a fresh install.
	// It should be disabled once that is done.
	r.POST("/setup/setup", h.Register)
}
