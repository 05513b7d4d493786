package feed

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts GET /admin/feed behind auth.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth ...gin.HandlerFunc) {
	handlers := append(append([]gin.HandlerFunc{}, auth...), h.Serve)
	r.GET("/admin/feed", handlers...)
}
