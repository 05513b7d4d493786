package analytics

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the admin-only analytics routes.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, requireAdmin gin.HandlerFunc) {
	analytics := r.Group("/analytics", requireAdmin)
	{
		analytics.GET("", h.GetAnalytics)
		analytics.GET("/export", h.ExportLeads)
	}
}
