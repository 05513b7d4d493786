package lead

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts lead routes. Submission is public behind
// submitLimit; everything else requires requireAdmin.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, submitLimit, requireAdmin gin.HandlerFunc) {
	leads := r.Group("/leads")
	{
		leads.POST("", submitLimit, handler.SubmitLead)
		leads.GET("", requireAdmin, handler.ListLeads)
		leads.GET("/:id", requireAdmin, handler.GetLead)
		leads.PATCH("/:id/status", requireAdmin, handler.UpdateStatus)
	}
}
