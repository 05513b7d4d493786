package content

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handlers groups the three content resources.
type Handlers struct {
	Services     *Handler[Service, *Service]
	Testimonials *Handler[Testimonial, *Testimonial]
	FAQs         *Handler[FAQ, *FAQ]
}

// NewHandlers wires every content resource to db.
func NewHandlers(db *gorm.DB, isAdmin func(*gin.Context) bool) *Handlers {
	return &Handlers{
		Services:     NewHandler(NewRepository[Service](db, "is_active"), "Service", newService, isAdmin),
		Testimonials: NewHandler(NewRepository[Testimonial](db, "is_approved"), "Testimonial", newTestimonial, isAdmin),
		FAQs:         NewHandler(NewRepository[FAQ](db, "is_active"), "FAQ", newFAQ, isAdmin),
	}
}

// RegisterRoutes mounts the content resources. Writes are open; identify
// runs first so list can tell admin callers apart.
func RegisterRoutes(r *gin.RouterGroup, h *Handlers, identify gin.HandlerFunc) {
	mount(r.Group("/services", identify), h.Services)
	mount(r.Group("/testimonials", identify), h.Testimonials)
	mount(r.Group("/faqs", identify), h.FAQs)
}

func mount[T any, P record[T]](g *gin.RouterGroup, h *Handler[T, P]) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// Models lists the content tables for migration.
func Models() []any {
	return []any{&Service{}, &Testimonial{}, &FAQ{}}
}
