// Package app assembles the HTTP API from the domain packages.
package app

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"reinsure/internal/domain/admin"
	"reinsure/internal/domain/analytics"
	"reinsure/internal/domain/content"
	"reinsure/internal/domain/feed"
	"reinsure/internal/domain/lead"
	"reinsure/internal/domain/quote"
	"reinsure/internal/middleware"
	"reinsure/internal/pkg/jwt"
	"reinsure/internal/pkg/metrics"
	"reinsure/internal/pkg/response"
	"reinsure/internal/ratelimit"
)

// Deps are the collaborators the router is built from. Notifier, Feed,
// Metrics, Gatherer and Logger are optional.
type Deps struct {
	DB         *gorm.DB
	JWT        *jwt.Service
	LimitStore ratelimit.Store
	Notifier   quote.Notifier
	Feed       *feed.Hub
	Metrics    *metrics.Metrics
	Gatherer   prometheus.Gatherer
	Logger     *slog.Logger

	CORSOrigin     string
	TrustedProxies []string
}

// Models lists every table the API needs, for migration.
func Models() []any {
	return append([]any{&admin.Admin{}, &lead.Lead{}, &quote.Quote{}}, content.Models()...)
}

// NewRouter builds the gin engine with every route mounted under /api.
func NewRouter(d Deps) (*gin.Engine, error) {
	if d.DB == nil || d.JWT == nil || d.LimitStore == nil {
		return nil, errors.New("app: DB, JWT and LimitStore are required")
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Feed == nil {
		d.Feed = feed.NewHub(d.Logger)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(d.TrustedProxies); err != nil {
		return nil, err
	}

	origins := middleware.NewOrigins(d.CORSOrigin)
	r.Use(
		middleware.CORS(origins),
		middleware.RequestLogger(d.Logger),
		middleware.Metrics(d.Metrics),
		middleware.ErrorLogger(d.Logger),
	)
	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found")
	})

	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	limit := func(p ratelimit.Policy) gin.HandlerFunc {
		return middleware.RateLimit(ratelimit.New(p, d.LimitStore), d.Metrics)
	}

	// Admin
	adminService := admin.NewService(admin.NewAdminRepository(d.DB), d.JWT, d.Metrics)
	requireAdmin := admin.AdminJWTAuth(d.JWT, adminService)
	identify := admin.Identify(d.JWT, adminService)

	// Leads
	leadRepo := lead.NewRepository(d.DB)
	leadService := lead.NewService(leadRepo, d.Feed, d.Metrics)

	// Quotes
	quoteService := quote.NewService(quote.NewRepository(d.DB), d.Notifier, d.Feed, d.Metrics)

	// Analytics
	analyticsService := analytics.NewService(analytics.NewRepository(d.DB), leadRepo)

	api := r.Group("/api", limit(ratelimit.APIPolicy))
	{
		api.GET("/health", health(d.DB))

		admin.RegisterRoutes(api, admin.NewHandler(adminService), limit(ratelimit.LoginPolicy), requireAdmin)
		lead.RegisterRoutes(api, lead.NewHandler(leadService), limit(ratelimit.LeadPolicy), requireAdmin)
		quote.RegisterRoutes(api, quote.NewHandler(quoteService))
		content.RegisterRoutes(api, content.NewHandlers(d.DB, admin.IsAdmin), identify)
		analytics.RegisterRoutes(api, analytics.NewHandler(analyticsService), requireAdmin)
		feed.RegisterRoutes(api, feed.NewHandler(d.Feed, origins.Allows), admin.QueryToken(), requireAdmin)
	}

	return r, nil
}

func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			_ = c.Error(err)
			response.Error(c, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Server is running"})
	}
}
