package admin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"reinsure/internal/pkg/jwt"
	"reinsure/internal/pkg/response"
)

const (
	ctxAdmin   = "admin"
	ctxAdminID = "admin_id"
)

// Lookup resolves a token subject to an admin.
type Lookup interface {
	GetAdminByID(ctx context.Context, id string) (*Admin, error)
}

// AdminJWTAuth rejects requests without a valid bearer token for a live
// admin and stores that admin on the context.
func AdminJWTAuth(jwtService *jwt.Service, lookup Lookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "No token provided. Authorization required.")
			return
		}

		admin, err := authenticate(c.Request.Context(), jwtService, lookup, token)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				response.Abort(c, http.StatusUnauthorized, "Token expired. Please login again.")
			case errors.Is(err, jwt.ErrTokenInvalid):
				response.Abort(c, http.StatusUnauthorized, "Invalid token.")
			case errors.Is(err, ErrAdminNotFound):
				response.Abort(c, http.StatusUnauthorized, "Invalid token. Admin not found.")
			default:
				slog.Error("admin authentication failed", "error", err)
				response.Abort(c, http.StatusInternalServerError, "Authentication error.")
			}
			return
		}

		setAdmin(c, admin)
		c.Next()
	}
}

// Identify attaches the admin when a valid token is present and lets every
// request through regardless.
func Identify(jwtService *jwt.Service, lookup Lookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if admin, err := authenticate(c.Request.Context(), jwtService, lookup, token); err == nil {
				setAdmin(c, admin)
			}
		}
		c.Next()
	}
}

// FromContext returns the admin stored by AdminJWTAuth or Identify.
func FromContext(c *gin.Context) (*Admin, bool) {
	v, ok := c.Get(ctxAdmin)
	if !ok {
		return nil, false
	}
	admin, ok := v.(*Admin)
	return admin, ok
}

// IsAdmin reports whether the request carries an authenticated admin.
func IsAdmin(c *gin.Context) bool {
	_, ok := FromContext(c)
	return ok
}

func authenticate(ctx context.Context, jwtService *jwt.Service, lookup Lookup, token string) (*Admin, error) {
	claims, err := jwtService.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	return lookup.GetAdminByID(ctx, claims.AdminID)
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(header[len("Bearer "):])
	return token, token != ""
}

func setAdmin(c *gin.Context, admin *Admin) {
	c.Set(ctxAdmin, admin)
	c.Set(ctxAdminID, admin.ID.String())
}

// QueryToken promotes a ?token= query parameter to a bearer header for
// clients that cannot set headers, such as browser websockets.
func QueryToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			if token := c.Query("token"); token != "" {
				c.Request.Header.Set("Authorization", "Bearer "+token)
			}
		}
		c.Next()
	}
}
