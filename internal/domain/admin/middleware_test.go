package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reinsure/internal/database/dbtest"
	"reinsure/internal/pkg/jwt"
)

const testSecret = "middleware-secret"

type authFixture struct {
	router *gin.Engine
	svc    *Service
	admin  *Admin
	token  string
}

func setupAuth(t *testing.T) *authFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := dbtest.New(t, &Admin{})
	jwtService := jwt.New(testSecret, time.Hour)
	svc := NewService(NewAdminRepository(db), jwtService, nil)

	a, created, err := svc.EnsureBootstrapAdmin(context.Background(), "admin@reinsure.com", "Admin@123456", "Admin")
	require.NoError(t, err)
	require.True(t, created)

	token, err := jwtService.GenerateToken(a.ID.String())
	require.NoError(t, err)

	r := gin.New()
	RegisterRoutes(r.Group("/api"), NewHandler(svc), func(c *gin.Context) { c.Next() }, AdminJWTAuth(jwtService, svc))
	r.GET("/api/peek", Identify(jwtService, svc), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin": IsAdmin(c)})
	})

	return &authFixture{router: r, svc: svc, admin: a, token: token}
}

func (f *authFixture) do(method, path, body, auth string) (int, map[string]any) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w.Code, out
}

func TestAdminJWTAuth_Rejections(t *testing.T) {
	f := setupAuth(t)

	expired, err := jwt.New(testSecret, -time.Minute).GenerateToken(f.admin.ID.String())
	require.NoError(t, err)
	foreign, err := jwt.New("another-secret", time.Hour).GenerateToken(f.admin.ID.String())
	require.NoError(t, err)
	orphan, err := jwt.New(testSecret, time.Hour).GenerateToken(uuid.NewString())
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
		msg    string
	}{
		{"missing header", "", http.StatusUnauthorized, "No token provided. Authorization required."},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "No token provided. Authorization required."},
		{"bad signature", "Bearer " + foreign, http.StatusUnauthorized, "Invalid token."},
		{"garbage", "Bearer not.a.jwt", http.StatusUnauthorized, "Invalid token."},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, "Token expired. Please login again."},
		{"deleted admin", "Bearer " + orphan, http.StatusUnauthorized, "Invalid token. Admin not found."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := f.do(http.MethodGet, "/api/admin/me", "", tt.header)
			assert.Equal(t, tt.status, code)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.msg, body["error"])
		})
	}
}

func TestAdminJWTAuth_MissingSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := dbtest.New(t, &Admin{})
	svc := NewService(NewAdminRepository(db), jwt.New("", time.Hour), nil)

	r := gin.New()
	r.GET("/me", AdminJWTAuth(jwt.New("", time.Hour), svc), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer anything")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication error.")
}

func TestGetMe_OmitsPasswordHash(t *testing.T) {
	f := setupAuth(t)

	code, body := f.do(http.MethodGet, "/api/admin/me", "", "Bearer "+f.token)
	require.Equal(t, http.StatusOK, code)

	data := body["data"].(map[string]any)
	assert.Equal(t, "admin@reinsure.com", data["email"])
	assert.NotContains(t, data, "password")
	assert.NotContains(t, data, "PasswordHash")
}

func TestLoginAndRegister(t *testing.T) {
	f := setupAuth(t)

	code, body := f.do(http.MethodPost, "/api/admin/login", `{"email":"ADMIN@reinsure.com","password":"Admin@123456"}`, "")
	require.Equal(t, http.StatusOK, code)
	data := body["data"].(map[string]any)
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, "admin", data["admin"].(map[string]any)["role"])

	code, wrong := f.do(http.MethodPost, "/api/admin/login", `{"email":"admin@reinsure.com","password":"bad"}`, "")
	assert.Equal(t, http.StatusUnauthorized, code)
	code2, unknown := f.do(http.MethodPost, "/api/admin/login", `{"email":"nobody@reinsure.com","password":"bad"}`, "")
	assert.Equal(t, http.StatusUnauthorized, code2)
	assert.Equal(t, wrong, unknown)
	assert.Equal(t, "Invalid credentials", wrong["error"])

	code, body = f.do(http.MethodPost, "/api/admin/login", `{"email":"admin@reinsure.com"}`, "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Email and password are required", body["error"])

	code, _ = f.do(http.MethodPost, "/api/admin/register", `{"email":"x@y.z","password":"pw","name":"X"}`, "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, body = f.do(http.MethodPost, "/api/admin/register", `{"email":"x@y.z","password":"pw","name":"X"}`, "Bearer "+f.token)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Admin created successfully", body["message"])

	code, body = f.do(http.MethodPost, "/api/admin/register", `{"email":"X@Y.z","password":"pw","name":"X"}`, "Bearer "+f.token)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Admin with this email already exists", body["error"])

	code, body = f.do(http.MethodPost, "/api/admin/register", `{"email":"y@y.z"}`, "Bearer "+f.token)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Email, password, and name are required", body["error"])
}

func TestSetupIsOpen(t *testing.T) {
	f := setupAuth(t)

	code, _ := f.do(http.MethodPost, "/api/setup/setup", `{"email":"first@reinsure.com","password":"pw","name":"First"}`, "")
	assert.Equal(t, http.StatusCreated, code)
}

func TestIdentify(t *testing.T) {
	f := setupAuth(t)

	_, body := f.do(http.MethodGet, "/api/peek", "", "")
	assert.Equal(t, false, body["admin"])
	_, body = f.do(http.MethodGet, "/api/peek", "", "Bearer junk")
	assert.Equal(t, false, body["admin"])
	_, body = f.do(http.MethodGet, "/api/peek", "", "Bearer "+f.token)
	assert.Equal(t, true, body["admin"])
}
