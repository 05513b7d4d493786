package middleware

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reinsure/internal/pkg/logging"
	"reinsure/internal/pkg/metrics"
	"reinsure/internal/ratelimit"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS(NewOrigins("https://reinsure.example, https://admin.reinsure.example/")))
	router.GET("/api/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allowed origin is reflected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "https://admin.reinsure.example")
		w := serve(router, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://admin.reinsure.example", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		assert.Equal(t, "Origin", w.Header().Get("Vary"))
	})

	t.Run("default origin preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/health", nil)
		req.Header.Set("Origin", "http://localhost:8080")
		w := serve(router, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
	})

	t.Run("unknown origin gets no grant", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := serve(router, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

		req = httptest.NewRequest(http.MethodOptions, "/api/health", nil)
		req.Header.Set("Origin", "https://evil.example")
		assert.Equal(t, http.StatusForbidden, serve(router, req).Code)
	})

	t.Run("origin list", func(t *testing.T) {
		origins := NewOrigins("https://reinsure.example/")
		assert.True(t, origins.Allows(""))
		assert.True(t, origins.Allows("https://reinsure.example"))
		assert.True(t, origins.Allows("http://127.0.0.1:5173"))
		assert.False(t, origins.Allows("https://evil.example"))
	})

	t.Run("no origin passes", func(t *testing.T) {
		w := serve(router, httptest.NewRequest(http.MethodGet, "/api/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRateLimit(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	limiter := ratelimit.New(ratelimit.Policy{
		Name: "leads", Limit: 2, Window: 15 * time.Minute, Message: "Too many lead submissions. Please try again in 15 minutes.",
	}, ratelimit.NewMemoryStore())

	router := gin.New()
	require.NoError(t, router.SetTrustedProxies(nil))
	router.POST("/leads", RateLimit(limiter, m), func(c *gin.Context) { c.Status(http.StatusCreated) })

	forwarded := 0
	send := func(ip string) *httptest.ResponseRecorder {
		forwarded++
		req := httptest.NewRequest(http.MethodPost, "/leads", nil)
		req.RemoteAddr = ip + ":40000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.0.%d", forwarded))
		return serve(router, req)
	}

	w := send("203.0.113.1")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "2", w.Header().Get("RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("RateLimit-Remaining"))

	assert.Equal(t, http.StatusCreated, send("203.0.113.1").Code)

	w = send("203.0.113.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many lead submissions")
	retry, err := strconv.Atoi(w.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.InDelta(t, 900, retry, 2)

	assert.Equal(t, http.StatusCreated, send("198.51.100.2").Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateLimited.WithLabelValues("leads")))
}

type brokenStore struct{}

func (brokenStore) Increment(context.Context, string, time.Duration) (int64, time.Time, error) {
	return 0, time.Time{}, errors.New("store offline")
}
func (brokenStore) Reset(context.Context, string) error { return nil }

func TestRateLimit_FailsOpen(t *testing.T) {
	router := gin.New()
	router.GET("/x", RateLimit(ratelimit.New(ratelimit.APIPolicy, brokenStore{}), nil), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := serve(router, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestErrorLogger_RecoversPanic(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, "debug")

	router := gin.New()
	router.Use(RequestLogger(logger), ErrorLogger(logger))
	router.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := serve(router, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Internal server error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "kaboom")
	assert.Contains(t, buf.String(), "kaboom")
	assert.Contains(t, buf.String(), `"status":500`)
}

func TestErrorLogger_LogsContextErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, "info")

	router := gin.New()
	router.Use(ErrorLogger(logger))
	router.GET("/fail", func(c *gin.Context) {
		_ = c.Error(errors.New("connection reset by peer"))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed"})
	})

	w := serve(router, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
	assert.Contains(t, buf.String(), "connection reset by peer")
}

func TestMetrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	router := gin.New()
	router.Use(Metrics(m))
	router.GET("/api/leads/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	serve(router, httptest.NewRequest(http.MethodGet, "/api/leads/abc", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/leads/:id", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}
