package feed

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reinsure/internal/pkg/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupFeed(t *testing.T) (*Hub, string) {
	t.Helper()

	hub := NewHub(logging.Discard())
	hub.now = func() time.Time { return time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC) }

	router := gin.New()
	RegisterRoutes(router.Group("/api"), NewHandler(hub, func(origin string) bool {
		return origin == "" || origin == "http://localhost:5173"
	}), func(c *gin.Context) { c.Set("admin_id", "admin-1") })

	srv := httptest.NewServer(router)
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/admin/feed"
}

func dial(t *testing.T, url string, header http.Header) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHub_PublishReachesEveryClient(t *testing.T) {
	hub, url := setupFeed(t)

	first := dial(t, url, nil)
	second := dial(t, url, http.Header{"Origin": {"http://localhost:5173"}})
	require.Eventually(t, func() bool { return hub.Count() == 2 }, time.Second, 10*time.Millisecond)

	hub.Publish("lead.created", map[string]string{"name": "Asha"})

	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		var got struct {
			Type    string            `json:"type"`
			Payload map[string]string `json:"payload"`
			At      time.Time         `json:"at"`
		}
		require.NoError(t, conn.ReadJSON(&got))
		assert.Equal(t, "lead.created", got.Type)
		assert.Equal(t, "Asha", got.Payload["name"])
		assert.True(t, got.At.Equal(time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)))
	}
}

func TestHub_ClientDisconnectUnregisters(t *testing.T) {
	hub, url := setupFeed(t)

	conn := dial(t, url, nil)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	conn.Close()

	require.Eventually(t, func() bool { return hub.Count() == 0 }, 2*time.Second, 10*time.Millisecond)
	assert.NotPanics(t, func() { hub.Publish("quote.created", nil) })
}

func TestHub_CloseDisconnectsClients(t *testing.T) {
	hub, url := setupFeed(t)

	conn := dial(t, url, nil)
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	hub.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
	assert.Equal(t, 0, hub.Count())
}

func TestHandler_RejectsForeignOrigin(t *testing.T) {
	_, url := setupFeed(t)

	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {"https://evil.example"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestPublishWithoutClients(t *testing.T) {
	hub := NewHub(nil)
	assert.NotPanics(t, func() { hub.Publish("lead.status_changed", struct{}{}) })
	assert.Equal(t, 0, hub.Count())
}
