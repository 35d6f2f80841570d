package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type idempotencyCall struct {
	method string
	path   string
	key    string
	user   string
	body   string
}

func newIdempotencyRouter(cfg IdempotencyConfig, calls *atomic.Int32) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), func(c *gin.Context) {
		if user := c.GetHeader("X-Test-User"); user != "" {
			c.Set(ContextUsername, user)
		}
		c.Next()
	})
	router.Use(Idempotency(cfg))

	handle := func(c *gin.Context) {
		n := calls.Add(1)
		c.Header("X-Box-Count", "1")
		c.JSON(http.StatusCreated, gin.H{"call": n})
	}
	router.POST("/boxes", handle)
	router.POST("/bundles", handle)
	router.GET("/boxes", handle)
	router.POST("/invalid", func(c *gin.Context) {
		calls.Add(1)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
	})
	router.POST("/export", func(c *gin.Context) {
		calls.Add(1)
		c.Data(http.StatusOK, "application/pdf", []byte(strings.Repeat("x", 64)))
	})
	return router
}

func (call idempotencyCall) do(router http.Handler) *httptest.ResponseRecorder {
	method := call.method
	if method == "" {
		method = http.MethodPost
	}
	req := httptest.NewRequest(method, call.path, strings.NewReader(call.body))
	if call.key != "" {
		req.Header.Set(IdempotencyKeyHeader, call.key)
	}
	if call.user != "" {
		req.Header.Set("X-Test-User", call.user)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotency(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		first          idempotencyCall
		second         idempotencyCall
		expectedStatus int
		expectedCalls  int32
		replayed       bool
	}{
		{
			name:           "replays the same request",
			first:          idempotencyCall{path: "/boxes", key: "k1", body: `{"roomCode":"KIT"}`},
			second:         idempotencyCall{path: "/boxes", key: "k1", body: `{"roomCode":"KIT"}`},
			expectedStatus: http.StatusCreated,
			expectedCalls:  1,
			replayed:       true,
		},
		{
			name:           "without key both requests run",
			first:          idempotencyCall{path: "/boxes", body: `{}`},
			second:         idempotencyCall{path: "/boxes", body: `{}`},
			expectedStatus: http.StatusCreated,
			expectedCalls:  2,
		},
		{
			name:           "GET ignores the key",
			first:          idempotencyCall{method: http.MethodGet, path: "/boxes", key: "k1"},
			second:         idempotencyCall{method: http.MethodGet, path: "/boxes", key: "k1"},
			expectedStatus: http.StatusCreated,
			expectedCalls:  2,
		},
		{
			name:           "different body is rejected",
			first:          idempotencyCall{path: "/boxes", key: "k1", body: `{"roomCode":"KIT"}`},
			second:         idempotencyCall{path: "/boxes", key: "k1", body: `{"roomCode":"BED"}`},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCalls:  1,
		},
		{
			name:           "different route is rejected",
			first:          idempotencyCall{path: "/boxes", key: "k1", body: `{}`},
			second:         idempotencyCall{path: "/bundles", key: "k1", body: `{}`},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCalls:  1,
		},
		{
			name:           "keys are scoped per user",
			first:          idempotencyCall{path: "/boxes", key: "k1", user: "ana", body: `{}`},
			second:         idempotencyCall{path: "/boxes", key: "k1", user: "ben", body: `{}`},
			expectedStatus: http.StatusCreated,
			expectedCalls:  2,
		},
		{
			name:           "failed responses are not stored",
			first:          idempotencyCall{path: "/invalid", key: "k1", body: `{}`},
			second:         idempotencyCall{path: "/invalid", key: "k1", body: `{}`},
			expectedStatus: http.StatusBadRequest,
			expectedCalls:  2,
		},
		{
			name:           "large responses are not stored",
			first:          idempotencyCall{path: "/export", key: "k1", body: `{}`},
			second:         idempotencyCall{path: "/export", key: "k1", body: `{}`},
			expectedStatus: http.StatusOK,
			expectedCalls:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultIdempotencyConfig()
			cfg.MaxBodyBytes = 32
			var calls atomic.Int32
			router := newIdempotencyRouter(cfg, &calls)

			first := tt.first.do(router)
			second := tt.second.do(router)

			assert.Equal(t, tt.expectedStatus, second.Code, second.Body.String())
			assert.Equal(t, tt.expectedCalls, calls.Load())
			if tt.replayed {
				assert.Equal(t, "true", second.Header().Get(IdempotencyReplayedHeader))
				assert.Equal(t, first.Body.String(), second.Body.String())
				assert.Equal(t, "1", second.Header().Get("X-Box-Count"))
				assert.NotEqual(t, first.Header().Get(RequestIDHeader), second.Header().Get(RequestIDHeader))
			} else {
				assert.Empty(t, second.Header().Get(IdempotencyReplayedHeader))
			}
		})
	}
}

func TestIdempotency_InFlight(t *testing.T) {
	gin.SetMode(gin.TestMode)

	started := make(chan struct{})
	unblock := make(chan struct{})
	router := gin.New()
	router.Use(Idempotency(DefaultIdempotencyConfig()))
	router.POST("/labels", func(c *gin.Context) {
		close(started)
		<-unblock
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	call := idempotencyCall{path: "/labels", key: "slow", body: `{"boxIds":["b1"]}`}
	done := make(chan *httptest.ResponseRecorder)
	go func() { done <- call.do(router) }()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("first request never reached the handler")
	}

	second := call.do(router)
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Contains(t, second.Body.String(), "conflict")

	close(unblock)
	first := <-done
	require.Equal(t, http.StatusOK, first.Code)

	third := call.do(router)
	assert.Equal(t, "true", third.Header().Get(IdempotencyReplayedHeader))
}

func TestIdempotency_PanicReleasesKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := DefaultIdempotencyConfig()
	cfg.store = newIdempotencyStore(time.Minute, 10)

	router := gin.New()
	router.Use(Recovery(), Idempotency(cfg))
	router.POST("/boxes", func(c *gin.Context) {
		panic("boom")
	})

	w := idempotencyCall{path: "/boxes", key: "k1", body: `{}`}.do(router)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Zero(t, cfg.store.Len())
}

func TestIdempotency_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := DefaultIdempotencyConfig()
	cfg.Enabled = false
	var calls atomic.Int32
	router := newIdempotencyRouter(cfg, &calls)

	call := idempotencyCall{path: "/boxes", key: "k1", body: `{}`}
	call.do(router)
	w := call.do(router)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int32(2), calls.Load())
}
