package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualClock struct {
	mu sync.Mutex
	t  time.Time
}

func newManualClock() *manualClock {
	return &manualClock{t: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func TestNewRateLimiter(t *testing.T) {
	tests := []struct {
		name       string
		rate       int
		opts       []RateLimiterOption
		wantShards int
		wantRate   int
	}{
		{name: "defaults", rate: 10, wantShards: defaultNumShards, wantRate: 10},
		{name: "custom shard count", rate: 10, opts: []RateLimiterOption{WithShards(4)}, wantShards: 4, wantRate: 10},
		{name: "zero shards keeps the default", rate: 10, opts: []RateLimiterOption{WithShards(0)}, wantShards: defaultNumShards, wantRate: 10},
		{name: "rate below one is raised", rate: 0, wantShards: defaultNumShards, wantRate: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewRateLimiter(tt.rate, time.Minute, tt.opts...)

			assert.Len(t, rl.shards, tt.wantShards)
			assert.Equal(t, tt.wantRate, rl.rate)
			for _, s := range rl.shards {
				assert.NotNil(t, s)
			}
		})
	}
}

func TestRateLimiter_Take(t *testing.T) {
	clock := newManualClock()
	rl := NewRateLimiter(3, time.Minute, WithShards(4), withClock(clock.Now))

	var remaining []int
	for i := 0; i < 3; i++ {
		allowed, left, _, resetIn := rl.take("ip:10.0.0.1")
		require.True(t, allowed)
		assert.LessOrEqual(t, resetIn, time.Minute)
		remaining = append(remaining, left)
	}
	assert.Equal(t, []int{2, 1, 0}, remaining)

	allowed, left, retryIn, resetIn := rl.take("ip:10.0.0.1")
	assert.False(t, allowed)
	assert.Zero(t, left)
	assert.Equal(t, 20*time.Second, retryIn)
	assert.Equal(t, time.Minute, resetIn)

	allowed, _, _, _ = rl.take("ip:10.0.0.2")
	assert.True(t, allowed, "clients have separate buckets")
}

func TestRateLimiter_Refill(t *testing.T) {
	tests := []struct {
		name        string
		advance     time.Duration
		wantAllowed int
	}{
		{name: "no time passed", advance: 0, wantAllowed: 0},
		{name: "one token back", advance: 20 * time.Second, wantAllowed: 1},
		{name: "partial token is not enough", advance: 39 * time.Second, wantAllowed: 1},
		{name: "full window refills the burst", advance: time.Minute, wantAllowed: 3},
		{name: "refill is capped at the burst", advance: time.Hour, wantAllowed: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newManualClock()
			rl := NewRateLimiter(3, time.Minute, withClock(clock.Now))

			for i := 0; i < 3; i++ {
				rl.take("user:admin")
			}
			clock.Advance(tt.advance)

			allowed := 0
			for i := 0; i < 5; i++ {
				if ok, _, _, _ := rl.take("user:admin"); ok {
					allowed++
				}
			}
			assert.Equal(t, tt.wantAllowed, allowed)
		})
	}
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type request struct {
		user string
		ip   string
	}

	tests := []struct {
		name      string
		perUser   bool
		requests  []request
		wantCodes []int
	}{
		{
			name:      "per IP",
			requests:  []request{{ip: "10.0.0.1"}, {ip: "10.0.0.1"}, {ip: "10.0.0.1"}, {ip: "10.0.0.2"}},
			wantCodes: []int{200, 200, 429, 200},
		},
		{
			name:      "per IP ignores the session",
			requests:  []request{{ip: "10.0.0.1", user: "ana"}, {ip: "10.0.0.1", user: "ben"}, {ip: "10.0.0.1", user: "ana"}},
			wantCodes: []int{200, 200, 429},
		},
		{
			name:      "per user shares an IP",
			perUser:   true,
			requests:  []request{{ip: "10.0.0.1", user: "ana"}, {ip: "10.0.0.1", user: "ana"}, {ip: "10.0.0.1", user: "ben"}, {ip: "10.0.0.1", user: "ana"}},
			wantCodes: []int{200, 200, 200, 429},
		},
		{
			name:      "per user falls back to IP",
			perUser:   true,
			requests:  []request{{ip: "10.0.0.1"}, {ip: "10.0.0.1"}, {ip: "10.0.0.1"}},
			wantCodes: []int{200, 200, 429},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newManualClock()
			rl := NewRateLimiter(2, time.Minute, WithShards(4), withClock(clock.Now))

			router := gin.New()
			router.Use(RequestID(), func(c *gin.Context) {
				if user := c.GetHeader("X-Test-User"); user != "" {
					c.Set(ContextUsername, user)
				}
				c.Next()
			})
			if tt.perUser {
				router.Use(rl.UserRateLimit())
			} else {
				router.Use(rl.RateLimit())
			}
			router.POST("/api/v1/exports/pdf", func(c *gin.Context) { c.Status(http.StatusOK) })

			var codes []int
			for _, r := range tt.requests {
				req := httptest.NewRequest(http.MethodPost, "/api/v1/exports/pdf", nil)
				req.RemoteAddr = r.ip + ":5000"
				if r.user != "" {
					req.Header.Set("X-Test-User", r.user)
				}
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)
				codes = append(codes, w.Code)
			}

			assert.Equal(t, tt.wantCodes, codes)
		})
	}
}

func TestRateLimiter_Headers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	clock := newManualClock()
	rl := NewRateLimiter(2, time.Minute, withClock(clock.Now))

	router := gin.New()
	router.Use(RequestID(), rl.RateLimit())
	router.GET("/api/v1/boxes", func(c *gin.Context) { c.Status(http.StatusOK) })

	var responses []*httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/boxes", nil))
		responses = append(responses, w)
	}

	first := responses[0]
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "30", first.Header().Get("X-RateLimit-Reset"))
	assert.Empty(t, first.Header().Get("Retry-After"))

	last := responses[2]
	assert.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.Contains(t, last.Body.String(), "rate_limit_exceeded")
	assert.Equal(t, "2", last.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", last.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", last.Header().Get("X-RateLimit-Reset"))

	retryAfter, err := strconv.Atoi(last.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.Equal(t, 30, retryAfter)
}

func TestRateLimiter_SweepsIdleClients(t *testing.T) {
	clock := newManualClock()
	rl := NewRateLimiter(10, time.Minute, WithShards(1), withClock(clock.Now))

	for _, id := range []string{"ip:1", "ip:2", "ip:3", "user:ana"} {
		rl.take(id)
	}
	clock.Advance(30 * time.Second)
	rl.take("user:ben")
	assert.Equal(t, 5, rl.Clients())

	clock.Advance(30 * time.Second)
	rl.take("user:ben")

	assert.Equal(t, 1, rl.Clients(), "only the client seen within the window is kept")
}
