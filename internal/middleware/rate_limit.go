package middleware

import (
	"hash/maphash"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/move-labels/internal/domain/dto"
	"github.com/guttosm/move-labels/internal/i18n"
)

const defaultNumShards = 16

// bucket is the token bucket of one client.
type bucket struct {
	tokens float64
	last   time.Time
}

type limiterShard struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

// RateLimiter is a sharded token bucket limiter. Each client may burst up to
// rate requests and regains rate tokens per window. Idle clients are swept
// from a shard at most once per window, while it is locked for a request.
type RateLimiter struct {
	shards   []*limiterShard
	seed     maphash.Seed
	rate     int
	window   time.Duration
	perToken time.Duration
	now      func() time.Time
}

// RateLimiterOption configures a RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithShards sets the number of lock shards. Values below one keep the default.
func WithShards(n int) RateLimiterOption {
	return func(rl *RateLimiter) {
		if n > 0 {
			rl.shards = make([]*limiterShard, n)
		}
	}
}

func withClock(now func() time.Time) RateLimiterOption {
	return func(rl *RateLimiter) { rl.now = now }
}

// NewRateLimiter allows rate requests per window for each client. A
// non-positive window means one minute.
func NewRateLimiter(rate int, window time.Duration, opts ...RateLimiterOption) *RateLimiter {
	if rate < 1 {
		rate = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	rl := &RateLimiter{
		shards:   make([]*limiterShard, defaultNumShards),
		seed:     maphash.MakeSeed(),
		rate:     rate,
		window:   window,
		perToken: window / time.Duration(rate),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(rl)
	}
	for i := range rl.shards {
		rl.shards[i] = &limiterShard{buckets: make(map[string]*bucket)}
	}
	return rl
}

func (rl *RateLimiter) shard(key string) *limiterShard {
	return rl.shards[maphash.String(rl.seed, key)%uint64(len(rl.shards))]
}

// take spends one token of key. It returns the whole tokens left, how long
// until the next token and how long until the bucket is full again.
func (rl *RateLimiter) take(key string) (allowed bool, remaining int, retryIn, resetIn time.Duration) {
	s := rl.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	now := rl.now()
	if now.Sub(s.lastSweep) >= rl.window {
		rl.sweepLocked(s, now)
	}

	capacity := float64(rl.rate)
	b, ok := s.buckets[key]
	if !ok {
		b = &bucket{tokens: capacity, last: now}
		s.buckets[key] = b
	} else if elapsed := now.Sub(b.last); elapsed > 0 {
		b.tokens = math.Min(capacity, b.tokens+float64(elapsed)/float64(rl.perToken))
		b.last = now
	}

	if b.tokens >= 1 {
		b.tokens--
		allowed = true
	} else {
		retryIn = time.Duration((1 - b.tokens) * float64(rl.perToken))
	}
	resetIn = time.Duration((capacity - b.tokens) * float64(rl.perToken))
	return allowed, int(b.tokens), retryIn, resetIn
}

// RateLimit limits requests per client IP.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return rl.middleware(func(c *gin.Context) string { return c.ClientIP() })
}

// UserRateLimit limits requests per signed-in user, falling back to the
// client IP for anonymous requests. Export routes use it since rendering is
// the expensive part of the service.
func (rl *RateLimiter) UserRateLimit() gin.HandlerFunc {
	return rl.middleware(userKey)
}

func userKey(c *gin.Context) string {
	if username := c.GetString(ContextUsername); username != "" {
		return "user:" + username
	}
	return "ip:" + c.ClientIP()
}

func (rl *RateLimiter) middleware(key func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, retryIn, resetIn := rl.take(key(c))

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", ceilSeconds(resetIn))

		if allowed {
			c.Next()
			return
		}

		c.Header("Retry-After", ceilSeconds(retryIn))
		message := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
		c.AbortWithStatusJSON(http.StatusTooManyRequests,
			dto.NewError(dto.ErrCodeRateLimit, message).WithRequestID(GetRequestID(c)))
	}
}

func ceilSeconds(d time.Duration) string {
	return strconv.Itoa(int(math.Ceil(d.Seconds())))
}

// sweepLocked drops buckets that have refilled completely; a new bucket for
// the same client starts full, so nothing is lost.
func (rl *RateLimiter) sweepLocked(s *limiterShard, now time.Time) {
	for key, b := range s.buckets {
		if now.Sub(b.last) >= rl.window {
			delete(s.buckets, key)
		}
	}
	s.lastSweep = now
}

// Clients returns the number of tracked clients.
func (rl *RateLimiter) Clients() int {
	total := 0
	for _, s := range rl.shards {
		s.mu.Lock()
		total += len(s.buckets)
		s.mu.Unlock()
	}
	return total
}
