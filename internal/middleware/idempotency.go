package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/move-labels/internal/domain/dto"
	"github.com/guttosm/move-labels/internal/i18n"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key (RFC standard).
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the store.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is how long a completed key is replayed.
	IdempotencyKeyTTL = 5 * time.Minute
	// DefaultIdempotencyMaxEntries bounds the number of remembered keys.
	DefaultIdempotencyMaxEntries = 10000
	// DefaultIdempotencyMaxBodyBytes skips storing rendered label files.
	DefaultIdempotencyMaxBodyBytes = 256 << 10
)

// Headers that describe the current request rather than the stored one.
var replaySkippedHeaders = map[string]bool{
	http.CanonicalHeaderKey(RequestIDHeader): true,
	"Content-Length":                         true,
	"Content-Encoding":                       true,
	"Vary":                                   true,
	"X-Ratelimit-Limit":                      true,
	"X-Ratelimit-Remaining":                  true,
	"X-Ratelimit-Reset":                      true,
}

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	TTL          time.Duration
	MaxEntries   int
	MaxBodyBytes int
	Enabled      bool

	store *idempotencyStore
}

// DefaultIdempotencyConfig returns default idempotency configuration.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		TTL:          IdempotencyKeyTTL,
		MaxEntries:   DefaultIdempotencyMaxEntries,
		MaxBodyBytes: DefaultIdempotencyMaxBodyBytes,
		Enabled:      true,
	}
}

// Idempotency returns a middleware that replays the stored response of a
// write repeated with the same Idempotency-Key. Keys are scoped to the
// signed-in user. Reusing a key for another request answers 422 and a key
// whose first request is still running answers 409.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	if cfg.TTL <= 0 {
		cfg.TTL = IdempotencyKeyTTL
	}
	store := cfg.store
	if store == nil {
		store = newIdempotencyStore(cfg.TTL, cfg.MaxEntries)
	}

	return func(c *gin.Context) {
		if !isIdempotentWrite(c.Request.Method) {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		fingerprint, err := requestFingerprint(c.Request)
		if err != nil {
			abortIdempotency(c, http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidRequest)
			return
		}

		scope := c.GetString(ContextUsername) + ":" + key
		cached, result := store.claim(scope, fingerprint)
		switch result {
		case claimReplay:
			replay(c, cached)
			return
		case claimInFlight:
			abortIdempotency(c, http.StatusConflict, dto.ErrCodeConflict, i18n.ErrKeyIdempotencyInFlight)
			return
		case claimMismatch:
			abortIdempotency(c, http.StatusUnprocessableEntity, dto.ErrCodeInvalidRequest, i18n.ErrKeyIdempotencyMismatch)
			return
		}

		stored := false
		defer func() {
			if !stored {
				store.release(scope)
			}
		}()

		writer := &captureWriter{ResponseWriter: c.Writer, limit: cfg.MaxBodyBytes}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status < 200 || status >= 300 || writer.overflow {
			return
		}
		store.complete(scope, &cachedResponse{
			StatusCode: status,
			Header:     writer.Header().Clone(),
			Body:       writer.body.Bytes(),
		})
		stored = true
	}
}

func isIdempotentWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

// requestFingerprint hashes the method, path and body. The body is restored
// for the handler.
func requestFingerprint(req *http.Request) (string, error) {
	hasher := sha256.New()
	hasher.Write([]byte(req.Method))
	hasher.Write([]byte{0})
	hasher.Write([]byte(req.URL.RequestURI()))
	hasher.Write([]byte{0})

	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return "", err
		}
		req.Body = io.NopCloser(bytes.NewReader(body))
		hasher.Write(body)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

func replay(c *gin.Context, resp *cachedResponse) {
	for k, values := range resp.Header {
		if replaySkippedHeaders[k] {
			continue
		}
		for i, v := range values {
			if i == 0 {
				c.Writer.Header().Set(k, v)
			} else {
				c.Writer.Header().Add(k, v)
			}
		}
	}
	c.Header(IdempotencyReplayedHeader, "true")

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(resp.StatusCode, contentType, resp.Body)
	c.Abort()
}

func abortIdempotency(c *gin.Context, status int, code, key string) {
	message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
	c.AbortWithStatusJSON(status, dto.NewError(code, message).WithRequestID(GetRequestID(c)))
}

// captureWriter tees the response body until it grows past limit.
type captureWriter struct {
	gin.ResponseWriter
	body     bytes.Buffer
	limit    int
	overflow bool
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.capture(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.capture([]byte(s))
	return w.ResponseWriter.WriteString(s)
}

func (w *captureWriter) capture(b []byte) {
	if w.overflow {
		return
	}
	if w.limit > 0 && w.body.Len()+len(b) > w.limit {
		w.overflow = true
		w.body.Reset()
		return
	}
	w.body.Write(b)
}
