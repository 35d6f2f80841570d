package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/move-labels/internal/domain/dto"
	"github.com/guttosm/move-labels/internal/i18n"
)

// TimeoutConfig holds configuration for the timeout middleware.
type TimeoutConfig struct {
	// Timeout bounds the request context, label rendering included.
	Timeout time.Duration
}

// DefaultTimeoutConfig returns the default request timeout.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{Timeout: 30 * time.Second}
}

// Timeout puts a deadline on the request context. Handlers stay on the
// request goroutine and are expected to honor the context; if one returns
// after the deadline without writing, the client gets 504.
func Timeout(cfg TimeoutConfig) gin.HandlerFunc {
	if cfg.Timeout <= 0 {
		cfg = DefaultTimeoutConfig()
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if c.Writer.Written() || !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return
		}

		message := i18n.GetTranslator().Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
		c.AbortWithStatusJSON(http.StatusGatewayTimeout,
			dto.NewError(dto.ErrCodeTimeout, message).WithRequestID(GetRequestID(c)))
	}
}

// TimeoutWithDuration is Timeout with only the duration set.
func TimeoutWithDuration(timeout time.Duration) gin.HandlerFunc {
	return Timeout(TimeoutConfig{Timeout: timeout})
}
