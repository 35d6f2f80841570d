package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/move-labels/internal/domain/dto"
	"github.com/guttosm/move-labels/internal/i18n"
	"github.com/guttosm/move-labels/internal/logger"
	"github.com/guttosm/move-labels/internal/metrics"
)

// Recovery turns a handler panic into a translated 500 envelope. The panic
// value and stack are logged with the request ID. http.ErrAbortHandler is
// re-raised so the server drops the connection as net/http expects.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			route := c.FullPath()
			if route == "" {
				route = "unmatched"
			}
			metrics.RecordPanic(route)

			requestID := GetRequestID(c)
			log := logger.Logger()
			log.Error().
				Str("request_id", requestID).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from handler panic")

			if c.Writer.Written() {
				// Headers are gone; the client sees a truncated body.
				c.Abort()
				return
			}
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
		}()
		c.Next()
	}
}
