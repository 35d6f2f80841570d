package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/move-labels/internal/domain/dto"
	"github.com/guttosm/move-labels/internal/i18n"
	"github.com/guttosm/move-labels/internal/logger"
)

// ErrorHandler logs the errors a handler attached to the context and answers
// with the error envelope when the handler wrote nothing. Client errors are
// logged at warn level and bind failures become 400.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last()
		requestID := GetRequestID(c)

		status := http.StatusInternalServerError
		key := i18n.ErrKeyInternalError
		switch {
		case c.Writer.Written():
			status = c.Writer.Status()
		case last.IsType(gin.ErrorTypeBind):
			status = http.StatusBadRequest
			key = i18n.ErrKeyInvalidRequestBody
		}

		log := logger.Logger()
		event := log.WithLevel(errorLevel(status))
		event.
			Str("request_id", requestID).
			Err(last.Err).
			Int("errors", len(c.Errors)).
			Int("status_code", status).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("request error")

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
			c.JSON(status, dto.NewError(dto.ErrCodeFromStatus(status), message).WithRequestID(requestID))
		}
	}
}

func errorLevel(status int) zerolog.Level {
	if status >= http.StatusInternalServerError {
		return zerolog.ErrorLevel
	}
	return zerolog.WarnLevel
}
