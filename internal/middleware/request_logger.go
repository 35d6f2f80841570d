package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/move-labels/internal/domain/model"
	"github.com/guttosm/move-labels/internal/logger"
	"github.com/guttosm/move-labels/internal/service"
)

// labelWarningsHeader is set by the export handlers when a layout needed
// compromises. Stored logs keep it so unreadable labels can be traced.
const labelWarningsHeader = "X-Label-Warnings"

const directLogTimeout = 5 * time.Second

// pollPaths are polled by orchestrators and scrapers. Their successful
// requests are logged at debug level and never stored.
var pollPaths = map[string]bool{
	"/healthz": true,
	"/readyz":  true,
	"/metrics": true,
}

// RequestLogger writes one console line per request and, when a logging
// service is given, stores the request through the async logger queue.
func RequestLogger(loggingService service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		entry := requestEntry(c, time.Since(start))
		polled := pollPaths[entry.Path] && entry.StatusCode < 400

		level, _ := zerolog.ParseLevel(entry.Level)
		if polled {
			level = zerolog.DebugLevel
		}
		log := logger.Logger()
		event := log.WithLevel(level).
			Str("request_id", entry.RequestID).
			Str("method", entry.Method).
			Str("path", entry.Path).
			Int("status_code", entry.StatusCode).
			Int64("duration_ms", entry.Duration).
			Str("ip", entry.IP).
			Str("username", entry.Username)
		if entry.Error != "" {
			event = event.Str("error", entry.Error)
		}
		event.Msg(entry.Message)

		if polled || loggingService == nil {
			return
		}
		if asyncLogger := GetAsyncLogger(); asyncLogger != nil {
			asyncLogger.Log(entry)
			return
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), directLogTimeout)
			defer cancel()
			_ = loggingService.CreateLog(ctx, entry)
		}()
	}
}

// requestEntry describes the finished request in c.
func requestEntry(c *gin.Context, latency time.Duration) *model.LogEntry {
	status := c.Writer.Status()
	entry := &model.LogEntry{
		Timestamp:  time.Now().UTC(),
		Level:      getLogLevel(status),
		Message:    "HTTP request",
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		StatusCode: status,
		Duration:   latency.Milliseconds(),
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		Username:   c.GetString(ContextUsername),
	}
	if len(c.Errors) > 0 {
		entry.Error = c.Errors.Last().Error()
	}
	if route := c.FullPath(); route != "" && route != entry.Path {
		entry.WithField("route", route)
	}
	if size := c.Writer.Size(); size > 0 {
		entry.WithField("bytes", size)
	}
	if warnings := c.Writer.Header().Get(labelWarningsHeader); warnings != "" {
		entry.WithField("label_warnings", warnings)
	}
	return entry
}

// getLogLevel returns the log level based on HTTP status code.
func getLogLevel(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}
