package middleware

import (
	"context"
	"maps"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/move-labels/internal/domain/model"
	"github.com/guttosm/move-labels/internal/service"
)

const auditWriteTimeout = 5 * time.Second

// AuditLog records a product activity event for the current request.
// The write runs in the background with the signed-in username attached, so
// it survives the request being cancelled. When the async logger runs, the
// event goes through its queue and recorder is not called directly.
func AuditLog(recorder service.ActivityRecorder, c *gin.Context, action, boxID string, details map[string]any) {
	if recorder == nil {
		return
	}

	username := actorName(c)
	details = maps.Clone(details)
	if details == nil {
		details = map[string]any{}
	}
	if requestID := GetRequestID(c); requestID != "" {
		details["request_id"] = requestID
	}

	if asyncLogger := GetAsyncLogger(); asyncLogger != nil {
		asyncLogger.Record(username, action, boxID, details)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		defer cancel()
		recorder.Record(service.WithActor(ctx, username), action, boxID, details)
	}()
}

// AuditLogError stores a failed action, such as a rejected login, as an
// error-level request log entry.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, action, message string, err error, fields map[string]any) {
	if loggingService == nil {
		return
	}

	entry := &model.LogEntry{
		Timestamp: time.Now(),
		Level:     "error",
		Message:   message,
		RequestID: GetRequestID(c),
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Username:  actorName(c),
		Fields:    fields,
	}
	if err != nil {
		entry.Error = err.Error()
	}
	entry.WithField("action", action)

	if asyncLogger := GetAsyncLogger(); asyncLogger != nil {
		asyncLogger.Log(entry)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}

// actorName prefers the session username and falls back to one already on
// the request context.
func actorName(c *gin.Context) string {
	if name := c.GetString(ContextUsername); name != "" {
		return name
	}
	return service.ActorFrom(c.Request.Context())
}
