// Package middleware holds the gin middleware of the move-labels API:
// request IDs, session auth, logging, rate limiting and idempotent writes.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLength caps client supplied IDs before they reach the logs.
const maxRequestIDLength = 128

// ContextKey type for context keys to avoid collisions.
type ContextKey string

// RequestIDKey is the key of the request ID in the gin and request contexts.
const RequestIDKey ContextKey = "request_id"

// RequestID gives every request an ID. A well-formed client ID is kept;
// anything else is replaced by a time-ordered UUID. The ID is echoed in the
// response and stored on both the gin and the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if !validRequestID(requestID) {
			requestID = newRequestID()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), RequestIDKey, requestID))
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == ':':
		default:
			return false
		}
	}
	return true
}

// GetRequestID retrieves the request ID from the gin context.
func GetRequestID(c *gin.Context) string {
	if id, ok := c.Get(string(RequestIDKey)); ok {
		if requestID, ok := id.(string); ok {
			return requestID
		}
	}
	return ""
}

// RequestIDFromContext retrieves the request ID from a request context, for
// code below the handlers.
func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(RequestIDKey).(string)
	return requestID
}
