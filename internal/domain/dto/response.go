package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/move-labels/internal/domain/model"
	"github.com/guttosm/move-labels/internal/label"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnavailable indicates the database is down or the circuit is open.
	ErrCodeUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful JSON responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	Data      interface{} `json:"data" swaggertype:"object"`
	RequestID string      `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time   `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"labelSizeId: labelSizeId or labelSize is required"`
	// Details maps a field to its problem.
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name ErrorResponse

// PreviewResponse is the layout computed for a preview request.
//
// @Description Computed label layout
type PreviewResponse struct {
	LabelSize label.LabelSize      `json:"labelSize"`
	Template  label.Template       `json:"template" swaggertype:"string" example:"standard_inventory"`
	Layout    label.RenderedLayout `json:"layout"`
	Strategy  label.StrategyKind   `json:"strategy" swaggertype:"string" example:"single"`
	Plan      interface{}          `json:"plan" swaggertype:"object"`
} // @name PreviewResponse

// ProvidersResponse lists the export providers.
type ProvidersResponse struct {
	Providers []ProviderInfo `json:"providers"`
} // @name ProvidersResponse

// ProviderInfo describes one export provider.
type ProviderInfo struct {
	Name     string `json:"name" example:"supvan"`
	Guidance string `json:"guidance,omitempty"`
} // @name ProviderInfo

// TemplateInfo describes one label template.
type TemplateInfo struct {
	Key         string `json:"key" example:"fragile"`
	DisplayName string `json:"displayName" example:"FRAGILE"`
} // @name TemplateInfo

// LogPage is one page of stored request logs.
type LogPage struct {
	Items []model.LogEntry `json:"items"`
	Total int64            `json:"total" example:"120"`
	Limit int              `json:"limit" example:"50"`
	Skip  int              `json:"skip" example:"0"`
} // @name LogPage

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetails attaches field-level details.
func (e ErrorResponse) WithDetails(details map[string]string) ErrorResponse {
	e.Details = details
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge, http.StatusUnprocessableEntity:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}
