// Package i18n provides internationalization support for the move-labels service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyInvalidCredentials indicates a wrong username or password.
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyInvalidToken indicates an invalid or expired session token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a session is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyAPIKeyRequired indicates an export request without an API key.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an unknown API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyServiceUnavailable indicates the database is down or disabled.
	ErrKeyServiceUnavailable = "error.service_unavailable"

	ErrKeyBoxNotFound        = "error.box_not_found"
	ErrKeyItemNotFound       = "error.item_not_found"
	ErrKeyLabelSizeNotFound  = "error.label_size_not_found"
	ErrKeyLabelSizeExists    = "error.label_size_exists"
	ErrKeyNoLabelSizes       = "error.no_label_sizes"
	ErrKeyNoBoxes            = "error.no_boxes"
	ErrKeyNoCode             = "error.no_code"
	ErrKeyUnknownFormat      = "error.unknown_format"
	ErrKeyShortCodeExhausted = "error.short_code_exhausted"
	ErrKeyRenderFailed       = "error.render_failed"

	// ErrKeyIdempotencyInFlight indicates a replayed key whose first request has not finished.
	ErrKeyIdempotencyInFlight = "error.idempotency_in_flight"
	// ErrKeyIdempotencyMismatch indicates a key reused with a different body or route.
	ErrKeyIdempotencyMismatch = "error.idempotency_mismatch"
	// ErrKeyBodyTooLarge indicates a request body over the accepted size.
	ErrKeyBodyTooLarge = "error.body_too_large"
)
