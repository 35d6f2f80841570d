package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/move-labels/internal/domain/dto"
	"github.com/guttosm/move-labels/internal/i18n"
	"github.com/guttosm/move-labels/internal/middleware"
)

// maxRequestBodyBytes caps JSON request bodies. Export requests carrying a
// whole move inline are the largest legitimate payloads.
const maxRequestBodyBytes = 4 << 20

// Validator is implemented by request DTOs that check their own fields.
type Validator interface {
	Validate() error
}

// DecodeJSON reads the request body into a new T and runs Validate when T
// implements Validator.
func DecodeJSON[T any](c *gin.Context) (*T, error) {
	if c.Request.Body != nil {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBodyBytes)
	}

	req := new(T)
	if err := c.ShouldBindJSON(req); err != nil {
		return nil, err
	}
	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// bind decodes and validates the JSON body. On failure it writes the error
// response and returns false.
func bind[T any](c *gin.Context) (*T, bool) {
	req, err := DecodeJSON[T](c)
	if err == nil {
		return req, true
	}

	builder := NewResponseBuilder(c)
	var (
		verr    *dto.ValidationError
		tooLong *http.MaxBytesError
	)
	switch {
	case errors.As(err, &verr):
		builder.Fail(err)
	case errors.As(err, &tooLong):
		builder.Error(http.StatusRequestEntityTooLarge, i18n.ErrKeyBodyTooLarge, err)
	default:
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
	}
	return nil, false
}

// ResponseBuilder writes the success and error envelopes for one request.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success wraps data in the success envelope.
func (b *ResponseBuilder) Success(statusCode int, data any) {
	b.c.JSON(statusCode, dto.SuccessResponse{
		Data:      data,
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: time.Now(),
	})
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data any) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data any) {
	b.Success(http.StatusCreated, data)
}

// Error aborts with the translated message for messageKey. A non-nil err is
// attached to the context for the error handler to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	b.abort(statusCode, dto.NewError(dto.ErrCodeFromStatus(statusCode), message), err)
}

// ErrorWithDetails aborts with an untranslated message and field-level details.
func (b *ResponseBuilder) ErrorWithDetails(statusCode int, message string, details map[string]string, err error) {
	b.abort(statusCode, dto.NewError(dto.ErrCodeFromStatus(statusCode), message).WithDetails(details), err)
}

func (b *ResponseBuilder) abort(statusCode int, resp dto.ErrorResponse, err error) {
	if err != nil {
		_ = b.c.Error(err)
	}
	b.c.AbortWithStatusJSON(statusCode, resp.WithRequestID(middleware.GetRequestID(b.c)))
}
