package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/guttosm/move-labels/internal/circuitbreaker"
	"github.com/guttosm/move-labels/internal/domain/dto"
	"github.com/guttosm/move-labels/internal/i18n"
	"github.com/guttosm/move-labels/internal/render"
	"github.com/guttosm/move-labels/internal/service"
)

// errorStatus maps a service error to its HTTP status and message key.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrBoxNotFound):
		return http.StatusNotFound, i18n.ErrKeyBoxNotFound
	case errors.Is(err, service.ErrItemNotFound):
		return http.StatusNotFound, i18n.ErrKeyItemNotFound
	case errors.Is(err, service.ErrLabelSizeNotFound):
		return http.StatusNotFound, i18n.ErrKeyLabelSizeNotFound
	case errors.Is(err, service.ErrNoBoxesFound), errors.Is(err, render.ErrNoBoxes):
		return http.StatusNotFound, i18n.ErrKeyNoBoxes
	case errors.Is(err, service.ErrLabelSizeExists):
		return http.StatusConflict, i18n.ErrKeyLabelSizeExists
	case errors.Is(err, service.ErrNoLabelSizes):
		return http.StatusBadRequest, i18n.ErrKeyNoLabelSizes
	case errors.Is(err, service.ErrEmptyScan):
		return http.StatusBadRequest, i18n.ErrKeyNoCode
	case errors.Is(err, service.ErrUnknownFormat):
		return http.StatusBadRequest, i18n.ErrKeyUnknownFormat
	case errors.Is(err, render.ErrMissingLabelSize),
		errors.Is(err, render.ErrDPIOutOfRange),
		errors.Is(err, render.ErrRasterTooLarge):
		return http.StatusBadRequest, i18n.ErrKeyInvalidRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, i18n.ErrKeyInvalidToken
	case errors.Is(err, service.ErrShortCodeExhausted):
		return http.StatusInternalServerError, i18n.ErrKeyShortCodeExhausted
	case errors.Is(err, circuitbreaker.ErrCircuitOpen), errors.Is(err, service.ErrRepositoryNotConfigured):
		return http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, i18n.ErrKeyTimeout
	default:
		return http.StatusInternalServerError, i18n.ErrKeyInternalError
	}
}

// Fail writes the error envelope for err. Validation errors keep their own
// message and name the offending field in details.
func (b *ResponseBuilder) Fail(err error) {
	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		b.ErrorWithDetails(http.StatusBadRequest, verr.Error(), map[string]string{verr.Field: verr.Message}, err)
		return
	}
	status, key := errorStatus(err)
	b.Error(status, key, err)
}
