package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/move-labels/internal/circuitbreaker"
	"github.com/guttosm/move-labels/internal/domain/dto"
	"github.com/guttosm/move-labels/internal/i18n"
	"github.com/guttosm/move-labels/internal/middleware"
	"github.com/guttosm/move-labels/internal/render"
	"github.com/guttosm/move-labels/internal/service"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKey    string
	}{
		{"box not found", service.ErrBoxNotFound, http.StatusNotFound, i18n.ErrKeyBoxNotFound},
		{"wrapped item not found", fmt.Errorf("update: %w", service.ErrItemNotFound), http.StatusNotFound, i18n.ErrKeyItemNotFound},
		{"label size not found", service.ErrLabelSizeNotFound, http.StatusNotFound, i18n.ErrKeyLabelSizeNotFound},
		{"renderer got no boxes", render.ErrNoBoxes, http.StatusNotFound, i18n.ErrKeyNoBoxes},
		{"no boxes matched", service.ErrNoBoxesFound, http.StatusNotFound, i18n.ErrKeyNoBoxes},
		{"duplicate label size", service.ErrLabelSizeExists, http.StatusConflict, i18n.ErrKeyLabelSizeExists},
		{"no label sizes", service.ErrNoLabelSizes, http.StatusBadRequest, i18n.ErrKeyNoLabelSizes},
		{"empty scan", service.ErrEmptyScan, http.StatusBadRequest, i18n.ErrKeyNoCode},
		{"unknown format", service.ErrUnknownFormat, http.StatusBadRequest, i18n.ErrKeyUnknownFormat},
		{"missing label size", render.ErrMissingLabelSize, http.StatusBadRequest, i18n.ErrKeyInvalidRequest},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials},
		{"bad token", service.ErrInvalidToken, http.StatusUnauthorized, i18n.ErrKeyInvalidToken},
		{"short codes exhausted", service.ErrShortCodeExhausted, http.StatusInternalServerError, i18n.ErrKeyShortCodeExhausted},
		{"circuit open", circuitbreaker.ErrCircuitOpen, http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable},
		{"no repository", service.ErrRepositoryNotConfigured, http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable},
		{"render timeout", fmt.Errorf("render: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, i18n.ErrKeyTimeout},
		{"anything else", errors.New("boom"), http.StatusInternalServerError, i18n.ErrKeyInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, key := errorStatus(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestResponseBuilder_Fail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails map[string]string
	}{
		{
			name:        "validation error",
			err:         &dto.ValidationError{Field: "priority", Message: "must be one of low, medium, high"},
			wantStatus:  http.StatusBadRequest,
			wantCode:    dto.ErrCodeInvalidRequest,
			wantDetails: map[string]string{"priority": "must be one of low, medium, high"},
		},
		{
			name:       "not found",
			err:        service.ErrBoxNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrCodeNotFound,
		},
		{
			name:       "unavailable",
			err:        circuitbreaker.ErrCircuitOpen,
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   dto.ErrCodeUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			middleware.RequestID()(c)

			NewResponseBuilder(c).Fail(tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.wantCode, resp.Error)
			assert.NotEmpty(t, resp.Message)
			assert.NotEmpty(t, resp.RequestID)
			if tt.wantDetails != nil {
				assert.Equal(t, tt.wantDetails, resp.Details)
			}
		})
	}
}
