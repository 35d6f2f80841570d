package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		handler        gin.HandlerFunc
		expectedStatus int
		expectedBody   string
		mustContain    []string
	}{
		{
			name: "unwritten error becomes 500",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("mongo: connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			mustContain:    []string{"internal_error", "An unexpected error occurred", "request_id"},
		},
		{
			name: "bind error becomes 400",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("invalid character")).SetType(gin.ErrorTypeBind)
			},
			expectedStatus: http.StatusBadRequest,
			mustContain:    []string{"invalid_request"},
		},
		{
			name: "written response is kept",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("box not found"))
				c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"not_found"}`,
		},
		{
			name: "no errors",
			handler: func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), ErrorHandler())
			router.POST("/boxes", tt.handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/boxes", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, w.Body.String())
			}
			for _, substr := range tt.mustContain {
				assert.Contains(t, w.Body.String(), substr)
			}
		})
	}
}

func TestErrorLevel(t *testing.T) {
	tests := []struct {
		status int
		want   zerolog.Level
	}{
		{status: http.StatusNotFound, want: zerolog.WarnLevel},
		{status: http.StatusConflict, want: zerolog.WarnLevel},
		{status: http.StatusInternalServerError, want: zerolog.ErrorLevel},
		{status: http.StatusServiceUnavailable, want: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, errorLevel(tt.status))
		})
	}
}
