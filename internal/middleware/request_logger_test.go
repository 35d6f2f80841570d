//go:build !integration

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/move-labels/internal/domain/model"
	"github.com/guttosm/move-labels/internal/mocks"
)

func Test_getLogLevel(t *testing.T) {
	tests := []struct {
		statusCode int
		expected   string
	}{
		{statusCode: http.StatusOK, expected: "info"},
		{statusCode: http.StatusCreated, expected: "info"},
		{statusCode: http.StatusFound, expected: "info"},
		{statusCode: http.StatusBadRequest, expected: "warn"},
		{statusCode: http.StatusTooManyRequests, expected: "warn"},
		{statusCode: http.StatusInternalServerError, expected: "error"},
		{statusCode: http.StatusServiceUnavailable, expected: "error"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.statusCode), func(t *testing.T) {
			assert.Equal(t, tt.expected, getLogLevel(tt.statusCode))
		})
	}
}

func TestRequestLogger_StoresEntries(t *testing.T) {
	gin.SetMode(gin.TestMode)
	StopAsyncLogger()

	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		username   string
		wantStored bool
		wantLevel  string
	}{
		{name: "box creation", method: http.MethodPost, path: "/api/v1/boxes", statusCode: http.StatusCreated, username: "admin", wantStored: true, wantLevel: "info"},
		{name: "unknown box", method: http.MethodGet, path: "/api/v1/boxes/missing", statusCode: http.StatusNotFound, wantStored: true, wantLevel: "warn"},
		{name: "render failure", method: http.MethodPost, path: "/api/v1/exports/pdf", statusCode: http.StatusInternalServerError, wantStored: true, wantLevel: "error"},
		{name: "readiness check is not stored", method: http.MethodGet, path: "/readyz", statusCode: http.StatusOK},
		{name: "metrics scrape is not stored", method: http.MethodGet, path: "/metrics", statusCode: http.StatusOK},
		{name: "failing readiness check is stored", method: http.MethodGet, path: "/readyz", statusCode: http.StatusServiceUnavailable, wantStored: true, wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done := make(chan struct{})
			loggingService := mocks.NewMockLoggingService(t)
			if tt.wantStored {
				loggingService.On("CreateLog", mock.Anything, mock.MatchedBy(func(entry *model.LogEntry) bool {
					return entry.Path == tt.path &&
						entry.Method == tt.method &&
						entry.StatusCode == tt.statusCode &&
						entry.Level == tt.wantLevel &&
						entry.Username == tt.username &&
						entry.RequestID != ""
				})).Run(func(mock.Arguments) { close(done) }).Return(nil).Once()
			}

			router := gin.New()
			router.Use(RequestID(), func(c *gin.Context) {
				if tt.username != "" {
					c.Set(ContextUsername, tt.username)
				}
				c.Next()
			})
			router.Use(RequestLogger(loggingService))
			router.Handle(tt.method, tt.path, func(c *gin.Context) {
				c.Status(tt.statusCode)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.statusCode, w.Code)

			if !tt.wantStored {
				return
			}
			select {
			case <-done:
			case <-time.After(time.Second):
				t.Fatal("request log was not written")
			}
		})
	}
}

func TestRequestEntry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var entry *model.LogEntry
	router := gin.New()
	router.Use(RequestID(), func(c *gin.Context) {
		c.Next()
		entry = requestEntry(c, 1500*time.Millisecond)
	})
	router.POST("/api/v1/boxes/:id/labels", func(c *gin.Context) {
		_ = c.Error(errors.New("qr payload trimmed"))
		c.Header(labelWarningsHeader, "QR code is small; scanning may be unreliable")
		c.String(http.StatusOK, "%PDF-1.4")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/boxes/BX-000042/labels", nil)
	req.Header.Set("User-Agent", "labelctl/1.0")
	router.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, entry)
	assert.Equal(t, "info", entry.Level)
	assert.Equal(t, "/api/v1/boxes/BX-000042/labels", entry.Path)
	assert.Equal(t, int64(1500), entry.Duration)
	assert.Equal(t, "labelctl/1.0", entry.UserAgent)
	assert.Equal(t, "qr payload trimmed", entry.Error)
	assert.NotEmpty(t, entry.RequestID)
	assert.Equal(t, "/api/v1/boxes/:id/labels", entry.Fields["route"])
	assert.Equal(t, 8, entry.Fields["bytes"])
	assert.Equal(t, "QR code is small; scanning may be unreliable", entry.Fields["label_warnings"])
}

func TestRequestLogger_WithoutLoggingService(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), RequestLogger(nil))
	router.GET("/api/v1/label-sizes", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/label-sizes", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestLogger_UsesAsyncLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sink := &mocks.MockLoggingService{}
	sink.On("CreateLogs", mock.Anything, mock.MatchedBy(func(entries []*model.LogEntry) bool {
		return len(entries) == 1 && entries[0].Path == "/api/v1/scan"
	})).Return(nil).Once()
	InitAsyncLogger(sink, AsyncLoggerConfig{BatchSize: 10, FlushInterval: time.Hour})

	direct := mocks.NewMockLoggingService(t)
	router := gin.New()
	router.Use(RequestID(), RequestLogger(direct))
	router.POST("/api/v1/scan", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/scan", nil))

	StopAsyncLogger()
	sink.AssertExpectations(t)
}
