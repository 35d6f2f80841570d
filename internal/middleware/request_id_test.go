package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	generated := func(t *testing.T, id string) {
		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())
	}

	tests := []struct {
		name     string
		header   string
		validate func(*testing.T, string)
	}{
		{name: "generates an ID when missing", validate: generated},
		{
			name:   "keeps a well-formed client ID",
			header: "scan-42.kitchen_A:1",
			validate: func(t *testing.T, id string) {
				assert.Equal(t, "scan-42.kitchen_A:1", id)
			},
		},
		{name: "replaces an ID with spaces", header: "bad id", validate: generated},
		{name: "replaces a log injection attempt", header: "x\nlevel=error", validate: generated},
		{name: "replaces an overlong ID", header: strings.Repeat("a", maxRequestIDLength+1), validate: generated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromContext string
			router := gin.New()
			router.Use(RequestID())
			router.GET("/boxes", func(c *gin.Context) {
				fromContext = RequestIDFromContext(c.Request.Context())
				c.String(http.StatusOK, GetRequestID(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/boxes", nil)
			if tt.header != "" {
				req.Header[RequestIDHeader] = []string{tt.header}
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			id := w.Body.String()
			assert.Equal(t, id, w.Header().Get(RequestIDHeader))
			assert.Equal(t, id, fromContext)
			tt.validate(t, id)
		})
	}
}

func TestGetRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		setup    func(*gin.Context)
		expected string
	}{
		{name: "empty when unset", setup: func(*gin.Context) {}},
		{
			name:     "set as string",
			setup:    func(c *gin.Context) { c.Set(string(RequestIDKey), "test-id-123") },
			expected: "test-id-123",
		},
		{
			name:  "ignores other types",
			setup: func(c *gin.Context) { c.Set(string(RequestIDKey), 42) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
			tt.setup(c)

			assert.Equal(t, tt.expected, GetRequestID(c))
		})
	}
}
