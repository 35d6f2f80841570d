package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCompression(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		path           string
		acceptEncoding string
		wantGzip       bool
	}{
		{name: "csv export with gzip", path: "/api/v1/exports/csv", acceptEncoding: "gzip", wantGzip: true},
		{name: "box list with gzip and deflate", path: "/api/v1/boxes", acceptEncoding: "gzip, deflate", wantGzip: true},
		{name: "client without gzip", path: "/api/v1/boxes"},
		{name: "png export stays as is", path: "/api/v1/exports/png", acceptEncoding: "gzip"},
		{name: "metrics negotiate their own encoding", path: "/metrics", acceptEncoding: "gzip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(Compression())
			router.GET(tt.path, func(c *gin.Context) {
				c.String(http.StatusOK, "room_code,short_code\nKIT,BX-000001\n")
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			if tt.wantGzip {
				assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
			} else {
				assert.Empty(t, w.Header().Get("Content-Encoding"))
				assert.Equal(t, "room_code,short_code\nKIT,BX-000001\n", w.Body.String())
			}
		})
	}
}
