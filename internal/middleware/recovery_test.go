package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/move-labels/internal/domain/dto"
	"github.com/guttosm/move-labels/internal/metrics"
)

func newRecoveryRouter(route string, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), Recovery())
	router.GET(route, handler)
	return router
}

func TestRecovery(t *testing.T) {
	tests := []struct {
		name       string
		route      string
		handler    gin.HandlerFunc
		wantStatus int
		wantPanic  bool
		wantBody   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:       "string panic becomes 500 envelope",
			route:      "/api/v1/exports/pdf",
			handler:    func(*gin.Context) { panic("layout exploded") },
			wantStatus: http.StatusInternalServerError,
			wantPanic:  true,
			wantBody: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, dto.ErrCodeInternal, resp.Error)
				assert.Equal(t, "req-42", resp.RequestID)
				assert.NotEmpty(t, resp.Message)
			},
		},
		{
			name:  "nil map write panics with runtime error",
			route: "/api/v1/boxes",
			handler: func(*gin.Context) {
				var m map[string]int
				m["boxes"]++
			},
			wantStatus: http.StatusInternalServerError,
			wantPanic:  true,
		},
		{
			name:  "panic after the body started keeps the original status",
			route: "/api/v1/exports/csv",
			handler: func(c *gin.Context) {
				c.String(http.StatusOK, "shortCode,room\n")
				panic("csv writer failed")
			},
			wantStatus: http.StatusOK,
			wantPanic:  true,
			wantBody: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "shortCode,room\n", w.Body.String())
			},
		},
		{
			name:       "no panic passes through",
			route:      "/api/v1/label-sizes",
			handler:    func(c *gin.Context) { c.String(http.StatusOK, "ok") },
			wantStatus: http.StatusOK,
			wantBody: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "ok", w.Body.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRecoveryRouter(tt.route, tt.handler)
			before := testutil.ToFloat64(metrics.PanicsRecoveredTotal.WithLabelValues(tt.route))

			req := httptest.NewRequest(http.MethodGet, tt.route, nil)
			req.Header.Set(RequestIDHeader, "req-42")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != nil {
				tt.wantBody(t, w)
			}

			after := testutil.ToFloat64(metrics.PanicsRecoveredTotal.WithLabelValues(tt.route))
			if tt.wantPanic {
				assert.Equal(t, before+1, after)
			} else {
				assert.Equal(t, before, after)
			}
		})
	}
}

func TestRecovery_RepanicsAbortHandler(t *testing.T) {
	router := newRecoveryRouter("/stream", func(*gin.Context) { panic(http.ErrAbortHandler) })

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/stream", nil))
	})
}
