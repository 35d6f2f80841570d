package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/move-labels/internal/circuitbreaker"
)

type readinessBody struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func TestHealthHandler_Readiness(t *testing.T) {
	gin.SetMode(gin.TestMode)

	openBreaker := func() *circuitbreaker.CircuitBreaker {
		cb := circuitbreaker.New(circuitbreaker.Config{FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Hour, Name: "boxes"})
		_ = cb.Execute(context.Background(), func() error { return errors.New("connection refused") })
		return cb
	}

	tests := []struct {
		name           string
		setup          func(*HealthHandler)
		expectedStatus int
		expectedChecks map[string]string
	}{
		{
			name:           "no dependencies",
			setup:          func(*HealthHandler) {},
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]string{"service": "ok"},
		},
		{
			name: "healthy database and closed breaker",
			setup: func(h *HealthHandler) {
				h.RegisterChecker("mongodb", HealthCheckFunc(func(context.Context) error { return nil }))
				h.RegisterCircuitBreaker("mongodb_boxes", circuitbreaker.New(circuitbreaker.DefaultConfig()))
			},
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]string{"mongodb": "ok", "mongodb_boxes_circuit": "closed"},
		},
		{
			name: "unreachable database",
			setup: func(h *HealthHandler) {
				h.RegisterChecker("mongodb", HealthCheckFunc(func(context.Context) error {
					return errors.New("server selection timeout")
				}))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedChecks: map[string]string{"mongodb": "server selection timeout"},
		},
		{
			name: "slow checker hits the check timeout",
			setup: func(h *HealthHandler) {
				h.checkTimeout = 20 * time.Millisecond
				h.RegisterChecker("mongodb", HealthCheckFunc(func(ctx context.Context) error {
					<-ctx.Done()
					return ctx.Err()
				}))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedChecks: map[string]string{"mongodb": context.DeadlineExceeded.Error()},
		},
		{
			name: "open breaker",
			setup: func(h *HealthHandler) {
				h.RegisterCircuitBreaker("mongodb_boxes", openBreaker())
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedChecks: map[string]string{"mongodb_boxes_circuit": "open"},
		},
		{
			name: "nil breaker is ignored",
			setup: func(h *HealthHandler) {
				h.RegisterCircuitBreaker("mongodb_boxes", nil)
			},
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]string{"service": "ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler()
			tt.setup(handler)
			router := gin.New()
			handler.Register(router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			var body readinessBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedChecks, body.Checks)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "ok", body.Status)
			} else {
				assert.Equal(t, "degraded", body.Status)
			}
		})
	}
}

func TestHealthHandler_Liveness(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHealthHandler().Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "move-labels", body["service"])
	assert.NotEmpty(t, body["uptime"])
}
