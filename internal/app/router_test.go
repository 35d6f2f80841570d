//go:build !integration

package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/move-labels/config"
	"github.com/guttosm/move-labels/internal/circuitbreaker"
	api "github.com/guttosm/move-labels/internal/http"
	"github.com/guttosm/move-labels/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestInitializeRouter(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		services func(*testing.T) *ServiceComponents
		validate func(*testing.T, *RouterComponents)
	}{
		{
			name: "maps server and session settings",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:      100,
					RateWindow:     time.Minute,
					RequestTimeout: 30 * time.Second,
					ExportLimit:    20,
					CORSOrigins:    []string{"http://localhost:3000"},
				},
				Auth: config.AuthConfig{CookieName: "sid", SecureCookie: true, SessionTTL: time.Hour},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components.Handler)
				assert.NotNil(t, components.HealthHandler)
				assert.True(t, components.Config.EnableIdempotency)
				assert.Equal(t, 100, components.Config.RateLimit)
				assert.Equal(t, 30*time.Second, components.Config.RequestTimeout)
				assert.Equal(t, 20, components.Config.ExportRateLimit)
				assert.Equal(t, api.SessionCookieConfig{Name: "sid", Secure: true, TTL: time.Hour}, components.Config.Session)
				assert.NotNil(t, components.Config.LoggingService)
				assert.Nil(t, components.Config.AuthService, "no auth service means public routes")
			},
		},
		{
			name: "passes the auth service through",
			services: func(t *testing.T) *ServiceComponents {
				s := InitializeServices(config.Config{}, nil)
				s.Auth = mocks.NewMockAuthService(t)
				return s
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components.Config.AuthService)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var services *ServiceComponents
			if tt.services != nil {
				services = tt.services(t)
			} else {
				services = InitializeServices(tt.cfg, nil)
			}

			components := InitializeRouter(services, nil, tt.cfg)

			require.NotNil(t, components)
			tt.validate(t, components)
		})
	}
}

func TestInitializeRouter_ReadinessReflectsBreakers(t *testing.T) {
	open := circuitbreaker.New(circuitbreaker.Config{FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Hour, Name: "boxes"})
	_ = open.Execute(context.Background(), func() error { return errors.New("connection refused") })

	tests := []struct {
		name           string
		breakers       map[string]*circuitbreaker.CircuitBreaker
		expectedStatus int
	}{
		{
			name:           "closed breakers",
			breakers:       map[string]*circuitbreaker.CircuitBreaker{breakerBoxes: circuitbreaker.New(circuitbreaker.DefaultConfig())},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "open breaker",
			breakers:       map[string]*circuitbreaker.CircuitBreaker{breakerBoxes: open},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Config{}
			components := InitializeRouter(InitializeServices(cfg, nil), &DatabaseComponents{CircuitBreakers: tt.breakers}, cfg)
			router := api.NewRouter(components.Handler, components.HealthHandler, components.Config)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), breakerBoxes+"_circuit")
		})
	}
}
