//go:build !integration

package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/move-labels/config"
	"github.com/guttosm/move-labels/internal/middleware"
)

func TestInitializeApp_WithoutDatabase(t *testing.T) {
	tests := []struct {
		name           string
		cfg            config.Config
		path           string
		expectedStatus int
	}{
		{
			name: "label sizes fall back to presets",
			cfg: config.Config{
				Server: config.ServerConfig{RateLimit: 100, RateWindow: time.Minute},
				Cache:  config.CacheConfig{Size: 16, TTL: time.Minute},
			},
			path:           "/api/v1/label-sizes",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "boxes report the missing store",
			cfg:            config.Config{},
			path:           "/api/v1/boxes",
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "auth enabled without user store keeps routes public",
			cfg:            config.Config{Auth: config.AuthConfig{Enabled: true}},
			path:           "/api/v1/label-sizes",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "liveness",
			cfg:            config.Config{},
			path:           "/healthz",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, cleanup := InitializeApp(tt.cfg)
			require.NotNil(t, router)
			defer cleanup()

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func TestInitializeApp_CleanupStopsAsyncLogger(t *testing.T) {
	_, cleanup := InitializeApp(config.Config{})
	cleanup()

	assert.Nil(t, middleware.GetAsyncLogger())
}
