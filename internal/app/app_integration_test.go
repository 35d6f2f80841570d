//go:build integration

package app

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/move-labels/config"
)

// Subtests run sequentially: the app installs a process-wide async logger.
func TestInitializeApp_Integration(t *testing.T) {
	t.Run("sessions protect the API", func(t *testing.T) {
		router, cleanup := InitializeApp(config.Config{
			Server: config.ServerConfig{RateLimit: 100, RateWindow: time.Minute},
			Cache:  config.CacheConfig{Size: 16, TTL: time.Minute},
			Auth: config.AuthConfig{
				Enabled:       true,
				JWTSecretKey:  "integration-secret",
				SessionTTL:    time.Hour,
				AdminUsername: "admin",
				AdminPassword: "move1234",
			},
			Database: integrationDatabaseConfig(t),
		})
		defer cleanup()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/boxes", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
			bytes.NewBufferString(`{"username":"admin","password":"move1234"}`))
		req.Header.Set("Content-Type", "application/json")
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.NotEmpty(t, w.Result().Cookies())

		req = httptest.NewRequest(http.MethodGet, "/api/v1/boxes", nil)
		for _, c := range w.Result().Cookies() {
			req.AddCookie(c)
		}
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("readiness includes mongodb", func(t *testing.T) {
		router, cleanup := InitializeApp(config.Config{Database: integrationDatabaseConfig(t)})
		defer cleanup()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"mongodb":"ok"`)
	})
}
