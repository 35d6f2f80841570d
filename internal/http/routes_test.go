package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/move-labels/internal/mocks"
)

// Tests for AuthRoutes

func TestNewAuthRoutes(t *testing.T) {
	mockAuthService := mocks.NewMockAuthService(t)

	routes := NewAuthRoutes(mockAuthService, nil, SessionCookieConfig{})

	assert.NotNil(t, routes)
	assert.NotNil(t, routes.handler)
	assert.Equal(t, "move_session", routes.cookieName)
}

func TestAuthRoutes_RegisterPublicRoutes(t *testing.T) {
	mockAuthService := mocks.NewMockAuthService(t)
	routes := NewAuthRoutes(mockAuthService, nil, SessionCookieConfig{})

	router := gin.New()
	api := router.Group("/api/v1")
	routes.RegisterPublicRoutes(api)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Empty body is rejected by the handler, so the route exists.
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthRoutes_ProtectedRoutesRequireSession(t *testing.T) {
	mockAuthService := mocks.NewMockAuthService(t)
	routes := NewAuthRoutes(mockAuthService, nil, SessionCookieConfig{})

	router := gin.New()
	api := router.Group("/api/v1")
	cfg := &RouterConfig{RateLimit: 100, RateWindow: time.Minute}
	routes.RegisterProtectedRoutes(routes.GetProtectedGroup(api, cfg), cfg)

	for _, tt := range []struct{ method, path string }{
		{http.MethodPost, "/api/v1/auth/logout"},
		{http.MethodGet, "/api/v1/auth/me"},
	} {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthRoutes_GetProtectedGroup(t *testing.T) {
	tests := []struct {
		name       string
		rateLimit  int
		rateWindow time.Duration
	}{
		{
			name:       "with rate limiting",
			rateLimit:  100,
			rateWindow: time.Minute,
		},
		{
			name:       "without rate limiting",
			rateLimit:  0,
			rateWindow: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuthService := mocks.NewMockAuthService(t)
			routes := NewAuthRoutes(mockAuthService, nil, SessionCookieConfig{Name: "custom"})

			router := gin.New()
			api := router.Group("/api/v1")

			cfg := &RouterConfig{
				RateLimit:  tt.rateLimit,
				RateWindow: tt.rateWindow,
			}

			protected := routes.GetProtectedGroup(api, cfg)

			assert.NotNil(t, protected)
			assert.Equal(t, "custom", routes.cookieName)
		})
	}
}

// Tests for BoxRoutes

func TestBoxRoutes_RegisterRoutes(t *testing.T) {
	handler := NewHandler(&mocks.MockBoxService{}, &mocks.MockLabelSizeService{}, &mocks.MockLabelService{}, &mocks.MockBundleService{})

	router := gin.New()
	routes := NewBoxRoutes(handler)
	routes.RegisterRoutes(router.Group("/api/v1"), nil)
	routes.RegisterExportRoutes(router.Group("/api/v1"), nil)

	registered := map[string]bool{}
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, route := range []string{
		"GET /api/v1/boxes",
		"POST /api/v1/boxes",
		"POST /api/v1/boxes/quick",
		"GET /api/v1/boxes/:id",
		"PATCH /api/v1/boxes/:id",
		"DELETE /api/v1/boxes/:id",
		"POST /api/v1/boxes/:id/items",
		"PATCH /api/v1/boxes/:id/items",
		"DELETE /api/v1/boxes/:id/items",
		"GET /api/v1/boxes/:id/activity",
		"POST /api/v1/scan",
		"GET /api/v1/search",
		"GET /api/v1/room-codes/suggest",
		"GET /api/v1/label-sizes",
		"POST /api/v1/label-sizes",
		"GET /api/v1/templates",
		"POST /api/v1/labels/preview",
		"POST /api/v1/exports/pdf",
		"POST /api/v1/exports/png",
		"GET /api/v1/exports/png",
		"POST /api/v1/exports/csv",
		"GET /api/v1/exports/label/:id",
		"GET /api/v1/exports/master-index",
		"GET /api/v1/exports/insurance",
		"GET /api/v1/exports/providers",
		"GET /api/v1/bundles",
		"POST /api/v1/bundles",
		"POST /api/v1/events",
	} {
		assert.True(t, registered[route], "route %s not registered", route)
	}
}
