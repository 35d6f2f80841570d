package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/move-labels/internal/domain/model"
	"github.com/guttosm/move-labels/internal/mocks"
	"github.com/guttosm/move-labels/internal/service"
)

func TestAPIKeyAuth(t *testing.T) {
	validKeys := map[string]bool{"printer-key": true, "cli-key": true}

	tests := []struct {
		name           string
		validKeys      map[string]bool
		setupRequest   func(*http.Request)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "allows request with valid API key in header",
			validKeys:      validKeys,
			setupRequest:   func(req *http.Request) { req.Header.Set(APIKeyHeader, "printer-key") },
			expectedStatus: http.StatusOK,
			expectedBody:   APIKeyActor,
		},
		{
			name:           "allows request with valid API key in query",
			validKeys:      validKeys,
			setupRequest:   func(req *http.Request) { req.URL.RawQuery = "api_key=cli-key" },
			expectedStatus: http.StatusOK,
			expectedBody:   APIKeyActor,
		},
		{
			name:      "header wins over query",
			validKeys: validKeys,
			setupRequest: func(req *http.Request) {
				req.Header.Set(APIKeyHeader, "stolen")
				req.URL.RawQuery = "api_key=cli-key"
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid API key",
		},
		{
			name:           "rejects request without API key",
			validKeys:      validKeys,
			setupRequest:   func(*http.Request) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "API key is required",
		},
		{
			name:           "rejects request with invalid API key",
			validKeys:      validKeys,
			setupRequest:   func(req *http.Request) { req.Header.Set(APIKeyHeader, "invalid-key") },
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid API key",
		},
		{
			name:           "allows all requests when no keys configured",
			validKeys:      nil,
			setupRequest:   func(*http.Request) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "allows all requests when empty keys map",
			validKeys:      map[string]bool{},
			setupRequest:   func(*http.Request) {},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.Use(RequestID())
			router.Use(APIKeyAuth(tt.validKeys))
			router.GET("/test", func(c *gin.Context) {
				c.String(http.StatusOK, service.ActorFrom(c.Request.Context()))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			tt.setupRequest(req)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Contains(t, w.Body.String(), `"error":"unauthorized"`)
			}
		})
	}
}

func TestAPIKeyAuth_ScopesRequestsToKeyActor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(APIKeyAuth(map[string]bool{"printer-key": true}))
	router.GET("/test", func(c *gin.Context) {
		assert.Equal(t, APIKeyActor, c.GetString(ContextUsername))
		assert.Equal(t, "user:"+APIKeyActor, userKey(c))
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(APIKeyHeader, "printer-key")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAPIKeyOrSession(t *testing.T) {
	user := &model.SessionUser{ID: "665f1c2e8b3e4a0012a1b2c3", Username: "admin"}
	validKeys := map[string]bool{"printer-key": true}

	tests := []struct {
		name           string
		validKeys      map[string]bool
		apiKey         string
		bearer         string
		setupMocks     func(*mocks.MockAuthService)
		expectedStatus int
		expectedActor  string
	}{
		{
			name:           "valid key skips the session",
			validKeys:      validKeys,
			apiKey:         "printer-key",
			setupMocks:     func(*mocks.MockAuthService) {},
			expectedStatus: http.StatusOK,
			expectedActor:  APIKeyActor,
		},
		{
			name:           "invalid key is not rescued by a session",
			validKeys:      validKeys,
			apiKey:         "nope",
			bearer:         "valid",
			setupMocks:     func(*mocks.MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:      "session without a key",
			validKeys: validKeys,
			bearer:    "valid",
			setupMocks: func(m *mocks.MockAuthService) {
				m.On("ValidateToken", mock.Anything, "valid").Return(user, nil)
			},
			expectedStatus: http.StatusOK,
			expectedActor:  "admin",
		},
		{
			name:           "neither key nor session",
			validKeys:      validKeys,
			setupMocks:     func(*mocks.MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "keys disabled still require a session",
			apiKey:         "printer-key",
			setupMocks:     func(*mocks.MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			auth := new(mocks.MockAuthService)
			tt.setupMocks(auth)

			router := gin.New()
			router.Use(APIKeyOrSession(tt.validKeys, SessionAuth(auth, DefaultSessionCookie)))
			router.GET("/test", func(c *gin.Context) {
				c.String(http.StatusOK, service.ActorFrom(c.Request.Context()))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.apiKey != "" {
				req.Header.Set(APIKeyHeader, tt.apiKey)
			}
			if tt.bearer != "" {
				req.Header.Set("Authorization", "Bearer "+tt.bearer)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedActor != "" {
				assert.Equal(t, tt.expectedActor, w.Body.String())
			}
			auth.AssertExpectations(t)
		})
	}
}
