package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/move-labels/internal/middleware"
	"github.com/guttosm/move-labels/internal/service"
)

// AuthRoutes handles authentication route registration.
type AuthRoutes struct {
	handler     *AuthHandler
	authService service.AuthService
	cookieName  string
}

// NewAuthRoutes creates a new AuthRoutes instance.
func NewAuthRoutes(authService service.AuthService, loggingService service.LoggingService, cookie SessionCookieConfig) *AuthRoutes {
	return &AuthRoutes{
		handler:     NewAuthHandler(authService, loggingService, cookie),
		authService: authService,
		cookieName:  cookie.name(),
	}
}

// RegisterPublicRoutes registers the login route.
func (r *AuthRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", r.handler.Login)
}

// RegisterProtectedRoutes registers logout and the current-user route.
func (r *AuthRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.POST("/auth/logout", r.handler.Logout)
	rg.GET("/auth/me", r.handler.Me)
}

// GetProtectedGroup returns a router group that requires a session, with
// per-user rate limiting when configured.
func (r *AuthRoutes) GetProtectedGroup(rg *gin.RouterGroup, cfg *RouterConfig) *gin.RouterGroup {
	protected := rg.Group("")
	protected.Use(middleware.SessionAuth(r.authService, r.cookieName))

	if cfg.RateLimit > 0 {
		userLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		protected.Use(userLimiter.UserRateLimit())
	}

	return protected
}
