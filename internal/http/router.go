package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/move-labels/internal/metrics"
	"github.com/guttosm/move-labels/internal/middleware"
	"github.com/guttosm/move-labels/internal/service"
)

// APIPrefix is the path prefix of every business route.
const APIPrefix = "/api/v1"

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	ExportRateLimit   int
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	Session           SessionCookieConfig
	LoggingService    service.LoggingService
	// ExportAPIKeys admits export clients by X-API-Key. Empty disables keys.
	ExportAPIKeys map[string]bool
	// AuthService enables session authentication when set.
	AuthService service.AuthService
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:       100,
		RateWindow:      time.Minute,
		ExportRateLimit: 20,
	}
}

// NewRouter creates and configures the Gin router of the move-labels API.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group(APIPrefix)
	if cfg.AuthService != nil {
		registerAuthenticatedRoutes(api, handler, &cfg)
	} else {
		registerPublicRoutes(api, handler, &cfg)
	}

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(middleware.CORS(cfg.CORSOrigins))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.LoggingService),
		middleware.ErrorHandler(),
	)

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger with optional basic auth
	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the business routes. It runs
// after session authentication so idempotency keys are scoped per user.
// The request timeout bounds label rendering along with everything else.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.RequestTimeout > 0 {
		api.Use(middleware.TimeoutWithDuration(cfg.RequestTimeout))
	}
	if cfg.EnableIdempotency {
		api.Use(middleware.Idempotency(middleware.DefaultIdempotencyConfig()))
	}
}

// registerAuthenticatedRoutes registers login publicly and everything else
// behind the session. Exports also accept a configured API key instead.
func registerAuthenticatedRoutes(api *gin.RouterGroup, handler *Handler, cfg *RouterConfig) {
	authRoutes := NewAuthRoutes(cfg.AuthService, cfg.LoggingService, cfg.Session)
	authRoutes.RegisterPublicRoutes(api)

	protected := authRoutes.GetProtectedGroup(api, cfg)
	configureAPIMiddleware(protected, cfg)
	authRoutes.RegisterProtectedRoutes(protected, cfg)

	if handler == nil {
		return
	}
	routes := NewBoxRoutes(handler)
	routes.RegisterRoutes(protected, cfg)

	exports := api.Group("")
	exports.Use(middleware.APIKeyOrSession(cfg.ExportAPIKeys, middleware.SessionAuth(cfg.AuthService, cfg.Session.name())))
	if cfg.RateLimit > 0 {
		userLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		exports.Use(userLimiter.UserRateLimit())
	}
	configureAPIMiddleware(exports, cfg)
	routes.RegisterExportRoutes(exports, cfg)
}

// registerPublicRoutes registers routes when authentication is disabled.
// Exports still require an API key when any are configured.
func registerPublicRoutes(api *gin.RouterGroup, handler *Handler, cfg *RouterConfig) {
	if handler == nil {
		return
	}
	configureAPIMiddleware(api, cfg)
	routes := NewBoxRoutes(handler)
	routes.RegisterRoutes(api, cfg)
	routes.RegisterExportRoutes(api.Group("", middleware.APIKeyAuth(cfg.ExportAPIKeys)), cfg)
}
