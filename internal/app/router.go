// Package app provides router configuration.
package app

import (
	"github.com/guttosm/move-labels/config"
	"github.com/guttosm/move-labels/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	handler := http.NewHandler(
		services.Boxes,
		services.LabelSizes,
		services.Labels,
		services.Bundles,
		http.WithBaseURL(http.BaseURLResolver{
			BaseURL:   cfg.Labels.BaseURL,
			VercelURL: cfg.Labels.VercelURL,
		}),
		http.WithPreviewDPI(cfg.Labels.PreviewDPI),
		http.WithExportDefaults(cfg.Labels.DefaultDPI, cfg.Labels.DefaultTemplate),
		http.WithActivityLog(services.Logging),
	)

	healthHandler := http.NewHealthHandler()
	if dbComponents != nil {
		for name, cb := range dbComponents.CircuitBreakers {
			healthHandler.RegisterCircuitBreaker(name, cb)
		}
		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(dbComponents.DB.HealthCheck))
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		ExportRateLimit:   cfg.Server.ExportLimit,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		Session: http.SessionCookieConfig{
			Name:   cfg.Auth.CookieName,
			Secure: cfg.Auth.SecureCookie,
			TTL:    cfg.Auth.SessionTTL,
		},
		LoggingService: services.Logging,
		ExportAPIKeys:  cfg.Auth.ExportAPIKeys,
	}
	if services.Auth != nil {
		routerCfg.AuthService = services.Auth
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
