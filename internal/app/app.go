// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/move-labels/config"
	"github.com/guttosm/move-labels/internal/http"
	"github.com/guttosm/move-labels/internal/middleware"
)

const closeTimeout = 5 * time.Second

// InitializeApp creates and wires all application dependencies.
// The returned cleanup flushes pending request logs and disconnects from
// MongoDB; call it after the server has stopped.
func InitializeApp(cfg config.Config) (*gin.Engine, func()) {
	InitializeLogger(cfg.Log)

	dbComponents := InitializeDatabase(cfg.Database)
	services := InitializeServices(cfg, dbComponents)

	if dbComponents != nil {
		middleware.InitAsyncLogger(services.Logging, middleware.DefaultAsyncLoggerConfig())
	}

	routerComponents := InitializeRouter(services, dbComponents, cfg)
	router := http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)

	cleanup := func() {
		middleware.StopAsyncLogger()
		services.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if err := dbComponents.Close(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
		}
	}

	return router, cleanup
}
