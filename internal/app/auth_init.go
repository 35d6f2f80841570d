// Package app provides authentication initialization.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/move-labels/config"
	"github.com/guttosm/move-labels/internal/service"
)

// seedAdmin creates the configured admin account on first start. Failures
// are logged; the service still starts and login reports the error.
func seedAdmin(auth service.AuthService, cfg config.AuthConfig) bool {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Warn().Msg("No admin credentials configured - skipping admin seed")
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	created, err := auth.SeedAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		log.Warn().Err(err).Str("username", cfg.AdminUsername).Msg("Failed to seed admin user")
		return false
	}
	if !created {
		log.Debug().Str("username", cfg.AdminUsername).Msg("Admin user already exists")
	}
	return created
}
