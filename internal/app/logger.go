// Package app provides logger initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/move-labels/config"
	"github.com/guttosm/move-labels/internal/logger"
)

// InitializeLogger configures the global zerolog logger. An unknown level
// falls back to info.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
	log.Debug().Str("level", cfg.Level).Bool("pretty", cfg.Pretty).Msg("logger initialized")
}
