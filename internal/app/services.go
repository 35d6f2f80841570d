// Package app provides service initialization.
package app

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/guttosm/move-labels/config"
	"github.com/guttosm/move-labels/internal/codes"
	"github.com/guttosm/move-labels/internal/domain/model"
	"github.com/guttosm/move-labels/internal/export"
	"github.com/guttosm/move-labels/internal/service"
	"github.com/guttosm/move-labels/internal/service/cache"
)

const cacheShards = 4

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Logging    service.LoggingService
	Boxes      service.BoxService
	LabelSizes service.LabelSizeService
	Labels     service.LabelService
	Bundles    service.BundleService
	// Auth is nil when sessions are disabled or no user store is available.
	Auth service.AuthService

	sizeCache cache.Cache[string, []model.LabelSize]
}

// Stop releases background resources held by the services.
func (s *ServiceComponents) Stop() {
	if s != nil && s.sizeCache != nil {
		s.sizeCache.Stop()
	}
}

// InitializeServices initializes business logic services. db may be nil,
// in which case boxes and bundles report ErrRepositoryNotConfigured and
// label sizes come from the built-in presets.
func InitializeServices(cfg config.Config, db *DatabaseComponents) *ServiceComponents {
	if db == nil {
		db = &DatabaseComponents{}
	}

	components := &ServiceComponents{
		Logging: service.NewLoggingService(db.Logs, db.Activity),
	}

	boxOpts := []service.BoxOption{service.WithActivity(components.Logging)}
	if cfg.Labels.RoomAbbreviations != "" {
		abbreviations, err := codes.ParseAbbreviations(cfg.Labels.RoomAbbreviations)
		if err != nil {
			log.Warn().Err(err).Msg("Ignoring invalid ROOM_ABBREVIATIONS")
		} else {
			table := lo.Assign(codes.DefaultAbbreviations(), abbreviations)
			boxOpts = append(boxOpts, service.WithRoomCodes(codes.NewRoomCodeSuggester(table)))
		}
	}
	components.Boxes = service.NewBoxService(db.Boxes, boxOpts...)

	if cfg.Cache.Size > 0 {
		components.sizeCache = service.NewShardedCache[string, []model.LabelSize](cfg.Cache.Size, cfg.Cache.TTL, cacheShards)
	}
	sizes := service.NewLabelSizeService(db.LabelSizes, components.sizeCache)
	components.LabelSizes = sizes
	if db.LabelSizes != nil {
		seedLabelSizes(sizes)
	}

	components.Labels = service.NewLabelService(
		components.Boxes,
		components.LabelSizes,
		export.NewRegistry(),
		components.Logging,
		cfg.Labels.RenderTimeout,
	)
	components.Bundles = service.NewBundleService(db.Bundles)

	if cfg.Auth.Enabled {
		if db.Users == nil {
			log.Warn().Msg("Authentication enabled but no user store is available - sessions disabled")
		} else {
			auth := service.NewAuthService(db.Users, cfg.Auth)
			seedAdmin(auth, cfg.Auth)
			components.Auth = auth
		}
	}

	return components
}

// seedLabelSizes stores the built-in presets that are missing.
func seedLabelSizes(sizes service.LabelSizeService) {
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	inserted, err := sizes.SeedPresets(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to seed label size presets")
		return
	}
	if inserted > 0 {
		log.Info().Int64("inserted", inserted).Msg("Seeded label size presets")
	}
}
