// Package main is the entry point for the move-labels service.
//
// @title           Move Labels API
// @version         1.0.0
// @description     Moving box tracker that prints QR labels for label printers and Avery sheets.
//
//	Boxes get a room code and a short code; labels are laid out per label size and exported as PDF, PNG or CSV.
//
// @contact.name   API Support
// @contact.url    https://github.com/guttosm/move-labels
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  SessionCookie
// @in                          cookie
// @name                        move_session
// @description                 Session cookie set by POST /api/v1/auth/login. Required if authentication is enabled.
//
// @tag.name        Boxes
// @tag.description Boxes, items, scanning and search
//
// @tag.name        Labels
// @tag.description Label sizes, templates and layout previews
//
// @tag.name        Exports
// @tag.description PDF, PNG and CSV exports and printed reports
//
// @tag.name        Bundles
// @tag.description Reusable item bundles
//
// @tag.name        Auth
// @tag.description Session login and logout
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/guttosm/move-labels/docs" // swagger docs

	"github.com/guttosm/move-labels/config"
	"github.com/guttosm/move-labels/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router, cleanup := app.InitializeApp(cfg)
	defer cleanup()

	server := app.NewServer(router, cfg.Server)
	if err := server.Run(ctx); err != nil {
		cleanup()
		log.Fatal().Err(err).Msg("server error")
	}
}
