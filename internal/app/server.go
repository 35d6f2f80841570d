package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/move-labels/config"
)

const (
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 60 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	maxHeaderBytes         = 1 << 20
)

// Server runs the HTTP API until its context is cancelled, then drains
// in-flight requests.
type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	listener        net.Listener
}

// NewServer creates a new Server. Zero timeouts fall back to defaults; the
// write timeout must leave room for a full-sheet PDF render.
func NewServer(handler http.Handler, cfg config.ServerConfig) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:           ":" + cfg.Port,
			Handler:        handler,
			ReadTimeout:    orDefault(cfg.ReadTimeout, defaultReadTimeout),
			WriteTimeout:   orDefault(cfg.WriteTimeout, defaultWriteTimeout),
			IdleTimeout:    orDefault(cfg.IdleTimeout, defaultIdleTimeout),
			MaxHeaderBytes: maxHeaderBytes,
		},
		shutdownTimeout: orDefault(cfg.ShutdownTimeout, defaultShutdownTimeout),
	}
}

func orDefault(d, def time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return def
}

// Listen binds the configured address. Run calls it when needed; calling it
// first lets the caller learn the port of a ":0" address.
func (s *Server) Listen() error {
	if s.listener != nil {
		return nil
	}
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	s.listener = ln
	return nil
}

// Addr returns the bound address, or the configured one before Listen.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.httpServer.Addr
}

// Run serves until ctx is done and then shuts down gracefully. It returns
// early with the error when the listener cannot be opened or fails.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.Addr()).Msg("server listening")
		errCh <- s.httpServer.Serve(s.listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info().Msg("shutting down, draining in-flight requests")
	}

	return s.Shutdown()
}

// Shutdown stops accepting connections and waits up to the shutdown timeout
// for active requests.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Dur("timeout", s.shutdownTimeout).Msg("shutdown timed out, closing connections")
		_ = s.httpServer.Close()
		return err
	}

	log.Info().Msg("server stopped")
	return nil
}
