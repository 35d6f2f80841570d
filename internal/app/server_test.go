//go:build !integration

package app

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/move-labels/config"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
}

func TestNewServer(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.ServerConfig
		read     time.Duration
		write    time.Duration
		idle     time.Duration
		shutdown time.Duration
	}{
		{
			name:     "defaults",
			cfg:      config.ServerConfig{Port: "8080"},
			read:     15 * time.Second,
			write:    60 * time.Second,
			idle:     60 * time.Second,
			shutdown: 10 * time.Second,
		},
		{
			name: "configured timeouts",
			cfg: config.ServerConfig{
				Port:            "8080",
				ReadTimeout:     5 * time.Second,
				WriteTimeout:    2 * time.Minute,
				IdleTimeout:     30 * time.Second,
				ShutdownTimeout: 25 * time.Second,
			},
			read:     5 * time.Second,
			write:    2 * time.Minute,
			idle:     30 * time.Second,
			shutdown: 25 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := NewServer(okHandler(), tt.cfg)

			assert.Equal(t, ":8080", server.Addr())
			assert.Equal(t, tt.read, server.httpServer.ReadTimeout)
			assert.Equal(t, tt.write, server.httpServer.WriteTimeout)
			assert.Equal(t, tt.idle, server.httpServer.IdleTimeout)
			assert.Equal(t, tt.shutdown, server.shutdownTimeout)
		})
	}
}

func TestServer_RunServesUntilCancelled(t *testing.T) {
	server := NewServer(okHandler(), config.ServerConfig{Port: "0"})
	require.NoError(t, server.Listen())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run(ctx)
	}()

	resp, err := http.Get("http://" + server.Addr() + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}

func TestServer_RunListenError(t *testing.T) {
	server := NewServer(okHandler(), config.ServerConfig{Port: "invalid-port"})

	err := server.Run(context.Background())

	assert.Error(t, err)
}

func TestServer_ShutdownWaitsForInFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(started)
		<-release
		_, _ = io.WriteString(w, "rendered")
	})

	server := NewServer(handler, config.ServerConfig{Port: "0"})
	require.NoError(t, server.Listen())
	ctx, cancel := context.WithCancel(context.Background())
	runErr := make(chan error, 1)
	go func() {
		runErr <- server.Run(ctx)
	}()

	respCh := make(chan string, 1)
	go func() {
		resp, err := http.Get("http://" + server.Addr() + "/")
		if err != nil {
			respCh <- err.Error()
			return
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		respCh <- string(body)
	}()

	<-started
	cancel()
	time.Sleep(50 * time.Millisecond)
	close(release)

	assert.Equal(t, "rendered", <-respCh)
	assert.NoError(t, <-runErr)
}
