//go:build !integration

package app

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/move-labels/config"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LogConfig
		wantLevel zerolog.Level
	}{
		{
			name:      "initializes with info level",
			cfg:       config.LogConfig{Level: "info"},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name:      "initializes with debug level",
			cfg:       config.LogConfig{Level: "debug"},
			wantLevel: zerolog.DebugLevel,
		},
		{
			name:      "initializes with pretty output enabled",
			cfg:       config.LogConfig{Level: "warn", Pretty: true},
			wantLevel: zerolog.WarnLevel,
		},
		{
			name:      "initializes with error level",
			cfg:       config.LogConfig{Level: "error"},
			wantLevel: zerolog.ErrorLevel,
		},
		{
			name:      "unknown level falls back to info",
			cfg:       config.LogConfig{Level: "verbose"},
			wantLevel: zerolog.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				InitializeLogger(tt.cfg)
			})
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}
