package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCommand(t *testing.T) {
	tests := []struct {
		name   string
		format string
		prefix []byte
	}{
		{name: "pdf", format: "pdf", prefix: []byte("%PDF-")},
		{name: "png", format: "png", prefix: []byte("\x89PNG")},
		{name: "csv", format: "csv", prefix: []byte(`"room_code","short_code"`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "label."+tt.format)

			stdout, err := execute(t, "render", "--format", tt.format, "--room-code", "KIT", "--dpi", "96", "--out", out)
			require.NoError(t, err)
			assert.Contains(t, stdout, out)

			data, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(data, tt.prefix), "unexpected prefix %q", data[:min(len(data), 8)])
		})
	}
}

func TestRenderCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "bad format", args: []string{"--format", "svg", "--room-code", "KIT", "--out", "x"}, wantErr: "invalid format"},
		{name: "out required", args: []string{"--room-code", "KIT"}, wantErr: "out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append([]string{"render"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
