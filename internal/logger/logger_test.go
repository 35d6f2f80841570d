package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "debug", level: "debug", want: zerolog.DebugLevel},
		{name: "upper case", level: "WARN", want: zerolog.WarnLevel},
		{name: "trace", level: "trace", want: zerolog.TraceLevel},
		{name: "error", level: "error", want: zerolog.ErrorLevel},
		{name: "empty defaults to info", level: "", want: zerolog.InfoLevel},
		{name: "unknown defaults to info", level: "chatty", want: zerolog.InfoLevel},
	}

	t.Cleanup(func() { Init("info", false) })
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.level, false)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestInit_Pretty(t *testing.T) {
	t.Cleanup(func() { Init("info", false) })
	Init("debug", true)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestForExport(t *testing.T) {
	original := log.Logger
	t.Cleanup(func() { log.Logger = original })

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	l := ForExport("pdf", "fragile", "supvan-50x30", 3)
	l.Info().Msg("rendered")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "pdf", line["format"])
	assert.Equal(t, "fragile", line["template"])
	assert.Equal(t, "supvan-50x30", line["label_size"])
	assert.Equal(t, 3.0, line["boxes"])
	assert.Equal(t, "rendered", line["message"])
}
