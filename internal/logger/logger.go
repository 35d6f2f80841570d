// Package logger configures the process-wide zerolog logger.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ServiceName is attached to every log line.
const ServiceName = "move-labels"

// Init sets the global level and output. Unknown or empty levels fall back
// to info; pretty selects the human-readable console writer.
func Init(level string, pretty bool) {
	logLevel, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if pretty {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		}).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(os.Stderr).With().
		Timestamp().
		Str("service", ServiceName).
		Logger()
}

// Logger returns the global logger instance.
func Logger() zerolog.Logger {
	return log.Logger
}

// ForExport returns a logger tagged with the fields of a label render.
func ForExport(format, template, labelSizeID string, boxes int) zerolog.Logger {
	return log.Logger.With().
		Str("format", format).
		Str("template", template).
		Str("label_size", labelSizeID).
		Int("boxes", boxes).
		Logger()
}
