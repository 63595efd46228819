// Package logging configures the process-wide zerolog logger.
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Output formats
const (
	FormatJSON   = "json"
	FormatPretty = "pretty"
)

// Logger is the global logger; Init replaces it
var Logger = log.Logger

// Config controls log level and output format
type Config struct {
	Level      string `json:"level" yaml:"level"`             // debug, info, warn, error
	Format     string `json:"format" yaml:"format"`           // json or pretty
	TimeFormat string `json:"time_format" yaml:"time_format"` // defaults to RFC3339
	// Output defaults to stderr so JSON written to stdout stays parseable
	Output io.Writer `json:"-" yaml:"-"`
}

// Init builds the global logger from cfg and returns it. Unknown levels fall back to info.
func Init(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = time.RFC3339
	}
	zerolog.TimeFieldFormat = timeFormat

	var output = cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if strings.EqualFold(cfg.Format, FormatPretty) {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: timeFormat,
		}
	}

	Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
	log.Logger = Logger
	return Logger
}

// WithContext attaches the global logger to ctx.
func WithContext(ctx context.Context) context.Context {
	return Logger.WithContext(ctx)
}

// Ctx returns the logger stored in ctx, or a disabled logger when there is none.
func Ctx(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
