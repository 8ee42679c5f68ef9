// Package logging builds the zerolog logger shared by the CLI and services.
//
// Nothing here touches zerolog's global logger; callers pass the returned
// Logger down explicitly.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

type Options struct {
	Level   string
	Format  string
	NoColor bool
}

// New creates a logger writing to out.
func New(out io.Writer, opts Options) (zerolog.Logger, error) {
	level := zerolog.WarnLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(opts.Level)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	var w io.Writer
	switch opts.Format {
	case "", FormatConsole:
		w = zerolog.ConsoleWriter{Out: out, NoColor: opts.NoColor, TimeFormat: time.Kitchen}
	case FormatJSON:
		w = out
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q", opts.Format)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
