// Package logger builds the slog logger shared by every component.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// DefaultLogFile is used when Output is "file" and no File is configured.
const DefaultLogFile = "snippet-warden.log"

// Config holds the logger configuration.
type Config struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
	File   string `mapstructure:"file"`
}

// Writer resolves the configured output. The returned close function is a
// no-op for the standard streams.
func (c Config) Writer() (io.Writer, func() error) {
	switch c.Output {
	case "stderr":
		return os.Stderr, func() error { return nil }
	case "file":
		name := c.File
		if name == "" {
			name = DefaultLogFile
		}
		file, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", name, err)
			return os.Stdout, func() error { return nil }
		}
		return file, file.Close
	default:
		return os.Stdout, func() error { return nil }
	}
}

// ParseLevel maps a configured level name to a slog.Level. Unknown names map
// to info.
func ParseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// NewLogger initializes a new slog logger based on the provided configuration.
// A nil output falls back to the writer selected by cfg.Output.
func NewLogger(cfg Config, output io.Writer) *slog.Logger {
	if output == nil {
		output, _ = cfg.Writer()
	}

	opts := &slog.HandlerOptions{
		Level:     ParseLevel(cfg.Level),
		AddSource: cfg.Level == "debug",
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler)
}
