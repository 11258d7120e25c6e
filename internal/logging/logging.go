// Package logging builds the zerolog logger. The terminal belongs to the
// reader UI, so logs go to a rotating file unless stderr is asked for.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Stderr as a path sends human-readable output to the terminal.
const Stderr = "stderr"

// Config describes where and how much to log.
type Config struct {
	Path       string
	Level      string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

// Option mutates a Config.
type Option func(*Config)

// WithLevel sets the minimum level by name.
func WithLevel(level string) Option {
	return func(c *Config) { c.Level = level }
}

// WithRotation overrides the lumberjack rotation limits.
func WithRotation(maxSizeMB, maxBackups, maxAgeDays int) Option {
	return func(c *Config) {
		c.MaxSize = maxSizeMB
		c.MaxBackups = maxBackups
		c.MaxAge = maxAgeDays
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger writing to path. An empty path disables logging.
// The returned Closer releases the log file.
func New(path string, opts ...Option) (zerolog.Logger, io.Closer, error) {
	cfg := &Config{
		Path:       path,
		Level:      zerolog.InfoLevel.String(),
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("can't parse log level: %w", err)
	}

	switch cfg.Path {
	case "":
		return zerolog.Nop(), nopCloser{}, nil
	case Stderr:
		w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		return zerolog.New(w).Level(level).With().Timestamp().Logger(), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("can't create log directory: %w", err)
	}
	lj := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
	}
	return zerolog.New(lj).Level(level).With().Timestamp().Logger(), lj, nil
}
