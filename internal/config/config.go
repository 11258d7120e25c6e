package config

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/metcalfc/skim/internal/display"
	"github.com/metcalfc/skim/internal/library"
	"github.com/metcalfc/skim/internal/pacer"
)

// Config is the resolved runtime configuration.
type Config struct {
	WPM       int
	ChunkSize int
	Sample    string
	QuizPath  string
	Watch     bool

	Highlight  string
	Font       string
	FontSize   string
	Fullscreen bool

	LogFile  string
	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	d := display.Default()
	return Config{
		WPM:       pacer.DefaultWPM,
		ChunkSize: pacer.DefaultChunkSize,
		Sample:    library.DefaultID,
		Highlight: d.Highlight.String(),
		Font:      d.Font.String(),
		FontSize:  d.Size.String(),
		LogFile:   DefaultLogPath(),
		LogLevel:  zerolog.InfoLevel.String(),
	}
}

// Validate checks enum names and the log level. Speed and chunk size are
// left alone; the pacer clamps them.
func (c *Config) Validate() error {
	if _, err := c.Display(); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	if c.Sample != "" && c.Sample != library.CustomID && !library.Has(c.Sample) {
		return fmt.Errorf("sample %q: not in the library", c.Sample)
	}
	return nil
}

// Display converts the presentation fields into display.Settings.
func (c Config) Display() (display.Settings, error) {
	s := display.Default()
	var err error
	if s.Highlight, err = display.ParseHighlightStyle(c.Highlight); err != nil {
		return s, err
	}
	if s.Font, err = display.ParseFontFamily(c.Font); err != nil {
		return s, err
	}
	if s.Size, err = display.ParseFontSize(c.FontSize); err != nil {
		return s, err
	}
	s.Fullscreen = c.Fullscreen
	return s, nil
}

// Resolve applies the file at path (when it exists) and then the
// environment onto cfg, skipping any field whose flag is in changed.
func Resolve(cfg *Config, path string, changed map[string]bool) error {
	if path != "" {
		fc, err := LoadConfig(path)
		if err != nil {
			return err
		}
		if err := ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	}
	if err := ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}
	return cfg.Validate()
}
