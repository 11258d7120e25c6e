package config

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Reading ReadingConfig `toml:"reading"`
	Display DisplayConfig `toml:"display"`
	Log     LogConfig     `toml:"log"`
}

// ReadingConfig maps pacing settings.
type ReadingConfig struct {
	WPM    *int    `toml:"wpm"`
	Chunk  *int    `toml:"chunk"`
	Sample *string `toml:"sample"`
	Quiz   *string `toml:"quiz"`
	Watch  *bool   `toml:"watch"`
}

// DisplayConfig maps presentation settings.
type DisplayConfig struct {
	Highlight  *string `toml:"highlight"`
	Font       *string `toml:"font"`
	FontSize   *string `toml:"font-size"`
	Fullscreen *bool   `toml:"fullscreen"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	File  *string `toml:"file"`
	Level *string `toml:"level"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// ApplyFileConfig copies every value present in fc onto cfg, leaving fields
// whose flag was set explicitly.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setInt("wpm", fc.Reading.WPM, &cfg.WPM)
	s.setInt("chunk", fc.Reading.Chunk, &cfg.ChunkSize)
	s.setString("sample", fc.Reading.Sample, &cfg.Sample)
	s.setString("quiz", fc.Reading.Quiz, &cfg.QuizPath)
	s.setBool("watch", fc.Reading.Watch, &cfg.Watch)

	s.setString("highlight", fc.Display.Highlight, &cfg.Highlight)
	s.setString("font", fc.Display.Font, &cfg.Font)
	s.setString("font-size", fc.Display.FontSize, &cfg.FontSize)
	s.setBool("fullscreen", fc.Display.Fullscreen, &cfg.Fullscreen)

	s.setString("log-file", fc.Log.File, &cfg.LogFile)
	s.setString("log-level", fc.Log.Level, &cfg.LogLevel)

	return nil
}

// Encode writes cfg as a TOML file in the layout LoadConfig reads.
func Encode(w io.Writer, cfg Config) error {
	fc := FileConfig{
		Reading: ReadingConfig{
			WPM:    &cfg.WPM,
			Chunk:  &cfg.ChunkSize,
			Sample: &cfg.Sample,
			Watch:  &cfg.Watch,
		},
		Display: DisplayConfig{
			Highlight:  &cfg.Highlight,
			Font:       &cfg.Font,
			FontSize:   &cfg.FontSize,
			Fullscreen: &cfg.Fullscreen,
		},
		Log: LogConfig{
			File:  &cfg.LogFile,
			Level: &cfg.LogLevel,
		},
	}
	if cfg.QuizPath != "" {
		fc.Reading.Quiz = &cfg.QuizPath
	}
	if err := toml.NewEncoder(w).Encode(fc); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
