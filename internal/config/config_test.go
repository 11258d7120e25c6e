package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	fc, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if fc.Reading.WPM != nil {
		t.Error("expected empty config")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad toml", "[reading\nwpm = 1"},
		{"unknown key", "[reading]\nspeed = 400\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tt.body)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestApplyFileConfig(t *testing.T) {
	path := writeConfig(t, `
[reading]
wpm = 450
chunk = 2
sample = "sample3"

[display]
highlight = "blue"
fullscreen = true

[log]
level = "debug"
`)
	fc, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	tests := []struct {
		name      string
		changed   map[string]bool
		wantWPM   int
		wantChunk int
	}{
		{"file wins over defaults", nil, 450, 2},
		{"changed flag wins over file", map[string]bool{"wpm": true}, 300, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if err := ApplyFileConfig(&cfg, fc, tt.changed); err != nil {
				t.Fatalf("ApplyFileConfig: %v", err)
			}
			if cfg.WPM != tt.wantWPM || cfg.ChunkSize != tt.wantChunk {
				t.Errorf("wpm=%d chunk=%d, want %d %d", cfg.WPM, cfg.ChunkSize, tt.wantWPM, tt.wantChunk)
			}
			if cfg.Sample != "sample3" || cfg.Highlight != "blue" || !cfg.Fullscreen || cfg.LogLevel != "debug" {
				t.Errorf("unexpected config: %+v", cfg)
			}
			if cfg.Font != "sans" {
				t.Errorf("absent key overwrote default font: %q", cfg.Font)
			}
		})
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Setenv("SKIM_WPM", "600")
	t.Setenv("SKIM_CHUNK", "6")
	t.Setenv("SKIM_FONT_SIZE", "large")
	t.Setenv("SKIM_FULLSCREEN", "true")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, map[string]bool{"chunk": true}); err != nil {
		t.Fatalf("ApplyEnvConfig: %v", err)
	}
	if cfg.WPM != 600 {
		t.Errorf("WPM = %d, want 600", cfg.WPM)
	}
	if cfg.ChunkSize != 4 {
		t.Errorf("ChunkSize = %d, changed flag should win", cfg.ChunkSize)
	}
	if cfg.FontSize != "large" || !cfg.Fullscreen {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestApplyEnvConfigInvalid(t *testing.T) {
	t.Setenv("SKIM_WPM", "fast")
	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, nil); err == nil {
		t.Error("expected parse error")
	}
}

func TestResolvePrecedence(t *testing.T) {
	path := writeConfig(t, "[reading]\nwpm = 450\nchunk = 3\n[display]\nfont = \"mono\"\n")
	t.Setenv("SKIM_WPM", "500")
	t.Setenv("SKIM_CHUNK", "")

	cfg := DefaultConfig()
	cfg.Font = "serif"
	if err := Resolve(&cfg, path, map[string]bool{"font": true}); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.WPM != 500 {
		t.Errorf("WPM = %d, env should override file", cfg.WPM)
	}
	if cfg.ChunkSize != 3 {
		t.Errorf("ChunkSize = %d, want file value", cfg.ChunkSize)
	}
	if cfg.Font != "serif" {
		t.Errorf("Font = %q, flag should win", cfg.Font)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"highlight", func(c *Config) { c.Highlight = "orange" }},
		{"font", func(c *Config) { c.Font = "comic" }},
		{"font size", func(c *Config) { c.FontSize = "huge" }},
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
		{"sample", func(c *Config) { c.Sample = "sample99" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	}

	cfg := DefaultConfig()
	cfg.WPM = 5000
	if err := cfg.Validate(); err != nil {
		t.Errorf("out-of-range wpm should be left to clamping: %v", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WPM = 420
	cfg.Highlight = "purple"

	var buf bytes.Buffer
	if err := Encode(&buf, cfg); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(buf.String(), "[reading]") {
		t.Errorf("missing [reading] table:\n%s", buf.String())
	}

	path := writeConfig(t, buf.String())
	fc, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	got := DefaultConfig()
	if err := ApplyFileConfig(&got, fc, nil); err != nil {
		t.Fatal(err)
	}
	if got != cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestXDGPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_STATE_HOME", "/state")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "skim", "config.toml") {
		t.Errorf("DefaultConfigPath() = %q", got)
	}
	if got := DefaultLogPath(); got != filepath.Join("/state", "skim", "skim.log") {
		t.Errorf("DefaultLogPath() = %q", got)
	}
}
