package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/metcalfc/skim/internal/config"
	"github.com/metcalfc/skim/internal/library"
)

func TestResolveSource(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.md")
	if err := os.WriteFile(file, []byte("# Title\n\nSome *notes* here"), 0644); err != nil {
		t.Fatal(err)
	}
	blank := filepath.Join(dir, "blank.txt")
	if err := os.WriteFile(blank, []byte("   \n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.Sample = "sample2"

	tests := []struct {
		name      string
		args      []string
		text      string
		stdin     string
		tty       bool
		wantTitle string
		wantPath  bool
		wantErr   error
	}{
		{name: "file argument", args: []string{file}, tty: true, wantTitle: "notes.md", wantPath: true},
		{name: "text flag", text: "hello there", tty: true, wantTitle: "Custom text"},
		{name: "piped stdin", stdin: "piped words", wantTitle: "Standard input"},
		{name: "empty stdin", stdin: "  ", wantErr: errNoText},
		{name: "blank file", args: []string{blank}, tty: true, wantErr: errNoText},
		{name: "sample fallback", tty: true, wantTitle: "Introduction to Psychology"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := resolveSource(cfg, tt.args, tt.text, strings.NewReader(tt.stdin), tt.tty)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveSource: %v", err)
			}
			if src.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", src.Title, tt.wantTitle)
			}
			if (src.Path != "") != tt.wantPath {
				t.Errorf("Path = %q", src.Path)
			}
			if strings.TrimSpace(src.Text) == "" {
				t.Error("expected text")
			}
		})
	}
}

func TestResolveSourceMissingFile(t *testing.T) {
	_, err := resolveSource(config.DefaultConfig(), []string{filepath.Join(t.TempDir(), "nope.txt")}, "", nil, true)
	if err == nil || !strings.Contains(err.Error(), "nope.txt") {
		t.Errorf("err = %v", err)
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	var fc config.FileConfig
	if _, err := toml.Decode(defaultConfigTemplate(), &fc); err != nil {
		t.Fatalf("template is not valid TOML: %v", err)
	}
	if fc.Reading.WPM != nil {
		t.Error("template values should be commented out")
	}
}

func TestSamplesCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"samples"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, s := range library.Samples() {
		if !strings.Contains(out.String(), s.ID) || !strings.Contains(out.String(), s.Title) {
			t.Errorf("missing %s in output:\n%s", s.ID, out.String())
		}
	}
}

func TestFormatsCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"formats"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, want := range []string{"EPUB", ".epub", "Markdown", ".md", "Text", ".txt"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("missing %q in output:\n%s", want, out.String())
		}
	}
}

func TestConfigPrintCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SKIM_WPM", "420")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"config", "--print"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "wpm = 420") {
		t.Errorf("effective config missing env override:\n%s", out.String())
	}
}

func TestConfigPrintHonoursConfigFlag(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SKIM_WPM", "")
	path := filepath.Join(t.TempDir(), "alt.toml")
	if err := os.WriteFile(path, []byte("[reading]\nwpm = 250\n"), 0644); err != nil {
		t.Fatal(err)
	}

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--config=" + path, "config", "--print"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "wpm = 250") {
		t.Errorf("config --print ignored --config:\n%s", out.String())
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	if got := configPath(""); got != config.DefaultConfigPath() {
		t.Errorf("configPath(\"\") = %q", got)
	}
	if got := configPath("/tmp/x.toml"); got != "/tmp/x.toml" {
		t.Errorf("configPath = %q", got)
	}
}
