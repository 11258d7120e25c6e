package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "skim.log")

	log, closer, err := New(path, WithLevel("debug"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Debug().Int("words", 8).Msg("document loaded")
	log.Trace().Msg("hidden")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"message":"document loaded"`) || !strings.Contains(out, `"words":8`) {
		t.Errorf("unexpected log output: %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("trace message should be filtered at debug level")
	}
}

func TestNewEmptyPathDisables(t *testing.T) {
	log, closer, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer closer.Close()
	if log.GetLevel() != zerolog.Disabled {
		t.Errorf("expected disabled logger, got level %v", log.GetLevel())
	}
}

func TestNewBadLevel(t *testing.T) {
	if _, _, err := New(filepath.Join(t.TempDir(), "x.log"), WithLevel("loud")); err == nil {
		t.Error("expected level error")
	}
}
