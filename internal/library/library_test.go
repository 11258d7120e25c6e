package library

import (
	"strings"
	"testing"
)

func TestSamples(t *testing.T) {
	samples := Samples()
	if len(samples) != 4 {
		t.Fatalf("got %d samples, want 4", len(samples))
	}
	for i, s := range samples {
		if s.Title == "" || strings.TrimSpace(s.Text) == "" {
			t.Errorf("sample %d incomplete: %+v", i, s.ID)
		}
	}
	if samples[0].ID != "sample1" || samples[3].Title != "Miłość" {
		t.Errorf("unexpected order: %s ... %s", samples[0].ID, samples[3].Title)
	}
}

func TestGet(t *testing.T) {
	s, ok := Get("sample3")
	if !ok || s.Title != "The History of Computing" {
		t.Errorf("Get(sample3) = %q, %v", s.Title, ok)
	}

	fallback, ok := Get("nope")
	if ok {
		t.Error("Get(nope) reported found")
	}
	if fallback.ID != DefaultID {
		t.Errorf("fallback id = %q, want %q", fallback.ID, DefaultID)
	}
}

func TestHas(t *testing.T) {
	if !Has("sample2") || Has(CustomID) {
		t.Error("Has reported wrong membership")
	}
}
