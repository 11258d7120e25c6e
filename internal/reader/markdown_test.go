package reader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMarkdownExtract(t *testing.T) {
	mdFile := filepath.Join(t.TempDir(), "test.md")

	content := "# Introduction\n" +
		"This is **the** introduction with a [link](https://example.com).\n" +
		"\n" +
		"## Getting Started\n" +
		"- install it\n" +
		"1. run `skim`\n" +
		"```\n" +
		"code that should vanish\n" +
		"```\n" +
		"> quoted *words*\n"
	if err := os.WriteFile(mdFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	f := &MarkdownFormat{}
	text, err := f.Extract(mdFile)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	got := strings.Join(ParseText(text), " ")
	want := "Introduction This is the introduction with a link. Getting Started install it run skim quoted words"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"### Deep heading", "Deep heading"},
		{"plain line", "plain line"},
		{"* bullet", "bullet"},
		{"![alt text](img.png)", "alt text"},
		{"snake_case stays", "snake_case stays"},
		{"__strong__ words", "strong words"},
	}
	for _, tt := range tests {
		if got := stripMarkdown(tt.in); got != tt.want {
			t.Errorf("stripMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
