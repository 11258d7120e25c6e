package reader

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestTextFromHTML(t *testing.T) {
	htmlContent := `
	<html>
		<head><title>Test</title><style>p { color: red; }</style></head>
		<body>
			<h1>Chapter 1</h1>
			<p>This is the <b>first</b> paragraph.</p>
			<script>var ignored = true;</script>
			<p>
				This is the second paragraph
				with a newline.
			</p>
			<div>Some <span>nested</span> text.</div>
		</body>
	</html>
	`

	expectedWords := []string{"Test", "Chapter", "1", "This", "is", "the", "first", "paragraph.", "This", "is", "the", "second", "paragraph", "with", "a", "newline.", "Some", "nested", "text."}

	text, err := textFromHTML(strings.NewReader(htmlContent))
	if err != nil {
		t.Fatalf("textFromHTML: %v", err)
	}
	words := ParseText(text)

	if len(words) != len(expectedWords) {
		t.Fatalf("Expected %d words, got %d: %v", len(expectedWords), len(words), words)
	}
	for i, word := range words {
		if word != expectedWords[i] {
			t.Errorf("Word %d: expected %q, got %q", i, expectedWords[i], word)
		}
	}
}

func TestEPUBExtractMissingFile(t *testing.T) {
	f := &EPUBFormat{}
	if _, err := f.Extract(filepath.Join(t.TempDir(), "missing.epub")); err == nil {
		t.Error("expected error for missing epub")
	}
}
