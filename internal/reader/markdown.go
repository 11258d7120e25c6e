package reader

import (
	"bufio"
	"os"
	"regexp"
	"strings"
)

// MarkdownFormat implements Format for Markdown files.
type MarkdownFormat struct{}

func init() {
	Register(&MarkdownFormat{})
}

func (f *MarkdownFormat) Name() string         { return "Markdown" }
func (f *MarkdownFormat) Extensions() []string { return []string{".md", ".markdown"} }

var (
	// headerRegex matches markdown headers (# to ######)
	headerRegex = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	linkRegex   = regexp.MustCompile(`!?\[([^\]]*)\]\([^)]*\)`)
	fenceRegex  = regexp.MustCompile("^\\s*(```|~~~)")
	bulletRegex = regexp.MustCompile(`^\s*([-*+]|\d+[.)])\s+`)
)

// Extract returns the prose of a Markdown file: heading text is kept, link
// targets, emphasis markers, list bullets and fenced code blocks are dropped.
func (f *MarkdownFormat) Extract(filename string) (string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var out strings.Builder
	inFence := false

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if fenceRegex.MatchString(line) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		out.WriteString(stripMarkdown(line))
		out.WriteString("\n")
	}
	return out.String(), scanner.Err()
}

func stripMarkdown(line string) string {
	if match := headerRegex.FindStringSubmatch(line); match != nil {
		line = match[2]
	}
	line = strings.TrimLeft(line, "> ")
	line = bulletRegex.ReplaceAllString(line, "")
	line = linkRegex.ReplaceAllString(line, "$1")
	return strings.NewReplacer("**", "", "__", "", "*", "", "`", "").Replace(line)
}
