// Package library holds the built-in sample texts offered as reading sources.
package library

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed texts/*.txt
var texts embed.FS

// DefaultID is the sample loaded at startup and used for unknown ids.
const DefaultID = "sample1"

// CustomID names user-supplied text in source pickers.
const CustomID = "custom"

// Sample is one catalog entry.
type Sample struct {
	ID    string
	Title string
	Text  string
}

var titles = map[string]string{
	"sample1": "The Science of Learning",
	"sample2": "Introduction to Psychology",
	"sample3": "The History of Computing",
	"sample4": "Miłość",
}

// Samples returns the catalog ordered by id.
func Samples() []Sample {
	ids := make([]string, 0, len(titles))
	for id := range titles {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]Sample, 0, len(ids))
	for _, id := range ids {
		s, err := load(id)
		if err != nil {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Get returns the sample for id, falling back to DefaultID when id is unknown.
// The boolean reports whether id itself was found.
func Get(id string) (Sample, bool) {
	if _, ok := titles[id]; ok {
		if s, err := load(id); err == nil {
			return s, true
		}
	}
	s, _ := load(DefaultID)
	return s, false
}

// Has reports whether id names a catalog sample.
func Has(id string) bool {
	_, ok := titles[id]
	return ok
}

func load(id string) (Sample, error) {
	data, err := texts.ReadFile("texts/" + id + ".txt")
	if err != nil {
		return Sample{}, fmt.Errorf("load sample %s: %w", id, err)
	}
	return Sample{
		ID:    id,
		Title: titles[id],
		Text:  strings.TrimSpace(string(data)),
	}, nil
}
