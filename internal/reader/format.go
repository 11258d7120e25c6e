package reader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format extracts readable text from one kind of file.
type Format interface {
	Name() string
	Extensions() []string
	Extract(filename string) (string, error)
}

var registry []Format

// Register adds a format to the registry.
func Register(f Format) {
	registry = append(registry, f)
}

// Lookup returns the format registered for the file's extension, if any.
func Lookup(filename string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, f := range registry {
		for _, e := range f.Extensions() {
			if ext == e {
				return f, true
			}
		}
	}
	return nil, false
}

// ExtractText reads a file through its registered format, falling back to the
// raw bytes for unknown extensions.
func ExtractText(filename string) (string, error) {
	if f, ok := Lookup(filename); ok {
		text, err := f.Extract(filename)
		if err != nil {
			return "", fmt.Errorf("read %s as %s: %w", filepath.Base(filename), f.Name(), err)
		}
		return text, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", filepath.Base(filename), err)
	}
	return string(data), nil
}

// Formats returns the registered formats in registration order.
func Formats() []Format {
	return append([]Format(nil), registry...)
}

// SupportedFormats returns registered format names with their extensions.
func SupportedFormats() []string {
	var out []string
	for _, f := range registry {
		out = append(out, f.Name()+" ("+strings.Join(f.Extensions(), ", ")+")")
	}
	return out
}

// AllowedExtensions lists every registered extension.
func AllowedExtensions() []string {
	var exts []string
	for _, f := range registry {
		exts = append(exts, f.Extensions()...)
	}
	return exts
}

// PlainFormat reads files as-is.
type PlainFormat struct{}

func init() {
	Register(&PlainFormat{})
}

func (f *PlainFormat) Name() string         { return "Text" }
func (f *PlainFormat) Extensions() []string { return []string{".txt", ".text"} }

func (f *PlainFormat) Extract(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
