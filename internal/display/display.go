// Package display holds the presentation settings of a reading session:
// highlight style, font family, font size and fullscreen.
package display

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknown is returned when parsing a name that is not part of an enum.
var ErrUnknown = errors.New("unknown display setting")

var titleCaser = cases.Title(language.English)

// HighlightStyle selects how the current chunk is marked in the passage.
type HighlightStyle int

const (
	HighlightClassic HighlightStyle = iota
	HighlightRed
	HighlightGreen
	HighlightBlue
	HighlightYellow
	HighlightPurple
)

var highlightNames = []string{"classic", "red", "green", "blue", "yellow", "purple"}

// Colors are hex foreground/background pairs. Classic has no background.
type Colors struct {
	Foreground string
	Background string
}

var highlightColors = []Colors{
	{Foreground: "#7C3AED"},
	{Foreground: "#B91C1C", Background: "#FEE2E2"},
	{Foreground: "#15803D", Background: "#DCFCE7"},
	{Foreground: "#1D4ED8", Background: "#DBEAFE"},
	{Foreground: "#A16207", Background: "#FEF9C3"},
	{Foreground: "#7E22CE", Background: "#F3E8FF"},
}

func (h HighlightStyle) String() string { return enumName(highlightNames, int(h)) }

// Label is the human readable name.
func (h HighlightStyle) Label() string { return titleCaser.String(h.String()) }

// Colors returns the palette used to render the style.
func (h HighlightStyle) Colors() Colors {
	if int(h) < 0 || int(h) >= len(highlightColors) {
		return highlightColors[HighlightClassic]
	}
	return highlightColors[h]
}

// Next cycles to the following style, wrapping around.
func (h HighlightStyle) Next() HighlightStyle {
	return HighlightStyle((int(h) + 1) % len(highlightNames))
}

// HighlightStyles lists every style in display order.
func HighlightStyles() []HighlightStyle {
	out := make([]HighlightStyle, len(highlightNames))
	for i := range out {
		out[i] = HighlightStyle(i)
	}
	return out
}

// ParseHighlightStyle maps a name such as "blue" to its style.
func ParseHighlightStyle(s string) (HighlightStyle, error) {
	i, err := parseEnum(highlightNames, "highlight style", s)
	return HighlightStyle(i), err
}

// FontFamily is the typeface class of the reading area.
type FontFamily int

const (
	FontSans FontFamily = iota
	FontSerif
	FontMono
)

var fontNames = []string{"sans", "serif", "mono"}
var fontLabels = []string{"Sans-serif", "Serif", "Monospace"}

func (f FontFamily) String() string { return enumName(fontNames, int(f)) }

func (f FontFamily) Label() string { return enumName(fontLabels, int(f)) }

// Next cycles to the following family, wrapping around.
func (f FontFamily) Next() FontFamily {
	return FontFamily((int(f) + 1) % len(fontNames))
}

// ParseFontFamily accepts "sans", "serif" or "mono". A "font-" prefix is
// tolerated.
func ParseFontFamily(s string) (FontFamily, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "font-")
	i, err := parseEnum(fontNames, "font family", s)
	return FontFamily(i), err
}

// FontSize is the relative text size of the reading area.
type FontSize int

const (
	SizeSmall FontSize = iota
	SizeMedium
	SizeLarge
	SizeXLarge
)

var sizeNames = []string{"small", "medium", "large", "x-large"}

// Point sizes used by the GUI.
var sizePoints = []float32{14, 18, 24, 32}

func (s FontSize) String() string { return enumName(sizeNames, int(s)) }

func (s FontSize) Label() string { return titleCaser.String(s.String()) }

// Points is the text size in points.
func (s FontSize) Points() float32 {
	if int(s) < 0 || int(s) >= len(sizePoints) {
		return sizePoints[SizeMedium]
	}
	return sizePoints[s]
}

// Bigger steps up one size, stopping at x-large.
func (s FontSize) Bigger() FontSize {
	if s >= SizeXLarge {
		return SizeXLarge
	}
	return s + 1
}

// Smaller steps down one size, stopping at small.
func (s FontSize) Smaller() FontSize {
	if s <= SizeSmall {
		return SizeSmall
	}
	return s - 1
}

// ParseFontSize maps a name such as "x-large" to its size.
func ParseFontSize(s string) (FontSize, error) {
	i, err := parseEnum(sizeNames, "font size", s)
	return FontSize(i), err
}

// Settings groups the presentation choices of one session.
type Settings struct {
	Highlight  HighlightStyle
	Font       FontFamily
	Size       FontSize
	Fullscreen bool
}

// Default returns classic highlighting, sans-serif, medium, windowed.
func Default() Settings {
	return Settings{Highlight: HighlightClassic, Font: FontSans, Size: SizeMedium}
}

// ToggleFullscreen flips fullscreen and returns the new value.
func (s *Settings) ToggleFullscreen() bool {
	s.Fullscreen = !s.Fullscreen
	return s.Fullscreen
}

// SetHighlightStyle changes the highlight style.
func (s *Settings) SetHighlightStyle(h HighlightStyle) {
	s.Highlight = h
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return names[i]
}

func parseEnum(names []string, kind, s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%s %q: %w", kind, s, ErrUnknown)
}
