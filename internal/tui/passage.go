package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/metcalfc/skim/internal/reader"
)

// layoutRange picks the words around position that are worth wrapping. The
// range is aligned to blocks of span words so line breaks only move when the
// position crosses into another block, and it always holds at least one block
// on either side of position unless the document starts or ends first.
func layoutRange(n, position, span int) (lo, hi int) {
	span = max(1, span)
	lo = max(0, (position/span-1)*span)
	hi = min(n, lo+3*span)
	return lo, hi
}

// wrapWords lays out words of the given display widths greedily into lines
// no wider than width and returns the index of the first word of each line.
func wrapWords(widths []int, width int) []int {
	if len(widths) == 0 {
		return nil
	}
	starts := []int{0}
	lineWidth := 0
	for i, w := range widths {
		if lineWidth > 0 && lineWidth+1+w > width {
			starts = append(starts, i)
			lineWidth = 0
		}
		if lineWidth > 0 {
			lineWidth++
		}
		lineWidth += w
	}
	return starts
}

// lineOf returns the line holding word i.
func lineOf(starts []int, i int) int {
	return max(0, sort.SearchInts(starts, i+1)-1)
}

// visibleLines picks at most height of n lines so that line cur stays in the
// upper third of the view.
func visibleLines(n, cur, height int) (first, last int) {
	if height <= 0 || n <= height {
		return 0, n
	}
	first = max(0, min(cur-height/3, n-height))
	return first, first + height
}

func passageStyle(i, position, chunkSize int, highlight lipgloss.Style) lipgloss.Style {
	switch {
	case i >= position && i < position+chunkSize:
		return highlight
	case i < position:
		return readStyle
	}
	return wordStyle
}

// renderPassage draws the lines around position. Only a bounded range of the
// document is wrapped and only the visible words are styled, so the cost of a
// frame does not grow with the document.
func renderPassage(words []string, position, chunkSize, width, height int, highlight lipgloss.Style) string {
	if len(words) == 0 {
		return ""
	}
	width = max(1, width)
	position = max(0, min(position, len(words)-1))

	lo, hi := layoutRange(len(words), position, width*max(1, height))
	window := words[lo:hi]
	widths := make([]int, len(window))
	for i, w := range window {
		widths[i] = runewidth.StringWidth(w)
	}
	starts := wrapWords(widths, width)
	first, last := visibleLines(len(starts), lineOf(starts, position-lo), height)

	var b strings.Builder
	for l := first; l < last; l++ {
		end := len(window)
		if l+1 < len(starts) {
			end = starts[l+1]
		}
		if l > first {
			b.WriteByte('\n')
		}
		for i := starts[l]; i < end; i++ {
			if i > starts[l] {
				b.WriteByte(' ')
			}
			b.WriteString(passageStyle(lo+i, position, chunkSize, highlight).Render(window[i]))
		}
	}
	return b.String()
}

// formatWord colours the recognition point of a single word.
func formatWord(word string) string {
	before, focus, after := reader.SplitAtORP(word)
	return wordStyle.Render(before) +
		orpStyle.Render(focus) +
		wordStyle.Render(after)
}

// anchorORPText pads text so the recognition point of word sits at the
// horizontal centre.
func anchorORPText(text, word string, width int) string {
	before, _, _ := reader.SplitAtORP(word)
	pad := max(0, width/2-runewidth.StringWidth(before))
	return strings.Repeat(" ", pad) + text
}

// renderFocus draws the current chunk alone. A single word is anchored on
// its recognition point so the eye does not move between ticks.
func renderFocus(chunk []string, width int, highlight lipgloss.Style) string {
	switch len(chunk) {
	case 0:
		return ""
	case 1:
		return anchorORPText(formatWord(chunk[0]), chunk[0], width)
	}
	text := highlight.Render(strings.Join(chunk, " "))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
