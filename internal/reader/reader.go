// Package reader turns text sources into word tokens for the pacer.
package reader

import (
	"strings"
	"unicode/utf8"
)

// ParseText splits text into words on any run of whitespace.
func ParseText(text string) []string {
	return strings.Fields(text)
}

// CountWords returns the number of tokens ParseText would produce.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// GetORPPosition returns the Optimal Recognition Point index for a word.
// This is the character (rune) position where the eye should focus for fastest recognition.
func GetORPPosition(word string) int {
	length := utf8.RuneCountInString(word)
	if length <= 1 {
		return 0
	} else if length <= 5 {
		return 1
	}
	return length / 3
}

// SplitAtORP splits word around its recognition point so a single-word chunk
// can be anchored on it.
func SplitAtORP(word string) (before, focus, after string) {
	runes := []rune(word)
	if len(runes) == 0 {
		return "", "", ""
	}
	orp := min(GetORPPosition(word), len(runes)-1)
	return string(runes[:orp]), string(runes[orp]), string(runes[orp+1:])
}
