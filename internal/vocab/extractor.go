// Package vocab extracts candidate vocabulary words from transcript text.
package vocab

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// wordPattern matches one maximal run of letters, digits or underscores.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// minWordRunes is the shortest word worth enriching; anything of three
// runes or fewer is discarded.
const minWordRunes = 4

// Extract tokenizes text into lowercase words and returns each distinct
// word once, in order of first appearance. Words shorter than minWordRunes
// and all punctuation are discarded. The transform is pure: the same text
// always yields the same sequence.
func Extract(text string) []string {
	seen := make(map[string]bool)
	var words []string

	for _, token := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if utf8.RuneCountInString(token) < minWordRunes {
			continue
		}
		if seen[token] {
			continue
		}
		seen[token] = true
		words = append(words, token)
	}

	return words
}
