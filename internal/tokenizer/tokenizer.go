// Package tokenizer splits extracted text lines into tokens on a
// configurable set of single-character separators.
package tokenizer

import (
	"errors"
	"strings"
)

// DefaultSeparators is the separator set used when none is configured:
// comma, semicolon, pipe and tab.
const DefaultSeparators = ",;|\t"

// ErrEmptySeparators is returned when a tokenizer is constructed with
// no separator characters.
var ErrEmptySeparators = errors.New("separator set must not be empty")

// Tokenizer splits lines on a fixed set of separator runes. Each
// configured separator is a single character; multi-character
// separators are not supported.
type Tokenizer struct {
	separators map[rune]struct{}
}

// New builds a Tokenizer from the runes of separators. The order of
// characters in the string is irrelevant; duplicates collapse.
func New(separators string) (*Tokenizer, error) {
	if separators == "" {
		return nil, ErrEmptySeparators
	}

	set := make(map[rune]struct{}, len(separators))
	for _, r := range separators {
		set[r] = struct{}{}
	}

	return &Tokenizer{separators: set}, nil
}

// Tokenize scans line once, left to right, closing the current
// candidate token at every separator rune. Candidates are trimmed of
// surrounding whitespace and dropped when empty, so consecutive
// separators never produce empty tokens. Token order matches the
// source order within the line.
func (t *Tokenizer) Tokenize(line string) []string {
	tokens := []string{}
	var current strings.Builder

	flush := func() {
		token := strings.TrimSpace(current.String())
		current.Reset()
		if token != "" {
			tokens = append(tokens, token)
		}
	}

	for _, r := range line {
		if _, ok := t.separators[r]; ok {
			flush()
			continue
		}
		current.WriteRune(r)
	}
	flush()

	return tokens
}
