// Package textutil holds text cleanup helpers for extracted PDF lines.
package textutil

import "strings"

var hyphenVariants = []rune{
	'\u2010', // hyphen
	'\u2011', // non-breaking hyphen
	'\u2012', // figure dash
	'\u2013', // en dash
	'\u2014', // em dash
	'\u2015', // horizontal bar
	'\u2212', // minus sign
}

// Normalize cleans up a line extracted from a PDF text layer:
// non-breaking spaces become regular spaces, zero-width characters and
// BOMs are removed, Unicode hyphen variants become ASCII '-', and runs
// of whitespace collapse to a single space. The result is trimmed.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.ReplaceAll(s, "\u200b", "")
	s = strings.ReplaceAll(s, "\ufeff", "")

	for _, r := range hyphenVariants {
		s = strings.ReplaceAll(s, string(r), "-")
	}

	return strings.Join(strings.Fields(s), " ")
}
