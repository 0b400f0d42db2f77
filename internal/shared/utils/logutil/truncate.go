// Package logutil bounds request-supplied values before they reach the log.
package logutil

import "unicode/utf8"

const ellipsis = "..."

// TruncateForLog shortens s to at most maxRunes runes, marking a cut with "...".
// The cut never splits a multi-byte character.
func TruncateForLog(s string, maxRunes int) string {
	if maxRunes <= 0 {
		if s == "" {
			return ""
		}
		return ellipsis
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}

	n := 0
	for i := range s {
		if n == maxRunes {
			return s[:i] + ellipsis
		}
		n++
	}
	return s
}
