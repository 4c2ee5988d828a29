package textutil

import (
	"strings"
	"unicode"
)

// Clean normalizes a single line of extracted text: control and zero-width
// characters are dropped, runs of whitespace collapse to one space, and the
// result is trimmed. It is a pure transform and never fails.
func Clean(line string) string {
	var buf strings.Builder
	buf.Grow(len(line))

	lastSpace := false
	for _, r := range line {
		switch {
		case isZeroWidth(r):
			continue
		case unicode.IsControl(r), unicode.IsSpace(r):
			if !lastSpace {
				buf.WriteByte(' ')
				lastSpace = true
			}
		default:
			buf.WriteRune(r)
			lastSpace = false
		}
	}

	return strings.TrimSpace(buf.String())
}

func isZeroWidth(r rune) bool {
	switch r {
	case '\u200b', '\u200c', '\u200d', '\ufeff', '\u00ad':
		return true
	}
	return false
}
