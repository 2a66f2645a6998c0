package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeWord prepares user input for a title search:
//   - composes the text to Unicode NFC (wiki titles are stored composed)
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into a single space
//
// Case is preserved: wiki titles are case-sensitive ("Haus" vs "haus").
func NormalizeWord(text string) string {
	text = strings.TrimSpace(norm.NFC.String(text))
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
