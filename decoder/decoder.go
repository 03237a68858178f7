// Package decoder recovers a hidden message from cover text: FirstLetters
// reads the leading letter of every word back out, and Segment splits the
// resulting unspaced string into vocabulary words.
package decoder

import (
	"strings"
	"unicode"
)

// FirstLetters returns the lowercase concatenation of the first alphabetic
// character of each maximal alphabetic run in text. Non-alphabetic
// characters act purely as separators. It is the exact left inverse of the
// encoder's first-letter constraint.
func FirstLetters(text string) string {
	var b strings.Builder
	inWord := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			if !inWord {
				b.WriteRune(unicode.ToLower(r))
				inWord = true
			}
			continue
		}
		inWord = false
	}
	return b.String()
}
