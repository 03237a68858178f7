package encoder

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Render converts a token sequence into cover text: one capitalized,
// period-terminated sentence per maximal run of real words between
// SentenceBreak markers, sentences joined by single spaces. Consecutive
// breaks produce no empty sentence.
func Render(vocab []string, tokens []Token) string {
	var b strings.Builder
	var sentence []string

	flush := func() {
		if len(sentence) == 0 {
			return
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(capitalize(sentence[0]))
		for _, w := range sentence[1:] {
			b.WriteByte(' ')
			b.WriteString(w)
		}
		b.WriteByte('.')
		sentence = sentence[:0]
	}

	for _, tok := range tokens {
		if tok == SentenceBreak {
			flush()
			continue
		}
		sentence = append(sentence, vocab[tok])
	}
	flush()

	return b.String()
}

func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError || size == 0 {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}
