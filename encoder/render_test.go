package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	vocab := []string{"the", "in", "good", "morning"}

	cases := []struct {
		name   string
		tokens []Token
		want   string
	}{
		{"empty", nil, ""},
		{"single sentence", []Token{0, 1}, "The in."},
		{"break splits sentences", []Token{2, 3, SentenceBreak, 0, 1}, "Good morning. The in."},
		{"consecutive breaks", []Token{2, SentenceBreak, SentenceBreak, 0}, "Good. The."},
		{"leading break", []Token{SentenceBreak, 2}, "Good."},
		{"trailing break", []Token{2, SentenceBreak}, "Good."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Render(vocab, tc.tokens))
		})
	}
}
