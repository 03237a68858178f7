package decoder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegment(t *testing.T) {
	vocab := []string{"the", "in", "afternoon"}

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"all recognized", "theinafternoon", "the in afternoon"},
		{"nothing recognized", "xyz", "x y z"},
		{"leading junk", "qthe", "q the"},
		{"trailing junk", "theq", "the q"},
		{"junk between words", "theqin", "the q in"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Segment(vocab, tc.input))
		})
	}
}

func TestSegment_PrefersLongestWordOnTies(t *testing.T) {
	// Both "a rt" -> zero-cost impossible; craft a genuine tie: with
	// vocab {aa}, "aaa" splits as "aa a" or "a aa" at equal cost. The
	// fixed rule keeps the longest word ending the string, so the
	// final segment is "aa".
	assert.Equal(t, "a aa", Segment([]string{"aa"}, "aaa"))

	// Overlapping words: "inn" + "in". "innin" -> "inn in" (cost 0)
	// beats any split using only "in".
	assert.Equal(t, "inn in", Segment([]string{"in", "inn"}, "innin"))
}

func TestSegment_ConcatenatesBack(t *testing.T) {
	vocab := []string{"i", "am", "good", "the", "in", "afternoon"}
	inputs := []string{
		"iamgood",
		"theinafternoon",
		"iamzgood",
		"zzz",
		"goodgoodgood",
	}

	for _, in := range inputs {
		out := Segment(vocab, in)
		assert.Equal(t, in, strings.ReplaceAll(out, " ", ""), "segmentation must preserve characters for %q", in)
	}
}

func TestSegment_MinimizesUnrecognized(t *testing.T) {
	// "good" must be found even when embedded in junk on both sides.
	out := Segment([]string{"good"}, "xgoodz")
	assert.Equal(t, "x good z", out)
}
