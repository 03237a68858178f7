package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namantam1/semantic-steganographic-encoder/model"
)

// vocab: 0=the 1=in 2=is 3=good 4=morning
func testBigram(t *testing.T) *model.Model {
	t.Helper()
	m, err := model.NewBigram(
		[]string{"the", "in", "is", "good", "morning"},
		map[model.WordID]model.Transitions{
			0: {'i': {1, 2}}, // the -> in, is
			3: {'m': {4}},    // good -> morning
		},
	)
	require.NoError(t, err)
	return m
}

func testIndex() model.LetterIndex {
	return model.NewLetterIndex([]string{"the", "in", "is", "good", "morning"})
}

func TestGenerator_SentenceStart(t *testing.T) {
	gen := NewGenerator(testBigram(t), nil, testIndex(), FallbackSentenceBreak, nil, 0)

	cands := gen.Candidates(nil, 'i')
	require.Len(t, cands, 2)
	assert.Equal(t, Candidate{Token: 1, Score: 0}, cands[0])
	assert.Equal(t, Candidate{Token: 2, Score: -0.1}, cands[1])
}

func TestGenerator_SentenceStart_CappedAtWidth(t *testing.T) {
	gen := NewGenerator(testBigram(t), nil, testIndex(), FallbackSentenceBreak, nil, 1)

	cands := gen.Candidates(nil, 'i')
	require.Len(t, cands, 1)
	assert.Equal(t, 1, cands[0].Token)
}

func TestGenerator_ModelHit(t *testing.T) {
	gen := NewGenerator(testBigram(t), nil, testIndex(), FallbackSentenceBreak, nil, 0)

	cands := gen.Candidates([]model.WordID{0}, 'i')
	require.Len(t, cands, 2)
	assert.Equal(t, Candidate{Token: 1, Score: 0}, cands[0])
	assert.Equal(t, Candidate{Token: 2, Score: -0.1}, cands[1])
}

func TestGenerator_BreakFallback(t *testing.T) {
	gen := NewGenerator(testBigram(t), nil, testIndex(), FallbackSentenceBreak, nil, 0)

	// "morning" has no successors at all.
	cands := gen.Candidates([]model.WordID{4}, 'g')
	require.Len(t, cands, 1)
	assert.Equal(t, Candidate{Token: SentenceBreak, Score: BreakPenalty}, cands[0])
}

func TestGenerator_EmptyWhenLetterUnknown(t *testing.T) {
	gen := NewGenerator(testBigram(t), nil, testIndex(), FallbackSentenceBreak, nil, 0)

	// Sentence start and no vocabulary word starts with 'z'.
	assert.Empty(t, gen.Candidates(nil, 'z'))
}

func TestGenerator_BigramFallback(t *testing.T) {
	// Trigram primary knows nothing; bigram fallback knows are -> ready.
	vocab := []string{"we", "are", "ready"}
	tri, err := model.NewTrigram(vocab, map[[2]model.WordID]model.Transitions{})
	require.NoError(t, err)
	bi, err := model.NewBigram(vocab, map[model.WordID]model.Transitions{
		1: {'r': {2}},
	})
	require.NoError(t, err)

	gen := NewGenerator(tri, bi, model.NewLetterIndex(vocab), FallbackBigram, nil, 0)

	cands := gen.Candidates([]model.WordID{0, 1}, 'r')
	require.Len(t, cands, 1)
	assert.Equal(t, Candidate{Token: 2, Score: 0}, cands[0])

	// Without a hit in the bigram either, FallbackBigram yields nothing.
	assert.Empty(t, gen.Candidates([]model.WordID{0, 1}, 'w'))
}

func TestGenerator_BigramThenBreak(t *testing.T) {
	vocab := []string{"we", "are", "ready"}
	tri, err := model.NewTrigram(vocab, map[[2]model.WordID]model.Transitions{})
	require.NoError(t, err)
	bi, err := model.NewBigram(vocab, map[model.WordID]model.Transitions{
		1: {'r': {2}},
	})
	require.NoError(t, err)

	gen := NewGenerator(tri, bi, model.NewLetterIndex(vocab), FallbackBigramThenBreak, nil, 0)

	// Bigram hit wins over the break.
	cands := gen.Candidates([]model.WordID{0, 1}, 'r')
	require.Len(t, cands, 1)
	assert.Equal(t, 2, cands[0].Token)

	// No bigram hit: break it is.
	cands = gen.Candidates([]model.WordID{0, 1}, 'w')
	require.Len(t, cands, 1)
	assert.Equal(t, SentenceBreak, cands[0].Token)
}

func TestGenerator_CustomScorer(t *testing.T) {
	double := func(rank int) float64 { return -0.2 * float64(rank) }
	gen := NewGenerator(testBigram(t), nil, testIndex(), FallbackSentenceBreak, double, 0)

	cands := gen.Candidates([]model.WordID{0}, 'i')
	require.Len(t, cands, 2)
	assert.Equal(t, 0.0, cands[0].Score)
	assert.Equal(t, -0.2, cands[1].Score)
}

func TestFallback_String(t *testing.T) {
	assert.Equal(t, "break", FallbackSentenceBreak.String())
	assert.Equal(t, "bigram", FallbackBigram.String())
	assert.Equal(t, "bigram+break", FallbackBigramThenBreak.String())
}
