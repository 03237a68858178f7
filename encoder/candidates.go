// Package encoder hides a letter sequence inside generated cover text: a
// beam search over a word-transition model picks, for every target letter,
// a word starting with that letter while maximizing transition coherence.
package encoder

import (
	"github.com/namantam1/semantic-steganographic-encoder/model"
)

// Token is either a real word ID or the SentenceBreak marker.
type Token = int

// SentenceBreak marks a hard sentence boundary inside a path. It consumes
// no target letter; the search restarts the sentence on the same letter.
const SentenceBreak Token = -1

// BreakPenalty is the score charged for giving up on a coherent transition
// and starting a new sentence.
const BreakPenalty = -0.5

// Fallback selects what the generator does when the transition model has
// no successor for the required letter.
type Fallback int

const (
	// FallbackSentenceBreak ends the sentence and restarts from the
	// letter index.
	FallbackSentenceBreak Fallback = iota
	// FallbackBigram retries the lookup against a separate bigram model
	// using only the last word. Meant for trigram primaries.
	FallbackBigram
	// FallbackBigramThenBreak tries the bigram model first and breaks
	// the sentence only if that also fails.
	FallbackBigramThenBreak
)

func (f Fallback) String() string {
	switch f {
	case FallbackSentenceBreak:
		return "break"
	case FallbackBigram:
		return "bigram"
	case FallbackBigramThenBreak:
		return "bigram+break"
	}
	return "unknown"
}

// ScoreFunc maps a candidate's rank within its bucket to a score
// contribution. Buckets are ordered by descending likelihood, so rank 0 is
// the most probable successor.
type ScoreFunc func(rank int) float64

// RankScore is the default ScoreFunc: 0 at rank 0, minus 0.1 per rank. A
// stand-in for true log-probabilities, which the artifact does not carry.
func RankScore(rank int) float64 {
	return -0.1 * float64(rank)
}

// Candidate is one scored next token.
type Candidate struct {
	Token Token
	Score float64
}

// Generator produces scored next-token candidates for a path. It is
// read-only after construction and safe for concurrent use.
type Generator struct {
	model    *model.Model
	fallback *model.Model // bigram model consulted by the bigram fallbacks
	index    model.LetterIndex
	strategy Fallback
	score    ScoreFunc
	width    int // cap on sentence-start candidates
}

// NewGenerator builds a Generator. fallback may be nil when the strategy
// never consults a bigram model. width caps how many words the letter
// index contributes at a sentence start; zero or less means no cap.
func NewGenerator(m *model.Model, fallback *model.Model, index model.LetterIndex, strategy Fallback, score ScoreFunc, width int) *Generator {
	if score == nil {
		score = RankScore
	}
	return &Generator{
		model:    m,
		fallback: fallback,
		index:    index,
		strategy: strategy,
		score:    score,
		width:    width,
	}
}

// Candidates returns the ordered scored candidates for extending a path
// whose trailing sentence context is context (empty means sentence start)
// with a word starting with letter. The result is empty only when neither
// the model nor the letter index knows the letter.
func (g *Generator) Candidates(context []model.WordID, letter byte) []Candidate {
	if len(context) == 0 {
		return g.fromBucket(g.index.Words(letter, g.width))
	}

	if bucket := g.model.Successors(context, letter); len(bucket) > 0 {
		return g.fromBucket(bucket)
	}

	switch g.strategy {
	case FallbackSentenceBreak:
		return []Candidate{{Token: SentenceBreak, Score: BreakPenalty}}
	case FallbackBigram:
		return g.fromBigram(context, letter)
	case FallbackBigramThenBreak:
		if cands := g.fromBigram(context, letter); len(cands) > 0 {
			return cands
		}
		return []Candidate{{Token: SentenceBreak, Score: BreakPenalty}}
	}
	return nil
}

func (g *Generator) fromBigram(context []model.WordID, letter byte) []Candidate {
	if g.fallback == nil {
		return nil
	}
	return g.fromBucket(g.fallback.Successors(context, letter))
}

func (g *Generator) fromBucket(bucket []model.WordID) []Candidate {
	if len(bucket) == 0 {
		return nil
	}
	cands := make([]Candidate, len(bucket))
	for rank, id := range bucket {
		cands[rank] = Candidate{Token: id, Score: g.score(rank)}
	}
	return cands
}
