package encoder

import (
	"errors"
	"fmt"
	"sort"

	"github.com/namantam1/semantic-steganographic-encoder/model"
)

// DefaultBeamWidth bounds the number of live paths kept between steps.
const DefaultBeamWidth = 20

// ErrUnreachableLetter is returned when no live path can be extended with
// a word starting with the required letter. It is expected control flow,
// not a fault: callers decide whether to keep partial output.
var ErrUnreachableLetter = errors.New("encoder: no candidate for target letter")

// Path is one partial or complete hypothesis: word IDs interleaved with
// SentenceBreak markers plus the cumulative score of every candidate drawn
// along the way, break penalties included.
type Path struct {
	Tokens []Token
	Score  float64
}

// context returns the trailing real word IDs of the current sentence, at
// most two, newest last. Empty means the path is at a sentence start.
func (p Path) context() []model.WordID {
	var ctx [2]model.WordID
	n := 0
	for i := len(p.Tokens) - 1; i >= 0 && n < 2; i-- {
		if p.Tokens[i] == SentenceBreak {
			break
		}
		ctx[1-n] = p.Tokens[i]
		n++
	}
	return ctx[2-n:]
}

// extend returns a copy of p with tokens appended and delta added to the
// score. Paths never share token slices; beams are small enough that the
// copies cost less than the aliasing bugs they rule out.
func (p Path) extend(delta float64, tokens ...Token) Path {
	next := make([]Token, 0, len(p.Tokens)+len(tokens))
	next = append(next, p.Tokens...)
	next = append(next, tokens...)
	return Path{Tokens: next, Score: p.Score + delta}
}

// Search is a stepwise beam search over a target letter sequence. One call
// to Step consumes one letter. Interactive callers drive it a step at a
// time and inspect the beam between steps; Encode drives it to completion.
type Search struct {
	gen     *Generator
	letters []byte
	width   int
	beam    []Path
	pos     int
}

// NewSearch prepares a search for letters with the given beam width. The
// beam is seeded with a single empty path so that the first letter is
// handled by the ordinary sentence-start branch.
func NewSearch(gen *Generator, letters []byte, width int) *Search {
	if width <= 0 {
		width = DefaultBeamWidth
	}
	return &Search{
		gen:     gen,
		letters: letters,
		width:   width,
		beam:    []Path{{}},
	}
}

// Done reports whether every target letter has been consumed.
func (s *Search) Done() bool { return s.pos >= len(s.letters) }

// Pos returns the number of letters consumed so far.
func (s *Search) Pos() int { return s.pos }

// Beam returns the live beam. The slice is owned by the search; callers
// must not modify it.
func (s *Search) Beam() []Path { return s.beam }

// Step consumes the next target letter, expanding every live path,
// pooling the expansions, and pruning the pool back to the beam width.
//
// It returns false without modifying the beam when the search is done or
// when no path could be extended (a stall). Done distinguishes the two.
func (s *Search) Step() bool {
	if s.Done() {
		return false
	}
	letter := s.letters[s.pos]

	var pool []Path
	for _, p := range s.beam {
		pool = s.expand(pool, p, letter)
	}
	if len(pool) == 0 {
		return false
	}

	// Stable sort keeps ties in insertion order, which the generator's
	// deterministic ordering fixed already.
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].Score > pool[j].Score })
	if len(pool) > s.width {
		pool = pool[:s.width]
	}

	s.beam = pool
	s.pos++
	return true
}

// expand appends every extension of p by letter to pool. A sentence-break
// candidate is immediately re-expanded through the sentence-start branch
// on the same letter, so break plus restart count as one net expansion.
func (s *Search) expand(pool []Path, p Path, letter byte) []Path {
	for _, cand := range s.gen.Candidates(p.context(), letter) {
		if cand.Token != SentenceBreak {
			pool = append(pool, p.extend(cand.Score, cand.Token))
			continue
		}
		for _, restart := range s.gen.Candidates(nil, letter) {
			pool = append(pool, p.extend(cand.Score+restart.Score, SentenceBreak, restart.Token))
		}
	}
	return pool
}

// Results returns the top n distinct completed paths by score. Pruning
// already ordered the beam, so this is a bounded copy.
func (s *Search) Results(n int) []Path {
	if n <= 0 || n > len(s.beam) {
		n = len(s.beam)
	}
	out := make([]Path, n)
	copy(out, s.beam[:n])
	return out
}

// Encode runs the search over every target letter and returns up to topN
// completed paths, best first.
//
// An empty letter sequence is a successful empty result. A dead end
// mid-sequence returns the best partial paths found so far together with
// ErrUnreachableLetter wrapped with the failing position; a dead end on
// the very first letter returns no paths at all.
func Encode(gen *Generator, letters []byte, width, topN int) ([]Path, error) {
	if len(letters) == 0 {
		return nil, nil
	}

	s := NewSearch(gen, letters, width)
	for !s.Done() {
		if !s.Step() {
			err := fmt.Errorf("letter %q at position %d: %w", string(letters[s.Pos()]), s.Pos(), ErrUnreachableLetter)
			if s.Pos() == 0 {
				return nil, err
			}
			return s.Results(topN), err
		}
	}
	return s.Results(topN), nil
}
