// Package model holds the read-only word-transition model the encoder
// searches over: a vocabulary indexed by word ID, per-letter transition
// tables keyed by recent-word context, and a derived first-letter index.
package model

import "fmt"

// WordID is an index into the vocabulary. IDs are assigned at build time
// and never change for the lifetime of an artifact.
type WordID = int

// Order identifies the context size of a transition table.
type Order int

const (
	// Bigram tables key transitions on the previous word only.
	Bigram Order = 2
	// Trigram tables key transitions on the previous two words.
	Trigram Order = 3
)

func (o Order) String() string {
	switch o {
	case Bigram:
		return "bigram"
	case Trigram:
		return "trigram"
	default:
		return fmt.Sprintf("order(%d)", int(o))
	}
}

// Bucket is an ordered list of successor word IDs for one target letter.
// Order within a bucket encodes descending likelihood.
type Bucket []WordID

// Transitions maps a required first letter to its successor bucket.
type Transitions map[byte]Bucket

// Model is an immutable n-gram word-transition model. Exactly one of the
// bigram or trigram tables is populated, selected by Kind at construction;
// the kind is never inferred from data shape.
type Model struct {
	vocab    []string
	kind     Order
	bigrams  map[WordID]Transitions
	trigrams map[[2]WordID]Transitions
}

// NewBigram builds a bigram model over vocab. The transition table is
// validated: every referenced ID must be in range and every letter must be
// a single lowercase a-z byte.
func NewBigram(vocab []string, table map[WordID]Transitions) (*Model, error) {
	m := &Model{vocab: vocab, kind: Bigram, bigrams: table}
	for id, trans := range table {
		if id < 0 || id >= len(vocab) {
			return nil, fmt.Errorf("transition context %d: %w", id, errIDRange(id, len(vocab)))
		}
		if err := validateTransitions(trans, len(vocab)); err != nil {
			return nil, fmt.Errorf("transitions for %q: %w", vocab[id], err)
		}
	}
	return m, nil
}

// NewTrigram builds a trigram model over vocab, validated the same way as
// NewBigram.
func NewTrigram(vocab []string, table map[[2]WordID]Transitions) (*Model, error) {
	m := &Model{vocab: vocab, kind: Trigram, trigrams: table}
	for key, trans := range table {
		for _, id := range key {
			if id < 0 || id >= len(vocab) {
				return nil, fmt.Errorf("transition context %v: %w", key, errIDRange(id, len(vocab)))
			}
		}
		if err := validateTransitions(trans, len(vocab)); err != nil {
			return nil, fmt.Errorf("transitions for (%q, %q): %w", vocab[key[0]], vocab[key[1]], err)
		}
	}
	return m, nil
}

func validateTransitions(trans Transitions, vocabSize int) error {
	for letter, bucket := range trans {
		if letter < 'a' || letter > 'z' {
			return fmt.Errorf("letter key %q: not a lowercase a-z byte", string(letter))
		}
		for _, id := range bucket {
			if id < 0 || id >= vocabSize {
				return errIDRange(id, vocabSize)
			}
		}
	}
	return nil
}

func errIDRange(id, size int) error {
	return fmt.Errorf("word ID %d out of range [0, %d)", id, size)
}

// Kind reports whether the model is bigram or trigram.
func (m *Model) Kind() Order { return m.kind }

// VocabSize returns the number of words in the vocabulary.
func (m *Model) VocabSize() int { return len(m.vocab) }

// Word returns the vocabulary entry for id. It panics on an out-of-range
// ID, which indicates a bug rather than bad external input: every loaded
// table is range-checked at construction.
func (m *Model) Word(id WordID) string { return m.vocab[id] }

// Vocab returns the vocabulary slice. Callers must not modify it.
func (m *Model) Vocab() []string { return m.vocab }

// Successors returns the ordered successor bucket for the given context
// and target letter, or nil when the model has no such transition.
//
// A bigram model uses only the last element of context. A trigram model
// needs two context words; with fewer it has no answer and returns nil.
func (m *Model) Successors(context []WordID, letter byte) Bucket {
	switch m.kind {
	case Bigram:
		if len(context) == 0 {
			return nil
		}
		return m.bigrams[context[len(context)-1]][letter]
	case Trigram:
		if len(context) < 2 {
			return nil
		}
		key := [2]WordID{context[len(context)-2], context[len(context)-1]}
		return m.trigrams[key][letter]
	default:
		return nil
	}
}

// LetterIndex maps a starting letter to the ordered list of word IDs whose
// word begins with that letter. It is derived from a vocabulary and stays
// consistent with it for the lifetime of the model.
type LetterIndex map[byte][]WordID

// NewLetterIndex derives the index from vocab. IDs within each bucket are
// ascending; the builder assigns IDs in descending frequency order, so
// ascending ID doubles as a likelihood ranking.
func NewLetterIndex(vocab []string) LetterIndex {
	idx := make(LetterIndex)
	for id, word := range vocab {
		if word == "" {
			continue
		}
		first := word[0]
		if first < 'a' || first > 'z' {
			continue
		}
		idx[first] = append(idx[first], id)
	}
	return idx
}

// Words returns up to max word IDs starting with letter, in index order.
// A max of zero or less means no cap.
func (idx LetterIndex) Words(letter byte, max int) []WordID {
	ids := idx[letter]
	if max > 0 && len(ids) > max {
		ids = ids[:max]
	}
	return ids
}
