package model

import (
	"sort"
	"strings"
)

// Builder defaults, tuned the same way the original artifact pipeline was:
// keep a bucket small enough to ship, drop connections seen only once.
const (
	// DefaultTopK caps each per-letter successor bucket.
	DefaultTopK = 30
	// DefaultMinCount drops n-grams seen fewer times than this.
	DefaultMinCount = 2
)

// Tokenize lowercases text, strips everything outside a-z and whitespace,
// and splits on whitespace.
func Tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		}
	}
	return strings.Fields(b.String())
}

// Builder accumulates token streams and builds a transition model. The
// vocabulary is ordered by descending frequency so that small word IDs are
// common words, which keeps artifacts compact and makes ascending-ID order
// inside the letter index a likelihood ranking.
type Builder struct {
	order    Order
	TopK     int // per-letter bucket cap
	MinCount int // minimum n-gram count kept

	unigrams map[string]int
	bigrams  map[[2]string]int
	trigrams map[[3]string]int
}

// NewBuilder creates a builder for the given model order.
func NewBuilder(order Order) *Builder {
	if order != Trigram {
		order = Bigram
	}
	return &Builder{
		order:    order,
		TopK:     DefaultTopK,
		MinCount: DefaultMinCount,
		unigrams: make(map[string]int),
		bigrams:  make(map[[2]string]int),
		trigrams: make(map[[3]string]int),
	}
}

// Add accumulates counts from one token stream.
func (b *Builder) Add(tokens []string) {
	for i, tok := range tokens {
		b.unigrams[tok]++
		if i >= 1 {
			b.bigrams[[2]string{tokens[i-1], tok}]++
		}
		if b.order == Trigram && i >= 2 {
			b.trigrams[[3]string{tokens[i-2], tokens[i-1], tok}]++
		}
	}
}

// AddText tokenizes text and accumulates it.
func (b *Builder) AddText(text string) {
	b.Add(Tokenize(text))
}

// counted pairs a successor ID with its raw count during assembly.
// Finished buckets keep only the IDs; order implies likelihood.
type counted struct {
	id    WordID
	count int
}

// Build assembles the immutable model from the accumulated counts.
func (b *Builder) Build() (*Model, error) {
	vocab := b.buildVocab()
	ids := make(map[string]WordID, len(vocab))
	for id, w := range vocab {
		ids[w] = id
	}

	switch b.order {
	case Trigram:
		groups := make(map[[2]WordID]map[byte][]counted)
		for key, count := range b.trigrams {
			if count < b.MinCount {
				continue
			}
			ctx := [2]WordID{ids[key[0]], ids[key[1]]}
			if groups[ctx] == nil {
				groups[ctx] = make(map[byte][]counted)
			}
			letter := key[2][0]
			groups[ctx][letter] = append(groups[ctx][letter], counted{id: ids[key[2]], count: count})
		}
		table := make(map[[2]WordID]Transitions, len(groups))
		for ctx, byLetter := range groups {
			table[ctx] = finalize(byLetter, b.TopK)
		}
		return NewTrigram(vocab, table)

	default:
		groups := make(map[WordID]map[byte][]counted)
		for key, count := range b.bigrams {
			if count < b.MinCount {
				continue
			}
			ctx := ids[key[0]]
			if groups[ctx] == nil {
				groups[ctx] = make(map[byte][]counted)
			}
			letter := key[1][0]
			groups[ctx][letter] = append(groups[ctx][letter], counted{id: ids[key[1]], count: count})
		}
		table := make(map[WordID]Transitions, len(groups))
		for ctx, byLetter := range groups {
			table[ctx] = finalize(byLetter, b.TopK)
		}
		return NewBigram(vocab, table)
	}
}

// buildVocab orders words by descending count; ties alphabetically so
// rebuilding from the same corpus always yields the same IDs.
func (b *Builder) buildVocab() []string {
	vocab := make([]string, 0, len(b.unigrams))
	for w := range b.unigrams {
		vocab = append(vocab, w)
	}
	sort.Slice(vocab, func(i, j int) bool {
		ci, cj := b.unigrams[vocab[i]], b.unigrams[vocab[j]]
		if ci != cj {
			return ci > cj
		}
		return vocab[i] < vocab[j]
	})
	return vocab
}

// finalize sorts each letter group by descending count (ties by ascending
// ID, which is descending word frequency), caps it at topK, and strips the
// counts.
func finalize(byLetter map[byte][]counted, topK int) Transitions {
	trans := make(Transitions, len(byLetter))
	for letter, pairs := range byLetter {
		sort.Slice(pairs, func(i, j int) bool {
			if pairs[i].count != pairs[j].count {
				return pairs[i].count > pairs[j].count
			}
			return pairs[i].id < pairs[j].id
		})
		if topK > 0 && len(pairs) > topK {
			pairs = pairs[:topK]
		}
		bucket := make(Bucket, len(pairs))
		for i, p := range pairs {
			bucket[i] = p.id
		}
		trans[letter] = bucket
	}
	return trans
}
