package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t,
		[]string{"in", "the", "afternoon"},
		Tokenize("In the afternoon,"))
	assert.Equal(t,
		[]string{"i", "am", "good"},
		Tokenize("  I   am\n\tgood!!  "))
	assert.Empty(t, Tokenize("123 !?"))
}

func TestBuilder_VocabFrequencyOrder(t *testing.T) {
	b := NewBuilder(Bigram)
	b.MinCount = 1
	b.AddText("the cat and the dog and the bird")

	m, err := b.Build()
	require.NoError(t, err)

	// "the" (3) before "and" (2) before the singletons, alphabetical.
	assert.Equal(t, []string{"the", "and", "bird", "cat", "dog"}, m.Vocab())
}

func TestBuilder_BigramTransitions(t *testing.T) {
	b := NewBuilder(Bigram)
	b.MinCount = 1
	b.AddText("good morning my good morning crowd")

	m, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, Bigram, m.Kind())

	vocab := m.Vocab()
	id := func(w string) WordID {
		for i, v := range vocab {
			if v == w {
				return i
			}
		}
		t.Fatalf("word %q not in vocab %v", w, vocab)
		return -1
	}

	assert.Equal(t, Bucket{id("morning")}, m.Successors([]WordID{id("good")}, 'm'))
	assert.Equal(t, Bucket{id("good")}, m.Successors([]WordID{id("my")}, 'g'))
	assert.Nil(t, m.Successors([]WordID{id("good")}, 'z'))
}

func TestBuilder_MinCountPrunes(t *testing.T) {
	b := NewBuilder(Bigram)
	b.MinCount = 2
	b.AddText("good morning good morning good night")

	m, err := b.Build()
	require.NoError(t, err)

	vocab := m.Vocab()
	goodID := WordID(-1)
	for i, v := range vocab {
		if v == "good" {
			goodID = i
		}
	}
	require.NotEqual(t, -1, goodID)

	// "good morning" seen twice survives; "good night" seen once does not.
	assert.NotEmpty(t, m.Successors([]WordID{goodID}, 'm'))
	assert.Empty(t, m.Successors([]WordID{goodID}, 'n'))
}

func TestBuilder_TopKCapsBuckets(t *testing.T) {
	b := NewBuilder(Bigram)
	b.MinCount = 1
	b.TopK = 2
	// Four distinct d-successors of "the", with distinct frequencies.
	b.AddText("the dog the dog the dog the deer the deer the dove the duck")

	m, err := b.Build()
	require.NoError(t, err)

	vocab := m.Vocab()
	theID := WordID(-1)
	for i, v := range vocab {
		if v == "the" {
			theID = i
		}
	}
	require.NotEqual(t, -1, theID)

	bucket := m.Successors([]WordID{theID}, 'd')
	require.Len(t, bucket, 2)
	// Most frequent first: dog (3) then deer (2).
	assert.Equal(t, "dog", m.Word(bucket[0]))
	assert.Equal(t, "deer", m.Word(bucket[1]))
}

func TestBuilder_Trigram(t *testing.T) {
	b := NewBuilder(Trigram)
	b.MinCount = 1
	b.AddText("we are ready we are ready")

	m, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, Trigram, m.Kind())

	vocab := m.Vocab()
	id := func(w string) WordID {
		for i, v := range vocab {
			if v == w {
				return i
			}
		}
		return -1
	}

	assert.Equal(t, Bucket{id("ready")}, m.Successors([]WordID{id("we"), id("are")}, 'r'))
}

func TestBuilder_Deterministic(t *testing.T) {
	build := func() *Model {
		b := NewBuilder(Bigram)
		b.MinCount = 1
		b.AddText("in the afternoon my grandma overeats oats daily")
		m, err := b.Build()
		require.NoError(t, err)
		return m
	}

	assert.Equal(t, build().Vocab(), build().Vocab())
}
