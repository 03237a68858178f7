package model

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_BigramDefaultOrder(t *testing.T) {
	// No "order" field: artifacts from older builders are bigram.
	m, err := Load(strings.NewReader(`{"vocab":["the","in","is"],"map":{"0":{"i":[1,2]}}}`))
	require.NoError(t, err)

	assert.Equal(t, Bigram, m.Kind())
	assert.Equal(t, 3, m.VocabSize())
	assert.Equal(t, Bucket{1, 2}, m.Successors([]WordID{0}, 'i'))
}

func TestLoad_Trigram(t *testing.T) {
	m, err := Load(strings.NewReader(`{"order":3,"vocab":["we","are","ready"],"map":{"0":{"1":{"r":[2]}}}}`))
	require.NoError(t, err)

	assert.Equal(t, Trigram, m.Kind())
	assert.Equal(t, Bucket{2}, m.Successors([]WordID{0, 1}, 'r'))
}

func TestLoad_Malformed(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not json", `not json at all`},
		{"bad order", `{"order":5,"vocab":[],"map":{}}`},
		{"non-numeric key", `{"vocab":["a"],"map":{"x":{"a":[0]}}}`},
		{"context out of range", `{"vocab":["a"],"map":{"3":{"a":[0]}}}`},
		{"successor out of range", `{"vocab":["a"],"map":{"0":{"a":[9]}}}`},
		{"multi-byte letter key", `{"vocab":["a","b"],"map":{"0":{"ab":[1]}}}`},
		{"uppercase letter key", `{"vocab":["a","b"],"map":{"0":{"A":[1]}}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.data))
			assert.Error(t, err)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	vocab := []string{"good", "morning", "my"}
	m, err := NewBigram(vocab, map[WordID]Transitions{
		0: {'m': {1, 2}},
		1: {'g': {0}},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.Save(&buf))

	loaded, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, Bigram, loaded.Kind())
	assert.Equal(t, vocab, loaded.Vocab())
	assert.Equal(t, Bucket{1, 2}, loaded.Successors([]WordID{0}, 'm'))
	assert.Equal(t, Bucket{0}, loaded.Successors([]WordID{1}, 'g'))
}

func TestSave_TrigramRoundTrip(t *testing.T) {
	vocab := []string{"we", "are", "ready"}
	m, err := NewTrigram(vocab, map[[2]WordID]Transitions{
		{0, 1}: {'r': {2}},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.Save(&buf))

	loaded, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, Trigram, loaded.Kind())
	assert.Equal(t, Bucket{2}, loaded.Successors([]WordID{0, 1}, 'r'))
}

func TestLoadFile_NotFound(t *testing.T) {
	_, err := LoadFile("testdata/nonexistent.json")
	require.Error(t, err)
}
