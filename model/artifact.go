package model

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

// The artifact is the JSON record the offline builder emits:
//
//	{"order":2, "vocab":["the",...], "map":{"0":{"t":[1,4]}}}
//
// Trigram artifacts nest one more stringified-ID level under "map". An
// absent "order" means bigram, matching artifacts produced by older
// builders that predate trigram support.

type artifactJSON struct {
	Order int                        `json:"order,omitempty"`
	Vocab []string                   `json:"vocab"`
	Map   map[string]json.RawMessage `json:"map"`
}

// Load reads a model artifact from r.
func Load(r io.Reader) (*Model, error) {
	var art artifactJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&art); err != nil {
		return nil, fmt.Errorf("parsing artifact: %w", err)
	}

	order := Order(art.Order)
	if art.Order == 0 {
		order = Bigram
	}

	switch order {
	case Bigram:
		table := make(map[WordID]Transitions, len(art.Map))
		for key, raw := range art.Map {
			id, err := parseWordID(key, len(art.Vocab))
			if err != nil {
				return nil, err
			}
			trans, err := parseTransitions(raw)
			if err != nil {
				return nil, fmt.Errorf("context %q: %w", key, err)
			}
			table[id] = trans
		}
		return NewBigram(art.Vocab, table)

	case Trigram:
		table := make(map[[2]WordID]Transitions, len(art.Map))
		for key, raw := range art.Map {
			first, err := parseWordID(key, len(art.Vocab))
			if err != nil {
				return nil, err
			}
			var inner map[string]Transitions
			if err := json.Unmarshal(raw, &inner); err != nil {
				return nil, fmt.Errorf("context %q: %w", key, err)
			}
			for innerKey, trans := range inner {
				second, err := parseWordID(innerKey, len(art.Vocab))
				if err != nil {
					return nil, err
				}
				table[[2]WordID{first, second}] = trans
			}
		}
		return NewTrigram(art.Vocab, table)

	default:
		return nil, fmt.Errorf("unsupported model order %d", art.Order)
	}
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return m, nil
}

func parseWordID(key string, vocabSize int) (WordID, error) {
	id, err := strconv.Atoi(key)
	if err != nil {
		return 0, fmt.Errorf("map key %q: not a word ID: %w", key, err)
	}
	if id < 0 || id >= vocabSize {
		return 0, fmt.Errorf("map key %q: %w", key, errIDRange(id, vocabSize))
	}
	return id, nil
}

func parseTransitions(raw json.RawMessage) (Transitions, error) {
	var trans Transitions
	if err := json.Unmarshal(raw, &trans); err != nil {
		return nil, err
	}
	return trans, nil
}

// Save writes the model as a JSON artifact. Bucket order is preserved;
// map keys are emitted in Go's sorted-key order, which keeps the output
// byte-stable for a given model.
func (m *Model) Save(w io.Writer) error {
	art := artifactJSON{Vocab: m.vocab}

	switch m.kind {
	case Bigram:
		art.Map = make(map[string]json.RawMessage, len(m.bigrams))
		for id, trans := range m.bigrams {
			raw, err := json.Marshal(trans)
			if err != nil {
				return fmt.Errorf("encoding context %d: %w", id, err)
			}
			art.Map[strconv.Itoa(id)] = raw
		}

	case Trigram:
		art.Order = int(Trigram)
		nested := make(map[string]map[string]Transitions)
		for key, trans := range m.trigrams {
			first := strconv.Itoa(key[0])
			if nested[first] == nil {
				nested[first] = make(map[string]Transitions)
			}
			nested[first][strconv.Itoa(key[1])] = trans
		}
		art.Map = make(map[string]json.RawMessage, len(nested))
		for first, inner := range nested {
			raw, err := json.Marshal(inner)
			if err != nil {
				return fmt.Errorf("encoding context %s: %w", first, err)
			}
			art.Map[first] = raw
		}

	default:
		return fmt.Errorf("unsupported model order %d", int(m.kind))
	}

	enc := json.NewEncoder(w)
	return enc.Encode(art)
}

// MarshalJSON is implemented in terms of Transitions' natural encoding so
// buckets serialize as plain ID arrays.
func (t Transitions) MarshalJSON() ([]byte, error) {
	out := make(map[string]Bucket, len(t))
	for letter, bucket := range t {
		out[string(letter)] = bucket
	}
	return json.Marshal(out)
}

// UnmarshalJSON rejects letter keys that are not a single lowercase byte.
func (t *Transitions) UnmarshalJSON(data []byte) error {
	var raw map[string]Bucket
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	trans := make(Transitions, len(raw))
	for key, bucket := range raw {
		if len(key) != 1 || key[0] < 'a' || key[0] > 'z' {
			return fmt.Errorf("letter key %q: not a lowercase a-z byte", key)
		}
		trans[key[0]] = bucket
	}
	*t = trans
	return nil
}
