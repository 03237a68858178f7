package steg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"unicode"

	"github.com/namantam1/semantic-steganographic-encoder/decoder"
	"github.com/namantam1/semantic-steganographic-encoder/encoder"
	"github.com/namantam1/semantic-steganographic-encoder/model"
)

// Codec hides messages in cover text and recovers them. Its model tables
// are immutable after New, so a Codec is safe for concurrent use; every
// Encode call owns its own search state.
type Codec struct {
	model     *model.Model
	fallback  *model.Model
	index     model.LetterIndex
	gen       *encoder.Generator
	beamWidth int
	topN      int
	logger    *slog.Logger
}

// Result is one ranked piece of cover text.
type Result struct {
	Text  string
	Score float64
}

// New creates a Codec from a model artifact file.
func New(modelPath string, opts ...Option) (*Codec, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if _, err := os.Stat(modelPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, modelPath)
		}
		return nil, fmt.Errorf("checking model file: %w", err)
	}

	m, err := model.LoadFile(modelPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}

	var fallback *model.Model
	if cfg.fallbackPath != "" {
		fallback, err = model.LoadFile(cfg.fallbackPath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrModelNotFound, cfg.fallbackPath)
			}
			return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
		}
		if fallback.Kind() != model.Bigram {
			return nil, fmt.Errorf("%w: fallback model must be bigram, got %s", ErrInvalidModel, fallback.Kind())
		}
	}

	index := model.NewLetterIndex(m.Vocab())

	c := &Codec{
		model:     m,
		fallback:  fallback,
		index:     index,
		gen:       encoder.NewGenerator(m, fallback, index, cfg.strategy, cfg.score, cfg.beamWidth),
		beamWidth: cfg.beamWidth,
		topN:      cfg.topN,
		logger:    cfg.logger,
	}

	c.logger.Debug("model loaded",
		"path", modelPath,
		"kind", m.Kind().String(),
		"vocab", m.VocabSize(),
		"beamWidth", c.beamWidth,
		"strategy", cfg.strategy.String())

	return c, nil
}

// Encode hides secret inside generated cover text and returns up to TopN
// ranked results, best first. Target letters are the alphabetic characters
// of secret, lowercased; everything else is ignored. An empty target
// sequence yields an empty successful result.
//
// When the search dead-ends mid-message, the best partial results are
// returned together with ErrUnreachableLetter. The context is only
// checked between search steps; the steps themselves never block.
func (c *Codec) Encode(ctx context.Context, secret string) ([]Result, error) {
	letters := TargetLetters(secret)
	if len(letters) == 0 {
		return nil, nil
	}

	s := encoder.NewSearch(c.gen, letters, c.beamWidth)
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !s.Step() {
			c.logger.Warn("dead end",
				"letter", string(letters[s.Pos()]),
				"position", s.Pos(),
				"of", len(letters))
			err := fmt.Errorf("letter %q at position %d: %w", string(letters[s.Pos()]), s.Pos(), ErrUnreachableLetter)
			if s.Pos() == 0 {
				return nil, err
			}
			return c.render(s.Results(c.topN)), err
		}
	}

	return c.render(s.Results(c.topN)), nil
}

func (c *Codec) render(paths []encoder.Path) []Result {
	results := make([]Result, len(paths))
	for i, p := range paths {
		results[i] = Result{
			Text:  encoder.Render(c.model.Vocab(), p.Tokens),
			Score: p.Score,
		}
	}
	return results
}

// Decode extracts the hidden letter sequence from cover text.
func (c *Codec) Decode(text string) string {
	return decoder.FirstLetters(text)
}

// Segment splits an unspaced decoded string into vocabulary words.
func (c *Codec) Segment(text string) string {
	return decoder.Segment(c.model.Vocab(), text)
}

// Reveal runs the full inverse pipeline: first letters out of the cover
// text, then word boundaries back in.
func (c *Codec) Reveal(text string) string {
	return c.Segment(c.Decode(text))
}

// TargetLetters derives the target letter sequence from a secret message:
// its alphabetic characters, lowercased, as single bytes. Characters that
// lowercase outside a-z cannot start any vocabulary word and are dropped.
func TargetLetters(secret string) []byte {
	letters := make([]byte, 0, len(secret))
	for _, r := range secret {
		if !unicode.IsLetter(r) {
			continue
		}
		l := unicode.ToLower(r)
		if l < 'a' || l > 'z' {
			continue
		}
		letters = append(letters, byte(l))
	}
	return letters
}

// Letters is a convenience for displaying a derived target sequence.
func Letters(secret string) string {
	return string(TargetLetters(secret))
}
