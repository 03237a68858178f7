package steg

import (
	"log/slog"

	"github.com/namantam1/semantic-steganographic-encoder/encoder"
)

// Option configures a Codec.
type Option func(*config)

type config struct {
	beamWidth    int
	topN         int
	strategy     encoder.Fallback
	score        encoder.ScoreFunc
	fallbackPath string
	logger       *slog.Logger
}

func defaultConfig() config {
	return config{
		beamWidth: encoder.DefaultBeamWidth,
		topN:      5,
		strategy:  encoder.FallbackSentenceBreak,
		logger:    slog.Default(),
	}
}

// WithBeamWidth sets the number of live paths kept between search steps
// (default: 20).
func WithBeamWidth(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.beamWidth = n
		}
	}
}

// WithTopN sets how many ranked results Encode returns (default: 5).
func WithTopN(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.topN = n
		}
	}
}

// WithFallback sets the strategy used when the transition model has no
// successor for a target letter (default: sentence break).
func WithFallback(f encoder.Fallback) Option {
	return func(c *config) {
		c.strategy = f
	}
}

// WithBigramFallbackModel sets the path of a bigram artifact consulted by
// the bigram fallback strategies when the primary model is trigram.
func WithBigramFallbackModel(path string) Option {
	return func(c *config) {
		c.fallbackPath = path
	}
}

// WithScorer replaces the default rank-based candidate scoring.
func WithScorer(s encoder.ScoreFunc) Option {
	return func(c *config) {
		if s != nil {
			c.score = s
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
