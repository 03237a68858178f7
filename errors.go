package steg

import (
	"errors"

	"github.com/namantam1/semantic-steganographic-encoder/encoder"
)

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrModelNotFound indicates the model artifact file does not exist.
	ErrModelNotFound = errors.New("steg: model artifact not found")

	// ErrInvalidModel indicates the artifact exists but is malformed.
	ErrInvalidModel = errors.New("steg: invalid model artifact")

	// ErrUnreachableLetter indicates the search hit a target letter no
	// path could satisfy. Encode may still return partial results
	// alongside it.
	ErrUnreachableLetter = encoder.ErrUnreachableLetter
)
