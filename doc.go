// Package steg conceals a secret message inside plausible cover text by
// constraining the first letter of every generated word, and recovers the
// secret by reading those leading letters back out.
//
// # Quick Start
//
//	codec, err := steg.New("model.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	results, err := codec.Encode(ctx, "i am good")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cover := results[0].Text          // e.g. "In addition my group offers options daily."
//	letters := codec.Decode(cover)    // "iamgood"
//	secret := codec.Segment(letters)  // "i am good"
//
// # Thread Safety
//
// A Codec's model tables are immutable after New and safe to share across
// goroutines. Each Encode call owns its beam state, so no locking is
// needed.
//
// # Model Artifacts
//
// Artifacts are JSON records produced offline by cmd/modelbuild from a
// plain-text corpus: a frequency-ordered vocabulary plus a pruned
// word-transition table bucketed by the successor's first letter. This is
// linguistic obfuscation, not encryption; anyone who knows the scheme can
// read the first letters out.
package steg
