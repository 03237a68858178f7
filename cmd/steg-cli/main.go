package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	steg "github.com/namantam1/semantic-steganographic-encoder"
	"github.com/namantam1/semantic-steganographic-encoder/encoder"
)

func main() {
	// Load .env if present (for default model paths)
	_ = godotenv.Load()

	modelPath := flag.String("model", os.Getenv("STEG_MODEL"), "Path to model artifact (default: $STEG_MODEL)")
	bigramPath := flag.String("bigram", os.Getenv("STEG_BIGRAM"), "Path to bigram fallback artifact (default: $STEG_BIGRAM)")
	mode := flag.String("mode", "encode", "Mode: encode, decode, or segment")
	beam := flag.Int("beam", encoder.DefaultBeamWidth, "Beam width")
	top := flag.Int("top", 5, "Number of ranked results to print")
	strategy := flag.String("strategy", "break", "Fallback strategy: break, bigram, or bigram+break")

	flag.Parse()

	if *modelPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: steg-cli -model MODEL [OPTIONS] TEXT")
		flag.PrintDefaults()
		os.Exit(1)
	}

	text := strings.Join(flag.Args(), " ")
	if text == "" {
		fmt.Fprintln(os.Stderr, "Error: no text provided")
		os.Exit(1)
	}

	fallback, err := parseStrategy(*strategy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := []steg.Option{
		steg.WithBeamWidth(*beam),
		steg.WithTopN(*top),
		steg.WithFallback(fallback),
	}
	if *bigramPath != "" {
		opts = append(opts, steg.WithBigramFallbackModel(*bigramPath))
	}

	codec, err := steg.New(*modelPath, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating codec: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	switch *mode {
	case "encode":
		results, err := codec.Encode(ctx, text)
		if err != nil && !errors.Is(err, steg.ErrUnreachableLetter) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Secret:  %q\n", text)
		fmt.Printf("Letters: %s\n", steg.Letters(text))
		if errors.Is(err, steg.ErrUnreachableLetter) {
			fmt.Printf("Partial: %v\n", err)
		}
		for i, r := range results {
			fmt.Printf("  %d: %q (score %.2f)\n", i+1, r.Text, r.Score)
		}
		if len(results) == 0 {
			fmt.Println("No cover text found.")
			os.Exit(1)
		}

	case "decode":
		fmt.Println(codec.Decode(text))

	case "segment":
		fmt.Println(codec.Reveal(text))

	default:
		fmt.Fprintf(os.Stderr, "Unknown mode: %s\n", *mode)
		os.Exit(1)
	}
}

func parseStrategy(s string) (encoder.Fallback, error) {
	switch s {
	case "break":
		return encoder.FallbackSentenceBreak, nil
	case "bigram":
		return encoder.FallbackBigram, nil
	case "bigram+break":
		return encoder.FallbackBigramThenBreak, nil
	default:
		return 0, fmt.Errorf("unknown fallback strategy %q", s)
	}
}
