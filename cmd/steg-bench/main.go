package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	steg "github.com/namantam1/semantic-steganographic-encoder"
	"github.com/namantam1/semantic-steganographic-encoder/internal/bench"
)

func main() {
	_ = godotenv.Load()

	var (
		modelPath  = flag.String("model", os.Getenv("STEG_MODEL"), "Path to model artifact (required)")
		bigramPath = flag.String("bigram", os.Getenv("STEG_BIGRAM"), "Path to bigram fallback artifact")
		corpusDir  = flag.String("corpus", "testdata/messages", "Directory containing message-set files")
		beam       = flag.Int("beam", 20, "Beam width")
		top        = flag.Int("top", 5, "Results per message")
		sweep      = flag.Bool("sweep", false, "Run beam-width sweep")
		sweepMin   = flag.Int("sweep-min", 5, "Sweep minimum beam width")
		sweepMax   = flag.Int("sweep-max", 50, "Sweep maximum beam width")
		sweepStep  = flag.Int("sweep-step", 5, "Sweep step size")
		workers    = flag.Int("workers", 4, "Concurrent sweep workers")
	)
	flag.Parse()

	if *modelPath == "" {
		fmt.Fprintln(os.Stderr, "error: -model required")
		flag.Usage()
		os.Exit(1)
	}

	sets, err := bench.LoadCorpus(*corpusDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading corpus: %v\n", err)
		os.Exit(1)
	}
	total := 0
	for _, set := range sets {
		total += len(set.Messages)
	}
	fmt.Printf("Loaded %d message sets (%d messages) from %s\n\n", len(sets), total, *corpusDir)

	var opts []steg.Option
	opts = append(opts, steg.WithTopN(*top))
	if *bigramPath != "" {
		opts = append(opts, steg.WithBigramFallbackModel(*bigramPath))
	}

	ctx := context.Background()

	if *sweep {
		runSweep(ctx, sets, *modelPath, opts, *sweepMin, *sweepMax, *sweepStep, *workers)
		return
	}
	runSingle(ctx, sets, *modelPath, append(opts, steg.WithBeamWidth(*beam)))
}

func runSingle(ctx context.Context, sets []*bench.MessageSet, modelPath string, opts []steg.Option) {
	codec, err := steg.New(modelPath, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating codec: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-20s %-10s %-10s %-8s %-8s %-8s\n", "Set", "Messages", "RoundTrip", "Stalls", "Breaks", "Score")
	fmt.Println(strings.Repeat("-", 68))

	for _, set := range sets {
		m, err := bench.Evaluate(ctx, codec, set)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error evaluating %s: %v\n", set.ID, err)
			os.Exit(1)
		}
		fmt.Printf("%-20s %-10d %-10.2f %-8d %-8.2f %-8.2f\n",
			set.ID, m.Messages, m.SuccessRate, m.Stalls, m.AvgBreaks, m.AvgScore)
	}
}

func runSweep(ctx context.Context, sets []*bench.MessageSet, modelPath string, opts []steg.Option, min, max, step, workers int) {
	widths := bench.SweepWidths(min, max, step)

	fmt.Println("Beam-Width Sweep Results")
	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("%-8s %-10s %-8s %-8s %-8s\n", "Beam", "RoundTrip", "Stalls", "Breaks", "Score")

	results, err := bench.Sweep(ctx, sets, modelPath, opts, widths, workers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error during sweep: %v\n", err)
		os.Exit(1)
	}

	// Print sorted by width for readability
	for _, w := range widths {
		for _, r := range results {
			if r.BeamWidth == w {
				fmt.Printf("%-8d %-10.2f %-8d %-8.2f %-8.2f\n",
					r.BeamWidth, r.Metrics.SuccessRate, r.Metrics.Stalls, r.Metrics.AvgBreaks, r.Metrics.AvgScore)
				break
			}
		}
	}

	fmt.Println(strings.Repeat("-", 50))
	if len(results) > 0 {
		best := results[0]
		fmt.Printf("Optimal: beam=%d (round-trip rate %.2f)\n", best.BeamWidth, best.Metrics.SuccessRate)
	}
}
