package bench

import (
	"context"
	"sort"
	"sync"

	steg "github.com/namantam1/semantic-steganographic-encoder"
)

// SweepResult holds metrics for one beam width.
type SweepResult struct {
	BeamWidth int
	Metrics   Metrics
}

// SweepWidths generates beam widths from min to max inclusive with the
// given step.
func SweepWidths(min, max, step int) []int {
	if step <= 0 {
		step = 1
	}
	var widths []int
	for w := min; w <= max; w += step {
		widths = append(widths, w)
	}
	return widths
}

// Sweep evaluates the corpus at each beam width and returns results sorted
// by success rate, ties broken by average score. Widths run concurrently
// across at most workers goroutines; each worker builds its own codec.
// workers <= 0 means sequential.
func Sweep(ctx context.Context, sets []*MessageSet, modelPath string, opts []steg.Option, widths []int, workers int) ([]SweepResult, error) {
	if workers <= 0 {
		workers = 1
	}
	if workers > len(widths) {
		workers = len(widths)
	}

	results := make([]SweepResult, len(widths))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	sem := make(chan struct{}, workers)

	for i, width := range widths {
		wg.Add(1)
		go func(i, width int) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				setErr(&mu, &firstErr, ctx.Err())
				return
			}
			defer func() { <-sem }()

			m, err := evaluateWidth(ctx, sets, modelPath, opts, width)
			if err != nil {
				setErr(&mu, &firstErr, err)
				return
			}
			results[i] = SweepResult{BeamWidth: width, Metrics: m}
		}(i, width)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Metrics.SuccessRate != results[j].Metrics.SuccessRate {
			return results[i].Metrics.SuccessRate > results[j].Metrics.SuccessRate
		}
		return results[i].Metrics.AvgScore > results[j].Metrics.AvgScore
	})

	return results, nil
}

func evaluateWidth(ctx context.Context, sets []*MessageSet, modelPath string, opts []steg.Option, width int) (Metrics, error) {
	// Copy before appending: workers must not share the caller's backing array.
	wopts := make([]steg.Option, 0, len(opts)+1)
	wopts = append(wopts, opts...)
	wopts = append(wopts, steg.WithBeamWidth(width))

	codec, err := steg.New(modelPath, wopts...)
	if err != nil {
		return Metrics{}, err
	}

	var agg Metrics
	for _, set := range sets {
		m, err := Evaluate(ctx, codec, set)
		if err != nil {
			return Metrics{}, err
		}
		agg.merge(m)
	}
	agg.finish()
	return agg, nil
}

func setErr(mu *sync.Mutex, dst *error, err error) {
	mu.Lock()
	defer mu.Unlock()
	if *dst == nil {
		*dst = err
	}
}
