package bench

import (
	"context"
	"errors"
	"strings"

	steg "github.com/namantam1/semantic-steganographic-encoder"
)

// Metrics holds aggregate round-trip results for a message set.
type Metrics struct {
	Messages   int
	Completed  int // encoder produced a full-length result
	RoundTrips int // decoded first letters matched the target exactly
	Stalls     int // dead-ended before the last letter

	Breaks int // extra sentences beyond one, summed over best results
	Words  int // cover words emitted, summed over best results

	SuccessRate float64 // RoundTrips / Messages
	AvgBreaks   float64 // Breaks / Completed
	AvgScore    float64 // mean best-path score over completed messages

	totalScore float64
}

// Evaluate encodes every message in set and verifies the round trip
// against the best-ranked result.
func Evaluate(ctx context.Context, codec *steg.Codec, set *MessageSet) (Metrics, error) {
	var m Metrics

	for _, secret := range set.Messages {
		m.Messages++

		results, err := codec.Encode(ctx, secret)
		switch {
		case errors.Is(err, steg.ErrUnreachableLetter):
			m.Stalls++
			continue
		case err != nil:
			return Metrics{}, err
		case len(results) == 0:
			// Empty target sequence; trivially fine but nothing to score.
			continue
		}

		m.Completed++
		best := results[0]
		m.totalScore += best.Score
		m.Words += len(strings.Fields(best.Text))
		if n := strings.Count(best.Text, "."); n > 1 {
			m.Breaks += n - 1
		}
		if codec.Decode(best.Text) == steg.Letters(secret) {
			m.RoundTrips++
		}
	}

	m.finish()
	return m, nil
}

func (m *Metrics) finish() {
	if m.Messages > 0 {
		m.SuccessRate = float64(m.RoundTrips) / float64(m.Messages)
	}
	if m.Completed > 0 {
		m.AvgBreaks = float64(m.Breaks) / float64(m.Completed)
		m.AvgScore = m.totalScore / float64(m.Completed)
	}
}

// merge folds other into m. Derived fields are recomputed by finish.
func (m *Metrics) merge(other Metrics) {
	m.Messages += other.Messages
	m.Completed += other.Completed
	m.RoundTrips += other.RoundTrips
	m.Stalls += other.Stalls
	m.Breaks += other.Breaks
	m.Words += other.Words
	m.totalScore += other.totalScore
}
