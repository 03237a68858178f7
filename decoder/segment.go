package decoder

import "strings"

// Segment splits an unspaced lowercase string into vocabulary words,
// minimizing the number of characters that land in unrecognized segments.
// Unrecognized characters come out as single-character segments, so the
// output always concatenates (spaces removed) back to s.
//
// Word-break dynamic program: cost[i] is the minimal unrecognized-character
// count over splits of s[:i]. When several splits tie, the fixed rule is to
// prefer the longest matching word (the smallest split point), which keeps
// output reproducible.
func Segment(vocab []string, s string) string {
	if s == "" {
		return ""
	}

	words := make(map[string]struct{}, len(vocab))
	maxLen := 0
	for _, w := range vocab {
		words[w] = struct{}{}
		if len(w) > maxLen {
			maxLen = len(w)
		}
	}

	n := len(s)
	cost := make([]int, n+1)
	parent := make([]int, n+1)

	for i := 1; i <= n; i++ {
		// Fallback: s[i-1] is a lone unrecognized character.
		cost[i] = cost[i-1] + 1
		parent[i] = i - 1

		longest := i - maxLen
		if longest < 0 {
			longest = 0
		}
		// Scanning j upward tries longer words first; on equal cost
		// the smaller split point wins, so the longest word is kept
		// and a matching word always beats the fallback.
		for j := longest; j < i; j++ {
			if _, ok := words[s[j:i]]; !ok {
				continue
			}
			if cost[j] < cost[i] || (cost[j] == cost[i] && j < parent[i]) {
				cost[i] = cost[j]
				parent[i] = j
			}
		}
	}

	var segments []string
	for pos := n; pos > 0; pos = parent[pos] {
		segments = append(segments, s[parent[pos]:pos])
	}
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return strings.Join(segments, " ")
}
