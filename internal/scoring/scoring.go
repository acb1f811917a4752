// Package scoring holds the derived computations over study state: the
// reading score and the writing word count. Nothing here is persisted;
// callers recompute on demand.
package scoring

import "strings"

// Score counts how many answers match the fixed key. Comparison is
// case-insensitive exact equality; an empty or unset answer never matches.
// Extra answers beyond the key length are ignored.
func Score(answers, key []string) int {
	score := 0
	for i, want := range key {
		if i >= len(answers) {
			break
		}
		got := strings.TrimSpace(answers[i])
		if got == "" {
			continue
		}
		if strings.EqualFold(got, want) {
			score++
		}
	}
	return score
}

// WordCount returns the number of whitespace-separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
