package scoring

import "testing"

var key = []string{"F", "T", "T", "F", "F"}

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		answers []string
		want    int
	}{
		{"all correct", []string{"F", "T", "T", "F", "F"}, 5},
		{"all empty", []string{"", "", "", "", ""}, 0},
		{"lowercase matches", []string{"f", "t", "t", "f", "f"}, 5},
		{"partial", []string{"F", "T", "", "", ""}, 2},
		{"wrong labels", []string{"T", "F", "NG", "T", "T"}, 0},
		{"not given never matches this key", []string{"NG", "NG", "NG", "NG", "NG"}, 0},
		{"short answer sheet", []string{"F", "T"}, 2},
		{"whitespace-only answer does not match", []string{" ", "T", "T", "F", "F"}, 4},
		{"nil answers", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.answers, key); got != tt.want {
				t.Errorf("Score(%v) = %d, want %d", tt.answers, got, tt.want)
			}
		})
	}
}

func TestScoreMonotonic(t *testing.T) {
	// Filling in correct answers one at a time never decreases the score.
	answers := make([]string, len(key))
	prev := Score(answers, key)
	if prev != 0 {
		t.Fatalf("empty sheet scored %d, want 0", prev)
	}
	for i := range key {
		answers[i] = key[i]
		got := Score(answers, key)
		if got < prev {
			t.Errorf("score decreased from %d to %d after answer %d", prev, got, i+1)
		}
		prev = got
	}
	if prev != len(key) {
		t.Errorf("full correct sheet scored %d, want %d", prev, len(key))
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"It is widely argued that tea matters.", 7},
		{"line\nbreaks\tand   spaces", 4},
	}

	for _, tt := range tests {
		if got := WordCount(tt.in); got != tt.want {
			t.Errorf("WordCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
