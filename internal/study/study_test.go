package study

import (
	"testing"

	"github.com/julianstephens/bandprep/internal/constants"
	"github.com/julianstephens/bandprep/internal/models"
)

func TestRollover(t *testing.T) {
	tests := []struct {
		name       string
		today      string
		last       string
		streak     int
		wantLast   string
		wantStreak int
		wantReset  bool
	}{
		{
			name:       "same day is a no-op",
			today:      "2024-03-10",
			last:       "2024-03-10",
			streak:     4,
			wantLast:   "2024-03-10",
			wantStreak: 4,
			wantReset:  false,
		},
		{
			name:       "yesterday continues the streak",
			today:      "2024-03-10",
			last:       "2024-03-09",
			streak:     4,
			wantLast:   "2024-03-10",
			wantStreak: 5,
			wantReset:  true,
		},
		{
			name:       "two day gap resets to 1",
			today:      "2024-03-10",
			last:       "2024-03-08",
			streak:     9,
			wantLast:   "2024-03-10",
			wantStreak: 1,
			wantReset:  true,
		},
		{
			name:       "first ever use starts at 1",
			today:      "2024-03-10",
			last:       "",
			streak:     0,
			wantLast:   "2024-03-10",
			wantStreak: 1,
			wantReset:  true,
		},
		{
			name:       "yesterday across a month boundary",
			today:      "2024-03-01",
			last:       "2024-02-29",
			streak:     10,
			wantLast:   "2024-03-01",
			wantStreak: 11,
			wantReset:  true,
		},
		{
			name:       "yesterday across a year boundary",
			today:      "2025-01-01",
			last:       "2024-12-31",
			streak:     2,
			wantLast:   "2025-01-01",
			wantStreak: 3,
			wantReset:  true,
		},
		{
			name:       "future last-active resets to 1",
			today:      "2024-03-10",
			last:       "2024-03-12",
			streak:     6,
			wantLast:   "2024-03-10",
			wantStreak: 1,
			wantReset:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rollover(tt.today, tt.last, tt.streak)
			if got.LastActive != tt.wantLast {
				t.Errorf("LastActive = %q, want %q", got.LastActive, tt.wantLast)
			}
			if got.Streak != tt.wantStreak {
				t.Errorf("Streak = %d, want %d", got.Streak, tt.wantStreak)
			}
			if got.Reset != tt.wantReset {
				t.Errorf("Reset = %v, want %v", got.Reset, tt.wantReset)
			}
		})
	}
}

func TestRolloverIdempotentWithinDay(t *testing.T) {
	first := Rollover("2024-03-10", "2024-03-09", 3)
	if first.Streak != 4 || !first.Reset {
		t.Fatalf("unexpected first rollover: %+v", first)
	}

	second := Rollover("2024-03-10", first.LastActive, first.Streak)
	if second.Reset {
		t.Error("second rollover on the same day should not reset")
	}
	if second.Streak != first.Streak {
		t.Errorf("second rollover changed streak: %d -> %d", first.Streak, second.Streak)
	}
	if second.LastActive != first.LastActive {
		t.Errorf("second rollover changed last active: %q -> %q", first.LastActive, second.LastActive)
	}
}

func TestApply(t *testing.T) {
	state := models.DefaultState(5)
	state.LastActive = "2024-03-09"
	state.Streak = 2
	state.Checklist.MarkDone(constants.ModuleReading)
	state.ReadingAnswers = []string{"T", "F", "", "", "NG"}

	changed := Apply(&state, "2024-03-10")
	if !changed {
		t.Fatal("expected Apply to report a change")
	}
	if state.Streak != 3 {
		t.Errorf("streak = %d, want 3", state.Streak)
	}
	if state.LastActive != "2024-03-10" {
		t.Errorf("last active = %q, want 2024-03-10", state.LastActive)
	}
	if state.Checklist.DoneCount() != 0 {
		t.Error("checklist should be all-false after rollover")
	}
	// Answers are only cleared by an explicit user action.
	if state.ReadingAnswers[0] != "T" {
		t.Error("rollover must not touch the answer sheet")
	}

	if Apply(&state, "2024-03-10") {
		t.Error("second Apply on the same day should be a no-op")
	}
}

func TestChecklistMarkDoneIdempotent(t *testing.T) {
	var c models.Checklist
	c.MarkDone(constants.ModuleWriting)
	once := c
	c.MarkDone(constants.ModuleWriting)
	if c != once {
		t.Error("marking the same module twice changed the checklist")
	}
	if !c.Done(constants.ModuleWriting) {
		t.Error("writing should be done")
	}
}

func TestChecklistProgress(t *testing.T) {
	var c models.Checklist
	if c.Progress() != 0 {
		t.Errorf("empty checklist progress = %d, want 0", c.Progress())
	}

	c.MarkDone(constants.ModuleReading)
	if c.Progress() != 25 {
		t.Errorf("one done progress = %d, want 25", c.Progress())
	}

	c.MarkDone(constants.ModuleListening)
	c.MarkDone(constants.ModuleWriting)
	c.MarkDone(constants.ModuleSpeaking)
	if c.Progress() != 100 {
		t.Errorf("all done progress = %d, want 100", c.Progress())
	}
}
