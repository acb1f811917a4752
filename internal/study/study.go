package study

import (
	"time"

	"github.com/julianstephens/bandprep/internal/constants"
	"github.com/julianstephens/bandprep/internal/models"
)

// RolloverResult is the outcome of a daily rollover decision.
type RolloverResult struct {
	LastActive string
	Streak     int
	Reset      bool // whether the daily checklist must be cleared
}

// Rollover decides, for a single application load, whether the day has
// advanced. It is a pure function of (today, last, streak).
//
// Same day: nothing changes. Last active exactly yesterday: the streak
// continues and increments. Anything else, including an empty last-active
// date, starts over at 1; a broken streak and a first-ever use are
// indistinguishable. Whenever the day advances the checklist resets.
func Rollover(today, last string, streak int) RolloverResult {
	if last == today {
		return RolloverResult{LastActive: last, Streak: streak, Reset: false}
	}

	newStreak := 1
	if last != "" && last == yesterdayOf(today) {
		newStreak = streak + 1
	}

	return RolloverResult{LastActive: today, Streak: newStreak, Reset: true}
}

// Apply runs the rollover against a state record, mutating it in place.
// It returns true when the state changed and needs persisting. Called
// exactly once during bootstrap, not per render. The answer sheet survives
// the day boundary; only an explicit clear resets it.
func Apply(state *models.StudyState, today string) bool {
	res := Rollover(today, state.LastActive, state.Streak)
	if !res.Reset {
		return false
	}

	state.LastActive = res.LastActive
	state.Streak = res.Streak
	state.Checklist = models.Checklist{}
	return true
}

func yesterdayOf(today string) string {
	t, err := time.Parse(constants.DateFormat, today)
	if err != nil {
		// An unparsable "today" cannot match any stored date; treat as a
		// fresh start.
		return ""
	}
	return t.AddDate(0, 0, -1).Format(constants.DateFormat)
}
