package cli

import (
	"fmt"

	"github.com/julianstephens/bandprep/internal/constants"
	"github.com/julianstephens/bandprep/internal/scoring"
	"github.com/julianstephens/bandprep/internal/utils"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	keeper := ctx.Bootstrap()
	state := keeper.State()

	fmt.Printf("Streak:      %d day(s)\n", state.Streak)
	lastActive := state.LastActive
	if lastActive == "" {
		lastActive = "never"
	}
	fmt.Printf("Last active: %s\n", lastActive)
	fmt.Printf("Progress:    %d%%\n", state.Checklist.Progress())

	fmt.Println("\nDaily checklist:")
	for _, mod := range constants.Modules {
		marker := "○"
		if state.Checklist.Done(mod) {
			marker = "✓"
		}
		fmt.Printf("  %s %s\n", marker, mod)
	}

	score := scoring.Score(state.ReadingAnswers, ctx.Banks.AnswerKey())
	fmt.Printf("\nReading score: %d/%d\n", score, ctx.Banks.QuestionCount())

	settings, err := ctx.Store.GetSettings()
	if err == nil {
		fmt.Printf("Target band:   %s\n", settings.TargetBand)
		if settings.ExamDate != "" {
			if days, err := utils.DaysUntil(settings.ExamDate); err == nil {
				fmt.Printf("Exam:          %s (%d day(s) away)\n", settings.ExamDate, days)
			}
		}
	}

	return nil
}
