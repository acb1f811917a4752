package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/bandprep/internal/scoring"
)

type ScoreCmd struct {
	Detail bool `help:"Show the per-question breakdown."`
}

func (c *ScoreCmd) Run(ctx *Context) error {
	keeper := ctx.Bootstrap()
	state := keeper.State()
	key := ctx.Banks.AnswerKey()

	score := scoring.Score(state.ReadingAnswers, key)
	fmt.Printf("Reading score: %d/%d\n", score, len(key))

	if !c.Detail {
		return nil
	}

	fmt.Println()
	for i, q := range ctx.Banks.Reading.Questions {
		answer := ""
		if i < len(state.ReadingAnswers) {
			answer = strings.TrimSpace(state.ReadingAnswers[i])
		}
		marker := "✗"
		if answer != "" && strings.EqualFold(answer, key[i]) {
			marker = "✓"
		}
		display := answer
		if display == "" {
			display = "-"
		}
		fmt.Printf("  %s %d. [%s] %s\n", marker, i+1, display, q.Text)
	}

	return nil
}
