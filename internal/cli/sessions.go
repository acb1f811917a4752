package cli

import (
	"fmt"

	"github.com/julianstephens/bandprep/internal/constants"
)

type SessionsCmd struct {
	Module string `help:"Only show sessions for one module."`
	Limit  int    `help:"Maximum number of sessions to show." default:"20"`
}

func (c *SessionsCmd) Run(ctx *Context) error {
	if c.Module != "" && !constants.ValidModule(c.Module) {
		return fmt.Errorf("unknown module %q (expected reading, listening, writing or speaking)", c.Module)
	}

	sessions, err := ctx.Store.GetSessions(c.Module, c.Limit)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(sessions) == 0 {
		fmt.Println("No practice sessions recorded yet.")
		return nil
	}

	fmt.Printf("Practice sessions (%d shown, newest first):\n\n", len(sessions))
	for _, s := range sessions {
		scoreCol := ""
		if s.Total > 0 {
			scoreCol = fmt.Sprintf("  %d/%d", s.Score, s.Total)
		}
		fmt.Printf("  %s  %-10s%s\n", s.Day, s.Module, scoreCol)
	}

	return nil
}
