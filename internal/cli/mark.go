package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/bandprep/internal/constants"
	"github.com/julianstephens/bandprep/internal/logger"
	"github.com/julianstephens/bandprep/internal/models"
	"github.com/julianstephens/bandprep/internal/utils"
)

type MarkCmd struct {
	Module string `arg:"" help:"Module to mark done: reading, listening, writing or speaking."`
}

func (c *MarkCmd) Run(ctx *Context) error {
	if !constants.ValidModule(c.Module) {
		return fmt.Errorf("unknown module %q (expected reading, listening, writing or speaking)", c.Module)
	}
	mod := constants.Module(c.Module)

	keeper := ctx.Bootstrap()
	state := keeper.State()

	if state.Checklist.Done(mod) {
		fmt.Printf("%s is already done today.\n", mod)
		return nil
	}

	state.Checklist.MarkDone(mod)
	keeper.Save()

	session := models.PracticeSession{
		ID:        uuid.New().String(),
		Module:    string(mod),
		Day:       utils.Today(),
		CreatedAt: time.Now(),
	}
	if err := ctx.Store.AddSession(session); err != nil {
		logger.Warn("Failed to record practice session", "module", mod, "error", err)
	}

	fmt.Printf("✓ Marked %s done. Progress: %d%%\n", mod, state.Checklist.Progress())
	return nil
}
