package cli

import (
	"strings"

	"github.com/julianstephens/bandprep/internal/backup"
	"github.com/julianstephens/bandprep/internal/logger"
	"github.com/julianstephens/bandprep/internal/prompts"
	"github.com/julianstephens/bandprep/internal/storage"
	"github.com/julianstephens/bandprep/internal/study"
	"github.com/julianstephens/bandprep/internal/utils"
)

type Context struct {
	Store storage.Provider
	Banks *prompts.Banks
}

// Bootstrap loads the study state and runs the daily rollover exactly once.
// Every command that reads or mutates study state goes through here so the
// streak and checklist are settled before any output or edit.
func (c *Context) Bootstrap() *storage.Keeper {
	keeper := storage.NewKeeper(c.Store, c.Banks.QuestionCount())
	if study.Apply(keeper.State(), utils.Today()) {
		keeper.Save()
	}
	return keeper
}

// PerformAutomaticBackup creates an automatic backup and silently handles
// errors. The JSON backend is skipped; its file is human-readable and the
// export command covers it.
func (c *Context) PerformAutomaticBackup() {
	path := c.Store.GetConfigPath()
	if strings.HasSuffix(path, ".json") {
		return
	}
	mgr := backup.NewManager(path)
	if _, err := mgr.Create(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}
