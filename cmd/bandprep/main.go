package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/bandprep/internal/cli"
	"github.com/julianstephens/bandprep/internal/cli/backups"
	"github.com/julianstephens/bandprep/internal/cli/settings"
	"github.com/julianstephens/bandprep/internal/cli/system"
	"github.com/julianstephens/bandprep/internal/constants"
	"github.com/julianstephens/bandprep/internal/errors"
	"github.com/julianstephens/bandprep/internal/logger"
	"github.com/julianstephens/bandprep/internal/prompts"
	"github.com/julianstephens/bandprep/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path. A .json suffix selects the plain JSON backend instead of SQLite." type:"path" default:"~/.config/bandprep/bandprep.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init     system.InitCmd   `cmd:"" help:"Initialize bandprep storage."`
	Tui      system.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Doctor   system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Status   cli.StatusCmd    `cmd:"" help:"Show streak, checklist and scores."`
	Mark     cli.MarkCmd      `cmd:"" help:"Mark a practice module done for today."`
	Score    cli.ScoreCmd     `cmd:"" help:"Show the derived reading score."`
	Sessions cli.SessionsCmd  `cmd:"" help:"List recorded practice sessions."`
	Export   cli.ExportCmd    `cmd:"" help:"Export the study state to a JSON file."`
	Import   cli.ImportCmd    `cmd:"" help:"Import study state from an exported JSON file."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("IELTS study tracker and practice companion"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	banks, err := prompts.Load()
	if err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		Store: storage.NewStore(CLI.Config),
		Banks: banks,
	}

	// Load the store before running the command (the init command handles
	// its own lifecycle).
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := appCtx.Store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
