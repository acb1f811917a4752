package cli

import (
	"fmt"

	"github.com/julianstephens/bandprep/internal/transfer"
)

type ExportCmd struct {
	Out string `help:"Directory to write the export into." default:"."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	// Settle the rollover first so the exported streak reflects today.
	ctx.Bootstrap()

	path, err := transfer.Export(ctx.Store, c.Out)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Printf("✓ Exported study state to %s\n", path)
	return nil
}

type ImportCmd struct {
	File string `arg:"" help:"Path to a previously exported JSON file."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	// A malformed file writes nothing, but a well-formed one overwrites
	// slots; keep a backup of the current database around regardless.
	ctx.PerformAutomaticBackup()

	count, err := transfer.Import(ctx.Store, c.File)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("✓ Imported %d value(s) from %s\n", count, c.File)
	return nil
}
