package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/bandprep/internal/cli"
	"github.com/julianstephens/bandprep/internal/prompts"
	"github.com/julianstephens/bandprep/internal/storage"
)

func setupTestCtx(t *testing.T) (*cli.Context, string) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	banks, err := prompts.Load()
	if err != nil {
		t.Fatalf("failed to load prompt banks: %v", err)
	}

	ctx := &cli.Context{
		Store: storage.NewSQLiteStore(dbPath),
		Banks: banks,
	}
	t.Cleanup(func() { ctx.Store.Close() })

	return ctx, dbPath
}

func TestInitCmd(t *testing.T) {
	ctx, dbPath := setupTestCtx(t)

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database file missing after init: %v", err)
	}

	// Default settings are seeded on first init.
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if settings.TargetBand == "" {
		t.Error("default target band not seeded")
	}
	if settings.MediaDir == "" {
		t.Error("default media dir not seeded")
	}
}

func TestInitCmd_Force(t *testing.T) {
	ctx, dbPath := setupTestCtx(t)

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cmd = &InitCmd{Force: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("forced re-init failed: %v", err)
	}

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database file missing after forced re-init: %v", err)
	}
}
