package backup

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/bandprep/internal/constants"
	"github.com/julianstephens/bandprep/internal/storage"
)

func setupDB(t *testing.T) (string, *storage.SQLiteStore) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "bandprep.db")
	store := storage.NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return dbPath, store
}

func TestCreateAndList(t *testing.T) {
	dbPath, store := setupDB(t)
	if err := store.SetValue(constants.KeyStreak, "3"); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	mgr := NewManager(dbPath)
	path, err := mgr.Create()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("got %d backups, want 1", len(backups))
	}
	if backups[0].Path != path {
		t.Errorf("listed path %q != created path %q", backups[0].Path, path)
	}
	if backups[0].Size == 0 {
		t.Error("backup file is empty")
	}
}

func TestListEmptyDir(t *testing.T) {
	dbPath, _ := setupDB(t)

	mgr := NewManager(dbPath)
	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("got %d backups, want 0", len(backups))
	}
}

func TestCreateMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.Create(); err == nil {
		t.Error("backup of a missing database should fail")
	}
}

func TestRestore(t *testing.T) {
	dbPath, store := setupDB(t)
	if err := store.SetValue(constants.KeyStreak, "8"); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	mgr := NewManager(dbPath)
	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}

	// Mutate after the backup, then restore over it.
	if err := store.SetValue(constants.KeyStreak, "0"); err != nil {
		t.Fatalf("failed to mutate store: %v", err)
	}
	store.Close()

	if err := mgr.Restore(backupPath); err != nil {
		t.Fatalf("failed to restore: %v", err)
	}

	restored := storage.NewSQLiteStore(dbPath)
	if err := restored.Load(); err != nil {
		t.Fatalf("failed to load restored store: %v", err)
	}
	defer restored.Close()

	v, ok, err := restored.GetValue(constants.KeyStreak)
	if err != nil || !ok || v != "8" {
		t.Errorf("restored streak = (%q, %v, %v), want 8", v, ok, err)
	}
}

func TestRestoreInvalidFile(t *testing.T) {
	dbPath, _ := setupDB(t)

	mgr := NewManager(dbPath)
	if err := mgr.Restore(filepath.Join(t.TempDir(), "nope.db")); err == nil {
		t.Error("restore from a missing file should fail")
	}
}
