package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/bandprep/internal/constants"
	"github.com/julianstephens/bandprep/internal/models"
)

func setupTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.json")

	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return store
}

func TestJSONStoreRoundTrip(t *testing.T) {
	store := setupTestJSONStore(t)

	state := models.DefaultState(testQuestionCount)
	state.Streak = 3
	state.LastActive = "2024-03-10"
	state.VocabLog = "serendipity"
	if err := store.SaveState(state); err != nil {
		t.Fatalf("failed to save state: %v", err)
	}

	// A second store over the same file must observe the write.
	reopened := NewJSONStore(store.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("failed to reload store: %v", err)
	}

	got, err := reopened.GetState(testQuestionCount)
	if err != nil {
		t.Fatalf("failed to get state: %v", err)
	}
	if got.Streak != 3 || got.LastActive != "2024-03-10" || got.VocabLog != "serendipity" {
		t.Errorf("reloaded state = %+v", got)
	}
}

func TestJSONStoreInitTwice(t *testing.T) {
	store := setupTestJSONStore(t)

	again := NewJSONStore(store.GetConfigPath())
	if err := again.Init(); err == nil {
		t.Error("second Init over an existing file should fail")
	}
}

func TestJSONStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{broken"), 0600); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); err == nil {
		t.Error("Load of a corrupt file should fail")
	}
}

func TestJSONStoreSessions(t *testing.T) {
	store := setupTestJSONStore(t)

	base := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 2; i++ {
		err := store.AddSession(models.PracticeSession{
			ID:        uuid.New().String(),
			Module:    string(constants.ModuleReading),
			Day:       "2024-03-10",
			Score:     i,
			Total:     5,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("failed to add session: %v", err)
		}
	}

	sessions, err := store.GetSessions(string(constants.ModuleReading), 0)
	if err != nil {
		t.Fatalf("failed to list sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}
	if sessions[0].Score != 1 {
		t.Errorf("sessions should be newest first, got score %d", sessions[0].Score)
	}
}

func TestNewStoreSelectsBackend(t *testing.T) {
	if _, ok := NewStore("/tmp/x/state.json").(*JSONStore); !ok {
		t.Error("a .json path should select the JSON store")
	}
	if _, ok := NewStore("/tmp/x/state.db").(*SQLiteStore); !ok {
		t.Error("a .db path should select the SQLite store")
	}
}
