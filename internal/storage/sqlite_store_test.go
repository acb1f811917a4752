package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/bandprep/internal/constants"
	"github.com/julianstephens/bandprep/internal/models"
)

const testQuestionCount = 5

func setupTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store := NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestStateRoundTrip(t *testing.T) {
	store := setupTestSQLiteStore(t)

	state := models.DefaultState(testQuestionCount)
	state.Screen = constants.ScreenReading
	state.Checklist.MarkDone(constants.ModuleReading)
	state.LastActive = "2024-03-10"
	state.Streak = 7
	state.WeaknessLog = "articles before uncountable nouns"
	state.VocabLog = "ubiquitous\nmeticulous"
	state.ReadingAnswers = []string{"F", "T", "", "NG", "F"}
	state.ListeningURL = "https://example.com/audio.mp3"
	state.WritingTask = constants.WritingTask2
	state.WritingDraft = "It is widely argued that..."
	state.SpeakingPart = constants.SpeakingPart2
	state.SpeakingNotes = "talk about the tea book"

	if err := store.SaveState(state); err != nil {
		t.Fatalf("failed to save state: %v", err)
	}

	got, err := store.GetState(testQuestionCount)
	if err != nil {
		t.Fatalf("failed to get state: %v", err)
	}

	if got.Screen != state.Screen {
		t.Errorf("screen = %q, want %q", got.Screen, state.Screen)
	}
	if got.Checklist != state.Checklist {
		t.Errorf("checklist = %+v, want %+v", got.Checklist, state.Checklist)
	}
	if got.LastActive != state.LastActive || got.Streak != state.Streak {
		t.Errorf("streak state = (%q, %d), want (%q, %d)", got.LastActive, got.Streak, state.LastActive, state.Streak)
	}
	if got.WeaknessLog != state.WeaknessLog || got.VocabLog != state.VocabLog {
		t.Error("note fields did not round-trip")
	}
	if len(got.ReadingAnswers) != testQuestionCount {
		t.Fatalf("answers length = %d, want %d", len(got.ReadingAnswers), testQuestionCount)
	}
	for i, a := range state.ReadingAnswers {
		if got.ReadingAnswers[i] != a {
			t.Errorf("answer %d = %q, want %q", i, got.ReadingAnswers[i], a)
		}
	}
	if got.WritingTask != state.WritingTask || got.WritingDraft != state.WritingDraft {
		t.Error("writing fields did not round-trip")
	}
	if got.SpeakingPart != state.SpeakingPart || got.SpeakingNotes != state.SpeakingNotes {
		t.Error("speaking fields did not round-trip")
	}
}

func TestGetStateDefaults(t *testing.T) {
	store := setupTestSQLiteStore(t)

	// Nothing saved yet: every field must come back as its default.
	state, err := store.GetState(testQuestionCount)
	if err != nil {
		t.Fatalf("failed to get state: %v", err)
	}

	if state.Screen != constants.ScreenDashboard {
		t.Errorf("default screen = %q, want %q", state.Screen, constants.ScreenDashboard)
	}
	if state.Streak != 0 || state.LastActive != "" {
		t.Errorf("default streak state = (%q, %d), want empty", state.LastActive, state.Streak)
	}
	if state.Checklist.DoneCount() != 0 {
		t.Error("default checklist should be all-false")
	}
	if len(state.ReadingAnswers) != testQuestionCount {
		t.Errorf("default answers length = %d, want %d", len(state.ReadingAnswers), testQuestionCount)
	}
	if state.WritingTask != constants.WritingTask1 {
		t.Errorf("default writing task = %q, want %q", state.WritingTask, constants.WritingTask1)
	}
}

func TestGetStateCorruptSlots(t *testing.T) {
	store := setupTestSQLiteStore(t)

	// Corrupt values must fall back to defaults, silently.
	corrupt := map[string]string{
		constants.KeyChecklist:      "{not json",
		constants.KeyStreak:         "seven",
		constants.KeyReadingAnswers: "[1, 2",
		constants.KeyScreen:         "no-such-screen",
		constants.KeyWritingTask:    "task7",
	}
	for k, v := range corrupt {
		if err := store.SetValue(k, v); err != nil {
			t.Fatalf("failed to set %s: %v", k, err)
		}
	}

	state, err := store.GetState(testQuestionCount)
	if err != nil {
		t.Fatalf("failed to get state: %v", err)
	}

	if state.Checklist.DoneCount() != 0 {
		t.Error("corrupt checklist should decode as all-false")
	}
	if state.Streak != 0 {
		t.Errorf("corrupt streak = %d, want 0", state.Streak)
	}
	if len(state.ReadingAnswers) != testQuestionCount {
		t.Errorf("corrupt answers length = %d, want %d", len(state.ReadingAnswers), testQuestionCount)
	}
	if state.Screen != constants.ScreenDashboard {
		t.Errorf("invalid screen should default, got %q", state.Screen)
	}
	if state.WritingTask != constants.WritingTask1 {
		t.Errorf("invalid task should default, got %q", state.WritingTask)
	}
}

func TestGetStateNegativeStreak(t *testing.T) {
	store := setupTestSQLiteStore(t)

	if err := store.SetValue(constants.KeyStreak, "-3"); err != nil {
		t.Fatalf("failed to set streak: %v", err)
	}

	state, err := store.GetState(testQuestionCount)
	if err != nil {
		t.Fatalf("failed to get state: %v", err)
	}
	if state.Streak != 0 {
		t.Errorf("negative stored streak = %d, want 0", state.Streak)
	}
}

func TestAnswerSheetLengthNormalized(t *testing.T) {
	store := setupTestSQLiteStore(t)

	// A stored sheet with the wrong length is forced to the question count.
	if err := store.SetValue(constants.KeyReadingAnswers, `["T","F","T","F","T","NG","NG"]`); err != nil {
		t.Fatalf("failed to set answers: %v", err)
	}

	state, err := store.GetState(testQuestionCount)
	if err != nil {
		t.Fatalf("failed to get state: %v", err)
	}
	if len(state.ReadingAnswers) != testQuestionCount {
		t.Errorf("answers length = %d, want %d", len(state.ReadingAnswers), testQuestionCount)
	}
	if state.ReadingAnswers[4] != "T" {
		t.Errorf("answers should truncate, got %v", state.ReadingAnswers)
	}
}

func TestRawValues(t *testing.T) {
	store := setupTestSQLiteStore(t)

	if _, ok, err := store.GetValue("ielts_streak"); err != nil || ok {
		t.Fatalf("unset key: ok=%v err=%v, want absent", ok, err)
	}

	if err := store.SetValue("ielts_streak", "5"); err != nil {
		t.Fatalf("failed to set: %v", err)
	}

	v, ok, err := store.GetValue("ielts_streak")
	if err != nil || !ok || v != "5" {
		t.Fatalf("GetValue = (%q, %v, %v), want (5, true, nil)", v, ok, err)
	}

	if err := store.DeleteValue("ielts_streak"); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}
	if _, ok, _ := store.GetValue("ielts_streak"); ok {
		t.Error("key should be absent after delete")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := setupTestSQLiteStore(t)

	// Init seeds defaults.
	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get default settings: %v", err)
	}
	if settings.TargetBand != constants.DefaultTargetBand {
		t.Errorf("default target band = %q, want %q", settings.TargetBand, constants.DefaultTargetBand)
	}

	settings.TargetBand = "8.0"
	settings.ExamDate = "2026-11-07"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if got.TargetBand != "8.0" || got.ExamDate != "2026-11-07" {
		t.Errorf("settings = %+v, want band 8.0 on 2026-11-07", got)
	}
}

func TestSessions(t *testing.T) {
	store := setupTestSQLiteStore(t)

	base := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		sess := models.PracticeSession{
			ID:        uuid.New().String(),
			Module:    string(constants.ModuleReading),
			Day:       "2024-03-10",
			Score:     i + 2,
			Total:     5,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := store.AddSession(sess); err != nil {
			t.Fatalf("failed to add session: %v", err)
		}
	}

	sessions, err := store.GetSessions("", 0)
	if err != nil {
		t.Fatalf("failed to list sessions: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("got %d sessions, want 3", len(sessions))
	}
	// Newest first.
	if sessions[0].Score != 4 {
		t.Errorf("newest session score = %d, want 4", sessions[0].Score)
	}

	limited, err := store.GetSessions(string(constants.ModuleReading), 1)
	if err != nil {
		t.Fatalf("failed to list limited sessions: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("got %d sessions, want 1", len(limited))
	}

	none, err := store.GetSessions(string(constants.ModuleWriting), 0)
	if err != nil {
		t.Fatalf("failed to list writing sessions: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("got %d writing sessions, want 0", len(none))
	}
}

func TestLoadRequiresInit(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "missing.db")
	store := NewSQLiteStore(dbPath)
	if err := store.Load(); err == nil {
		t.Error("Load on a missing database should fail")
	}
}
