package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/bandprep/internal/constants"
	"github.com/julianstephens/bandprep/internal/models"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.createTables(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Initialize default settings if not present
	if _, err := s.GetSettings(); err != nil {
		defaultSettings := models.Settings{
			TargetBand: constants.DefaultTargetBand,
			MediaDir:   filepath.Join(dir, constants.MediaDirName),
		}
		if err := s.SaveSettings(defaultSettings); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'bandprep init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

// GetDB exposes the raw handle for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) createTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			module TEXT NOT NULL,
			day TEXT NOT NULL,
			score INTEGER NOT NULL,
			total INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_module_day ON sessions (module, day);
	`)
	return err
}

func (s *SQLiteStore) GetValue(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM state WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *SQLiteStore) SetValue(key, value string) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO state (key, value) VALUES (?, ?)", key, value)
	return err
}

func (s *SQLiteStore) DeleteValue(key string) error {
	_, err := s.db.Exec("DELETE FROM state WHERE key = ?", key)
	return err
}

func (s *SQLiteStore) GetState(questionCount int) (models.StudyState, error) {
	rows, err := s.db.Query("SELECT key, value FROM state")
	if err != nil {
		return models.DefaultState(questionCount), err
	}
	defer rows.Close()

	raw := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.DefaultState(questionCount), err
		}
		raw[key] = value
	}
	if err := rows.Err(); err != nil {
		return models.DefaultState(questionCount), err
	}

	return StateFromMap(raw, questionCount), nil
}

func (s *SQLiteStore) SaveState(state models.StudyState) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO state (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	// Every slot is written unconditionally, identical value or not.
	flat := StateToMap(state)
	for _, key := range constants.StateKeys {
		if _, err := stmt.Exec(key, flat[key]); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM state WHERE key LIKE 'settings_%'")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case constants.SettingTargetBand:
			settings.TargetBand = value
		case constants.SettingExamDate:
			settings.ExamDate = value
		case constants.SettingMediaDir:
			settings.MediaDir = value
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO state (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(constants.SettingTargetBand, settings.TargetBand); err != nil {
		return err
	}
	if _, err := stmt.Exec(constants.SettingExamDate, settings.ExamDate); err != nil {
		return err
	}
	if _, err := stmt.Exec(constants.SettingMediaDir, settings.MediaDir); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) AddSession(session models.PracticeSession) error {
	_, err := s.db.Exec(`
		INSERT INTO sessions (id, module, day, score, total, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		session.ID, session.Module, session.Day, session.Score, session.Total,
		session.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *SQLiteStore) GetSessions(module string, limit int) ([]models.PracticeSession, error) {
	query := "SELECT id, module, day, score, total, created_at FROM sessions"
	args := []any{}
	if module != "" {
		query += " WHERE module = ?"
		args = append(args, module)
	}
	query += " ORDER BY created_at DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.PracticeSession
	for rows.Next() {
		var sess models.PracticeSession
		var createdAt string
		if err := rows.Scan(&sess.ID, &sess.Module, &sess.Day, &sess.Score, &sess.Total, &createdAt); err != nil {
			return nil, err
		}
		sess.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for session %s: %w", sess.ID, err)
		}
		sessions = append(sessions, sess)
	}

	return sessions, rows.Err()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
