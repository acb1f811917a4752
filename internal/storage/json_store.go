package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/julianstephens/bandprep/internal/constants"
	"github.com/julianstephens/bandprep/internal/models"
)

// fileStore is the on-disk shape of the JSON backend: the same flat slot
// mapping the SQLite store keeps, plus the session history.
type fileStore struct {
	Version  int                      `json:"version"`
	Slots    map[string]string        `json:"slots"`
	Sessions []models.PracticeSession `json:"sessions"`
}

type JSONStore struct {
	path  string
	store *fileStore
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &fileStore{
		Version: 1,
		Slots:   make(map[string]string),
	}

	defaults := models.Settings{
		TargetBand: constants.DefaultTargetBand,
		MediaDir:   filepath.Join(dir, constants.MediaDirName),
	}
	if err := s.SaveSettings(defaults); err != nil {
		return err
	}

	return nil
}

func (s *JSONStore) Load() error {
	if s.store != nil {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'bandprep init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &fileStore{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.store.Slots == nil {
		s.store.Slots = make(map[string]string)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetValue(key string) (string, bool, error) {
	if s.store == nil {
		return "", false, fmt.Errorf("storage not loaded")
	}
	v, ok := s.store.Slots[key]
	return v, ok, nil
}

func (s *JSONStore) SetValue(key, value string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Slots[key] = value
	return s.save()
}

func (s *JSONStore) DeleteValue(key string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	delete(s.store.Slots, key)
	return s.save()
}

func (s *JSONStore) GetState(questionCount int) (models.StudyState, error) {
	if s.store == nil {
		return models.DefaultState(questionCount), fmt.Errorf("storage not loaded")
	}
	return StateFromMap(s.store.Slots, questionCount), nil
}

func (s *JSONStore) SaveState(state models.StudyState) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	flat := StateToMap(state)
	for _, key := range constants.StateKeys {
		s.store.Slots[key] = flat[key]
	}
	return s.save()
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.store == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}

	settings := models.Settings{}
	count := 0
	for key, value := range s.store.Slots {
		if !strings.HasPrefix(key, "settings_") {
			continue
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

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Slots[constants.SettingTargetBand] = settings.TargetBand
	s.store.Slots[constants.SettingExamDate] = settings.ExamDate
	s.store.Slots[constants.SettingMediaDir] = settings.MediaDir
	return s.save()
}

func (s *JSONStore) AddSession(session models.PracticeSession) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Sessions = append(s.store.Sessions, session)
	return s.save()
}

func (s *JSONStore) GetSessions(module string, limit int) ([]models.PracticeSession, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	var sessions []models.PracticeSession
	for _, sess := range s.store.Sessions {
		if module != "" && sess.Module != module {
			continue
		}
		sessions = append(sessions, sess)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})

	if limit > 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}

	return sessions, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
