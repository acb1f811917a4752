package storage

import (
	"strings"

	"github.com/julianstephens/bandprep/internal/models"
)

// Provider is the durable store behind the study tracker. Two
// implementations exist: the default SQLite store and a plain JSON file
// store selected by a ".json" config path.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Raw slots. GetValue reports absence separately from errors so callers
	// can fall back to defaults without conflating the two.
	GetValue(key string) (string, bool, error)
	SetValue(key, value string) error
	DeleteValue(key string) error

	// Typed study state, loaded and saved as a unit over the fixed key set.
	GetState(questionCount int) (models.StudyState, error)
	SaveState(models.StudyState) error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Practice history
	AddSession(models.PracticeSession) error
	GetSessions(module string, limit int) ([]models.PracticeSession, error)

	// Utils
	GetConfigPath() string
}

// NewStore picks a backend from the config path: ".json" selects the JSON
// file store, anything else the SQLite store.
func NewStore(path string) Provider {
	if strings.HasSuffix(path, ".json") {
		return NewJSONStore(path)
	}
	return NewSQLiteStore(path)
}
