package storage

import (
	"github.com/julianstephens/bandprep/internal/logger"
	"github.com/julianstephens/bandprep/internal/models"
)

// Keeper owns the in-memory study state and mirrors every change into the
// store. The in-memory record is authoritative for the running session:
// when a persistence write fails the failure is logged and swallowed, the
// session continues and durability is simply not guaranteed for that write.
//
// Views receive the Keeper rather than reaching into the store with bare
// keys, so there is exactly one reader/writer of the slot layout.
type Keeper struct {
	store Provider
	state models.StudyState
}

// NewKeeper loads the study state once. Corrupt or missing slots have
// already been replaced with defaults by the store; a failing store
// degrades to a default in-memory state rather than an error.
func NewKeeper(store Provider, questionCount int) *Keeper {
	state, err := store.GetState(questionCount)
	if err != nil {
		logger.Warn("Falling back to default state", "error", err)
		state = models.DefaultState(questionCount)
	}
	return &Keeper{store: store, state: state}
}

// State returns the authoritative in-memory record for mutation. Callers
// must Save after changing it.
func (k *Keeper) State() *models.StudyState {
	return &k.state
}

// Save writes the whole record through to the store. Always persists, even
// when nothing changed since the last save.
func (k *Keeper) Save() {
	if err := k.store.SaveState(k.state); err != nil {
		logger.Warn("State write failed, continuing with in-memory state", "error", err)
	}
}

// Store exposes the underlying provider for operations outside the slot
// layout (sessions, settings).
func (k *Keeper) Store() Provider {
	return k.store
}
