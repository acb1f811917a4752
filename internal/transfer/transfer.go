// Package transfer implements the snapshot export and import of the study
// state: one flat JSON object over the fixed slot layout, suitable for
// moving a profile between machines or keeping a plain-text backup.
package transfer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/bandprep/internal/constants"
	"github.com/julianstephens/bandprep/internal/logger"
	"github.com/julianstephens/bandprep/internal/storage"
)

const (
	exportFilePrefix = "bandprep-export-"
	exportFileSuffix = ".json"
)

// ExportFileName returns the date-stamped snapshot filename for the given day.
func ExportFileName(day string) string {
	return exportFilePrefix + day + exportFileSuffix
}

// Snapshot collects every state slot into the export shape: key to raw
// stored string, null when the slot is absent.
func Snapshot(store storage.Provider) (map[string]*string, error) {
	snap := make(map[string]*string, len(constants.StateKeys))
	for _, key := range constants.StateKeys {
		value, ok, err := store.GetValue(key)
		if err != nil {
			return nil, fmt.Errorf("failed to read slot %s: %w", key, err)
		}
		if ok {
			v := value
			snap[key] = &v
		} else {
			snap[key] = nil
		}
	}
	return snap, nil
}

// Export writes the snapshot into outDir and returns the file path.
func Export(store storage.Provider, outDir string) (string, error) {
	snap, err := Snapshot(store)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize export: %w", err)
	}

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0700); err != nil {
			return "", fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	day := time.Now().Format(constants.DateFormat)
	path := filepath.Join(outDir, ExportFileName(day))
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}

	return path, nil
}

// Import reads a snapshot file and writes every recognized key that carries
// a string value back into the store verbatim. The whole document must
// parse before anything is written; a malformed file leaves the store
// untouched. Non-string values (including null) are ignored. Returns the
// number of slots written.
//
// Screens pick up imported state on the next load, not live.
func Import(store storage.Provider, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read import file: %w", err)
	}
	return ImportBytes(store, data)
}

// ImportBytes is Import over an in-memory document.
func ImportBytes(store storage.Provider, data []byte) (int, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("malformed import document: %w", err)
	}

	written := 0
	for _, key := range constants.StateKeys {
		raw, ok := doc[key]
		if !ok {
			continue
		}
		value, ok := raw.(string)
		if !ok {
			// Nulls and non-string shapes are skipped, not errors.
			continue
		}
		if err := store.SetValue(key, value); err != nil {
			// Persistence failures do not abort the import; the remaining
			// slots still get their chance.
			logger.Warn("Import write failed", "key", key, "error", err)
			continue
		}
		written++
	}

	return written, nil
}
