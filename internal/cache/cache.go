// Package cache persists per-file classification results keyed by a content
// hash, so unchanged files skip the signature and content stages on
// subsequent runs.
package cache

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/filespect/filespect/internal/types"
)

// Entry records the hash of a file's sampled content and the result it
// produced. A path whose hash still matches reuses the stored result.
type Entry struct {
	Hash        string         `json:"hash"`
	Category    types.Category `json:"category"`
	Stage       types.Stage    `json:"stage"`
	Confidence  float64        `json:"confidence"`
	Explanation string         `json:"explanation,omitempty"`
}

type DB struct {
	// Scanned path -> cached result
	Entries map[string]Entry `json:"entries"`
}

func defaultPath(root string) string {
	// Prefer storing the cache under .git to avoid accidental commits
	gitDir := filepath.Join(root, ".git")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		return filepath.Join(gitDir, "filespect-cache.json")
	}
	return filepath.Join(root, ".filespect-cache.json")
}

func Load(root string) (DB, error) {
	var db DB
	b, err := os.ReadFile(defaultPath(root))
	if err != nil {
		return DB{Entries: map[string]Entry{}}, err
	}
	if err := json.Unmarshal(b, &db); err != nil {
		return DB{Entries: map[string]Entry{}}, err
	}
	if db.Entries == nil {
		db.Entries = map[string]Entry{}
	}
	return db, nil
}

func Save(root string, db DB) error {
	if db.Entries == nil {
		return errors.New("empty cache")
	}
	b, _ := json.MarshalIndent(db, "", "  ")
	return os.WriteFile(defaultPath(root), b, 0644)
}
