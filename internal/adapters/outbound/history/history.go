package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kridha-admin/stydev/internal/domain"
)

// FileHistory implements domain.ScoreHistory as a JSON array on disk.
type FileHistory struct {
	path string
}

// New returns a FileHistory that reads and writes path.
func New(path string) *FileHistory {
	return &FileHistory{path: path}
}

// Path returns the backing file location.
func (h *FileHistory) Path() string { return h.path }

// Save appends entry, creating the file and its directory as needed.
func (h *FileHistory) Save(entry domain.ScoreEntry) error {
	entries, err := h.Load()
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	if err := os.MkdirAll(filepath.Dir(h.path), 0755); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(h.path, data, 0644)
}

// Load returns all entries in the order they were saved. A missing file
// yields no entries.
func (h *FileHistory) Load() ([]domain.ScoreEntry, error) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.ScoreEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(h.path), err)
	}

	return entries, nil
}
