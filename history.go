package tally

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// journalVersion is the current on-disk journal format version.
const journalVersion = 1

// journal is the on-disk representation of a calculator's history.
type journal struct {
	Version      int           `json:"version"`
	SavedAt      time.Time     `json:"savedAt"`
	Calculations []Calculation `json:"calculations"`
}

// SaveHistory writes the current history to the given path as a JSON
// journal, using the Calculator's filesystem. Parent directories are
// created as needed.
func (c *Calculator) SaveHistory(path string) error {
	c.mu.RLock()
	j := journal{
		Version:      journalVersion,
		SavedAt:      c.nowFunc(),
		Calculations: append([]Calculation(nil), c.history...),
	}
	c.mu.RUnlock()

	data, err := json.MarshalIndent(j, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := c.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	if err := afero.WriteFile(c.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}

	return nil
}

// LoadHistory reads a JSON journal from the given path and replaces the
// current history with its records. The journal must have been written by
// SaveHistory with a matching format version.
func (c *Calculator) LoadHistory(path string) error {
	data, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	var j journal
	if err := json.Unmarshal(data, &j); err != nil {
		return fmt.Errorf("failed to unmarshal history: %w", err)
	}

	if j.Version != journalVersion {
		return fmt.Errorf("unsupported history version %d (want %d)", j.Version, journalVersion)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = j.Calculations

	return nil
}
