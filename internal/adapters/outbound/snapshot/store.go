// Package snapshot persists analysis reports and the snapshot history as
// JSON under the project's .observer directory.
package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/observerdev/observer/internal/domain"
)

const (
	reportFile  = ".observer/report.json"
	historyFile = ".observer/history/snapshots.json"
)

// Store is a file-based implementation of domain.SnapshotStore.
type Store struct{}

func New() *Store {
	return &Store{}
}

// WriteReport serializes the full report, creating directories as needed.
func (s *Store) WriteReport(projectPath string, report *domain.Report) error {
	fp := filepath.Join(projectPath, reportFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fp, data, 0644)
}

// Append adds one entry to the snapshot history.
func (s *Store) Append(projectPath string, entry domain.SnapshotEntry) error {
	entries, err := s.History(projectPath)
	if err != nil {
		return err
	}
	entries = append(entries, entry)

	fp := filepath.Join(projectPath, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fp, data, 0644)
}

// History reads all snapshot entries. A project with no history yet returns
// an empty slice.
func (s *Store) History(projectPath string) ([]domain.SnapshotEntry, error) {
	fp := filepath.Join(projectPath, historyFile)
	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.SnapshotEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
