package application

import (
	"fmt"
	"time"

	"github.com/observerdev/observer/internal/domain"
	"github.com/observerdev/observer/internal/domain/classify"
)

// SnapshotService persists analysis reports and maintains the snapshot
// history used for run-over-run diffing.
type SnapshotService struct {
	store domain.SnapshotStore
}

func NewSnapshotService(store domain.SnapshotStore) *SnapshotService {
	return &SnapshotService{store: store}
}

// Record writes the report to disk and appends a history entry. The entry's
// diff is the signed delta in total issues versus the previous entry; the
// first snapshot has diff 0.
func (s *SnapshotService) Record(projectPath string, report *domain.Report) (domain.SnapshotEntry, error) {
	if err := s.store.WriteReport(projectPath, report); err != nil {
		return domain.SnapshotEntry{}, fmt.Errorf("writing report: %w", err)
	}

	blockers, structural, compliance := classify.Counts(report.Buckets)
	entry := domain.SnapshotEntry{
		Timestamp:  report.Timestamp.Format(time.RFC3339),
		Total:      blockers + structural + compliance,
		Blockers:   blockers,
		Structural: structural,
		Compliance: compliance,
	}

	prev, err := s.store.History(projectPath)
	if err != nil {
		return domain.SnapshotEntry{}, fmt.Errorf("loading history: %w", err)
	}
	if len(prev) > 0 {
		entry.Diff = entry.Total - prev[len(prev)-1].Total
	}

	if err := s.store.Append(projectPath, entry); err != nil {
		return domain.SnapshotEntry{}, fmt.Errorf("appending snapshot: %w", err)
	}
	return entry, nil
}

// History returns all recorded snapshot entries for a project.
func (s *SnapshotService) History(projectPath string) ([]domain.SnapshotEntry, error) {
	return s.store.History(projectPath)
}
