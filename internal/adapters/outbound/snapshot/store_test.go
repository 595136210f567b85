package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/observerdev/observer/internal/domain"
)

func TestWriteReport_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	report := &domain.Report{
		Timestamp: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Health:    72,
		Buckets: []domain.Bucket{
			{Name: domain.BucketCompliance, Count: 1, Issues: []domain.Issue{
				{File: "a.ts", Severity: domain.SeverityMedium, Message: "m"},
			}},
		},
	}

	require.NoError(t, New().WriteReport(dir, report))

	data, err := os.ReadFile(filepath.Join(dir, ".observer", "report.json"))
	require.NoError(t, err)

	var got domain.Report
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 72, got.Health)
	require.Len(t, got.Buckets, 1)
	assert.Equal(t, "a.ts", got.Buckets[0].Issues[0].File)
}

func TestWriteReport_Overwrites(t *testing.T) {
	dir := t.TempDir()
	store := New()

	require.NoError(t, store.WriteReport(dir, &domain.Report{Health: 10}))
	require.NoError(t, store.WriteReport(dir, &domain.Report{Health: 90}))

	data, err := os.ReadFile(filepath.Join(dir, ".observer", "report.json"))
	require.NoError(t, err)

	var got domain.Report
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 90, got.Health)
}

func TestAppendAndHistory(t *testing.T) {
	dir := t.TempDir()
	store := New()

	require.NoError(t, store.Append(dir, domain.SnapshotEntry{Timestamp: "t1", Total: 5}))
	require.NoError(t, store.Append(dir, domain.SnapshotEntry{Timestamp: "t2", Total: 3, Diff: -2}))

	entries, err := store.History(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "t1", entries[0].Timestamp)
	assert.Equal(t, -2, entries[1].Diff)
}

func TestHistory_NoFile(t *testing.T) {
	entries, err := New().History(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestHistory_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, ".observer", "history", "snapshots.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(fp), 0755))
	require.NoError(t, os.WriteFile(fp, []byte("not json"), 0644))

	_, err := New().History(dir)
	assert.Error(t, err)
}
