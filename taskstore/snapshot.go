package taskstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gofrs/flock"

	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/types"
)

// Snapshot support: the store can seed itself from a JSON document and
// write one back. This is best-effort seeding for demos and fixtures,
// not a durability guarantee.

// snapshotData is the on-disk layout.
type snapshotData struct {
	Tasks    []types.Task     `json:"tasks"`
	Metadata snapshotMetadata `json:"metadata"`
}

type snapshotMetadata struct {
	Version   string    `json:"version"`
	ProjectID string    `json:"project_id"`
	SavedAt   time.Time `json:"saved_at"`
}

const snapshotVersion = "1.0"

// File locking constants shared by load and save.
const (
	lockTimeout    = 3 * time.Second
	lockRetryDelay = 100 * time.Millisecond
)

// withFileLock runs fn while holding an exclusive lock on path+".lock".
func withFileLock(path string, fn func() error) error {
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("failed to acquire lock on %s", path)
	}
	defer func() { _ = lock.Unlock() }()

	return fn()
}

// LoadSnapshot replaces the collection with the contents of the snapshot
// file. A missing file leaves the store empty, which is fine for a first
// run. The journal is cleared since history does not span snapshots.
func (s *Store) LoadSnapshot(path string) error {
	return withFileLock(path, func() error {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read snapshot: %w", err)
		}
		if len(data) == 0 {
			return nil
		}

		var snap snapshotData
		if err := json.Unmarshal(data, &snap); err != nil {
			return fmt.Errorf("failed to parse snapshot: %w", err)
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		seeded := make([]types.Task, len(snap.Tasks))
		for i := range snap.Tasks {
			seeded[i] = *cloneTask(snap.Tasks[i])
		}
		s.tasks = seeded
		s.journal = nil
		return nil
	})
}

// SaveSnapshot writes the collection to path atomically: marshal, write
// a temp file, then rename over the target.
func (s *Store) SaveSnapshot(path string) error {
	return withFileLock(path, func() error {
		s.mu.RLock()
		snap := snapshotData{
			Tasks: make([]types.Task, len(s.tasks)),
			Metadata: snapshotMetadata{
				Version:   snapshotVersion,
				ProjectID: s.projectID,
				SavedAt:   s.clock(),
			},
		}
		copy(snap.Tasks, s.tasks)
		s.mu.RUnlock()

		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}

		tmpFile := path + ".tmp"
		if err := os.WriteFile(tmpFile, data, 0644); err != nil {
			return fmt.Errorf("failed to write temp file: %w", err)
		}
		if err := os.Rename(tmpFile, path); err != nil {
			_ = os.Remove(tmpFile)
			return fmt.Errorf("failed to rename snapshot: %w", err)
		}
		return nil
	})
}
