// Package baseline keeps "vocal twin" snapshots between demo runs.
//
// The store is a single flat JSON file owned by the caller, not a database:
// one snapshot per subject, guarded with an advisory file lock so concurrent
// CLI invocations cannot interleave writes. The engine core never touches
// this package; baselines are always passed in by the collaborator layer.
package baseline

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"nuros/internal/acoustic"
	"nuros/internal/services"
)

// Snapshot is one stored baseline.
type Snapshot struct {
	SubjectID string                 `json:"subject_id"`
	Features  acoustic.FeatureVector `json:"features"`
	SavedAt   time.Time              `json:"saved_at"`
}

// Store reads and writes the snapshot file.
type Store struct {
	path string
	lock *flock.Flock
}

// NewStore wraps the snapshot file at path.
func NewStore(path string) *Store {
	return &Store{path: path, lock: flock.New(path + ".lock")}
}

// Save upserts the snapshot for a subject.
func (s *Store) Save(snapshot Snapshot) error {
	if snapshot.SubjectID == "" {
		return services.Wrap(services.ErrValidation, "baseline", "save", "subject id required", nil)
	}
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock baseline file: %w", err)
	}
	defer s.lock.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}
	if snapshot.SavedAt.IsZero() {
		snapshot.SavedAt = time.Now()
	}
	entries[snapshot.SubjectID] = snapshot
	return s.write(entries)
}

// Load returns the snapshot for a subject, or services.ErrNotFound.
func (s *Store) Load(subjectID string) (Snapshot, error) {
	if err := s.lock.RLock(); err != nil {
		return Snapshot{}, fmt.Errorf("lock baseline file: %w", err)
	}
	defer s.lock.Unlock()

	entries, err := s.read()
	if err != nil {
		return Snapshot{}, err
	}
	snapshot, ok := entries[subjectID]
	if !ok {
		return Snapshot{}, services.Wrap(services.ErrNotFound, "baseline", "load",
			fmt.Sprintf("no baseline snapshot for subject %s", subjectID), nil)
	}
	return snapshot, nil
}

func (s *Store) read() (map[string]Snapshot, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]Snapshot{}, nil
		}
		return nil, fmt.Errorf("read baseline file: %w", err)
	}
	entries := map[string]Snapshot{}
	if len(raw) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse baseline file: %w", err)
	}
	return entries, nil
}

func (s *Store) write(entries map[string]Snapshot) error {
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create baseline directory: %w", err)
		}
	}
	encoded, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode baseline file: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, encoded, 0o644); err != nil {
		return fmt.Errorf("write baseline file: %w", err)
	}
	return os.Rename(tmp, s.path)
}
