package out

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"studydash/internal/modules/timer/domain"
	timerout "studydash/internal/modules/timer/port/out"
)

// timerRecord is the persisted form of the snapshot. saved_at exists only
// here; the live state never carries it.
type timerRecord struct {
	Running     bool      `json:"running"`
	WorkSession bool      `json:"work_session"`
	Remaining   int       `json:"seconds_remaining"`
	SavedAt     time.Time `json:"saved_at"`
}

type FileSnapshotStore struct {
	path string
}

func NewFileSnapshotStore(statePath string) timerout.SnapshotStore {
	return &FileSnapshotStore{path: filepath.Join(statePath, "timer.json")}
}

// Load returns the persisted snapshot and when it was written. A missing or
// malformed record degrades to the initial paused work session with a zero
// timestamp.
func (s *FileSnapshotStore) Load(_ context.Context) (domain.Snapshot, time.Time, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Initial(), time.Time{}, nil
		}
		return domain.Snapshot{}, time.Time{}, fmt.Errorf("read timer: %w", err)
	}
	record := timerRecord{}
	if err := json.Unmarshal(payload, &record); err != nil {
		log.Printf("warning: malformed timer record, using initial state: %v", err)
		return domain.Initial(), time.Time{}, nil
	}
	snapshot := domain.Snapshot{
		Running:     record.Running,
		WorkSession: record.WorkSession,
		Remaining:   record.Remaining,
	}
	return snapshot.Normalize(), record.SavedAt, nil
}

func (s *FileSnapshotStore) Save(_ context.Context, snapshot domain.Snapshot, savedAt time.Time) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	record := timerRecord{
		Running:     snapshot.Running,
		WorkSession: snapshot.WorkSession,
		Remaining:   snapshot.Remaining,
		SavedAt:     savedAt,
	}
	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal timer: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write timer: %w", err)
	}
	return nil
}
