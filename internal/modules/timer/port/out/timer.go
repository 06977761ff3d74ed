package out

import (
	"context"
	"time"

	"studydash/internal/modules/timer/domain"
)

// SnapshotStore persists the timer snapshot together with the moment it was
// written. Load reports a zero time when no snapshot was ever saved.
type SnapshotStore interface {
	Load(ctx context.Context) (domain.Snapshot, time.Time, error)
	Save(ctx context.Context, snapshot domain.Snapshot, savedAt time.Time) error
}

// FocusLogStore appends a note for a completed work session and returns its
// path.
type FocusLogStore interface {
	Append(ctx context.Context, entry domain.FocusEntry) (string, error)
}
