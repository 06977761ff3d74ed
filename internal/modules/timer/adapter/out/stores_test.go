package out_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	timerout "studydash/internal/modules/timer/adapter/out"
	"studydash/internal/modules/timer/domain"
)

func TestSnapshotStoreMissingFileIsInitialState(t *testing.T) {
	t.Parallel()
	store := timerout.NewFileSnapshotStore(t.TempDir())

	snapshot, savedAt, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snapshot != domain.Initial() {
		t.Fatalf("expected initial state, got %+v", snapshot)
	}
	if !savedAt.IsZero() {
		t.Fatalf("missing record must carry a zero timestamp, got %v", savedAt)
	}
}

func TestSnapshotStoreMalformedFileDegradesToInitial(t *testing.T) {
	t.Parallel()
	state := t.TempDir()
	if err := os.WriteFile(filepath.Join(state, "timer.json"), []byte("oops"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	store := timerout.NewFileSnapshotStore(state)

	snapshot, savedAt, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("malformed record must not be fatal: %v", err)
	}
	if snapshot != domain.Initial() || !savedAt.IsZero() {
		t.Fatalf("expected initial state with zero timestamp, got %+v at %v", snapshot, savedAt)
	}
}

func TestSnapshotStoreRoundTripKeepsTimestamp(t *testing.T) {
	t.Parallel()
	store := timerout.NewFileSnapshotStore(t.TempDir())
	ctx := context.Background()

	want := domain.Snapshot{Running: true, WorkSession: false, Remaining: 180}
	stamp := time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC)
	if err := store.Save(ctx, want, stamp); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, savedAt, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
	if !savedAt.Equal(stamp) {
		t.Fatalf("got timestamp %v want %v", savedAt, stamp)
	}
}

func TestSnapshotStoreClampsOutOfRangeRemaining(t *testing.T) {
	t.Parallel()
	state := t.TempDir()
	payload := []byte(`{"running": true, "work_session": true, "seconds_remaining": 99999, "saved_at": "2026-08-30T10:30:00Z"}`)
	if err := os.WriteFile(filepath.Join(state, "timer.json"), payload, 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	store := timerout.NewFileSnapshotStore(state)

	snapshot, _, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snapshot.Remaining != domain.WorkDuration {
		t.Fatalf("expected remaining clamped to %d, got %d", domain.WorkDuration, snapshot.Remaining)
	}
}

func TestFocusLogStoreWritesFrontmatterNote(t *testing.T) {
	t.Parallel()
	logDir := filepath.Join(t.TempDir(), "logs")
	store := timerout.NewFileFocusLogStore(logDir)

	entry := domain.FocusEntry{
		EndedAt:     time.Date(2026, 8, 30, 14, 25, 0, 0, time.UTC),
		DurationMin: 25,
	}
	path, err := store.Append(context.Background(), entry)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if want := filepath.Join(logDir, "2026", "08", "30", "142500-focus.md"); path != want {
		t.Fatalf("got path %q want %q", path, want)
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	note := string(payload)
	if !strings.HasPrefix(note, "---\n") {
		t.Fatalf("note must open with yaml frontmatter:\n%s", note)
	}
	for _, want := range []string{"schema_version: 1", "kind: work", "duration_minutes: 25", "# Focus session"} {
		if !strings.Contains(note, want) {
			t.Fatalf("note missing %q:\n%s", want, note)
		}
	}
}
