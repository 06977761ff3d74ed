package service_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	timerout "studydash/internal/modules/timer/adapter/out"
	"studydash/internal/modules/timer/domain"
	"studydash/internal/modules/timer/service"
)

type fakeClock struct {
	values []time.Time
	idx    int
}

func (f *fakeClock) Now() time.Time {
	if f.idx >= len(f.values) {
		return f.values[len(f.values)-1]
	}
	v := f.values[f.idx]
	f.idx++
	return v
}

func newService(t *testing.T, clk *fakeClock) (*service.TimerService, string) {
	t.Helper()
	state := t.TempDir()
	logDir := filepath.Join(state, "logs")
	svc := service.NewTimerService(clk,
		timerout.NewFileSnapshotStore(state),
		timerout.NewFileFocusLogStore(logDir),
	)
	return svc, logDir
}

func TestLoadWithoutRecordStartsPausedWork(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t, &fakeClock{values: []time.Time{time.Now()}})

	snapshot, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snapshot != domain.Initial() {
		t.Fatalf("expected initial state, got %+v", snapshot)
	}
}

func TestLoadReplaysGapWhileRunning(t *testing.T) {
	t.Parallel()
	base := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	clk := &fakeClock{values: []time.Time{base, base.Add(30 * time.Second)}}
	svc, _ := newService(t, clk)
	ctx := context.Background()

	paused := domain.Snapshot{Running: false, WorkSession: true, Remaining: 100}
	if _, err := svc.Toggle(ctx, paused); err != nil {
		t.Fatalf("persist running snapshot: %v", err)
	}

	snapshot, err := svc.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !snapshot.Running || snapshot.Remaining != 70 {
		t.Fatalf("expected running with 70s left, got %+v", snapshot)
	}
}

func TestLoadAbsorbsOvershootIntoPausedBreak(t *testing.T) {
	t.Parallel()
	base := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	clk := &fakeClock{values: []time.Time{base, base.Add(150 * time.Second)}}
	svc, _ := newService(t, clk)
	ctx := context.Background()

	paused := domain.Snapshot{Running: false, WorkSession: true, Remaining: 100}
	if _, err := svc.Toggle(ctx, paused); err != nil {
		t.Fatalf("persist running snapshot: %v", err)
	}

	snapshot, err := svc.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := domain.Snapshot{Running: false, WorkSession: false, Remaining: domain.BreakDuration}
	if snapshot != want {
		t.Fatalf("expected paused break %+v, got %+v", want, snapshot)
	}
}

func TestLoadIgnoresGapWhilePaused(t *testing.T) {
	t.Parallel()
	base := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	clk := &fakeClock{values: []time.Time{base, base.Add(48 * time.Hour)}}
	svc, _ := newService(t, clk)
	ctx := context.Background()

	running := domain.Snapshot{Running: true, WorkSession: true, Remaining: 900}
	if _, err := svc.Toggle(ctx, running); err != nil {
		t.Fatalf("persist paused snapshot: %v", err)
	}

	snapshot, err := svc.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snapshot.Running || snapshot.Remaining != 900 {
		t.Fatalf("paused timer must not advance, got %+v", snapshot)
	}
}

func TestTickWritesFocusNoteOnWorkCompletion(t *testing.T) {
	t.Parallel()
	ended := time.Date(2026, 8, 30, 14, 25, 0, 0, time.UTC)
	clk := &fakeClock{values: []time.Time{ended}}
	svc, logDir := newService(t, clk)

	lastSecond := domain.Snapshot{Running: true, WorkSession: true, Remaining: 1}
	next, err := svc.Tick(context.Background(), lastSecond)
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if next.WorkSession || next.Running {
		t.Fatalf("expected paused break after completion, got %+v", next)
	}

	notePath := filepath.Join(logDir, "2026", "08", "30", "142500-focus.md")
	payload, err := os.ReadFile(notePath)
	if err != nil {
		t.Fatalf("read focus note: %v", err)
	}
	note := string(payload)
	if !strings.Contains(note, "duration_minutes: 25") {
		t.Fatalf("note missing duration:\n%s", note)
	}
	if !strings.Contains(note, "kind: work") {
		t.Fatalf("note missing kind:\n%s", note)
	}
}

func TestBreakCompletionWritesNoNote(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)}}
	svc, logDir := newService(t, clk)

	lastSecond := domain.Snapshot{Running: true, WorkSession: false, Remaining: 1}
	next, err := svc.Tick(context.Background(), lastSecond)
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if !next.WorkSession || next.Running {
		t.Fatalf("expected paused work after break, got %+v", next)
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Fatalf("break completion must not create log notes")
	}
}

func TestResetPersistsInitialState(t *testing.T) {
	t.Parallel()
	base := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	clk := &fakeClock{values: []time.Time{base, base, base.Add(time.Minute)}}
	svc, _ := newService(t, clk)
	ctx := context.Background()

	if _, err := svc.Toggle(ctx, domain.Snapshot{Running: true, WorkSession: false, Remaining: 42}); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, err := svc.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	snapshot, err := svc.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snapshot != domain.Initial() {
		t.Fatalf("expected reset state, got %+v", snapshot)
	}
}
