package domain_test

import (
	"testing"
	"time"

	"studydash/internal/modules/timer/domain"
)

func TestInitialIsPausedWorkSession(t *testing.T) {
	t.Parallel()
	s := domain.Initial()
	if s.Running || !s.WorkSession || s.Remaining != domain.WorkDuration {
		t.Fatalf("unexpected initial state: %+v", s)
	}
}

func TestToggleFlipsRunningAndPreservesRemaining(t *testing.T) {
	t.Parallel()
	s := domain.Snapshot{WorkSession: true, Remaining: 900}
	started := s.Toggle()
	if !started.Running || started.Remaining != 900 {
		t.Fatalf("expected running with 900s, got %+v", started)
	}
	paused := started.Toggle()
	if paused.Running || paused.Remaining != 900 {
		t.Fatalf("expected paused with 900s, got %+v", paused)
	}
}

func TestToggleReArmsExhaustedPausedSession(t *testing.T) {
	t.Parallel()
	s := domain.Snapshot{WorkSession: false, Remaining: 0}
	started := s.Toggle()
	if !started.Running {
		t.Fatalf("expected running, got %+v", started)
	}
	if started.Remaining != domain.BreakDuration {
		t.Fatalf("expected re-armed break duration %d, got %d", domain.BreakDuration, started.Remaining)
	}
	if started.WorkSession {
		t.Fatalf("session type must not change on re-arm")
	}
}

func TestTickIsNoOpWhilePaused(t *testing.T) {
	t.Parallel()
	s := domain.Snapshot{WorkSession: true, Remaining: 100}
	for i := 0; i < 5; i++ {
		s = s.Tick()
	}
	if s.Remaining != 100 {
		t.Fatalf("paused tick must not change remaining, got %d", s.Remaining)
	}
}

func TestTickDecrementsWhileRunning(t *testing.T) {
	t.Parallel()
	s := domain.Snapshot{Running: true, WorkSession: true, Remaining: 100}
	s = s.Tick()
	if s.Remaining != 99 || !s.Running || !s.WorkSession {
		t.Fatalf("unexpected state after tick: %+v", s)
	}
}

func TestTickCompletesWorkSessionIntoPausedBreak(t *testing.T) {
	t.Parallel()
	s := domain.Snapshot{Running: true, WorkSession: true, Remaining: 1}
	s = s.Tick()
	if s.Running {
		t.Fatalf("sessions must not auto-chain")
	}
	if s.WorkSession {
		t.Fatalf("expected flip to break session")
	}
	if s.Remaining != domain.BreakDuration {
		t.Fatalf("expected full break duration %d, got %d", domain.BreakDuration, s.Remaining)
	}
}

func TestTickCompletesBreakSessionIntoPausedWork(t *testing.T) {
	t.Parallel()
	s := domain.Snapshot{Running: true, WorkSession: false, Remaining: 1}
	s = s.Tick()
	if s.Running || !s.WorkSession || s.Remaining != domain.WorkDuration {
		t.Fatalf("unexpected state after break completion: %+v", s)
	}
}

func TestResetFromAnyState(t *testing.T) {
	t.Parallel()
	states := []domain.Snapshot{
		{Running: true, WorkSession: true, Remaining: 42},
		{Running: true, WorkSession: false, Remaining: 1},
		{Running: false, WorkSession: false, Remaining: 0},
	}
	for _, s := range states {
		got := s.Reset()
		if got != domain.Initial() {
			t.Fatalf("reset from %+v gave %+v", s, got)
		}
	}
}

func TestRehydrateSmallElapsedKeepsRunning(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	s := domain.Snapshot{Running: true, WorkSession: true, Remaining: 100}
	got := domain.Rehydrate(s, now.Add(-30*time.Second), now)
	want := domain.Snapshot{Running: true, WorkSession: true, Remaining: 70}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestRehydrateOvershootFlipsExactlyOnce(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	// 150s elapsed against 100s remaining: one flip into a paused break,
	// the 50s overshoot is absorbed, never looped into a second flip.
	s := domain.Snapshot{Running: true, WorkSession: true, Remaining: 100}
	got := domain.Rehydrate(s, now.Add(-150*time.Second), now)
	want := domain.Snapshot{Running: false, WorkSession: false, Remaining: domain.BreakDuration}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestRehydrateVeryLongGapStillFlipsOnlyOnce(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	s := domain.Snapshot{Running: true, WorkSession: true, Remaining: 100}
	got := domain.Rehydrate(s, now.Add(-24*time.Hour), now)
	want := domain.Snapshot{Running: false, WorkSession: false, Remaining: domain.BreakDuration}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestRehydrateZeroOrNegativeElapsedKeepsSnapshot(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	s := domain.Snapshot{Running: true, WorkSession: true, Remaining: 100}
	if got := domain.Rehydrate(s, now, now); got != s {
		t.Fatalf("zero elapsed must keep snapshot, got %+v", got)
	}
	if got := domain.Rehydrate(s, now.Add(10*time.Second), now); got != s {
		t.Fatalf("negative elapsed must keep snapshot, got %+v", got)
	}
}

func TestRehydratePausedSnapshotIgnoresTimestamp(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	s := domain.Snapshot{Running: false, WorkSession: false, Remaining: 120}
	if got := domain.Rehydrate(s, now.Add(-time.Hour), now); got != s {
		t.Fatalf("paused snapshot must not advance, got %+v", got)
	}
}

func TestRehydrateMissingTimestampClampsRunningAtZero(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	s := domain.Snapshot{Running: true, WorkSession: true, Remaining: 0}
	got := domain.Rehydrate(s, time.Time{}, now)
	if got.Running {
		t.Fatalf("exhausted snapshot must load paused, got %+v", got)
	}
}

func TestNormalizeClampsRemainingIntoSessionBounds(t *testing.T) {
	t.Parallel()
	over := domain.Snapshot{WorkSession: false, Remaining: 9999}
	if got := over.Normalize(); got.Remaining != domain.BreakDuration {
		t.Fatalf("expected clamp to %d, got %d", domain.BreakDuration, got.Remaining)
	}
	under := domain.Snapshot{WorkSession: true, Remaining: -5}
	if got := under.Normalize(); got.Remaining != 0 {
		t.Fatalf("expected clamp to 0, got %d", got.Remaining)
	}
}
