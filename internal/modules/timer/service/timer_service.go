package service

import (
	"context"
	"log"

	"studydash/internal/modules/timer/domain"
	timerout "studydash/internal/modules/timer/port/out"
	"studydash/internal/platform/clock"
)

// TimerService owns the persisted side of the timer. The live snapshot is
// held by the caller between operations; every mutation writes it back with
// a fresh timestamp so the next load can replay elapsed wall-clock time.
type TimerService struct {
	clock    clock.Clock
	store    timerout.SnapshotStore
	focusLog timerout.FocusLogStore
}

func NewTimerService(clock clock.Clock, store timerout.SnapshotStore, focusLog timerout.FocusLogStore) *TimerService {
	return &TimerService{clock: clock, store: store, focusLog: focusLog}
}

// Load reads the persisted snapshot and replays the gap since it was saved,
// so a timer left running is neither silently frozen nor double-credited.
func (s *TimerService) Load(ctx context.Context) (domain.Snapshot, error) {
	snapshot, savedAt, err := s.store.Load(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return domain.Rehydrate(snapshot, savedAt, s.clock.Now()), nil
}

func (s *TimerService) Toggle(ctx context.Context, snapshot domain.Snapshot) (domain.Snapshot, error) {
	next := snapshot.Toggle()
	if err := s.store.Save(ctx, next, s.clock.Now()); err != nil {
		return domain.Snapshot{}, err
	}
	return next, nil
}

func (s *TimerService) Tick(ctx context.Context, snapshot domain.Snapshot) (domain.Snapshot, error) {
	next := snapshot.Tick()
	if err := s.store.Save(ctx, next, s.clock.Now()); err != nil {
		return domain.Snapshot{}, err
	}
	if snapshot.Running && snapshot.WorkSession && !next.WorkSession {
		entry := domain.FocusEntry{
			EndedAt:     s.clock.Now(),
			DurationMin: domain.WorkDuration / 60,
		}
		if _, err := s.focusLog.Append(ctx, entry); err != nil {
			// The countdown already advanced; a lost log note is not fatal.
			log.Printf("warning: append focus log: %v", err)
		}
	}
	return next, nil
}

func (s *TimerService) Reset(ctx context.Context) (domain.Snapshot, error) {
	next := domain.Initial()
	if err := s.store.Save(ctx, next, s.clock.Now()); err != nil {
		return domain.Snapshot{}, err
	}
	return next, nil
}
