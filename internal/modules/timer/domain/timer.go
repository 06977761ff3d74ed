package domain

import "time"

// Session lengths in seconds. Fixed in this version.
const (
	WorkDuration  = 25 * 60
	BreakDuration = 5 * 60
)

// Snapshot is the live timer state: a work/break countdown that is either
// running or paused. The persistence timestamp is not part of the live
// state; it is attached by the store at save time.
type Snapshot struct {
	Running     bool
	WorkSession bool
	Remaining   int
}

func Initial() Snapshot {
	return Snapshot{WorkSession: true, Remaining: WorkDuration}
}

func SessionDuration(workSession bool) int {
	if workSession {
		return WorkDuration
	}
	return BreakDuration
}

// Normalize clamps Remaining into the bounds of the current session type.
func (s Snapshot) Normalize() Snapshot {
	if s.Remaining < 0 {
		s.Remaining = 0
	}
	if max := SessionDuration(s.WorkSession); s.Remaining > max {
		s.Remaining = max
	}
	return s
}

// Toggle flips between running and paused. A paused session that was left
// exhausted (recovered but never flipped) is re-armed to its own full
// duration before starting.
func (s Snapshot) Toggle() Snapshot {
	if !s.Running && s.Remaining == 0 {
		s.Remaining = SessionDuration(s.WorkSession)
	}
	s.Running = !s.Running
	return s
}

// Tick advances the countdown by one second. Ticking a paused snapshot is a
// no-op. Reaching the end of a session flips to the other session type at
// its full duration and pauses: sessions never auto-chain.
func (s Snapshot) Tick() Snapshot {
	if !s.Running {
		return s
	}
	if s.Remaining > 1 {
		s.Remaining--
		return s
	}
	s.WorkSession = !s.WorkSession
	s.Remaining = SessionDuration(s.WorkSession)
	s.Running = false
	return s
}

// Reset returns to the paused initial work session regardless of prior state.
func (s Snapshot) Reset() Snapshot {
	return Initial()
}

// Rehydrate replays the wall-clock time elapsed since the snapshot was
// persisted. A running snapshot that outlived its remaining seconds flips
// exactly once to a paused fresh session; the overshoot is absorbed rather
// than looped through further sessions. The final state is clamped to
// paused whenever nothing remains.
func Rehydrate(s Snapshot, savedAt, now time.Time) Snapshot {
	s = s.Normalize()
	if s.Running && !savedAt.IsZero() {
		elapsed := int(now.Sub(savedAt) / time.Second)
		if elapsed > 0 {
			remaining := s.Remaining - elapsed
			if remaining > 0 {
				s.Remaining = remaining
			} else {
				s.WorkSession = !s.WorkSession
				s.Remaining = SessionDuration(s.WorkSession)
				s.Running = false
			}
		}
	}
	if s.Remaining <= 0 {
		s.Running = false
	}
	return s
}
