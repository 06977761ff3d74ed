package domain

import "time"

const SchemaVersion = 1

// FocusEntry records one completed work session for the focus log.
type FocusEntry struct {
	EndedAt     time.Time
	DurationMin int
}
