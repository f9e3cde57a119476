package model

import "vento/internal/dateutil"

// Status is the lifecycle state of an event. Exactly four values are valid.
type Status string

const (
	// StatusNormal is the default for a future-or-today event.
	StatusNormal Status = "normal"
	// StatusPending marks an event whose date passed while it was normal,
	// or that was forced back to normal against a past date.
	StatusPending Status = "pending"
	// StatusCompleted is set only by an explicit user action, never by date.
	StatusCompleted Status = "completed"
	// StatusDeactivated is an explicit override independent of date.
	StatusDeactivated Status = "deactivated"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNormal, StatusPending, StatusCompleted, StatusDeactivated:
		return true
	}
	return false
}

// ResolveStatus derives the default status for an event date. Deactivation
// wins unconditionally; otherwise a past date means pending. Completion is
// never derived here: it is always an explicit transition.
func ResolveStatus(date dateutil.Day, deactivated bool, today dateutil.Day) Status {
	if deactivated {
		return StatusDeactivated
	}
	if date.Before(today) {
		return StatusPending
	}
	return StatusNormal
}
