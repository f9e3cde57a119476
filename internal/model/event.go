package model

import "vento/internal/dateutil"

// Event is a single dated entry in the planner.
type Event struct {
	ID          uint         `gorm:"primaryKey"`
	CategoryID  uint         `gorm:"index;not null"`
	Title       string       `gorm:"not null"`
	Description string
	EventDate   dateutil.Day `gorm:"type:text;not null"`
	Status      Status       `gorm:"type:text;not null;default:normal"`
}

// Deactivated reports whether the event carries the explicit user override
// that hides it from dashboard aggregates.
func (e Event) Deactivated() bool {
	return e.Status == StatusDeactivated
}
