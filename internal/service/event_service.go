package service

import (
	"context"
	"errors"
	"strings"

	"vento/internal/dateutil"
	"vento/internal/model"
	"vento/internal/repository"
)

// EventInput carries the fields of a create or edit. Status is the incoming
// status of an edit; leave it empty to carry the stored one.
type EventInput struct {
	CategoryID  uint
	Title       string
	Description string
	Date        dateutil.Day
	Deactivated bool
	Status      model.Status
}

// PostponeUnit selects how far a postponed event moves.
type PostponeUnit string

const (
	PostponeMonth PostponeUnit = "month"
	PostponeYear  PostponeUnit = "year"
)

// EventService owns every event mutation. Each mutating operation persists,
// then reloads and reconciles, so the returned Snapshot is always current.
type EventService struct {
	loader
}

func NewEventService(events repository.EventRepository, categories repository.CategoryRepository) *EventService {
	return &EventService{loader{categories: categories, events: events}}
}

// Load runs a plain reload-and-reconcile pass.
func (s *EventService) Load(ctx context.Context) (Snapshot, error) {
	return s.reload(ctx)
}

// Create validates the input, derives the initial status from the resolver
// and stores the event.
func (s *EventService) Create(ctx context.Context, in EventInput) (model.Event, Snapshot, error) {
	if err := s.validate(ctx, in); err != nil {
		return model.Event{}, Snapshot{}, err
	}

	evt := model.Event{
		CategoryID:  in.CategoryID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		EventDate:   in.Date,
		Status:      model.ResolveStatus(in.Date, in.Deactivated, s.now()),
	}
	if err := s.events.Create(ctx, &evt); err != nil {
		return model.Event{}, Snapshot{}, &PersistenceError{Op: "create event", Err: err}
	}

	snap, err := s.reload(ctx)
	return evt, snap, err
}

// Update edits an event. Unless the incoming status is explicitly completed
// or the deactivation toggle is on, the status is recomputed from the new
// date, so an edit can reverse an automatic transition: moving a pending
// event to a future date puts it back to normal.
func (s *EventService) Update(ctx context.Context, id uint, in EventInput) (model.Event, Snapshot, error) {
	evt, err := s.getEvent(ctx, id)
	if err != nil {
		return model.Event{}, Snapshot{}, err
	}
	if err := s.validate(ctx, in); err != nil {
		return model.Event{}, Snapshot{}, err
	}

	incoming := in.Status
	if incoming == "" {
		incoming = evt.Status
	}
	if !incoming.Valid() {
		return model.Event{}, Snapshot{}, &ValidationError{Field: "status", Reason: "unknown status " + string(incoming)}
	}

	evt.CategoryID = in.CategoryID
	evt.Title = strings.TrimSpace(in.Title)
	evt.Description = in.Description
	evt.EventDate = in.Date

	switch {
	case incoming == model.StatusCompleted:
		evt.Status = model.StatusCompleted
	case in.Deactivated:
		evt.Status = model.StatusDeactivated
	default:
		// Covers switching the deactivation toggle off: a still-past
		// date lands on pending, not normal.
		evt.Status = model.ResolveStatus(evt.EventDate, false, s.now())
	}

	if err := s.events.Save(ctx, evt); err != nil {
		return model.Event{}, Snapshot{}, &PersistenceError{Op: "save event", Err: err}
	}

	snap, err := s.reload(ctx)
	return *evt, snap, err
}

// SetStatus is the manual override. A normal target is still passed through
// the resolver, so forcing "back to upcoming" on a past-dated event snaps to
// pending immediately. Every other target is stored as-is.
func (s *EventService) SetStatus(ctx context.Context, id uint, target model.Status) (model.Event, Snapshot, error) {
	if !target.Valid() {
		return model.Event{}, Snapshot{}, &ValidationError{Field: "status", Reason: "unknown status " + string(target)}
	}

	evt, err := s.getEvent(ctx, id)
	if err != nil {
		return model.Event{}, Snapshot{}, err
	}

	if target == model.StatusNormal {
		evt.Status = model.ResolveStatus(evt.EventDate, false, s.now())
	} else {
		evt.Status = target
	}

	if err := s.events.Save(ctx, evt); err != nil {
		return model.Event{}, Snapshot{}, &PersistenceError{Op: "save event", Err: err}
	}

	snap, err := s.reload(ctx)
	return *evt, snap, err
}

// Postpone shifts the event date forward by one month or one year from its
// current date, then recomputes the status against the new date. Completion
// and deactivation stay sticky; only the date moves for those.
func (s *EventService) Postpone(ctx context.Context, id uint, unit PostponeUnit) (model.Event, Snapshot, error) {
	evt, err := s.getEvent(ctx, id)
	if err != nil {
		return model.Event{}, Snapshot{}, err
	}

	switch unit {
	case PostponeMonth:
		evt.EventDate = evt.EventDate.AddMonths(1)
	case PostponeYear:
		evt.EventDate = evt.EventDate.AddYears(1)
	default:
		return model.Event{}, Snapshot{}, &ValidationError{Field: "unit", Reason: "must be month or year"}
	}

	if evt.Status != model.StatusCompleted {
		evt.Status = model.ResolveStatus(evt.EventDate, evt.Deactivated(), s.now())
	}

	if err := s.events.Save(ctx, evt); err != nil {
		return model.Event{}, Snapshot{}, &PersistenceError{Op: "save event", Err: err}
	}

	snap, err := s.reload(ctx)
	return *evt, snap, err
}

// Delete removes the event permanently.
func (s *EventService) Delete(ctx context.Context, id uint) (Snapshot, error) {
	if _, err := s.getEvent(ctx, id); err != nil {
		return Snapshot{}, err
	}
	if err := s.events.Delete(ctx, id); err != nil {
		return Snapshot{}, &PersistenceError{Op: "delete event", Err: err}
	}
	return s.reload(ctx)
}

func (s *EventService) validate(ctx context.Context, in EventInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if in.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "must be set"}
	}
	if _, err := s.categories.Get(ctx, in.CategoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &ValidationError{Field: "category", Reason: "does not exist"}
		}
		return &PersistenceError{Op: "find category", Err: err}
	}
	return nil
}
