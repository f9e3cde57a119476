package service

import (
	"context"
	"errors"
	"log"

	"vento/internal/dateutil"
	"vento/internal/model"
	"vento/internal/repository"
	"vento/internal/view"
)

// Snapshot is the reconciled state of the store. Every mutating operation
// returns a fresh one, so callers never trigger reconciliation themselves.
// Events come ordered by date ascending with insertion order on ties.
type Snapshot struct {
	Categories []model.Category
	Events     []model.Event
}

// State is the explicit application state threaded through the operations
// that can influence it. The zero value means no category filter, upcoming
// tab, month window. The core holds no state beyond the persisted store;
// presentation owns a State and passes it in.
type State struct {
	CategoryFilter uint // 0 means no filter
	Tab            view.Tab
	Window         view.Window
}

// loader owns the repositories and the clock shared by both services.
type loader struct {
	categories repository.CategoryRepository
	events     repository.EventRepository
	today      func() dateutil.Day
}

func (l *loader) now() dateutil.Day {
	if l.today != nil {
		return l.today()
	}
	return dateutil.Today()
}

// reload loads everything and runs the reconciliation pass: events still
// marked normal whose date has passed flip to pending and are persisted.
// Pending, completed and deactivated events are never touched here.
func (l *loader) reload(ctx context.Context) (Snapshot, error) {
	categories, err := l.categories.List(ctx)
	if err != nil {
		return Snapshot{}, &PersistenceError{Op: "list categories", Err: err}
	}
	events, err := l.events.List(ctx)
	if err != nil {
		return Snapshot{}, &PersistenceError{Op: "list events", Err: err}
	}

	today := l.now()
	for i := range events {
		e := &events[i]
		if e.Status != model.StatusNormal || !e.EventDate.Before(today) {
			continue
		}
		e.Status = model.StatusPending
		if err := l.events.Save(ctx, e); err != nil {
			return Snapshot{}, &PersistenceError{Op: "persist rollover", Err: err}
		}
		log.Printf("[info] event %d rolled over to pending", e.ID)
	}

	return Snapshot{Categories: categories, Events: events}, nil
}

// getEvent maps the repository's not-found onto the service taxonomy.
func (l *loader) getEvent(ctx context.Context, id uint) (*model.Event, error) {
	evt, err := l.events.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Kind: "event", ID: id}
		}
		return nil, &PersistenceError{Op: "find event", Err: err}
	}
	return evt, nil
}
