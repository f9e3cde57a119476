package repository

import (
	"context"
	"errors"

	"vento/internal/model"
)

// ErrNotFound is returned by Get operations when no row matches the id.
// Both backends report it so callers never depend on gorm directly.
var ErrNotFound = errors.New("record not found")

// CategoryRepository persists categories. List returns categories in id
// order, which is creation order.
type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	Get(ctx context.Context, id uint) (*model.Category, error)
	Create(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id uint) error
}

// EventRepository persists events. List returns events ordered by event_date
// ascending with id as the tiebreak, so equal dates keep insertion order.
//
// Category deletion cascades are not a database constraint: the service layer
// issues DeleteByCategory followed by the category delete itself.
type EventRepository interface {
	List(ctx context.Context) ([]model.Event, error)
	Get(ctx context.Context, id uint) (*model.Event, error)
	Create(ctx context.Context, event *model.Event) error
	Save(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id uint) error
	DeleteByCategory(ctx context.Context, categoryID uint) error
}
