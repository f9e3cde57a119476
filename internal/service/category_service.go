package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"vento/internal/model"
	"vento/internal/repository"
)

// CategoryService owns the category lifecycle, including the cascading
// delete of a category's events.
type CategoryService struct {
	loader
}

func NewCategoryService(categories repository.CategoryRepository, events repository.EventRepository) *CategoryService {
	return &CategoryService{loader{categories: categories, events: events}}
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "list categories", Err: err}
	}
	return categories, nil
}

// Create stores a new category. An empty color falls back to the default
// token.
func (s *CategoryService) Create(ctx context.Context, name, color string) (model.Category, Snapshot, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Category{}, Snapshot{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if color == "" {
		color = model.DefaultColor
	}

	category := model.Category{Name: name, Color: color}
	if err := s.categories.Create(ctx, &category); err != nil {
		return model.Category{}, Snapshot{}, &PersistenceError{Op: "create category", Err: err}
	}

	snap, err := s.reload(ctx)
	return category, snap, err
}

// Delete removes a category and all its events: events first, then the
// category, as two sequential statements, so no orphaned events persist.
// When the deleted category is the active filter in st, the returned state
// has the filter cleared. Deleting an unknown id is a no-op.
func (s *CategoryService) Delete(ctx context.Context, id uint, st State) (State, Snapshot, error) {
	if _, err := s.categories.Get(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Documented leniency: nothing to delete, nothing to report.
			snap, err := s.reload(ctx)
			return st, snap, err
		}
		return st, Snapshot{}, &PersistenceError{Op: "find category", Err: err}
	}

	if err := s.events.DeleteByCategory(ctx, id); err != nil {
		return st, Snapshot{}, &PersistenceError{Op: "delete events by category", Err: err}
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		return st, Snapshot{}, &PersistenceError{Op: "delete category", Err: err}
	}
	log.Printf("[info] category %d deleted with its events", id)

	if st.CategoryFilter == id {
		st.CategoryFilter = 0
	}

	snap, err := s.reload(ctx)
	return st, snap, err
}
