package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vento/internal/model"
)

// SQLEventRepository stores events in SQLite through gorm.
type SQLEventRepository struct {
	db *gorm.DB
}

func NewSQLEventRepository(db *gorm.DB) *SQLEventRepository {
	return &SQLEventRepository{db: db}
}

func (r *SQLEventRepository) List(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).Order("event_date ASC, id ASC").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (r *SQLEventRepository) Get(ctx context.Context, id uint) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return &event, nil
}

func (r *SQLEventRepository) Create(ctx context.Context, event *model.Event) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (r *SQLEventRepository) Save(ctx context.Context, event *model.Event) error {
	if err := r.db.WithContext(ctx).Save(event).Error; err != nil {
		return fmt.Errorf("save event: %w", err)
	}
	return nil
}

func (r *SQLEventRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Event{}, id).Error; err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (r *SQLEventRepository) DeleteByCategory(ctx context.Context, categoryID uint) error {
	if err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).
		Delete(&model.Event{}).Error; err != nil {
		return fmt.Errorf("delete events by category: %w", err)
	}
	return nil
}
