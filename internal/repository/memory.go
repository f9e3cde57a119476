package repository

import (
	"context"
	"sort"
	"sync"

	"vento/internal/dateutil"
	"vento/internal/model"
)

// MemoryStore is the fallback backend used when no database is available.
// Ids are generated synchronously; the operation set matches the SQLite
// backend exactly.
type MemoryStore struct {
	mu             sync.Mutex
	categories     map[uint]model.Category
	events         map[uint]model.Event
	nextCategoryID uint
	nextEventID    uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		categories:     make(map[uint]model.Category),
		events:         make(map[uint]model.Event),
		nextCategoryID: 1,
		nextEventID:    1,
	}
}

// NewDemoStore returns a memory store seeded with representative sample data
// relative to today: three categories and four events, one of them already
// overdue so the first load exercises the rollover.
func NewDemoStore(today dateutil.Day) *MemoryStore {
	s := NewMemoryStore()
	ctx := context.Background()

	work := model.Category{Name: "Work", Color: "#6366f1"}
	personal := model.Category{Name: "Personal", Color: "#a855f7"}
	health := model.Category{Name: "Health", Color: "#10b981"}
	for _, c := range []*model.Category{&work, &personal, &health} {
		_ = s.Categories().Create(ctx, c)
	}

	seed := []model.Event{
		{CategoryID: work.ID, Title: "Project presentation", Description: "Deliver the final quarterly report.", EventDate: today.AddDays(2), Status: model.StatusNormal},
		{CategoryID: personal.ID, Title: "Family lunch", Description: "Book a table at the pasta place.", EventDate: today.AddDays(5), Status: model.StatusNormal},
		{CategoryID: health.ID, Title: "Medical checkup", Description: "Annual cardiology control.", EventDate: today, Status: model.StatusNormal},
		{CategoryID: work.ID, Title: "Team meeting", Description: "Plan next sprint and review backlog.", EventDate: today.AddDays(-2), Status: model.StatusNormal},
	}
	for i := range seed {
		_ = s.Events().Create(ctx, &seed[i])
	}
	return s
}

// Categories exposes the category half of the store.
func (s *MemoryStore) Categories() CategoryRepository {
	return &memoryCategories{s: s}
}

// Events exposes the event half of the store.
func (s *MemoryStore) Events() EventRepository {
	return &memoryEvents{s: s}
}

type memoryCategories struct {
	s *MemoryStore
}

func (r *memoryCategories) List(_ context.Context) ([]model.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]model.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryCategories) Get(_ context.Context, id uint) (*model.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *memoryCategories) Create(_ context.Context, category *model.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	category.ID = r.s.nextCategoryID
	r.s.nextCategoryID++
	r.s.categories[category.ID] = *category
	return nil
}

func (r *memoryCategories) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.categories, id)
	return nil
}

type memoryEvents struct {
	s *MemoryStore
}

func (r *memoryEvents) List(_ context.Context) ([]model.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]model.Event, 0, len(r.s.events))
	for _, e := range r.s.events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].EventDate.Equal(out[j].EventDate) {
			return out[i].EventDate.Before(out[j].EventDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *memoryEvents) Get(_ context.Context, id uint) (*model.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.events[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &e, nil
}

func (r *memoryEvents) Create(_ context.Context, event *model.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	event.ID = r.s.nextEventID
	r.s.nextEventID++
	r.s.events[event.ID] = *event
	return nil
}

func (r *memoryEvents) Save(_ context.Context, event *model.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.events[event.ID]; !ok {
		return ErrNotFound
	}
	r.s.events[event.ID] = *event
	return nil
}

func (r *memoryEvents) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.events, id)
	return nil
}

func (r *memoryEvents) DeleteByCategory(_ context.Context, categoryID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, e := range r.s.events {
		if e.CategoryID == categoryID {
			delete(r.s.events, id)
		}
	}
	return nil
}
