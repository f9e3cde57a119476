package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vento/internal/dateutil"
	"vento/internal/model"
)

func TestMemoryStoreGeneratesIDs(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	a := model.Category{Name: "Work", Color: "#6366f1"}
	b := model.Category{Name: "Personal", Color: "#a855f7"}
	require.NoError(t, s.Categories().Create(ctx, &a))
	require.NoError(t, s.Categories().Create(ctx, &b))
	assert.Equal(t, uint(1), a.ID)
	assert.Equal(t, uint(2), b.ID)

	e := model.Event{CategoryID: a.ID, Title: "One", EventDate: dateutil.New(2025, time.June, 1), Status: model.StatusNormal}
	require.NoError(t, s.Events().Create(ctx, &e))
	assert.Equal(t, uint(1), e.ID)
}

func TestMemoryEventsListOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	cat := model.Category{Name: "Work", Color: "#6366f1"}
	require.NoError(t, s.Categories().Create(ctx, &cat))

	day := dateutil.New(2025, time.June, 1)
	later := model.Event{CategoryID: cat.ID, Title: "Later", EventDate: day.AddDays(3), Status: model.StatusNormal}
	first := model.Event{CategoryID: cat.ID, Title: "A", EventDate: day, Status: model.StatusNormal}
	second := model.Event{CategoryID: cat.ID, Title: "B", EventDate: day, Status: model.StatusNormal}
	for _, e := range []*model.Event{&later, &first, &second} {
		require.NoError(t, s.Events().Create(ctx, e))
	}

	events, err := s.Events().List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
	// Date ascending, insertion order on equal dates.
	assert.Equal(t, "A", events[0].Title)
	assert.Equal(t, "B", events[1].Title)
	assert.Equal(t, "Later", events[2].Title)
}

func TestMemoryGetSaveDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Events().Get(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Categories().Get(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)

	cat := model.Category{Name: "Work", Color: "#6366f1"}
	require.NoError(t, s.Categories().Create(ctx, &cat))

	e := model.Event{CategoryID: cat.ID, Title: "One", EventDate: dateutil.New(2025, time.June, 1), Status: model.StatusNormal}
	require.NoError(t, s.Events().Create(ctx, &e))

	e.Status = model.StatusCompleted
	require.NoError(t, s.Events().Save(ctx, &e))
	got, err := s.Events().Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, got.Status)

	missing := model.Event{ID: 42, CategoryID: cat.ID, Title: "Ghost", EventDate: e.EventDate}
	assert.ErrorIs(t, s.Events().Save(ctx, &missing), ErrNotFound)

	require.NoError(t, s.Events().Delete(ctx, e.ID))
	_, err = s.Events().Get(ctx, e.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryDeleteByCategory(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	work := model.Category{Name: "Work", Color: "#6366f1"}
	other := model.Category{Name: "Other", Color: "#10b981"}
	require.NoError(t, s.Categories().Create(ctx, &work))
	require.NoError(t, s.Categories().Create(ctx, &other))

	day := dateutil.New(2025, time.June, 1)
	for i, catID := range []uint{work.ID, work.ID, other.ID} {
		e := model.Event{CategoryID: catID, Title: "e", EventDate: day.AddDays(i), Status: model.StatusNormal}
		require.NoError(t, s.Events().Create(ctx, &e))
	}

	require.NoError(t, s.Events().DeleteByCategory(ctx, work.ID))
	events, err := s.Events().List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, other.ID, events[0].CategoryID)
}

func TestDemoStoreSeed(t *testing.T) {
	ctx := context.Background()
	today := dateutil.New(2025, time.June, 10)
	s := NewDemoStore(today)

	cats, err := s.Categories().List(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, "Work", cats[0].Name)

	events, err := s.Events().List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 4)
	// Seed statuses are all normal; the overdue one rolls over at load time.
	overdue := 0
	for _, e := range events {
		assert.Equal(t, model.StatusNormal, e.Status)
		if e.EventDate.Before(today) {
			overdue++
		}
	}
	assert.Equal(t, 1, overdue)
}
