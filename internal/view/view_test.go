package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vento/internal/dateutil"
	"vento/internal/model"
)

var today = dateutil.New(2025, time.June, 11) // a Wednesday

func evt(id, catID uint, date dateutil.Day, status model.Status) model.Event {
	return model.Event{ID: id, CategoryID: catID, Title: "event", EventDate: date, Status: status}
}

func TestSortedByDateStableTieBreak(t *testing.T) {
	day := today.AddDays(1)
	events := []model.Event{
		evt(3, 1, day.AddDays(5), model.StatusNormal),
		evt(1, 1, day, model.StatusNormal), // A
		evt(2, 1, day, model.StatusNormal), // B, same date, inserted after A
	}

	sorted := SortedByDate(events)
	require.Len(t, sorted, 3)
	assert.Equal(t, uint(1), sorted[0].ID)
	assert.Equal(t, uint(2), sorted[1].ID)
	assert.Equal(t, uint(3), sorted[2].ID)

	// Input order untouched.
	assert.Equal(t, uint(3), events[0].ID)
}

func TestTabs(t *testing.T) {
	events := []model.Event{
		evt(1, 1, today.AddDays(1), model.StatusNormal),
		evt(2, 1, today.AddDays(2), model.StatusDeactivated),
		evt(3, 1, today.AddDays(-1), model.StatusPending),
		evt(4, 1, today.AddDays(3), model.StatusPending),
		evt(5, 1, today.AddDays(-5), model.StatusCompleted),
	}

	upcoming := UpcomingTab(events)
	require.Len(t, upcoming, 2)
	assert.Equal(t, uint(1), upcoming[0].ID)
	assert.Equal(t, uint(2), upcoming[1].ID)

	split := InProgressTab(events, today)
	require.Len(t, split.Past, 1)
	assert.Equal(t, uint(3), split.Past[0].ID)
	require.Len(t, split.Upcoming, 1)
	assert.Equal(t, uint(4), split.Upcoming[0].ID)

	done := CompletedTab(events)
	require.Len(t, done, 1)
	assert.Equal(t, uint(5), done[0].ID)
}

func TestInProgressSplitIsDateOnly(t *testing.T) {
	// An event dated today is still "upcoming pending", not past.
	events := []model.Event{evt(1, 1, today, model.StatusPending)}
	split := InProgressTab(events, today)
	assert.Len(t, split.Upcoming, 1)
	assert.Empty(t, split.Past)
}

func TestDashboardEligibleExcludesEverythingButNormal(t *testing.T) {
	events := []model.Event{
		evt(1, 1, today, model.StatusNormal),
		evt(2, 1, today, model.StatusPending),
		evt(3, 1, today, model.StatusCompleted),
		evt(4, 1, today, model.StatusDeactivated),
	}
	eligible := DashboardEligible(events)
	require.Len(t, eligible, 1)
	assert.Equal(t, uint(1), eligible[0].ID)
}

func TestNextUpcoming(t *testing.T) {
	events := []model.Event{
		evt(1, 1, today.AddDays(-3), model.StatusNormal), // past normal, skipped
		evt(2, 1, today.AddDays(7), model.StatusNormal),
		evt(3, 1, today.AddDays(2), model.StatusNormal),
		evt(4, 1, today.AddDays(1), model.StatusDeactivated), // not eligible
	}

	next, ok := NextUpcoming(events, today)
	require.True(t, ok)
	assert.Equal(t, uint(3), next.ID)

	_, ok = NextUpcoming([]model.Event{evt(1, 1, today.AddDays(-1), model.StatusNormal)}, today)
	assert.False(t, ok)
}

func TestInWindow(t *testing.T) {
	// today is Wed 2025-06-11; its week is Mon 06-09 .. Sun 06-15.
	events := []model.Event{
		evt(1, 1, dateutil.New(2025, time.June, 9), model.StatusNormal),
		evt(2, 1, dateutil.New(2025, time.June, 15), model.StatusNormal),
		evt(3, 1, dateutil.New(2025, time.June, 16), model.StatusNormal),
		evt(4, 1, dateutil.New(2025, time.June, 30), model.StatusNormal),
		evt(5, 1, dateutil.New(2025, time.July, 1), model.StatusNormal),
		evt(6, 1, dateutil.New(2025, time.June, 12), model.StatusPending),
	}

	week := InWindow(events, WindowWeek, today)
	require.Len(t, week, 2)
	assert.Equal(t, uint(1), week[0].ID)
	assert.Equal(t, uint(2), week[1].ID)

	month := InWindow(events, WindowMonth, today)
	require.Len(t, month, 4)
	assert.Equal(t, uint(4), month[3].ID)
}

func TestGroupByCategory(t *testing.T) {
	cats := []model.Category{
		{ID: 1, Name: "Work", Color: "#6366f1"},
		{ID: 2, Name: "Personal", Color: "#a855f7"},
		{ID: 3, Name: "Health", Color: "#10b981"},
	}
	events := []model.Event{
		evt(1, 2, today, model.StatusNormal),
		evt(2, 1, today, model.StatusNormal),
		evt(3, 1, today.AddDays(1), model.StatusNormal),
	}

	groups := GroupByCategory(events, cats)
	require.Len(t, groups, 2)
	// Category order preserved, empty group dropped.
	assert.Equal(t, "Work", groups[0].Category.Name)
	assert.Len(t, groups[0].Events, 2)
	assert.Equal(t, "Personal", groups[1].Category.Name)
	for _, g := range groups {
		assert.NotEmpty(t, g.Events)
	}
}

func TestFilterByCategory(t *testing.T) {
	events := []model.Event{
		evt(1, 1, today, model.StatusNormal),
		evt(2, 2, today, model.StatusNormal),
	}
	assert.Len(t, FilterByCategory(events, 0), 2)

	only := FilterByCategory(events, 2)
	require.Len(t, only, 1)
	assert.Equal(t, uint(2), only[0].ID)
}

func TestTabViewComposition(t *testing.T) {
	cats := []model.Category{
		{ID: 1, Name: "Work", Color: "#6366f1"},
		{ID: 2, Name: "Personal", Color: "#a855f7"},
	}
	events := []model.Event{
		evt(1, 1, today.AddDays(1), model.StatusNormal),
		evt(2, 2, today.AddDays(2), model.StatusNormal),
		evt(3, 1, today.AddDays(-1), model.StatusPending),
		evt(4, 2, today.AddDays(-2), model.StatusCompleted),
	}

	// Tab bucket selected before the category filter, filter before grouping.
	groups := TabView(events, cats, TabUpcoming, 2, today)
	require.Len(t, groups, 1)
	assert.Equal(t, "Personal", groups[0].Category.Name)
	require.Len(t, groups[0].Events, 1)
	assert.Equal(t, uint(2), groups[0].Events[0].ID)

	groups = TabView(events, cats, TabInProgress, 0, today)
	require.Len(t, groups, 1)
	assert.Equal(t, "Work", groups[0].Category.Name)
	assert.Equal(t, uint(3), groups[0].Events[0].ID)

	groups = TabView(events, cats, TabCompleted, 1, today)
	assert.Empty(t, groups)
}

func TestScenarioPastNormalAfterReconcile(t *testing.T) {
	// After a load pass the stale normal event is pending: it shows in the
	// progress tab and nowhere near upcoming or the dashboard.
	e := evt(1, 1, today.AddDays(-1), model.StatusPending)
	events := []model.Event{e}

	assert.Empty(t, UpcomingTab(events))
	assert.Empty(t, DashboardEligible(events))
	split := InProgressTab(events, today)
	require.Len(t, split.Past, 1)
	assert.Equal(t, uint(1), split.Past[0].ID)
}
