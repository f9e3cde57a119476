// Package view derives the filtered, sorted, grouped projections of the
// event set that presentation renders. Everything here is a pure function
// of its inputs; nothing mutates the store or the given slices.
package view

import (
	"sort"

	"vento/internal/dateutil"
	"vento/internal/model"
)

// Tab identifies one of the three status buckets shown to the user.
type Tab string

const (
	TabUpcoming   Tab = "upcoming"
	TabInProgress Tab = "progress"
	TabCompleted  Tab = "done"
)

// Window selects the dashboard interval toggle.
type Window string

const (
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

// Group is one category section of a grouped listing.
type Group struct {
	Category model.Category
	Events   []model.Event
}

// ProgressSplit is the in-progress tab split by date relative to today.
// Both halves are still pending; the split is display grouping only.
type ProgressSplit struct {
	Upcoming []model.Event
	Past     []model.Event
}

// SortedByDate returns the events ascending by date. Equal dates keep id
// order, which is insertion order.
func SortedByDate(events []model.Event) []model.Event {
	out := make([]model.Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].EventDate.Equal(out[j].EventDate) {
			return out[i].EventDate.Before(out[j].EventDate)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// UpcomingTab holds normal events plus deactivated ones, which stay visible
// there in a muted treatment.
func UpcomingTab(events []model.Event) []model.Event {
	return filter(events, func(e model.Event) bool {
		return e.Status == model.StatusNormal || e.Status == model.StatusDeactivated
	})
}

// InProgressTab holds pending events, split by date against today.
func InProgressTab(events []model.Event, today dateutil.Day) ProgressSplit {
	var split ProgressSplit
	for _, e := range events {
		if e.Status != model.StatusPending {
			continue
		}
		if e.EventDate.Before(today) {
			split.Past = append(split.Past, e)
		} else {
			split.Upcoming = append(split.Upcoming, e)
		}
	}
	return split
}

// CompletedTab holds completed events.
func CompletedTab(events []model.Event) []model.Event {
	return filter(events, func(e model.Event) bool {
		return e.Status == model.StatusCompleted
	})
}

// DashboardEligible holds the events that feed the headline widgets:
// normal only. Pending, completed and deactivated are all excluded.
func DashboardEligible(events []model.Event) []model.Event {
	return filter(events, func(e model.Event) bool {
		return e.Status == model.StatusNormal
	})
}

// NextUpcoming returns the earliest dashboard-eligible event dated today or
// later. ok is false when there is none.
func NextUpcoming(events []model.Event, today dateutil.Day) (model.Event, bool) {
	for _, e := range SortedByDate(DashboardEligible(events)) {
		if !e.EventDate.Before(today) {
			return e, true
		}
	}
	return model.Event{}, false
}

// InWindow returns the dashboard-eligible events inside the current week
// (Monday to Sunday) or month, by the window toggle.
func InWindow(events []model.Event, w Window, today dateutil.Day) []model.Event {
	var start, end dateutil.Day
	switch w {
	case WindowWeek:
		start, end = dateutil.WeekOf(today)
	default:
		start, end = dateutil.MonthOf(today)
	}
	return filter(DashboardEligible(events), func(e model.Event) bool {
		return e.EventDate.Within(start, end)
	})
}

// GroupByCategory partitions events by category, preserving category order
// and dropping categories with no matching events.
func GroupByCategory(events []model.Event, categories []model.Category) []Group {
	var groups []Group
	for _, cat := range categories {
		matched := filter(events, func(e model.Event) bool {
			return e.CategoryID == cat.ID
		})
		if len(matched) == 0 {
			continue
		}
		groups = append(groups, Group{Category: cat, Events: matched})
	}
	return groups
}

// FilterByCategory is the identity when id is zero, otherwise an exact
// category match.
func FilterByCategory(events []model.Event, id uint) []model.Event {
	if id == 0 {
		return events
	}
	return filter(events, func(e model.Event) bool {
		return e.CategoryID == id
	})
}

// TabView composes the current tab listing: tab bucket first, then the
// category filter, then grouping. The order matters.
func TabView(events []model.Event, categories []model.Category, tab Tab, categoryFilter uint, today dateutil.Day) []Group {
	var bucket []model.Event
	switch tab {
	case TabInProgress:
		split := InProgressTab(events, today)
		bucket = append(append(bucket, split.Upcoming...), split.Past...)
		bucket = SortedByDate(bucket)
	case TabCompleted:
		bucket = CompletedTab(events)
	default:
		bucket = UpcomingTab(events)
	}
	return GroupByCategory(FilterByCategory(bucket, categoryFilter), categories)
}

func filter(events []model.Event, keep func(model.Event) bool) []model.Event {
	var out []model.Event
	for _, e := range events {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
