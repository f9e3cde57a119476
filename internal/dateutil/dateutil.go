package dateutil

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Layout is the canonical calendar-day form used for storage and user input.
const Layout = "2006-01-02"

// Day is a calendar day with no time-of-day component. Days are compared and
// stored at day granularity only; there are no timezone semantics.
type Day struct {
	t time.Time
}

func New(year int, month time.Month, day int) Day {
	return Day{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime truncates t to its calendar day.
func FromTime(t time.Time) Day {
	return New(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar day.
func Today() Day {
	return FromTime(time.Now())
}

// Parse reads a day in YYYY-MM-DD form.
func Parse(s string) (Day, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Day{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return FromTime(t), nil
}

func (d Day) String() string {
	return d.t.Format(Layout)
}

func (d Day) IsZero() bool {
	return d.t.IsZero()
}

func (d Day) Before(other Day) bool {
	return d.t.Before(other.t)
}

func (d Day) After(other Day) bool {
	return d.t.After(other.t)
}

func (d Day) Equal(other Day) bool {
	return d.t.Equal(other.t)
}

// Within reports whether d falls inside [start, end], inclusive on both ends.
func (d Day) Within(start, end Day) bool {
	return !d.t.Before(start.t) && !d.t.After(end.t)
}

func (d Day) AddDays(n int) Day {
	return FromTime(d.t.AddDate(0, 0, n))
}

// AddMonths shifts by whole months. The day of month is clamped to the last
// valid day of the target month, so 2024-01-31 plus one month is 2024-02-29.
func (d Day) AddMonths(n int) Day {
	year, month, day := d.t.Date()
	first := time.Date(year, month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	if max := daysInMonth(first.Month(), first.Year()); day > max {
		day = max
	}
	return New(first.Year(), first.Month(), day)
}

// AddYears shifts by whole years with the same day-of-month clamping as
// AddMonths (2024-02-29 plus one year is 2025-02-28).
func (d Day) AddYears(n int) Day {
	year, month, day := d.t.Date()
	if max := daysInMonth(month, year+n); day > max {
		day = max
	}
	return New(year+n, month, day)
}

// WeekOf returns the Monday-to-Sunday window containing d.
func WeekOf(d Day) (Day, Day) {
	offset := int(d.t.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	start := d.AddDays(-offset)
	return start, start.AddDays(6)
}

// MonthOf returns the first-to-last day window of d's month.
func MonthOf(d Day) (Day, Day) {
	year, month, _ := d.t.Date()
	return New(year, month, 1), New(year, month, daysInMonth(month, year))
}

func daysInMonth(month time.Month, year int) int {
	// Move to the next month, roll back a day.
	firstOfNextMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstOfNextMonth.AddDate(0, 0, -1).Day()
}

// Value stores the day as its YYYY-MM-DD text form.
func (d Day) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan restores a day from its stored text form.
func (d *Day) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Day{}
		return nil
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := Parse(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case time.Time:
		*d = FromTime(v)
		return nil
	default:
		return fmt.Errorf("scan day: unsupported type %T", value)
	}
}

// GormDataType maps Day onto a text column.
func (Day) GormDataType() string {
	return "text"
}
