package period

import (
	"fmt"
	"time"
)

// Type is a reporting granularity.
type Type string

const (
	Day     Type = "day"
	Week    Type = "week"
	Month   Type = "month"
	Quarter Type = "quarter"
	Year    Type = "year"
)

// ValidType reports whether t is a known granularity.
func ValidType(t Type) bool {
	switch t {
	case Day, Week, Month, Quarter, Year:
		return true
	}
	return false
}

// Period is a calendar-aligned date interval. Start is the first instant
// of the period and End the last (one nanosecond before the next period
// begins), so containment checks are inclusive on both sides.
type Period struct {
	Type  Type
	Start time.Time
	End   time.Time
}

// Resolve computes the period of the given granularity containing ref.
// Weeks start on Monday.
func Resolve(ref time.Time, t Type) Period {
	year, month, day := ref.Date()
	loc := ref.Location()

	var start, next time.Time
	switch t {
	case Day:
		start = time.Date(year, month, day, 0, 0, 0, 0, loc)
		next = start.AddDate(0, 0, 1)
	case Week:
		dayStart := time.Date(year, month, day, 0, 0, 0, 0, loc)
		delta := (int(ref.Weekday()) + 6) % 7 // Monday = 0
		start = dayStart.AddDate(0, 0, -delta)
		next = start.AddDate(0, 0, 7)
	case Month:
		start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
		next = start.AddDate(0, 1, 0)
	case Quarter:
		qm := time.Month((int(month)-1)/3*3 + 1)
		start = time.Date(year, qm, 1, 0, 0, 0, 0, loc)
		next = start.AddDate(0, 3, 0)
	case Year:
		start = time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		next = start.AddDate(1, 0, 0)
	default:
		// Unknown types fall back to month, the dashboard default.
		return Resolve(ref, Month)
	}

	return Period{Type: t, Start: start, End: next.Add(-time.Nanosecond)}
}

// Next returns the immediately following period of the same type.
func (p Period) Next() Period {
	return Resolve(p.End.Add(time.Nanosecond), p.Type)
}

// Contains reports whether instant t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// Label returns the display label for the period: "Jan 2" for days and
// weeks (a week is labeled by its Monday), "Mar" for months, "Q2 2024"
// for quarters and "2024" for years.
func (p Period) Label() string {
	switch p.Type {
	case Day, Week:
		return p.Start.Format("Jan 2")
	case Month:
		return p.Start.Format("Jan")
	case Quarter:
		q := (int(p.Start.Month())-1)/3 + 1
		return fmt.Sprintf("Q%d %d", q, p.Start.Year())
	case Year:
		return p.Start.Format("2006")
	}
	return p.Start.Format("2006-01-02")
}

// DaysInMonth returns the number of days in the calendar month containing t.
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
