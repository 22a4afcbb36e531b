// Package period computes the calendar time windows used by every
// aggregation query.
package period

import (
	"strconv"
	"time"
)

// Window is a calendar date range. Start is inclusive and End is exclusive:
// End is the first instant of the following period.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Month returns the window for the given 1-indexed calendar month.
// time.Date normalizes out-of-range months, so December rolls over into
// January of the next year.
func Month(year int, month time.Month, loc *time.Location) Window {
	return Window{
		Start: time.Date(year, month, 1, 0, 0, 0, 0, loc),
		End:   time.Date(year, month+1, 1, 0, 0, 0, 0, loc),
	}
}

// Year returns the window covering the given calendar year.
func Year(year int, loc *time.Location) Window {
	return Window{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, loc),
		End:   time.Date(year+1, time.January, 1, 0, 0, 0, 0, loc),
	}
}

// CurrentMonth returns the window of the month containing now.
func CurrentMonth(now time.Time) Window {
	return Month(now.Year(), now.Month(), now.Location())
}

// ResolveMonth resolves optional month/year query values (1-indexed month)
// into a month window. Absent or non-numeric values fall back to now's
// calendar position. It never fails.
func ResolveMonth(monthStr, yearStr string, now time.Time) Window {
	year := atoiOr(yearStr, now.Year())
	month := atoiOr(monthStr, int(now.Month()))
	return Month(year, time.Month(month), now.Location())
}

// ResolveYear resolves an optional year query value into a year window,
// falling back to now's year.
func ResolveYear(yearStr string, now time.Time) Window {
	return Year(atoiOr(yearStr, now.Year()), now.Location())
}

// atoiOr parses s as a positive integer, returning fallback for empty,
// malformed, or non-positive input.
func atoiOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
