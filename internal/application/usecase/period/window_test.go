// Package period computes the calendar time windows used by every
// aggregation query.
package period

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonth(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "mid-year month",
			year:      2024,
			month:     time.March,
			wantStart: date(2024, time.March, 1),
			wantEnd:   date(2024, time.April, 1),
		},
		{
			name:      "december rolls over to january",
			year:      2024,
			month:     time.December,
			wantStart: date(2024, time.December, 1),
			wantEnd:   date(2025, time.January, 1),
		},
		{
			name:      "february in a leap year",
			year:      2024,
			month:     time.February,
			wantStart: date(2024, time.February, 1),
			wantEnd:   date(2024, time.March, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Month(tt.year, tt.month, time.UTC)
			if !w.Start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", w.Start, tt.wantStart)
			}
			if !w.End.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", w.End, tt.wantEnd)
			}
		})
	}
}

func TestYear(t *testing.T) {
	w := Year(2024, time.UTC)
	if !w.Start.Equal(date(2024, time.January, 1)) {
		t.Errorf("start = %v, want 2024-01-01", w.Start)
	}
	if !w.End.Equal(date(2025, time.January, 1)) {
		t.Errorf("end = %v, want 2025-01-01", w.End)
	}
}

func TestWindowContains(t *testing.T) {
	w := Month(2024, time.March, time.UTC)

	t.Run("start is inclusive", func(t *testing.T) {
		if !w.Contains(date(2024, time.March, 1)) {
			t.Error("expected window to contain its start")
		}
	})

	t.Run("end is exclusive", func(t *testing.T) {
		if w.Contains(date(2024, time.April, 1)) {
			t.Error("expected window to exclude its end")
		}
	})

	t.Run("last instant before end is inside", func(t *testing.T) {
		if !w.Contains(time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC)) {
			t.Error("expected window to contain the last second of the month")
		}
	})
}

func TestResolveMonth(t *testing.T) {
	now := time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		month     string
		year      string
		wantStart time.Time
	}{
		{"explicit month and year", "3", "2024", date(2024, time.March, 1)},
		{"absent values fall back to now", "", "", date(2024, time.June, 1)},
		{"non-numeric month falls back", "march", "2024", date(2024, time.June, 1)},
		{"zero month falls back", "0", "2024", date(2024, time.June, 1)},
		{"non-numeric year falls back", "3", "abc", date(2024, time.March, 1)},
		{"month thirteen rolls into next year", "13", "2024", date(2025, time.January, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ResolveMonth(tt.month, tt.year, now)
			if !w.Start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", w.Start, tt.wantStart)
			}
			wantEnd := time.Date(tt.wantStart.Year(), tt.wantStart.Month()+1, 1, 0, 0, 0, 0, time.UTC)
			if !w.End.Equal(wantEnd) {
				t.Errorf("end = %v, want %v", w.End, wantEnd)
			}
		})
	}
}

func TestResolveYear(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	t.Run("explicit year", func(t *testing.T) {
		w := ResolveYear("2023", now)
		if !w.Start.Equal(date(2023, time.January, 1)) || !w.End.Equal(date(2024, time.January, 1)) {
			t.Errorf("window = %v..%v, want 2023", w.Start, w.End)
		}
	})

	t.Run("malformed year falls back to now", func(t *testing.T) {
		w := ResolveYear("20x3", now)
		if !w.Start.Equal(date(2024, time.January, 1)) {
			t.Errorf("start = %v, want 2024-01-01", w.Start)
		}
	})
}
