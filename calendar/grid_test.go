package calendar

import (
	"testing"
	"time"
)

func TestGrid(t *testing.T) {
	tests := []struct {
		name        string
		year        int
		month       time.Month
		wantPadding int
		wantDays    int
	}{
		{
			name:        "september 2026 starts on tuesday",
			year:        2026,
			month:       time.September,
			wantPadding: 2,
			wantDays:    30,
		},
		{
			name:        "february 2026 is not a leap month",
			year:        2026,
			month:       time.February,
			wantPadding: 0, // 2026-02-01 is a Sunday
			wantDays:    28,
		},
		{
			name:        "february 2024 is a leap month",
			year:        2024,
			month:       time.February,
			wantPadding: 4, // 2024-02-01 is a Thursday
			wantDays:    29,
		},
		{
			name:        "december 2026",
			year:        2026,
			month:       time.December,
			wantPadding: 2,
			wantDays:    31,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := Grid(tt.year, tt.month)

			padding := 0
			for _, c := range cells {
				if !c.Padding() {
					break
				}
				padding++
			}
			if padding != tt.wantPadding {
				t.Errorf("leading padding = %d, want %d", padding, tt.wantPadding)
			}
			if got := len(cells) - padding; got != tt.wantDays {
				t.Errorf("day cells = %d, want %d", got, tt.wantDays)
			}

			// Days must be 1..N ascending, each bound to the right date.
			for i, c := range cells[padding:] {
				if c.Day != i+1 {
					t.Fatalf("cell %d: day = %d, want %d", padding+i, c.Day, i+1)
				}
				if c.Date.Day() != i+1 || c.Date.Month() != tt.month || c.Date.Year() != tt.year {
					t.Fatalf("cell %d: date = %v", padding+i, c.Date)
				}
			}

			// First day cell's weekday index must equal the padding length.
			first := cells[padding]
			if int(first.Date.Weekday()) != tt.wantPadding {
				t.Errorf("weekday of day 1 = %d, want %d", first.Date.Weekday(), tt.wantPadding)
			}
		})
	}
}

func TestGridIdempotent(t *testing.T) {
	a := Grid(2026, time.March)
	b := Grid(2026, time.March)
	if len(a) != len(b) {
		t.Fatalf("len mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestMonthNavigation(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantYear  int
		wantMonth time.Month
		next      bool
	}{
		{name: "next rolls december into january", year: 2026, month: time.December, wantYear: 2027, wantMonth: time.January, next: true},
		{name: "next within year", year: 2026, month: time.April, wantYear: 2026, wantMonth: time.May, next: true},
		{name: "prev rolls january into december", year: 2026, month: time.January, wantYear: 2025, wantMonth: time.December},
		{name: "prev within year", year: 2026, month: time.July, wantYear: 2026, wantMonth: time.June},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var y int
			var m time.Month
			if tt.next {
				y, m = NextMonth(tt.year, tt.month)
			} else {
				y, m = PrevMonth(tt.year, tt.month)
			}
			if y != tt.wantYear || m != tt.wantMonth {
				t.Errorf("got (%d, %v), want (%d, %v)", y, m, tt.wantYear, tt.wantMonth)
			}
		})
	}
}

func TestMonthNavigationRoundTrip(t *testing.T) {
	for _, start := range []struct {
		year  int
		month time.Month
	}{
		{2026, time.January},
		{2026, time.June},
		{2026, time.December},
	} {
		y, m := NextMonth(PrevMonth(start.year, start.month))
		if y != start.year || m != start.month {
			t.Errorf("prev-then-next from (%d, %v) = (%d, %v)", start.year, start.month, y, m)
		}
		y, m = PrevMonth(NextMonth(start.year, start.month))
		if y != start.year || m != start.month {
			t.Errorf("next-then-prev from (%d, %v) = (%d, %v)", start.year, start.month, y, m)
		}
	}
}
