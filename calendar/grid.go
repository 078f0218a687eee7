// File: calendar/grid.go
package calendar

import "time"

// Cell is one position in a month grid: either padding before the first
// day of the month, or a concrete calendar date.
type Cell struct {
	Day  int       `json:"day"`           // 1-based day of month; 0 for padding
	Date time.Time `json:"date,omitzero"` // midnight local; zero for padding
}

// Padding reports whether the cell is a leading placeholder.
func (c Cell) Padding() bool { return c.Day == 0 }

// Grid builds the month view for the given year and month: one padding
// cell per weekday preceding day 1 (Sunday = 0), then one cell per day
// of the month in ascending order. No trailing padding is appended.
func Grid(year int, month time.Month) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]Cell, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, Cell{})
	}
	for d := 1; d <= daysInMonth; d++ {
		cells = append(cells, Cell{
			Day:  d,
			Date: time.Date(year, month, d, 0, 0, 0, 0, time.Local),
		})
	}
	return cells
}

// NextMonth advances one month, rolling December over into January of
// the following year.
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// PrevMonth steps back one month, rolling January over into December of
// the preceding year.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}
