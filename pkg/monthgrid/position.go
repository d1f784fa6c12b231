// Package monthgrid computes the layout of a single calendar month: which
// weekday it starts on, how many days it has and which cell is today.
//
// Months are zero based (0 = January .. 11 = December) and weekdays are
// Sunday based (0 = Sunday .. 6 = Saturday). Nothing in this package renders
// anything; see pkg/render for the adapters that consume a Grid.
package monthgrid

import (
	"fmt"
	"time"
)

// Position is the month a host view currently displays.
//
// Positions are values. Hosts replace their current Position with the result
// of Advance rather than changing the fields in place, which keeps Month in
// [0,11] at all times.
type Position struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month" yaml:"month"`
}

// PositionOf returns the month containing t, in t's location.
func PositionOf(t time.Time) Position {
	return Position{Year: t.Year(), Month: int(t.Month()) - 1}
}

// Advance moves p by delta months, carrying whole years into Year.
func Advance(p Position, delta int) Position {
	// Split delta first so p.Month+delta cannot overflow for huge deltas.
	m := p.Month + ((delta%12)+12)%12
	return Position{
		Year:  p.Year + floorDiv(delta, 12) + floorDiv(m, 12),
		Month: ((m % 12) + 12) % 12,
	}
}

// Next is the month after p.
func (p Position) Next() Position { return Advance(p, 1) }

// Prev is the month before p.
func (p Position) Prev() Position { return Advance(p, -1) }

// TimeMonth converts the zero based month into a time.Month.
func (p Position) TimeMonth() time.Month {
	return time.Month(p.Month + 1)
}

// MonthName is the English month name, "January" for month 0.
func (p Position) MonthName() string {
	return p.TimeMonth().String()
}

// String renders the position as "January 2006".
func (p Position) String() string {
	return fmt.Sprintf("%s %d", p.MonthName(), p.Year)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
