package monthgrid

import (
	"fmt"
	"time"
)

// Date is a calendar day. Month is zero based like Position.
type Date struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month" yaml:"month"`
	Day   int `json:"day" yaml:"day"`
}

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m) - 1, Day: d}
}

// Position is the month containing d.
func (d Date) Position() Position {
	return Position{Year: d.Year, Month: d.Month}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month+1, d.Day)
}

// Clock supplies today's date to host views.
type Clock interface {
	Today() Date
}

// SystemClock reads the wall clock. A nil Location means time.Local.
type SystemClock struct {
	Location *time.Location
}

// Today implements Clock.
func (c SystemClock) Today() Date {
	now := time.Now()
	if c.Location != nil {
		now = now.In(c.Location)
	}
	return DateOf(now)
}

// FixedClock always reports the same day.
type FixedClock Date

// Today implements Clock.
func (c FixedClock) Today() Date { return Date(c) }
