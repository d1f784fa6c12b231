package monthgrid

import (
	"encoding/json"
	"time"
)

// DayCell is one cell of the month grid. A zero Day is a blank padding cell.
type DayCell struct {
	Day     int
	IsToday bool
}

// IsBlank reports whether the cell pads the grid rather than naming a day.
func (c DayCell) IsBlank() bool { return c.Day == 0 }

type cellView struct {
	Day     *int `json:"day" yaml:"day"`
	IsToday bool `json:"isToday,omitempty" yaml:"isToday,omitempty"`
}

func (c DayCell) view() cellView {
	v := cellView{IsToday: c.IsToday}
	if !c.IsBlank() {
		day := c.Day
		v.Day = &day
	}
	return v
}

// MarshalJSON encodes blank cells with a null day.
func (c DayCell) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.view())
}

// MarshalYAML encodes blank cells with a null day.
func (c DayCell) MarshalYAML() (interface{}, error) {
	return c.view(), nil
}

// Grid is the computed layout of one month.
type Grid struct {
	Position `yaml:",inline"`
	// LeadingBlanks is the Sunday based weekday of the 1st of the month.
	LeadingBlanks int       `json:"leadingBlanks" yaml:"leadingBlanks"`
	Days          []DayCell `json:"days" yaml:"days"`
}

// FirstWeekdayOf returns the weekday (0 = Sunday) of the 1st of month in
// year under the proleptic Gregorian calendar. month must be in [0,11].
func FirstWeekdayOf(year, month int) int {
	return int(time.Date(cycleYear(year), time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// DaysInMonth returns the length of month in year. It asks for day zero of
// the following month, which is the last day of this one.
func DaysInMonth(year, month int) int {
	return time.Date(cycleYear(year), time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// cycleYear maps year onto 2000..2399 with the same leap pattern and
// weekdays. The Gregorian calendar repeats every 400 years (146097 days,
// a whole number of weeks), and time.Date overflows for very large years.
func cycleYear(year int) int {
	return ((year%400)+400)%400 + 2000
}

// BuildGrid lays out pos, marking the cell that matches today.
func BuildGrid(pos Position, today Date) Grid {
	n := DaysInMonth(pos.Year, pos.Month)

	todayDay := 0
	if today.Position() == pos {
		todayDay = today.Day
	}

	days := make([]DayCell, n)
	for i := 1; i <= n; i++ {
		days[i-1] = DayCell{Day: i, IsToday: i == todayDay}
	}

	return Grid{
		Position:      pos,
		LeadingBlanks: FirstWeekdayOf(pos.Year, pos.Month),
		Days:          days,
	}
}

// Today returns the day marked as today, or zero when the month does not
// contain it.
func (g Grid) Today() int {
	for _, d := range g.Days {
		if d.IsToday {
			return d.Day
		}
	}
	return 0
}

// Cells returns the leading blanks followed by the days of the month.
func (g Grid) Cells() []DayCell {
	cells := make([]DayCell, g.LeadingBlanks, g.LeadingBlanks+len(g.Days))
	return append(cells, g.Days...)
}

// Offset is the number of blank cells before day 1 in a calendar whose first
// column is weekStart. Offset(time.Sunday) equals LeadingBlanks.
func (g Grid) Offset(weekStart time.Weekday) int {
	return (g.LeadingBlanks - int(weekStart)%7 + 7) % 7
}

// Weeks splits the grid into rows of seven cells for a calendar whose first
// column is weekStart. The final row is padded with blanks.
func (g Grid) Weeks(weekStart time.Weekday) [][]DayCell {
	offset := g.Offset(weekStart)

	total := offset + len(g.Days)
	rows := (total + 6) / 7

	weeks := make([][]DayCell, 0, rows)
	for row := 0; row < rows; row++ {
		week := make([]DayCell, 7)
		for col := 0; col < 7; col++ {
			day := row*7 + col - offset + 1
			if day < 1 || day > len(g.Days) {
				continue
			}
			week[col] = g.Days[day-1]
		}
		weeks = append(weeks, week)
	}
	return weeks
}

var weekdayLabels = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// WeekdayHeader returns the two letter weekday labels starting at weekStart.
func WeekdayHeader(weekStart time.Weekday) []string {
	labels := make([]string, 7)
	for i := range labels {
		labels[i] = weekdayLabels[(int(weekStart)+i)%7]
	}
	return labels
}
