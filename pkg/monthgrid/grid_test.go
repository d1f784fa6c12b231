package monthgrid

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDaysInMonth_LeapYears(t *testing.T) {
	tests := []struct {
		year, month int
		want        int
	}{
		{2024, 1, 29},
		{2023, 1, 28},
		{2000, 1, 29},
		{1900, 1, 28},
		{2024, 0, 31},
		{2024, 3, 30},
		{2024, 11, 31},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DaysInMonth(tt.year, tt.month), "DaysInMonth(%d, %d)", tt.year, tt.month)
	}
}

func TestFirstWeekdayOf(t *testing.T) {
	tests := []struct {
		year, month int
		want        time.Weekday
	}{
		{2024, 5, time.Saturday},
		{2024, 6, time.Monday},
		{2024, 8, time.Sunday},
		{2000, 0, time.Saturday},
		{1900, 0, time.Monday},
		{1, 0, time.Monday},
	}

	for _, tt := range tests {
		assert.Equal(t, int(tt.want), FirstWeekdayOf(tt.year, tt.month), "FirstWeekdayOf(%d, %d)", tt.year, tt.month)
	}
}

func TestBuildGrid_Bounds(t *testing.T) {
	for year := 1899; year <= 2101; year++ {
		for month := 0; month < 12; month++ {
			g := BuildGrid(Position{Year: year, Month: month}, Date{})
			if g.LeadingBlanks < 0 || g.LeadingBlanks > 6 {
				t.Fatalf("%d-%d: leading blanks %d out of range", year, month, g.LeadingBlanks)
			}
			if n := len(g.Days); n < 28 || n > 31 {
				t.Fatalf("%d-%d: %d days out of range", year, month, n)
			}
			for i, d := range g.Days {
				if d.Day != i+1 {
					t.Fatalf("%d-%d: cell %d has day %d", year, month, i, d.Day)
				}
			}
		}
	}
}

func TestBuildGrid_Today(t *testing.T) {
	today := Date{Year: 2024, Month: 5, Day: 15}

	g := BuildGrid(Position{Year: 2024, Month: 5}, today)
	marked := 0
	for _, d := range g.Days {
		if d.IsToday {
			marked++
			assert.Equal(t, 15, d.Day)
		}
	}
	assert.Equal(t, 1, marked)
	assert.Equal(t, 15, g.Today())

	for _, pos := range []Position{{2024, 6}, {2023, 5}, {2025, 5}} {
		g := BuildGrid(pos, today)
		for _, d := range g.Days {
			require.False(t, d.IsToday, "%s marks day %d as today", pos, d.Day)
		}
		assert.Zero(t, g.Today())
	}
}

func TestBuildGrid_FarYears(t *testing.T) {
	for _, year := range []int{-4000, -1, 0, 9999, 100000} {
		g := BuildGrid(Position{Year: year, Month: 1}, Date{})
		assert.Contains(t, []int{28, 29}, len(g.Days), "year %d", year)
	}
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func TestBuildGrid_HugeYears(t *testing.T) {
	years := []int{
		1 << 33, 1 << 40, 1 << 50, -(1 << 40), -(1 << 50),
		292277026596, math.MaxInt64 / 12, math.MinInt64 / 12,
		math.MaxInt64, math.MinInt64,
	}
	for _, year := range years {
		want := 28
		if isLeap(year) {
			want = 29
		}
		assert.Equal(t, want, DaysInMonth(year, 1), "february of %d", year)

		for month := 0; month < 12; month++ {
			g := BuildGrid(Position{Year: year, Month: month}, Date{})
			require.GreaterOrEqual(t, len(g.Days), 28, "year %d month %d", year, month)
			require.LessOrEqual(t, len(g.Days), 31, "year %d month %d", year, month)
			require.GreaterOrEqual(t, g.LeadingBlanks, 0, "year %d month %d", year, month)
			require.LessOrEqual(t, g.LeadingBlanks, 6, "year %d month %d", year, month)
		}
	}
}

func TestFirstWeekdayOf_RepeatsEvery400Years(t *testing.T) {
	for _, year := range []int{1600, 1900, 2024, 2100} {
		for month := 0; month < 12; month++ {
			want := FirstWeekdayOf(year, month)
			for _, k := range []int{1, -1, 1 << 30, -(1 << 30)} {
				assert.Equal(t, want, FirstWeekdayOf(year+400*k, month), "%d+400*%d month %d", year, k, month)
			}
		}
	}
}

func TestGrid_Cells(t *testing.T) {
	g := BuildGrid(Position{Year: 2024, Month: 5}, Date{})
	cells := g.Cells()

	require.Len(t, cells, 6+30)
	for _, c := range cells[:6] {
		assert.True(t, c.IsBlank())
	}
	assert.Equal(t, 1, cells[6].Day)
	assert.Equal(t, 30, cells[len(cells)-1].Day)
}

func TestGrid_Weeks(t *testing.T) {
	g := BuildGrid(Position{Year: 2024, Month: 5}, Date{})

	sunday := g.Weeks(time.Sunday)
	require.Len(t, sunday, 6)
	assert.Equal(t, 1, sunday[0][6].Day)
	assert.Equal(t, 30, sunday[5][0].Day)

	monday := g.Weeks(time.Monday)
	require.Len(t, monday, 5)
	assert.Equal(t, 1, monday[0][5].Day)
	assert.Equal(t, 30, monday[4][6].Day)

	// February 2015 starts on a Sunday and fills exactly four rows.
	feb := BuildGrid(Position{Year: 2015, Month: 1}, Date{})
	assert.Len(t, feb.Weeks(time.Sunday), 4)
}

func TestGrid_WeeksCoverEveryDayOnce(t *testing.T) {
	for month := 0; month < 12; month++ {
		g := BuildGrid(Position{Year: 2026, Month: month}, Date{})
		for ws := time.Sunday; ws <= time.Saturday; ws++ {
			seen := make(map[int]int)
			for _, week := range g.Weeks(ws) {
				require.Len(t, week, 7)
				for _, c := range week {
					if !c.IsBlank() {
						seen[c.Day]++
					}
				}
			}
			require.Len(t, seen, len(g.Days), "month %d week start %s", month, ws)
			for day, n := range seen {
				require.Equal(t, 1, n, "day %d repeated", day)
			}
		}
	}
}

func TestWeekdayHeader(t *testing.T) {
	assert.Equal(t, []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}, WeekdayHeader(time.Sunday))
	assert.Equal(t, []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}, WeekdayHeader(time.Monday))
}

func TestDayCell_Encoding(t *testing.T) {
	b, err := json.Marshal([]DayCell{{}, {Day: 3, IsToday: true}, {Day: 4}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"day":null},{"day":3,"isToday":true},{"day":4}]`, string(b))

	g := BuildGrid(Position{Year: 2024, Month: 1}, Date{})
	out, err := yaml.Marshal(g)
	require.NoError(t, err)

	var decoded struct {
		Year          int `yaml:"year"`
		Month         int `yaml:"month"`
		LeadingBlanks int `yaml:"leadingBlanks"`
		Days          []struct {
			Day int `yaml:"day"`
		} `yaml:"days"`
	}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, 2024, decoded.Year)
	assert.Equal(t, 1, decoded.Month)
	assert.Equal(t, 4, decoded.LeadingBlanks)
	assert.Len(t, decoded.Days, 29)
}

func TestGrid_Offset(t *testing.T) {
	g := BuildGrid(Position{Year: 2024, Month: 8}, Date{})
	assert.Equal(t, g.LeadingBlanks, g.Offset(time.Sunday))
	assert.Equal(t, 0, g.Offset(time.Sunday))
	assert.Equal(t, 6, g.Offset(time.Monday))
	assert.Equal(t, 1, g.Offset(time.Saturday))
}
