package monthgrid

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdvance_Wraps(t *testing.T) {
	tests := []struct {
		name  string
		from  Position
		delta int
		want  Position
	}{
		{"forward over year", Position{2024, 11}, 1, Position{2025, 0}},
		{"backward over year", Position{2024, 0}, -1, Position{2023, 11}},
		{"zero", Position{2024, 5}, 0, Position{2024, 5}},
		{"many forward", Position{2024, 5}, 30, Position{2026, 11}},
		{"many backward", Position{2024, 5}, -30, Position{2021, 11}},
		{"exact years backward", Position{2024, 0}, -24, Position{2022, 0}},
		{"negative years", Position{0, 0}, -1, Position{-1, 11}},
		{"into year zero", Position{-1, 11}, 1, Position{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Advance(tt.from, tt.delta)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got.Month, 0)
			assert.LessOrEqual(t, got.Month, 11)
		})
	}
}

func TestAdvance_HugeDelta(t *testing.T) {
	start := Position{Year: 2024, Month: 5}

	got := Advance(start, math.MaxInt64)
	assert.Equal(t, Position{Year: 2024 + math.MaxInt64/12 + 1, Month: 0}, got)
	assert.Greater(t, got.Year, start.Year)

	got = Advance(start, math.MinInt64)
	assert.Equal(t, Position{Year: 2024 + math.MinInt64/12 - 1, Month: 9}, got)
	assert.Less(t, got.Year, start.Year)
}

func TestAdvance_RoundTrip(t *testing.T) {
	for year := -3; year <= 3; year++ {
		for month := 0; month < 12; month++ {
			p := Position{Year: year, Month: month}
			assert.Equal(t, p, Advance(Advance(p, 1), -1))
			assert.Equal(t, p, p.Next().Prev())
			for _, d := range []int{7, 12, 25, -13} {
				assert.Equal(t, p, Advance(Advance(p, d), -d))
			}
		}
	}
}

func TestAdvance_MatchesStepping(t *testing.T) {
	start := Position{Year: 2020, Month: 3}
	stepped := start
	for i := 1; i <= 40; i++ {
		stepped = stepped.Next()
		assert.Equal(t, stepped, Advance(start, i))
	}
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "January 2024", Position{2024, 0}.String())
	assert.Equal(t, "December 1999", Position{1999, 11}.String())
	assert.Equal(t, time.June, Position{2024, 5}.TimeMonth())
}

func TestPositionOf(t *testing.T) {
	at := time.Date(2026, time.October, 19, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, Position{2026, 9}, PositionOf(at))
	assert.Equal(t, Date{2026, 9, 19}, DateOf(at))
	assert.Equal(t, "2026-10-19", DateOf(at).String())
}

func TestFixedClock(t *testing.T) {
	c := FixedClock{Year: 2024, Month: 5, Day: 15}
	assert.Equal(t, Date{2024, 5, 15}, c.Today())
	assert.Equal(t, Position{2024, 5}, c.Today().Position())
}
