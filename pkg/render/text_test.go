package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/cal/pkg/monthgrid"
)

func TestTextGolden(t *testing.T) {
	tests := []struct {
		name      string
		pos       monthgrid.Position
		weekStart time.Weekday
	}{
		{"june_2024_sunday", monthgrid.Position{Year: 2024, Month: 5}, time.Sunday},
		{"february_2024_monday", monthgrid.Position{Year: 2024, Month: 1}, time.Monday},
	}

	g := goldie.New(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewPage(tt.pos, monthgrid.Date{Year: 2024, Month: 5, Day: 15}, tt.weekStart)

			var buf bytes.Buffer
			require.NoError(t, (&Text{}).Render(&buf, page))
			g.Assert(t, tt.name, buf.Bytes())
		})
	}
}

func TestTextStyledKeepsLayout(t *testing.T) {
	styles := DefaultStyles()
	page := NewPage(monthgrid.Position{Year: 2024, Month: 5}, monthgrid.Date{Year: 2024, Month: 5, Day: 15}, time.Sunday)

	plain := (&Text{}).String(page)
	styled := (&Text{Styles: &styles}).String(page)

	assert.Equal(t, strings.Count(plain, "\n"), strings.Count(styled, "\n"))
	assert.Contains(t, styled, "June 2024")
	assert.Contains(t, styled, "15")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	f, err = ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("pdf")
	require.Error(t, err)
}

func TestNewCoversEveryFormat(t *testing.T) {
	page := NewPage(monthgrid.Position{Year: 2026, Month: 9}, monthgrid.Date{Year: 2026, Month: 9, Day: 19}, time.Sunday)
	for _, f := range Formats() {
		r, err := New(f)
		require.NoError(t, err, f)

		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, page), f)
		assert.Contains(t, buf.String(), "2026", f)
	}

	_, err := New("pdf")
	require.Error(t, err)
}
