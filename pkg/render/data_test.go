package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"tableflip.dev/cal/pkg/monthgrid"
)

type decodedDocument struct {
	Label         string `json:"label" yaml:"label"`
	WeekStart     string `json:"weekStart" yaml:"weekStart"`
	Offset        int    `json:"offset" yaml:"offset"`
	Year          int    `json:"year" yaml:"year"`
	Month         int    `json:"month" yaml:"month"`
	LeadingBlanks int    `json:"leadingBlanks" yaml:"leadingBlanks"`
	Days          []struct {
		Day     *int `json:"day" yaml:"day"`
		IsToday bool `json:"isToday" yaml:"isToday"`
	} `json:"days" yaml:"days"`
}

func TestJSONDocument(t *testing.T) {
	page := NewPage(monthgrid.Position{Year: 2024, Month: 5}, monthgrid.Date{Year: 2024, Month: 5, Day: 15}, time.Monday)

	var buf bytes.Buffer
	require.NoError(t, (&JSON{}).Render(&buf, page))

	var doc decodedDocument
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "June 2024", doc.Label)
	assert.Equal(t, "Monday", doc.WeekStart)
	assert.Equal(t, 5, doc.Offset)
	assert.Equal(t, 2024, doc.Year)
	assert.Equal(t, 5, doc.Month)
	assert.Equal(t, 6, doc.LeadingBlanks)
	require.Len(t, doc.Days, 30)
	require.NotNil(t, doc.Days[14].Day)
	assert.Equal(t, 15, *doc.Days[14].Day)
	assert.True(t, doc.Days[14].IsToday)
}

func TestYAMLDocument(t *testing.T) {
	page := NewPage(monthgrid.Position{Year: 2023, Month: 1}, monthgrid.Date{}, time.Sunday)

	var buf bytes.Buffer
	require.NoError(t, (&YAML{}).Render(&buf, page))

	var doc decodedDocument
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "February 2023", doc.Label)
	assert.Equal(t, 3, doc.LeadingBlanks)
	assert.Len(t, doc.Days, 28)
}

func TestColorPlain(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	page := NewPage(monthgrid.Position{Year: 2024, Month: 5}, monthgrid.Date{Year: 2024, Month: 5, Day: 15}, time.Sunday)

	var buf bytes.Buffer
	require.NoError(t, (&Color{}).Render(&buf, page))

	assert.Equal(t, (&Text{}).String(page)+"\n", buf.String())
	assert.Len(t, strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"), 8)
}
