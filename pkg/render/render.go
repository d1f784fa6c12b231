// Package render turns a computed month grid into something a person or a
// program can read. Renderers never do calendar math; they only lay out the
// cells of a monthgrid.Grid.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"tableflip.dev/cal/pkg/monthgrid"
)

// Page is everything a renderer needs for one month.
type Page struct {
	Grid      monthgrid.Grid
	WeekStart time.Weekday

	// PrevURL and NextURL link to the adjacent months. Only the HTML
	// renderer uses them; empty values hide the controls.
	PrevURL string
	NextURL string
}

// NewPage builds the grid for pos and wraps it in a Page.
func NewPage(pos monthgrid.Position, today monthgrid.Date, weekStart time.Weekday) Page {
	return Page{
		Grid:      monthgrid.BuildGrid(pos, today),
		WeekStart: weekStart,
	}
}

// Title is the "January 2006" label of the page.
func (p Page) Title() string {
	return p.Grid.Position.String()
}

// Renderer writes a Page to w.
type Renderer interface {
	Render(w io.Writer, page Page) error
}

// Format names a renderer.
type Format string

const (
	FormatText   Format = "text"
	FormatStyled Format = "styled"
	FormatColor  Format = "color"
	FormatHTML   Format = "html"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
)

// Formats lists the accepted formats in display order.
func Formats() []Format {
	return []Format{FormatText, FormatStyled, FormatColor, FormatHTML, FormatJSON, FormatYAML}
}

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatText, nil
	}
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	names := make([]string, 0, len(Formats()))
	for _, known := range Formats() {
		names = append(names, string(known))
	}
	return "", fmt.Errorf("unknown output format %q (expected one of %s)", s, strings.Join(names, ", "))
}

// New returns the default renderer for format.
func New(format Format) (Renderer, error) {
	switch format {
	case "", FormatText:
		return &Text{}, nil
	case FormatStyled:
		styles := DefaultStyles()
		return &Text{Styles: &styles}, nil
	case FormatColor:
		return &Color{}, nil
	case FormatHTML:
		return NewHTML(false)
	case FormatJSON:
		return &JSON{Indent: "  "}, nil
	case FormatYAML:
		return &YAML{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
