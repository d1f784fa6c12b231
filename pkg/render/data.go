package render

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"tableflip.dev/cal/pkg/monthgrid"
)

// Document is the machine readable form of a Page.
type Document struct {
	Label     string `json:"label" yaml:"label"`
	WeekStart string `json:"weekStart" yaml:"weekStart"`
	Offset    int    `json:"offset" yaml:"offset"`

	monthgrid.Grid `yaml:",inline"`
}

// NewDocument describes page for the data renderers.
func NewDocument(page Page) Document {
	return Document{
		Label:     page.Title(),
		WeekStart: page.WeekStart.String(),
		Offset:    page.Grid.Offset(page.WeekStart),
		Grid:      page.Grid,
	}
}

// JSON writes the page as a JSON document.
type JSON struct {
	Indent string
}

// Render implements Renderer.
func (r *JSON) Render(w io.Writer, page Page) error {
	enc := json.NewEncoder(w)
	if r.Indent != "" {
		enc.SetIndent("", r.Indent)
	}
	return enc.Encode(NewDocument(page))
}

// YAML writes the page as a YAML document.
type YAML struct{}

// Render implements Renderer.
func (r *YAML) Render(w io.Writer, page Page) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(page)); err != nil {
		return err
	}
	return enc.Close()
}
