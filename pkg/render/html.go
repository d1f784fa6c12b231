package render

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"tableflip.dev/cal/pkg/monthgrid"
)

//go:embed templates/*.gohtml
var templateFiles embed.FS

// HTML renders the calendar widget markup. With Document set the widget is
// wrapped in a standalone page.
type HTML struct {
	Document bool

	tmpl *template.Template
}

// NewHTML parses the embedded templates.
func NewHTML(document bool) (*HTML, error) {
	tmpl, err := template.New("base").ParseFS(templateFiles, "templates/*.gohtml")
	if err != nil {
		return nil, err
	}
	return &HTML{Document: document, tmpl: tmpl}, nil
}

type htmlView struct {
	Title   string
	PrevURL string
	NextURL string
	Header  []string
	Cells   []monthgrid.DayCell
}

func newHTMLView(page Page) htmlView {
	offset := page.Grid.Offset(page.WeekStart)
	cells := make([]monthgrid.DayCell, offset, offset+len(page.Grid.Days))
	cells = append(cells, page.Grid.Days...)

	return htmlView{
		Title:   page.Title(),
		PrevURL: page.PrevURL,
		NextURL: page.NextURL,
		Header:  monthgrid.WeekdayHeader(page.WeekStart),
		Cells:   cells,
	}
}

// Render implements Renderer. The template is executed into a buffer first so
// a failure never leaves half a page on w.
func (r *HTML) Render(w io.Writer, page Page) error {
	name := "month"
	if r.Document {
		name = "page"
	}

	buf := new(bytes.Buffer)
	if err := r.tmpl.ExecuteTemplate(buf, name, newHTMLView(page)); err != nil {
		return err
	}

	_, err := buf.WriteTo(w)
	return err
}
