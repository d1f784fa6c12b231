package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/cal/pkg/monthgrid"
)

const weekWidth = len("Su Mo Tu We Th Fr Sa")

// Styles controls the styling of the terminal calendar.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Blank  lipgloss.Style
	Day    lipgloss.Style
	Today  lipgloss.Style
}

// DefaultStyles returns the styling used for interactive terminals.
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true),
		Header: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		Blank:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Day:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Today:  lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
	}
}

// Text renders a month as a block of text, one line per week. Without
// Styles the output is plain and today is not marked.
type Text struct {
	Styles *Styles
}

// Render implements Renderer.
func (r *Text) Render(w io.Writer, page Page) error {
	_, err := io.WriteString(w, r.String(page)+"\n")
	return err
}

// String renders the page without a trailing newline.
func (r *Text) String(page Page) string {
	lines := []string{r.style(r.titleStyle(), center(page.Title(), weekWidth))}
	lines = append(lines, r.style(r.headerStyle(), strings.Join(monthgrid.WeekdayHeader(page.WeekStart), " ")))

	for _, week := range page.Grid.Weeks(page.WeekStart) {
		cells := make([]string, 0, len(week))
		for _, cell := range week {
			cells = append(cells, r.cell(cell))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, " "), " "))
	}
	return strings.Join(lines, "\n")
}

func (r *Text) cell(c monthgrid.DayCell) string {
	if r.Styles == nil {
		if c.IsBlank() {
			return "  "
		}
		return fmt.Sprintf("%2d", c.Day)
	}
	if c.IsBlank() {
		return r.Styles.Blank.Render("  ")
	}
	style := r.Styles.Day
	if c.IsToday {
		style = r.Styles.Today.Inherit(style)
	}
	return style.Render(fmt.Sprintf("%2d", c.Day))
}

func (r *Text) titleStyle() *lipgloss.Style {
	if r.Styles == nil {
		return nil
	}
	return &r.Styles.Title
}

func (r *Text) headerStyle() *lipgloss.Style {
	if r.Styles == nil {
		return nil
	}
	return &r.Styles.Header
}

func (r *Text) style(s *lipgloss.Style, text string) string {
	if s == nil {
		return text
	}
	// Keep the centering padding outside the style so it is never
	// underlined or coloured.
	trimmed := strings.TrimLeft(text, " ")
	return text[:len(text)-len(trimmed)] + s.Render(trimmed)
}

// center pads text on the left so it sits in the middle of width columns.
func center(text string, width int) string {
	if len(text) >= width {
		return text
	}
	return strings.Repeat(" ", (width-len(text))/2) + text
}
