package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/cal/pkg/monthgrid"
)

// Color prints a month with ANSI attributes from fatih/color. It honours
// color.NoColor, so redirected output stays plain.
type Color struct{}

// Render implements Renderer.
func (c *Color) Render(w io.Writer, page Page) error {
	tf := color.New(color.FgWhite, color.Italic)
	hf := color.New(color.Faint, color.FgWhite, color.Underline)
	l1 := color.New(color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite, color.Underline)

	title := page.Title()
	mid := (weekWidth - len(title)) / 2
	if mid < 0 {
		mid = 0
	}
	if _, err := fmt.Fprint(w, strings.Repeat(" ", mid)); err != nil {
		return err
	}
	if _, err := tf.Fprintln(w, title); err != nil {
		return err
	}
	if _, err := hf.Fprintln(w, strings.Join(monthgrid.WeekdayHeader(page.WeekStart), " ")); err != nil {
		return err
	}

	for _, week := range page.Grid.Weeks(page.WeekStart) {
		// Pad out the blanks, but stop at the last day of the month.
		last := len(week)
		for last > 0 && week[last-1].IsBlank() {
			last--
		}
		for i, cell := range week[:last] {
			if i > 0 {
				if _, err := fmt.Fprint(w, " "); err != nil {
					return err
				}
			}
			var err error
			switch {
			case cell.IsBlank():
				_, err = fmt.Fprint(w, "  ")
			case cell.IsToday:
				_, err = l2.Fprintf(w, "%2d", cell.Day)
			default:
				_, err = l1.Fprintf(w, "%2d", cell.Day)
			}
			if err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
