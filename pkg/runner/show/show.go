// Package show prints a single month and exits.
package show

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"tableflip.dev/cal/pkg/monthgrid"
	"tableflip.dev/cal/pkg/render"
)

// Show renders one month with the selected renderer.
type Show struct {
	Position  monthgrid.Position
	Clock     monthgrid.Clock
	Renderer  render.Renderer
	WeekStart time.Weekday
	Out       io.Writer
}

// Do builds the grid for the position and writes it out.
func (s *Show) Do(ctx context.Context) error {
	if s.Renderer == nil {
		return errors.New("can not show, no renderer")
	}

	clock := s.Clock
	if clock == nil {
		clock = monthgrid.SystemClock{}
	}
	out := s.Out
	if out == nil {
		out = os.Stdout
	}

	page := render.NewPage(s.Position, clock.Today(), s.WeekStart)
	return s.Renderer.Render(out, page)
}
