package mcp

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/cal/pkg/config"
	"tableflip.dev/cal/pkg/monthgrid"
	"tableflip.dev/cal/pkg/render"
)

// Service answers the calendar queries shared by the MCP tools and resources.
type Service struct {
	Clock     monthgrid.Clock
	WeekStart time.Weekday
}

// TodayDTO describes the current day and the month that contains it.
type TodayDTO struct {
	Date  monthgrid.Date  `json:"date"`
	ISO   string          `json:"iso"`
	Month render.Document `json:"month"`
}

// NewService builds a service reading today from clock.
func NewService(clock monthgrid.Clock, weekStart time.Weekday) *Service {
	if clock == nil {
		clock = monthgrid.SystemClock{}
	}
	return &Service{Clock: clock, WeekStart: weekStart}
}

// MonthGrid returns the grid for year and month. Months outside 0..11 are
// carried into the year. An empty weekStart uses the service default.
func (s *Service) MonthGrid(ctx context.Context, year, month int, weekStart string) (*render.Document, error) {
	return s.AdvanceMonth(ctx, year, month, 0, weekStart)
}

// AdvanceMonth returns the grid delta months away from year and month.
func (s *Service) AdvanceMonth(ctx context.Context, year, month, delta int, weekStart string) (*render.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ws, err := s.weekStart(weekStart)
	if err != nil {
		return nil, err
	}
	pos := monthgrid.Advance(monthgrid.Position{Year: year}, month+delta)
	if pos.Year < 1 {
		return nil, errors.New("year must be 1 or later")
	}
	doc := render.NewDocument(render.NewPage(pos, s.Clock.Today(), ws))
	return &doc, nil
}

// Today reports the current date with its month grid.
func (s *Service) Today(ctx context.Context) (*TodayDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	today := s.Clock.Today()
	return &TodayDTO{
		Date:  today,
		ISO:   today.String(),
		Month: render.NewDocument(render.NewPage(today.Position(), today, s.WeekStart)),
	}, nil
}

func (s *Service) weekStart(value string) (time.Weekday, error) {
	if value == "" {
		return s.WeekStart, nil
	}
	return config.ParseWeekday(value)
}
