package timeutil

import (
	"testing"

	"tableflip.dev/cal/pkg/monthgrid"
)

func TestParseMonthDefault(t *testing.T) {
	now := monthgrid.Position{Year: 2026, Month: 9}
	got, err := ParseMonth("  ", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != now {
		t.Fatalf("expected %v, got %v", now, got)
	}
}

func TestParseMonthForms(t *testing.T) {
	now := monthgrid.Position{Year: 2026, Month: 11}

	tests := []struct {
		input string
		want  monthgrid.Position
	}{
		{"today", now},
		{"Next", monthgrid.Position{Year: 2027, Month: 0}},
		{"prev", monthgrid.Position{Year: 2026, Month: 10}},
		{"+1", monthgrid.Position{Year: 2027, Month: 0}},
		{"-12", monthgrid.Position{Year: 2025, Month: 11}},
		{"+2y", monthgrid.Position{Year: 2028, Month: 11}},
		{"- 3 months", monthgrid.Position{Year: 2026, Month: 8}},
		{"March 2024", monthgrid.Position{Year: 2024, Month: 2}},
		{"feb 2000", monthgrid.Position{Year: 2000, Month: 1}},
		{"2024-06", monthgrid.Position{Year: 2024, Month: 5}},
		{"2024-6", monthgrid.Position{Year: 2024, Month: 5}},
		{"7/1999", monthgrid.Position{Year: 1999, Month: 6}},
		{"July", monthgrid.Position{Year: 2026, Month: 6}},
		{"sep", monthgrid.Position{Year: 2026, Month: 8}},
	}

	for _, tt := range tests {
		got, err := ParseMonth(tt.input, now)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("%q: expected %v, got %v", tt.input, tt.want, got)
		}
	}
}

func TestParseMonthInvalid(t *testing.T) {
	for _, input := range []string{"noop", "2024-13", "+x", "Smarch 2024"} {
		if _, err := ParseMonth(input, monthgrid.Position{Year: 2026}); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}
