// Package timeutil parses the month expressions accepted on the command line.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/cal/pkg/monthgrid"
)

var (
	offsetPattern = regexp.MustCompile(`^([+-])\s*(\d+)\s*(m|mo|month|months|y|yr|year|years)?$`)
	keywordMap    = map[string]int{
		"today":    0,
		"now":      0,
		"this":     0,
		"current":  0,
		"next":     1,
		"prev":     -1,
		"previous": -1,
		"last":     -1,
	}
	layouts = []string{
		"January 2006",
		"Jan 2006",
		"2006-01",
		"2006-1",
		"01/2006",
		"1/2006",
	}
	nameLayouts = []string{
		"January",
		"Jan",
	}
)

// ParseMonth resolves a month expression relative to now. Accepted forms are
// keywords ("today", "next", "prev"), offsets ("+3", "-1", "+2y"), absolute
// months ("March 2026", "Mar 2026", "2026-03", "3/2026") and a bare month
// name, which is taken in now's year. An empty input means now.
func ParseMonth(input string, now monthgrid.Position) (monthgrid.Position, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return now, nil
	}

	lower := strings.ToLower(trimmed)
	if delta, ok := keywordMap[lower]; ok {
		return monthgrid.Advance(now, delta), nil
	}

	if matches := offsetPattern.FindStringSubmatch(lower); matches != nil {
		value, err := strconv.Atoi(matches[2])
		if err != nil {
			return now, fmt.Errorf("invalid month offset %q: %w", trimmed, err)
		}
		if matches[1] == "-" {
			value = -value
		}
		if strings.HasPrefix(matches[3], "y") {
			value *= 12
		}
		return monthgrid.Advance(now, value), nil
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return monthgrid.PositionOf(t), nil
		}
	}

	for _, layout := range nameLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return monthgrid.Position{Year: now.Year, Month: int(t.Month()) - 1}, nil
		}
	}

	return now, fmt.Errorf("unrecognized month %q", trimmed)
}

