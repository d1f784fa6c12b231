// Package theme centralizes Lip Gloss styles for the Bubble Tea calendar.
package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/cal/pkg/render"
)

// Theme groups the styles of the interactive calendar.
type Theme struct {
	Calendar render.Styles
	Panel    PanelTheme
	Footer   FooterTheme
}

// PanelTheme styles the frame drawn around the month.
type PanelTheme struct {
	Frame lipgloss.Style
}

// FooterTheme groups styles used below the month.
type FooterTheme struct {
	Status lipgloss.Style
	Help   lipgloss.Style
}

// Accent is the highlight colour of the default theme.
const Accent = "#5f5fff"

// Default returns the built-in theme. The frame uses a muted blend of the
// accent so the highlighted day stands out against it.
func Default() Theme {
	return Theme{
		Calendar: render.DefaultStyles(),
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(Muted(Accent, 0.4))).
				Padding(0, 1),
		},
		Footer: FooterTheme{
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
	}
}

// Muted blends hex toward mid grey by amount (0 keeps it, 1 is grey) in
// the Lab colour space. Invalid input is returned unchanged.
func Muted(hex string, amount float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	grey := colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	return c.BlendLab(grey, amount).Clamped().Hex()
}
