// Package info reports where cal's settings come from.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/termenv"

	"tableflip.dev/cal/pkg/config"
	"tableflip.dev/cal/pkg/monthgrid"
)

// Info prints the resolved configuration as a table.
type Info struct {
	Config *config.Config
	Clock  monthgrid.Clock
	Out    io.Writer
}

// Do loads the config when none was given and prints it.
func (n *Info) Do(ctx context.Context) error {
	if n.Config == nil {
		var err error
		n.Config, err = config.LoadConfig()
		if err != nil {
			return err
		}
	}
	clock := n.Clock
	if clock == nil {
		clock = monthgrid.SystemClock{}
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	env := "not set"
	if override := os.Getenv(config.EnvConfigPath); override != "" {
		env = override
	}
	file := n.Config.File
	if file == "" {
		file = "none found, using defaults"
	}

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Setting"), bold.Sprint("Value"))
	tbl.AddRow(config.EnvConfigPath, env)
	tbl.AddRow("config file", file)
	tbl.AddRow("weekstart", n.Config.WeekStart.String())
	tbl.AddRow("output", n.Config.Output)
	tbl.AddRow("addr", n.Config.Addr)
	tbl.AddRow("today", clock.Today().String())
	tbl.AddRow("color profile", profileName(termenv.EnvColorProfile()))
	tbl.RightAlign(0)

	_, err := fmt.Fprintln(out, tbl)
	return err
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "true color"
	case termenv.ANSI256:
		return "256 colors"
	case termenv.ANSI:
		return "16 colors"
	default:
		return "no color"
	}
}
