package commands

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/cal/pkg/commands/options"
	teaui "tableflip.dev/cal/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	wo := &options.WeekStartOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Browse months in the terminal.",
		Long: `Open a full screen calendar. Use left/right (or h/l, p/n, </>) to change
month, t to jump back to today, ? for help and q to quit.`,
		Example: `
cal ui
cal ui --month 2025-01 --week-start monday
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if !isTerminal(os.Stdout.Fd()) {
				return errors.New("cal ui needs a terminal, try cal show")
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			pos, err := mo.Position(clock.Today().Position())
			if err != nil {
				return err
			}
			return teaui.Run(pos, clock, wo.Resolve(cfg))
		},
	}

	options.AddMonthArg(cmd, mo)
	options.AddWeekStartArg(cmd, wo)

	topLevel.AddCommand(cmd)
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
