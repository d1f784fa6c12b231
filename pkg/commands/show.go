package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/cal/pkg/commands/options"
	"tableflip.dev/cal/pkg/runner/show"
	"tableflip.dev/cal/pkg/snake"
)

func addShow(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	wo := &options.WeekStartOptions{}
	oo := &options.OutputOptions{}
	io := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "show [month]",
		Short: "Print a month as a calendar grid.",
		Example: `
cal show
cal show next
cal show --month "February 2024" --week-start monday
cal show -m 2024-06 -o json
cal show -i
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			oo.Out = cmd.OutOrStdout()
			if len(args) == 1 {
				if mo.Month != "" {
					return oo.HandleError(errors.New("give the month as an argument or with --month, not both"))
				}
				mo.Month = args[0]
			}

			cfg, err := loadConfig()
			if err != nil {
				return oo.HandleError(err)
			}

			pos, err := mo.Position(clock.Today().Position())
			if err != nil {
				return oo.HandleError(err)
			}
			if io.Interactive {
				if pos, err = snake.PromptMonth(cmd, pos); err != nil {
					return oo.HandleError(err)
				}
			}

			r, err := oo.Renderer(cfg.Output)
			if err != nil {
				return oo.HandleError(err)
			}

			s := show.Show{
				Position:  pos,
				Clock:     clock,
				Renderer:  r,
				WeekStart: wo.Resolve(cfg),
				Out:       cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddMonthArg(cmd, mo)
	options.AddWeekStartArg(cmd, wo)
	options.AddFormatArg(cmd, oo)
	options.AddOutputArg(cmd, oo)
	options.InteractiveArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
