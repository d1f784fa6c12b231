package options

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tableflip.dev/cal/pkg/config"
)

// WeekStartOptions overrides the configured first day of the week.
type WeekStartOptions struct {
	WeekStart weekdayValue
}

func AddWeekStartArg(cmd *cobra.Command, o *WeekStartOptions) {
	cmd.Flags().VarP(&o.WeekStart, "week-start", "w",
		`First column of the week, example: --week-start=monday.`)
	_ = cmd.RegisterFlagCompletionFunc("week-start", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"sunday", "monday", "saturday"}, cobra.ShellCompDirectiveNoFileComp
	})
}

// Resolve returns the flag value when set, otherwise cfg's week start.
func (o *WeekStartOptions) Resolve(cfg *config.Config) time.Weekday {
	if o.WeekStart.set || cfg == nil {
		return o.WeekStart.day
	}
	return cfg.WeekStart
}

var _ pflag.Value = (*weekdayValue)(nil)

// weekdayValue is a pflag.Value accepting the names config.ParseWeekday does.
type weekdayValue struct {
	day time.Weekday
	set bool
}

func (w *weekdayValue) String() string {
	if !w.set {
		return ""
	}
	return w.day.String()
}

func (w *weekdayValue) Set(s string) error {
	d, err := config.ParseWeekday(s)
	if err != nil {
		return err
	}
	w.day, w.set = d, true
	return nil
}

func (*weekdayValue) Type() string {
	return "weekday"
}
