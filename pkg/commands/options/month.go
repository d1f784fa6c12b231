package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cal/pkg/monthgrid"
	"tableflip.dev/cal/pkg/timeutil"
)

// MonthOptions selects the month to show.
type MonthOptions struct {
	Month string
}

func AddMonthArg(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.Month, "month", "m", "",
		`Month to show, example: --month="2024-02", --month="March 2025", --month=next or --month=-3.`)
}

// Position resolves the flag relative to now. No flag means now.
func (o *MonthOptions) Position(now monthgrid.Position) (monthgrid.Position, error) {
	if o.Month == "" {
		return now, nil
	}
	return timeutil.ParseMonth(o.Month, now)
}
