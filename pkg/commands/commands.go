package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/cal/pkg/config"
	"tableflip.dev/cal/pkg/monthgrid"
)

var (
	// clock is the source of today for every command.
	clock monthgrid.Clock = monthgrid.SystemClock{}

	loadConfig = config.LoadConfig
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "cal",
		Short: base.Wrap80("Month calendars on the command line, in a terminal UI, over HTTP and over MCP."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addShow(topLevel)
	addUI(topLevel)
	addServe(topLevel)
	addMCP(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
