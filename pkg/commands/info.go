package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cal/pkg/commands/options"
	"tableflip.dev/cal/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the resolved settings and where they came from.",
		Example: `
cal info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			oo.Out = cmd.OutOrStdout()
			cfg, err := loadConfig()
			if err != nil {
				return oo.HandleError(err)
			}
			s := info.Info{
				Config: cfg,
				Clock:  clock,
				Out:    cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
