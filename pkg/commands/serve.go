package commands

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tableflip.dev/cal/pkg/commands/options"
	"tableflip.dev/cal/pkg/runner/serve"
)

func addServe(topLevel *cobra.Command) {
	wo := &options.WeekStartOptions{}
	var (
		addr  string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calendar widget over HTTP.",
		Long: `Serve an HTML month calendar at / (use ?year=&month= to pick a month,
month is zero based) and the grid as JSON at /api/grid.`,
		Example: `
cal serve
cal serve --addr :9000 --watch
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = cfg.Addr
			}

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			h, err := serve.NewHandler(clock, wo.Resolve(cfg), logger)
			if err != nil {
				return err
			}
			if watch && cfg.File == "" {
				logger.Warn("no config file found, --watch has nothing to watch")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			s := serve.Server{
				Handler:    h,
				Addr:       addr,
				Logger:     logger,
				ConfigFile: cfg.File,
				Watch:      watch,
				OnListening: func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "calendar available at http://%s/\n", a)
				},
			}
			return s.Do(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "address to listen on, defaults to the configured addr")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the week start when the config file changes")
	options.AddWeekStartArg(cmd, wo)

	topLevel.AddCommand(cmd)
}
