package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/neocrym/log-with-context/internal/config"
	"github.com/neocrym/log-with-context/internal/service/demo"
	"github.com/neocrym/log-with-context/internal/version"
	"github.com/neocrym/log-with-context/logger"
)

var (
	// configPath to the configuration YAML file.
	configPath string

	// rootCmd represents the base command for running the demo server.
	rootCmd = &cobra.Command{
		Use:   "logctx-demo [listen-address]",
		Short: "Run a demo HTTP server showing scoped log context in action.",
		Long: `Starts a small HTTP server whose handlers log through nested context scopes.

Every request gets its own request_id, method and path fields; handlers push
additional frames for the duration of their work. Watch the emitted records to
see fields appear and disappear as scopes unwind.

Listen address can be provided as argument to override config (e.g., :9090).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &demo.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
			}

			return demo.Run(ctx, options)
		},
	}
)

// Execute runs the logctx-demo CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	err := rootCmd.Execute()

	// Flush buffered records before the process ends.
	_ = logger.Global().Sync()

	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
}
