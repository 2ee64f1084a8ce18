package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/uswah23/smart-bike-map/internal/config"
	"github.com/uswah23/smart-bike-map/internal/service/monitor"
	"github.com/uswah23/smart-bike-map/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// pollInterval between state checks.
	pollInterval time.Duration

	rootCmd = &cobra.Command{
		Use:   "geofence-monitor [server-address]",
		Short: "Watch the tracker and log alert transitions.",
		Long: `Polls the tracker over gRPC and logs when the bike leaves the campus,
when someone overrides the alert, and when the bike returns.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			var serverAddress string
			if len(args) > 0 {
				serverAddress = args[0]
			}

			return monitor.Run(ctx, &monitor.Options{
				ConfigPath:    configPath,
				ServerAddress: serverAddress,
				PollInterval:  pollInterval,
			})
		},
	}
)

// Execute runs the geofence-monitor CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().DurationVarP(&pollInterval, "interval", "i", monitor.DefaultPollInterval, "polling interval")
}
