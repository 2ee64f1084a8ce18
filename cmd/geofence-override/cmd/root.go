package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/uswah23/smart-bike-map/internal/config"
	"github.com/uswah23/smart-bike-map/internal/service/override"
	"github.com/uswah23/smart-bike-map/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string

	rootCmd = &cobra.Command{
		Use:   "geofence-override [server-address]",
		Short: "Stop the active geofence alert.",
		Long: `Presses the override for the current excursion.

The tracker stops the bike's buzzer and sends the chat notification, naming
the local user and host. Pressing it while no alert is active does nothing.
The command retries every second until the tracker answers.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			var serverAddress string
			if len(args) > 0 {
				serverAddress = args[0]
			}

			return override.Run(ctx, &override.Options{
				ConfigPath:    configPath,
				ServerAddress: serverAddress,
			})
		},
	}
)

// Execute runs the geofence-override CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
}
