package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/uswah23/smart-bike-map/internal/config"
	"github.com/uswah23/smart-bike-map/internal/logger"
	"github.com/uswah23/smart-bike-map/internal/service/server"
	"github.com/uswah23/smart-bike-map/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// httpAddress overrides the renderer API listen address.
	httpAddress string
	// boundaryFile overrides the GeoJSON geofence.
	boundaryFile string
	// allowMultiple skips the single instance check.
	allowMultiple bool

	// rootCmd represents the base command for running the tracker.
	rootCmd = &cobra.Command{
		Use:   "geofence-server [listen-address]",
		Short: "Track the bike against the campus geofence and serve the map APIs.",
		Long: `Starts the geofence tracker.

GPS fixes are consumed from the MQTT fix topic and checked against the campus
boundary. Leaving the boundary raises an alert; the override (gRPC, or POST
/api/override on the HTTP API) stops the bike's buzzer and notifies the chat.

Only the port from ServerAddress config is used for the gRPC listener (e.g., :50051).
Listen address can be provided as argument to override config.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &server.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
				HTTPAddress:   httpAddress,
				BoundaryFile:  boundaryFile,
				AllowMultiple: allowMultiple,
			}

			if err := server.Run(ctx, options); err != nil {
				logger.ErrorKV(ctx, "Server failed", "error", err)
				return err
			}

			return nil
		},
	}
)

// Execute runs the geofence-server CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVar(&httpAddress, "http", "", "renderer API listen address (overrides config)")
	rootCmd.Flags().StringVarP(&boundaryFile, "boundary", "b", "", "GeoJSON geofence file (overrides config)")
	rootCmd.Flags().BoolVar(&allowMultiple, "allow-multiple", false, "skip the single instance check")
}
