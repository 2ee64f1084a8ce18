package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/uswah23/smart-bike-map/internal/config"
	"github.com/uswah23/smart-bike-map/internal/service/simulator"
	"github.com/uswah23/smart-bike-map/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// options holds the route settings bound to flags.
	options simulator.Options

	rootCmd = &cobra.Command{
		Use:   "geofence-simulator",
		Short: "Publish simulated GPS fixes that leave and re-enter the campus.",
		Long: `Acts as the bike's GPS unit for local testing.

Publishes {"lat","lon"} fixes to the configured MQTT fix topic along a route
from the campus to town and back.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options.ConfigPath = configPath

			return simulator.Run(ctx, &options)
		},
	}
)

// Execute runs the geofence-simulator CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	flags.DurationVarP(&options.Interval, "interval", "i", simulator.DefaultInterval, "delay between fixes")
	flags.IntVarP(&options.Steps, "steps", "s", simulator.DefaultSteps, "fixes per leg of the route")
	flags.Float64Var(&options.Jitter, "jitter", 0, "maximum random drift in degrees")
	flags.BoolVar(&options.Loop, "loop", false, "repeat the route until interrupted")
}
