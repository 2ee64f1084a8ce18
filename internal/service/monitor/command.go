package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/uswah23/smart-bike-map/internal/config"
	"github.com/uswah23/smart-bike-map/internal/logger"
	pb "github.com/uswah23/smart-bike-map/internal/pb/v1"
	"github.com/uswah23/smart-bike-map/internal/service/common"
)

// Options controls the monitor polling behavior and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ServerAddress provides an optional gRPC server address override.
	ServerAddress string
	// PollInterval defines the interval between tracker state checks.
	PollInterval time.Duration
}

// DefaultPollInterval defines the polling interval when none is given.
const DefaultPollInterval = 5 * time.Second

// stateSource is the subset of the tracker client used by the monitor.
type stateSource interface {
	GetTrackerState(ctx context.Context) (*pb.TrackerStateResponse, error)
}

// Run polls tracker state and logs transitions until the context is canceled.
func Run(ctx context.Context, opts *Options) error {
	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger.Configure(cfg.LogLevel, cfg.LogFormat)

	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "geofence-monitor")

	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}

	// Determine server address: command line argument overrides config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return fmt.Errorf("dial server: %w", err)
	}

	defer func() {
		_ = client.Close()
	}()

	logger.InfoKV(ctx, "Polling tracker state", "server_address", serverAddress, "interval", opts.PollInterval.String())

	return poll(ctx, client, opts.PollInterval)
}

// poll runs the ticker loop, checking state immediately and then on every tick.
func poll(ctx context.Context, source stateSource, interval time.Duration) error {
	w := new(watcher)
	w.check(ctx, source)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Context canceled, exiting")
			return nil
		case <-ticker.C:
			w.check(ctx, source)
		}
	}
}

// watcher remembers the last observed state so only changes are logged at info level.
type watcher struct {
	last    string
	alerted bool
	seen    bool
}

// check fetches the current state and reports whether it differs from the previous one.
func (w *watcher) check(ctx context.Context, source stateSource) bool {
	state, err := source.GetTrackerState(ctx)
	if err != nil {
		logger.ErrorKV(ctx, "Check state failed", "error", err)
		return false
	}

	changed := !w.seen || state.GetState() != w.last
	w.last = state.GetState()
	w.seen = true

	if !changed {
		logger.Debugf(ctx, "Tracker state: %s", common.FormatState(state))
		return false
	}

	switch {
	case state.GetAlerted() && !w.alerted:
		logger.WarnKV(ctx, "Bike left the geofence", "state", common.FormatState(state))
	case state.GetOverrideActive():
		logger.InfoKV(ctx, "Alert overridden", "by", common.FormatActor(state.GetOverriddenBy()))
	default:
		logger.Infof(ctx, "Tracker state: %s", common.FormatState(state))
	}

	w.alerted = state.GetAlerted()

	return true
}
