package override

import (
	"context"
	"time"

	"github.com/uswah23/smart-bike-map/internal/config"
	"github.com/uswah23/smart-bike-map/internal/logger"
	pb "github.com/uswah23/smart-bike-map/internal/pb/v1"
	"github.com/uswah23/smart-bike-map/internal/service/common"
)

// Options configures the override command.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string

	// ServerAddress overrides server address from config when specified.
	ServerAddress string
}

// defaultPushInterval defines retry delay when the tracker is unreachable.
const defaultPushInterval = 1 * time.Second

// overrideClient is the subset of the tracker client used by the command.
type overrideClient interface {
	PressOverride(ctx context.Context, actor *pb.SystemActor) (*pb.PressOverrideResponse, error)
}

// Run presses the override with retry logic until the tracker answers or the context is canceled.
func Run(ctx context.Context, opts *Options) error {
	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	logger.Configure(cfg.LogLevel, cfg.LogFormat)

	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "geofence-override")

	// Use server address from options if provided, otherwise use config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	// Identify current user and hostname for the notification.
	actor, err := common.DetectActor()
	if err != nil {
		return err
	}

	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	logger.InfoKV(ctx, "Pressing override", "server_address", serverAddress, "actor", common.FormatActor(actor))

	_, err = press(ctx, client, actor, defaultPushInterval)

	return err
}

// press calls PressOverride immediately and then on every tick until the tracker answers.
func press(
	ctx context.Context,
	client overrideClient,
	actor *pb.SystemActor,
	interval time.Duration,
) (*pb.PressOverrideResponse, error) {
	// attempt tries once, a nil response means retry.
	attempt := func() *pb.PressOverrideResponse {
		resp, err := client.PressOverride(ctx, actor)
		if err != nil {
			// Log error but continue retrying for transient failures.
			logger.ErrorKV(ctx, "PressOverride failed", "error", err)
			return nil
		}

		if resp.GetApplied() {
			logger.Infof(ctx, "Override applied: %s", common.FormatState(resp.GetState()))
		} else {
			logger.Infof(ctx, "No active alert, nothing to override: %s", common.FormatState(resp.GetState()))
		}

		return resp
	}

	if resp := attempt(); resp != nil {
		return resp, nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			if resp := attempt(); resp != nil {
				return resp, nil
			}
		}
	}
}
