package simulator

import (
	"context"
	"errors"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/paulmach/orb"

	mqttapi "github.com/uswah23/smart-bike-map/internal/api/mqtt"
	"github.com/uswah23/smart-bike-map/internal/config"
	"github.com/uswah23/smart-bike-map/internal/ingest"
	"github.com/uswah23/smart-bike-map/internal/logger"
)

// Options configures the simulated GPS unit.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string
	// Interval between published fixes.
	Interval time.Duration
	// Steps per leg of the route.
	Steps int
	// Jitter is the maximum random drift in degrees added to each fix.
	Jitter float64
	// Loop repeats the route until the context is canceled.
	Loop bool
}

const (
	// DefaultInterval is the default delay between fixes.
	DefaultInterval = time.Second
	// DefaultSteps is the default number of fixes per leg.
	DefaultSteps = 20

	// disconnectQuiesce is how long paho may spend flushing, in milliseconds.
	disconnectQuiesce = 250
)

// errPublishTimedOut is returned when the broker does not acknowledge a fix in time.
var errPublishTimedOut = errors.New("publish timed out")

// publisher is the subset of the MQTT client used to send fixes.
type publisher interface {
	Publish(topic string, qos byte, retained bool, payload any) paho.Token
}

// Run publishes the route to the fix topic.
func Run(ctx context.Context, opts *Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger.Configure(cfg.LogLevel, cfg.LogFormat)

	ctx = logger.WithName(ctx, "geofence-simulator")

	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}

	if opts.Steps <= 0 {
		opts.Steps = DefaultSteps
	}

	// The tracker holds the configured client ID.
	mqttConfig := cfg.MQTT
	mqttConfig.ClientID += "-simulator"

	client, err := mqttapi.Connect(ctx, mqttConfig, cfg.Timeout)
	if err != nil {
		return err
	}

	defer client.Disconnect(disconnectQuiesce)

	route := DefaultRoute(opts.Steps)

	logger.InfoKV(ctx, "Publishing simulated fixes",
		"topic", cfg.MQTT.FixTopic,
		"points", len(route),
		"length_m", int(Length(route)),
		"interval", opts.Interval.String())

	s := &sender{
		client:  client,
		topic:   cfg.MQTT.FixTopic,
		qos:     cfg.MQTT.QoS,
		timeout: cfg.Timeout,
		jitter:  opts.Jitter,
	}

	for {
		if err = s.ride(ctx, route, opts.Interval); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}

			return err
		}

		if !opts.Loop {
			return nil
		}
	}
}

// sender publishes fixes on one topic.
type sender struct {
	client  publisher
	topic   string
	qos     byte
	timeout time.Duration
	jitter  float64
}

// ride publishes every point of route, waiting interval between them.
func (s *sender) ride(ctx context.Context, route []orb.Point, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for i, p := range route {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}

		if err := s.send(ctx, jitter(p, s.jitter)); err != nil {
			return err
		}
	}

	return nil
}

// send publishes one fix and waits for the broker acknowledgement.
func (s *sender) send(ctx context.Context, p orb.Point) error {
	payload, err := ingest.Encode(p.Lat(), p.Lon())
	if err != nil {
		return err
	}

	token := s.client.Publish(s.topic, s.qos, false, payload)
	if !token.WaitTimeout(s.timeout) {
		return errPublishTimedOut
	}

	if err = token.Error(); err != nil {
		return fmt.Errorf("publish fix: %w", err)
	}

	logger.DebugKV(ctx, "Fix published", "lat", p.Lat(), "lon", p.Lon())

	return nil
}
