package server

import (
	"context"
	"errors"
	"fmt"

	paho "github.com/eclipse/paho.mqtt.golang"
	amqp "github.com/rabbitmq/amqp091-go"

	httpapi "github.com/uswah23/smart-bike-map/internal/api/http"
	mqttapi "github.com/uswah23/smart-bike-map/internal/api/mqtt"
	"github.com/uswah23/smart-bike-map/internal/config"
	"github.com/uswah23/smart-bike-map/internal/logger"
	archiverepo "github.com/uswah23/smart-bike-map/internal/repository/archive"
	"github.com/uswah23/smart-bike-map/internal/repository/buzzer"
	"github.com/uswah23/smart-bike-map/internal/repository/events"
	"github.com/uswah23/smart-bike-map/internal/repository/notifier"
)

var (
	// errMQTTDisconnected is reported by the health check while paho reconnects.
	errMQTTDisconnected = errors.New("mqtt connection is not open")
	// errAMQPClosed is reported by the health check after the broker went away.
	errAMQPClosed = errors.New("amqp connection is closed")
)

// connections holds the network clients opened at startup.
type connections struct {
	mqtt      paho.Client
	externals externals
	checks    []httpapi.HealthCheck
	closers   []func(ctx context.Context)
}

// connect opens the MQTT client and every adapter enabled in cfg.
// On error, anything already opened is closed.
func connect(ctx context.Context, cfg *config.Config) (_ *connections, err error) {
	conn := new(connections)

	defer func() {
		if err != nil {
			conn.close(ctx)
		}
	}()

	conn.mqtt, err = mqttapi.Connect(ctx, cfg.MQTT, cfg.Timeout)
	if err != nil {
		return nil, err
	}

	client := conn.mqtt
	conn.closers = append(conn.closers, func(context.Context) {
		client.Disconnect(disconnectQuiesce)
	})
	conn.checks = append(conn.checks, httpapi.HealthCheck{
		Name: "mqtt",
		Check: func(context.Context) error {
			if !client.IsConnectionOpen() {
				return errMQTTDisconnected
			}

			return nil
		},
	})

	conn.externals.buzzer = buzzer.NewPublisher(client, cfg.MQTT.CommandTopic, cfg.MQTT.QoS)

	if cfg.Notifier.Enabled {
		conn.externals.notifier = notifier.NewClient(cfg.Notifier.Endpoint, cfg.Notifier.ChatID, cfg.Notifier.Text)
	}

	if cfg.Events.AMQPURL != "" {
		if err = conn.connectEvents(ctx, cfg.Events); err != nil {
			return nil, err
		}
	}

	if cfg.Archive.PostgresDSN != "" {
		if err = conn.connectArchive(ctx, cfg.Archive); err != nil {
			return nil, err
		}
	}

	return conn, nil
}

// disconnectQuiesce is how long paho may spend flushing in-flight messages, in milliseconds.
const disconnectQuiesce = 250

func (c *connections) connectEvents(ctx context.Context, cfg config.EventsConfig) error {
	amqpConn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		return fmt.Errorf("dial amqp: %w", err)
	}

	c.closers = append(c.closers, func(ctx context.Context) {
		if closeErr := amqpConn.Close(); closeErr != nil && !errors.Is(closeErr, amqp.ErrClosed) {
			logger.WarnKV(ctx, "AMQP close failed", "error", closeErr)
		}
	})

	publisher, err := events.NewPublisher(amqpConn, cfg.Exchange)
	if err != nil {
		return err
	}

	c.externals.events = publisher
	c.checks = append(c.checks, httpapi.HealthCheck{
		Name: "amqp",
		Check: func(context.Context) error {
			if amqpConn.IsClosed() {
				return errAMQPClosed
			}

			return nil
		},
	})

	logger.InfoKV(ctx, "Publishing geofence events", "exchange", cfg.Exchange)

	return nil
}

func (c *connections) connectArchive(ctx context.Context, cfg config.ArchiveConfig) error {
	db, err := archiverepo.Open(ctx, cfg.PostgresDSN)
	if err != nil {
		return err
	}

	c.closers = append(c.closers, func(ctx context.Context) {
		if closeErr := db.Close(); closeErr != nil {
			logger.WarnKV(ctx, "Archive close failed", "error", closeErr)
		}
	})

	repo := archiverepo.NewRepository(db)
	if err = repo.EnsureSchema(ctx); err != nil {
		return err
	}

	c.externals.archive = repo
	c.checks = append(c.checks, httpapi.HealthCheck{Name: "archive", Check: repo.Ping})

	logger.Info(ctx, "Archiving fixes to Postgres")

	return nil
}

// close releases connections in reverse order of opening.
func (c *connections) close(ctx context.Context) {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i](ctx)
	}

	c.closers = nil
}
