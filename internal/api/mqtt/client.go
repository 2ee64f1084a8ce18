package mqtt

import (
	"context"
	"errors"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/uswah23/smart-bike-map/internal/config"
	"github.com/uswah23/smart-bike-map/internal/logger"
)

// errConnectTimedOut is returned when the broker does not answer within the timeout.
var errConnectTimedOut = errors.New("mqtt connect timed out")

// Connect opens a client to the configured broker. The paho client keeps
// reconnecting in the background after the first successful connection.
func Connect(ctx context.Context, cfg config.MQTTConfig, timeout time.Duration) (paho.Client, error) {
	ctx = logger.WithKV(ctx, "broker", cfg.Broker)

	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetConnectTimeout(timeout).
		SetConnectionLostHandler(func(_ paho.Client, err error) {
			logger.WarnKV(ctx, "MQTT connection lost", "error", err)
		}).
		SetOnConnectHandler(func(paho.Client) {
			logger.Info(ctx, "MQTT connected")
		})

	client := paho.NewClient(opts)

	token := client.Connect()
	if !token.WaitTimeout(timeout) {
		return nil, errConnectTimedOut
	}

	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect: %w", err)
	}

	return client, nil
}
