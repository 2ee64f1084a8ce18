package buzzer

import (
	"context"
	"errors"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// StopCommand is the opaque token the bike firmware understands as "silence the buzzer".
const StopCommand = "STOP_BUZZER"

// errPublishTimedOut is returned when the broker does not acknowledge in time.
var errPublishTimedOut = errors.New("publish not acknowledged")

// publisher is the part of mqtt.Client the buzzer needs.
type publisher interface {
	Publish(topic string, qos byte, retained bool, payload any) mqtt.Token
}

// Publisher sends buzzer commands to the bike.
type Publisher struct {
	// client is the connected MQTT client.
	client publisher
	// topic is the bike command topic.
	topic string
	// qos is the publish quality of service.
	qos byte
}

// NewPublisher creates a buzzer publisher on the given command topic.
func NewPublisher(client mqtt.Client, topic string, qos byte) *Publisher {
	return &Publisher{
		client: client,
		topic:  topic,
		qos:    qos,
	}
}

// StopBuzzer publishes StopCommand and waits for the broker acknowledgement or ctx.
func (p *Publisher) StopBuzzer(ctx context.Context) error {
	token := p.client.Publish(p.topic, p.qos, false, StopCommand)

	select {
	case <-token.Done():
	case <-ctx.Done():
		return fmt.Errorf("publish %s: %w: %w", StopCommand, errPublishTimedOut, ctx.Err())
	}

	if err := token.Error(); err != nil {
		return fmt.Errorf("publish %s: %w", StopCommand, err)
	}

	return nil
}
