package mqtt

import (
	"context"
	"fmt"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/uswah23/smart-bike-map/internal/logger"
)

// Handler consumes raw fix payloads.
type Handler interface {
	Handle(ctx context.Context, payload []byte) error
}

// subscriber is the part of paho.Client the subscriber needs.
type subscriber interface {
	Subscribe(topic string, qos byte, callback paho.MessageHandler) paho.Token
	Unsubscribe(topics ...string) paho.Token
}

// FixSubscriber forwards messages from the fix topic to a Handler.
type FixSubscriber struct {
	// client is the connected MQTT client.
	client subscriber
	// topic is the fix topic.
	topic string
	// qos is the subscription quality of service.
	qos byte
	// handler receives every payload.
	handler Handler
	// ctx carries the logger for message callbacks.
	ctx context.Context //nolint:containedctx // paho callbacks have no context of their own.
}

// NewFixSubscriber creates a subscriber for topic.
func NewFixSubscriber(client paho.Client, topic string, qos byte, handler Handler) *FixSubscriber {
	return &FixSubscriber{
		client:  client,
		topic:   topic,
		qos:     qos,
		handler: handler,
		ctx:     context.Background(),
	}
}

// Start subscribes to the fix topic. Messages are handled with ctx.
func (s *FixSubscriber) Start(ctx context.Context) error {
	s.ctx = logger.WithKV(logger.WithName(ctx, "fix-subscriber"), "topic", s.topic)

	token := s.client.Subscribe(s.topic, s.qos, s.handleMessage)
	token.Wait()

	if err := token.Error(); err != nil {
		return fmt.Errorf("subscribe %s: %w", s.topic, err)
	}

	logger.Info(s.ctx, "Subscribed to fixes")

	return nil
}

// Stop unsubscribes from the fix topic.
func (s *FixSubscriber) Stop() error {
	token := s.client.Unsubscribe(s.topic)
	token.Wait()

	if err := token.Error(); err != nil {
		return fmt.Errorf("unsubscribe %s: %w", s.topic, err)
	}

	return nil
}

func (s *FixSubscriber) handleMessage(_ paho.Client, msg paho.Message) {
	// The handler logs and counts malformed payloads itself.
	_ = s.handler.Handle(s.ctx, msg.Payload())
}
