package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/uswah23/smart-bike-map/internal/domain/geofence"
)

// Type names a published geofence event.
type Type string

const (
	// TypeExit is published when the bike leaves the boundary.
	TypeExit Type = "exit"
	// TypeOverride is published when an operator stops the buzzer.
	TypeOverride Type = "override"
	// TypeReentry is published when the bike comes back inside.
	TypeReentry Type = "reentry"
)

// errUnsupportedIntent is returned for intents that have no event.
var errUnsupportedIntent = errors.New("intent has no event")

// channel is the part of *amqp.Channel the publisher needs.
type channel interface {
	PublishWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp.Publishing,
	) error
}

// message is the JSON body of a published event.
type message struct {
	ID         string        `json:"id"`
	Type       Type          `json:"type"`
	Location   location      `json:"location"`
	Actor      *actorMessage `json:"actor,omitempty"`
	ReceivedAt int64         `json:"received_at"`
	Timestamp  int64         `json:"timestamp"`
}

type location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type actorMessage struct {
	Hostname string `json:"hostname"`
	Username string `json:"username"`
}

// Publisher publishes geofence events to a fanout exchange.
type Publisher struct {
	// ch is the AMQP channel used for publishing.
	ch channel
	// exchange is the fanout exchange name.
	exchange string
	// now stamps published events.
	now func() time.Time
}

// NewPublisher opens a channel on conn and declares a durable fanout exchange.
func NewPublisher(conn *amqp.Connection, exchange string) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return newPublisher(ch, exchange), nil
}

func newPublisher(ch channel, exchange string) *Publisher {
	return &Publisher{
		ch:       ch,
		exchange: exchange,
		now:      time.Now,
	}
}

// Publish sends the event matching intent.
func (p *Publisher) Publish(ctx context.Context, intent geofence.Intent) error {
	eventType, err := typeOf(intent.Kind)
	if err != nil {
		return err
	}

	msg := message{
		ID:   uuid.NewString(),
		Type: eventType,
		Location: location{
			Latitude:  intent.Position.Latitude,
			Longitude: intent.Position.Longitude,
		},
		ReceivedAt: intent.Position.ReceivedAt.Unix(),
		Timestamp:  p.now().Unix(),
	}

	if intent.Actor != nil {
		msg.Actor = &actorMessage{Hostname: intent.Actor.Hostname, Username: intent.Actor.Username}
	}

	body, err := json.Marshal(&msg)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, string(eventType), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.ID,
		Type:         string(eventType),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s event: %w", eventType, err)
	}

	return nil
}

func typeOf(kind geofence.IntentKind) (Type, error) {
	switch kind {
	case geofence.IntentRaiseAlert:
		return TypeExit, nil
	case geofence.IntentSendOverrideNotification:
		return TypeOverride, nil
	case geofence.IntentClearAlert:
		return TypeReentry, nil
	default:
		return "", fmt.Errorf("%w: %s", errUnsupportedIntent, kind)
	}
}
