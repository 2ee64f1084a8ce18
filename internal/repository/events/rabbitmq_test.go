package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"

	"github.com/uswah23/smart-bike-map/internal/domain/geofence"
)

var errTestChannelClosed = errors.New("channel closed")

// fakeChannel records publishings.
type fakeChannel struct {
	exchange   string
	key        string
	publishing amqp.Publishing
	err        error
}

func (f *fakeChannel) PublishWithContext(
	_ context.Context,
	exchange, key string,
	_, _ bool,
	msg amqp.Publishing,
) error {
	f.exchange = exchange
	f.key = key
	f.publishing = msg

	return f.err
}

// TestPublish_Exit publishes a persistent JSON exit event.
func TestPublish_Exit(t *testing.T) {
	t.Parallel()

	ch := &fakeChannel{}
	p := newPublisher(ch, "geofence.events")
	p.now = func() time.Time { return time.Unix(1_700_000_100, 0) }

	err := p.Publish(context.Background(), geofence.Intent{
		Kind: geofence.IntentRaiseAlert,
		Position: geofence.Position{
			Latitude:   1.85,
			Longitude:  103.12,
			ReceivedAt: time.Unix(1_700_000_000, 0),
		},
	})
	require.NoError(t, err)

	require.Equal(t, "geofence.events", ch.exchange)
	require.Equal(t, "exit", ch.key)
	require.Equal(t, amqp.Persistent, ch.publishing.DeliveryMode)
	require.Equal(t, "application/json", ch.publishing.ContentType)

	var msg message
	require.NoError(t, json.Unmarshal(ch.publishing.Body, &msg))
	require.Equal(t, TypeExit, msg.Type)
	require.Equal(t, ch.publishing.MessageId, msg.ID)
	_, err = uuid.Parse(msg.ID)
	require.NoError(t, err)
	require.InDelta(t, 103.12, msg.Location.Longitude, 0)
	require.Equal(t, int64(1_700_000_000), msg.ReceivedAt)
	require.Equal(t, int64(1_700_000_100), msg.Timestamp)
	require.Nil(t, msg.Actor)
}

// TestPublish_OverrideCarriesActor includes who pressed override.
func TestPublish_OverrideCarriesActor(t *testing.T) {
	t.Parallel()

	ch := &fakeChannel{}
	p := newPublisher(ch, "x")

	err := p.Publish(context.Background(), geofence.Intent{
		Kind:  geofence.IntentSendOverrideNotification,
		Actor: &geofence.Actor{Hostname: "kiosk", Username: "guard"},
	})
	require.NoError(t, err)

	var msg message
	require.NoError(t, json.Unmarshal(ch.publishing.Body, &msg))
	require.Equal(t, TypeOverride, msg.Type)
	require.Equal(t, "guard", msg.Actor.Username)
}

// TestPublish_Errors rejects unsupported intents and surfaces channel errors.
func TestPublish_Errors(t *testing.T) {
	t.Parallel()

	p := newPublisher(&fakeChannel{}, "x")
	require.ErrorIs(t, p.Publish(context.Background(), geofence.Intent{Kind: geofence.IntentUpdatePosition}),
		errUnsupportedIntent)

	p = newPublisher(&fakeChannel{err: errTestChannelClosed}, "x")
	require.ErrorIs(t, p.Publish(context.Background(), geofence.Intent{Kind: geofence.IntentClearAlert}),
		errTestChannelClosed)
}
