package mqtt

import (
	"context"
	"errors"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/require"

	"github.com/uswah23/smart-bike-map/internal/domain/geofence"
	"github.com/uswah23/smart-bike-map/internal/ingest"
)

var errTestRefused = errors.New("subscription refused")

// fakeToken is a completed paho.Token.
type fakeToken struct {
	err error
}

func (f *fakeToken) Wait() bool                     { return true }
func (f *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (f *fakeToken) Done() <-chan struct{} {
	done := make(chan struct{})
	close(done)

	return done
}
func (f *fakeToken) Error() error { return f.err }

// fakeClient captures the subscription callback.
type fakeClient struct {
	topic        string
	qos          byte
	callback     paho.MessageHandler
	unsubscribed []string
	err          error
}

func (f *fakeClient) Subscribe(topic string, qos byte, callback paho.MessageHandler) paho.Token {
	f.topic = topic
	f.qos = qos
	f.callback = callback

	return &fakeToken{err: f.err}
}

func (f *fakeClient) Unsubscribe(topics ...string) paho.Token {
	f.unsubscribed = append(f.unsubscribed, topics...)

	return &fakeToken{}
}

// fakeMessage is an inbound MQTT message.
type fakeMessage struct {
	payload []byte
}

func (f *fakeMessage) Duplicate() bool   { return false }
func (f *fakeMessage) Qos() byte         { return 1 }
func (f *fakeMessage) Retained() bool    { return false }
func (f *fakeMessage) Topic() string     { return "bike/gps" }
func (f *fakeMessage) MessageID() uint16 { return 0 }
func (f *fakeMessage) Payload() []byte   { return f.payload }
func (f *fakeMessage) Ack()              {}

// recordingTracker keeps fixes passed through the ingestor.
type recordingTracker struct {
	positions []geofence.Position
}

func (r *recordingTracker) HandleFix(_ context.Context, p geofence.Position) *geofence.TrackedEntity {
	r.positions = append(r.positions, p)

	return &geofence.TrackedEntity{Position: &p}
}

// TestFixSubscriber_ForwardsPayloads sends valid fixes to the tracker and drops bad ones.
func TestFixSubscriber_ForwardsPayloads(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	tracker := &recordingTracker{}
	s := &FixSubscriber{client: client, topic: "bike/gps", qos: 1, handler: ingest.NewIngestor(tracker)}

	require.NoError(t, s.Start(context.Background()))
	require.Equal(t, "bike/gps", client.topic)
	require.Equal(t, byte(1), client.qos)

	client.callback(nil, &fakeMessage{payload: []byte(`{"lat":1.86,"lon":103.085}`)})
	client.callback(nil, &fakeMessage{payload: []byte(`{"lat":"bad"}`)})

	require.Len(t, tracker.positions, 1)
	require.InDelta(t, 1.86, tracker.positions[0].Latitude, 0)

	require.NoError(t, s.Stop())
	require.Equal(t, []string{"bike/gps"}, client.unsubscribed)
}

// TestFixSubscriber_SubscribeError reports broker refusals.
func TestFixSubscriber_SubscribeError(t *testing.T) {
	t.Parallel()

	s := &FixSubscriber{client: &fakeClient{err: errTestRefused}, topic: "bike/gps"}
	require.ErrorIs(t, s.Start(context.Background()), errTestRefused)
}
