package buzzer

import (
	"context"
	"errors"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/require"
)

var errTestNotConnected = errors.New("not connected")

// fakeToken is a completed or pending mqtt.Token.
type fakeToken struct {
	done chan struct{}
	err  error
}

func completedToken(err error) *fakeToken {
	done := make(chan struct{})
	close(done)

	return &fakeToken{done: done, err: err}
}

func (f *fakeToken) Wait() bool                     { <-f.done; return true }
func (f *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (f *fakeToken) Done() <-chan struct{}          { return f.done }
func (f *fakeToken) Error() error                   { return f.err }

// fakeClient records published messages.
type fakeClient struct {
	topic   string
	qos     byte
	payload any
	token   *fakeToken
}

func (f *fakeClient) Publish(topic string, qos byte, _ bool, payload any) mqtt.Token {
	f.topic = topic
	f.qos = qos
	f.payload = payload

	return f.token
}

// TestStopBuzzer_PublishesCommand sends the stop token on the command topic.
func TestStopBuzzer_PublishesCommand(t *testing.T) {
	t.Parallel()

	client := &fakeClient{token: completedToken(nil)}
	p := &Publisher{client: client, topic: "bike/command", qos: 1}

	require.NoError(t, p.StopBuzzer(context.Background()))
	require.Equal(t, "bike/command", client.topic)
	require.Equal(t, byte(1), client.qos)
	require.Equal(t, StopCommand, client.payload)
}

// TestStopBuzzer_Errors reports broker errors and timeouts.
func TestStopBuzzer_Errors(t *testing.T) {
	t.Parallel()

	p := &Publisher{client: &fakeClient{token: completedToken(errTestNotConnected)}, topic: "bike/command"}
	require.ErrorIs(t, p.StopBuzzer(context.Background()), errTestNotConnected)

	pending := &fakeToken{done: make(chan struct{})}
	p = &Publisher{client: &fakeClient{token: pending}, topic: "bike/command"}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	require.ErrorIs(t, p.StopBuzzer(ctx), context.DeadlineExceeded)
}
