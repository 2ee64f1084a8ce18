package simulator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/uswah23/smart-bike-map/internal/domain/geofence"
	"github.com/uswah23/smart-bike-map/internal/ingest"
	"github.com/uswah23/smart-bike-map/internal/repository/boundary"
)

var errTestBroker = errors.New("broker unavailable")

// fakeToken is an already completed token.
type fakeToken struct {
	err      error
	finished bool
}

func (f *fakeToken) Wait() bool                     { return f.finished }
func (f *fakeToken) WaitTimeout(time.Duration) bool { return f.finished }
func (f *fakeToken) Done() <-chan struct{} {
	done := make(chan struct{})
	close(done)

	return done
}
func (f *fakeToken) Error() error { return f.err }

// fakePublisher records payloads.
type fakePublisher struct {
	mu       sync.Mutex
	payloads [][]byte
	token    *fakeToken
}

func (f *fakePublisher) Publish(_ string, _ byte, _ bool, payload any) paho.Token {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, _ := payload.([]byte)
	f.payloads = append(f.payloads, data)

	return f.token
}

// TestInterpolate includes both endpoints.
func TestInterpolate(t *testing.T) {
	t.Parallel()

	points := Interpolate(orb.Point{0, 0}, orb.Point{10, 20}, 4)
	require.Len(t, points, 5)
	require.Equal(t, orb.Point{0, 0}, points[0])
	require.Equal(t, orb.Point{5, 10}, points[2])
	require.Equal(t, orb.Point{10, 20}, points[4])

	require.Len(t, Interpolate(orb.Point{0, 0}, orb.Point{1, 1}, 0), 2)
}

// TestDefaultRoute_CrossesCampusBoundary leaves and re-enters the built-in campus.
func TestDefaultRoute_CrossesCampusBoundary(t *testing.T) {
	t.Parallel()

	fence, err := boundary.Default()
	require.NoError(t, err)

	route := DefaultRoute(10)
	require.Len(t, route, 21)
	require.Greater(t, Length(route), 1000.0)

	contains := func(p orb.Point) bool {
		position, err := geofence.NewPosition(p.Lat(), p.Lon(), time.Time{})
		require.NoError(t, err)

		return fence.Contains(position)
	}

	require.True(t, contains(route[0]))
	require.False(t, contains(route[10]))
	require.True(t, contains(route[20]))
}

// TestRide_PublishesDecodableFixes sends every point as a payload the ingestor accepts.
func TestRide_PublishesDecodableFixes(t *testing.T) {
	t.Parallel()

	client := &fakePublisher{token: &fakeToken{finished: true}}
	s := &sender{client: client, topic: "bike/gps", qos: 1, timeout: time.Second}

	route := Interpolate(campusGate, townCenter, 3)
	require.NoError(t, s.ride(context.Background(), route, time.Millisecond))
	require.Len(t, client.payloads, len(route))

	last, err := ingest.Decode(client.payloads[3], time.Now())
	require.NoError(t, err)
	require.InDelta(t, townCenter.Lat(), last.Latitude, 1e-9)
	require.InDelta(t, townCenter.Lon(), last.Longitude, 1e-9)
}

// TestSend_Errors reports broker errors and timeouts.
func TestSend_Errors(t *testing.T) {
	t.Parallel()

	s := &sender{client: &fakePublisher{token: &fakeToken{finished: true, err: errTestBroker}}, timeout: time.Second}
	require.ErrorIs(t, s.send(context.Background(), campusGate), errTestBroker)

	s = &sender{client: &fakePublisher{token: &fakeToken{}}, timeout: time.Second}
	require.ErrorIs(t, s.send(context.Background(), campusGate), errPublishTimedOut)
}

// TestRide_Canceled stops between fixes when the context ends.
func TestRide_Canceled(t *testing.T) {
	t.Parallel()

	client := &fakePublisher{token: &fakeToken{finished: true}}
	s := &sender{client: client, timeout: time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.ride(ctx, DefaultRoute(5), time.Hour)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, client.payloads, 1)
}

// TestJitter stays within the radius.
func TestJitter(t *testing.T) {
	t.Parallel()

	require.Equal(t, campusGate, jitter(campusGate, 0))

	for range 100 {
		p := jitter(campusGate, 0.001)
		require.InDelta(t, campusGate.Lat(), p.Lat(), 0.001)
		require.InDelta(t, campusGate.Lon(), p.Lon(), 0.001)
	}
}
