package monitor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	pb "github.com/uswah23/smart-bike-map/internal/pb/v1"
)

var errUnavailable = errors.New("unavailable")

// scriptedSource replays a fixed list of responses.
type scriptedSource struct {
	mu        sync.Mutex
	responses []*pb.TrackerStateResponse
	calls     int
	err       error
}

func (s *scriptedSource) GetTrackerState(context.Context) (*pb.TrackerStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++

	if s.err != nil {
		return nil, s.err
	}

	idx := min(s.calls-1, len(s.responses)-1)

	return s.responses[idx], nil
}

func (s *scriptedSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.calls
}

// TestWatcher_ReportsOnlyChanges logs the first state and every transition.
func TestWatcher_ReportsOnlyChanges(t *testing.T) {
	t.Parallel()

	source := &scriptedSource{responses: []*pb.TrackerStateResponse{
		{State: "inside"},
		{State: "inside"},
		{State: "outside_unacknowledged", Alerted: true},
		{State: "outside_overridden", OverrideActive: true, OverriddenBy: &pb.SystemActor{Hostname: "h", Username: "u"}},
		{State: "inside"},
	}}

	w := new(watcher)
	ctx := context.Background()

	require.True(t, w.check(ctx, source))
	require.False(t, w.check(ctx, source))
	require.True(t, w.check(ctx, source))
	require.True(t, w.alerted)
	require.True(t, w.check(ctx, source))
	require.True(t, w.check(ctx, source))
	require.False(t, w.alerted)
}

// TestWatcher_ErrorKeepsState leaves the last state untouched on RPC failure.
func TestWatcher_ErrorKeepsState(t *testing.T) {
	t.Parallel()

	w := &watcher{last: "inside", seen: true}
	require.False(t, w.check(context.Background(), &scriptedSource{err: errUnavailable}))
	require.Equal(t, "inside", w.last)
}

// TestPoll_StopsOnCancel returns nil once the context is canceled.
func TestPoll_StopsOnCancel(t *testing.T) {
	t.Parallel()

	source := &scriptedSource{responses: []*pb.TrackerStateResponse{{State: "inside"}}}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- poll(ctx, source, time.Millisecond) }()

	require.Eventually(t, func() bool { return source.Calls() >= 3 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("poll did not stop")
	}
}
