package override

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

// flakyClient fails a number of times before answering.
type flakyClient struct {
	mu       sync.Mutex
	failures int
	calls    int
	applied  bool
	actors   []*pb.SystemActor
}

func (c *flakyClient) PressOverride(_ context.Context, actor *pb.SystemActor) (*pb.PressOverrideResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls++
	c.actors = append(c.actors, actor)

	if c.calls <= c.failures {
		return nil, errUnavailable
	}

	state := &pb.TrackerStateResponse{State: "inside"}
	if c.applied {
		state = &pb.TrackerStateResponse{State: "outside_overridden", OverrideActive: true, OverriddenBy: actor}
	}

	return &pb.PressOverrideResponse{Applied: c.applied, State: state}, nil
}

// TestPress_FirstAttempt returns immediately when the tracker answers.
func TestPress_FirstAttempt(t *testing.T) {
	t.Parallel()

	client := &flakyClient{applied: true}
	actor := &pb.SystemActor{Hostname: "kiosk", Username: "guard"}

	resp, err := press(context.Background(), client, actor, time.Hour)
	require.NoError(t, err)
	require.True(t, resp.GetApplied())
	require.Equal(t, 1, client.calls)
	require.Same(t, actor, client.actors[0])
}

// TestPress_RetriesUntilAnswered keeps trying through transport failures.
func TestPress_RetriesUntilAnswered(t *testing.T) {
	t.Parallel()

	client := &flakyClient{failures: 2}

	resp, err := press(context.Background(), client, &pb.SystemActor{}, time.Millisecond)
	require.NoError(t, err)
	require.False(t, resp.GetApplied())
	require.Equal(t, 3, client.calls)
}

// TestPress_Canceled stops retrying when the context ends.
func TestPress_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	resp, err := press(ctx, &flakyClient{failures: 1 << 20}, &pb.SystemActor{}, time.Millisecond)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Nil(t, resp)
}
