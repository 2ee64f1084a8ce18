package integration

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	pb "github.com/uswah23/smart-bike-map/internal/pb/v1"
	"github.com/uswah23/smart-bike-map/internal/service/common"
)

// TestGRPC_OverrideRoundtrip leaves the campus, overrides over gRPC and re-enters.
func TestGRPC_OverrideRoundtrip(t *testing.T) {
	t.Parallel()

	s := startStack(t, reservePort(t))
	ctx := context.Background()

	c, err := common.Dial(ctx, s.addr, common.WithCallTimeout(3*time.Second))
	require.NoError(t, err)

	defer func() {
		_ = c.Close()
	}()

	// No fix yet.
	state, err := c.GetTrackerState(ctx)
	require.NoError(t, err)
	require.Equal(t, "inside", state.GetState())
	require.Nil(t, state.GetPosition())

	s.tracker.HandleFix(ctx, fix(t, 1.8600, 103.0850))
	s.tracker.HandleFix(ctx, fix(t, 1.85, 103.12))

	state, err = c.GetTrackerState(ctx)
	require.NoError(t, err)
	require.Equal(t, "outside_unacknowledged", state.GetState())
	require.True(t, state.GetAlerted())
	require.Equal(t, "1.850000", state.GetPosition().GetDisplayLatitude())
	require.Equal(t, int64(2), state.GetTrailLength())
	require.NotNil(t, state.GetChangedAt())

	actor := &pb.SystemActor{Hostname: "test-host", Username: "test-user"}

	resp, err := c.PressOverride(ctx, actor)
	require.NoError(t, err)
	require.True(t, resp.GetApplied())
	require.Equal(t, "outside_overridden", resp.GetState().GetState())
	require.Equal(t, "test-user", resp.GetState().GetOverriddenBy().GetUsername())

	// Second press in the same excursion is a no-op.
	resp, err = c.PressOverride(ctx, actor)
	require.NoError(t, err)
	require.False(t, resp.GetApplied())

	require.Eventually(t, func() bool { return s.buzzer.Stops() == 1 }, time.Second, 5*time.Millisecond)

	s.tracker.HandleFix(ctx, fix(t, 1.8600, 103.0850))

	state, err = c.GetTrackerState(ctx)
	require.NoError(t, err)
	require.Equal(t, "inside", state.GetState())
	require.Nil(t, state.GetOverriddenBy())

	require.InDelta(t, 1, testutil.ToFloat64(s.collector.Alerts), 1e-9)
	require.InDelta(t, 1, testutil.ToFloat64(s.collector.Overrides), 1e-9)
	require.InDelta(t, 2,
		testutil.ToFloat64(s.collector.RPCRequests.WithLabelValues(pb.TrackerService_ServiceDesc.ServiceName, "PressOverride", "OK")), 1e-9)
}

// TestGRPC_OverrideWithoutAlert leaves state unchanged when the bike is inside.
func TestGRPC_OverrideWithoutAlert(t *testing.T) {
	t.Parallel()

	s := startStack(t, reservePort(t))
	ctx := context.Background()

	c, err := common.Dial(ctx, s.addr)
	require.NoError(t, err)

	defer func() {
		_ = c.Close()
	}()

	s.tracker.HandleFix(ctx, fix(t, 1.8600, 103.0850))

	resp, err := c.PressOverride(ctx, &pb.SystemActor{Hostname: "h", Username: "u"})
	require.NoError(t, err)
	require.False(t, resp.GetApplied())
	require.Equal(t, "inside", resp.GetState().GetState())
	require.Zero(t, s.buzzer.Stops())
}
