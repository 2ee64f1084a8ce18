//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/uswah23/smart-bike-map/internal/pb/v1"
)

// TestDetectActor ensures hostname and username are detected and non-empty.
func TestDetectActor(t *testing.T) {
	t.Parallel()

	a, err := DetectActor()
	require.NoError(t, err)
	require.NotEmpty(t, a.GetHostname())
	require.NotEmpty(t, a.GetUsername())
}

// TestTrimDomain strips Windows domain prefixes.
func TestTrimDomain(t *testing.T) {
	t.Parallel()

	require.Equal(t, "guard", trimDomain(`CAMPUS\guard`))
	require.Equal(t, "guard", trimDomain("guard"))
}

// TestFormatState renders position, actor and change time.
func TestFormatState(t *testing.T) {
	t.Parallel()

	require.Equal(t, "<nil state>", FormatState(nil))
	require.Equal(t, "inside at no fix yet", FormatState(&pb.TrackerStateResponse{State: "inside"}))

	changed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	state := &pb.TrackerStateResponse{
		State:        "outside_overridden",
		Position:     &pb.Position{DisplayLatitude: "1.850000", DisplayLongitude: "103.120000"},
		OverriddenBy: &pb.SystemActor{Hostname: "kiosk", Username: "guard"},
		ChangedAt:    timestamppb.New(changed),
	}

	require.Equal(t,
		"outside_overridden at 1.850000, 103.120000 overridden by guard@kiosk since 2024-05-01T10:00:00Z",
		FormatState(state))
	require.Equal(t, "<unknown>", FormatActor(nil))
}
