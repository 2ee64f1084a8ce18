package signals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/uswah23/smart-bike-map/internal/domain/geofence"
)

// TestFeed_AppendAndSince sequences UI intents and skips the rest.
func TestFeed_AppendAndSince(t *testing.T) {
	t.Parallel()

	f := NewFeed(0)

	_, ok := f.Append(geofence.Intent{Kind: geofence.IntentSendBuzzerStop})
	require.False(t, ok)

	first, ok := f.Append(geofence.Intent{Kind: geofence.IntentUpdatePosition})
	require.True(t, ok)
	require.Equal(t, uint64(1), first.Seq)

	actor := &geofence.Actor{Hostname: "kiosk", Username: "guard"}
	second, ok := f.Append(geofence.Intent{Kind: geofence.IntentHideOverrideControl, Actor: actor})
	require.True(t, ok)
	require.Equal(t, uint64(2), second.Seq)
	require.NotSame(t, actor, second.Actor)

	require.Len(t, f.Since(0), 2)

	rest := f.Since(1)
	require.Len(t, rest, 1)
	require.Equal(t, geofence.IntentHideOverrideControl, rest[0].Kind)
	require.Equal(t, "guard", rest[0].Actor.Username)

	require.Empty(t, f.Since(2))
	require.Equal(t, uint64(2), f.Last())
}

// TestFeed_EvictsOldest keeps only the newest signals.
func TestFeed_EvictsOldest(t *testing.T) {
	t.Parallel()

	f := NewFeed(3)
	f.now = func() time.Time { return time.Unix(0, 0) }

	for range 5 {
		f.Append(geofence.Intent{Kind: geofence.IntentUpdatePosition})
	}

	all := f.Since(0)
	require.Len(t, all, 3)
	require.Equal(t, uint64(3), all[0].Seq)
	require.Equal(t, uint64(5), all[2].Seq)
	require.Equal(t, uint64(5), f.Last())
}
