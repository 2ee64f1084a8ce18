//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"fmt"
	"time"

	pb "github.com/uswah23/smart-bike-map/internal/pb/v1"
)

// FormatState converts a tracker snapshot to a readable log line.
func FormatState(state *pb.TrackerStateResponse) string {
	if state == nil {
		return "<nil state>"
	}

	position := "no fix yet"
	if p := state.GetPosition(); p != nil {
		position = fmt.Sprintf("%s, %s", p.GetDisplayLatitude(), p.GetDisplayLongitude())
	}

	result := fmt.Sprintf("%s at %s", state.GetState(), position)

	if state.GetOverriddenBy() != nil {
		result += " overridden by " + FormatActor(state.GetOverriddenBy())
	}

	if changedAt := state.GetChangedAt(); changedAt != nil {
		result += " since " + changedAt.AsTime().Format(time.RFC3339)
	}

	return result
}
