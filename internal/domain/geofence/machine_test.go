package geofence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fix(t *testing.T, b *Boundary, lat, lon float64) FixEvent {
	t.Helper()

	p := mustPosition(t, lat, lon)

	return FixEvent{Position: p, Containment: b.Evaluate(p)}
}

func kinds(intents []Intent) []IntentKind {
	result := make([]IntentKind, len(intents))
	for i, intent := range intents {
		result[i] = intent.Kind
	}

	return result
}

func override() OverrideEvent {
	return OverrideEvent{
		Actor: &Actor{
			Hostname: "ops-desk",
			Username: "operator",
		},
		PressedAt: time.Unix(1_700_000_100, 0),
	}
}

// TestStep_Scenarios walks scenarios A to D on the square boundary.
func TestStep_Scenarios(t *testing.T) {
	t.Parallel()

	b := mustBoundary(t, square())

	var entity TrackedEntity

	// A: inside fix only moves the marker.
	entity, intents := Step(entity, fix(t, b, 5, 5))
	require.Equal(t, []IntentKind{IntentUpdatePosition}, kinds(intents))
	require.Equal(t, StateInside, entity.State())
	require.NotNil(t, entity.Position)

	// B: leaving raises the alert.
	entity, intents = Step(entity, fix(t, b, 20, 20))
	require.Equal(t, []IntentKind{IntentUpdatePosition, IntentRaiseAlert}, kinds(intents))
	require.Equal(t, StateOutsideUnacknowledged, entity.State())
	require.True(t, entity.Alerted)

	// C: override stops the buzzer and notifies.
	entity, intents = Step(entity, override())
	require.Equal(t, []IntentKind{
		IntentSendBuzzerStop,
		IntentSendOverrideNotification,
		IntentHideOverrideControl,
	}, kinds(intents))
	require.Equal(t, StateOutsideOverridden, entity.State())
	require.Equal(t, "operator", entity.OverriddenBy.Username)

	// D: re-entry clears everything.
	entity, intents = Step(entity, fix(t, b, 5, 5))
	require.Equal(t, []IntentKind{IntentUpdatePosition, IntentClearAlert}, kinds(intents))
	require.Equal(t, StateInside, entity.State())
	require.False(t, entity.Alerted)
	require.False(t, entity.OverrideActive)
	require.Nil(t, entity.OverriddenBy)
}

// TestStep_AlertIsIdempotentPerExcursion raises exactly one alert for repeated outside fixes.
func TestStep_AlertIsIdempotentPerExcursion(t *testing.T) {
	t.Parallel()

	b := mustBoundary(t, square())

	var (
		entity TrackedEntity
		all    []Intent
	)

	for _, coords := range [][2]float64{{5, 5}, {20, 20}, {21, 21}, {22, 22}} {
		var intents []Intent

		entity, intents = Step(entity, fix(t, b, coords[0], coords[1]))
		all = append(all, intents...)
	}

	raised := 0

	for _, intent := range all {
		if intent.Kind == IntentRaiseAlert {
			raised++
		}
	}

	require.Equal(t, 1, raised)
	require.Equal(t, StateOutsideUnacknowledged, entity.State())
}

// TestStep_FirstFixOutsideRaisesAlert alerts when the very first fix is already outside.
func TestStep_FirstFixOutsideRaisesAlert(t *testing.T) {
	t.Parallel()

	b := mustBoundary(t, square())

	entity, intents := Step(TrackedEntity{}, fix(t, b, 20, 20))
	require.Equal(t, []IntentKind{IntentUpdatePosition, IntentRaiseAlert}, kinds(intents))
	require.True(t, entity.Alerted)
}

// TestStep_OverrideIsIdempotent emits one buzzer/notification pair for two presses.
func TestStep_OverrideIsIdempotent(t *testing.T) {
	t.Parallel()

	b := mustBoundary(t, square())

	entity, _ := Step(TrackedEntity{}, fix(t, b, 20, 20))

	entity, first := Step(entity, override())
	entity, second := Step(entity, override())

	require.Len(t, first, 3)
	require.Empty(t, second)
	require.Equal(t, StateOutsideOverridden, entity.State())
}

// TestStep_OverrideWhileInsideIsNoop ignores overrides with nothing to override.
func TestStep_OverrideWhileInsideIsNoop(t *testing.T) {
	t.Parallel()

	b := mustBoundary(t, square())

	// Before any fix.
	entity, intents := Step(TrackedEntity{}, override())
	require.Empty(t, intents)
	require.Equal(t, TrackedEntity{}, entity)

	// After an inside fix.
	entity, _ = Step(entity, fix(t, b, 5, 5))
	entity, intents = Step(entity, override())
	require.Empty(t, intents)
	require.False(t, entity.OverrideActive)
}

// TestStep_OverriddenExcursionStaysQuiet does not alert again while overridden.
func TestStep_OverriddenExcursionStaysQuiet(t *testing.T) {
	t.Parallel()

	b := mustBoundary(t, square())

	entity, _ := Step(TrackedEntity{}, fix(t, b, 20, 20))
	entity, _ = Step(entity, override())

	entity, intents := Step(entity, fix(t, b, 30, 30))
	require.Equal(t, []IntentKind{IntentUpdatePosition}, kinds(intents))
	require.Equal(t, StateOutsideOverridden, entity.State())
}

// TestStep_ReArmAfterReentry alerts on the second excursion after an override.
func TestStep_ReArmAfterReentry(t *testing.T) {
	t.Parallel()

	b := mustBoundary(t, square())

	var entity TrackedEntity

	entity, _ = Step(entity, fix(t, b, 5, 5))
	entity, _ = Step(entity, fix(t, b, 20, 20))
	entity, _ = Step(entity, override())
	entity, _ = Step(entity, fix(t, b, 5, 5))

	entity, intents := Step(entity, fix(t, b, 20, 20))
	require.Equal(t, []IntentKind{IntentUpdatePosition, IntentRaiseAlert}, kinds(intents))
	require.Equal(t, StateOutsideUnacknowledged, entity.State())
}

// TestStep_AlertedIffLastFixOutside checks the alerted invariant over a mixed sequence.
func TestStep_AlertedIffLastFixOutside(t *testing.T) {
	t.Parallel()

	b := mustBoundary(t, square())
	sequence := [][2]float64{{5, 5}, {20, 20}, {1, 1}, {-5, -5}, {-6, -6}, {9, 9}, {11, 11}}

	var entity TrackedEntity

	for i, coords := range sequence {
		event := fix(t, b, coords[0], coords[1])
		entity, _ = Step(entity, event)

		require.Equal(t, event.Containment == Outside, entity.Alerted, "step %d", i)

		if i == 3 {
			entity, _ = Step(entity, override())
			require.True(t, entity.OverrideActive)
		}
	}
}

// TestStep_DoesNotAliasActor keeps the entity independent of the caller's actor.
func TestStep_DoesNotAliasActor(t *testing.T) {
	t.Parallel()

	b := mustBoundary(t, square())
	event := override()

	entity, _ := Step(TrackedEntity{}, fix(t, b, 20, 20))
	entity, _ = Step(entity, event)

	event.Actor.Username = "someone-else"

	require.Equal(t, "operator", entity.OverriddenBy.Username)
	require.NotSame(t, event.Actor, entity.OverriddenBy)
}
