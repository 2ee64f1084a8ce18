package geofence

import "time"

// AlertState is the state of the alert machine, derived from TrackedEntity.
type AlertState int

const (
	// StateInside means no alert is active. It is also the state before the first fix.
	StateInside AlertState = iota
	// StateOutsideUnacknowledged means the bike left the boundary and nobody overrode the alert yet.
	StateOutsideUnacknowledged
	// StateOutsideOverridden means the alert was overridden for the current excursion.
	StateOutsideOverridden
)

// String implements fmt.Stringer.
func (s AlertState) String() string {
	switch s {
	case StateInside:
		return "inside"
	case StateOutsideUnacknowledged:
		return "outside_unacknowledged"
	case StateOutsideOverridden:
		return "outside_overridden"
	default:
		return "unknown"
	}
}

// Event is an input of the alert machine: FixEvent or OverrideEvent.
type Event interface {
	isEvent()
}

// FixEvent carries a validated position and its containment.
type FixEvent struct {
	Position    Position
	Containment Containment
}

// OverrideEvent is an operator pressing the override control.
type OverrideEvent struct {
	// Actor is who pressed the override, may be nil.
	Actor *Actor
	// PressedAt is when the override was pressed.
	PressedAt time.Time
}

func (FixEvent) isEvent()      {}
func (OverrideEvent) isEvent() {}

// IntentKind names a side effect requested by the machine.
type IntentKind int

const (
	// IntentUpdatePosition moves or creates the bike marker.
	IntentUpdatePosition IntentKind = iota + 1
	// IntentRaiseAlert shows the exit alert and the override control.
	IntentRaiseAlert
	// IntentSendBuzzerStop sends the buzzer stop command to the bike.
	IntentSendBuzzerStop
	// IntentSendOverrideNotification notifies the chat that the buzzer was stopped.
	IntentSendOverrideNotification
	// IntentHideOverrideControl hides the override control.
	IntentHideOverrideControl
	// IntentClearAlert hides the alert and the override control after re-entry.
	IntentClearAlert
)

// String implements fmt.Stringer.
func (k IntentKind) String() string {
	switch k {
	case IntentUpdatePosition:
		return "update_position"
	case IntentRaiseAlert:
		return "raise_alert"
	case IntentSendBuzzerStop:
		return "send_buzzer_stop"
	case IntentSendOverrideNotification:
		return "send_override_notification"
	case IntentHideOverrideControl:
		return "hide_override_control"
	case IntentClearAlert:
		return "clear_alert"
	default:
		return "unknown"
	}
}

// IsUISignal reports whether the intent is meant for renderers.
func (k IntentKind) IsUISignal() bool {
	switch k {
	case IntentUpdatePosition, IntentRaiseAlert, IntentHideOverrideControl, IntentClearAlert:
		return true
	default:
		return false
	}
}

// Intent describes a side effect to execute outside the machine.
type Intent struct {
	Kind IntentKind
	// Position is the fix that produced the intent; zero for override intents.
	Position Position
	// Actor is set on override intents.
	Actor *Actor
}

// Step applies one event to the entity and returns the next entity and the
// intents to execute, in order. Step never fails and never performs I/O.
func Step(entity TrackedEntity, event Event) (TrackedEntity, []Intent) {
	switch e := event.(type) {
	case FixEvent:
		return stepFix(entity, e)
	case OverrideEvent:
		return stepOverride(entity, e)
	default:
		return entity, nil
	}
}

func stepFix(entity TrackedEntity, e FixEvent) (TrackedEntity, []Intent) {
	position := e.Position
	entity.Position = &position

	intents := []Intent{{Kind: IntentUpdatePosition, Position: position}}

	switch e.Containment {
	case Outside:
		// One alert per excursion: already alerted or overridden stays quiet.
		if entity.Alerted {
			return entity, intents
		}

		entity.Alerted = true
		entity.ChangedAt = position.ReceivedAt

		return entity, append(intents, Intent{Kind: IntentRaiseAlert, Position: position})
	case Inside:
		if !entity.Alerted {
			return entity, intents
		}

		entity.Alerted = false
		entity.OverrideActive = false
		entity.OverriddenBy = nil
		entity.ChangedAt = position.ReceivedAt

		return entity, append(intents, Intent{Kind: IntentClearAlert, Position: position})
	default:
		return entity, intents
	}
}

func stepOverride(entity TrackedEntity, e OverrideEvent) (TrackedEntity, []Intent) {
	if entity.State() != StateOutsideUnacknowledged {
		return entity, nil
	}

	entity.OverrideActive = true
	entity.OverriddenBy = e.Actor.Clone()
	entity.ChangedAt = e.PressedAt

	var position Position
	if entity.Position != nil {
		position = *entity.Position
	}

	return entity, []Intent{
		{Kind: IntentSendBuzzerStop, Position: position, Actor: e.Actor.Clone()},
		{Kind: IntentSendOverrideNotification, Position: position, Actor: e.Actor.Clone()},
		{Kind: IntentHideOverrideControl, Position: position, Actor: e.Actor.Clone()},
	}
}
