package geofence

import "time"

// Actor identifies who pressed the override.
type Actor struct {
	// Hostname is the machine name where the override was pressed.
	Hostname string
	// Username is the system or web user who pressed it.
	Username string
}

// Clone returns a deep copy of the actor.
func (a *Actor) Clone() *Actor {
	if a == nil {
		return nil
	}

	cloned := *a

	return &cloned
}

// TrackedEntity is the mutable record of the tracked bicycle.
// It is owned by a single tracker and passed through Step by value.
type TrackedEntity struct {
	// Position is the latest fix, nil until the first fix arrives.
	Position *Position
	// Alerted is set when the bike left the boundary and cleared on re-entry.
	Alerted bool
	// OverrideActive is set by an override during an excursion.
	OverrideActive bool
	// OverriddenBy records who pressed the override for the current excursion.
	OverriddenBy *Actor
	// ChangedAt is when the alert state last changed.
	ChangedAt time.Time
}

// State derives the alert state from the entity flags.
func (e *TrackedEntity) State() AlertState {
	switch {
	case e.Alerted && e.OverrideActive:
		return StateOutsideOverridden
	case e.Alerted:
		return StateOutsideUnacknowledged
	default:
		return StateInside
	}
}

// Clone returns a copy that shares no pointers with the original.
func (e *TrackedEntity) Clone() *TrackedEntity {
	return &TrackedEntity{
		Position:       e.Position.Clone(),
		Alerted:        e.Alerted,
		OverrideActive: e.OverrideActive,
		OverriddenBy:   e.OverriddenBy.Clone(),
		ChangedAt:      e.ChangedAt,
	}
}

// Snapshot is a consistent view of the entity and the size of its trail.
type Snapshot struct {
	// Entity is a copy of the tracked entity.
	Entity *TrackedEntity
	// TrailLength is the number of valid fixes recorded so far.
	TrailLength int
}
