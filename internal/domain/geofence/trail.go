package geofence

import "github.com/paulmach/orb"

// defaultTrailCapacity is the initial capacity reserved for a session trail.
const defaultTrailCapacity = 256

// Trail is the append-only, ordered list of fixes visited in this session.
// It is not safe for concurrent use; the tracker serializes access.
type Trail struct {
	positions []Position
}

// NewTrail creates an empty trail.
func NewTrail() *Trail {
	return &Trail{
		positions: make([]Position, 0, defaultTrailCapacity),
	}
}

// Append adds a position to the end of the trail.
func (t *Trail) Append(p Position) {
	t.positions = append(t.positions, p)
}

// Len returns the number of recorded positions.
func (t *Trail) Len() int {
	return len(t.positions)
}

// Path returns a copy of the recorded positions in arrival order.
// Callers may read it any number of times without affecting the trail.
func (t *Trail) Path() []Position {
	result := make([]Position, len(t.positions))
	copy(result, t.positions)

	return result
}

// LineString returns the trail as lon/lat coordinates for rendering.
func (t *Trail) LineString() orb.LineString {
	line := make(orb.LineString, len(t.positions))
	for i, p := range t.positions {
		line[i] = orb.Point{p.Longitude, p.Latitude}
	}

	return line
}
