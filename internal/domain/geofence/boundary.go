package geofence

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/project"
)

// mercatorMaxLatitude is the latitude at which Web Mercator is clipped by web maps.
const mercatorMaxLatitude = 85.0511287798

// minRingVertices is the smallest closed ring: a triangle plus the closing vertex.
const minRingVertices = 4

// ErrInvalidBoundary is returned when a boundary definition cannot be used.
var ErrInvalidBoundary = errors.New("invalid boundary")

// Containment is the result of evaluating a position against a boundary.
type Containment int

const (
	// Inside means the position is within or exactly on the edge of a ring.
	Inside Containment = iota + 1
	// Outside means the position is outside every ring.
	Outside
)

// String implements fmt.Stringer.
func (c Containment) String() string {
	switch c {
	case Inside:
		return "inside"
	case Outside:
		return "outside"
	default:
		return "unknown"
	}
}

// Boundary is an immutable geofence made of one or more closed rings of
// (lon, lat) vertices. A position is inside when any ring contains it.
type Boundary struct {
	// rings keeps the vertices as supplied, in WGS84 lon/lat.
	rings []orb.Ring
	// projected holds the same rings in Web Mercator for the planar test.
	projected []orb.Ring
}

// NewBoundary validates and copies rings into a Boundary.
func NewBoundary(rings []orb.Ring) (*Boundary, error) {
	if len(rings) == 0 {
		return nil, fmt.Errorf("%w: no rings", ErrInvalidBoundary)
	}

	b := &Boundary{
		rings:     make([]orb.Ring, 0, len(rings)),
		projected: make([]orb.Ring, 0, len(rings)),
	}

	for i, ring := range rings {
		if err := validateRing(ring); err != nil {
			return nil, fmt.Errorf("%w: ring %d: %w", ErrInvalidBoundary, i, err)
		}

		cloned := make(orb.Ring, len(ring))
		copy(cloned, ring)

		projected := make(orb.Ring, len(ring))
		for j, vertex := range ring {
			projected[j] = toMercator(vertex)
		}

		b.rings = append(b.rings, cloned)
		b.projected = append(b.projected, projected)
	}

	return b, nil
}

// Contains reports whether the position lies inside or on the edge of any ring.
// The test is planar, in Web Mercator coordinates, and ignores ring winding.
func (b *Boundary) Contains(p Position) bool {
	point := toMercator(orb.Point{p.Longitude, p.Latitude})

	for _, ring := range b.projected {
		if planar.RingContains(ring, point) {
			return true
		}
	}

	return false
}

// Evaluate maps Contains to a Containment value.
func (b *Boundary) Evaluate(p Position) Containment {
	if b.Contains(p) {
		return Inside
	}

	return Outside
}

// Rings returns a copy of the boundary rings in lon/lat order.
func (b *Boundary) Rings() []orb.Ring {
	result := make([]orb.Ring, len(b.rings))
	for i, ring := range b.rings {
		result[i] = make(orb.Ring, len(ring))
		copy(result[i], ring)
	}

	return result
}

// Polygon returns the rings as an orb.Polygon, convenient for GeoJSON output.
func (b *Boundary) Polygon() orb.Polygon {
	return orb.Polygon(b.Rings())
}

// Center returns the centroid of the first ring's bounding box.
func (b *Boundary) Center() orb.Point {
	return b.rings[0].Bound().Center()
}

// validateRing checks vertex count, closure and coordinate ranges.
func validateRing(ring orb.Ring) error {
	if len(ring) < minRingVertices {
		return fmt.Errorf("need at least %d vertices, got %d", minRingVertices, len(ring))
	}

	if ring[0] != ring[len(ring)-1] {
		return errors.New("ring is not closed")
	}

	for i, vertex := range ring {
		lon, lat := vertex[0], vertex[1]
		if math.IsNaN(lon) || math.IsNaN(lat) || math.IsInf(lon, 0) || math.IsInf(lat, 0) {
			return fmt.Errorf("vertex %d is not finite", i)
		}

		if lon < MinLongitude || lon > MaxLongitude || lat < MinLatitude || lat > MaxLatitude {
			return fmt.Errorf("vertex %d out of range: %v", i, vertex)
		}
	}

	return nil
}

// toMercator projects a lon/lat point to Web Mercator, clamping the latitude
// the same way web maps do so poles stay finite.
func toMercator(p orb.Point) orb.Point {
	lat := math.Max(-mercatorMaxLatitude, math.Min(mercatorMaxLatitude, p[1]))

	return project.WGS84.ToMercator(orb.Point{p[0], lat})
}
