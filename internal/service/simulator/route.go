package simulator

import (
	"math/rand/v2"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

var (
	// campusGate is a point inside the UTHM boundary.
	//nolint:gochecknoglobals // Fixed coordinates.
	campusGate = orb.Point{103.0850, 1.8600}
	// townCenter is a point east of the campus, outside the boundary.
	//nolint:gochecknoglobals // Fixed coordinates.
	townCenter = orb.Point{103.1200, 1.8500}
)

// DefaultRoute leaves the campus, rides to town and comes back.
func DefaultRoute(steps int) []orb.Point {
	out := Interpolate(campusGate, townCenter, steps)
	back := Interpolate(townCenter, campusGate, steps)

	// The turnaround point would otherwise be published twice.
	return append(out, back[1:]...)
}

// Interpolate returns steps+1 evenly spaced points from a to b inclusive.
func Interpolate(a, b orb.Point, steps int) []orb.Point {
	if steps < 1 {
		steps = 1
	}

	points := make([]orb.Point, 0, steps+1)

	for i := 0; i <= steps; i++ {
		f := float64(i) / float64(steps)
		points = append(points, orb.Point{
			a.Lon() + (b.Lon()-a.Lon())*f,
			a.Lat() + (b.Lat()-a.Lat())*f,
		})
	}

	return points
}

// Length returns the route length in meters.
func Length(route []orb.Point) float64 {
	return geo.Length(orb.LineString(route))
}

// jitter moves p by up to radius degrees on each axis.
func jitter(p orb.Point, radius float64) orb.Point {
	if radius <= 0 {
		return p
	}

	//nolint:gosec // Simulated drift, not security sensitive.
	return orb.Point{
		p.Lon() + (rand.Float64()-0.5)*2*radius,
		p.Lat() + (rand.Float64()-0.5)*2*radius,
	}
}
