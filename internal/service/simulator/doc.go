// Package simulator implements geofence-simulator, a stand-in for the bike's
// GPS unit that publishes fixes along a route crossing the campus boundary.
package simulator
