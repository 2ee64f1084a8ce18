// Package geofence contains the core domain of the bike tracker.
//
// It defines Position and Boundary with the edge-inclusive containment
// predicate, the append-only Trail, and the alert state machine: Step takes
// the owned TrackedEntity and one Event and returns the next entity together
// with the Intents that the effect layer must execute. Nothing in this package
// performs I/O.
package geofence
