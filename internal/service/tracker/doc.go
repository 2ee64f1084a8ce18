// Package tracker owns the tracked bicycle: its entity record, its trail and
// the boundary it is checked against. Every event is applied under one lock,
// so fixes and overrides from MQTT, gRPC and HTTP see a single ordered history.
package tracker
