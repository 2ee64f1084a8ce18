// Package server runs geofence-server, the process that owns the tracker.
//
// It consumes GPS fixes from MQTT, evaluates them against the campus
// geofence, executes the resulting side effects (buzzer stop, chat
// notification, event fan-out, fix archive, renderer signals) and serves
// the gRPC and HTTP APIs.
package server
