// Package events publishes geofence events (exit, override, re-entry) to a
// RabbitMQ fanout exchange so other systems can react to them.
package events
