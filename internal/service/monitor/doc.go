// Package monitor implements geofence-monitor, a console watcher that polls
// the tracker over gRPC and logs every alert transition it observes.
package monitor
