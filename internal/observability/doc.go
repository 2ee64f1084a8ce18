// Package observability provides Prometheus metrics and OpenTelemetry tracing
// for the tracker process.
package observability
