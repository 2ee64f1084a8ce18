// Package http exposes the renderer API with gin: tracker state, the UI signal
// feed, the override control, boundary and trail GeoJSON, fix history, health
// and Prometheus metrics.
package http
