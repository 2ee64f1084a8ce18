// Package version exposes build metadata for the geofence binaries.
//
// Version, Commit and BuildTime are injected at build time via ldflags:
//
//	go build -ldflags "-X github.com/uswah23/smart-bike-map/internal/version.Version=1.2.0"
package version
