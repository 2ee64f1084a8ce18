// Package tracker implements the gRPC transport for the tracker service.
//
// It adapts domain types to the geofence.v1 contract messages and exposes a
// server that calls into a provided business-service interface.
package tracker
