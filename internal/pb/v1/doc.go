// Package pb holds the generated geofence.v1 protobuf messages and the
// TrackerService gRPC stubs.
//
//go:generate protoc -I ../../../api/proto --go_out=../../.. --go_opt=module=github.com/uswah23/smart-bike-map --go-grpc_out=../../.. --go-grpc_opt=module=github.com/uswah23/smart-bike-map geofence/v1/tracker.proto
package pb
