package tracker

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/uswah23/smart-bike-map/internal/domain/geofence"
	pb "github.com/uswah23/smart-bike-map/internal/pb/v1"
)

// Service abstracts the tracker operations the transport layer depends on.
type Service interface {
	Snapshot(ctx context.Context) geofence.Snapshot
	PressOverride(ctx context.Context, actor *geofence.Actor) (geofence.Snapshot, bool)
}

// Server implements the TrackerService gRPC API.
type Server struct {
	pb.UnimplementedTrackerServiceServer

	// service provides the tracker operations.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// GetTrackerState returns a snapshot of the tracked bicycle.
func (s *Server) GetTrackerState(ctx context.Context, _ *emptypb.Empty) (*pb.TrackerStateResponse, error) {
	return ToProtoState(s.service.Snapshot(ctx)), nil
}

// PressOverride stops an active alert on behalf of the request actor.
func (s *Server) PressOverride(ctx context.Context, req *pb.PressOverrideRequest) (*pb.PressOverrideResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if req.GetActor() == nil {
		return nil, status.Error(codes.InvalidArgument, "actor is required")
	}

	snapshot, applied := s.service.PressOverride(ctx, toDomainActor(req.GetActor()))

	return &pb.PressOverrideResponse{
		Applied: applied,
		State:   ToProtoState(snapshot),
	}, nil
}

// toDomainActor converts a contract actor to a domain Actor.
func toDomainActor(actor *pb.SystemActor) *geofence.Actor {
	if actor == nil {
		return nil
	}

	return &geofence.Actor{
		Hostname: actor.GetHostname(),
		Username: actor.GetUsername(),
	}
}

// ToProtoState converts a tracker snapshot to a TrackerStateResponse.
func ToProtoState(snapshot geofence.Snapshot) *pb.TrackerStateResponse {
	entity := snapshot.Entity
	if entity == nil {
		return &pb.TrackerStateResponse{State: geofence.StateInside.String()}
	}

	response := &pb.TrackerStateResponse{
		State:          entity.State().String(),
		Alerted:        entity.Alerted,
		OverrideActive: entity.OverrideActive,
		TrailLength:    int64(snapshot.TrailLength),
	}

	if p := entity.Position; p != nil {
		response.Position = &pb.Position{
			Latitude:         p.Latitude,
			Longitude:        p.Longitude,
			DisplayLatitude:  p.DisplayLatitude(),
			DisplayLongitude: p.DisplayLongitude(),
			ReceivedAt:       timestamppb.New(p.ReceivedAt),
		}
	}

	if a := entity.OverriddenBy; a != nil {
		response.OverriddenBy = &pb.SystemActor{
			Hostname: a.Hostname,
			Username: a.Username,
		}
	}

	if !entity.ChangedAt.IsZero() {
		response.ChangedAt = timestamppb.New(entity.ChangedAt)
	}

	return response
}
