package http

import (
	"time"

	"github.com/uswah23/smart-bike-map/internal/domain/geofence"
	"github.com/uswah23/smart-bike-map/internal/service/signals"
)

type overrideRequest struct {
	Hostname string `json:"hostname" binding:"max=255"`
	Username string `json:"username" binding:"max=255"`
}

type positionResponse struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	DisplayLatitude  string  `json:"display_latitude"`
	DisplayLongitude string  `json:"display_longitude"`
	ReceivedAt       int64   `json:"received_at"`
}

type actorResponse struct {
	Hostname string `json:"hostname"`
	Username string `json:"username"`
}

type trackerResponse struct {
	State          string            `json:"state"`
	Position       *positionResponse `json:"position,omitempty"`
	Alerted        bool              `json:"alerted"`
	OverrideActive bool              `json:"override_active"`
	ShowOverride   bool              `json:"show_override"`
	OverriddenBy   *actorResponse    `json:"overridden_by,omitempty"`
	ChangedAt      *int64            `json:"changed_at,omitempty"`
	TrailLength    int               `json:"trail_length"`
}

type overrideResponse struct {
	Applied bool            `json:"applied"`
	State   trackerResponse `json:"state"`
}

type signalResponse struct {
	Seq       uint64           `json:"seq"`
	Kind      string           `json:"kind"`
	Position  positionResponse `json:"position"`
	Actor     *actorResponse   `json:"actor,omitempty"`
	EmittedAt time.Time        `json:"emitted_at"`
}

type signalsResponse struct {
	Last    uint64           `json:"last"`
	Signals []signalResponse `json:"signals"`
}

func toPositionResponse(p geofence.Position) positionResponse {
	return positionResponse{
		Latitude:         p.Latitude,
		Longitude:        p.Longitude,
		DisplayLatitude:  p.DisplayLatitude(),
		DisplayLongitude: p.DisplayLongitude(),
		ReceivedAt:       p.ReceivedAt.Unix(),
	}
}

func toActorResponse(a *geofence.Actor) *actorResponse {
	if a == nil {
		return nil
	}

	return &actorResponse{Hostname: a.Hostname, Username: a.Username}
}

func toTrackerResponse(snapshot geofence.Snapshot) trackerResponse {
	entity := snapshot.Entity
	state := entity.State()

	response := trackerResponse{
		State:          state.String(),
		Alerted:        entity.Alerted,
		OverrideActive: entity.OverrideActive,
		ShowOverride:   state == geofence.StateOutsideUnacknowledged,
		OverriddenBy:   toActorResponse(entity.OverriddenBy),
		TrailLength:    snapshot.TrailLength,
	}

	if entity.Position != nil {
		p := toPositionResponse(*entity.Position)
		response.Position = &p
	}

	if !entity.ChangedAt.IsZero() {
		changedAt := entity.ChangedAt.Unix()
		response.ChangedAt = &changedAt
	}

	return response
}

func toSignalResponse(s signals.Signal) signalResponse {
	return signalResponse{
		Seq:       s.Seq,
		Kind:      s.Kind.String(),
		Position:  toPositionResponse(s.Position),
		Actor:     toActorResponse(s.Actor),
		EmittedAt: s.EmittedAt,
	}
}
