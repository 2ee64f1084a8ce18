package ingest

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/uswah23/smart-bike-map/internal/domain/geofence"
)

// fixMessage is the JSON payload published by the bike. Extra fields are ignored.
type fixMessage struct {
	Latitude  *float64 `json:"lat" validate:"required,latitude"`
	Longitude *float64 `json:"lon" validate:"required,longitude"`
}

// validate checks fix payload tags.
//
//nolint:gochecknoglobals // validator caches struct metadata and is safe for concurrent use.
var validate = validator.New()

// Decode parses a fix payload and validates its coordinates.
// Every failure wraps geofence.ErrMalformedFix.
func Decode(payload []byte, receivedAt time.Time) (geofence.Position, error) {
	var msg fixMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return geofence.Position{}, fmt.Errorf("%w: %w", geofence.ErrMalformedFix, err)
	}

	if err := validate.Struct(&msg); err != nil {
		return geofence.Position{}, fmt.Errorf("%w: %w", geofence.ErrMalformedFix, err)
	}

	return geofence.NewPosition(*msg.Latitude, *msg.Longitude, receivedAt)
}

// Encode renders a position as a fix payload, the inverse of Decode.
func Encode(latitude, longitude float64) ([]byte, error) {
	payload, err := json.Marshal(&fixMessage{Latitude: &latitude, Longitude: &longitude})
	if err != nil {
		return nil, fmt.Errorf("marshal fix: %w", err)
	}

	return payload, nil
}
