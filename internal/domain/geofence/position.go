package geofence

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	// MinLatitude and MaxLatitude bound valid WGS84 latitudes.
	MinLatitude = -90.0
	MaxLatitude = 90.0
	// MinLongitude and MaxLongitude bound valid WGS84 longitudes.
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ErrMalformedFix is returned when a fix carries missing, non-finite or
// out-of-range coordinates. Such fixes never reach the state machine.
var ErrMalformedFix = errors.New("malformed fix")

// Position is one validated GPS sample. The zero value is never produced by
// NewPosition for a rejected fix.
type Position struct {
	// Latitude in decimal degrees, [-90, 90].
	Latitude float64
	// Longitude in decimal degrees, [-180, 180].
	Longitude float64
	// ReceivedAt is the arrival time of the fix.
	ReceivedAt time.Time
}

// NewPosition validates coordinates and builds a Position.
func NewPosition(latitude, longitude float64, receivedAt time.Time) (Position, error) {
	if math.IsNaN(latitude) || math.IsInf(latitude, 0) {
		return Position{}, fmt.Errorf("%w: latitude is not finite", ErrMalformedFix)
	}

	if math.IsNaN(longitude) || math.IsInf(longitude, 0) {
		return Position{}, fmt.Errorf("%w: longitude is not finite", ErrMalformedFix)
	}

	if latitude < MinLatitude || latitude > MaxLatitude {
		return Position{}, fmt.Errorf("%w: latitude %v out of range", ErrMalformedFix, latitude)
	}

	if longitude < MinLongitude || longitude > MaxLongitude {
		return Position{}, fmt.Errorf("%w: longitude %v out of range", ErrMalformedFix, longitude)
	}

	return Position{
		Latitude:   latitude,
		Longitude:  longitude,
		ReceivedAt: receivedAt,
	}, nil
}

// Clone returns a copy of the position pointer target, nil-safe.
func (p *Position) Clone() *Position {
	if p == nil {
		return nil
	}

	cloned := *p

	return &cloned
}

// DisplayLatitude renders latitude with six decimals, as shown next to the map.
func (p Position) DisplayLatitude() string {
	return fmt.Sprintf("%.6f", p.Latitude)
}

// DisplayLongitude renders longitude with six decimals, as shown next to the map.
func (p Position) DisplayLongitude() string {
	return fmt.Sprintf("%.6f", p.Longitude)
}
