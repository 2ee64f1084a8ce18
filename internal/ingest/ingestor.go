package ingest

import (
	"context"
	"time"

	"github.com/uswah23/smart-bike-map/internal/domain/geofence"
	"github.com/uswah23/smart-bike-map/internal/logger"
)

// Tracker consumes validated fixes.
type Tracker interface {
	HandleFix(ctx context.Context, position geofence.Position) *geofence.TrackedEntity
}

// Metrics counts rejected payloads.
type Metrics interface {
	FixMalformed()
}

// Ingestor decodes payloads and forwards valid fixes to the tracker.
type Ingestor struct {
	// tracker receives every valid fix.
	tracker Tracker
	// metrics counts malformed payloads, may be nil.
	metrics Metrics
	// now stamps the arrival time of a payload.
	now func() time.Time
}

// Option configures an Ingestor.
type Option func(*Ingestor)

// WithMetrics counts malformed payloads.
func WithMetrics(m Metrics) Option {
	return func(i *Ingestor) {
		i.metrics = m
	}
}

// WithClock overrides the arrival clock.
func WithClock(now func() time.Time) Option {
	return func(i *Ingestor) {
		if now != nil {
			i.now = now
		}
	}
}

// NewIngestor creates an Ingestor feeding the given tracker.
func NewIngestor(tracker Tracker, opts ...Option) *Ingestor {
	i := &Ingestor{
		tracker: tracker,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// Handle decodes one payload. A malformed payload is logged at warn level,
// counted and dropped without touching the tracker; the decode error is returned.
func (i *Ingestor) Handle(ctx context.Context, payload []byte) error {
	position, err := Decode(payload, i.now())
	if err != nil {
		logger.WarnKV(ctx, "Dropping malformed fix", "payload", string(payload), "error", err)

		if i.metrics != nil {
			i.metrics.FixMalformed()
		}

		return err
	}

	i.tracker.HandleFix(ctx, position)

	return nil
}
