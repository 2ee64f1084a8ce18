package tracker

import (
	"context"
	"sync"
	"time"

	"github.com/paulmach/orb"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/uswah23/smart-bike-map/internal/domain/geofence"
	"github.com/uswah23/smart-bike-map/internal/logger"
	"github.com/uswah23/smart-bike-map/internal/service/signals"
)

// Dispatcher receives the intents of each event in order. It must not block.
type Dispatcher interface {
	Dispatch(ctx context.Context, intents []geofence.Intent)
}

// Metrics observes processed events.
type Metrics interface {
	FixProcessed(containment string)
	AlertRaised()
	OverrideApplied()
	SetAlertState(state int)
}

// Tracker serializes fixes and overrides for one tracked entity.
type Tracker struct {
	// boundary is the immutable geofence.
	boundary *geofence.Boundary
	// dispatcher executes intents outside the lock.
	dispatcher Dispatcher
	// feed receives UI signals under the lock, may be nil.
	feed *signals.Feed
	// metrics may be nil.
	metrics Metrics
	// tracer starts one span per event.
	tracer trace.Tracer
	// now stamps override presses.
	now func() time.Time
	// entity is the current record; guarded by mu.
	entity geofence.TrackedEntity
	// trail holds every valid fix; guarded by mu.
	trail *geofence.Trail
	// mu serializes events.
	mu sync.RWMutex
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithMetrics observes processed events.
func WithMetrics(m Metrics) Option {
	return func(t *Tracker) {
		t.metrics = m
	}
}

// WithFeed appends UI signals to feed in event order, before intents are
// queued for the dispatcher.
func WithFeed(feed *signals.Feed) Option {
	return func(t *Tracker) {
		t.feed = feed
	}
}

// WithClock overrides the clock stamping override presses.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// New creates a Tracker for boundary. A nil dispatcher discards intents.
func New(boundary *geofence.Boundary, dispatcher Dispatcher, opts ...Option) *Tracker {
	t := &Tracker{
		boundary:   boundary,
		dispatcher: dispatcher,
		tracer:     otel.Tracer("github.com/uswah23/smart-bike-map/internal/service/tracker"),
		now:        time.Now,
		trail:      geofence.NewTrail(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Handle applies one event, appends fixes to the trail, publishes UI signals,
// queues the emitted intents and returns a snapshot with the intents.
func (t *Tracker) Handle(ctx context.Context, event geofence.Event) (geofence.Snapshot, []geofence.Intent) {
	ctx, span := t.tracer.Start(ctx, "tracker.Handle")
	defer span.End()

	t.mu.Lock()
	defer t.mu.Unlock()

	before := t.entity.State()
	next, intents := geofence.Step(t.entity, event)
	t.entity = next
	after := next.State()

	if fix, ok := event.(geofence.FixEvent); ok {
		t.trail.Append(fix.Position)
		t.observeFix(fix)
	}

	span.SetAttributes(
		attribute.String("state.before", before.String()),
		attribute.String("state.after", after.String()),
		attribute.Int("intents", len(intents)),
	)

	if before != after {
		t.observeTransition(ctx, before, after)
	}

	if t.feed != nil {
		for _, intent := range intents {
			t.feed.Append(intent)
		}
	}

	if t.dispatcher != nil && len(intents) > 0 {
		t.dispatcher.Dispatch(ctx, intents)
	}

	return t.snapshot(), intents
}

// HandleFix evaluates containment of a validated fix and applies it.
func (t *Tracker) HandleFix(ctx context.Context, position geofence.Position) *geofence.TrackedEntity {
	snapshot, _ := t.Handle(ctx, geofence.FixEvent{
		Position:    position,
		Containment: t.boundary.Evaluate(position),
	})

	return snapshot.Entity
}

// PressOverride applies an operator override. The boolean reports whether it
// stopped an active alert; otherwise it was a no-op.
func (t *Tracker) PressOverride(ctx context.Context, actor *geofence.Actor) (geofence.Snapshot, bool) {
	snapshot, intents := t.Handle(ctx, geofence.OverrideEvent{
		Actor:     actor.Clone(),
		PressedAt: t.now(),
	})

	return snapshot, len(intents) > 0
}

// Snapshot returns the entity and trail length read under one lock.
func (t *Tracker) Snapshot(context.Context) geofence.Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.snapshot()
}

// State returns a snapshot of the tracked entity.
func (t *Tracker) State(context.Context) *geofence.TrackedEntity {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.entity.Clone()
}

// Trail returns a copy of the recorded path.
func (t *Tracker) Trail(context.Context) []geofence.Position {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.trail.Path()
}

// TrailLen returns the number of recorded fixes without copying the trail.
func (t *Tracker) TrailLen(context.Context) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.trail.Len()
}

// TrailLine returns the recorded path as a (lon, lat) line string.
func (t *Tracker) TrailLine(context.Context) orb.LineString {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.trail.LineString()
}

// Boundary returns the geofence the tracker checks against.
func (t *Tracker) Boundary() *geofence.Boundary {
	return t.boundary
}

// snapshot must be called with mu held.
func (t *Tracker) snapshot() geofence.Snapshot {
	return geofence.Snapshot{
		Entity:      t.entity.Clone(),
		TrailLength: t.trail.Len(),
	}
}

func (t *Tracker) observeFix(fix geofence.FixEvent) {
	if t.metrics == nil {
		return
	}

	t.metrics.FixProcessed(fix.Containment.String())
}

func (t *Tracker) observeTransition(ctx context.Context, before, after geofence.AlertState) {
	logger.InfoKV(ctx, "Alert state changed",
		"from", before.String(),
		"to", after.String(),
		"overridden_by", t.entity.OverriddenBy,
	)

	if t.metrics == nil {
		return
	}

	t.metrics.SetAlertState(int(after))

	switch after {
	case geofence.StateOutsideUnacknowledged:
		t.metrics.AlertRaised()
	case geofence.StateOutsideOverridden:
		t.metrics.OverrideApplied()
	}
}
