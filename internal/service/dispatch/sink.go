package dispatch

import (
	"context"
	"slices"

	"github.com/uswah23/smart-bike-map/internal/domain/geofence"
)

// Sink performs the side effect of some intent kinds.
type Sink interface {
	// Name labels the sink in logs and metrics.
	Name() string
	// Accepts reports whether the sink handles the intent kind.
	Accepts(kind geofence.IntentKind) bool
	// Execute performs the side effect.
	Execute(ctx context.Context, intent geofence.Intent) error
}

// Buzzer sends the stop command to the bike.
type Buzzer interface {
	StopBuzzer(ctx context.Context) error
}

// Notifier sends the override message to the chat.
type Notifier interface {
	NotifyOverride(ctx context.Context, actor *geofence.Actor) error
}

// EventPublisher fans geofence events out to other systems.
type EventPublisher interface {
	Publish(ctx context.Context, intent geofence.Intent) error
}

// FixArchive stores every processed fix.
type FixArchive interface {
	SaveFix(ctx context.Context, position geofence.Position) error
}

// funcSink adapts a function to Sink.
type funcSink struct {
	name  string
	kinds []geofence.IntentKind
	fn    func(ctx context.Context, intent geofence.Intent) error
}

// NewSink creates a sink running fn for the listed intent kinds.
func NewSink(
	name string,
	fn func(ctx context.Context, intent geofence.Intent) error,
	kinds ...geofence.IntentKind,
) Sink {
	return &funcSink{name: name, kinds: kinds, fn: fn}
}

func (s *funcSink) Name() string {
	return s.name
}

func (s *funcSink) Accepts(kind geofence.IntentKind) bool {
	return slices.Contains(s.kinds, kind)
}

func (s *funcSink) Execute(ctx context.Context, intent geofence.Intent) error {
	return s.fn(ctx, intent)
}

// BuzzerSink sends the buzzer stop command on IntentSendBuzzerStop.
func BuzzerSink(b Buzzer) Sink {
	return NewSink("buzzer", func(ctx context.Context, _ geofence.Intent) error {
		return b.StopBuzzer(ctx)
	}, geofence.IntentSendBuzzerStop)
}

// NotifierSink notifies the chat on IntentSendOverrideNotification.
func NotifierSink(n Notifier) Sink {
	return NewSink("notifier", func(ctx context.Context, intent geofence.Intent) error {
		return n.NotifyOverride(ctx, intent.Actor)
	}, geofence.IntentSendOverrideNotification)
}

// EventSink publishes exit, override and re-entry events.
func EventSink(p EventPublisher) Sink {
	return NewSink("events", func(ctx context.Context, intent geofence.Intent) error {
		return p.Publish(ctx, intent)
	},
		geofence.IntentRaiseAlert,
		geofence.IntentSendOverrideNotification,
		geofence.IntentClearAlert,
	)
}

// ArchiveSink stores the fix carried by every IntentUpdatePosition.
func ArchiveSink(a FixArchive) Sink {
	return NewSink("archive", func(ctx context.Context, intent geofence.Intent) error {
		return a.SaveFix(ctx, intent.Position)
	}, geofence.IntentUpdatePosition)
}
