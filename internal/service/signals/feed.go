package signals

import (
	"sync"
	"time"

	"github.com/uswah23/smart-bike-map/internal/domain/geofence"
)

// DefaultCapacity is the number of signals kept for polling renderers.
const DefaultCapacity = 1024

// Signal is one UI signal with a feed-wide sequence number.
type Signal struct {
	// Seq increases by one per signal, starting at 1.
	Seq uint64
	// Kind is the intent that produced the signal.
	Kind geofence.IntentKind
	// Position is the fix the signal refers to.
	Position geofence.Position
	// Actor is set for override related signals.
	Actor *geofence.Actor
	// EmittedAt is when the signal entered the feed.
	EmittedAt time.Time
}

// Feed is a bounded ring of signals. Older signals are evicted first.
type Feed struct {
	// signals holds at most capacity entries in sequence order.
	signals []Signal
	// capacity bounds the feed length.
	capacity int
	// last is the sequence number of the newest signal.
	last uint64
	// now stamps emitted signals.
	now func() time.Time
	// mu guards signals and last.
	mu sync.RWMutex
}

// NewFeed creates a feed keeping up to capacity signals, DefaultCapacity when not positive.
func NewFeed(capacity int) *Feed {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Feed{
		signals:  make([]Signal, 0, capacity),
		capacity: capacity,
		now:      time.Now,
	}
}

// Append records a UI intent and returns the stored signal.
// Intents that are not UI signals are ignored and reported with ok=false.
func (f *Feed) Append(intent geofence.Intent) (Signal, bool) {
	if !intent.Kind.IsUISignal() {
		return Signal{}, false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.last++

	signal := Signal{
		Seq:       f.last,
		Kind:      intent.Kind,
		Position:  intent.Position,
		Actor:     intent.Actor.Clone(),
		EmittedAt: f.now(),
	}

	if len(f.signals) == f.capacity {
		copy(f.signals, f.signals[1:])
		f.signals = f.signals[:len(f.signals)-1]
	}

	f.signals = append(f.signals, signal)

	return signal, true
}

// Since returns signals with Seq > after, oldest first.
func (f *Feed) Since(after uint64) []Signal {
	f.mu.RLock()
	defer f.mu.RUnlock()

	result := make([]Signal, 0, len(f.signals))

	for _, s := range f.signals {
		if s.Seq <= after {
			continue
		}

		s.Actor = s.Actor.Clone()
		result = append(result, s)
	}

	return result
}

// Last returns the newest sequence number, zero for an empty feed.
func (f *Feed) Last() uint64 {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.last
}
