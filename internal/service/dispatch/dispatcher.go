package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/uswah23/smart-bike-map/internal/config"
	"github.com/uswah23/smart-bike-map/internal/domain/geofence"
	"github.com/uswah23/smart-bike-map/internal/logger"
)

// ErrTransportUnavailable wraps every sink failure.
var ErrTransportUnavailable = errors.New("transport unavailable")

// Metrics counts dispatch failures and drops.
type Metrics interface {
	DispatchFailed(intent, sink string)
	DispatchDropped(intent string)
}

// job is one queued intent with the span that emitted it.
type job struct {
	intent geofence.Intent
	link   trace.SpanContext
}

// Dispatcher runs intents through its sinks on a single worker goroutine.
type Dispatcher struct {
	// sinks are tried in order for every intent.
	sinks []Sink
	// queue holds intents waiting for the worker.
	queue chan job
	// metrics counts failures and drops, may be nil.
	metrics Metrics
	// timeout bounds a single sink call.
	timeout time.Duration
	// tracer starts one span per executed intent.
	tracer trace.Tracer
	// closed is set once Close starts; guarded by mu.
	closed bool
	// mu guards closed and the queue close.
	mu sync.RWMutex
	// done is closed when the worker exits.
	done chan struct{}
	// startOnce guards the worker start.
	startOnce sync.Once
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithQueueSize sets the intent backlog; non-positive values keep the default.
func WithQueueSize(size int) Option {
	return func(d *Dispatcher) {
		if size > 0 {
			d.queue = make(chan job, size)
		}
	}
}

// WithTimeout bounds each sink call.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

// WithMetrics counts failures and dropped intents.
func WithMetrics(m Metrics) Option {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

// New creates a Dispatcher for the given sinks. Call Start before dispatching.
func New(sinks []Sink, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		sinks:   sinks,
		queue:   make(chan job, config.DefaultDispatchQueueSize),
		timeout: config.DefaultTimeout,
		tracer:  otel.Tracer("github.com/uswah23/smart-bike-map/internal/service/dispatch"),
		done:    make(chan struct{}),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Start launches the worker. Sink calls run on a context detached from ctx
// cancellation so intents queued before shutdown are still delivered.
func (d *Dispatcher) Start(ctx context.Context) {
	d.startOnce.Do(func() {
		ctx = logger.WithName(context.WithoutCancel(ctx), "dispatcher")

		go d.run(ctx)
	})
}

// Dispatch queues intents in order and returns immediately.
// Intents that do not fit in the queue are dropped and counted.
func (d *Dispatcher) Dispatch(ctx context.Context, intents []geofence.Intent) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	link := trace.SpanContextFromContext(ctx)

	for _, intent := range intents {
		if d.closed {
			d.drop(ctx, intent, "dispatcher closed")

			continue
		}

		select {
		case d.queue <- job{intent: intent, link: link}:
		default:
			d.drop(ctx, intent, "queue full")
		}
	}
}

// Close stops accepting intents, drains the queue and waits for the worker.
// The worker must have been started.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("drain dispatch queue: %w", ctx.Err())
	}
}

func (d *Dispatcher) run(ctx context.Context) {
	defer close(d.done)

	for j := range d.queue {
		d.execute(ctx, j)
	}

	logger.Debug(ctx, "Dispatch queue drained")
}

func (d *Dispatcher) execute(ctx context.Context, j job) {
	kind := j.intent.Kind.String()

	ctx, span := d.tracer.Start(ctx, "dispatch "+kind,
		trace.WithLinks(trace.Link{SpanContext: j.link}),
		trace.WithAttributes(attribute.String("intent", kind)),
	)
	defer span.End()

	for _, sink := range d.sinks {
		if !sink.Accepts(j.intent.Kind) {
			continue
		}

		if err := d.call(ctx, sink, j.intent); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, sink.Name())

			logger.ErrorKV(ctx, "Intent failed", "intent", kind, "sink", sink.Name(), "error", err)

			if d.metrics != nil {
				d.metrics.DispatchFailed(kind, sink.Name())
			}
		}
	}
}

func (d *Dispatcher) call(ctx context.Context, sink Sink, intent geofence.Intent) error {
	callCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := sink.Execute(callCtx, intent); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrTransportUnavailable, sink.Name(), err)
	}

	return nil
}

func (d *Dispatcher) drop(ctx context.Context, intent geofence.Intent, reason string) {
	logger.WarnKV(ctx, "Intent dropped", "intent", intent.Kind.String(), "reason", reason)

	if d.metrics != nil {
		d.metrics.DispatchDropped(intent.Kind.String())
	}
}
