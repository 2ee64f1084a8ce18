package observability

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// Collector bundles the tracker metrics and helpers to expose them.
// All methods are safe on a nil receiver.
type Collector struct {
	gatherer prometheus.Gatherer

	Fixes            *prometheus.CounterVec
	MalformedFixes   prometheus.Counter
	Alerts           prometheus.Counter
	Overrides        prometheus.Counter
	DispatchFailures *prometheus.CounterVec
	DispatchDrops    *prometheus.CounterVec
	AlertState       prometheus.Gauge

	RPCRequests  *prometheus.CounterVec
	RPCDurations *prometheus.HistogramVec
}

// NewCollector registers the tracker metrics against reg,
// defaulting to the global Prometheus registry when nil.
//
//nolint:funlen // One block per metric.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	fixes, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "geofence_fixes_total",
		Help: "Valid GPS fixes processed, labeled by containment.",
	}, []string{"containment"}), "geofence_fixes_total")
	if err != nil {
		return nil, err
	}

	malformed, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geofence_fixes_malformed_total",
		Help: "Fix payloads dropped because they could not be decoded or validated.",
	}), "geofence_fixes_malformed_total")
	if err != nil {
		return nil, err
	}

	alerts, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geofence_alerts_total",
		Help: "Exit alerts raised.",
	}), "geofence_alerts_total")
	if err != nil {
		return nil, err
	}

	overrides, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geofence_overrides_total",
		Help: "Overrides that stopped an active alert.",
	}), "geofence_overrides_total")
	if err != nil {
		return nil, err
	}

	failures, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "geofence_dispatch_failures_total",
		Help: "Intents whose side effect failed, labeled by intent and sink.",
	}, []string{"intent", "sink"}), "geofence_dispatch_failures_total")
	if err != nil {
		return nil, err
	}

	dropped, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "geofence_dispatch_dropped_total",
		Help: "Intents dropped because the dispatch queue was full.",
	}, []string{"intent"}), "geofence_dispatch_dropped_total")
	if err != nil {
		return nil, err
	}

	state, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "geofence_alert_state",
		Help: "Current alert state: 0 inside, 1 outside unacknowledged, 2 outside overridden.",
	}), "geofence_alert_state")
	if err != nil {
		return nil, err
	}

	requests, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "geofence_rpc_requests_total",
		Help: "Handled tracker RPCs, labeled by service, method and gRPC status code.",
	}, []string{"service", "method", "code"}), "geofence_rpc_requests_total")
	if err != nil {
		return nil, err
	}

	durations, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "geofence_rpc_duration_seconds",
		Help:    "Tracker RPC latency in seconds.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"service", "method"}), "geofence_rpc_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:         gatherer,
		Fixes:            fixes,
		MalformedFixes:   malformed,
		Alerts:           alerts,
		Overrides:        overrides,
		DispatchFailures: failures,
		DispatchDrops:    dropped,
		AlertState:       state,
		RPCRequests:      requests,
		RPCDurations:     durations,
	}, nil
}

// FixProcessed counts a valid fix.
func (c *Collector) FixProcessed(containment string) {
	if c == nil {
		return
	}

	c.Fixes.WithLabelValues(containment).Inc()
}

// FixMalformed counts a dropped payload.
func (c *Collector) FixMalformed() {
	if c == nil {
		return
	}

	c.MalformedFixes.Inc()
}

// AlertRaised counts an exit alert.
func (c *Collector) AlertRaised() {
	if c == nil {
		return
	}

	c.Alerts.Inc()
}

// OverrideApplied counts an effective override.
func (c *Collector) OverrideApplied() {
	if c == nil {
		return
	}

	c.Overrides.Inc()
}

// SetAlertState publishes the numeric alert state.
func (c *Collector) SetAlertState(state int) {
	if c == nil {
		return
	}

	c.AlertState.Set(float64(state))
}

// DispatchFailed counts a failed side effect.
func (c *Collector) DispatchFailed(intent, sink string) {
	if c == nil {
		return
	}

	c.DispatchFailures.WithLabelValues(intent, sink).Inc()
}

// DispatchDropped counts an intent rejected by a full queue.
func (c *Collector) DispatchDropped(intent string) {
	if c == nil {
		return
	}

	c.DispatchDrops.WithLabelValues(intent).Inc()
}

// UnaryServerInterceptor records request counts and durations for unary RPCs.
func (c *Collector) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		if c == nil {
			return resp, err
		}

		fullMethod := ""
		if info != nil {
			fullMethod = info.FullMethod
		}

		service, method := SplitMethod(fullMethod)

		c.RPCRequests.WithLabelValues(service, method, status.Code(err).String()).Inc()
		c.RPCDurations.WithLabelValues(service, method).Observe(time.Since(start).Seconds())

		return resp, err
	}
}

// Handler exposes the /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}

	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// SplitMethod parses "/pkg.Service/Method" into service and method,
// returning "unknown" for parts it cannot find.
func SplitMethod(fullMethod string) (string, string) {
	parts := strings.Split(strings.TrimPrefix(fullMethod, "/"), "/")
	if len(parts) < 2 {
		return "unknown", "unknown"
	}

	service := parts[len(parts)-2]
	method := parts[len(parts)-1]

	if dot := strings.LastIndex(service, "."); dot >= 0 && dot+1 < len(service) {
		service = service[dot+1:]
	}

	if service == "" {
		service = "unknown"
	}

	if method == "" {
		method = "unknown"
	}

	return service, method
}

// errIncompatibleCollector is returned when a metric name is taken by another type.
var errIncompatibleCollector = errors.New("collector already registered with incompatible type")

// register adds collector to reg, reusing an existing collector of the same type.
func register[T prometheus.Collector](reg prometheus.Registerer, collector T, name string) (T, error) {
	err := reg.Register(collector)
	if err == nil {
		return collector, nil
	}

	var are prometheus.AlreadyRegisteredError
	if !errors.As(err, &are) {
		return collector, fmt.Errorf("register %s: %w", name, err)
	}

	existing, ok := are.ExistingCollector.(T)
	if !ok {
		return collector, fmt.Errorf("%s: %w", name, errIncompatibleCollector)
	}

	return existing, nil
}

func registerCounter(reg prometheus.Registerer, c prometheus.Counter, name string) (prometheus.Counter, error) {
	return register(reg, c, name)
}

func registerCounterVec(
	reg prometheus.Registerer,
	vec *prometheus.CounterVec,
	name string,
) (*prometheus.CounterVec, error) {
	return register(reg, vec, name)
}

func registerHistogramVec(
	reg prometheus.Registerer,
	vec *prometheus.HistogramVec,
	name string,
) (*prometheus.HistogramVec, error) {
	return register(reg, vec, name)
}

func registerGauge(reg prometheus.Registerer, g prometheus.Gauge, name string) (prometheus.Gauge, error) {
	return register(reg, g, name)
}
