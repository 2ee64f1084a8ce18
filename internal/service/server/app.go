package server

import (
	"context"
	"time"

	httpapi "github.com/uswah23/smart-bike-map/internal/api/http"
	"github.com/uswah23/smart-bike-map/internal/config"
	"github.com/uswah23/smart-bike-map/internal/domain/geofence"
	"github.com/uswah23/smart-bike-map/internal/ingest"
	"github.com/uswah23/smart-bike-map/internal/observability"
	"github.com/uswah23/smart-bike-map/internal/service/dispatch"
	"github.com/uswah23/smart-bike-map/internal/service/signals"
	"github.com/uswah23/smart-bike-map/internal/service/tracker"
)

// archive stores fixes and serves them back for the history endpoint.
type archive interface {
	dispatch.FixArchive
	History(ctx context.Context, start, end time.Time) ([]geofence.Position, error)
}

// externals are the optional side-effect adapters. Nil fields are skipped.
type externals struct {
	buzzer   dispatch.Buzzer
	notifier dispatch.Notifier
	events   dispatch.EventPublisher
	archive  archive
}

// app holds the in-process components of a running tracker.
type app struct {
	feed       *signals.Feed
	dispatcher *dispatch.Dispatcher
	tracker    *tracker.Tracker
	ingestor   *ingest.Ingestor
	handler    *httpapi.Handler
}

// newApp wires the tracker, its renderer feed, its dispatcher sinks and the
// HTTP handler.
// The dispatcher is not started.
func newApp(
	cfg *config.Config,
	boundary *geofence.Boundary,
	collector *observability.Collector,
	ext externals,
) *app {
	feed := signals.NewFeed(signals.DefaultCapacity)

	var sinks []dispatch.Sink

	if ext.buzzer != nil {
		sinks = append(sinks, dispatch.BuzzerSink(ext.buzzer))
	}

	if ext.notifier != nil {
		sinks = append(sinks, dispatch.NotifierSink(ext.notifier))
	}

	if ext.events != nil {
		sinks = append(sinks, dispatch.EventSink(ext.events))
	}

	var handlerOpts []httpapi.Option

	if ext.archive != nil {
		sinks = append(sinks, dispatch.ArchiveSink(ext.archive))
		handlerOpts = append(handlerOpts, httpapi.WithHistory(ext.archive))
	}

	dispatcher := dispatch.New(sinks,
		dispatch.WithQueueSize(cfg.DispatchQueueSize),
		dispatch.WithTimeout(cfg.Timeout),
		dispatch.WithMetrics(collector),
	)

	// The renderer feed is filled by the tracker itself, never behind a sink.
	t := tracker.New(boundary, dispatcher, tracker.WithMetrics(collector), tracker.WithFeed(feed))

	return &app{
		feed:       feed,
		dispatcher: dispatcher,
		tracker:    t,
		ingestor:   ingest.NewIngestor(t, ingest.WithMetrics(collector)),
		handler:    httpapi.NewHandler(t, feed, handlerOpts...),
	}
}
