package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"

	trackerapi "github.com/uswah23/smart-bike-map/internal/api/grpc/tracker"
	httpapi "github.com/uswah23/smart-bike-map/internal/api/http"
	mqttapi "github.com/uswah23/smart-bike-map/internal/api/mqtt"
	"github.com/uswah23/smart-bike-map/internal/config"
	"github.com/uswah23/smart-bike-map/internal/logger"
	"github.com/uswah23/smart-bike-map/internal/observability"
	pb "github.com/uswah23/smart-bike-map/internal/pb/v1"
	"github.com/uswah23/smart-bike-map/internal/repository/boundary"
	"github.com/uswah23/smart-bike-map/internal/service/dispatch"
	"github.com/uswah23/smart-bike-map/internal/service/instance"
	"github.com/uswah23/smart-bike-map/internal/version"
)

// Options controls the geofence-server process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
	// HTTPAddress provides an optional listen address override for the renderer API.
	HTTPAddress string
	// BoundaryFile overrides the GeoJSON geofence from config.
	BoundaryFile string
	// AllowMultiple skips the single instance check.
	AllowMultiple bool
}

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// Run starts the tracker with its gRPC and HTTP servers and blocks until the
// context is canceled or a server stops.
//
//nolint:funlen // Startup order is easier to follow in one place.
func Run(ctx context.Context, opts *Options) error {
	// Load configuration first to get server settings.
	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	logSettingsOK := logger.Configure(settings.LogLevel, settings.LogFormat)

	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "geofence-server")

	if !logSettingsOK {
		logger.WarnKV(ctx, "Unknown log settings, using defaults",
			"log_level", settings.LogLevel, "log_format", settings.LogFormat)
	}

	logger.InfoKV(ctx, "Starting geofence server", version.Fields()...)

	// Two trackers on one broker would both drive the buzzer.
	if !opts.AllowMultiple {
		if err = instance.EnsureSingle(""); err != nil {
			return err
		}
	}

	// Determine listen address: CLI argument overrides config port extraction.
	listenAddress, err := resolveListenAddress(settings.ServerAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	httpAddress := settings.HTTPAddress
	if opts.HTTPAddress != "" {
		httpAddress = opts.HTTPAddress
	}

	boundaryFile := settings.BoundaryFile
	if opts.BoundaryFile != "" {
		boundaryFile = opts.BoundaryFile
	}

	fence, err := boundary.Load(boundaryFile)
	if err != nil {
		return fmt.Errorf("load boundary: %w", err)
	}

	collector, err := observability.NewCollector(nil)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	shutdownTracing, err := observability.InitTracing(ctx, settings.Tracing, os.Stdout)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}

	defer observability.Shutdown(ctx, shutdownTracing)

	// Connect to the broker and the optional adapters.
	conn, err := connect(ctx, settings)
	if err != nil {
		return err
	}

	defer conn.close(ctx)

	a := newApp(settings, fence, collector, conn.externals)

	// Start executing intents before the first fix can arrive.
	a.dispatcher.Start(ctx)

	// Runs after the subscriber stops and before the adapters disconnect.
	defer func() {
		if closeErr := drainDispatcher(ctx, a.dispatcher, settings.Timeout); closeErr != nil {
			logger.WarnKV(ctx, "Dispatcher close failed", "error", closeErr)
		}
	}()

	subscriber := mqttapi.NewFixSubscriber(conn.mqtt, settings.MQTT.FixTopic, settings.MQTT.QoS, a.ingestor)
	if err = subscriber.Start(ctx); err != nil {
		return fmt.Errorf("subscribe to fixes: %w", err)
	}

	defer func() {
		if stopErr := subscriber.Stop(); stopErr != nil {
			logger.WarnKV(ctx, "Unsubscribe failed", "error", stopErr)
		}
	}()

	// Setup TCP listener for gRPC server.
	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	// Create and configure gRPC server with tracker service.
	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(collector.UnaryServerInterceptor()),
	)
	pb.RegisterTrackerServiceServer(grpcServer, trackerapi.NewServer(a.tracker))

	//nolint:exhaustruct // Defaults are fine for the remaining fields.
	httpServer := &http.Server{
		Addr:              httpAddress,
		Handler:           httpapi.NewRouter(a.handler, collector.Handler(), conn.checks...),
		ReadHeaderTimeout: settings.Timeout,
	}

	logger.InfoKV(ctx, "Geofence server listening",
		"listen_address", listenAddress,
		"http_address", httpAddress,
		"fix_topic", settings.MQTT.FixTopic,
		"boundary_rings", len(fence.Rings()))

	// Each server reports its exit here; the first one stops the process.
	errs := make(chan error, 2)

	go func() {
		if serveErr := grpcServer.Serve(lis); serveErr != nil && !errors.Is(serveErr, grpc.ErrServerStopped) {
			errs <- fmt.Errorf("serve gRPC: %w", serveErr)
			return
		}

		errs <- nil
	}()

	go func() {
		if serveErr := httpServer.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errs <- fmt.Errorf("serve HTTP: %w", serveErr)
			return
		}

		errs <- nil
	}()

	select {
	case <-ctx.Done():
		err = nil
	case err = <-errs:
	}

	logger.Info(ctx, "Shutting down servers")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), settings.Timeout)
	defer cancel()

	if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.WarnKV(ctx, "HTTP shutdown failed", "error", shutdownErr)
	}

	grpcServer.GracefulStop()
	logger.Info(ctx, "Servers stopped")

	return err
}

// drainDispatcher closes d and waits up to timeout for queued intents.
// The wait outlives cancellation of ctx, which is usually done by then.
func drainDispatcher(ctx context.Context, d *dispatch.Dispatcher, timeout time.Duration) error {
	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	return d.Close(drainCtx)
}

// resolveListenAddress determines the listen address for the gRPC server.
// If override is provided, uses it directly. Otherwise extracts port from configAddr.
func resolveListenAddress(configAddr, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	// "tracker.example.com:50051" -> ":50051".
	_, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	return ":" + port, nil
}
