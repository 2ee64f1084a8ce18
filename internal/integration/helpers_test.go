package integration

import (
	"context"
	"net"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	trackerapi "github.com/uswah23/smart-bike-map/internal/api/grpc/tracker"
	httpapi "github.com/uswah23/smart-bike-map/internal/api/http"
	"github.com/uswah23/smart-bike-map/internal/domain/geofence"
	"github.com/uswah23/smart-bike-map/internal/observability"
	pb "github.com/uswah23/smart-bike-map/internal/pb/v1"
	"github.com/uswah23/smart-bike-map/internal/repository/boundary"
	"github.com/uswah23/smart-bike-map/internal/service/dispatch"
	"github.com/uswah23/smart-bike-map/internal/service/signals"
	"github.com/uswah23/smart-bike-map/internal/service/tracker"
)

// TestMain switches gin to test mode once for the whole package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// stack is a tracker served over gRPC and HTTP.
type stack struct {
	addr      string
	http      *httptest.Server
	tracker   *tracker.Tracker
	buzzer    *countingBuzzer
	collector *observability.Collector
}

// countingBuzzer counts stop commands.
type countingBuzzer struct {
	mu    sync.Mutex
	stops int
}

func (b *countingBuzzer) StopBuzzer(context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stops++

	return nil
}

func (b *countingBuzzer) Stops() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.stops
}

// startStack serves a fresh tracker on addr and on an httptest server.
func startStack(t *testing.T, addr string) *stack {
	t.Helper()

	fence, err := boundary.Default()
	require.NoError(t, err)

	collector, err := observability.NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)

	buzzer := new(countingBuzzer)
	feed := signals.NewFeed(signals.DefaultCapacity)

	dispatcher := dispatch.New([]dispatch.Sink{dispatch.BuzzerSink(buzzer)}, dispatch.WithMetrics(collector))
	dispatcher.Start(context.Background())

	trk := tracker.New(fence, dispatcher, tracker.WithMetrics(collector), tracker.WithFeed(feed))

	lc := net.ListenConfig{}

	lis, err := lc.Listen(context.Background(), "tcp", addr)
	require.NoError(t, err)

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(collector.UnaryServerInterceptor()))
	pb.RegisterTrackerServiceServer(grpcServer, trackerapi.NewServer(trk))

	go func() {
		_ = grpcServer.Serve(lis) //nolint:errcheck // Stopped by cleanup.
	}()

	httpServer := httptest.NewServer(httpapi.NewRouter(httpapi.NewHandler(trk, feed), collector.Handler()))

	t.Cleanup(func() {
		httpServer.Close()
		grpcServer.GracefulStop()
		_ = dispatcher.Close(context.Background())
	})

	return &stack{
		addr:      addr,
		http:      httpServer,
		tracker:   trk,
		buzzer:    buzzer,
		collector: collector,
	}
}

// reservePort returns a free localhost address.
func reservePort(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := l.Addr().String()
	_ = l.Close()

	return addr
}

// fix builds a validated position.
func fix(t *testing.T, latitude, longitude float64) geofence.Position {
	t.Helper()

	p, err := geofence.NewPosition(latitude, longitude, time.Now())
	require.NoError(t, err)

	return p
}
