//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/uswah23/smart-bike-map/internal/config"
	pb "github.com/uswah23/smart-bike-map/internal/pb/v1"
)

// Client wraps the TrackerService gRPC client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the tracker.
	conn *grpc.ClientConn
	// api is the TrackerService client.
	api pb.TrackerServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errActorRequired is returned when an actor is not provided but is required for the operation.
	errActorRequired = errors.New("actor must be provided")
)

// Dial creates a client for the tracker at address. The connection is
// established lazily on the first call.
// Note: this uses insecure transport credentials; deploy on a trusted network
// or terminate TLS in a proxy.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial tracker: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewTrackerServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// GetTrackerState retrieves the tracker snapshot.
func (c *Client) GetTrackerState(ctx context.Context) (*pb.TrackerStateResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.GetTrackerState(callCtx, &emptypb.Empty{})
	if err != nil {
		return nil, fmt.Errorf("get tracker state: %w", err)
	}

	return resp, nil
}

// PressOverride asks the tracker to stop an active alert.
func (c *Client) PressOverride(ctx context.Context, actor *pb.SystemActor) (*pb.PressOverrideResponse, error) {
	if actor == nil {
		return nil, errActorRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.PressOverride(callCtx, &pb.PressOverrideRequest{Actor: actor})
	if err != nil {
		return nil, fmt.Errorf("press override: %w", err)
	}

	return resp, nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
