package grpc

import (
	"fmt"

	pb "github.com/abgdnv/inventory/pkg/api/gen/go/inventory/v1"
	"github.com/abgdnv/inventory/pkg/client/grpc/interceptors"
	"github.com/abgdnv/inventory/pkg/config"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Dial connects to the inventory service with per-call timeout, retry and circuit breaker interceptors.
// The retry interceptor runs first so each attempt gets its own timeout and is seen by the breaker.
func Dial(cfg config.GrpcClientConfig, resilience config.ResilienceConfig, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	defaults := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithChainUnaryInterceptor(
			interceptors.NewRetryInterceptor(resilience.Retry),
			interceptors.NewCircuitBreaker("inventory-client-cb", resilience.CircuitBreaker),
			interceptors.UnaryClientTimeoutInterceptor(cfg.Timeout),
		),
	}
	conn, err := grpc.NewClient(cfg.Addr, append(defaults, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC client connection: %w", err)
	}
	return conn, nil
}

// NewClient dials the inventory service and returns the generated client with the connection to close.
func NewClient(cfg config.GrpcClientConfig, resilience config.ResilienceConfig, opts ...grpc.DialOption) (pb.InventoryServiceClient, *grpc.ClientConn, error) {
	conn, err := Dial(cfg, resilience, opts...)
	if err != nil {
		return nil, nil, err
	}
	return pb.NewInventoryServiceClient(conn), conn, nil
}
