package interceptors

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

func TestUnaryClientTimeoutInterceptor(t *testing.T) {
	// given
	const serviceDelay = 200 * time.Millisecond
	const clientTimeout = 50 * time.Millisecond
	srv := &scriptedHealthServer{delay: serviceDelay}
	client := setupTestEnvironment(t, srv, UnaryClientTimeoutInterceptor(clientTimeout))

	// when
	start := time.Now()
	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})

	// then
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok, "Error should be a gRPC status error")
	require.Equal(t, codes.DeadlineExceeded, st.Code())
	require.Less(t, time.Since(start), serviceDelay)
}

func TestUnaryClientTimeoutInterceptor_ZeroTimeoutIsUnbounded(t *testing.T) {
	// given
	srv := &scriptedHealthServer{delay: 20 * time.Millisecond}
	client := setupTestEnvironment(t, srv, UnaryClientTimeoutInterceptor(0))

	// when
	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})

	// then
	require.NoError(t, err)
	require.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}
