package grpc

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/userregistry/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

type fakeStore struct {
	down atomic.Bool
}

func (f *fakeStore) Ping(context.Context) error {
	if f.down.Load() {
		return errors.New("connection refused")
	}
	return nil
}

func startServer(t *testing.T, store Pinger, interval time.Duration) (grpc_health_v1.HealthClient, context.CancelFunc, <-chan error) {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := NewHealthServer("", logging.Nop{}, store, interval)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Serve(ctx, lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
	})

	return grpc_health_v1.NewHealthClient(conn), cancel, done
}

func check(client grpc_health_v1.HealthClient) grpc_health_v1.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	resp, err := client.Check(ctx, &grpc_health_v1.HealthCheckRequest{})
	if err != nil {
		return grpc_health_v1.HealthCheckResponse_UNKNOWN
	}
	return resp.GetStatus()
}

func TestHealth_FollowsStore(t *testing.T) {
	store := &fakeStore{}
	client, _, _ := startServer(t, store, 10*time.Millisecond)

	require.Eventually(t, func() bool {
		return check(client) == grpc_health_v1.HealthCheckResponse_SERVING
	}, 2*time.Second, 10*time.Millisecond)

	store.down.Store(true)
	require.Eventually(t, func() bool {
		return check(client) == grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}, 2*time.Second, 10*time.Millisecond)

	store.down.Store(false)
	require.Eventually(t, func() bool {
		return check(client) == grpc_health_v1.HealthCheckResponse_SERVING
	}, 2*time.Second, 10*time.Millisecond)
}

func TestHealth_StoreDownAtStart(t *testing.T) {
	store := &fakeStore{}
	store.down.Store(true)

	client, _, _ := startServer(t, store, time.Hour)

	require.Eventually(t, func() bool {
		return check(client) == grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, check(client))
}

func TestServe_StopsOnContextCancel(t *testing.T) {
	_, cancel, done := startServer(t, &fakeStore{}, 10*time.Millisecond)

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(100 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	s := NewHealthServer("127.0.0.1:99999", logging.Nop{}, &fakeStore{}, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.Error(t, s.Run(ctx))
}
