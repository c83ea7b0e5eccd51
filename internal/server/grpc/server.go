// Package grpc serves the standard gRPC health service for the registration
// server. The reported status follows the store's reachability.
package grpc

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/dmitrijs2005/userregistry/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// Pinger reports whether the backing store answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthServer struct {
	address  string
	interval time.Duration
	store    Pinger
	logger   logging.Logger
	health   *health.Server
}

func NewHealthServer(a string, l logging.Logger, store Pinger, interval time.Duration) *HealthServer {
	h := health.NewServer()
	// not serving until the first probe succeeds
	h.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	return &HealthServer{
		address:  a,
		interval: interval,
		store:    store,
		logger:   l.With("module", "grpc_health"),
		health:   h,
	}
}

func (s *HealthServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve registers the health service on a new gRPC server and serves lis
// until ctx is cancelled. The store is probed once up front and then every
// interval.
func (s *HealthServer) Serve(ctx context.Context, lis net.Listener) error {

	srv := grpc.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, s.health)

	s.probe(ctx)
	go s.watch(ctx)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC health server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC health server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}

	return nil
}

func (s *HealthServer) watch(ctx context.Context) {
	if s.interval <= 0 {
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.probe(ctx)
		}
	}
}

func (s *HealthServer) probe(ctx context.Context) {
	timeout := s.interval
	if timeout <= 0 {
		timeout = time.Second
	}
	pctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	status := grpc_health_v1.HealthCheckResponse_SERVING
	if err := s.store.Ping(pctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Warn(ctx, "store ping failed", "error", err)
		status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}

	s.health.SetServingStatus("", status)
}
