// Package rest exposes the registration service over HTTP.
package rest

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/userregistry/internal/logging"
	"github.com/dmitrijs2005/userregistry/internal/server/models"
	"github.com/dmitrijs2005/userregistry/internal/server/validation"
	"github.com/gin-gonic/gin"
)

// UserService is the subset of services.UserService the handlers call.
type UserService interface {
	Save(ctx context.Context, form validation.Form) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
}

type HTTPServer struct {
	address         string
	shutdownTimeout time.Duration
	users           UserService
	logger          logging.Logger
	engine          *gin.Engine
}

func NewHTTPServer(a string, l logging.Logger, us UserService, shutdownTimeout time.Duration) *HTTPServer {
	s := &HTTPServer{
		address:         a,
		shutdownTimeout: shutdownTimeout,
		users:           us,
		logger:          l.With("module", "http_server"),
	}

	r := gin.New()
	r.Use(s.requestLogger(), gin.CustomRecovery(s.recovery))
	r.POST("/save", s.save)
	r.GET("/get", s.list)
	s.engine = r

	return s
}

// Handler returns the routed gin engine.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *HTTPServer) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, lis)
}

// Serve accepts connections on lis until ctx is cancelled, then drains
// in-flight requests for at most the shutdown timeout.
func (s *HTTPServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(lis)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())

	select {
	case <-ctx.Done():
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
