// Package server wires the registration service together: it opens the
// store, runs migrations, builds the services and runs the HTTP API and the
// optional gRPC health endpoint until a shutdown signal arrives.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/userregistry/internal/logging"
	"github.com/dmitrijs2005/userregistry/internal/server/config"
	"github.com/dmitrijs2005/userregistry/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/userregistry/internal/server/rest"
	"github.com/dmitrijs2005/userregistry/internal/server/services"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/userregistry/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repomanager repomanager.RepositoryManager
	userService *services.UserService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	return newApp(ctx, c, os.Stdout)
}

func newApp(ctx context.Context, c *config.Config, logOut io.Writer) (*App, error) {

	logger := logging.NewJSON(logOut, c.LogLevel)

	rm, err := repomanager.New(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx); err != nil {
		_ = rm.Close(ctx)
		return nil, err
	}

	us := services.NewUserService(rm, c)

	return &App{config: c, logger: logger, repomanager: rm, userService: us}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) func() {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	done := make(chan struct{})
	go func() {
		select {
		case s := <-sigs:
			app.logger.Info(context.Background(), "Received signal", "signal", s.String())
			cancelFunc()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}

// Run serves until ctx is cancelled, a shutdown signal arrives or one of
// the servers fails. The store is closed before Run returns.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	stop := app.initSignalHandler(cancelFunc)
	defer stop()

	gin.SetMode(gin.ReleaseMode)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s := rest.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.config.ShutdownTimeout)
		return s.Run(gctx)
	})

	if app.config.EndpointAddrGRPC != "" {
		g.Go(func() error {
			s := gs.NewHealthServer(app.config.EndpointAddrGRPC, app.logger, app.repomanager, app.config.HealthCheckInterval)
			return s.Run(gctx)
		})
	}

	err := g.Wait()
	if err != nil {
		app.logger.Error(ctx, "server error", "error", err)
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()
	if cerr := app.repomanager.Close(closeCtx); cerr != nil {
		app.logger.Error(ctx, "store close error", "error", cerr)
	}

	app.logger.Info(ctx, "App stopped")
	return err
}
