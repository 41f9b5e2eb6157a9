package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"go.uber.org/dig"
	"golang.org/x/sync/errgroup"

	"service-dispatch/internal/config"
	"service-dispatch/internal/logx"
	"service-dispatch/internal/service/handover"
	"service-dispatch/internal/service/orders"
)

const shutdownTimeout = 15 * time.Second

// MustRun starts the HTTP server using the provided DI container
func MustRun(container *dig.Container) {
	if err := run(container); err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			log.Println("shutdown requested, exiting")
			return
		case errors.Is(err, context.DeadlineExceeded):
			log.Println("startup aborted: startup timeout exceeded")
			return
		default:
			log.Fatalf("run error: %v", err)
		}
	}
}

type runIn struct {
	dig.In

	Ctx      context.Context
	Config   *config.Config
	Logger   logx.Logger
	Server   *http.Server
	Admin    *adminServer
	Orders   *orders.Service
	Handover *handover.Service
	Backend  *backend
}

func run(container *dig.Container) error {
	return container.Invoke(func(in runIn) error {
		defer in.Backend.close()
		defer func() { _ = in.Logger.Sync() }()

		if err := applySeed(in.Ctx, in.Config, in.Orders, in.Logger); err != nil {
			return err
		}
		return serve(in.Ctx, in.Logger, in.Config.Handover.SweepInterval, in.Handover, in.Server, in.Admin)
	})
}

// serve runs the listeners and the session sweeper until ctx is done or one
// of them fails.
func serve(
	ctx context.Context,
	logger logx.Logger,
	sweepEvery time.Duration,
	sweeper *handover.Service,
	srv *http.Server,
	adminSrv *adminServer,
) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("service-dispatch listening", logx.String("addr", srv.Addr))
		return listen(srv)
	})
	if adminSrv != nil {
		g.Go(func() error {
			logger.Info("admin listening", logx.String("addr", adminSrv.Addr))
			return listen(adminSrv.Server)
		})
	}
	g.Go(func() error {
		sweeper.RunSweeper(gctx, sweepEvery)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down service-dispatch")
		gracefulShutdown(srv, logger, shutdownTimeout)
		if adminSrv != nil {
			gracefulShutdown(adminSrv.Server, logger, shutdownTimeout)
		}
		return nil
	})

	return g.Wait()
}

func listen(srv *http.Server) error {
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Err(err))
	}
}
