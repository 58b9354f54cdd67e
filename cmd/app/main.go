package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/ivanglie/coinboard/internal/app"
	"github.com/ivanglie/coinboard/internal/config"
	"github.com/ivanglie/coinboard/internal/server"
	"github.com/ivanglie/coinboard/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
	app.SetupLogging(cfg)

	deps := app.Build(cfg)
	srv := server.New(cfg.Addr(), deps.Catalog, deps.Prices)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info(fmt.Sprintf("Starting server on %s", cfg.Addr()))
		return srv.Start()
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error(err.Error())
		os.Exit(1)
	}
}
