package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/webfoundry/staticd/core/config"
	"github.com/webfoundry/staticd/core/health"
	"github.com/webfoundry/staticd/core/logger"
	"github.com/webfoundry/staticd/core/server"
	"github.com/webfoundry/staticd/core/static"
	"github.com/webfoundry/staticd/middleware"
)

func main() {
	log := logger.New(
		logger.WithJSONFormatter(),
		logger.WithAttr(logger.Component("staticd")),
	)

	var srvCfg server.Config
	config.MustLoad(&srvCfg)

	var fileCfg static.Config
	config.MustLoad(&fileCfg)

	files, err := static.New(fileCfg, static.WithLogger(log))
	if err != nil {
		log.Error("failed to initialize file handler", logger.Error(err))
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(middleware.BaseHeaders())
	r.Get("/healthz", health.Liveness)
	r.Handle("/*", files)

	srv, err := server.NewFromConfig(srvCfg, server.WithLogger(log))
	if err != nil {
		log.Error("failed to initialize server", logger.Error(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(srv.Run(ctx, r))

	if err := eg.Wait(); err != nil {
		log.Error("server failed", logger.Error(err))
		os.Exit(1)
	}

	log.Info("server stopped")
}
