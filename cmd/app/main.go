// @title SkillForge API
// @version 1.0
// @description Player skill progression for the mining skill: ore breaks, levels, bonus drops and admin tools.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/osse101/SkillForge_Go/docs"
	"github.com/osse101/SkillForge_Go/internal/bootstrap"
	"github.com/osse101/SkillForge_Go/internal/config"
	"github.com/osse101/SkillForge_Go/internal/mining"
	"github.com/osse101/SkillForge_Go/internal/server"
	"github.com/osse101/SkillForge_Go/internal/sse"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.InitializeRepository(ctx, cfg)
	if err != nil {
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		_ = store.Close()
		return err
	}

	hub := sse.NewHub()
	hub.Start()

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus: bus,
		SSEHub:   hub,
	}); err != nil {
		hub.Stop()
		_ = store.Close()
		return err
	}

	miningCfg, err := bootstrap.BuildMiningConfig(cfg)
	if err != nil {
		hub.Stop()
		_ = store.Close()
		return err
	}
	miningService := mining.NewService(store, publisher, miningCfg)
	workerPool, sched := bootstrap.InitializeWorkers(cfg, miningService)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		ServiceName:    cfg.ServiceName,
	}, store, miningService, hub)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		WorkerPool:         workerPool,
		MiningService:      miningService,
		SSEHub:             hub,
		ResilientPublisher: publisher,
		Store:              store,
	})

	return err
}
