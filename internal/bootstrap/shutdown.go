package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/SkillForge_Go/internal/event"
	"github.com/osse101/SkillForge_Go/internal/mining"
	"github.com/osse101/SkillForge_Go/internal/repository"
	"github.com/osse101/SkillForge_Go/internal/scheduler"
	"github.com/osse101/SkillForge_Go/internal/server"
	"github.com/osse101/SkillForge_Go/internal/sse"
	"github.com/osse101/SkillForge_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil members are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	MiningService      mining.Service
	SSEHub             *sse.Hub
	ResilientPublisher *event.ResilientPublisher
	Store              repository.Store
}

// GracefulShutdown stops the application in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler and worker pool (no more background jobs)
// 3. SSE hub (disconnect streaming clients)
// 4. Mining service (finish in-flight breaks)
// 5. Event publisher (flush pending retries)
// 6. Skill store
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.SSEHub != nil {
		components.SSEHub.Stop()
	}

	if components.MiningService != nil {
		if err := components.MiningService.Shutdown(ctx); err != nil {
			slog.Error(LogMsgMiningShutdownFailed, "error", err)
		}
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.Store != nil {
		if err := components.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
