package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/SkillForge_Go/internal/event"
	"github.com/osse101/SkillForge_Go/internal/metrics"
	"github.com/osse101/SkillForge_Go/internal/sse"
)

// EventHandlerDependencies holds what the bus subscribers need
type EventHandlerDependencies struct {
	EventBus event.Bus
	SSEHub   *sse.Hub
}

// RegisterEventHandlers subscribes the metrics collector and, when a hub is
// given, the SSE bridge that notifies players and the host game.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.SSEHub != nil {
		sse.NewSubscriber(deps.SSEHub, deps.EventBus).Subscribe()
		slog.Info(LogMsgSSESubscriberRegistered)
	}

	return nil
}
