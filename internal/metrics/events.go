package metrics

import (
	"context"

	"github.com/osse101/SkillForge_Go/internal/event"
	"github.com/osse101/SkillForge_Go/internal/logger"
)

// EventMetricsCollector subscribes to skill events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all skill event types
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.SkillXPGained,
		event.SkillLevelUp,
		event.SkillBonusDrop,
		event.SkillLoaded,
		event.SkillAdjusted,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent updates metrics for one event. Undecodable payloads are logged
// and skipped so a metrics problem never fails a publish.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.SkillXPGained:
		var p event.SkillXPGainedPayloadV1
		if p, err = event.DecodePayload[event.SkillXPGainedPayloadV1](evt.Payload); err == nil {
			SkillXPGranted.WithLabelValues(p.Skill).Add(float64(p.XPGranted))
		}

	case event.SkillLevelUp:
		var p event.SkillLevelUpPayloadV1
		if p, err = event.DecodePayload[event.SkillLevelUpPayloadV1](evt.Payload); err == nil {
			SkillLevelUps.WithLabelValues(p.Skill).Inc()
			SkillLevelReached.WithLabelValues(p.Skill).Observe(float64(p.NewLevel))
		}

	case event.SkillBonusDrop:
		var p event.SkillBonusDropPayloadV1
		if p, err = event.DecodePayload[event.SkillBonusDropPayloadV1](evt.Payload); err == nil {
			SkillBonusDrops.WithLabelValues(p.ItemID).Add(float64(p.Amount))
		}

	case event.SkillLoaded:
		var p event.SkillLoadedPayloadV1
		if p, err = event.DecodePayload[event.SkillLoadedPayloadV1](evt.Payload); err == nil {
			SkillPlayerLoads.WithLabelValues(p.Skill).Inc()
		}

	case event.SkillAdjusted:
		var p event.SkillAdjustedPayloadV1
		if p, err = event.DecodePayload[event.SkillAdjustedPayloadV1](evt.Payload); err == nil {
			SkillAdjustments.WithLabelValues(p.Skill, p.Operation).Inc()
		}
	}

	if err != nil {
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
