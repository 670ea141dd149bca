package sse

import (
	"context"
	"fmt"

	"github.com/osse101/SkillForge_Go/internal/event"
	"github.com/osse101/SkillForge_Go/internal/logger"
	"github.com/osse101/SkillForge_Go/internal/utils"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for the player-facing skill events
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.SkillLevelUp, s.handleLevelUp)
	s.bus.Subscribe(event.SkillBonusDrop, s.handleBonusDrop)
	s.bus.Subscribe(event.SkillLoaded, s.handleLoaded)
}

func (s *Subscriber) handleLevelUp(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.SkillLevelUpPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.broadcast(ctx, EventTypeLevelUp, p.PlayerID, LevelUpPayload{
		PlayerID: p.PlayerID,
		Skill:    p.Skill,
		OldLevel: p.OldLevel,
		NewLevel: p.NewLevel,
		Message:  fmt.Sprintf(MsgFormatLevelUp, utils.DisplayName(p.Skill), p.NewLevel),
	})
	return nil
}

func (s *Subscriber) handleBonusDrop(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.SkillBonusDropPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.broadcast(ctx, EventTypeBonusDrop, p.PlayerID, BonusDropPayload{
		PlayerID: p.PlayerID,
		Skill:    p.Skill,
		ItemID:   p.ItemID,
		Amount:   p.Amount,
		Position: p.Position,
		Message:  fmt.Sprintf(MsgFormatBonusDrop, p.ItemID),
	})
	return nil
}

func (s *Subscriber) handleLoaded(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.SkillLoadedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.broadcast(ctx, EventTypeLoaded, p.PlayerID, LoadedPayload{
		PlayerID: p.PlayerID,
		Skill:    p.Skill,
		Level:    p.Level,
		TotalXP:  p.TotalXP,
		Message:  fmt.Sprintf(MsgFormatLoaded, utils.DisplayName(p.Skill), p.Level),
	})
	return nil
}

func (s *Subscriber) broadcast(ctx context.Context, eventType, playerID string, payload interface{}) {
	log := logger.FromContext(ctx)
	if !s.hub.Broadcast(eventType, playerID, payload) {
		log.Warn(LogMsgEventDropped, "event_type", eventType, "player_id", playerID)
		return
	}
	log.Debug(LogMsgEventBroadcast, "event_type", eventType, "player_id", playerID)
}
