package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/SkillForge_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Skill event types
const (
	SkillXPGained  Type = domain.EventTypeSkillXPGained
	SkillLevelUp   Type = domain.EventTypeSkillLevelUp
	SkillBonusDrop Type = domain.EventTypeSkillBonusDrop
	SkillLoaded    Type = domain.EventTypeSkillLoaded
	SkillAdjusted  Type = domain.EventTypeSkillAdjusted
)

// Typed event payloads for type safety

// SkillXPGainedPayloadV1 is the typed payload for skill.xp_gained events
type SkillXPGainedPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	Skill     string `json:"skill"`
	BlockID   string `json:"block_id"`
	XPGranted int64  `json:"xp_granted"`
	TotalXP   int64  `json:"total_xp"`
	Timestamp int64  `json:"timestamp"`
}

// SkillLevelUpPayloadV1 is the typed payload for skill.level_up events
type SkillLevelUpPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	Skill     string `json:"skill"`
	OldLevel  int    `json:"old_level"`
	NewLevel  int    `json:"new_level"`
	Timestamp int64  `json:"timestamp"`
}

// SkillBonusDropPayloadV1 is the typed payload for skill.bonus_drop events
type SkillBonusDropPayloadV1 struct {
	PlayerID  string          `json:"player_id"`
	Skill     string          `json:"skill"`
	ItemID    string          `json:"item_id"`
	Amount    int             `json:"amount"`
	Level     int             `json:"level"`
	Position  domain.Position `json:"position"`
	Timestamp int64           `json:"timestamp"`
}

// SkillLoadedPayloadV1 is the typed payload for skill.loaded events
type SkillLoadedPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	Skill     string `json:"skill"`
	Level     int    `json:"level"`
	TotalXP   int64  `json:"total_xp"`
	Timestamp int64  `json:"timestamp"`
}

// SkillAdjustedPayloadV1 is the typed payload for skill.adjusted events
type SkillAdjustedPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	Skill     string `json:"skill"`
	Operation string `json:"operation"`
	OldXP     int64  `json:"old_xp"`
	NewXP     int64  `json:"new_xp"`
	OldLevel  int    `json:"old_level"`
	NewLevel  int    `json:"new_level"`
	Timestamp int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewSkillXPGainedEvent creates a new skill.xp_gained event
func NewSkillXPGainedEvent(playerID, skill, blockID string, granted, total int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SkillXPGained,
		Payload: SkillXPGainedPayloadV1{
			PlayerID:  playerID,
			Skill:     skill,
			BlockID:   blockID,
			XPGranted: granted,
			TotalXP:   total,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewSkillLevelUpEvent creates a new skill.level_up event
func NewSkillLevelUpEvent(playerID, skill string, oldLevel, newLevel int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SkillLevelUp,
		Payload: SkillLevelUpPayloadV1{
			PlayerID:  playerID,
			Skill:     skill,
			OldLevel:  oldLevel,
			NewLevel:  newLevel,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewSkillBonusDropEvent creates a new skill.bonus_drop event
func NewSkillBonusDropEvent(playerID, skill string, level int, drop domain.BonusDrop) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SkillBonusDrop,
		Payload: SkillBonusDropPayloadV1{
			PlayerID:  playerID,
			Skill:     skill,
			ItemID:    drop.ItemID,
			Amount:    drop.Amount,
			Level:     level,
			Position:  drop.Position,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewSkillLoadedEvent creates a new skill.loaded event
func NewSkillLoadedEvent(playerID, skill string, level int, totalXP int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SkillLoaded,
		Payload: SkillLoadedPayloadV1{
			PlayerID:  playerID,
			Skill:     skill,
			Level:     level,
			TotalXP:   totalXP,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewSkillAdjustedEvent creates a new skill.adjusted event
func NewSkillAdjustedEvent(playerID, skill, operation string, oldXP, newXP int64, oldLevel, newLevel int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SkillAdjusted,
		Payload: SkillAdjustedPayloadV1{
			PlayerID:  playerID,
			Skill:     skill,
			Operation: operation,
			OldXP:     oldXP,
			NewXP:     newXP,
			OldLevel:  oldLevel,
			NewLevel:  newLevel,
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"operation": operation,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order; every handler runs even if an earlier one fails.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
