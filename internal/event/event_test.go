package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkillForge_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	handled := false

	bus.Subscribe(SkillLevelUp, func(ctx context.Context, evt Event) error {
		assert.Equal(t, SkillLevelUp, evt.Type)
		payload, err := DecodePayload[SkillLevelUpPayloadV1](evt.Payload)
		require.NoError(t, err)
		assert.Equal(t, "player-1", payload.PlayerID)
		assert.Equal(t, 3, payload.NewLevel)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), NewSkillLevelUpEvent("player-1", domain.SkillMining, 2, 3))
	require.NoError(t, err)
	assert.True(t, handled, "handler was not called")
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: "nobody_listens"}))
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0

	handler := func(ctx context.Context, evt Event) error {
		count++
		return nil
	}

	bus.Subscribe(SkillXPGained, handler)
	bus.Subscribe(SkillXPGained, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: SkillXPGained}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	calls := 0

	bus.Subscribe(SkillBonusDrop, func(ctx context.Context, evt Event) error {
		calls++
		return errors.New("handler failed")
	})
	bus.Subscribe(SkillBonusDrop, func(ctx context.Context, evt Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), Event{Type: SkillBonusDrop})
	assert.Error(t, err)
	assert.Equal(t, 2, calls, "every handler runs even after a failure")
}

func TestConstructors_SetVersionAndType(t *testing.T) {
	drop := domain.BonusDrop{ItemID: domain.ItemCharcoal, Amount: 2, Position: domain.Position{X: 1, Y: 2, Z: 3}}

	events := []struct {
		evt      Event
		expected Type
	}{
		{NewSkillXPGainedEvent("p", domain.SkillMining, "Ore_Iron_1", 75, 150), SkillXPGained},
		{NewSkillLevelUpEvent("p", domain.SkillMining, 1, 2), SkillLevelUp},
		{NewSkillBonusDropEvent("p", domain.SkillMining, 35, drop), SkillBonusDrop},
		{NewSkillLoadedEvent("p", domain.SkillMining, 4, 903), SkillLoaded},
		{NewSkillAdjustedEvent("p", domain.SkillMining, domain.AdjustReset, 903, 0, 4, 1), SkillAdjusted},
	}

	for _, tt := range events {
		t.Run(string(tt.expected), func(t *testing.T) {
			assert.Equal(t, EventSchemaVersion, tt.evt.Version)
			assert.Equal(t, tt.expected, tt.evt.Type)
			assert.NotNil(t, tt.evt.Payload)
		})
	}
}

func TestBonusDropPayload_CarriesPosition(t *testing.T) {
	drop := domain.BonusDrop{ItemID: domain.ItemCharcoal, Amount: 2, Position: domain.Position{X: 10, Y: 64, Z: -3}}
	evt := NewSkillBonusDropEvent("p", domain.SkillMining, 35, drop)

	payload, err := DecodePayload[SkillBonusDropPayloadV1](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, domain.ItemCharcoal, payload.ItemID)
	assert.Equal(t, 2, payload.Amount)
	assert.Equal(t, drop.Position, payload.Position)
}

func TestDecodePayload_FromMap(t *testing.T) {
	raw := map[string]interface{}{
		"player_id": "p9",
		"skill":     "mining",
		"level":     7,
		"total_xp":  4291,
	}

	payload, err := DecodePayload[SkillLoadedPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, "p9", payload.PlayerID)
	assert.Equal(t, 7, payload.Level)
	assert.Equal(t, int64(4291), payload.TotalXP)
}

func TestGetMetadataValue(t *testing.T) {
	evt := NewSkillAdjustedEvent("p", domain.SkillMining, domain.AdjustSetXP, 0, 10, 1, 1)
	assert.Equal(t, domain.AdjustSetXP, evt.GetMetadataValue("operation"))
	assert.Nil(t, evt.GetMetadataValue("missing"))
	assert.Nil(t, Event{}.GetMetadataValue("operation"))
}

func TestCalculateRetryDelay(t *testing.T) {
	base := RetryInitialDelay
	assert.Equal(t, base, CalculateRetryDelay(base, 1))
	assert.Equal(t, 2*base, CalculateRetryDelay(base, 2))
	assert.Equal(t, 16*base, CalculateRetryDelay(base, 5))
	assert.Equal(t, base, CalculateRetryDelay(base, 0))
}
