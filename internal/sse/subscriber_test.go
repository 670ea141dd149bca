package sse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkillForge_Go/internal/domain"
	"github.com/osse101/SkillForge_Go/internal/event"
)

func newSubscribedHub(t *testing.T) (*Hub, event.Bus, *Client) {
	t.Helper()
	hub := startHub(t)
	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()
	client := hub.Register(nil, "")
	registered(t, hub, 1)
	return hub, bus, client
}

func TestSubscriber_LevelUp(t *testing.T) {
	_, bus, client := newSubscribedHub(t)

	require.NoError(t, bus.Publish(context.Background(), event.NewSkillLevelUpEvent("p1", "mining", 4, 5)))

	evt := receive(t, client)
	assert.Equal(t, EventTypeLevelUp, evt.Type)
	payload, ok := evt.Payload.(LevelUpPayload)
	require.True(t, ok)
	assert.Equal(t, 5, payload.NewLevel)
	assert.Equal(t, "Your Mining Level is now 5", payload.Message)
}

func TestSubscriber_BonusDrop(t *testing.T) {
	_, bus, client := newSubscribedHub(t)
	pos := domain.Position{X: 1, Y: 2, Z: 3}

	require.NoError(t, bus.Publish(context.Background(), event.NewSkillBonusDropEvent("p1", "mining", 12,
		domain.BonusDrop{ItemID: domain.ItemCharcoal, Amount: 1, Position: pos})))

	evt := receive(t, client)
	payload, ok := evt.Payload.(BonusDropPayload)
	require.True(t, ok)
	assert.Equal(t, pos, payload.Position)
	assert.Equal(t, "You received Ingredient_Charcoal!", payload.Message)
}

func TestSubscriber_Loaded(t *testing.T) {
	_, bus, client := newSubscribedHub(t)

	require.NoError(t, bus.Publish(context.Background(), event.NewSkillLoadedEvent("p1", "mining", 7, 5000)))

	evt := receive(t, client)
	payload, ok := evt.Payload.(LoadedPayload)
	require.True(t, ok)
	assert.Equal(t, "Mining Level loaded! Level: 7", payload.Message)
}

func TestSubscriber_IgnoresXPGained(t *testing.T) {
	_, bus, client := newSubscribedHub(t)

	require.NoError(t, bus.Publish(context.Background(), event.NewSkillXPGainedEvent("p1", "mining", "Ore_Copper_1", 50, 50)))

	assertNothing(t, client)
}
