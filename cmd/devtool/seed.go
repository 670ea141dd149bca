package main

import (
	"context"
	"fmt"

	"github.com/osse101/SkillForge_Go/internal/apiclient"
	"github.com/osse101/SkillForge_Go/internal/skill"
)

// seedPlayer is a demo player placed at a fixed level
type seedPlayer struct {
	ID    string
	Level int
}

var demoPlayers = []seedPlayer{
	{ID: "demo_novice", Level: 1},
	{ID: "demo_miner", Level: 5},
	{ID: "demo_veteran", Level: 12},
	{ID: "demo_master", Level: 25},
}

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Seed demo players through the admin API (needs API_URL and API_KEY)"
}

func (c *SeedCommand) Run(args []string) error {
	client := apiclient.NewAPIClient(getEnv("API_URL", defaultAPIURL), getEnv("API_KEY", ""))

	PrintHeader("Seeding demo players...")
	if err := seedPlayers(context.Background(), client, skill.DefaultCurve, demoPlayers); err != nil {
		return err
	}
	PrintSuccess("Seeded %d players", len(demoPlayers))
	return nil
}

// seedPlayers sets each player's XP to the start of their level
func seedPlayers(ctx context.Context, client *apiclient.APIClient, curve skill.Curve, players []seedPlayer) error {
	for _, p := range players {
		xp := curve.TotalXPForLevel(p.Level)
		status, err := client.SetMiningXP(ctx, p.ID, xp)
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", p.ID, err)
		}
		PrintInfo("%s -> level %d (%d XP)", status.PlayerID, status.Level, status.TotalXP)
	}
	return nil
}
