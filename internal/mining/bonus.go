package mining

import (
	"fmt"

	"github.com/osse101/SkillForge_Go/internal/domain"
)

// DropTier sets the bonus chance for levels at or above MinLevel
type DropTier struct {
	MinLevel int     `json:"min_level"`
	Chance   float64 `json:"chance"`
}

// DropConfig is the milestone table for bonus drops
type DropConfig struct {
	ItemID           string     `json:"item_id"`
	MinLevel         int        `json:"min_level"`
	Tiers            []DropTier `json:"tiers"` // ascending MinLevel
	DoubleDropLevel  int        `json:"double_drop_level"`
	DoubleDropChance float64    `json:"double_drop_chance"`
}

// DefaultDropConfig returns the mining milestones:
// 10-19 30%, 20-29 50%, 30-39 70%, 40-49 90%, 50+ always.
func DefaultDropConfig() DropConfig {
	return DropConfig{
		ItemID:   domain.ItemCharcoal,
		MinLevel: DefaultBonusMinLevel,
		Tiers: []DropTier{
			{MinLevel: 10, Chance: 0.3},
			{MinLevel: 20, Chance: 0.5},
			{MinLevel: 30, Chance: 0.7},
			{MinLevel: 40, Chance: 0.9},
			{MinLevel: 50, Chance: 1.0},
		},
		DoubleDropLevel:  DefaultDoubleDropLevel,
		DoubleDropChance: DefaultDoubleDropChance,
	}
}

// Validate checks that the table is usable
func (c DropConfig) Validate() error {
	if c.ItemID == "" {
		return fmt.Errorf("%w: bonus item id is empty", domain.ErrInvalidInput)
	}
	if c.MinLevel < 1 {
		return fmt.Errorf("%w: bonus min level must be at least 1, got %d", domain.ErrInvalidInput, c.MinLevel)
	}
	if c.DoubleDropChance < 0 || c.DoubleDropChance > 1 {
		return fmt.Errorf("%w: double drop chance %v is outside [0,1]", domain.ErrInvalidInput, c.DoubleDropChance)
	}
	prev := 0
	for i, tier := range c.Tiers {
		if tier.Chance < 0 || tier.Chance > 1 {
			return fmt.Errorf("%w: tier %d chance %v is outside [0,1]", domain.ErrInvalidInput, i, tier.Chance)
		}
		if tier.MinLevel <= prev {
			return fmt.Errorf("%w: tier %d min level %d is not ascending", domain.ErrInvalidInput, i, tier.MinLevel)
		}
		prev = tier.MinLevel
	}
	return nil
}

// ChanceForLevel returns the bonus chance at level, 0 below the milestone
func (c DropConfig) ChanceForLevel(level int) float64 {
	if level < c.MinLevel {
		return 0
	}
	chance := 0.0
	for _, tier := range c.Tiers {
		if level < tier.MinLevel {
			break
		}
		chance = tier.Chance
	}
	return chance
}

// Roll decides the bonus amount for a break at level. 0 means no drop.
// The first draw gates the drop; a second, independent draw may double it.
func (c DropConfig) Roll(level int, rnd func() float64) int {
	chance := c.ChanceForLevel(level)
	if chance <= 0 {
		return 0
	}
	if rnd() >= chance {
		return 0
	}

	amount := 1
	if level >= c.DoubleDropLevel && rnd() < c.DoubleDropChance {
		amount = 2
	}
	return amount
}
