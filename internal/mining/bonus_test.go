package mining

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkillForge_Go/internal/domain"
)

// sequence returns a random source that yields values in order and fails the test when exhausted
func sequence(t *testing.T, values ...float64) func() float64 {
	t.Helper()
	i := 0
	return func() float64 {
		require.Less(t, i, len(values), "random source drawn more often than expected")
		v := values[i]
		i++
		return v
	}
}

func noDraws(t *testing.T) func() float64 {
	return func() float64 {
		t.Fatal("random source must not be drawn")
		return 0
	}
}

func TestChanceForLevel(t *testing.T) {
	cfg := DefaultDropConfig()

	tests := []struct {
		level    int
		expected float64
	}{
		{1, 0},
		{9, 0},
		{10, 0.3},
		{19, 0.3},
		{20, 0.5},
		{29, 0.5},
		{30, 0.7},
		{39, 0.7},
		{40, 0.9},
		{49, 0.9},
		{50, 1.0},
		{500, 1.0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, cfg.ChanceForLevel(tt.level), "level %d", tt.level)
	}
}

func TestRoll(t *testing.T) {
	cfg := DefaultDropConfig()

	tests := []struct {
		name     string
		level    int
		draws    []float64
		expected int
	}{
		{"below milestone never draws", 9, nil, 0},
		{"draw under chance drops", 15, []float64{0.29}, 1},
		{"draw equal to chance misses", 15, []float64{0.3}, 0},
		{"no double before level 30", 29, []float64{0}, 1},
		{"double at level 30", 30, []float64{0, 0.49}, 2},
		{"double roll equal to chance stays single", 30, []float64{0, 0.5}, 1},
		{"guaranteed at 50", 50, []float64{0.999, 0.999}, 1},
		{"double at 50", 50, []float64{0.999, 0.1}, 2},
		{"miss skips double roll", 35, []float64{0.7}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rnd func() float64
			if tt.draws == nil {
				rnd = noDraws(t)
			} else {
				rnd = sequence(t, tt.draws...)
			}
			assert.Equal(t, tt.expected, cfg.Roll(tt.level, rnd))
		})
	}
}

func TestRoll_AlwaysZeroNeverDropsBelowMilestone(t *testing.T) {
	cfg := DefaultDropConfig()
	zero := func() float64 { return 0 }
	for level := 1; level < cfg.MinLevel; level++ {
		assert.Zero(t, cfg.Roll(level, zero), "level %d", level)
	}
}

func TestDropConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultDropConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*DropConfig)
	}{
		{"empty item", func(c *DropConfig) { c.ItemID = "" }},
		{"zero min level", func(c *DropConfig) { c.MinLevel = 0 }},
		{"double chance above one", func(c *DropConfig) { c.DoubleDropChance = 1.5 }},
		{"negative tier chance", func(c *DropConfig) { c.Tiers[0].Chance = -0.1 }},
		{"tiers out of order", func(c *DropConfig) { c.Tiers[1].MinLevel = 5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultDropConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), domain.ErrInvalidInput)
		})
	}
}
