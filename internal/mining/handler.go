package mining

import (
	"github.com/osse101/SkillForge_Go/internal/ore"
	"github.com/osse101/SkillForge_Go/internal/skill"
)

// BreakResult is the intent produced by one block break. The caller performs
// the side effects (persisting, notifying, spawning items).
type BreakResult struct {
	IsOre     bool
	XPGranted int64
	OldLevel  int
	NewLevel  int

	// LeveledUpTo is the new level when the break crossed at least one level, else 0
	LeveledUpTo int

	// BonusAmount is the number of bonus items to spawn, 0 for none
	BonusAmount int
}

// LeveledUp reports whether the break raised the level
func (r BreakResult) LeveledUp() bool {
	return r.LeveledUpTo > 0
}

// OreBreakHandler turns ore breaks into XP and bonus drops
type OreBreakHandler struct {
	catalog *ore.Catalog
	drops   DropConfig
}

// NewOreBreakHandler creates a handler over a catalog and drop table
func NewOreBreakHandler(catalog *ore.Catalog, drops DropConfig) *OreBreakHandler {
	return &OreBreakHandler{catalog: catalog, drops: drops}
}

// Catalog returns the ore table the handler uses
func (h *OreBreakHandler) Catalog() *ore.Catalog {
	return h.catalog
}

// Drops returns the bonus drop table
func (h *OreBreakHandler) Drops() DropConfig {
	return h.drops
}

// OnOreBroken applies one break to progress. Non-ore blocks leave progress untouched.
// The level-up marker is set once per break even when several levels are crossed,
// and the bonus roll uses the level after the XP grant.
func (h *OreBreakHandler) OnOreBroken(blockID string, progress *skill.Progress, rnd func() float64) BreakResult {
	entry, ok := h.catalog.Lookup(blockID)
	if !ok {
		level := progress.Level()
		return BreakResult{OldLevel: level, NewLevel: level}
	}

	oldLevel := progress.Level()
	progress.AddXP(entry.XPReward)
	newLevel := progress.Level()

	result := BreakResult{
		IsOre:     true,
		XPGranted: entry.XPReward,
		OldLevel:  oldLevel,
		NewLevel:  newLevel,
	}
	if newLevel > oldLevel {
		result.LeveledUpTo = newLevel
	}

	result.BonusAmount = h.drops.Roll(newLevel, rnd)
	return result
}
