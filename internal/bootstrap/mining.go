package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/SkillForge_Go/internal/config"
	"github.com/osse101/SkillForge_Go/internal/mining"
	"github.com/osse101/SkillForge_Go/internal/ore"
	"github.com/osse101/SkillForge_Go/internal/skill"
	"github.com/osse101/SkillForge_Go/internal/utils"
)

// BuildMiningConfig turns the skill tuning settings into a mining.Config.
// Without CATALOG_PATH the built-in ore catalog is used.
func BuildMiningConfig(cfg *config.Config) (mining.Config, error) {
	miningCfg := mining.DefaultConfig()

	rounding, err := cfg.Rounding()
	if err != nil {
		return mining.Config{}, err
	}
	miningCfg.Curve = skill.NewCurve(rounding)

	if cfg.CatalogPath != "" {
		catalog, err := ore.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			return mining.Config{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
		}
		miningCfg.Catalog = catalog
		slog.Info(LogMsgCatalogLoaded, "path", cfg.CatalogPath, "skill", catalog.Skill(), "entries", len(catalog.Entries()))
	}

	drops := mining.DropConfig{
		ItemID:           cfg.BonusItemID,
		MinLevel:         cfg.BonusMinLevel,
		DoubleDropLevel:  cfg.BonusDoubleLevel,
		DoubleDropChance: cfg.BonusDoubleChance,
	}
	for _, level := range cfg.TierLevels() {
		drops.Tiers = append(drops.Tiers, mining.DropTier{MinLevel: level, Chance: cfg.BonusTiers[level]})
	}
	if err := drops.Validate(); err != nil {
		return mining.Config{}, fmt.Errorf("%s: %w", ErrMsgInvalidDrops, err)
	}
	miningCfg.Drops = drops

	miningCfg.Cache = mining.CacheConfig{Size: cfg.CacheSize, TTL: cfg.CacheTTL}

	if cfg.RNGSeed != 0 {
		miningCfg.Rand = utils.SeededFloat(cfg.RNGSeed)
	}

	slog.Info(LogMsgMiningConfigured,
		"skill", miningCfg.Catalog.Skill(),
		"rounding", rounding.String(),
		"bonus_item", drops.ItemID,
		"tiers", len(drops.Tiers),
		"seeded", cfg.RNGSeed != 0)

	return miningCfg, nil
}
