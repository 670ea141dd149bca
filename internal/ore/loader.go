package ore

import (
	"fmt"

	"github.com/osse101/SkillForge_Go/internal/domain"
	"github.com/osse101/SkillForge_Go/internal/utils"
	"github.com/osse101/SkillForge_Go/internal/validation"
)

// CatalogConfig is the JSON layout of a catalog file
type CatalogConfig struct {
	Skill   string  `json:"skill"`
	Entries []Entry `json:"entries"`
}

// LoadCatalog reads, validates and builds a catalog from a JSON file.
// The file is checked against the ore catalog schema before it is decoded.
func LoadCatalog(path string) (*Catalog, error) {
	if err := validation.NewSchemaValidator().ValidateFile(path, validation.SchemaOreCatalog); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogInvalid, err)
	}

	var cfg CatalogConfig
	if err := utils.LoadJSON(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogInvalid, err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return NewCatalog(cfg.Skill, cfg.Entries), nil
}

// Validate checks a catalog configuration. Entry order is kept as declared.
func Validate(cfg *CatalogConfig) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is nil", domain.ErrCatalogInvalid)
	}
	if cfg.Skill == "" {
		return fmt.Errorf("%w: skill is empty", domain.ErrCatalogInvalid)
	}
	if len(cfg.Entries) == 0 {
		return fmt.Errorf("%w: no entries defined", domain.ErrCatalogInvalid)
	}

	seen := make(map[string]struct{}, len(cfg.Entries))
	for i, e := range cfg.Entries {
		if e.Prefix == "" {
			return fmt.Errorf("%w: entry at index %d has empty prefix", domain.ErrCatalogInvalid, i)
		}
		if e.XPReward <= 0 {
			return fmt.Errorf("%w: entry '%s' has non-positive xp %d", domain.ErrCatalogInvalid, e.Prefix, e.XPReward)
		}
		if _, dup := seen[e.Prefix]; dup {
			return fmt.Errorf("%w: duplicate prefix '%s'", domain.ErrCatalogInvalid, e.Prefix)
		}
		seen[e.Prefix] = struct{}{}
	}
	return nil
}

// SaveCatalog writes c in the layout LoadCatalog reads
func SaveCatalog(path string, c *Catalog) error {
	return utils.SaveJSON(path, CatalogConfig{Skill: c.Skill(), Entries: c.Entries()})
}
