package ore

import "strings"

// Entry maps a block id family to the XP it grants
type Entry struct {
	Prefix   string `json:"prefix"`
	XPReward int64  `json:"xp"`
}

// Catalog is an immutable, ordered prefix table. The first matching prefix wins.
type Catalog struct {
	skill   string
	entries []Entry
}

// NewCatalog builds a catalog for a skill. The entries are copied so later
// changes to the slice do not leak in.
func NewCatalog(skill string, entries []Entry) *Catalog {
	copied := make([]Entry, len(entries))
	copy(copied, entries)
	return &Catalog{skill: skill, entries: copied}
}

// DefaultMiningEntries returns the built-in mining table in declared order
func DefaultMiningEntries() []Entry {
	return []Entry{
		{Prefix: PrefixCopper, XPReward: XPCopper},
		{Prefix: PrefixIron, XPReward: XPIron},
		{Prefix: PrefixThorium, XPReward: XPThorium},
		{Prefix: PrefixGold, XPReward: XPGold},
		{Prefix: PrefixCobalt, XPReward: XPCobalt},
		{Prefix: PrefixSilver, XPReward: XPSilver},
		{Prefix: PrefixAdamantite, XPReward: XPAdamantite},
		{Prefix: PrefixMithril, XPReward: XPMithril},
		{Prefix: PrefixOnyxium, XPReward: XPOnyxium},
	}
}

// Skill returns the skill key the catalog grants XP to
func (c *Catalog) Skill() string {
	return c.skill
}

// Entries returns a copy of the table in match order
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup returns the first entry whose prefix matches blockID
func (c *Catalog) Lookup(blockID string) (Entry, bool) {
	for _, e := range c.entries {
		if strings.HasPrefix(blockID, e.Prefix) {
			return e, true
		}
	}
	return Entry{}, false
}

// IsOre reports whether blockID belongs to any registered family
func (c *Catalog) IsOre(blockID string) bool {
	_, ok := c.Lookup(blockID)
	return ok
}

// XPForBlock returns the reward for blockID, or 0 when it is not an ore
func (c *Catalog) XPForBlock(blockID string) int64 {
	e, ok := c.Lookup(blockID)
	if !ok {
		return 0
	}
	return e.XPReward
}
