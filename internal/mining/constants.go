package mining

import "time"

// Bonus drop defaults
const (
	// DefaultBonusMinLevel is the first level that can earn bonus drops
	DefaultBonusMinLevel = 10

	// DefaultDoubleDropLevel is the first level that can roll a double drop
	DefaultDoubleDropLevel = 30

	// DefaultDoubleDropChance is the chance of upgrading a drop to 2 items
	DefaultDoubleDropChance = 0.5
)

// Cache defaults
const (
	DefaultCacheSize = 1000
	DefaultCacheTTL  = 10 * time.Minute
)

// Leaderboard limits
const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

// DefaultCurveRows is the number of levels returned when the curve table is requested without a size
const DefaultCurveRows = 20

// MaxCurveRows caps the curve table size
const MaxCurveRows = 500

// Admin adjustment limits. Admin tools can not push a skill past MaxAdminLevel.
const (
	MaxAdminLevel = 10000

	// MaxAdminXP is DefaultCurve.TotalXPForLevel(MaxAdminLevel)
	MaxAdminXP int64 = 399950001278
)
