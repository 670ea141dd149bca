package skill

// Curve constants
const (
	// BaseXP is the XP scale of the curve: xpForLevel(L) = BaseXP * (L-1)^LevelExponent
	BaseXP = 100.0

	// LevelExponent is the growth exponent of the curve
	LevelExponent = 1.5

	// MinLevel is the level of a skill with no XP
	MinLevel = 1
)

// Skill keys
const (
	KeyMining = "mining"
)

// Rounding policy names as used in configuration
const (
	RoundingNameNearest = "round"
	RoundingNameFloor   = "floor"
)
