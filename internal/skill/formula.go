package skill

import (
	"fmt"
	"math"
)

// Rounding selects how the fractional curve value is turned into whole XP.
type Rounding int

const (
	// RoundNearest rounds half up: 282.84 -> 283, 250.5 -> 251
	RoundNearest Rounding = iota
	// RoundFloor truncates: 282.84 -> 282
	RoundFloor
)

// String returns the configuration name of the policy
func (r Rounding) String() string {
	if r == RoundFloor {
		return RoundingNameFloor
	}
	return RoundingNameNearest
}

// ParseRounding converts a configuration value into a Rounding policy
func ParseRounding(name string) (Rounding, error) {
	switch name {
	case RoundingNameNearest, "":
		return RoundNearest, nil
	case RoundingNameFloor:
		return RoundFloor, nil
	default:
		return RoundNearest, fmt.Errorf("unknown rounding policy %q", name)
	}
}

// Curve converts between total XP and level.
// All conversions go through XPForLevel, so every rounding policy keeps
// XPForLevel, TotalXPForLevel and LevelForXP consistent with each other.
type Curve struct {
	Base     float64
	Exponent float64
	Rounding Rounding
}

// DefaultCurve is the mining curve: round(100 * (L-1)^1.5)
var DefaultCurve = Curve{Base: BaseXP, Exponent: LevelExponent, Rounding: RoundNearest}

// NewCurve returns the default curve shape with the given rounding policy
func NewCurve(rounding Rounding) Curve {
	return Curve{Base: BaseXP, Exponent: LevelExponent, Rounding: rounding}
}

// XPForLevel returns the XP needed for the single step level-1 -> level.
// Levels at or below 1 need nothing.
func (c Curve) XPForLevel(level int) int64 {
	if level <= MinLevel {
		return 0
	}
	raw := c.Base * math.Pow(float64(level-1), c.Exponent)
	if c.Rounding == RoundFloor {
		return int64(math.Floor(raw))
	}
	return int64(math.Floor(raw + 0.5))
}

// TotalXPForLevel returns the XP needed to reach level starting from level 1.
func (c Curve) TotalXPForLevel(level int) int64 {
	total := int64(0)
	for l := MinLevel + 1; l <= level; l++ {
		total += c.XPForLevel(l)
	}
	return total
}

// LevelForXP returns the highest level whose cumulative requirement is covered by xp.
func (c Curve) LevelForXP(xp int64) int {
	if xp <= 0 {
		return MinLevel
	}

	level := MinLevel
	accumulated := int64(0)
	for {
		needed := c.XPForLevel(level + 1)
		if needed > xp-accumulated {
			return level
		}
		accumulated += needed
		level++
	}
}

// XPIntoCurrentLevel returns how far xp is past the start of its level
func (c Curve) XPIntoCurrentLevel(xp int64) int64 {
	if xp < 0 {
		xp = 0
	}
	return xp - c.TotalXPForLevel(c.LevelForXP(xp))
}

// XPToNextLevel returns the XP still missing for the next level. Always positive.
func (c Curve) XPToNextLevel(xp int64) int64 {
	level := c.LevelForXP(xp)
	return c.XPForLevel(level+1) - c.XPIntoCurrentLevel(xp)
}

// LevelDelta returns the XP change that moves a skill from level current to target,
// measured between level starts so progress inside the current level is kept.
func (c Curve) LevelDelta(current, target int) int64 {
	return c.TotalXPForLevel(target) - c.TotalXPForLevel(current)
}

// XPForLevel uses DefaultCurve
func XPForLevel(level int) int64 { return DefaultCurve.XPForLevel(level) }

// TotalXPForLevel uses DefaultCurve
func TotalXPForLevel(level int) int64 { return DefaultCurve.TotalXPForLevel(level) }

// LevelForXP uses DefaultCurve
func LevelForXP(xp int64) int { return DefaultCurve.LevelForXP(xp) }

// XPIntoCurrentLevel uses DefaultCurve
func XPIntoCurrentLevel(xp int64) int64 { return DefaultCurve.XPIntoCurrentLevel(xp) }

// XPToNextLevel uses DefaultCurve
func XPToNextLevel(xp int64) int64 { return DefaultCurve.XPToNextLevel(xp) }
