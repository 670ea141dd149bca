package skill

import "math"

// Progress is a player's state in one skill. Only XP is stored; the level is
// derived from it on every read.
type Progress struct {
	xp    int64
	curve Curve
}

// NewProgress creates progress at 0 XP (level 1) on the default curve
func NewProgress() *Progress {
	return &Progress{curve: DefaultCurve}
}

// NewProgressWithXP restores progress from a persisted XP value on the given curve
func NewProgressWithXP(curve Curve, xp int64) *Progress {
	p := &Progress{curve: curve}
	p.SetXP(xp)
	return p
}

// XP returns the total accumulated XP
func (p *Progress) XP() int64 {
	return p.xp
}

// Level returns the level for the current XP
func (p *Progress) Level() int {
	return p.curve.LevelForXP(p.xp)
}

// Curve returns the curve the progress is measured on
func (p *Progress) Curve() Curve {
	return p.curve
}

// AddXP applies a gain or loss. The result never drops below 0.
func (p *Progress) AddXP(amount int64) {
	switch {
	case amount > 0 && p.xp > math.MaxInt64-amount:
		p.xp = math.MaxInt64
	case p.xp+amount < 0:
		p.xp = 0
	default:
		p.xp += amount
	}
}

// SetXP overwrites XP, clamping negatives to 0
func (p *Progress) SetXP(amount int64) {
	if amount < 0 {
		amount = 0
	}
	p.xp = amount
}

// Reset puts the skill back to level 1
func (p *Progress) Reset() {
	p.SetXP(0)
}

// XPIntoLevel returns XP earned since the current level started
func (p *Progress) XPIntoLevel() int64 {
	return p.curve.XPIntoCurrentLevel(p.xp)
}

// XPToNextLevel returns the XP still missing for the next level
func (p *Progress) XPToNextLevel() int64 {
	return p.curve.XPToNextLevel(p.xp)
}
