package skill

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProgress(t *testing.T) {
	p := NewProgress()
	assert.Equal(t, int64(0), p.XP())
	assert.Equal(t, 1, p.Level())
}

func TestProgress_AddXP(t *testing.T) {
	tests := []struct {
		name     string
		start    int64
		amount   int64
		expected int64
	}{
		{"gain", 0, 50, 50},
		{"loss", 150, -50, 100},
		{"loss past zero clamps", 30, -100, 0},
		{"huge loss clamps", 10, math.MinInt64, 0},
		{"gain saturates", math.MaxInt64 - 5, 10, math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProgressWithXP(DefaultCurve, tt.start)
			p.AddXP(tt.amount)
			assert.Equal(t, tt.expected, p.XP())
			assert.GreaterOrEqual(t, p.XP(), int64(0))
		})
	}
}

func TestProgress_SetXP(t *testing.T) {
	p := NewProgress()

	p.SetXP(383)
	assert.Equal(t, int64(383), p.XP())
	assert.Equal(t, 3, p.Level())

	p.SetXP(-1)
	assert.Equal(t, int64(0), p.XP())
	assert.Equal(t, 1, p.Level())
}

func TestProgress_Reset(t *testing.T) {
	p := NewProgressWithXP(DefaultCurve, 11106)
	assert.Equal(t, 10, p.Level())

	p.Reset()
	assert.Equal(t, int64(0), p.XP())
	assert.Equal(t, 1, p.Level())
}

func TestProgress_LevelFollowsXP(t *testing.T) {
	p := NewProgress()
	p.AddXP(99)
	assert.Equal(t, 1, p.Level())
	p.AddXP(1)
	assert.Equal(t, 2, p.Level())
	p.AddXP(-1)
	assert.Equal(t, 1, p.Level())
}

func TestProgress_LevelIsStableWithoutMutation(t *testing.T) {
	p := NewProgressWithXP(DefaultCurve, 5000)
	first := p.Level()
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, p.Level())
	}
}

func TestProgress_RestoreClampsNegative(t *testing.T) {
	p := NewProgressWithXP(NewCurve(RoundFloor), -20)
	assert.Equal(t, int64(0), p.XP())
	assert.Equal(t, RoundFloor, p.Curve().Rounding)
}

func TestProgress_LevelProgress(t *testing.T) {
	p := NewProgressWithXP(DefaultCurve, 150)
	assert.Equal(t, int64(50), p.XPIntoLevel())
	assert.Equal(t, int64(233), p.XPToNextLevel())
}
