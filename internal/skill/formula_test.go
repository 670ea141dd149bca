package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXPForLevel(t *testing.T) {
	tests := []struct {
		name     string
		curve    Curve
		level    int
		expected int64
	}{
		{"level 1 needs nothing", DefaultCurve, 1, 0},
		{"level 0 needs nothing", DefaultCurve, 0, 0},
		{"negative level needs nothing", DefaultCurve, -5, 0},
		{"level 2 is the base", DefaultCurve, 2, 100},
		{"level 3 rounds up", DefaultCurve, 3, 283},
		{"level 4 rounds up", DefaultCurve, 4, 520},
		{"level 5 is exact", DefaultCurve, 5, 800},
		{"level 6 rounds down", DefaultCurve, 6, 1118},
		{"floor level 3", NewCurve(RoundFloor), 3, 282},
		{"floor level 4", NewCurve(RoundFloor), 4, 519},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.curve.XPForLevel(tt.level))
		})
	}
}

func TestTotalXPForLevel(t *testing.T) {
	assert.Equal(t, int64(0), TotalXPForLevel(1))
	assert.Equal(t, int64(0), TotalXPForLevel(-3))
	assert.Equal(t, int64(100), TotalXPForLevel(2))
	assert.Equal(t, int64(383), TotalXPForLevel(3))
	assert.Equal(t, int64(903), TotalXPForLevel(4))
	assert.Equal(t, int64(11106), TotalXPForLevel(10))

	floor := NewCurve(RoundFloor)
	assert.Equal(t, int64(382), floor.TotalXPForLevel(3))
	assert.Equal(t, int64(11102), floor.TotalXPForLevel(10))
}

func TestTotalXPForLevel_IsSumOfSteps(t *testing.T) {
	for _, curve := range []Curve{DefaultCurve, NewCurve(RoundFloor)} {
		sum := int64(0)
		for level := 2; level <= 120; level++ {
			sum += curve.XPForLevel(level)
			require.Equal(t, sum, curve.TotalXPForLevel(level), "rounding=%s level=%d", curve.Rounding, level)
		}
	}
}

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		name     string
		xp       int64
		expected int
	}{
		{"negative xp is level 1", -500, 1},
		{"zero xp is level 1", 0, 1},
		{"just below level 2", 99, 1},
		{"exactly level 2", 100, 2},
		{"between 2 and 3", 250, 2},
		{"just below level 3", 382, 2},
		{"exactly level 3", 383, 3},
		{"exactly level 10", 11106, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LevelForXP(tt.xp))
		})
	}
}

func TestLevelForXP_RoundingPoliciesDiverge(t *testing.T) {
	// 382 XP sits on the level 3 boundary only when the step is floored
	assert.Equal(t, 2, NewCurve(RoundNearest).LevelForXP(382))
	assert.Equal(t, 3, NewCurve(RoundFloor).LevelForXP(382))
}

func TestLevelBoundariesRoundTrip(t *testing.T) {
	for _, curve := range []Curve{DefaultCurve, NewCurve(RoundFloor)} {
		for level := 1; level <= 200; level++ {
			total := curve.TotalXPForLevel(level)
			require.Equal(t, level, curve.LevelForXP(total), "rounding=%s level=%d", curve.Rounding, level)
			if level > 1 {
				require.Equal(t, level-1, curve.LevelForXP(total-1), "rounding=%s level=%d", curve.Rounding, level)
			}
		}
	}
}

func TestLevelForXP_Monotonic(t *testing.T) {
	previous := LevelForXP(0)
	for xp := int64(1); xp <= 60000; xp++ {
		level := LevelForXP(xp)
		require.GreaterOrEqual(t, level, previous, "xp=%d", xp)
		previous = level
	}
}

func TestXPIntoAndToNextLevel(t *testing.T) {
	tests := []struct {
		name         string
		xp           int64
		expectedInto int64
		expectedNext int64
	}{
		{"fresh skill", 0, 0, 100},
		{"halfway to level 2", 50, 50, 50},
		{"start of level 2", 100, 0, 283},
		{"inside level 2", 150, 50, 233},
		{"last point of level 2", 382, 282, 1},
		{"negative xp counts as zero", -10, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedInto, XPIntoCurrentLevel(tt.xp))
			assert.Equal(t, tt.expectedNext, XPToNextLevel(tt.xp))
		})
	}
}

func TestXPIntoAndToNextLevel_Bounds(t *testing.T) {
	for xp := int64(0); xp <= 20000; xp += 7 {
		level := LevelForXP(xp)
		into := XPIntoCurrentLevel(xp)
		require.GreaterOrEqual(t, into, int64(0))
		require.Less(t, into, XPForLevel(level+1))
		require.Positive(t, XPToNextLevel(xp))
	}
}

func TestLevelDelta(t *testing.T) {
	assert.Equal(t, int64(383), DefaultCurve.LevelDelta(1, 3))
	assert.Equal(t, int64(283), DefaultCurve.LevelDelta(2, 3))
	assert.Equal(t, int64(-383), DefaultCurve.LevelDelta(3, 1))
	assert.Equal(t, int64(0), DefaultCurve.LevelDelta(4, 4))
}

func TestParseRounding(t *testing.T) {
	r, err := ParseRounding("round")
	require.NoError(t, err)
	assert.Equal(t, RoundNearest, r)

	r, err = ParseRounding("")
	require.NoError(t, err)
	assert.Equal(t, RoundNearest, r)

	r, err = ParseRounding("floor")
	require.NoError(t, err)
	assert.Equal(t, RoundFloor, r)
	assert.Equal(t, "floor", r.String())

	_, err = ParseRounding("ceil")
	assert.Error(t, err)
}
