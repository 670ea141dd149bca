package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillRecord_UsesXpKey(t *testing.T) {
	data, err := EncodeRecord(&PlayerSkill{PlayerID: "p1", Skill: SkillMining, XP: 383})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Xp":383`)
}

func TestDecodeRecord(t *testing.T) {
	ps, err := DecodeRecord("p1", SkillMining, []byte(`{"Xp":150}`))
	require.NoError(t, err)
	assert.Equal(t, "p1", ps.PlayerID)
	assert.Equal(t, SkillMining, ps.Skill)
	assert.Equal(t, int64(150), ps.XP)
	assert.True(t, ps.UpdatedAt.IsZero())
}

func TestDecodeRecord_ClampsNegative(t *testing.T) {
	ps, err := DecodeRecord("p1", SkillMining, []byte(`{"Xp":-40}`))
	require.NoError(t, err)
	assert.Equal(t, int64(0), ps.XP)
}

func TestDecodeRecord_Invalid(t *testing.T) {
	_, err := DecodeRecord("p1", SkillMining, []byte(`not json`))
	assert.Error(t, err)
}

func TestRecordRoundTripKeepsTimestamp(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	data, err := EncodeRecord(&PlayerSkill{XP: 7, UpdatedAt: now})
	require.NoError(t, err)

	ps, err := DecodeRecord("p", SkillMining, data)
	require.NoError(t, err)
	assert.True(t, now.Equal(ps.UpdatedAt))
}
