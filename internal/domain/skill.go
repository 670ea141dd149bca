package domain

import (
	"encoding/json"
	"time"
)

// PlayerSkill is the persisted progress of one player in one skill.
// Only XP is stored; levels are always derived.
type PlayerSkill struct {
	PlayerID  string    `json:"player_id"`
	Skill     string    `json:"skill"`
	XP        int64     `json:"xp"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SkillRecord is the persisted value layout shared with the host game, which
// stores the skill component under the "Xp" key.
type SkillRecord struct {
	XP        int64     `json:"Xp"`
	UpdatedAt time.Time `json:"UpdatedAt,omitempty"`
}

// EncodeRecord serializes the persisted value of ps
func EncodeRecord(ps *PlayerSkill) ([]byte, error) {
	return json.Marshal(SkillRecord{XP: ps.XP, UpdatedAt: ps.UpdatedAt})
}

// DecodeRecord restores a PlayerSkill from a persisted value. Negative XP is clamped.
func DecodeRecord(playerID, skill string, data []byte) (*PlayerSkill, error) {
	var rec SkillRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	if rec.XP < 0 {
		rec.XP = 0
	}
	return &PlayerSkill{PlayerID: playerID, Skill: skill, XP: rec.XP, UpdatedAt: rec.UpdatedAt}, nil
}

// Position is the world location of a broken block. It is opaque to the
// progression logic and only passed through to drop spawning.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// BlockBrokenEvent is delivered by the host game when a player breaks a block
type BlockBrokenEvent struct {
	PlayerID string   `json:"player_id" validate:"required,max=100"`
	BlockID  string   `json:"block_id" validate:"required,max=200"`
	Position Position `json:"position"`
}

// BonusDrop is an item the host should spawn at the break position
type BonusDrop struct {
	ItemID   string   `json:"item_id"`
	Amount   int      `json:"amount"`
	Position Position `json:"position"`
}

// BreakOutcome reports what a block break did to a player's skill
type BreakOutcome struct {
	PlayerID    string     `json:"player_id"`
	Skill       string     `json:"skill"`
	BlockID     string     `json:"block_id"`
	IsOre       bool       `json:"is_ore"`
	XPGranted   int64      `json:"xp_granted"`
	TotalXP     int64      `json:"total_xp"`
	Level       int        `json:"level"`
	LeveledUpTo int        `json:"leveled_up_to,omitempty"`
	BonusDrop   *BonusDrop `json:"bonus_drop,omitempty"`
}

// SkillStatus is the read view of a player's skill
type SkillStatus struct {
	PlayerID      string `json:"player_id"`
	Skill         string `json:"skill"`
	Level         int    `json:"level"`
	TotalXP       int64  `json:"total_xp"`
	XPIntoLevel   int64  `json:"xp_into_level"`
	XPForLevel    int64  `json:"xp_for_level"`
	XPToNextLevel int64  `json:"xp_to_next_level"`
}

// LeaderboardEntry is one row of a skill leaderboard
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	PlayerID string `json:"player_id"`
	Level    int    `json:"level"`
	XP       int64  `json:"xp"`
}

// CurveRow describes one level of the XP curve
type CurveRow struct {
	Level      int   `json:"level"`
	XPForLevel int64 `json:"xp_for_level"`
	TotalXP    int64 `json:"total_xp"`
}
