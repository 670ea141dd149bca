package sse

import "github.com/osse101/SkillForge_Go/internal/domain"

// LevelUpPayload is sent when a player's skill level increases
type LevelUpPayload struct {
	PlayerID string `json:"player_id"`
	Skill    string `json:"skill"`
	OldLevel int    `json:"old_level"`
	NewLevel int    `json:"new_level"`
	Message  string `json:"message"`
}

// BonusDropPayload tells the host to spawn an item at the break position
type BonusDropPayload struct {
	PlayerID string          `json:"player_id"`
	Skill    string          `json:"skill"`
	ItemID   string          `json:"item_id"`
	Amount   int             `json:"amount"`
	Position domain.Position `json:"position"`
	Message  string          `json:"message"`
}

// LoadedPayload greets a player whose skill was loaded
type LoadedPayload struct {
	PlayerID string `json:"player_id"`
	Skill    string `json:"skill"`
	Level    int    `json:"level"`
	TotalXP  int64  `json:"total_xp"`
	Message  string `json:"message"`
}
