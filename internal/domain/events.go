package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "skill.level_up")
const (
	// EventTypeSkillXPGained is published when a break grants XP
	EventTypeSkillXPGained = "skill.xp_gained"

	// EventTypeSkillLevelUp is published once per break that crosses at least one level
	EventTypeSkillLevelUp = "skill.level_up"

	// EventTypeSkillBonusDrop is published when a break earns a bonus item
	EventTypeSkillBonusDrop = "skill.bonus_drop"

	// EventTypeSkillLoaded is published when a player's skill is loaded for a session
	EventTypeSkillLoaded = "skill.loaded"

	// EventTypeSkillAdjusted is published after an administrative change to a player's XP
	EventTypeSkillAdjusted = "skill.adjusted"
)
