package domain

// Skill keys
const (
	SkillMining = "mining"
)

// Item ids granted by skills
const (
	ItemCharcoal = "Ingredient_Charcoal"
)

// Administrative operations, recorded on skill.adjusted events
const (
	AdjustAddLevels = "add_levels"
	AdjustSetXP     = "set_xp"
	AdjustReset     = "reset"
)
