package discord

// Friendly message constants for Discord responses
const (
	MsgPlayerNotFound    = "👤 **Player Not Found**\nThey have not mined anything yet."
	MsgServerUnavailable = "🛠️ **Skill server unavailable**\nPlease try again in a moment."
	MsgInvalidRequest    = "⚠️ **Invalid request**\nPlease check your inputs."
	MsgAdminOnly         = "🔒 Only server administrators can change skill levels."
	MsgLevelsRequired    = "You must specify the number of levels to add using the `levels` option."
	MsgUnknownOperation  = "Unknown operation: %s"

	MsgGenericError = "❌ Something went wrong."
)

// Embed footers
const (
	FooterSkillForge      = "SkillForge"
	FooterSkillForgeAdmin = "SkillForge Admin"
)
