package discord

import "time"

// Event stream connection settings
const (
	streamPath             = "/api/v1/events/ws"
	streamInitialBackoff   = 1 * time.Second
	streamMaxBackoff       = 30 * time.Second
	streamHandshakeTimeout = 10 * time.Second
	streamWriteWait        = 5 * time.Second

	// The server pings every 30s; two missed pings drop the connection
	streamReadTimeout = 70 * time.Second
)

// Event types the bot announces or skips
const (
	EventTypeLevelUp   = "skill.level_up"
	EventTypeBonusDrop = "skill.bonus_drop"

	streamEventConnected = "connected"
	streamEventKeepalive = "keepalive"
)

// Event stream log messages
const (
	streamLogMsgConnected          = "Event stream connected"
	streamLogMsgDisconnected       = "Event stream disconnected"
	streamLogMsgStopped            = "Event stream stopped"
	streamLogMsgParseError         = "Failed to parse stream event"
	streamLogMsgHandlerError       = "Stream event handler error"
	streamLogMsgEventReceived      = "Stream event received"
	streamLogMsgNotificationSent   = "Discord notification sent"
	streamLogMsgNotificationFailed = "Failed to send Discord notification"
)
