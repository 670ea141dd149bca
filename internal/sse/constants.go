package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// KeepaliveInterval is how often to send keepalive pings
const KeepaliveInterval = 30 * time.Second

// Event types for SSE
const (
	EventTypeLevelUp   = "skill.level_up"
	EventTypeBonusDrop = "skill.bonus_drop"
	EventTypeLoaded    = "skill.loaded"
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// Query parameters of the SSE endpoint
const (
	QueryParamTypes  = "types"
	QueryParamPlayer = "player"
)

// Player-facing message formats
const (
	MsgFormatLevelUp   = "Your %s Level is now %d"
	MsgFormatBonusDrop = "You received %s!"
	MsgFormatLoaded    = "%s Level loaded! Level: %d"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgInvalidPayload     = "Invalid event payload for SSE"
	LogMsgUpgradeFailed      = "WebSocket upgrade failed"
)
