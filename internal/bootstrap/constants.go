package bootstrap

import "time"

// File System Permissions
const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for session log files
	LogFilePermission = 0644
)

// Logger Configuration
const (
	// LogFileTimestampFormat names session logs so they sort chronologically
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older session logs kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting skill service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// Event System Configuration
const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// EventDefaultDeadLetterPath is the default file path for dead-letter event logging
	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// Event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSSESubscriberRegistered    = "SSE subscriber registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// Storage initialization
const (
	LogMsgStoreInitialized   = "Skill store initialized"
	ErrMsgUnknownDriver      = "unknown storage driver"
	ErrMsgFailedOpenStore    = "failed to open skill store"
	ErrMsgFailedMigrateStore = "failed to migrate skill store"
)

// Mining configuration
const (
	LogMsgCatalogLoaded     = "Ore catalog loaded"
	LogMsgMiningConfigured  = "Mining service configured"
	ErrMsgFailedLoadCatalog = "failed to load ore catalog"
	ErrMsgInvalidDrops      = "invalid bonus drop configuration"
)

// Shutdown Messages
const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgMiningShutdownFailed       = "Mining service shutdown failed"
	LogMsgStoreCloseFailed           = "Skill store close failed"
	LogMsgJobScheduled               = "Background job scheduled"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
)
