package config

// Storage drivers accepted by STORAGE_DRIVER
const (
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"
	StorageDriverRedis    = "redis"
	StorageDriverMemory   = "memory"
)

// Log formats accepted by LOG_FORMAT
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Port range
const (
	MinPort = 1
	MaxPort = 65535
)

// ConfigPathMiningCatalog is the conventional location of an optional catalog override
const ConfigPathMiningCatalog = "configs/mining/catalog.json"
