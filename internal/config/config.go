package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/osse101/SkillForge_Go/internal/skill"
)

// Config holds the application configuration
type Config struct {
	// Server
	Port        int    `env:"PORT" envDefault:"8080"`
	APIKey      string `env:"API_KEY"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"skillforge"`
	Version     string `env:"VERSION" envDefault:"dev"`

	// TrustedProxies are peers whose X-Forwarded-For header is believed
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	LogDir    string `env:"LOG_DIR" envDefault:"logs"`

	// Storage
	StorageDriver       string        `env:"STORAGE_DRIVER" envDefault:"postgres"`
	DBUser              string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword          string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost              string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort              string        `env:"DB_PORT" envDefault:"5432"`
	DBName              string        `env:"DB_NAME" envDefault:"skillforge"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"20"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"5m"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`
	SQLitePath          string        `env:"SQLITE_PATH" envDefault:"data/skillforge.db"`
	RedisAddr           string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword       string        `env:"REDIS_PASSWORD"`
	RedisDB             int           `env:"REDIS_DB" envDefault:"0"`
	RedisPoolSize       int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	CacheSize           int           `env:"CACHE_SIZE" envDefault:"1000"`
	CacheTTL            time.Duration `env:"CACHE_TTL" envDefault:"10m"`
	CacheStatsInterval  time.Duration `env:"CACHE_STATS_INTERVAL" envDefault:"30s"` // 0 disables the stats job
	WorkerCount         int           `env:"WORKER_COUNT" envDefault:"2"`
	ShutdownTimeout     time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	EventMaxRetries     int           `env:"EVENT_MAX_RETRIES" envDefault:"5"`
	EventRetryDelay     time.Duration `env:"EVENT_RETRY_DELAY" envDefault:"2s"`
	EventDeadLetterPath string        `env:"EVENT_DEAD_LETTER_PATH" envDefault:"logs/event_deadletter.jsonl"`

	// Skill tuning
	CurveRounding     string          `env:"CURVE_ROUNDING" envDefault:"round"`
	CatalogPath       string          `env:"CATALOG_PATH"`
	BonusItemID       string          `env:"BONUS_ITEM_ID" envDefault:"Ingredient_Charcoal"`
	BonusMinLevel     int             `env:"BONUS_MIN_LEVEL" envDefault:"10"`
	BonusTiers        map[int]float64 `env:"BONUS_TIERS" envKeyValSeparator:":" envDefault:"10:0.3,20:0.5,30:0.7,40:0.9,50:1.0"`
	BonusDoubleLevel  int             `env:"BONUS_DOUBLE_LEVEL" envDefault:"30"`
	BonusDoubleChance float64         `env:"BONUS_DOUBLE_CHANCE" envDefault:"0.5"`
	RNGSeed           int64           `env:"RNG_SEED"` // 0 means unseeded

	// Discord bot
	DiscordToken                 string `env:"DISCORD_TOKEN"`
	DiscordAppID                 string `env:"DISCORD_APP_ID"`
	DiscordGuildID               string `env:"DISCORD_GUILD_ID"`
	DiscordNotificationChannelID string `env:"DISCORD_NOTIFICATION_CHANNEL_ID"`
	DiscordWebhookPort           string `env:"DISCORD_WEBHOOK_PORT" envDefault:"8082"`
	DiscordForceCommandUpdate    bool   `env:"DISCORD_FORCE_COMMAND_UPDATE"`
	APIURL                       string `env:"API_URL" envDefault:"http://localhost:8080"`
}

// Load loads the configuration from environment variables and validates it
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enums, ranges and driver-specific settings
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("API_KEY environment variable must be set for security")
	}
	if c.Port < MinPort || c.Port > MaxPort {
		return fmt.Errorf("invalid PORT value %d: must be between %d and %d", c.Port, MinPort, MaxPort)
	}

	switch strings.ToLower(c.LogFormat) {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q: must be %s or %s", c.LogFormat, LogFormatText, LogFormatJSON)
	}

	if _, err := c.Rounding(); err != nil {
		return fmt.Errorf("invalid CURVE_ROUNDING: %w", err)
	}

	if err := c.validateStorage(); err != nil {
		return err
	}

	if c.CacheSize <= 0 {
		return fmt.Errorf("invalid CACHE_SIZE %d: must be positive", c.CacheSize)
	}
	if c.CacheStatsInterval < 0 {
		return fmt.Errorf("invalid CACHE_STATS_INTERVAL %s: must not be negative", c.CacheStatsInterval)
	}
	if c.EventMaxRetries < 0 {
		return fmt.Errorf("invalid EVENT_MAX_RETRIES %d: must not be negative", c.EventMaxRetries)
	}
	if c.EventRetryDelay <= 0 {
		return fmt.Errorf("invalid EVENT_RETRY_DELAY %s: must be positive", c.EventRetryDelay)
	}

	return c.validateBonus()
}

func (c *Config) validateStorage() error {
	switch c.StorageDriver {
	case StorageDriverPostgres:
		if c.DBHost == "" || c.DBName == "" {
			return fmt.Errorf("DB_HOST and DB_NAME are required for the %s driver", StorageDriverPostgres)
		}
		if c.DBMaxConns <= 0 {
			return fmt.Errorf("invalid DB_MAX_CONNS %d: must be positive", c.DBMaxConns)
		}
	case StorageDriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the %s driver", StorageDriverSQLite)
		}
	case StorageDriverRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the %s driver", StorageDriverRedis)
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("invalid STORAGE_DRIVER %q: must be one of %s, %s, %s, %s", c.StorageDriver,
			StorageDriverPostgres, StorageDriverSQLite, StorageDriverRedis, StorageDriverMemory)
	}
	return nil
}

func (c *Config) validateBonus() error {
	if c.BonusItemID == "" {
		return fmt.Errorf("BONUS_ITEM_ID must not be empty")
	}
	if c.BonusMinLevel < skill.MinLevel {
		return fmt.Errorf("invalid BONUS_MIN_LEVEL %d: must be at least %d", c.BonusMinLevel, skill.MinLevel)
	}
	if c.BonusDoubleChance < 0 || c.BonusDoubleChance > 1 {
		return fmt.Errorf("invalid BONUS_DOUBLE_CHANCE %v: must be between 0 and 1", c.BonusDoubleChance)
	}
	for level, chance := range c.BonusTiers {
		if level < c.BonusMinLevel {
			return fmt.Errorf("invalid BONUS_TIERS: tier level %d is below BONUS_MIN_LEVEL %d", level, c.BonusMinLevel)
		}
		if chance < 0 || chance > 1 {
			return fmt.Errorf("invalid BONUS_TIERS: chance %v at level %d must be between 0 and 1", chance, level)
		}
	}
	return nil
}

// Rounding returns the configured curve rounding policy
func (c *Config) Rounding() (skill.Rounding, error) {
	return skill.ParseRounding(c.CurveRounding)
}

// TierLevels returns the bonus tier levels in ascending order
func (c *Config) TierLevels() []int {
	levels := make([]int, 0, len(c.BonusTiers))
	for level := range c.BonusTiers {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	return levels
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
