package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat   string `validate:"oneof=text json"`
	Environment string
	ServiceName string
	Version     string
	LogDir      string

	// Record store
	StoreDriver string `validate:"oneof=memory sqlite postgres"`
	SQLitePath  string `validate:"required_if=StoreDriver sqlite"`
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string
	DBMaxConns  int           `validate:"min=1"`
	CacheSize   int           `validate:"min=0"`
	CacheTTL    time.Duration `validate:"min=0"`

	// Engine
	TickInterval        time.Duration `validate:"gt=0"`
	LeaderboardInterval time.Duration `validate:"gt=0"`
	EventPoolSize       int           `validate:"min=1"`
	EventSpacingMinutes int           `validate:"min=1"`
	PointsPerCorrect    int           `validate:"min=0"`
	ReminderLead        time.Duration `validate:"min=0"`
	RandomSeed          int64
	TournamentsPath     string

	// Reminder delivery
	DiscordWebhookID    string
	DiscordWebhookToken string `validate:"required_with=DiscordWebhookID"`

	// Workers
	WorkerCount     int `validate:"min=1"`
	WorkerQueueSize int `validate:"min=1"`

	// HTTP surface
	APIKey         string
	TrustedProxies []string
	RateLimit      int `validate:"min=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnvAsInt("PORT", DefaultPort),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		ServiceName: getEnv("SERVICE_NAME", "betengine"),
		Version:     getEnv("VERSION", "dev"),
		LogDir:      getEnv("LOG_DIR", ""),

		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", StoreDriverSQLite)),
		SQLitePath:  getEnv("SQLITE_PATH", DefaultSQLitePath),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBName:      getEnv("DB_NAME", "betengine"),
		DBMaxConns:  getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		CacheSize:   getEnvAsInt("CACHE_SIZE", DefaultCacheSize),
		CacheTTL:    getEnvAsDuration("CACHE_TTL", DefaultCacheTTL),

		TickInterval:        getEnvAsDuration("TICK_INTERVAL", DefaultTickInterval),
		LeaderboardInterval: getEnvAsDuration("LEADERBOARD_INTERVAL", DefaultLeaderboardInterval),
		EventPoolSize:       getEnvAsInt("EVENT_POOL_SIZE", DefaultEventPoolSize),
		EventSpacingMinutes: getEnvAsInt("EVENT_SPACING_MINUTES", DefaultEventSpacingMinutes),
		PointsPerCorrect:    getEnvAsInt("POINTS_PER_CORRECT", DefaultPointsPerCorrect),
		ReminderLead:        getEnvAsDuration("REMINDER_LEAD", DefaultReminderLead),
		RandomSeed:          int64(getEnvAsInt("RANDOM_SEED", 0)),
		TournamentsPath:     getEnv("TOURNAMENTS_PATH", ConfigPathTournaments),

		DiscordWebhookID:    getEnv("DISCORD_WEBHOOK_ID", ""),
		DiscordWebhookToken: getEnv("DISCORD_WEBHOOK_TOKEN", ""),

		WorkerCount:     getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		WorkerQueueSize: getEnvAsInt("WORKER_QUEUE_SIZE", DefaultWorkerQueueSize),

		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
		RateLimit:      getEnvAsInt("RATE_LIMIT", DefaultRateLimit),
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a Go duration string such as "1s" or "2m"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
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

// IsDevelopment reports whether source locations should be added to logs
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}
