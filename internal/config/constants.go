package config

import "time"

// Store drivers
const (
	StoreDriverMemory   = "memory"
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
)

// ConfigPathTournaments is the optional tournament lineup file
const ConfigPathTournaments = "configs/tournaments.json"

// Defaults
const (
	DefaultPort                = 8080
	DefaultSQLitePath          = "data/betengine.db"
	DefaultDBMaxConns          = 10
	DefaultCacheSize           = 64
	DefaultCacheTTL            = 30 * time.Second
	DefaultTickInterval        = time.Second
	DefaultLeaderboardInterval = 5 * time.Second
	DefaultEventPoolSize       = 12
	DefaultEventSpacingMinutes = 5
	DefaultPointsPerCorrect    = 10
	DefaultReminderLead        = 2 * time.Minute
	DefaultWorkerCount         = 2
	DefaultWorkerQueueSize     = 16
	DefaultRateLimit           = 1000
)

// Example values shipped in .env.example that must not reach production
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)
