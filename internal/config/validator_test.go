package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:                DefaultPort,
		LogLevel:            "info",
		LogFormat:           "text",
		Environment:         "production",
		StoreDriver:         StoreDriverSQLite,
		SQLitePath:          DefaultSQLitePath,
		DBMaxConns:          DefaultDBMaxConns,
		CacheSize:           DefaultCacheSize,
		CacheTTL:            DefaultCacheTTL,
		TickInterval:        DefaultTickInterval,
		LeaderboardInterval: DefaultLeaderboardInterval,
		EventPoolSize:       DefaultEventPoolSize,
		EventSpacingMinutes: DefaultEventSpacingMinutes,
		PointsPerCorrect:    DefaultPointsPerCorrect,
		ReminderLead:        DefaultReminderLead,
		WorkerCount:         DefaultWorkerCount,
		WorkerQueueSize:     DefaultWorkerQueueSize,
		APIKey:              "secret",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectedErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"port out of range", func(c *Config) { c.Port = 70000 }, "Port"},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, "LogFormat"},
		{"sqlite without path", func(c *Config) { c.SQLitePath = "" }, "SQLitePath"},
		{"memory ignores sqlite path", func(c *Config) { c.StoreDriver = StoreDriverMemory; c.SQLitePath = "" }, ""},
		{"zero tick interval", func(c *Config) { c.TickInterval = 0 }, "TickInterval"},
		{"empty event pool", func(c *Config) { c.EventPoolSize = 0 }, "EventPoolSize"},
		{"negative reminder lead", func(c *Config) { c.ReminderLead = -time.Second }, "ReminderLead"},
		{"no workers", func(c *Config) { c.WorkerCount = 0 }, "WorkerCount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)

			if tt.expectedErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}

func TestWarnings(t *testing.T) {
	t.Run("clean config has no warnings", func(t *testing.T) {
		assert.Empty(t, Warnings(validConfig()))
	})

	t.Run("example secrets are flagged", func(t *testing.T) {
		cfg := validConfig()
		cfg.StoreDriver = StoreDriverPostgres
		cfg.DBPassword = ExampleDBPassword
		cfg.APIKey = ExampleAPIKey

		warnings := Warnings(cfg)

		require.Len(t, warnings, 2)
		assert.Contains(t, warnings[0], "DB_PASSWORD")
		assert.Contains(t, warnings[1], "API_KEY")
	})

	t.Run("missing api key outside dev", func(t *testing.T) {
		cfg := validConfig()
		cfg.APIKey = ""
		assert.Len(t, Warnings(cfg), 1)

		cfg.Environment = "dev"
		assert.Empty(t, Warnings(cfg))
	})

	t.Run("memory store", func(t *testing.T) {
		cfg := validConfig()
		cfg.StoreDriver = StoreDriverMemory
		assert.Len(t, Warnings(cfg), 1)
	})
}
