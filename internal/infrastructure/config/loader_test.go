package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"RC_DB_DRIVER", "RC_DB_HOST", "RC_DB_PORT", "RC_DB_USERNAME", "RC_DB_PASSWORD",
		"RC_DB_NAME", "RC_DB_SQLITE_PATH", "RC_SERVER_PORT", "RC_LOGGER_LEVEL",
		"RC_RECONCILE_CONCURRENCY", "RC_RECONCILE_MIN_ALIAS_LENGTH", "RC_RECONCILE_FUZZY_THRESHOLD",
		"RC_RECONCILE_LOCK_BACKEND", "RC_RECONCILE_LOCK_TTL_MS", "RC_REDIS_ADDR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_TestEnvironmentDefaults(t *testing.T) {
	// Arrange
	clearEnv(t)
	t.Setenv("RC_ENV", "test")

	// Act
	cfg, err := LoadConfig()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, Test, cfg.Environment)
	assert.False(t, cfg.IsProduction())

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, time.Second, cfg.Database.RetryDelay)

	assert.Equal(t, 4, cfg.Reconcile.MinAliasLength)
	assert.InDelta(t, 0.2, cfg.Reconcile.FuzzyThreshold, 1e-9)
	assert.Equal(t, 8, cfg.Reconcile.Concurrency)
	assert.Equal(t, 50*time.Millisecond, cfg.Reconcile.StoreRetryDelay())
	assert.Equal(t, LockBackendDatabase, cfg.Reconcile.LockBackend)
	assert.Equal(t, 5*time.Second, cfg.Reconcile.LockTTL())
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	// Arrange
	clearEnv(t)
	t.Setenv("RC_ENV", "TEST")
	t.Setenv("RC_DB_DRIVER", "sqlite")
	t.Setenv("RC_DB_SQLITE_PATH", ":memory:")
	t.Setenv("RC_SERVER_PORT", "9090")
	t.Setenv("RC_RECONCILE_CONCURRENCY", "2")
	t.Setenv("RC_RECONCILE_FUZZY_THRESHOLD", "0.15")
	t.Setenv("RC_RECONCILE_LOCK_BACKEND", "redis")
	t.Setenv("RC_REDIS_ADDR", "cache:6379")

	// Act
	cfg, err := LoadConfig()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, ":memory:", cfg.Database.SQLitePath)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 2, cfg.Reconcile.Concurrency)
	assert.InDelta(t, 0.15, cfg.Reconcile.FuzzyThreshold, 1e-9)
	assert.Equal(t, LockBackendRedis, cfg.Reconcile.LockBackend)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
}

func TestLoadConfig_InvalidLockBackend(t *testing.T) {
	// Arrange
	clearEnv(t)
	t.Setenv("RC_ENV", "test")
	t.Setenv("RC_RECONCILE_LOCK_BACKEND", "zookeeper")

	// Act
	cfg, err := LoadConfig()

	// Assert
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown reconcile.lockBackend")
}

func TestLoadConfig_MissingFileOutsideTests(t *testing.T) {
	// Arrange
	clearEnv(t)
	t.Setenv("RC_ENV", "staging")

	// Act
	cfg, err := LoadConfig()

	// Assert
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Reconcile: ReconcileConfig{
				MinAliasLength: 4,
				FuzzyThreshold: 0.2,
				Concurrency:    8,
				LockBackend:    LockBackendMemory,
				LockTtlMs:      5000,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "Valid", mutate: func(c *Config) {}},
		{name: "Alias length", mutate: func(c *Config) { c.Reconcile.MinAliasLength = 0 }, wantErr: "minAliasLength"},
		{name: "Threshold of one", mutate: func(c *Config) { c.Reconcile.FuzzyThreshold = 1 }, wantErr: "fuzzyThreshold"},
		{name: "Negative threshold", mutate: func(c *Config) { c.Reconcile.FuzzyThreshold = -0.1 }, wantErr: "fuzzyThreshold"},
		{name: "No concurrency", mutate: func(c *Config) { c.Reconcile.Concurrency = 0 }, wantErr: "concurrency"},
		{name: "No lock ttl", mutate: func(c *Config) { c.Reconcile.LockTtlMs = 0 }, wantErr: "lockTtlMs"},
		{
			name:    "Redis without address",
			mutate:  func(c *Config) { c.Reconcile.LockBackend = LockBackendRedis },
			wantErr: "redis.addr",
		},
		{
			name: "Redis with address",
			mutate: func(c *Config) {
				c.Reconcile.LockBackend = LockBackendRedis
				c.Redis.Addr = "localhost:6379"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			cfg := valid()
			tt.mutate(&cfg)

			// Act
			err := cfg.Validate()

			// Assert
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
