package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
	"../../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Environment variables from .env come first
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// Tests run on defaults and environment overrides alone
		if !(errors.As(err, &notFound) && env == Test) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("RC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	processDurations(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects settings the reconciler cannot run with
func (c *Config) Validate() error {
	if c.Reconcile.MinAliasLength < 1 {
		return fmt.Errorf("reconcile.minAliasLength must be positive, got: %d", c.Reconcile.MinAliasLength)
	}
	if c.Reconcile.FuzzyThreshold < 0 || c.Reconcile.FuzzyThreshold >= 1 {
		return fmt.Errorf("reconcile.fuzzyThreshold must be in [0, 1), got: %v", c.Reconcile.FuzzyThreshold)
	}
	if c.Reconcile.Concurrency < 1 {
		return fmt.Errorf("reconcile.concurrency must be positive, got: %d", c.Reconcile.Concurrency)
	}
	if c.Reconcile.LockTtlMs <= 0 {
		return fmt.Errorf("reconcile.lockTtlMs must be positive, got: %d", c.Reconcile.LockTtlMs)
	}

	switch c.Reconcile.LockBackend {
	case LockBackendMemory, LockBackendDatabase:
	case LockBackendRedis:
		if c.Redis.Addr == "" {
			return errors.New("redis.addr is required for the redis lock backend")
		}
	default:
		return fmt.Errorf("unknown reconcile.lockBackend: %q", c.Reconcile.LockBackend)
	}
	return nil
}

// IsProduction reports whether the production environment is selected
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 30)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.allowedOrigins", []string{"*"})
	v.SetDefault("server.maxUploadBytes", 10<<20)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.sqlitePath", "reconciler.db")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("reconcile.minAliasLength", 4)
	v.SetDefault("reconcile.fuzzyThreshold", 0.2)
	v.SetDefault("reconcile.concurrency", 8)
	v.SetDefault("reconcile.storeRetryDelayMs", 50)
	v.SetDefault("reconcile.lockBackend", LockBackendDatabase)
	v.SetDefault("reconcile.lockTtlMs", 5000)
	v.SetDefault("reconcile.seedProfiles", false)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
}

// getEnvironment determines the environment to use based on RC_ENV environment variable
func getEnvironment() string {
	env := os.Getenv("RC_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides makes environment variables win over config file values
func processEnvOverrides(v *viper.Viper) {
	overrideString(v, "RC_DB_DRIVER", "database.driver")
	overrideString(v, "RC_DB_HOST", "database.host")
	overrideString(v, "RC_DB_PORT", "database.port")
	overrideString(v, "RC_DB_USERNAME", "database.username")
	overrideString(v, "RC_DB_PASSWORD", "database.password")
	overrideString(v, "RC_DB_NAME", "database.database")
	overrideString(v, "RC_DB_SSL_MODE", "database.sslMode")
	overrideString(v, "RC_DB_SQLITE_PATH", "database.sqlitePath")

	if maxOpenConns := getEnvInt("RC_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("RC_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if queryTimeout := getEnvInt("RC_DB_QUERY_TIMEOUT_SECONDS", 0); queryTimeout > 0 {
		v.Set("database.queryTimeout", queryTimeout)
	}
	if retryAttempts := getEnvInt("RC_DB_RETRY_ATTEMPTS", 0); retryAttempts > 0 {
		v.Set("database.retryAttempts", retryAttempts)
	}

	overrideString(v, "RC_SERVER_HOST", "server.host")
	if serverPort := getEnvInt("RC_SERVER_PORT", 0); serverPort > 0 {
		v.Set("server.port", serverPort)
	}

	overrideString(v, "RC_LOGGER_LEVEL", "logger.level")

	if concurrency := getEnvInt("RC_RECONCILE_CONCURRENCY", 0); concurrency > 0 {
		v.Set("reconcile.concurrency", concurrency)
	}
	if minAlias := getEnvInt("RC_RECONCILE_MIN_ALIAS_LENGTH", 0); minAlias > 0 {
		v.Set("reconcile.minAliasLength", minAlias)
	}
	if threshold := os.Getenv("RC_RECONCILE_FUZZY_THRESHOLD"); threshold != "" {
		if value, err := strconv.ParseFloat(threshold, 64); err == nil {
			v.Set("reconcile.fuzzyThreshold", value)
		}
	}
	overrideString(v, "RC_RECONCILE_LOCK_BACKEND", "reconcile.lockBackend")
	if lockTTL := getEnvInt("RC_RECONCILE_LOCK_TTL_MS", 0); lockTTL > 0 {
		v.Set("reconcile.lockTtlMs", lockTTL)
	}

	overrideString(v, "RC_REDIS_ADDR", "redis.addr")
	overrideString(v, "RC_REDIS_PASSWORD", "redis.password")
}

func overrideString(v *viper.Viper, env, key string) {
	if value := os.Getenv(env); value != "" {
		v.Set(key, value)
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts the raw numbers read from config into durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute

	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second
}
