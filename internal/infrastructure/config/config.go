package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Reconcile   ReconcileConfig `mapstructure:"reconcile"`
	Redis       RedisConfig     `mapstructure:"redis"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
	MaxUploadBytes    int64         `mapstructure:"maxUploadBytes"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	SQLitePath      string        `mapstructure:"sqlitePath"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// Lock backends for manual actions
const (
	LockBackendMemory   = "memory"
	LockBackendDatabase = "database"
	LockBackendRedis    = "redis"
)

// ReconcileConfig contains matcher and reconciler settings
type ReconcileConfig struct {
	MinAliasLength    int     `mapstructure:"minAliasLength"`
	FuzzyThreshold    float64 `mapstructure:"fuzzyThreshold"`
	Concurrency       int     `mapstructure:"concurrency"`
	StoreRetryDelayMs int     `mapstructure:"storeRetryDelayMs"`
	LockBackend       string  `mapstructure:"lockBackend"`
	LockTtlMs         int     `mapstructure:"lockTtlMs"`
	SeedProfiles      bool    `mapstructure:"seedProfiles"`
}

// LockTTL returns the lock lifetime as a duration
func (c ReconcileConfig) LockTTL() time.Duration {
	return time.Duration(c.LockTtlMs) * time.Millisecond
}

// StoreRetryDelay returns the base store retry delay as a duration
func (c ReconcileConfig) StoreRetryDelay() time.Duration {
	return time.Duration(c.StoreRetryDelayMs) * time.Millisecond
}

// RedisConfig contains the redis connection used by the redis lock backend
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}
