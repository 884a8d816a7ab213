// Package config loads the process configuration from environment variables.
// The resulting Config is built once in main and passed explicitly to every
// component that needs it; components never read the environment themselves.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all environment-sourced settings for the server process.
type Config struct {
	// Port is the HTTP listening port (default 8000).
	Port string

	// CORSOrigin is the single allowed origin for browser clients.
	CORSOrigin string

	// RunMigrations runs the schema migration at startup when true.
	RunMigrations bool

	// ModerationEnabled turns on the Cloud Vision SafeSearch pre-check
	// for uploaded images.
	ModerationEnabled bool

	DB    DBConfig
	Token TokenConfig
	Media MediaConfig
	Redis RedisConfig
}

// DBConfig holds the PostgreSQL connection settings.
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// DSN returns the gorm/pgx connection string.
func (d DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

// TokenConfig holds the JWT signing secrets and lifetimes.
// Access and refresh tokens are signed with distinct secrets.
type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// MediaConfig holds the credentials for the remote media host.
type MediaConfig struct {
	BaseURL   string // e.g. "https://api.mediahost.example/v1/videotube"
	APIKey    string
	APISecret string
	Timeout   time.Duration
}

// RedisConfig holds the optional Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
}

// Load builds a Config from the environment. Durations are given in hours
// (ACCESS_TOKEN_EXPIRY_HOURS, REFRESH_TOKEN_EXPIRY_HOURS) with defaults of
// 1h for access and 240h (10 days) for refresh tokens.
func Load() Config {
	return Config{
		Port:              envOr("PORT", "8000"),
		CORSOrigin:        os.Getenv("CORS_ORIGIN"),
		RunMigrations:     os.Getenv("RUN_MIGRATIONS") == "true",
		ModerationEnabled: os.Getenv("MODERATION_ENABLED") == "true",
		DB: DBConfig{
			Host:     envOr("DB_HOST", "localhost"),
			Port:     envOr("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
		Token: TokenConfig{
			AccessSecret:  os.Getenv("ACCESS_TOKEN_SECRET"),
			RefreshSecret: os.Getenv("REFRESH_TOKEN_SECRET"),
			AccessTTL:     hoursOr("ACCESS_TOKEN_EXPIRY_HOURS", time.Hour),
			RefreshTTL:    hoursOr("REFRESH_TOKEN_EXPIRY_HOURS", 240*time.Hour),
		},
		Media: MediaConfig{
			BaseURL:   os.Getenv("MEDIA_BASE_URL"),
			APIKey:    os.Getenv("MEDIA_API_KEY"),
			APISecret: os.Getenv("MEDIA_API_SECRET"),
			Timeout:   30 * time.Second,
		},
		Redis: RedisConfig{
			Addr:     redisAddr(),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
	}
}

// redisAddr builds the Redis address, empty when no host is configured so
// the caller can skip Redis entirely.
func redisAddr() string {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		return ""
	}
	return host + ":" + envOr("REDIS_PORT", "6379")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func hoursOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	h, err := strconv.Atoi(v)
	if err != nil || h <= 0 {
		return fallback
	}
	return time.Duration(h) * time.Hour
}
