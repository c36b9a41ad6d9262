package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"photoprint-backend/internal/notify"
	"photoprint-backend/internal/photo"
	"photoprint-backend/internal/tracking"
	"photoprint-backend/internal/wizard"
)

type Config struct {
	// Database (optional order ledger)
	DatabaseURL string

	// Sessions
	SessionSecret      string
	SessionIdleTimeout time.Duration

	// Staff order listing; disabled when empty
	OperatorToken string

	// Wizard timing
	ResetDelay      time.Duration
	NotificationTTL time.Duration
	TrackingDelay   time.Duration

	// Uploads
	MaxUploadBytes int64

	// Server
	Port        string
	Environment string
	BaseURL     string
	LogLevel    string
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),

		SessionSecret:      getEnv("SESSION_SECRET", ""),
		SessionIdleTimeout: getDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute),

		OperatorToken: getEnv("OPERATOR_TOKEN", ""),

		ResetDelay:      getDuration("RESET_DELAY", wizard.DefaultResetDelay),
		NotificationTTL: getDuration("NOTIFICATION_TTL", notify.DefaultTTL),
		TrackingDelay:   getDuration("TRACKING_DELAY", tracking.DefaultDelay),

		MaxUploadBytes: getInt64("MAX_UPLOAD_BYTES", photo.MaxBytes),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "dev-session-secret"
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) Validate() error {
	if c.IsProduction() && c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required in production")
	}
	if c.SessionIdleTimeout <= 0 {
		return fmt.Errorf("SESSION_IDLE_TIMEOUT must be positive")
	}
	if c.ResetDelay <= 0 {
		return fmt.Errorf("RESET_DELAY must be positive")
	}
	if c.NotificationTTL <= 0 {
		return fmt.Errorf("NOTIFICATION_TTL must be positive")
	}
	if c.TrackingDelay < 0 {
		return fmt.Errorf("TRACKING_DELAY must not be negative")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration accepts Go duration strings ("3s", "1m30s").
func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return -1
	}
	return d
}

func getInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return -1
	}
	return n
}
