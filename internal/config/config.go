package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	Port    string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string
	DBMaxRetries int

	// Reminders
	ReminderEnabled  bool
	ReminderInterval time.Duration

	// Chat
	ChatRateLimit       int
	ChatRateWindow      time.Duration
	SessionCookieSecure bool

	// Email (reminder delivery, optional)
	EmailFrom       string
	ResendAPIKey    string
	ReminderEmailTo string

	// Observability (optional)
	SentryDSN string

	// Export storage (S3-compatible, optional)
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3Endpoint      string        // Optional: for S3-compatible services (MinIO, DO Spaces, R2, etc.)
	S3PresignExpiry time.Duration // Expiry for export download links
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "AURA"),
		AppEnv:  envString("APP_ENV", "development"),
		Port:    envString("PORT", "5000"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/aura.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"),
		DBMaxRetries: envInt("DB_MAX_RETRIES", 3),

		// Reminders
		ReminderEnabled:  envBool("REMINDER_ENABLED", true),
		ReminderInterval: envDuration("REMINDER_INTERVAL", 24*time.Hour),

		// Chat
		ChatRateLimit:       envInt("CHAT_RATE_LIMIT", 60),
		ChatRateWindow:      envDuration("CHAT_RATE_WINDOW", time.Minute),
		SessionCookieSecure: envBool("SESSION_COOKIE_SECURE", envString("APP_ENV", "development") == "production"),

		// Email
		EmailFrom:       envString("EMAIL_FROM", "aura@example.com"),
		ResendAPIKey:    envString("RESEND_API_KEY", ""),
		ReminderEmailTo: envString("REMINDER_EMAIL_TO", ""),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Export storage
		S3Region:        envString("S3_REGION", "us-east-1"),
		S3Bucket:        envString("S3_BUCKET", ""),
		S3AccessKey:     envString("S3_ACCESS_KEY", ""),
		S3SecretKey:     envString("S3_SECRET_KEY", ""),
		S3Endpoint:      envString("S3_ENDPOINT", ""),
		S3PresignExpiry: envDuration("S3_PRESIGN_EXPIRY", 1*time.Hour),
	}

	// Production: validate required services
	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures configured integrations have what they need.
// Development logs reminder emails instead of sending them.
func validateProduction(cfg *Config) {
	if cfg.ReminderEmailTo != "" && cfg.ResendAPIKey == "" {
		slog.Error("production reminder emails require RESEND_API_KEY",
			"hint", "unset REMINDER_EMAIL_TO or set APP_ENV=development to log emails instead")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return i
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Sanitized returns a copy of the config with only public/safe fields.
// All secrets, credentials, and connection strings are excluded.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:          c.AppName,
		AppEnv:           c.AppEnv,
		Port:             c.Port,
		DBDriver:         c.DBDriver,
		ReminderEnabled:  c.ReminderEnabled,
		ReminderInterval: c.ReminderInterval,
		ChatRateLimit:    c.ChatRateLimit,
		ChatRateWindow:   c.ChatRateWindow,
		EmailFrom:        c.EmailFrom,
		S3Region:         c.S3Region,
		S3Bucket:         c.S3Bucket,
		S3Endpoint:       c.S3Endpoint,
	}
}
