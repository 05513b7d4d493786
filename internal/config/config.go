package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort           = "5000"
	defaultDatabaseURL    = "reinsure.db"
	defaultJWTExpiresIn   = "7d"
	defaultJWTSecret      = "change-me-jwt-secret"
	defaultCORSOrigin     = "http://localhost:8080"
	defaultAdminEmail     = "admin@reinsure.com"
	defaultAdminPassword  = "Admin@123456"
	defaultAdminName      = "Admin"
	defaultShutdownWait   = "15s"
	defaultNotifyDeadline = "30s"
)

type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// Configured reports whether every credential needed to reach the relay is set.
func (s SMTPConfig) Configured() bool {
	return s.Host != "" && s.Port > 0 && s.User != "" && s.Pass != ""
}

// Sender is the From address, falling back to the relay user.
func (s SMTPConfig) Sender() string {
	if s.From != "" {
		return s.From
	}
	return s.User
}

type AdminSeed struct {
	Email    string
	Password string
	Name     string
}

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	LogLevel    string

	JWTSecret    string
	JWTExpiresIn time.Duration

	SMTP           SMTPConfig
	SendGridAPIKey string
	CompanyEmail   string
	NotifyTimeout  time.Duration

	CORSOrigin     string
	TrustedProxies []string

	RedisURL  string
	SentryDSN string

	BootstrapAdmin  AdminSeed
	ShutdownTimeout time.Duration
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not read .env file", "error", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		AppEnv:         strings.ToLower(getEnv("APP_ENV", getEnv("NODE_ENV", "dev"))),
		Port:           getEnv("PORT", defaultPort),
		DatabaseURL:    getEnv("DATABASE_URL", defaultDatabaseURL),
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:      strings.TrimSpace(os.Getenv("JWT_SECRET")),
		SendGridAPIKey: strings.TrimSpace(os.Getenv("SENDGRID_API_KEY")),
		CompanyEmail:   strings.TrimSpace(os.Getenv("COMPANY_EMAIL")),
		CORSOrigin:     strings.TrimSpace(getEnv("CORS_ORIGIN", defaultCORSOrigin)),
		RedisURL:       strings.TrimSpace(os.Getenv("REDIS_URL")),
		SentryDSN:      strings.TrimSpace(os.Getenv("SENTRY_DSN")),
		TrustedProxies: splitList(os.Getenv("TRUSTED_PROXIES")),
		SMTP: SMTPConfig{
			Host: strings.TrimSpace(os.Getenv("SMTP_HOST")),
			User: strings.TrimSpace(os.Getenv("SMTP_USER")),
			Pass: os.Getenv("SMTP_PASS"),
			From: strings.TrimSpace(os.Getenv("SMTP_FROM")),
		},
		BootstrapAdmin: AdminSeed{
			Email:    getEnv("ADMIN_EMAIL", defaultAdminEmail),
			Password: getEnv("ADMIN_PASSWORD", defaultAdminPassword),
			Name:     getEnv("ADMIN_NAME", defaultAdminName),
		},
	}

	if port := strings.TrimSpace(os.Getenv("SMTP_PORT")); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p <= 0 {
			return nil, fmt.Errorf("invalid SMTP_PORT value %q", port)
		}
		cfg.SMTP.Port = p
	}

	var err error
	cfg.JWTExpiresIn, err = ParseExpiry(getEnv("JWT_EXPIRES_IN", defaultJWTExpiresIn))
	if err != nil {
		return nil, err
	}
	cfg.ShutdownTimeout, err = parseDurationEnv("SHUTDOWN_TIMEOUT", defaultShutdownWait)
	if err != nil {
		return nil, err
	}
	cfg.NotifyTimeout, err = parseDurationEnv("NOTIFY_TIMEOUT", defaultNotifyDeadline)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return isProdLike(c.AppEnv)
}

// ParseExpiry accepts Go durations ("12h"), a day suffix ("7d") or a bare
// number of seconds ("3600").
func ParseExpiry(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("JWT_EXPIRES_IN must not be empty")
	}

	if days, ok := strings.CutSuffix(value, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("invalid JWT_EXPIRES_IN value %q", value)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}

	if secs, err := strconv.Atoi(value); err == nil {
		if secs <= 0 {
			return 0, fmt.Errorf("JWT_EXPIRES_IN must be > 0")
		}
		return time.Duration(secs) * time.Second, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid JWT_EXPIRES_IN value %q: %w", value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("JWT_EXPIRES_IN must be > 0")
	}
	return d, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be > 0")
	}
	if cfg.NotifyTimeout <= 0 {
		return fmt.Errorf("NOTIFY_TIMEOUT must be > 0")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in production JWT_SECRET must be set and not default")
		}
		if cfg.BootstrapAdmin.Password == defaultAdminPassword {
			slog.Warn("ADMIN_PASSWORD is the default value; change it after the first login")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
