package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	AppEnv      string
	Variant     string
	SecretKey   string
	DBDriver    string
	DBDSN       string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	LogLevel    string
	SwaggerHost string
	ResetDB     bool
	// TrustProxy takes the client address from X-Forwarded-For.
	TrustProxy bool
	Session     SessionConfig
}

// SessionConfig controls the session cookie and the server-side record.
type SessionConfig struct {
	CookieName   string
	CookieSecure bool
	KeyPrefix    string
	TTL          time.Duration
}

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	ttl, err := getEnvDuration("SESSION_TTL", 31*24*time.Hour)
	if err != nil {
		return nil, err
	}
	secure, err := getEnvBool("COOKIE_SECURE", false)
	if err != nil {
		return nil, err
	}
	reset, err := getEnvBool("RESET_DB", false)
	if err != nil {
		return nil, err
	}
	trustProxy, err := getEnvBool("TRUST_PROXY", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		AppEnv:      getEnv("APP_ENV", "development"),
		Variant:     getEnv("APP_VARIANT", "greeting"),
		SecretKey:   os.Getenv("SECRET_KEY"),
		DBDriver:    getEnv("DB_DRIVER", DriverMySQL),
		DBDSN:       getEnv("DB_DSN", "user:password@tcp(localhost:3306)/visitorbook?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     redisDB,
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
		ResetDB:     reset,
		TrustProxy:  trustProxy,
		Session: SessionConfig{
			CookieName:   getEnv("SESSION_COOKIE", "session"),
			CookieSecure: secure,
			KeyPrefix:    getEnv("SESSION_KEY_PREFIX", "session:"),
			TTL:          ttl,
		},
	}

	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("environment variable SECRET_KEY must be set")
	}
	if cfg.DBDriver != DriverMySQL && cfg.DBDriver != DriverSQLite {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return cfg, nil
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return parsed, nil
}
