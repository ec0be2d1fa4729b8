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
	SourceFixture  = "fixture"
	SourceRemote   = "remote"
	SourcePostgres = "postgres"
)

type Config struct {
	Addr               string
	Environment        string
	JWTSecret          string
	TokenTTL           time.Duration
	AuthUsername       string
	AuthPassword       string
	DataSource         string
	SourceURL          string
	SourceUsername     string
	SourcePassword     string
	SourceTimeout      time.Duration
	MockBackendEnabled bool
	DatabaseURL        string
	RunMigrations      bool
	RunSeed            bool
	FrontendDir        string
	Locale             string
	MaxBodyBytes       int64
	RateLimitPerMinute int
	MetricsEnabled     bool
	LogLevel           string
}

// Load reads an optional .env file, then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("dotenv load failed", "err", err)
	}

	return Config{
		Addr:               getEnv("APP_ADDR", ":8080"),
		Environment:        getEnv("APP_ENV", "development"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		TokenTTL:           getEnvDuration("TOKEN_TTL", 8*time.Hour),
		AuthUsername:       getEnv("AUTH_USERNAME", "test"),
		AuthPassword:       getEnv("AUTH_PASSWORD", "123456"),
		DataSource:         strings.ToLower(getEnv("DATA_SOURCE", SourceFixture)),
		SourceURL:          getEnv("SOURCE_URL", ""),
		SourceUsername:     getEnv("SOURCE_USERNAME", "test"),
		SourcePassword:     getEnv("SOURCE_PASSWORD", "123456"),
		SourceTimeout:      getEnvDuration("SOURCE_TIMEOUT", 10*time.Second),
		MockBackendEnabled: getEnvBool("MOCK_BACKEND_ENABLED", true),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		RunMigrations:      getEnvBool("RUN_MIGRATIONS", true),
		RunSeed:            getEnvBool("RUN_SEED", true),
		FrontendDir:        getEnv("FRONTEND_DIR", "frontend/dist"),
		Locale:             getEnv("LOCALE", "en-US"),
		MaxBodyBytes:       int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// SlogLevel maps LOG_LEVEL onto slog; unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func (c Config) Validate() error {
	switch c.DataSource {
	case SourceFixture:
	case SourceRemote:
		if strings.TrimSpace(c.SourceURL) == "" {
			return fmt.Errorf("SOURCE_URL is required when DATA_SOURCE is remote")
		}
	case SourcePostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("DATABASE_URL is required when DATA_SOURCE is postgres")
		}
	default:
		return fmt.Errorf("DATA_SOURCE must be one of %s, %s, %s", SourceFixture, SourceRemote, SourcePostgres)
	}
	if strings.TrimSpace(c.AuthUsername) == "" || c.AuthPassword == "" {
		return fmt.Errorf("AUTH_USERNAME and AUTH_PASSWORD are required")
	}
	if c.IsProduction() && strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	return nil
}
