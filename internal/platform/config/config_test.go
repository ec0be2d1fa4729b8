package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Environment:        "development",
		TokenTTL:           time.Hour,
		AuthUsername:       "test",
		AuthPassword:       "123456",
		DataSource:         SourceFixture,
		MaxBodyBytes:       1048576,
		RateLimitPerMinute: 60,
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATA_SOURCE", "")
	t.Setenv("SOURCE_TIMEOUT", "")
	t.Setenv("AUTH_USERNAME", "")

	cfg := Load()
	if cfg.DataSource != SourceFixture {
		t.Fatalf("expected fixture source, got %q", cfg.DataSource)
	}
	if cfg.SourceTimeout != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %v", cfg.SourceTimeout)
	}
	if cfg.AuthUsername != "test" {
		t.Fatalf("expected default username, got %q", cfg.AuthUsername)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATA_SOURCE", "Remote")
	t.Setenv("SOURCE_URL", "http://upstream.local/gettabledata.php")
	t.Setenv("SOURCE_TIMEOUT", "250ms")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")
	t.Setenv("METRICS_ENABLED", "false")

	cfg := Load()
	if cfg.DataSource != SourceRemote {
		t.Fatalf("expected remote source, got %q", cfg.DataSource)
	}
	if cfg.SourceTimeout != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %v", cfg.SourceTimeout)
	}
	if cfg.RateLimitPerMinute != 60 {
		t.Fatalf("expected fallback rate limit, got %d", cfg.RateLimitPerMinute)
	}
	if cfg.MetricsEnabled {
		t.Fatal("expected metrics disabled")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid fixture", mutate: func(c *Config) {}},
		{name: "unknown source", mutate: func(c *Config) { c.DataSource = "mongo" }, wantErr: "DATA_SOURCE"},
		{name: "remote without url", mutate: func(c *Config) { c.DataSource = SourceRemote }, wantErr: "SOURCE_URL"},
		{name: "postgres without dsn", mutate: func(c *Config) { c.DataSource = SourcePostgres }, wantErr: "DATABASE_URL"},
		{name: "production without secret", mutate: func(c *Config) { c.Environment = "production" }, wantErr: "JWT_SECRET"},
		{name: "missing password", mutate: func(c *Config) { c.AuthPassword = "" }, wantErr: "AUTH_PASSWORD"},
		{name: "tiny body limit", mutate: func(c *Config) { c.MaxBodyBytes = 10 }, wantErr: "MAX_BODY_BYTES"},
		{name: "zero rate limit", mutate: func(c *Config) { c.RateLimitPerMinute = 0 }, wantErr: "RATE_LIMIT_PER_MINUTE"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error mentioning %s, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.LogLevel = "debug"
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Fatalf("expected debug, got %v", cfg.SlogLevel())
	}
	cfg.LogLevel = "chatty"
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Fatalf("expected info fallback, got %v", cfg.SlogLevel())
	}
}
