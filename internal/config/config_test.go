package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestConfig_Validate_ValidConfig(t *testing.T) {
	cfg := validBaseConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestConfig_Validate_InvalidServerEnv(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Env = "invalid"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid SERVER_ENV")
	}
	if !strings.Contains(err.Error(), "SERVER_ENV") {
		t.Errorf("expected error to mention SERVER_ENV, got: %v", err)
	}
}

func TestConfig_Validate_MissingPort(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Port = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing SERVER_PORT")
	}
	if !strings.Contains(err.Error(), "SERVER_PORT") {
		t.Errorf("expected error to mention SERVER_PORT, got: %v", err)
	}
}

func TestConfig_Validate_EmptyAllowedOrigins(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.AllowedOrigins = []string{}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for empty CORS_ALLOWED_ORIGINS")
	}
	if !strings.Contains(err.Error(), "CORS_ALLOWED_ORIGINS") {
		t.Errorf("expected error to mention CORS_ALLOWED_ORIGINS, got: %v", err)
	}
}

func TestConfig_Validate_MissingDatabaseHost(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Database.Host = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing DB_HOST")
	}
	if !strings.Contains(err.Error(), "DB_HOST") {
		t.Errorf("expected error to mention DB_HOST, got: %v", err)
	}
}

func TestConfig_Validate_ProductionRejectsDefaultPassword(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Env = "production"
	cfg.Database.Password = "root"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for default DB_PASSWORD in production")
	}
	if !strings.Contains(err.Error(), "DB_PASSWORD") {
		t.Errorf("expected error to mention DB_PASSWORD, got: %v", err)
	}
}

func TestConfig_Validate_InvalidLogLevel(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid LOG_LEVEL")
	}
	if !strings.Contains(err.Error(), "LOG_LEVEL") {
		t.Errorf("expected error to mention LOG_LEVEL, got: %v", err)
	}
}

func TestConfig_Validate_MaxLimitBelowDefault(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Pokedex.DefaultLimit = 20
	cfg.Pokedex.MaxLimit = 10

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for MAX_LIMIT below DEFAULT_LIMIT")
	}
	if !strings.Contains(err.Error(), "MAX_LIMIT") {
		t.Errorf("expected error to mention MAX_LIMIT, got: %v", err)
	}
}

func TestConfig_Validate_InvalidPokeAPIURL(t *testing.T) {
	cfg := validBaseConfig()
	cfg.PokeAPI.URL = "pokeapi.co"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for non-http POKEAPI_URL")
	}
	if !strings.Contains(err.Error(), "POKEAPI_URL") {
		t.Errorf("expected error to mention POKEAPI_URL, got: %v", err)
	}
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Port = ""
	cfg.Database.Namespace = ""
	cfg.Pokedex.SeedLimit = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected errors")
	}

	for _, key := range []string{"SERVER_PORT", "DB_NAMESPACE", "SEED_LIMIT"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("expected error to mention %s, got: %v", key, err)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DEFAULT_LIMIT", "MAX_LIMIT", "SEED_LIMIT", "POKEAPI_URL", "POKEAPI_TIMEOUT", "LOG_LEVEL", "SEED_RATE_LIMIT", "SEED_RATE_WINDOW"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Pokedex.DefaultLimit != 7 {
		t.Errorf("DefaultLimit = %d, want 7", cfg.Pokedex.DefaultLimit)
	}
	if cfg.Pokedex.MaxLimit != 100 {
		t.Errorf("MaxLimit = %d, want 100", cfg.Pokedex.MaxLimit)
	}
	if cfg.Pokedex.SeedLimit != 650 {
		t.Errorf("SeedLimit = %d, want 650", cfg.Pokedex.SeedLimit)
	}
	if cfg.Pokedex.SeedRateLimit != 5 || cfg.Pokedex.SeedRateWindow != time.Hour {
		t.Errorf("seed rate = %d per %v, want 5 per 1h", cfg.Pokedex.SeedRateLimit, cfg.Pokedex.SeedRateWindow)
	}
	if cfg.PokeAPI.URL != "https://pokeapi.co/api/v2" {
		t.Errorf("PokeAPI.URL = %q", cfg.PokeAPI.URL)
	}
	if cfg.PokeAPI.Timeout != 30*time.Second {
		t.Errorf("PokeAPI.Timeout = %v, want 30s", cfg.PokeAPI.Timeout)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DEFAULT_LIMIT", "20")
	t.Setenv("MAX_LIMIT", "50")
	t.Setenv("POKEAPI_TIMEOUT", "5s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Pokedex.DefaultLimit != 20 {
		t.Errorf("DefaultLimit = %d, want 20", cfg.Pokedex.DefaultLimit)
	}
	if cfg.Pokedex.MaxLimit != 50 {
		t.Errorf("MaxLimit = %d, want 50", cfg.Pokedex.MaxLimit)
	}
	if cfg.PokeAPI.Timeout != 5*time.Second {
		t.Errorf("PokeAPI.Timeout = %v, want 5s", cfg.PokeAPI.Timeout)
	}
	if len(cfg.Server.AllowedOrigins) != 2 {
		t.Errorf("AllowedOrigins = %v, want 2 entries", cfg.Server.AllowedOrigins)
	}
}

func TestConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		cfg := &Config{Log: LogConfig{Level: tt.level}}
		if got := cfg.SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Env: "development"}}
	if !cfg.IsDevelopment() {
		t.Error("expected IsDevelopment() to be true")
	}

	cfg.Server.Env = "production"
	if cfg.IsDevelopment() {
		t.Error("expected IsDevelopment() to be false")
	}
}

func TestConfig_IsProduction(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Env: "production"}}
	if !cfg.IsProduction() {
		t.Error("expected IsProduction() to be true")
	}

	cfg.Server.Env = "development"
	if cfg.IsProduction() {
		t.Error("expected IsProduction() to be false")
	}
}

func validBaseConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "3000",
			Env:            "development",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Log: LogConfig{Level: "info"},
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      "8000",
			Namespace: "pokedex",
			Database:  "main",
			Password:  "secret",
		},
		Pokedex: PokedexConfig{
			DefaultLimit: 7,
			MaxLimit:     100,
			SeedLimit:    650,

			SeedRateLimit:  5,
			SeedRateWindow: time.Hour,
		},
		PokeAPI: PokeAPIConfig{
			URL:     "https://pokeapi.co/api/v2",
			Timeout: 30 * time.Second,
		},
	}
}
