package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Database DatabaseConfig
	Pokedex  PokedexConfig
	PokeAPI  PokeAPIConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port           string
	Env            string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `default:"info"`
}

// DatabaseConfig holds SurrealDB connection settings
type DatabaseConfig struct {
	Host      string
	Port      string
	Namespace string
	Database  string
	User      string
	Password  string
}

// PokedexConfig holds pagination and seeding settings.
// Zero values are replaced by the default tags.
type PokedexConfig struct {
	DefaultLimit int `default:"7"`
	MaxLimit     int `default:"100"`
	SeedLimit    int `default:"650"`

	// Seed requests allowed per client per window
	SeedRateLimit  int           `default:"5"`
	SeedRateWindow time.Duration `default:"1h"`
}

// PokeAPIConfig holds the upstream catalogue client settings
type PokeAPIConfig struct {
	URL     string        `default:"https://pokeapi.co/api/v2"`
	Timeout time.Duration `default:"30s"`
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "3000"),
			Env:            getEnv("SERVER_ENV", "development"),
			ReadTimeout:    getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			AllowedOrigins: getSliceEnv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", ""),
		},
		Database: DatabaseConfig{
			Host:      getEnv("DB_HOST", "localhost"),
			Port:      getEnv("DB_PORT", "8000"),
			Namespace: getEnv("DB_NAMESPACE", "pokedex"),
			Database:  getEnv("DB_DATABASE", "main"),
			User:      getEnv("DB_USER", "root"),
			Password:  getEnv("DB_PASSWORD", "root"),
		},
		Pokedex: PokedexConfig{
			DefaultLimit: getIntEnv("DEFAULT_LIMIT", 0),
			MaxLimit:     getIntEnv("MAX_LIMIT", 0),
			SeedLimit:    getIntEnv("SEED_LIMIT", 0),

			SeedRateLimit:  getIntEnv("SEED_RATE_LIMIT", 0),
			SeedRateWindow: getDurationEnv("SEED_RATE_WINDOW", 0),
		},
		PokeAPI: PokeAPIConfig{
			URL:     getEnv("POKEAPI_URL", ""),
			Timeout: getDurationEnv("POKEAPI_TIMEOUT", 0),
		},
	}

	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("apply config defaults: %w", err)
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// SlogLevel maps the configured log level to a slog.Level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	// Server validation
	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	}
	if c.Server.Env != "development" && c.Server.Env != "production" && c.Server.Env != "test" {
		errs = append(errs, fmt.Errorf("SERVER_ENV must be 'development', 'production', or 'test', got '%s'", c.Server.Env))
	}
	if len(c.Server.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must have at least one origin"))
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got '%s'", c.Log.Level))
	}

	// Database validation
	if c.Database.Host == "" {
		errs = append(errs, errors.New("DB_HOST is required"))
	}
	if c.Database.Port == "" {
		errs = append(errs, errors.New("DB_PORT is required"))
	}
	if c.Database.Namespace == "" {
		errs = append(errs, errors.New("DB_NAMESPACE is required"))
	}
	if c.Database.Database == "" {
		errs = append(errs, errors.New("DB_DATABASE is required"))
	}
	if c.IsProduction() && c.Database.Password == "root" {
		errs = append(errs, errors.New("DB_PASSWORD must be changed from the default in production"))
	}

	// Pagination validation
	if c.Pokedex.DefaultLimit <= 0 {
		errs = append(errs, errors.New("DEFAULT_LIMIT must be positive"))
	}
	if c.Pokedex.MaxLimit < c.Pokedex.DefaultLimit {
		errs = append(errs, fmt.Errorf("MAX_LIMIT (%d) must not be less than DEFAULT_LIMIT (%d)", c.Pokedex.MaxLimit, c.Pokedex.DefaultLimit))
	}
	if c.Pokedex.SeedLimit <= 0 {
		errs = append(errs, errors.New("SEED_LIMIT must be positive"))
	}
	if c.Pokedex.SeedRateLimit <= 0 || c.Pokedex.SeedRateWindow <= 0 {
		errs = append(errs, errors.New("SEED_RATE_LIMIT and SEED_RATE_WINDOW must be positive"))
	}

	// Upstream validation
	if c.PokeAPI.URL == "" {
		errs = append(errs, errors.New("POKEAPI_URL is required"))
	} else if !strings.HasPrefix(c.PokeAPI.URL, "http://") && !strings.HasPrefix(c.PokeAPI.URL, "https://") {
		errs = append(errs, fmt.Errorf("POKEAPI_URL must be an http(s) URL, got '%s'", c.PokeAPI.URL))
	}
	if c.PokeAPI.Timeout <= 0 {
		errs = append(errs, errors.New("POKEAPI_TIMEOUT must be positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
