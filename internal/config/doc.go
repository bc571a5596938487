// Package config manages application configuration for the Pokedex API.
//
// Configuration is read from environment variables. An optional .env file in
// the working directory is loaded first; variables already set in the
// environment win over it.
//
//	cfg, err := config.Load()
//	if err != nil { ... }
//	if err := cfg.Validate(); err != nil { ... }
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS)
//   - LogConfig: slog level
//   - DatabaseConfig: SurrealDB connection settings
//   - PokedexConfig: pagination and seed limits
//   - PokeAPIConfig: upstream catalogue client
//
// # Environment Variables
//
//	SERVER_PORT          - HTTP port (default: 3000)
//	SERVER_ENV           - development, production or test
//	CORS_ALLOWED_ORIGINS - comma separated origins
//	LOG_LEVEL            - debug, info, warn, error (default: info)
//	DB_HOST, DB_PORT     - SurrealDB address (default: localhost:8000)
//	DB_NAMESPACE         - SurrealDB namespace (default: pokedex)
//	DB_DATABASE          - SurrealDB database (default: main)
//	DB_USER, DB_PASSWORD - SurrealDB credentials
//	DEFAULT_LIMIT        - page size when none is requested (default: 7)
//	MAX_LIMIT            - largest page size served (default: 100)
//	SEED_LIMIT           - species fetched by the seed operation (default: 650)
//	SEED_RATE_LIMIT      - seed requests per client per window (default: 5)
//	SEED_RATE_WINDOW     - seed rate window (default: 1h)
//	POKEAPI_URL          - PokeAPI base URL
//	POKEAPI_TIMEOUT      - PokeAPI request timeout (default: 30s)
//
// Numeric and upstream settings use `default` struct tags, applied with
// github.com/creasty/defaults after the environment is read.
package config
