package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forgo/pokedex/api/internal/config"
	"github.com/forgo/pokedex/api/internal/database"
	"github.com/forgo/pokedex/api/internal/handler"
	"github.com/forgo/pokedex/api/internal/middleware"
	"github.com/forgo/pokedex/api/internal/pokeapi"
	"github.com/forgo/pokedex/api/internal/repository"
	"github.com/forgo/pokedex/api/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("namespace", cfg.Database.Namespace),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize repositories
	pokemonRepo := repository.NewPokemonRepository(db)

	// Initialize upstream client
	pokeClient := pokeapi.NewClient(pokeapi.Config{
		BaseURL: cfg.PokeAPI.URL,
		Timeout: cfg.PokeAPI.Timeout,
	})

	// Initialize services
	pokemonService := service.NewPokemonService(service.PokemonServiceConfig{
		PokemonRepo:  pokemonRepo,
		DefaultLimit: cfg.Pokedex.DefaultLimit,
		MaxLimit:     cfg.Pokedex.MaxLimit,
	})
	seederService := service.NewSeederService(service.SeederServiceConfig{
		Source: pokeClient,
		Repo:   pokemonRepo,
		Limit:  cfg.Pokedex.SeedLimit,
	})

	// Initialize handlers
	pokemonHandler := handler.NewPokemonHandler(pokemonService)
	seedHandler := handler.NewSeedHandler(seederService)
	healthHandler := handler.NewHealthHandler(db)

	seedLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Limit:  cfg.Pokedex.SeedRateLimit,
		Period: cfg.Pokedex.SeedRateWindow,
	})

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Pokemon endpoints
	pokemonHandler.RegisterRoutes(mux)

	// Seed endpoint, throttled since it replaces the collection from PokeAPI
	mux.Handle("GET /v1/seed", middleware.RateLimit(seedLimiter)(http.HandlerFunc(seedHandler.Seed)))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
