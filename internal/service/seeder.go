package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/forgo/pokedex/api/internal/model"
	"github.com/forgo/pokedex/api/internal/pokeapi"
)

// SpeciesSource lists species to seed from
type SpeciesSource interface {
	ListSpecies(ctx context.Context, limit int) ([]pokeapi.Species, error)
}

// SeedRepository replaces the whole pokemon collection in one transaction
type SeedRepository interface {
	ReplaceAll(ctx context.Context, pokemon []*model.Pokemon) (int, error)
}

// SeederService repopulates the pokedex from PokeAPI
type SeederService struct {
	source SpeciesSource
	repo   SeedRepository
	limit  int
}

// SeederServiceConfig holds configuration for the seeder service
type SeederServiceConfig struct {
	Source SpeciesSource
	Repo   SeedRepository
	Limit  int
}

// SeedResult contains the results of a seeding operation
type SeedResult struct {
	Created  int   `json:"created"`
	Skipped  int   `json:"skipped"`
	Duration int64 `json:"duration_ms"`
}

// NewSeederService creates a new seeder service
func NewSeederService(cfg SeederServiceConfig) *SeederService {
	limit := cfg.Limit
	if limit <= 0 {
		limit = 650
	}
	return &SeederService{
		source: cfg.Source,
		repo:   cfg.Repo,
		limit:  limit,
	}
}

// Execute drops every stored pokemon and inserts the first N species from the source
func (s *SeederService) Execute(ctx context.Context) (*SeedResult, error) {
	start := time.Now()

	species, err := s.source.ListSpecies(ctx, s.limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSeedFetch, err)
	}

	pokemon := lo.FilterMap(species, func(sp pokeapi.Species, _ int) (*model.Pokemon, bool) {
		no, err := sp.No()
		if err != nil {
			slog.Warn("skipping species", slog.String("name", sp.Name), slog.String("error", err.Error()))
			return nil, false
		}
		return &model.Pokemon{No: no, Name: strings.ToUpper(sp.Name)}, true
	})
	// PokeAPI never repeats a number, but the unique index would reject the whole batch if it did.
	pokemon = lo.UniqBy(pokemon, func(p *model.Pokemon) int { return p.No })

	created, err := s.repo.ReplaceAll(ctx, pokemon)
	if err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		return nil, ErrInternal
	}

	result := &SeedResult{
		Created:  created,
		Skipped:  len(species) - len(pokemon),
		Duration: time.Since(start).Milliseconds(),
	}
	slog.Info("pokedex seeded",
		slog.Int("created", result.Created),
		slog.Int("skipped", result.Skipped),
		slog.Int64("duration_ms", result.Duration),
	)
	return result, nil
}
