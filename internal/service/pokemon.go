package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/spf13/cast"

	"github.com/forgo/pokedex/api/internal/database"
	"github.com/forgo/pokedex/api/internal/model"
)

// PokemonRepository defines the storage capabilities the pokemon service needs
type PokemonRepository interface {
	Create(ctx context.Context, pokemon *model.Pokemon) error
	List(ctx context.Context, limit, offset int) ([]*model.Pokemon, error)
	GetByID(ctx context.Context, id string) (*model.Pokemon, error)
	GetByNo(ctx context.Context, no int) (*model.Pokemon, error)
	GetByName(ctx context.Context, name string) (*model.Pokemon, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) (int, error)
	ReplaceAll(ctx context.Context, pokemon []*model.Pokemon) (int, error)
	IsValidID(id string) bool
}

// PokemonService handles pokemon business logic
type PokemonService struct {
	pokemonRepo  PokemonRepository
	defaultLimit int
	maxLimit     int
}

// PokemonServiceConfig holds configuration for the pokemon service
type PokemonServiceConfig struct {
	PokemonRepo  PokemonRepository
	DefaultLimit int
	MaxLimit     int
}

// NewPokemonService creates a new pokemon service
func NewPokemonService(cfg PokemonServiceConfig) *PokemonService {
	defaultLimit := cfg.DefaultLimit
	if defaultLimit <= 0 {
		defaultLimit = model.DefaultPageSize
	}
	maxLimit := cfg.MaxLimit
	if maxLimit <= 0 {
		maxLimit = model.MaxPageSize
	}
	if maxLimit < defaultLimit {
		maxLimit = defaultLimit
	}
	return &PokemonService{
		pokemonRepo:  cfg.PokemonRepo,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// Create stores a new pokemon with its name upper-cased
func (s *PokemonService) Create(ctx context.Context, req *model.CreatePokemonRequest) (*model.Pokemon, error) {
	pokemon := &model.Pokemon{
		No:   req.No,
		Name: strings.ToUpper(req.Name),
		Type: req.Type,
	}

	if err := s.pokemonRepo.Create(ctx, pokemon); err != nil {
		return nil, s.handleWriteError("create", err)
	}

	return pokemon, nil
}

// NormalizePage applies the default page size, caps the limit and floors the
// offset at zero
func (s *PokemonService) NormalizePage(page model.PaginationRequest) model.PaginationRequest {
	if page.Limit <= 0 {
		page.Limit = s.defaultLimit
	}
	if page.Limit > s.maxLimit {
		page.Limit = s.maxLimit
	}
	if page.Offset < 0 {
		page.Offset = 0
	}
	return page
}

// List returns a page of pokemon ordered by number. Storage errors are
// returned as-is.
func (s *PokemonService) List(ctx context.Context, page model.PaginationRequest) ([]*model.Pokemon, error) {
	page = s.NormalizePage(page)
	return s.pokemonRepo.List(ctx, page.Limit, page.Offset)
}

// termKind tags how a lookup term is interpreted
type termKind int

const (
	termByNo termKind = iota
	termByID
	termByName
)

func (k termKind) String() string {
	switch k {
	case termByNo:
		return "no"
	case termByID:
		return "id"
	default:
		return "name"
	}
}

// parseNo reports whether term reads as a pokemon number. Any numeric
// notation counts ("25", "025", "25.0", "2.5e1") as long as the value is a
// finite whole number.
func parseNo(term string) (int, bool) {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return 0, false
	}
	f, err := cast.ToFloat64E(trimmed)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

// lookupPlan classifies term once and returns the lookups to try, in order,
// with the parsed number when a number lookup is planned. Name lookup always
// comes last.
func (s *PokemonService) lookupPlan(term string) ([]termKind, int) {
	plan := make([]termKind, 0, 3)
	no, numeric := parseNo(term)
	if numeric {
		plan = append(plan, termByNo)
	}
	if s.pokemonRepo.IsValidID(term) {
		plan = append(plan, termByID)
	}
	return append(plan, termByName), no
}

func (s *PokemonService) lookup(ctx context.Context, kind termKind, term string, no int) (*model.Pokemon, error) {
	switch kind {
	case termByNo:
		return s.pokemonRepo.GetByNo(ctx, no)
	case termByID:
		return s.pokemonRepo.GetByID(ctx, term)
	default:
		return s.pokemonRepo.GetByName(ctx, strings.ToUpper(strings.TrimSpace(term)))
	}
}

// FindByTerm resolves term as a pokemon number, a record ID or a name, first match wins
func (s *PokemonService) FindByTerm(ctx context.Context, term string) (*model.Pokemon, error) {
	plan, no := s.lookupPlan(term)
	for _, kind := range plan {
		pokemon, err := s.lookup(ctx, kind, term, no)
		if err != nil {
			return nil, fmt.Errorf("find pokemon by %s: %w", kind, err)
		}
		if pokemon != nil {
			return pokemon, nil
		}
	}

	return nil, &NotFoundError{Term: term}
}

// Update applies a partial update to the pokemon matching term and returns
// the previous record merged with the applied changes.
func (s *PokemonService) Update(ctx context.Context, term string, req *model.UpdatePokemonRequest) (*model.Pokemon, error) {
	pokemon, err := s.FindByTerm(ctx, term)
	if err != nil {
		return nil, err
	}

	changes := *req
	updates := make(map[string]interface{})
	if changes.Name != nil {
		name := strings.ToUpper(*changes.Name)
		changes.Name = &name
		updates["name"] = name
	}
	if changes.No != nil {
		updates["no"] = *changes.No
	}
	if changes.Type != nil {
		updates["type"] = *changes.Type
	}

	if len(updates) == 0 {
		return pokemon, nil
	}

	if err := s.pokemonRepo.Update(ctx, pokemon.ID, updates); err != nil {
		return nil, s.handleWriteError("update", err)
	}

	return pokemon.Merge(&changes), nil
}

// Remove deletes the pokemon with the given record ID. Only IDs are accepted here.
func (s *PokemonService) Remove(ctx context.Context, id string) error {
	if !s.pokemonRepo.IsValidID(id) {
		return &InvalidArgumentError{Term: id}
	}

	deleted, err := s.pokemonRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return &InvalidArgumentError{Term: id}
	}

	return nil
}

// handleWriteError maps unique index violations to DuplicateEntryError and
// hides every other storage failure behind ErrInternal.
func (s *PokemonService) handleWriteError(op string, err error) error {
	var dup *database.DuplicateKeyError
	if errors.As(err, &dup) {
		return &DuplicateEntryError{Field: dup.Field, Value: dup.Value}
	}
	if errors.Is(err, database.ErrDuplicate) {
		return &DuplicateEntryError{}
	}

	slog.Error("pokemon write failed",
		slog.String("op", op),
		slog.String("error", err.Error()),
	)
	return ErrInternal
}
