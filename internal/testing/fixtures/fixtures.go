// Package fixtures provides test data factories for e2e testing.
//
// Factories insert records with raw SurrealQL so repository code under test
// is not also the code that builds its fixtures.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	pikachu := f.CreatePokemon(t, &fixtures.PokemonOpts{No: 25, Name: "PIKACHU"})
//	f.CreatePokedex(t, 5) // no 1..5
package fixtures

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/forgo/pokedex/api/internal/database"
	"github.com/forgo/pokedex/api/internal/model"
)

// Factory creates test entities in the database
type Factory struct {
	db database.Database
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{db: db}
}

// ctx returns a context with timeout
func ctx(t *testing.T) context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return c
}

// ============================================================================
// Pokemon Fixtures
// ============================================================================

// PokemonOpts customizes pokemon creation
type PokemonOpts struct {
	No   int
	Name string
	Type *string
}

// CreatePokemon inserts a pokemon. Name is stored as given, so pass it upper-case.
func (f *Factory) CreatePokemon(t *testing.T, opts *PokemonOpts) *model.Pokemon {
	t.Helper()

	if opts == nil {
		opts = &PokemonOpts{}
	}
	if opts.No == 0 {
		opts.No = 1
	}
	if opts.Name == "" {
		opts.Name = fmt.Sprintf("POKEMON-%d", opts.No)
	}

	key := uuid.NewString()
	query := `
		CREATE type::thing("pokemon", $key) CONTENT {
			no: $no,
			name: $name,
			type: $type,
			created_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"key":  key,
		"no":   opts.No,
		"name": opts.Name,
		"type": opts.Type,
	}

	if err := f.db.Execute(ctx(t), query, vars); err != nil {
		t.Fatalf("fixtures: create pokemon %d: %v", opts.No, err)
	}

	return &model.Pokemon{ID: key, No: opts.No, Name: opts.Name, Type: opts.Type}
}

// CreatePokedex inserts count pokemon numbered 1..count, in reverse order so
// insertion order never matches the expected listing order.
func (f *Factory) CreatePokedex(t *testing.T, count int) []*model.Pokemon {
	t.Helper()

	created := make([]*model.Pokemon, count)
	for no := count; no >= 1; no-- {
		created[no-1] = f.CreatePokemon(t, &PokemonOpts{No: no})
	}
	return created
}
