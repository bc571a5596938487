package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/spf13/cast"

	"github.com/forgo/pokedex/api/internal/database"
	"github.com/forgo/pokedex/api/internal/model"
)

const pokemonTable = "pokemon"

// Unique indexes defined in migrations/001_pokemon.surql, by covered field
var pokemonIndexFields = map[string]string{
	"pokemon_no_idx":   "no",
	"pokemon_name_idx": "name",
}

// PokemonRepository handles pokemon data access
type PokemonRepository struct {
	db database.Database
}

// NewPokemonRepository creates a new pokemon repository
func NewPokemonRepository(db database.Database) *PokemonRepository {
	return &PokemonRepository{db: db}
}

// IsValidID reports whether id is a pokemon record ID, with or without the table prefix
func (r *PokemonRepository) IsValidID(id string) bool {
	return normalizeKey(id) != ""
}

// normalizeKey returns the canonical record key for id, or "" if id is not one
func normalizeKey(id string) string {
	key := strings.TrimSpace(id)
	key = strings.TrimPrefix(key, pokemonTable+":")
	key = strings.Trim(key, "⟨⟩`")
	parsed, err := uuid.Parse(key)
	if err != nil {
		return ""
	}
	return parsed.String()
}

// Create creates a new pokemon and fills in its ID and creation time
func (r *PokemonRepository) Create(ctx context.Context, pokemon *model.Pokemon) error {
	query := `
		CREATE type::thing($tb, $key) CONTENT {
			no: $no,
			name: $name,
			type: $type,
			created_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"tb":   pokemonTable,
		"key":  uuid.NewString(),
		"no":   pokemon.No,
		"name": pokemon.Name,
		"type": pokemon.Type,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return mapWriteError(err)
	}

	record, err := database.FirstRecord(result)
	if err != nil {
		return err
	}
	created, err := r.parsePokemon(record)
	if err != nil {
		return err
	}

	pokemon.ID = created.ID
	pokemon.CreatedOn = created.CreatedOn
	return nil
}

// List returns a page of pokemon ordered by number
func (r *PokemonRepository) List(ctx context.Context, limit, offset int) ([]*model.Pokemon, error) {
	query := `
		SELECT id, no, name, type, created_on FROM pokemon
		ORDER BY no ASC
		LIMIT $limit START $offset
	`
	vars := map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return r.parsePokemonList(database.StatementRecords(result, 0))
}

// GetByID retrieves a pokemon by record ID. Returns nil, nil when absent.
func (r *PokemonRepository) GetByID(ctx context.Context, id string) (*model.Pokemon, error) {
	key := normalizeKey(id)
	if key == "" {
		return nil, nil
	}

	// Direct record access - more efficient than WHERE id =
	query := `SELECT * FROM type::thing($tb, $key)`
	vars := map[string]interface{}{"tb": pokemonTable, "key": key}

	return r.queryOne(ctx, query, vars)
}

// GetByNo retrieves a pokemon by pokedex number. Returns nil, nil when absent.
func (r *PokemonRepository) GetByNo(ctx context.Context, no int) (*model.Pokemon, error) {
	query := `SELECT * FROM pokemon WHERE no = $no LIMIT 1`
	vars := map[string]interface{}{"no": no}

	return r.queryOne(ctx, query, vars)
}

// GetByName retrieves a pokemon by its stored (upper-case) name. Returns nil, nil when absent.
func (r *PokemonRepository) GetByName(ctx context.Context, name string) (*model.Pokemon, error) {
	query := `SELECT * FROM pokemon WHERE name = $name LIMIT 1`
	vars := map[string]interface{}{"name": name}

	return r.queryOne(ctx, query, vars)
}

// Update merges updates into the pokemon with the given ID
func (r *PokemonRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	key := normalizeKey(id)
	if key == "" {
		return database.ErrNotFound
	}

	query := `UPDATE type::thing($tb, $key) MERGE $updates RETURN NONE`
	vars := map[string]interface{}{
		"tb":      pokemonTable,
		"key":     key,
		"updates": updates,
	}

	if err := r.db.Execute(ctx, query, vars); err != nil {
		return mapWriteError(err)
	}
	return nil
}

// Delete removes the pokemon with the given ID and returns how many records were deleted
func (r *PokemonRepository) Delete(ctx context.Context, id string) (int, error) {
	key := normalizeKey(id)
	if key == "" {
		return 0, nil
	}

	query := `DELETE type::thing($tb, $key) RETURN BEFORE`
	vars := map[string]interface{}{"tb": pokemonTable, "key": key}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return 0, err
	}

	return len(database.StatementRecords(result, 0)), nil
}

// ReplaceAll deletes every pokemon and inserts the given ones in a single transaction.
// IDs are assigned to the passed records.
func (r *PokemonRepository) ReplaceAll(ctx context.Context, pokemon []*model.Pokemon) (int, error) {
	rows := lo.Map(pokemon, func(p *model.Pokemon, _ int) map[string]interface{} {
		p.ID = uuid.NewString()
		row := map[string]interface{}{
			"id":   p.ID,
			"no":   p.No,
			"name": p.Name,
		}
		if p.Type != nil {
			row["type"] = *p.Type
		}
		return row
	})

	batch := database.NewAtomicBatch().Add(`DELETE pokemon RETURN NONE`, nil)
	if len(rows) > 0 {
		batch.Add(`INSERT INTO pokemon $rows RETURN NONE`, map[string]interface{}{"rows": rows})
	}

	if _, err := batch.Execute(ctx, r.db); err != nil {
		return 0, mapWriteError(err)
	}
	return len(rows), nil
}

func (r *PokemonRepository) queryOne(ctx context.Context, query string, vars map[string]interface{}) (*model.Pokemon, error) {
	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.parsePokemon(result)
}

// mapWriteError attaches the covered field to unique index violations
func mapWriteError(err error) error {
	var dup *database.DuplicateKeyError
	if errors.As(err, &dup) {
		dup.Field = pokemonIndexFields[dup.Index]
		if dup.Field == "no" {
			if no, convErr := cast.ToIntE(dup.Value); convErr == nil {
				dup.Value = no
			}
		}
		return dup
	}
	if isUniqueConstraintError(err) {
		return fmt.Errorf("%w: %v", database.ErrDuplicate, err)
	}
	return err
}

func (r *PokemonRepository) parsePokemon(result interface{}) (*model.Pokemon, error) {
	if result == nil {
		return nil, nil
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected pokemon record type %T", result)
	}

	return &model.Pokemon{
		ID:        recordKey(data["id"]),
		No:        getInt(data, "no"),
		Name:      getString(data, "name"),
		Type:      getStringPtr(data, "type"),
		CreatedOn: parseTime(data["created_on"]),
	}, nil
}

func (r *PokemonRepository) parsePokemonList(records []interface{}) ([]*model.Pokemon, error) {
	pokemon := make([]*model.Pokemon, 0, len(records))
	for _, rec := range records {
		p, err := r.parsePokemon(rec)
		if err != nil {
			return nil, err
		}
		if p != nil {
			pokemon = append(pokemon, p)
		}
	}
	return pokemon, nil
}
