// Package repository implements the data access layer for the Pokedex API.
//
// Repositories accept a database.Database and speak parameterized SurrealQL:
//
//	repo := repository.NewPokemonRepository(db)
//
// # Record IDs
//
// Pokemon are stored as pokemon:⟨uuid⟩. The API exposes the bare UUID;
// methods accept either form and IsValidID reports which strings can be IDs.
//
// # Query Patterns
//
//   - type::thing($tb, $key) for direct record access
//   - time::now() for creation timestamps
//   - UPDATE ... MERGE for partial updates
//   - database.AtomicBatch for the seed replacement transaction
//
// # Not Found
//
// Lookups return nil, nil when no record matches; callers decide what
// absence means. Unique index violations surface as
// *database.DuplicateKeyError with Field set to the covered field.
package repository
