// Package service implements the business logic of the Pokedex API.
//
// Services depend on small repository interfaces declared next to them and
// receive every collaborator through a Config struct:
//
//	svc := service.NewPokemonService(service.PokemonServiceConfig{
//	    PokemonRepo:  repo,
//	    DefaultLimit: cfg.Pokedex.DefaultLimit,
//	})
//
// # Errors
//
// All service errors live in errors.go. Category errors carry data and wrap
// a sentinel so callers can use either form:
//
//	errors.Is(err, service.ErrPokemonNotFound)
//	var nf *service.NotFoundError; errors.As(err, &nf)
//
// Storage failures on writes are logged and replaced by ErrInternal; unique
// index violations become *DuplicateEntryError.
package service
