package service

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Centralized service layer errors.
// All errors returned by service methods are defined here so handlers can
// map them with errors.Is / errors.As.

// ===== Pokemon Errors =====
var (
	ErrPokemonNotFound = errors.New("pokemon not found")
	ErrDuplicateEntry  = errors.New("pokemon already exists")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInternal        = errors.New("internal failure, check server logs")
)

// ===== Seed Errors =====
var (
	ErrSeedFetch = errors.New("failed to fetch pokemon list")
)

// NotFoundError is returned when no record matches a lookup term
type NotFoundError struct {
	Term string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Pokemon with id, name or no %q not found", e.Term)
}

func (e *NotFoundError) Unwrap() error { return ErrPokemonNotFound }

// DuplicateEntryError is returned when a write collides with a unique field
type DuplicateEntryError struct {
	Field string
	Value interface{}
}

func (e *DuplicateEntryError) Error() string {
	if e.Field == "" {
		return "Pokemon exists in db"
	}
	kv, err := json.Marshal(map[string]interface{}{e.Field: e.Value})
	if err != nil {
		return fmt.Sprintf("Pokemon exists in db {%s: %v}", e.Field, e.Value)
	}
	return "Pokemon exists in db " + string(kv)
}

func (e *DuplicateEntryError) Unwrap() error { return ErrDuplicateEntry }

// InvalidArgumentError is returned when a delete targets an identifier that matches nothing
type InvalidArgumentError struct {
	Term string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("Pokemon with id %q not found", e.Term)
}

func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }
