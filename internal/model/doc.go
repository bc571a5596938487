// Package model defines domain entities and data structures for the Pokedex API.
//
// The model package contains the Pokemon entity, its request types and the
// RFC 9457 error representation shared by all layers.
//
// # Request Types
//
// Request structs carry `validate` tags that the handler layer checks before
// the service sees them:
//
//	type CreatePokemonRequest struct {
//	    Name string `json:"name" validate:"required,max=100"`
//	    No   int    `json:"no" validate:"required,gt=0"`
//	}
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type   string `json:"type"`
//	    Title  string `json:"title"`
//	    Status int    `json:"status"`
//	    Detail string `json:"detail,omitempty"`
//	}
package model
