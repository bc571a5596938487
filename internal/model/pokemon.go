package model

import "time"

// Pokemon is a single Pokedex entry
type Pokemon struct {
	ID        string    `json:"id"`
	No        int       `json:"no"`
	Name      string    `json:"name"` // Always stored upper-case
	Type      *string   `json:"type,omitempty"`
	CreatedOn time.Time `json:"created_on"`
}

// Pokemon constraints
const (
	MaxPokemonNameLength = 100
	DefaultPageSize      = 7
	MaxPageSize          = 100
)

// CreatePokemonRequest represents a request to create a pokemon
type CreatePokemonRequest struct {
	Name string  `json:"name" validate:"required,max=100"`
	No   int     `json:"no" validate:"required,gt=0"`
	Type *string `json:"type,omitempty" validate:"omitempty,max=50"`
}

// UpdatePokemonRequest represents a partial update. Nil fields are left untouched.
type UpdatePokemonRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	No   *int    `json:"no,omitempty" validate:"omitempty,gt=0"`
	Type *string `json:"type,omitempty" validate:"omitempty,max=50"`
}

// IsEmpty reports whether the request changes nothing
func (r *UpdatePokemonRequest) IsEmpty() bool {
	return r.Name == nil && r.No == nil && r.Type == nil
}

// Merge returns a copy of p with the non-nil fields of req applied
func (p Pokemon) Merge(req *UpdatePokemonRequest) *Pokemon {
	merged := p
	if req == nil {
		return &merged
	}
	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.No != nil {
		merged.No = *req.No
	}
	if req.Type != nil {
		t := *req.Type
		merged.Type = &t
	}
	return &merged
}

// PaginationRequest selects a page of a listing. Zero Limit means the
// configured default page size.
type PaginationRequest struct {
	Limit  int `json:"limit,omitempty" query:"limit" validate:"omitempty,min=1"`
	Offset int `json:"offset,omitempty" query:"offset" validate:"omitempty,min=0"`
}
