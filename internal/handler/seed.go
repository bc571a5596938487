package handler

import (
	"context"
	"net/http"

	"github.com/forgo/pokedex/api/internal/service"
)

// Seeder repopulates the pokedex
type Seeder interface {
	Execute(ctx context.Context) (*service.SeedResult, error)
}

// SeedHandler handles the seed endpoint
type SeedHandler struct {
	seeder Seeder
}

// NewSeedHandler creates a new seed handler
func NewSeedHandler(seeder Seeder) *SeedHandler {
	return &SeedHandler{seeder: seeder}
}

// Seed handles GET /v1/seed - replace the pokedex with the PokeAPI catalogue
func (h *SeedHandler) Seed(w http.ResponseWriter, r *http.Request) {
	result, err := h.seeder.Execute(r.Context())
	if err != nil {
		MapServiceErrorWithContext(err, "seed").WriteJSON(w)
		return
	}

	writeData(w, http.StatusOK, result, map[string]string{
		"pokemon": "/v1/pokemon",
	})
}
