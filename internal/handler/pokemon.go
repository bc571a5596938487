package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/forgo/pokedex/api/internal/model"
)

// PokemonService is the pokemon service surface the handler depends on
type PokemonService interface {
	Create(ctx context.Context, req *model.CreatePokemonRequest) (*model.Pokemon, error)
	List(ctx context.Context, page model.PaginationRequest) ([]*model.Pokemon, error)
	NormalizePage(page model.PaginationRequest) model.PaginationRequest
	FindByTerm(ctx context.Context, term string) (*model.Pokemon, error)
	Update(ctx context.Context, term string, req *model.UpdatePokemonRequest) (*model.Pokemon, error)
	Remove(ctx context.Context, id string) error
}

// PokemonHandler handles pokemon HTTP requests
type PokemonHandler struct {
	svc PokemonService
}

// NewPokemonHandler creates a new pokemon handler
func NewPokemonHandler(svc PokemonService) *PokemonHandler {
	return &PokemonHandler{svc: svc}
}

// RegisterRoutes registers pokemon routes on the given mux
func (h *PokemonHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/pokemon", h.Create)
	mux.HandleFunc("GET /v1/pokemon", h.List)
	mux.HandleFunc("GET /v1/pokemon/{term}", h.Get)
	mux.HandleFunc("PATCH /v1/pokemon/{term}", h.Update)
	mux.HandleFunc("DELETE /v1/pokemon/{id}", h.Delete)
}

// Create handles POST /v1/pokemon - create a pokemon
func (h *PokemonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePokemonRequest
	if err := decodeJSON(w, r, &req); err != nil {
		model.NewBadRequestError("invalid request body").WriteJSON(w)
		return
	}
	if problem := validateStruct(&req); problem != nil {
		problem.WriteJSON(w)
		return
	}

	pokemon, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		MapServiceErrorWithContext(err, "create").WriteJSON(w)
		return
	}

	writeData(w, http.StatusCreated, pokemon, map[string]string{
		"self": "/v1/pokemon/" + pokemon.ID,
	})
}

// List handles GET /v1/pokemon?limit=&offset= - list pokemon ordered by number
func (h *PokemonHandler) List(w http.ResponseWriter, r *http.Request) {
	page, problem := parsePagination(r)
	if problem != nil {
		problem.WriteJSON(w)
		return
	}

	applied := h.svc.NormalizePage(page)
	pokemon, err := h.svc.List(r.Context(), applied)
	if err != nil {
		MapServiceErrorWithContext(err, "list").WriteJSON(w)
		return
	}

	writePokedexPage(w, pokemon, applied)
}

// Get handles GET /v1/pokemon/{term} - find a pokemon by number, ID or name
func (h *PokemonHandler) Get(w http.ResponseWriter, r *http.Request) {
	term := r.PathValue("term")
	if term == "" {
		model.NewBadRequestError("search term required").WriteJSON(w)
		return
	}

	pokemon, err := h.svc.FindByTerm(r.Context(), term)
	if err != nil {
		MapServiceErrorWithContext(err, "find").WriteJSON(w)
		return
	}

	writeData(w, http.StatusOK, pokemon, nil)
}

// Update handles PATCH /v1/pokemon/{term} - partially update a pokemon
func (h *PokemonHandler) Update(w http.ResponseWriter, r *http.Request) {
	term := r.PathValue("term")
	if term == "" {
		model.NewBadRequestError("search term required").WriteJSON(w)
		return
	}

	var req model.UpdatePokemonRequest
	if err := decodeJSON(w, r, &req); err != nil {
		model.NewBadRequestError("invalid request body").WriteJSON(w)
		return
	}
	if problem := validateStruct(&req); problem != nil {
		problem.WriteJSON(w)
		return
	}

	pokemon, err := h.svc.Update(r.Context(), term, &req)
	if err != nil {
		MapServiceErrorWithContext(err, "update").WriteJSON(w)
		return
	}

	writeData(w, http.StatusOK, pokemon, nil)
}

// Delete handles DELETE /v1/pokemon/{id} - remove a pokemon by record ID
func (h *PokemonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		model.NewBadRequestError("pokemon ID required").WriteJSON(w)
		return
	}

	if err := h.svc.Remove(r.Context(), id); err != nil {
		MapServiceErrorWithContext(err, "remove").WriteJSON(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parsePagination reads limit and offset query params. Absent params stay zero.
func parsePagination(r *http.Request) (model.PaginationRequest, *model.ProblemDetails) {
	var page model.PaginationRequest
	var fields []model.FieldError

	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			fields = append(fields, model.FieldError{Field: "limit", Message: "must be an integer"})
		}
		page.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			fields = append(fields, model.FieldError{Field: "offset", Message: "must be an integer"})
		}
		page.Offset = n
	}
	if len(fields) > 0 {
		return page, model.NewValidationError(fields)
	}

	if problem := validateStruct(&page); problem != nil {
		return page, problem
	}
	return page, nil
}
