package handler

import (
	"encoding/json"
	"net/http"

	"github.com/forgo/pokedex/api/internal/model"
)

// maxBodyBytes caps create and update payloads
const maxBodyBytes = 64 << 10

// Envelope is the body of every successful JSON response
type Envelope struct {
	Data       interface{}       `json:"data"`
	Pagination *Page             `json:"pagination,omitempty"`
	Links      map[string]string `json:"_links,omitempty"`
}

// Page reports the window a listing was served with after defaults and
// bounds were applied
type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, status int, data interface{}, links map[string]string) {
	writeJSON(w, status, Envelope{Data: data, Links: links})
}

// writePokedexPage writes one page of pokemon along with the applied window
func writePokedexPage(w http.ResponseWriter, pokemon []*model.Pokemon, applied model.PaginationRequest) {
	if pokemon == nil {
		pokemon = []*model.Pokemon{}
	}
	writeJSON(w, http.StatusOK, Envelope{
		Data: pokemon,
		Pagination: &Page{
			Limit:  applied.Limit,
			Offset: applied.Offset,
			Count:  len(pokemon),
		},
	})
}

// decodeJSON reads a size-limited body and rejects fields the request type
// does not declare
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}
