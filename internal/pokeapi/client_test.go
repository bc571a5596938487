package pokeapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecies_No(t *testing.T) {
	t.Parallel()

	no, err := Species{Name: "pikachu", URL: "https://pokeapi.co/api/v2/pokemon/25/"}.No()
	require.NoError(t, err)
	assert.Equal(t, 25, no)

	no, err = Species{Name: "mew", URL: "https://pokeapi.co/api/v2/pokemon/151"}.No()
	require.NoError(t, err)
	assert.Equal(t, 151, no)

	_, err = Species{Name: "bad", URL: "https://pokeapi.co/api/v2/pokemon/"}.No()
	assert.Error(t, err)
}

func TestClient_ListSpecies(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pokemon", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count":1302,"results":[
			{"name":"bulbasaur","url":"https://pokeapi.co/api/v2/pokemon/1/"},
			{"name":"ivysaur","url":"https://pokeapi.co/api/v2/pokemon/2/"}]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL + "/", Timeout: 5 * time.Second})

	species, err := client.ListSpecies(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, species, 2)
	assert.Equal(t, "bulbasaur", species[0].Name)
	assert.Equal(t, "ivysaur", species[1].Name)
}

func TestClient_ListSpecies_UpstreamError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	_, err := client.ListSpecies(context.Background(), 10)

	assert.ErrorIs(t, err, ErrUpstream)
}

func TestClient_ListSpecies_BadBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	_, err := client.ListSpecies(context.Background(), 10)

	assert.ErrorIs(t, err, ErrUpstream)
}

func TestNewClient_Defaults(t *testing.T) {
	t.Parallel()

	client := NewClient(Config{})

	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}
