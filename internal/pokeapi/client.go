// Package pokeapi is a minimal client for the public PokeAPI species listing,
// used to seed the Pokedex.
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the public PokeAPI v2 endpoint
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// ErrUpstream indicates PokeAPI answered with a non-200 status or an unreadable body
var ErrUpstream = errors.New("pokeapi request failed")

// Species is one entry of the /pokemon listing
type Species struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// No returns the pokedex number encoded as the last path segment of the species URL
// (https://pokeapi.co/api/v2/pokemon/25/ -> 25).
func (s Species) No() (int, error) {
	segments := strings.Split(strings.TrimRight(s.URL, "/"), "/")
	last := segments[len(segments)-1]
	no, err := strconv.Atoi(last)
	if err != nil {
		return 0, fmt.Errorf("species %q: no number in url %q", s.Name, s.URL)
	}
	return no, nil
}

type listResponse struct {
	Count   int       `json:"count"`
	Results []Species `json:"results"`
}

// Client fetches species from PokeAPI
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Config holds PokeAPI client settings
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// NewClient creates a new PokeAPI client
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ListSpecies returns the first limit species in pokedex order
func (c *Client) ListSpecies(ctx context.Context, limit int) ([]Species, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	endpoint := c.baseURL + "/pokemon?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var list listResponse
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return list.Results, nil
}
