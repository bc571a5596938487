// Package fixtures provides test data factories for the Pokedex API.
//
// See fixtures.go for usage.
package fixtures
