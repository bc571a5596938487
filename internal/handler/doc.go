// Package handler provides HTTP request handlers for the Pokedex API.
//
// Handlers decode and validate requests, call a service, and write either a
// data envelope or an RFC 9457 problem response:
//
//	{"data": {...}, "_links": {...}}
//	{"data": [...], "pagination": {"limit": 7, "offset": 0, "count": 7}}
//
// Request bodies are validated with go-playground/validator using the
// `validate` tags on the model request types. Service errors are translated
// in one place by MapServiceError.
//
// # Routes
//
//	POST   /v1/pokemon          create
//	GET    /v1/pokemon          list (?limit=&offset=)
//	GET    /v1/pokemon/{term}   find by number, ID or name
//	PATCH  /v1/pokemon/{term}   partial update
//	DELETE /v1/pokemon/{id}     remove by ID
//	GET    /v1/seed             replace the pokedex from PokeAPI
//	GET    /health              liveness and database ping
package handler
