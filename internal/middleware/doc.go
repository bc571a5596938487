// Package middleware provides HTTP middleware for the Pokedex API.
//
//   - RequestID: propagates or generates X-Request-ID
//   - Logger: one slog line per request
//   - Recovery: converts panics into a 500 problem response
//   - CORS: origin allow-list
//   - RateLimit: fixed-window per-IP limit, used on the seed endpoint
//
// Middlewares compose with Chain, outermost first:
//
//	wrapped := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	)
package middleware
