// Package helpers provides test utility functions for the Pokedex API.
//
// Build and serve requests against any http.Handler:
//
//	rr := helpers.NewRequest(t, http.MethodPost, "/v1/pokemon").
//	    WithBody(map[string]any{"name": "pikachu", "no": 25}).
//	    Do(mux)
//	helpers.AssertStatus(t, rr, http.StatusCreated)
//	p := helpers.DecodeData[model.Pokemon](t, rr)
//
// Problem responses:
//
//	helpers.AssertProblemDetails(t, rr, http.StatusNotFound, model.ErrCodeNotFound)
//
// Database checks:
//
//	n := helpers.CountRecords(t, tdb.DB, "pokemon")
package helpers
