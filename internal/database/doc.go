// Package database provides database connectivity for the Pokedex API.
//
// The database package abstracts SurrealDB operations and provides
// a consistent interface for data access across the application.
//
// # Connection Management
//
//	db := database.NewSurrealDB(database.Config{
//	    Host:      "localhost",
//	    Port:      "8000",
//	    Namespace: "pokedex",
//	    Database:  "main",
//	    User:      "root",
//	    Password:  "root",
//	})
//	if err := db.Connect(ctx); err != nil { ... }
//	defer db.Close()
//
// # Result Helpers
//
//   - FirstRecord: first record of the first statement, or ErrNotFound
//   - StatementRecords: all records produced by one statement of a multi-statement query
package database
