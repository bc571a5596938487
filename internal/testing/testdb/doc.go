// Package testdb provides isolated SurrealDB databases for e2e tests.
//
// Each TestDB runs in its own namespace with every file of migrations/
// applied, so tests exercise the real unique indexes and field assertions:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    defer tdb.Close()
//
//	    repo := repository.NewPokemonRepository(tdb.DB)
//	}
//
// Tests are skipped when no SurrealDB is reachable or with -short.
//
// Environment variables:
//
//	TEST_DB_HOST     - SurrealDB host (default: localhost)
//	TEST_DB_PORT     - SurrealDB port (default: 8000)
//	TEST_DB_USER     - SurrealDB username (default: root)
//	TEST_DB_PASSWORD - SurrealDB password (default: root)
//	POKEDEX_ROOT     - repository root, used to locate migrations/
package testdb
