// Package repository implements the data access layer for the hotel API.
//
// Each repository struct handles the operations for one table. All queries
// go through the database façade as raw parameterized SQL, so every query
// text here is part of the fallback contract: the SELECT predicates and the
// INSERT column orders must stay in lockstep with the translator's statement
// shapes (see internal/database/translator.go).
//
// # Value Coercion
//
// Result rows arrive as map[string]any and the value types differ between
// backends: pgx returns native Go types while the REST fallback returns
// JSON-decoded values (float64 numbers, RFC 3339 strings for timestamps).
// The helpers in helpers.go normalize both into model fields, so consumers
// never see backend-specific typing.
package repository
