// Package database provides the query-execution layer for the hotel API.
//
// Two clients point at the same logical dataset:
//
//   - a direct PostgreSQL connection pool (pgx) executing raw parameterized
//     SQL — the primary path
//   - a PostgREST-dialect HTTP client against the Supabase REST endpoint —
//     the fallback path
//
// # Fallback Policy
//
// DB.Query always tries the pool first. On any primary failure (connection
// refused, acquire timeout, SQL rejected) the identical (sql, params) pair is
// handed to the Translator, which re-expresses a closed whitelist of
// statement shapes as REST calls. If the fallback fails too, the ORIGINAL
// primary error is returned; the fallback error is only logged. Transactions
// have no fallback path: they fail outright when the pool is unavailable.
//
// # Result Shape
//
// Both paths normalize results into Result{Rows, RowCount}. A point lookup
// matching nothing yields {Rows: [], RowCount: 0} on either path — never nil
// and never an error.
//
// # Translator Limits
//
// The translator matches lowercased SQL text by substring, not by parsing.
// That is only safe because every query it sees is hand-written in the
// repository package. UPDATE and DELETE are deliberately not serviced by the
// fallback: they log a warning and modify nothing.
//
// # Error Handling
//
// Standard errors for common failure cases, checked with errors.Is:
//
//	if errors.Is(err, database.ErrUnsupportedQuery) {
//	    // statement shape outside the fallback whitelist
//	}
package database

import "errors"

// Standard errors for database operations.
var (
	// ErrNotFound indicates the requested row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a unique constraint violation.
	ErrDuplicate = errors.New("duplicate record")

	// ErrConnection indicates a failure to reach the database.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure.
	ErrQuery = errors.New("query error")

	// ErrUnsupportedQuery indicates a statement shape the REST fallback
	// cannot service.
	ErrUnsupportedQuery = errors.New("unsupported query shape")
)
