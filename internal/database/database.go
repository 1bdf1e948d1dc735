package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Row is a single result row keyed by column name
type Row = map[string]any

// Result is the normalized outcome of a query on either backend
type Result struct {
	Rows     []Row
	RowCount int
}

// DB is the unified query façade used by every repository.
// It owns the try-primary-then-fallback policy and the shared pool.
type DB struct {
	pool       *pgxpool.Pool
	rest       *RestClient
	translator *Translator
}

// Config holds façade construction settings
type Config struct {
	// Pool is the direct connection pool. May be nil, in which case every
	// query goes straight to the REST fallback.
	Pool *pgxpool.Pool
	// Rest is the managed REST client. Required.
	Rest *RestClient
}

// New creates the query façade. The façade is constructed once in main and
// injected into every consumer; Close releases the pool.
func New(cfg Config) (*DB, error) {
	if cfg.Rest == nil {
		return nil, errors.New("database: REST client is required")
	}
	return &DB{
		pool:       cfg.Pool,
		rest:       cfg.Rest,
		translator: NewTranslator(cfg.Rest),
	}, nil
}

// Close shuts down the connection pool. The REST client has no state to
// release.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Ping verifies connectivity on the primary path
func (db *DB) Ping(ctx context.Context) error {
	if db.pool == nil {
		return fmt.Errorf("%w: no connection pool configured", ErrConnection)
	}
	if err := db.pool.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Rest exposes the managed client for consumers that talk to Supabase
// directly (provisioning probes, storage).
func (db *DB) Rest() *RestClient {
	return db.rest
}

// Query executes parameterized SQL, preferring the primary pool and falling
// back to the REST translator on any primary failure. When both paths fail
// the primary error is returned and the fallback error is logged as
// diagnostic context.
func (db *DB) Query(ctx context.Context, sql string, params ...any) (*Result, error) {
	res, primaryErr := db.queryPrimary(ctx, sql, params)
	if primaryErr == nil {
		return res, nil
	}

	slog.Warn("primary query failed, trying REST fallback",
		slog.String("query", excerpt(sql)),
		slog.String("error", primaryErr.Error()),
	)

	res, fallbackErr := db.translator.Translate(ctx, sql, params)
	if fallbackErr != nil {
		slog.Error("REST fallback failed",
			slog.String("query", excerpt(sql)),
			slog.String("error", fallbackErr.Error()),
		)
		return nil, primaryErr
	}
	return res, nil
}

// queryPrimary runs sql on the pool and normalizes the rows
func (db *DB) queryPrimary(ctx context.Context, sql string, params []any) (*Result, error) {
	if db.pool == nil {
		return nil, fmt.Errorf("%w: no connection pool configured", ErrConnection)
	}

	rows, err := db.pool.Query(ctx, sql, params...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	defer rows.Close()

	out := make([]Row, 0)
	fields := rows.FieldDescriptions()
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrQuery, err)
		}
		row := make(Row, len(fields))
		for i, fd := range fields {
			row[string(fd.Name)] = values[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	count := len(out)
	if count == 0 {
		// Mutations without RETURNING report through the command tag.
		if n := rows.CommandTag().RowsAffected(); n > 0 {
			count = int(n)
		}
	}
	return &Result{Rows: out, RowCount: count}, nil
}

// txConn is the slice of a pooled connection the transaction helper needs.
// *pgxpool.Conn satisfies it.
type txConn interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Release()
}

// Transaction acquires one pooled connection, runs fn inside BEGIN/COMMIT,
// rolls back and returns fn's error on failure, and always releases the
// connection. There is no fallback path: the pool must be reachable.
func (db *DB) Transaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	if db.pool == nil {
		return fmt.Errorf("%w: transactions require the direct connection pool", ErrConnection)
	}

	conn, err := db.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return runTx(ctx, conn, fn)
}

// runTx runs fn inside BEGIN/COMMIT on an acquired connection and always
// releases it, whichever way fn or the commit goes.
//
// If rollback itself fails, the rollback error propagates instead of the
// callback's error.
func runTx(ctx context.Context, conn txConn, fn func(tx pgx.Tx) error) error {
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin failed: %v", ErrQuery, err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return fmt.Errorf("%w: rollback failed: %v (after: %v)", ErrQuery, rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit failed: %v", ErrQuery, err)
	}
	return nil
}

// Acquire hands out a raw pooled connection for callers that need one.
// The caller must Release it.
func (db *DB) Acquire(ctx context.Context) (*pgxpool.Conn, error) {
	if db.pool == nil {
		return nil, fmt.Errorf("%w: no connection pool configured", ErrConnection)
	}
	conn, err := db.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return conn, nil
}
