package database

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFallbackOnlyDB builds a façade with no primary pool, so every query is
// forced through the REST translator. This is the posture the server runs in
// when the direct connection is down.
func newFallbackOnlyDB(t *testing.T, handler http.HandlerFunc) *DB {
	t.Helper()
	db, err := New(Config{Pool: nil, Rest: newFakeRest(t, handler)})
	require.NoError(t, err)
	return db
}

func TestNewRequiresRestClient(t *testing.T) {
	t.Parallel()

	_, err := New(Config{})
	require.Error(t, err)
}

func TestQueryFallsBackWhenPrimaryDown(t *testing.T) {
	t.Parallel()

	db := newFallbackOnlyDB(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 1, "room_number": 101}, {"id": 2, "room_number": 102}]`))
	})

	res, err := db.Query(context.Background(), "SELECT * FROM rooms ORDER BY room_number ASC")
	require.NoError(t, err)
	assert.Equal(t, 2, res.RowCount)
	assert.Len(t, res.Rows, 2)
}

func TestQueryZeroRowsIsNotAnError(t *testing.T) {
	t.Parallel()

	db := newFallbackOnlyDB(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	res, err := db.Query(context.Background(), "SELECT * FROM rooms ORDER BY room_number ASC")
	require.NoError(t, err)
	assert.Equal(t, 0, res.RowCount)
	assert.NotNil(t, res.Rows)
	assert.Empty(t, res.Rows)
}

// When both paths fail the primary error is the one callers see; the
// fallback error is log-only diagnostics.
func TestQueryReturnsPrimaryErrorWhenBothFail(t *testing.T) {
	t.Parallel()

	db := newFallbackOnlyDB(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{}`, http.StatusInternalServerError)
	})

	_, err := db.Query(context.Background(), "SELECT * FROM rooms ORDER BY room_number ASC")
	require.ErrorIs(t, err, ErrConnection)
	assert.NotErrorIs(t, err, ErrUnsupportedQuery)
}

func TestQueryUnsupportedShapeReturnsPrimaryError(t *testing.T) {
	t.Parallel()

	db := newFallbackOnlyDB(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := db.Query(context.Background(), "SELECT * FROM bookings WHERE id = $1", int64(1))
	require.ErrorIs(t, err, ErrConnection)
}

// fakeTx embeds the pgx.Tx interface so only the methods the transaction
// helper touches need real implementations.
type fakeTx struct {
	pgx.Tx
	commitErr   error
	rollbackErr error
	commits     int
	rollbacks   int
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.commits++
	return t.commitErr
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rollbacks++
	return t.rollbackErr
}

type fakeTxConn struct {
	tx       *fakeTx
	beginErr error
	released int
}

func (c *fakeTxConn) Begin(ctx context.Context) (pgx.Tx, error) {
	if c.beginErr != nil {
		return nil, c.beginErr
	}
	return c.tx, nil
}

func (c *fakeTxConn) Release() { c.released++ }

func TestTransactionCommitsAndReleases(t *testing.T) {
	t.Parallel()

	conn := &fakeTxConn{tx: &fakeTx{}}

	err := runTx(context.Background(), conn, func(tx pgx.Tx) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, 1, conn.tx.commits)
	assert.Equal(t, 0, conn.tx.rollbacks)
	assert.Equal(t, 1, conn.released)
}

// The callback's error must reach the caller unwrapped, and the connection
// must go back to the pool after the rollback.
func TestTransactionRollsBackAndReleasesOnCallbackError(t *testing.T) {
	t.Parallel()

	conn := &fakeTxConn{tx: &fakeTx{}}
	boom := errors.New("boom")

	err := runTx(context.Background(), conn, func(tx pgx.Tx) error { return boom })
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, conn.tx.rollbacks)
	assert.Equal(t, 0, conn.tx.commits)
	assert.Equal(t, 1, conn.released)
}

func TestTransactionReleasesOnBeginError(t *testing.T) {
	t.Parallel()

	conn := &fakeTxConn{beginErr: errors.New("no connection")}

	err := runTx(context.Background(), conn, func(tx pgx.Tx) error { return nil })
	require.ErrorIs(t, err, ErrQuery)
	assert.Equal(t, 1, conn.released)
}

func TestTransactionReleasesOnCommitError(t *testing.T) {
	t.Parallel()

	conn := &fakeTxConn{tx: &fakeTx{commitErr: errors.New("commit refused")}}

	err := runTx(context.Background(), conn, func(tx pgx.Tx) error { return nil })
	require.ErrorIs(t, err, ErrQuery)
	assert.Equal(t, 1, conn.released)
}

func TestTransactionRollbackFailureWrapsBothErrors(t *testing.T) {
	t.Parallel()

	conn := &fakeTxConn{tx: &fakeTx{rollbackErr: errors.New("rollback refused")}}
	boom := errors.New("boom")

	err := runTx(context.Background(), conn, func(tx pgx.Tx) error { return boom })
	require.ErrorIs(t, err, ErrQuery)
	assert.Contains(t, err.Error(), "rollback refused")
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, 1, conn.released)
}

// A callback that already closed the transaction (explicit rollback) is not
// an error worth masking: pgx reports ErrTxClosed and the callback's own
// error wins.
func TestTransactionIgnoresTxClosedOnRollback(t *testing.T) {
	t.Parallel()

	conn := &fakeTxConn{tx: &fakeTx{rollbackErr: pgx.ErrTxClosed}}
	boom := errors.New("boom")

	err := runTx(context.Background(), conn, func(tx pgx.Tx) error { return boom })
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, conn.released)
}

func TestTransactionRequiresPool(t *testing.T) {
	t.Parallel()

	db := newFallbackOnlyDB(t, func(w http.ResponseWriter, r *http.Request) {})

	err := db.Transaction(context.Background(), func(tx pgx.Tx) error { return nil })
	require.ErrorIs(t, err, ErrConnection)
}

func TestPingRequiresPool(t *testing.T) {
	t.Parallel()

	db := newFallbackOnlyDB(t, func(w http.ResponseWriter, r *http.Request) {})

	require.ErrorIs(t, db.Ping(context.Background()), ErrConnection)
}

func TestAcquireRequiresPool(t *testing.T) {
	t.Parallel()

	db := newFallbackOnlyDB(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := db.Acquire(context.Background())
	require.ErrorIs(t, err, ErrConnection)
}

func TestExcerpt(t *testing.T) {
	t.Parallel()

	short := "SELECT * FROM rooms"
	assert.Equal(t, short, excerpt(short))

	long := "SELECT " + strings.Repeat("x", 200)
	assert.LessOrEqual(t, len(excerpt(long)), 83) // 80 chars plus ellipsis
}
