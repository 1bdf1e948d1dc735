package database

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateSelectBareShape(t *testing.T) {
	t.Parallel()

	var got *http.Request
	rest := newFakeRest(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		_, _ = w.Write([]byte(`[{"id": 1, "room_number": 101}]`))
	})
	tr := NewTranslator(rest)

	res, err := tr.Translate(context.Background(), "SELECT * FROM rooms ORDER BY room_number ASC", nil)
	require.NoError(t, err)
	require.Equal(t, 1, res.RowCount)

	assert.Equal(t, "/rest/v1/rooms", got.URL.Path)
	assert.Equal(t, "room_number.asc", got.URL.Query().Get("order"))
	assert.Empty(t, got.URL.Query().Get("room_number"))
}

func TestTranslateSelectWithFilter(t *testing.T) {
	t.Parallel()

	var got *http.Request
	rest := newFakeRest(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		_, _ = w.Write([]byte(`[{"id": 1, "room_number": 101}]`))
	})
	tr := NewTranslator(rest)

	res, err := tr.Translate(context.Background(),
		"SELECT * FROM rooms WHERE room_number = $1 ORDER BY room_number ASC", []any{101})
	require.NoError(t, err)
	require.Equal(t, 1, res.RowCount)

	assert.Equal(t, "eq.101", got.URL.Query().Get("room_number"))
}

// A WHERE clause outside the whitelist must not degrade to the table's bare
// shape: that would drop the filter and return every row.
func TestTranslateSelectUnknownPredicate(t *testing.T) {
	t.Parallel()

	called := false
	rest := newFakeRest(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	tr := NewTranslator(rest)

	_, err := tr.Translate(context.Background(), "SELECT * FROM rooms WHERE id = $1", []any{1})
	require.ErrorIs(t, err, ErrUnsupportedQuery)
	assert.False(t, called, "no REST request should be made for an unsupported shape")
}

// A filtered shape with no parameter to bind must fail rather than drop the
// filter and run the query unfiltered.
func TestTranslateSelectMissingParam(t *testing.T) {
	t.Parallel()

	called := false
	rest := newFakeRest(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	tr := NewTranslator(rest)

	_, err := tr.Translate(context.Background(),
		"SELECT * FROM rooms WHERE room_number = $1 ORDER BY room_number ASC", nil)
	require.ErrorIs(t, err, ErrUnsupportedQuery)
	assert.False(t, called, "no REST request should be made when the filter cannot be bound")
}

func TestTranslateSelectUserByEmail(t *testing.T) {
	t.Parallel()

	var got *http.Request
	rest := newFakeRest(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		_, _ = w.Write([]byte(`[{"id": 3, "email": "admin@casaluna.hotel"}]`))
	})
	tr := NewTranslator(rest)

	res, err := tr.Translate(context.Background(),
		"SELECT * FROM users WHERE email = $1", []any{"admin@casaluna.hotel"})
	require.NoError(t, err)
	require.Equal(t, 1, res.RowCount)

	q := got.URL.Query()
	assert.Equal(t, "eq.admin@casaluna.hotel", q.Get("email"))
	assert.Equal(t, "1", q.Get("limit"))
}

func TestTranslateSelectActiveNotificationBars(t *testing.T) {
	t.Parallel()

	var got *http.Request
	rest := newFakeRest(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		_, _ = w.Write([]byte(`[]`))
	})
	tr := NewTranslator(rest)

	res, err := tr.Translate(context.Background(),
		"SELECT * FROM notification_bars WHERE is_active = true ORDER BY created_at DESC", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.RowCount)
	assert.NotNil(t, res.Rows)

	assert.Equal(t, "is.true", got.URL.Query().Get("is_active"))
}

func TestTranslateInsert(t *testing.T) {
	t.Parallel()

	var payload map[string]any
	rest := newFakeRest(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id": 9, "name": "Ana", "email": "ana@example.com", "phone": null, "subject": "Hi", "message": "Hello"}]`))
	})
	tr := NewTranslator(rest)

	res, err := tr.Translate(context.Background(),
		"INSERT INTO contact_messages (name, email, phone, subject, message) VALUES ($1, $2, $3, $4, $5) RETURNING *",
		[]any{"Ana", "ana@example.com", nil, "Hi", "Hello"})
	require.NoError(t, err)
	require.Equal(t, 1, res.RowCount)
	require.Len(t, res.Rows, 1)

	// Positional params mapped to the declared column order, nil included.
	assert.Equal(t, "Ana", payload["name"])
	assert.Equal(t, "ana@example.com", payload["email"])
	assert.Contains(t, payload, "phone")
	assert.Nil(t, payload["phone"])
	assert.EqualValues(t, 9, res.Rows[0]["id"])
}

func TestTranslateInsertUnknownTable(t *testing.T) {
	t.Parallel()

	tr := NewTranslator(newFakeRest(t, func(w http.ResponseWriter, r *http.Request) {}))

	_, err := tr.Translate(context.Background(),
		"INSERT INTO bookings (guest_name) VALUES ($1)", []any{"Ana"})
	require.ErrorIs(t, err, ErrUnsupportedQuery)
}

func TestTranslateInsertParamMismatch(t *testing.T) {
	t.Parallel()

	tr := NewTranslator(newFakeRest(t, func(w http.ResponseWriter, r *http.Request) {}))

	_, err := tr.Translate(context.Background(),
		"INSERT INTO contact_messages (name) VALUES ($1)", []any{"Ana"})
	require.ErrorIs(t, err, ErrUnsupportedQuery)
}

func TestTranslateUpdateDeleteNoOp(t *testing.T) {
	t.Parallel()

	called := false
	tr := NewTranslator(newFakeRest(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	for _, sql := range []string{
		"UPDATE rooms SET is_available = $1 WHERE id = $2",
		"DELETE FROM rooms WHERE id = $1",
	} {
		res, err := tr.Translate(context.Background(), sql, []any{true, 1})
		require.NoError(t, err, sql)
		assert.Equal(t, 0, res.RowCount, sql)
		assert.NotNil(t, res.Rows, sql)
		assert.Empty(t, res.Rows, sql)
	}
	assert.False(t, called)
}

func TestTranslateUnsupportedStatement(t *testing.T) {
	t.Parallel()

	tr := NewTranslator(newFakeRest(t, func(w http.ResponseWriter, r *http.Request) {}))

	_, err := tr.Translate(context.Background(), "TRUNCATE TABLE rooms", nil)
	require.ErrorIs(t, err, ErrUnsupportedQuery)
	assert.Contains(t, err.Error(), "truncate table rooms")
}

func TestInsertTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sql  string
		want string
	}{
		{"insert into rooms (room_number) values ($1)", "rooms"},
		{"insert into contact_messages(name) values ($1)", "contact_messages"},
		{"insert into\n\tmenu_items (name) values ($1)", "menu_items"},
		{"select * from rooms", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, insertTable(tt.sql), tt.sql)
	}
}
