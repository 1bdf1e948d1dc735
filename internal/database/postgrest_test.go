package database

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casaluna/hotel/api/internal/config"
)

// newFakeRest starts a fake PostgREST endpoint and returns a client pointed
// at it. Handlers receive the raw request so tests can assert on paths,
// query strings and headers.
func newFakeRest(t *testing.T, handler http.HandlerFunc) *RestClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewRestClient(config.SupabaseConfig{
		URL:        srv.URL,
		ServiceKey: "test-service-key",
		Timeout:    5 * time.Second,
	})
}

func TestRestClientSelect(t *testing.T) {
	t.Parallel()

	var got *http.Request
	rest := newFakeRest(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": 1, "room_number": 101}, {"id": 2, "room_number": 102}]`))
	})

	rows, err := rest.Select(context.Background(), "rooms", SelectOptions{
		Filters: []Filter{{Column: "room_number", Op: "eq", Value: "101"}},
		Order:   "room_number.asc",
		Limit:   5,
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "/rest/v1/rooms", got.URL.Path)
	q := got.URL.Query()
	assert.Equal(t, "*", q.Get("select"))
	assert.Equal(t, "eq.101", q.Get("room_number"))
	assert.Equal(t, "room_number.asc", q.Get("order"))
	assert.Equal(t, "5", q.Get("limit"))
	assert.Equal(t, "test-service-key", got.Header.Get("apikey"))
	assert.Equal(t, "Bearer test-service-key", got.Header.Get("Authorization"))
}

func TestRestClientSelectEmpty(t *testing.T) {
	t.Parallel()

	rest := newFakeRest(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	rows, err := rest.Select(context.Background(), "rooms", SelectOptions{})
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestRestClientSelectNullBody(t *testing.T) {
	t.Parallel()

	rest := newFakeRest(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	})

	rows, err := rest.Select(context.Background(), "rooms", SelectOptions{})
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestRestClientSelectErrorStatus(t *testing.T) {
	t.Parallel()

	rest := newFakeRest(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"relation does not exist"}`, http.StatusNotFound)
	})

	_, err := rest.Select(context.Background(), "nope", SelectOptions{})
	require.ErrorIs(t, err, ErrQuery)
	assert.Contains(t, err.Error(), "status 404")
}

func TestRestClientInsert(t *testing.T) {
	t.Parallel()

	var got *http.Request
	rest := newFakeRest(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id": 7, "name": "Ana", "email": "ana@example.com"}]`))
	})

	created, err := rest.Insert(context.Background(), "contact_messages", Row{
		"name":  "Ana",
		"email": "ana@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/rest/v1/contact_messages", got.URL.Path)
	assert.Equal(t, "return=representation", got.Header.Get("Prefer"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.EqualValues(t, 7, created["id"])
}

func TestRestClientInsertNoRowReturned(t *testing.T) {
	t.Parallel()

	rest := newFakeRest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := rest.Insert(context.Background(), "contact_messages", Row{"name": "Ana"})
	require.ErrorIs(t, err, ErrQuery)
}

func TestRestClientProbe(t *testing.T) {
	t.Parallel()

	rest := newFakeRest(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/rest/v1/rooms" {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		http.Error(w, `{}`, http.StatusNotFound)
	})

	require.NoError(t, rest.Probe(context.Background(), "rooms"))
	require.Error(t, rest.Probe(context.Background(), "missing_table"))
}

func TestRestClientConnectionError(t *testing.T) {
	t.Parallel()

	rest := NewRestClient(config.SupabaseConfig{
		URL:        "http://127.0.0.1:1", // nothing listens here
		ServiceKey: "k",
		Timeout:    200 * time.Millisecond,
	})

	_, err := rest.Select(context.Background(), "rooms", SelectOptions{})
	require.ErrorIs(t, err, ErrConnection)
}
