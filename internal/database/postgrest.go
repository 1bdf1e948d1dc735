package database

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/casaluna/hotel/api/internal/config"
)

// RestClient is a table-oriented HTTP client speaking the PostgREST dialect
// against the Supabase REST endpoint. It sees the same logical dataset as
// the primary pool.
type RestClient struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// NewRestClient creates a REST client from Supabase configuration
func NewRestClient(cfg config.SupabaseConfig) *RestClient {
	return &RestClient{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		serviceKey: cfg.ServiceKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Filter is a single PostgREST column filter, e.g. {Column: "email", Op: "eq", Value: "a@b.c"}
type Filter struct {
	Column string
	Op     string
	Value  string
}

// SelectOptions controls a REST read
type SelectOptions struct {
	Filters []Filter
	Order   string // PostgREST order clause, e.g. "created_at.desc"
	Limit   int
}

// Select reads rows from table
func (c *RestClient) Select(ctx context.Context, table string, opts SelectOptions) ([]Row, error) {
	q := url.Values{}
	q.Set("select", "*")
	for _, f := range opts.Filters {
		q.Set(f.Column, f.Op+"."+f.Value)
	}
	if opts.Order != "" {
		q.Set("order", opts.Order)
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}

	body, err := c.do(ctx, http.MethodGet, table, q, nil, nil)
	if err != nil {
		return nil, err
	}

	var rows []Row
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("%w: decoding %s response: %v", ErrQuery, table, err)
	}
	if rows == nil {
		rows = []Row{}
	}
	return rows, nil
}

// Insert writes a single row into table and returns the created row,
// including generated columns (id, created_at).
func (c *RestClient) Insert(ctx context.Context, table string, record Row) (Row, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding %s insert: %v", ErrQuery, table, err)
	}

	headers := map[string]string{
		"Content-Type": "application/json",
		"Prefer":       "return=representation",
	}
	body, err := c.do(ctx, http.MethodPost, table, nil, bytes.NewReader(payload), headers)
	if err != nil {
		return nil, err
	}

	var rows []Row
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("%w: decoding %s insert response: %v", ErrQuery, table, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s insert returned no row", ErrQuery, table)
	}
	return rows[0], nil
}

// Probe issues a zero-row select against table. A 2xx response means the
// table exists; PostgREST answers 404 for unknown tables.
func (c *RestClient) Probe(ctx context.Context, table string) error {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("limit", "1")
	_, err := c.do(ctx, http.MethodGet, table, q, nil, nil)
	return err
}

func (c *RestClient) do(ctx context.Context, method, table string, query url.Values, body io.Reader, headers map[string]string) ([]byte, error) {
	endpoint := c.baseURL + "/rest/v1/" + table
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s response: %v", ErrQuery, table, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s: status %d: %s", ErrQuery, table, resp.StatusCode, excerpt(string(data)))
	}
	return data, nil
}
