package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Translator re-expresses a whitelist of raw-SQL statement shapes as calls
// on the REST client. It matches lowercased SQL text by substring in a fixed
// priority order per table — not a parser — which is only safe because every
// query it sees is hand-written in the repository package.
type Translator struct {
	rest *RestClient
}

// NewTranslator creates a translator over the given REST client
func NewTranslator(rest *RestClient) *Translator {
	return &Translator{rest: rest}
}

// selectShape maps one recognized SELECT to a REST read. Shapes for the same
// table are checked in slice order: the more specific predicate must come
// first, because both predicates may be substrings of the same query text.
type selectShape struct {
	name      string
	table     string
	predicate string // required substring; empty matches any query on the table
	build     func(params []any) (SelectOptions, error)
}

var selectShapes = []selectShape{
	{
		name:      "user-by-email",
		table:     "users",
		predicate: "where email =",
		build: func(params []any) (SelectOptions, error) {
			filters, err := eq("email", params, 0)
			if err != nil {
				return SelectOptions{}, err
			}
			return SelectOptions{Filters: filters, Limit: 1}, nil
		},
	},
	{
		name:      "user-by-id",
		table:     "users",
		predicate: "where id =",
		build: func(params []any) (SelectOptions, error) {
			filters, err := eq("id", params, 0)
			if err != nil {
				return SelectOptions{}, err
			}
			return SelectOptions{Filters: filters, Limit: 1}, nil
		},
	},
	{
		name:      "notification-bars-active",
		table:     "notification_bars",
		predicate: "where is_active = true",
		build: func(params []any) (SelectOptions, error) {
			return SelectOptions{
				Filters: []Filter{{Column: "is_active", Op: "is", Value: "true"}},
				Order:   "created_at.desc",
			}, nil
		},
	},
	{
		name:  "notification-bars",
		table: "notification_bars",
		build: func(params []any) (SelectOptions, error) {
			return SelectOptions{Order: "created_at.desc"}, nil
		},
	},
	{
		name:      "rooms-by-number",
		table:     "rooms",
		predicate: "where room_number =",
		build: func(params []any) (SelectOptions, error) {
			filters, err := eq("room_number", params, 0)
			if err != nil {
				return SelectOptions{}, err
			}
			return SelectOptions{Filters: filters, Order: "room_number.asc"}, nil
		},
	},
	{
		name:  "rooms",
		table: "rooms",
		build: func(params []any) (SelectOptions, error) {
			return SelectOptions{Order: "room_number.asc"}, nil
		},
	},
	{
		name:      "menu-items-by-category",
		table:     "menu_items",
		predicate: "where category =",
		build: func(params []any) (SelectOptions, error) {
			filters, err := eq("category", params, 0)
			if err != nil {
				return SelectOptions{}, err
			}
			return SelectOptions{Filters: filters}, nil
		},
	},
	{
		name:  "menu-items",
		table: "menu_items",
		build: func(params []any) (SelectOptions, error) {
			return SelectOptions{}, nil
		},
	},
	{
		name:      "menu-images-by-category",
		table:     "menu_images",
		predicate: "where category =",
		build: func(params []any) (SelectOptions, error) {
			filters, err := eq("category", params, 0)
			if err != nil {
				return SelectOptions{}, err
			}
			return SelectOptions{Filters: filters}, nil
		},
	},
	{
		name:  "menu-images",
		table: "menu_images",
		build: func(params []any) (SelectOptions, error) {
			return SelectOptions{}, nil
		},
	},
	{
		name:      "gallery-images-by-category",
		table:     "gallery_images",
		predicate: "where category =",
		build: func(params []any) (SelectOptions, error) {
			filters, err := eq("category", params, 0)
			if err != nil {
				return SelectOptions{}, err
			}
			return SelectOptions{Filters: filters}, nil
		},
	},
	{
		name:  "gallery-images",
		table: "gallery_images",
		build: func(params []any) (SelectOptions, error) {
			return SelectOptions{}, nil
		},
	},
	{
		name:  "contact-messages",
		table: "contact_messages",
		build: func(params []any) (SelectOptions, error) {
			return SelectOptions{Order: "created_at.desc"}, nil
		},
	},
}

// insertColumns maps each insertable table to its column order.
//
// The positional $1, $2, ... parameters are mapped to these columns in the
// exact order the repository call sites list them. Adding or reordering
// columns in a repository INSERT silently breaks the fallback unless this
// table is updated in lockstep.
var insertColumns = map[string][]string{
	"contact_messages":  {"name", "email", "phone", "subject", "message"},
	"notification_bars": {"message", "type", "is_active"},
	"rooms":             {"room_number", "room_type", "description", "price_per_night", "capacity", "amenities", "image_url", "is_available"},
	"menu_items":        {"name", "description", "price", "category", "image_url", "is_available", "preparation_time"},
	"menu_images":       {"title", "category", "image_url"},
	"gallery_images":    {"title", "description", "category", "image_url"},
}

// Translate services (sql, params) through the REST client. Statement shapes
// outside the whitelist return ErrUnsupportedQuery with a truncated excerpt
// of the SQL — never the parameter values.
func (t *Translator) Translate(ctx context.Context, sql string, params []any) (*Result, error) {
	q := strings.ToLower(strings.TrimSpace(sql))

	switch {
	case strings.HasPrefix(q, "select"):
		return t.translateSelect(ctx, q, params)
	case strings.HasPrefix(q, "insert"):
		return t.translateInsert(ctx, q, params)
	case strings.HasPrefix(q, "update"), strings.HasPrefix(q, "delete"):
		// Mutation fallback is deliberately unimplemented. Callers relying
		// on the fallback for UPDATE/DELETE must know this ahead of time.
		slog.Warn("update/delete fallback is not supported, no rows were modified",
			slog.String("query", excerpt(q)),
		)
		return &Result{Rows: []Row{}, RowCount: 0}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedQuery, excerpt(q))
}

func (t *Translator) translateSelect(ctx context.Context, q string, params []any) (*Result, error) {
	for _, shape := range selectShapes {
		if !strings.Contains(q, "from "+shape.table) {
			continue
		}
		if shape.predicate != "" && !strings.Contains(q, shape.predicate) {
			continue
		}
		// A bare shape covers unfiltered list queries only. Letting it match a
		// query with a WHERE clause would silently drop the filter and return
		// every row, so filtered queries outside the whitelist stay unsupported.
		if shape.predicate == "" && strings.Contains(q, "where") {
			continue
		}

		opts, err := shape.build(params)
		if err != nil {
			return nil, fmt.Errorf("shape %s: %w", shape.name, err)
		}

		rows, err := t.rest.Select(ctx, shape.table, opts)
		if err != nil {
			return nil, fmt.Errorf("shape %s: %w", shape.name, err)
		}
		return &Result{Rows: rows, RowCount: len(rows)}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedQuery, excerpt(q))
}

func (t *Translator) translateInsert(ctx context.Context, q string, params []any) (*Result, error) {
	table := insertTable(q)
	columns, ok := insertColumns[table]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedQuery, excerpt(q))
	}
	if len(params) != len(columns) {
		return nil, fmt.Errorf("%w: %s expects %d params, got %d", ErrUnsupportedQuery, table, len(columns), len(params))
	}

	record := make(Row, len(columns))
	for i, col := range columns {
		record[col] = params[i]
	}

	created, err := t.rest.Insert(ctx, table, record)
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", table, err)
	}
	return &Result{Rows: []Row{created}, RowCount: 1}, nil
}

// insertTable extracts the table name following "insert into"
func insertTable(q string) string {
	rest, ok := strings.CutPrefix(q, "insert")
	if !ok {
		return ""
	}
	rest = strings.TrimSpace(rest)
	rest, ok = strings.CutPrefix(rest, "into")
	if !ok {
		return ""
	}
	fields := strings.FieldsFunc(strings.TrimSpace(rest), func(r rune) bool {
		return r == ' ' || r == '(' || r == '\n' || r == '\t'
	})
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// eq builds a single equality filter from a positional parameter. A missing
// parameter is an error: dropping the filter would execute the query
// unfiltered and return every row.
func eq(column string, params []any, idx int) ([]Filter, error) {
	if idx >= len(params) {
		return nil, fmt.Errorf("%w: missing parameter for %s filter", ErrUnsupportedQuery, column)
	}
	return []Filter{{Column: column, Op: "eq", Value: fmt.Sprintf("%v", params[idx])}}, nil
}
