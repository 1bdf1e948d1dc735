package repository

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/casaluna/hotel/api/internal/database"
)

// rowString reads a string column, tolerating nil
func rowString(r database.Row, key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// rowNullString reads a nullable string column as a pointer
func rowNullString(r database.Row, key string) *string {
	if v, ok := r[key].(string); ok {
		return &v
	}
	return nil
}

// rowInt64 reads an integer column from any backend representation
func rowInt64(r database.Row, key string) int64 {
	switch v := r[key].(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case int:
		return int64(v)
	case float64:
		// REST fallback: JSON numbers decode as float64
		return int64(v)
	case string:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return 0
}

// rowInt reads an integer column as int
func rowInt(r database.Row, key string) int {
	return int(rowInt64(r, key))
}

// rowFloat reads a numeric column. PostgreSQL numeric arrives as
// pgtype.Numeric on the primary path and as float64 or a decimal string on
// the fallback path.
func rowFloat(r database.Row, key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case pgtype.Numeric:
		if f, err := v.Float64Value(); err == nil && f.Valid {
			return f.Float64
		}
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return 0
}

// rowBool reads a boolean column
func rowBool(r database.Row, key string) bool {
	if v, ok := r[key].(bool); ok {
		return v
	}
	return false
}

// rowTime reads a timestamp column, accepting time.Time from pgx and
// RFC 3339 strings from the REST fallback
func rowTime(r database.Row, key string) time.Time {
	switch v := r[key].(type) {
	case time.Time:
		return v
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.999999", "2006-01-02"} {
			if t, err := time.Parse(layout, v); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}

// rowStringSlice reads a text[]/json array column
func rowStringSlice(r database.Row, key string) []string {
	switch v := r[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		var out []string
		if err := json.Unmarshal([]byte(v), &out); err == nil {
			return out
		}
	}
	return nil
}

// firstRow returns the first row of a result, or nil when empty
func firstRow(res *database.Result) database.Row {
	if res == nil || len(res.Rows) == 0 {
		return nil
	}
	return res.Rows[0]
}
