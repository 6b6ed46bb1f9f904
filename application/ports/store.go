// Package ports declares the boundaries the application services depend
// on. Implementations live under infrastructure.
package ports

import "context"

// Record is one result row: a mapping from declared return alias to a
// decoded value. Node values arrive as map[string]any of their
// properties; lists arrive as []any.
type Record map[string]any

// String returns the value under key as a string, or "".
func (r Record) String(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// Int returns the value under key as an int64, or 0.
func (r Record) Int(key string) int64 {
	switch v := r[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

// Map returns the value under key as a property map, or nil.
func (r Record) Map(key string) map[string]any {
	if v, ok := r[key].(map[string]any); ok {
		return v
	}
	return nil
}

// List returns the value under key as a slice, or nil.
func (r Record) List(key string) []any {
	if v, ok := r[key].([]any); ok {
		return v
	}
	return nil
}

// Executor runs a parameterized query against the graph store and
// returns the decoded result rows. Transient connectivity failures are
// retried inside the implementation; callers see either rows or a final
// error. A query matching nothing yields an empty slice, not an error.
type Executor interface {
	Execute(ctx context.Context, query string, params map[string]any) ([]Record, error)
}
