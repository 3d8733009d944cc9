package convert

import (
	"encoding/json"
	"math"
)

// DecodeFunc converts an untyped wire value at path p into a typed value.
type DecodeFunc[T any] func(p Path, v any) (T, error)

// Float decodes a numeric value, widening integers to float64. Booleans are
// rejected even though some dynamic JSON representations conflate them with
// 0 and 1.
func Float(p Path, v any) (float64, error) {
	switch n := v.(type) {
	case bool:
		// A boolean must never satisfy a numeric field.
		return 0, mismatch(p, "number", v)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, mismatch(p, "number", v)
		}
		return f, nil
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	}
	return 0, mismatch(p, "number", v)
}

// Int decodes an integral value. Floats with a fractional part and booleans
// are rejected.
func Int(p Path, v any) (int, error) {
	switch n := v.(type) {
	case bool:
		return 0, mismatch(p, "integer", v)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), nil
		}
		// Exponent notation like 1e3 parses as float but may still be integral.
		f, err := n.Float64()
		if err != nil || f != math.Trunc(f) {
			return 0, mismatch(p, "integer", v)
		}
		return int(f), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, mismatch(p, "integer", v)
		}
		return int(n), nil
	}
	return 0, mismatch(p, "integer", v)
}

// Bool decodes a boolean literal.
func Bool(p Path, v any) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return false, mismatch(p, "boolean", v)
}

// String decodes a string literal.
func String(p Path, v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", mismatch(p, "string", v)
}

// Null succeeds only for the null/absent sentinel. It exists as the second
// alternative of Optional unions.
func Null(p Path, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	return nil, mismatch(p, "null", v)
}

// Object asserts that the value is a JSON object.
func Object(p Path, v any) (map[string]any, error) {
	if m, ok := v.(map[string]any); ok {
		return m, nil
	}
	return nil, mismatch(p, "object", v)
}

// List lifts an element decoder to a slice decoder. The result is non-nil
// even for an empty array: a present empty list is distinct from an absent
// one. Element failures are wrapped with their index.
func List[T any](elem DecodeFunc[T]) DecodeFunc[[]T] {
	return func(p Path, v any) ([]T, error) {
		arr, ok := v.([]any)
		if !ok {
			return nil, mismatch(p, "array", v)
		}
		out := make([]T, 0, len(arr))
		for i, e := range arr {
			val, err := elem(p.Index(i), e)
			if err != nil {
				return nil, &ListElementError{Path: p, Index: i, Err: err}
			}
			out = append(out, val)
		}
		return out, nil
	}
}
