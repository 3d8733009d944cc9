package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Sentinel error kinds. Every structured decode error unwraps to one of
// these, so callers can classify failures with errors.Is without depending
// on the concrete struct types.
var (
	ErrTypeMismatch   = errors.New("type mismatch")
	ErrMissingField   = errors.New("missing required field")
	ErrUnknownEnum    = errors.New("unknown enum value")
	ErrUnionExhausted = errors.New("no union alternative matched")
)

// TypeMismatchError reports a value whose runtime type cannot satisfy the
// expected wire type.
type TypeMismatchError struct {
	Path     Path
	Expected string
	Actual   string
	Value    any
}

func (e *TypeMismatchError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("type mismatch at %s: expected %s, got %s (%v)", e.Path, e.Expected, e.Actual, e.Value)
	}
	return fmt.Sprintf("type mismatch at %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// MissingFieldError reports a required key absent during strict decode.
// Path addresses the entity that declared the field, not the field itself.
type MissingFieldError struct {
	Entity string
	Field  string
	Path   Path
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %s.%s at %s", e.Entity, e.Field, e.Path)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// UnknownEnumError reports a string outside an enum's closed literal set.
type UnknownEnumError struct {
	Path    Path
	Set     string
	Value   string
	Allowed []string
}

func (e *UnknownEnumError) Error() string {
	return fmt.Sprintf("unknown %s value %q at %s (allowed: %s)",
		e.Set, e.Value, e.Path, strings.Join(e.Allowed, ", "))
}

func (e *UnknownEnumError) Unwrap() error { return ErrUnknownEnum }

// UnionError reports that every alternative of a union failed. All
// per-alternative failures are retained: the wrong earlier failure is often
// the most informative one when debugging a malformed document.
type UnionError struct {
	Path   Path
	Union  string
	Causes []error
}

func (e *UnionError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "no %s alternative matched at %s:", e.Union, e.Path)
	for i, cause := range e.Causes {
		fmt.Fprintf(&sb, " [%d] %v;", i, cause)
	}
	return strings.TrimSuffix(sb.String(), ";")
}

func (e *UnionError) Unwrap() error { return ErrUnionExhausted }

// ListElementError wraps a decode failure at a specific list position.
type ListElementError struct {
	Path  Path
	Index int
	Err   error
}

func (e *ListElementError) Error() string {
	return fmt.Sprintf("element %d of %s: %v", e.Index, e.Path, e.Err)
}

func (e *ListElementError) Unwrap() error { return e.Err }

// typeName classifies a decoded value's runtime type in wire-format terms.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case json.Number, float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func mismatch(p Path, expected string, v any) *TypeMismatchError {
	return &TypeMismatchError{Path: p, Expected: expected, Actual: typeName(v), Value: v}
}
