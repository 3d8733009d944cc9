package convert

// Enum is a closed set of string literals for a named wire enum. Tables are
// built once at package init and never mutated; lookups are case-sensitive
// exact matches. The wire format is controlled, so ambiguity is a schema
// bug, not user input to be forgiving about.
type Enum[T ~string] struct {
	name     string
	literals []T
}

// NewEnum registers a closed literal table under a set name.
func NewEnum[T ~string](name string, literals ...T) Enum[T] {
	return Enum[T]{name: name, literals: literals}
}

// Name returns the enum set name used in error reports.
func (e Enum[T]) Name() string { return e.name }

// Literals returns the allowed wire spellings in registration order.
func (e Enum[T]) Literals() []string {
	out := make([]string, len(e.literals))
	for i, lit := range e.literals {
		out[i] = string(lit)
	}
	return out
}

// Decode matches a wire string against the literal table. Encoding needs no
// counterpart: variants are typed string constants, so the wire spelling is
// the registered literal itself, never recomputed.
func (e Enum[T]) Decode(p Path, v any) (T, error) {
	var zero T
	s, err := String(p, v)
	if err != nil {
		return zero, err
	}
	for _, lit := range e.literals {
		if string(lit) == s {
			return lit, nil
		}
	}
	return zero, &UnknownEnumError{Path: p, Set: e.name, Value: s, Allowed: e.Literals()}
}

// Valid reports whether v is a member of the literal table.
func (e Enum[T]) Valid(v T) bool {
	for _, lit := range e.literals {
		if lit == v {
			return true
		}
	}
	return false
}
