package convert

// Pending marks a required field that was absent during a partial decode.
type Pending struct {
	Path   Path
	Entity string
	Field  string
}

// Report collects pending fields during autocomplete (partial) decoding.
// A nil *Report selects strict semantics: a missing required field fails
// the decode instead of being recorded.
type Report struct {
	Pending []Pending
}

// Missing records a required field absent at p.
func (r *Report) Missing(p Path, entity, field string) {
	r.Pending = append(r.Pending, Pending{Path: p, Entity: entity, Field: field})
}

// Req looks up a required field. An absent key (or explicit null) fails with
// MissingFieldError under strict decode, or is recorded on the report and
// zero-filled under partial decode. Decode failures of present values are
// fatal in both modes.
func Req[T any](m map[string]any, p Path, entity, field string, d DecodeFunc[T], r *Report) (T, error) {
	raw, ok := m[field]
	if !ok || raw == nil {
		var zero T
		if r != nil {
			r.Missing(p, entity, field)
			return zero, nil
		}
		return zero, &MissingFieldError{Entity: entity, Field: field, Path: p}
	}
	return d(p.Field(field), raw)
}

// Opt looks up an optional field. Optional decoding is the two-alternative
// union [T, null] tried in that order: a present non-null value must decode
// as T, and only a missing key or explicit null yields absence.
func Opt[T any](m map[string]any, p Path, field string, d DecodeFunc[T]) (*T, error) {
	raw, ok := m[field]
	if !ok || raw == nil {
		return nil, nil
	}
	v, err := d(p.Field(field), raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// OptSlice looks up an optional list field. Absent yields a nil slice; a
// present empty array yields a non-nil empty slice, preserving the
// present-but-empty vs absent distinction through a round trip.
func OptSlice[T any](m map[string]any, p Path, field string, elem DecodeFunc[T]) ([]T, error) {
	raw, ok := m[field]
	if !ok || raw == nil {
		return nil, nil
	}
	return List(elem)(p.Field(field), raw)
}
