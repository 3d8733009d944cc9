package convert

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// Map is a JSON object that preserves key insertion order. Encoders append
// fields in declared order so that re-serialized documents are stable and
// minimal; absent optionals are never inserted at all.
type Map struct {
	keys []string
	vals map[string]any
}

// NewMap returns an empty ordered map.
func NewMap() *Map {
	return &Map{vals: make(map[string]any)}
}

// Set inserts or replaces a key. Replacing keeps the original position.
func (m *Map) Set(key string, v any) {
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = v
}

// Get returns the value for key, if present.
func (m *Map) Get(key string) (any, bool) {
	v, ok := m.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.vals[key]
	return ok
}

// Len returns the number of keys.
func (m *Map) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// MarshalJSON writes the object with keys in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m.vals[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Plain converts the map (recursively) to ordinary Go maps and slices, for
// encoders that impose their own key ordering, like canonical CBOR or YAML.
// Leaf values are normalized to wire-plain types: named string types (the
// typed enum constants encoders insert) flatten to string, and json.Number
// becomes int64 or float64, so a Plain map decodes again without a schema
// seeing Go type names.
func (m *Map) Plain() map[string]any {
	out := make(map[string]any, len(m.keys))
	for _, key := range m.keys {
		out[key] = plainValue(m.vals[key])
	}
	return out
}

func plainValue(v any) any {
	switch t := v.(type) {
	case *Map:
		return t.Plain()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plainValue(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = plainValue(e)
		}
		return out
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	}
	if rv := reflect.ValueOf(v); rv.IsValid() && rv.Kind() == reflect.String {
		return rv.String()
	}
	return v
}

// Put sets key to the pointed-to value when present, and omits the key
// entirely when v is nil. This is the mechanical form of the omission law:
// omit iff absent.
func Put[T any](m *Map, key string, v *T) {
	if v != nil {
		m.Set(key, *v)
	}
}
