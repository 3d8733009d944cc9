package tas

import (
	"sort"

	"github.com/mas-protocol/mas-go/pkg/convert"
)

// TAS fields are all defaulted: absence (or null) yields the schema
// default, but a present value of the wrong type still fails. These
// helpers express that on top of the shared primitive converters.

func defFloat(m map[string]any, p convert.Path, field string, def float64) (float64, error) {
	v, err := convert.Opt(m, p, field, convert.Float)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return def, nil
	}
	return *v, nil
}

func defBool(m map[string]any, p convert.Path, field string, def bool) (bool, error) {
	v, err := convert.Opt(m, p, field, convert.Bool)
	if err != nil {
		return false, err
	}
	if v == nil {
		return def, nil
	}
	return *v, nil
}

func defString(m map[string]any, p convert.Path, field, def string) (string, error) {
	v, err := convert.Opt(m, p, field, convert.String)
	if err != nil {
		return "", err
	}
	if v == nil {
		return def, nil
	}
	return *v, nil
}

// defEnum validates a present value against the closed set and falls
// back to def when absent. The original schema also treats an empty
// string as absent for enum-typed keys.
func defEnum[T ~string](m map[string]any, p convert.Path, field string, set convert.Enum[T], def T) (T, error) {
	raw, ok := m[field]
	if !ok || raw == nil || raw == "" {
		return def, nil
	}
	return set.Decode(p.Field(field), raw)
}

// putText sets key only when the string is non-empty, matching the
// empty-string-as-absent convention for free-text metadata.
func putText(m *convert.Map, key, v string) {
	if v != "" {
		m.Set(key, v)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
