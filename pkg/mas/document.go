package mas

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/mas-protocol/mas-go/pkg/convert"
)

// encMode is the CBOR encoder mode for MAS documents.
// Configured for deterministic encoding.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for MAS documents.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:      cbor.DupMapKeyQuiet,
		IndefLength:    cbor.IndefLengthAllowed,
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// decoder threads an optional autocomplete report through the entity
// decode methods. A nil report means strict decoding: a missing
// required field is an immediate error. A non-nil report records the
// missing field and substitutes the zero value so the walk can go on.
type decoder struct {
	report *convert.Report
}

// Mas is the document root: what the magnetic must do (Inputs), what
// was built (Magnetic), and what a solver computed (Outputs). Only
// Inputs is required. A nil Outputs slice means the field was absent;
// an empty non-nil slice round-trips as an explicit empty array.
type Mas struct {
	Inputs   Inputs
	Magnetic *Magnetic
	Outputs  []Outputs
}

func (d decoder) mas(p convert.Path, v any) (Mas, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return Mas{}, err
	}
	var out Mas
	if out.Inputs, err = convert.Req(m, p, "Mas", "inputs", d.inputs, d.report); err != nil {
		return Mas{}, err
	}
	if out.Magnetic, err = convert.Opt(m, p, "magnetic", d.magnetic); err != nil {
		return Mas{}, err
	}
	if out.Outputs, err = convert.OptSlice(m, p, "outputs", d.outputs); err != nil {
		return Mas{}, err
	}
	return out, nil
}

// FromValue decodes an already-parsed document value. Callers that
// parse their own transport format feed the result here.
func FromValue(v any) (*Mas, error) {
	doc, err := decoder{}.mas("", v)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// FromJSON decodes a MAS document from JSON bytes. Numbers are kept as
// json.Number during parsing so integral and fractional values stay
// distinguishable.
func FromJSON(data []byte) (*Mas, error) {
	v, err := parseJSON(data)
	if err != nil {
		return nil, err
	}
	return FromValue(v)
}

// FromYAML decodes a MAS document from YAML bytes.
func FromYAML(data []byte) (*Mas, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return FromValue(v)
}

// FromCBOR decodes a MAS document from CBOR bytes.
func FromCBOR(data []byte) (*Mas, error) {
	var v any
	if err := decMode.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse CBOR: %w", err)
	}
	return FromValue(v)
}

// Autocomplete decodes as much of a JSON document as it can, collecting
// the required fields it is missing instead of failing on the first one.
// Type errors are still fatal: a wrong value cannot be completed, only
// a missing one. The returned document has zero values in the reported
// positions.
func Autocomplete(data []byte) (*Mas, []convert.Pending, error) {
	v, err := parseJSON(data)
	if err != nil {
		return nil, nil, err
	}
	return AutocompleteValue(v)
}

// AutocompleteValue is Autocomplete for an already-parsed value.
func AutocompleteValue(v any) (*Mas, []convert.Pending, error) {
	var report convert.Report
	doc, err := decoder{report: &report}.mas("", v)
	if err != nil {
		return nil, nil, err
	}
	return &doc, report.Pending, nil
}

func parseJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return v, nil
}

// ToMap encodes the document in wire form, with fields in schema order
// and absent optionals omitted entirely.
func (m *Mas) ToMap() *convert.Map {
	out := convert.NewMap()
	out.Set("inputs", m.Inputs.ToMap())
	if m.Magnetic != nil {
		out.Set("magnetic", m.Magnetic.encode())
	}
	if m.Outputs != nil {
		outputs := make([]any, len(m.Outputs))
		for i, o := range m.Outputs {
			outputs[i] = o.encode()
		}
		out.Set("outputs", outputs)
	}
	return out
}

// ToJSON encodes the document to compact JSON.
func (m *Mas) ToJSON() ([]byte, error) {
	return json.Marshal(m.ToMap())
}

// ToJSONIndent encodes the document to indented JSON for display.
func (m *Mas) ToJSONIndent() ([]byte, error) {
	return json.MarshalIndent(m.ToMap(), "", "  ")
}

// ToYAML encodes the document to YAML.
func (m *Mas) ToYAML() ([]byte, error) {
	return yaml.Marshal(m.ToMap().Plain())
}

// ToCBOR encodes the document to canonical CBOR.
func (m *Mas) ToCBOR() ([]byte, error) {
	return encMode.Marshal(m.ToMap().Plain())
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
