package tas

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mas-protocol/mas-go/pkg/convert"
)

// Metadata is the document header.
type Metadata struct {
	Name        string
	Version     string
	Description string
	Author      string
	Created     string
	Modified    string
}

func decodeMetadata(p convert.Path, v any) (Metadata, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return Metadata{}, err
	}
	var out Metadata
	if out.Name, err = defString(m, p, "name", ""); err != nil {
		return Metadata{}, err
	}
	if out.Version, err = defString(m, p, "version", "0.1.0"); err != nil {
		return Metadata{}, err
	}
	if out.Description, err = defString(m, p, "description", ""); err != nil {
		return Metadata{}, err
	}
	if out.Author, err = defString(m, p, "author", ""); err != nil {
		return Metadata{}, err
	}
	if out.Created, err = defString(m, p, "created", ""); err != nil {
		return Metadata{}, err
	}
	if out.Modified, err = defString(m, p, "modified", ""); err != nil {
		return Metadata{}, err
	}
	return out, nil
}

func (md Metadata) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("name", md.Name)
	m.Set("version", md.Version)
	putText(m, "description", md.Description)
	putText(m, "author", md.Author)
	putText(m, "created", md.Created)
	putText(m, "modified", md.Modified)
	return m
}

// Document is the TAS root: metadata, inputs, discrete components and
// results for a basic DC-DC converter.
type Document struct {
	Metadata   Metadata
	Inputs     Inputs
	Components Components
	Outputs    *Outputs
}

// FromValue decodes an already-parsed document value. Every section is
// optional; an empty object yields a document of schema defaults.
func FromValue(v any) (*Document, error) {
	m, err := convert.Object("", v)
	if err != nil {
		return nil, err
	}
	var doc Document
	if raw, ok := m["metadata"]; ok && raw != nil {
		if doc.Metadata, err = decodeMetadata(convert.Path("metadata"), raw); err != nil {
			return nil, err
		}
	} else {
		doc.Metadata = Metadata{Version: "0.1.0"}
	}
	if raw, ok := m["inputs"]; ok && raw != nil {
		if doc.Inputs, err = decodeInputs(convert.Path("inputs"), raw); err != nil {
			return nil, err
		}
	} else {
		doc.Inputs = Inputs{Requirements: Requirements{EfficiencyTarget: 0.9}}
	}
	if raw, ok := m["components"]; ok && raw != nil {
		if doc.Components, err = decodeComponents(convert.Path("components"), raw); err != nil {
			return nil, err
		}
	}
	var out *Outputs
	if out, err = convert.Opt(m, "", "outputs", decodeOutputs); err != nil {
		return nil, err
	}
	doc.Outputs = out
	return &doc, nil
}

// FromJSON decodes a TAS document from JSON bytes.
func FromJSON(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return FromValue(v)
}

// FromYAML decodes a TAS document from YAML bytes.
func FromYAML(data []byte) (*Document, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return FromValue(v)
}

// ToMap encodes the document in wire form. Metadata and inputs are
// always present; an empty component list and absent outputs are
// omitted.
func (d *Document) ToMap() *convert.Map {
	m := convert.NewMap()
	m.Set("metadata", d.Metadata.encode())
	m.Set("inputs", d.Inputs.encode())
	if !d.Components.Empty() {
		m.Set("components", d.Components.encode())
	}
	if d.Outputs != nil {
		m.Set("outputs", d.Outputs.encode())
	}
	return m
}

// ToJSON encodes the document to compact JSON.
func (d *Document) ToJSON() ([]byte, error) {
	return json.Marshal(d.ToMap())
}

// ToJSONIndent encodes the document to indented JSON for display.
func (d *Document) ToJSONIndent() ([]byte, error) {
	return json.MarshalIndent(d.ToMap(), "", "  ")
}

// ToYAML encodes the document to YAML.
func (d *Document) ToYAML() ([]byte, error) {
	return yaml.Marshal(d.ToMap().Plain())
}

// NewBuck creates a buck converter document with a nominal operating
// point at the given switching frequency.
func NewBuck(name string, vinMin, vinMax, vout, iout, frequency float64) *Document {
	now := time.Now().Format(time.RFC3339)
	duty := vout / ((vinMin + vinMax) / 2)
	return &Document{
		Metadata: Metadata{
			Name:        name,
			Version:     "0.1.0",
			Description: "Buck converter design",
			Created:     now,
			Modified:    now,
		},
		Inputs: Inputs{
			Requirements: Requirements{
				VinMin:           vinMin,
				VinMax:           vinMax,
				Vout:             vout,
				IoutMax:          iout,
				EfficiencyTarget: 0.9,
			},
			OperatingPoints: []OperatingPoint{nominalPoint(frequency, duty)},
		},
	}
}

// NewBoost creates a boost converter document.
func NewBoost(name string, vinMin, vinMax, vout, iout, frequency float64) *Document {
	now := time.Now().Format(time.RFC3339)
	vinNom := (vinMin + vinMax) / 2
	duty := 0.5
	if vout > vinNom {
		duty = 1 - vinNom/vout
	}
	return &Document{
		Metadata: Metadata{
			Name:        name,
			Version:     "0.1.0",
			Description: "Boost converter design",
			Created:     now,
			Modified:    now,
		},
		Inputs: Inputs{
			Requirements: Requirements{
				VinMin:           vinMin,
				VinMax:           vinMax,
				Vout:             vout,
				IoutMax:          iout,
				EfficiencyTarget: 0.9,
			},
			OperatingPoints: []OperatingPoint{nominalPoint(frequency, duty)},
		},
	}
}

// NewFlyback creates an isolated flyback converter document. The basic
// isolation requirement defaults to 1500 V.
func NewFlyback(name string, vinMin, vinMax, vout, iout, frequency, turnsRatio float64) *Document {
	now := time.Now().Format(time.RFC3339)
	vinNom := (vinMin + vinMax) / 2
	duty := (vout * turnsRatio) / (vinNom + vout*turnsRatio)
	isolation := 1500.0
	return &Document{
		Metadata: Metadata{
			Name:        name,
			Version:     "0.1.0",
			Description: "Flyback converter design",
			Created:     now,
			Modified:    now,
		},
		Inputs: Inputs{
			Requirements: Requirements{
				VinMin:           vinMin,
				VinMax:           vinMax,
				Vout:             vout,
				IoutMax:          iout,
				EfficiencyTarget: 0.9,
				IsolationVoltage: &isolation,
			},
			OperatingPoints: []OperatingPoint{nominalPoint(frequency, duty)},
		},
	}
}

func nominalPoint(frequency, duty float64) OperatingPoint {
	return OperatingPoint{
		Name:               "nominal",
		Frequency:          frequency,
		DutyCycle:          &duty,
		Mode:               OperatingModeCCM,
		AmbientTemperature: 25,
	}
}
