package mas

import (
	"errors"
	"strings"
	"testing"

	"github.com/mas-protocol/mas-go/pkg/convert"
)

const minimalDoc = `{
	"inputs": {
		"designRequirements": {
			"magnetizingInductance": {"nominal": 1.0e-4},
			"turnsRatios": [{"nominal": 0.5}]
		},
		"operatingPoints": [{
			"conditions": {"ambientTemperature": 25},
			"excitationsPerWinding": [{
				"frequency": 100000,
				"current": {"processed": {"label": "Triangular", "offset": 0, "peakToPeak": 10}}
			}]
		}]
	}
}`

func TestFromJSONMinimal(t *testing.T) {
	doc, err := FromJSON([]byte(minimalDoc))
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	dr := doc.Inputs.DesignRequirements
	if dr.MagnetizingInductance.Nominal != 1.0e-4 {
		t.Errorf("magnetizingInductance.nominal = %v, want 1e-4", dr.MagnetizingInductance.Nominal)
	}
	if len(dr.TurnsRatios) != 1 || dr.TurnsRatios[0].Nominal != 0.5 {
		t.Errorf("turnsRatios = %+v, want one entry with nominal 0.5", dr.TurnsRatios)
	}
	ops := doc.Inputs.OperatingPoints
	if len(ops) != 1 {
		t.Fatalf("got %d operating points, want 1", len(ops))
	}
	exc := ops[0].ExcitationsPerWinding
	if len(exc) != 1 || exc[0].Frequency != 100000 {
		t.Fatalf("excitations = %+v, want one at 100 kHz", exc)
	}
	proc := exc[0].Current.Processed
	if proc == nil || proc.Label != WaveformLabelTriangular {
		t.Errorf("current.processed.label = %+v, want Triangular", proc)
	}
	if proc.PeakToPeak == nil || *proc.PeakToPeak != 10 {
		t.Errorf("current.processed.peakToPeak = %v, want 10", proc.PeakToPeak)
	}
	if doc.Magnetic != nil {
		t.Error("magnetic should be absent")
	}
	if doc.Outputs != nil {
		t.Error("outputs should be absent")
	}
}

func TestIntegerNominalDecodesAsFloat(t *testing.T) {
	// Scenario: {"nominal": 100} with an integer literal must land as 100.0.
	d, err := decoder{}.dimensionWithTolerance("", mustParse(t, `{"nominal": 100}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if d.Nominal != 100.0 {
		t.Errorf("nominal = %v, want 100.0", d.Nominal)
	}
}

func TestProcessedOmitsAbsentStatistics(t *testing.T) {
	p, err := decoder{}.processed("", mustParse(t, `{"label": "Sinusoidal", "offset": 0, "rms": 3.54}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	m := p.encode()
	for _, key := range []string{"peakToPeak", "thd", "peak", "dutyCycle", "average"} {
		if m.Has(key) {
			t.Errorf("encoded processed should omit %q", key)
		}
	}
	for _, key := range []string{"label", "offset", "rms"} {
		if !m.Has(key) {
			t.Errorf("encoded processed should carry %q", key)
		}
	}
}

func TestMissingTurnsRatiosFails(t *testing.T) {
	_, err := decoder{}.designRequirements("", mustParse(t, `{"magnetizingInductance": {"nominal": 1e-4}}`))
	var missing *convert.MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("got %v, want MissingFieldError", err)
	}
	if missing.Entity != "DesignRequirements" || missing.Field != "turnsRatios" {
		t.Errorf("got entity=%q field=%q, want DesignRequirements.turnsRatios", missing.Entity, missing.Field)
	}
}

func TestUnknownInsulationType(t *testing.T) {
	_, err := decoder{}.insulationRequirements("", mustParse(t, `{"insulationType": "Superb"}`))
	var unknown *convert.UnknownEnumError
	if !errors.As(err, &unknown) {
		t.Fatalf("got %v, want UnknownEnumError", err)
	}
	if unknown.Set != "InsulationType" || unknown.Value != "Superb" {
		t.Errorf("got set=%q value=%q", unknown.Set, unknown.Value)
	}
	if len(unknown.Allowed) != 5 {
		t.Errorf("allowed = %v, want the five insulation types", unknown.Allowed)
	}
}

func TestExcitationListErrorCarriesIndex(t *testing.T) {
	raw := `{
		"conditions": {"ambientTemperature": 25},
		"excitationsPerWinding": [
			{"frequency": 100000},
			{"name": "secondary"}
		]
	}`
	_, err := decoder{}.operatingPoint("", mustParse(t, raw))
	var le *convert.ListElementError
	if !errors.As(err, &le) {
		t.Fatalf("got %v, want ListElementError", err)
	}
	if le.Index != 1 {
		t.Errorf("index = %d, want 1", le.Index)
	}
	var missing *convert.MissingFieldError
	if !errors.As(le.Err, &missing) || missing.Field != "frequency" {
		t.Errorf("cause = %v, want missing frequency", le.Err)
	}
}

func TestRoundTripJSON(t *testing.T) {
	doc, err := FromJSON([]byte(minimalDoc))
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	out, err := doc.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	again, err := FromJSON(out)
	if err != nil {
		t.Fatalf("re-decode failed: %v", err)
	}
	out2, err := again.ToJSON()
	if err != nil {
		t.Fatalf("re-encode failed: %v", err)
	}
	if string(out) != string(out2) {
		t.Errorf("encode is not a fixed point:\n%s\n%s", out, out2)
	}
}

func TestExplicitNullCollapsesToOmitted(t *testing.T) {
	raw := `{"nominal": 1.0, "minimum": null}`
	d, err := decoder{}.dimensionWithTolerance("", mustParse(t, raw))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if d.Minimum != nil {
		t.Fatal("explicit null should decode as absent")
	}
	if d.encode().Has("minimum") {
		t.Error("re-encode should omit the null-valued key")
	}
}

func TestEmptyTurnsRatiosStaysEmpty(t *testing.T) {
	raw := `{"magnetizingInductance": {"nominal": 1e-4}, "turnsRatios": []}`
	dr, err := decoder{}.designRequirements("", mustParse(t, raw))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if dr.TurnsRatios == nil {
		t.Fatal("empty list must decode non-nil")
	}
	if len(dr.TurnsRatios) != 0 {
		t.Fatalf("got %d ratios, want 0", len(dr.TurnsRatios))
	}
	m := dr.encode()
	if !m.Has("turnsRatios") {
		t.Error("re-encode must keep the empty turnsRatios key")
	}
}

func TestWireUnionPrefersString(t *testing.T) {
	w, err := decoder{}.wire("", "Round 0.5")
	if err != nil {
		t.Fatalf("string wire failed: %v", err)
	}
	if w.Name != "Round 0.5" || w.Details != nil {
		t.Errorf("wire = %+v, want bare name", w)
	}

	obj := mustParse(t, `{"type": "round", "numberConductors": 1, "conductingDiameter": {"nominal": 0.0005}}`)
	w, err = decoder{}.wire("", obj)
	if err != nil {
		t.Fatalf("object wire failed: %v", err)
	}
	if w.Details == nil || w.Details.Type != "round" {
		t.Fatalf("wire = %+v, want details", w)
	}
	if w.Details.ConductingDiameter.Nominal != 0.0005 {
		t.Errorf("conductingDiameter = %v", w.Details.ConductingDiameter)
	}
}

func TestWireUnionReportsAllArmFailures(t *testing.T) {
	_, err := decoder{}.wire("", 42)
	var ue *convert.UnionError
	if !errors.As(err, &ue) {
		t.Fatalf("got %v, want UnionError", err)
	}
	if ue.Union != "Wire" || len(ue.Causes) != 2 {
		t.Errorf("union = %q with %d causes, want Wire with 2", ue.Union, len(ue.Causes))
	}
}

func TestMagneticDecode(t *testing.T) {
	raw := `{
		"core": {
			"functionalDescription": {
				"material": "3C97",
				"shape": "ETD 29/16/10",
				"gapping": [{"length": 0.0005, "type": "subtractive"}]
			}
		},
		"coil": {
			"bobbin": "Basic",
			"functionalDescription": [{
				"name": "primary",
				"numberTurns": 24,
				"numberParallels": 1,
				"isolationSide": "primary",
				"wire": "Round 0.5"
			}]
		}
	}`
	mg, err := decoder{}.magnetic("", mustParse(t, raw))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if mg.Core.FunctionalDescription.Material != "3C97" {
		t.Errorf("material = %q", mg.Core.FunctionalDescription.Material)
	}
	if mg.Core.FunctionalDescription.Shape.Name != "ETD 29/16/10" {
		t.Errorf("shape = %+v", mg.Core.FunctionalDescription.Shape)
	}
	gaps := mg.Core.FunctionalDescription.Gapping
	if len(gaps) != 1 || gaps[0].Type != GapTypeSubtractive {
		t.Errorf("gapping = %+v", gaps)
	}
	windings := mg.Coil.FunctionalDescription
	if len(windings) != 1 || windings[0].IsolationSide != IsolationSidePrimary {
		t.Errorf("windings = %+v", windings)
	}
}

const magneticDoc = `{
	"inputs": {
		"designRequirements": {
			"magnetizingInductance": {"nominal": 1.0e-4},
			"turnsRatios": [{"nominal": 0.5}]
		},
		"operatingPoints": [{
			"conditions": {"ambientTemperature": 25},
			"excitationsPerWinding": [{
				"frequency": 100000,
				"current": {"processed": {"label": "Triangular", "offset": 0, "peakToPeak": 10}}
			}]
		}]
	},
	"magnetic": {
		"core": {
			"functionalDescription": {
				"material": "3C97",
				"shape": "ETD 29/16/10",
				"gapping": [{"length": 0.0005, "type": "subtractive"}]
			}
		},
		"coil": {
			"bobbin": {"name": "Custom", "columnThickness": 0.001},
			"functionalDescription": [{
				"name": "primary",
				"numberTurns": 24,
				"numberParallels": 1,
				"isolationSide": "primary",
				"wire": "Round 0.5"
			}]
		}
	}
}`

func TestPlainOutputDecodesAgain(t *testing.T) {
	doc, err := FromJSON([]byte(magneticDoc))
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	again, err := FromValue(doc.ToMap().Plain())
	if err != nil {
		t.Fatalf("Plain output should decode: %v", err)
	}
	gaps := again.Magnetic.Core.FunctionalDescription.Gapping
	if len(gaps) != 1 || gaps[0].Type != GapTypeSubtractive {
		t.Errorf("gapping = %+v", gaps)
	}
	windings := again.Magnetic.Coil.FunctionalDescription
	if len(windings) != 1 || windings[0].IsolationSide != IsolationSidePrimary {
		t.Errorf("windings = %+v", windings)
	}
}

func TestBobbinNumbersStayNumbers(t *testing.T) {
	doc, err := FromJSON([]byte(magneticDoc))
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	plain := doc.ToMap().Plain()
	magnetic := plain["magnetic"].(map[string]any)
	coil := magnetic["coil"].(map[string]any)
	bobbin := coil["bobbin"].(map[string]any)
	if got, ok := bobbin["columnThickness"].(float64); !ok || got != 0.001 {
		t.Errorf("columnThickness = %v (%T), want float64 0.001", bobbin["columnThickness"], bobbin["columnThickness"])
	}
	y, err := doc.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML failed: %v", err)
	}
	if !strings.Contains(string(y), "columnThickness: 0.001") {
		t.Errorf("YAML should carry an unquoted number:\n%s", y)
	}
}

func TestShapeKeepsItsInputForm(t *testing.T) {
	raw := strings.Replace(magneticDoc, `"shape": "ETD 29/16/10"`, `"shape": {"name": "ETD 49"}`, 1)
	doc, err := FromJSON([]byte(raw))
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	out, err := doc.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(string(out), `"shape":{"name":"ETD 49"}`) {
		t.Errorf("object shape should re-encode as an object, got %s", out)
	}

	doc, err = FromJSON([]byte(magneticDoc))
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	out, err = doc.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(string(out), `"shape":"ETD 29/16/10"`) {
		t.Errorf("string shape should stay a string, got %s", out)
	}
}

func TestErrorPathIsDotted(t *testing.T) {
	raw := strings.Replace(minimalDoc, `"offset": 0`, `"offset": true`, 1)
	_, err := FromJSON([]byte(raw))
	if err == nil {
		t.Fatal("expected decode failure")
	}
	want := "inputs.operatingPoints[0].excitationsPerWinding[0].current.processed.offset"
	if !strings.Contains(err.Error(), want) {
		t.Errorf("error %q does not locate %q", err, want)
	}
	if !errors.Is(err, convert.ErrTypeMismatch) {
		t.Errorf("boolean offset should be a type mismatch, got %v", err)
	}
}

func TestAutocompleteCollectsMissing(t *testing.T) {
	raw := `{
		"inputs": {
			"designRequirements": {"magnetizingInductance": {"nominal": 1e-4}},
			"operatingPoints": [{"conditions": {"ambientTemperature": 25}}]
		}
	}`
	doc, pending, err := Autocomplete([]byte(raw))
	if err != nil {
		t.Fatalf("autocomplete failed: %v", err)
	}
	if doc == nil {
		t.Fatal("autocomplete should still return a document")
	}
	got := map[string]string{}
	for _, p := range pending {
		got[p.Entity+"."+p.Field] = p.Path.String()
	}
	if _, ok := got["DesignRequirements.turnsRatios"]; !ok {
		t.Errorf("pending = %v, want DesignRequirements.turnsRatios", got)
	}
	if path, ok := got["OperatingPoint.excitationsPerWinding"]; !ok {
		t.Errorf("pending = %v, want OperatingPoint.excitationsPerWinding", got)
	} else if path != "inputs.operatingPoints[0]" {
		t.Errorf("pending path = %q, want inputs.operatingPoints[0]", path)
	}
}

func TestAutocompleteTypeErrorsStayFatal(t *testing.T) {
	raw := `{"inputs": {"designRequirements": {"magnetizingInductance": "big"}, "operatingPoints": []}}`
	_, _, err := Autocomplete([]byte(raw))
	if !errors.Is(err, convert.ErrTypeMismatch) {
		t.Fatalf("got %v, want type mismatch", err)
	}
}

func TestYAMLAndCBORAgreeWithJSON(t *testing.T) {
	doc, err := FromJSON([]byte(minimalDoc))
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}

	y, err := doc.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML failed: %v", err)
	}
	fromY, err := FromYAML(y)
	if err != nil {
		t.Fatalf("FromYAML failed: %v", err)
	}
	wantJSON, err := doc.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	gotJSON, err := fromY.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(gotJSON) != string(wantJSON) {
		t.Errorf("YAML round trip drifted:\n%s\n%s", gotJSON, wantJSON)
	}

	c, err := doc.ToCBOR()
	if err != nil {
		t.Fatalf("ToCBOR failed: %v", err)
	}
	fromC, err := FromCBOR(c)
	if err != nil {
		t.Fatalf("FromCBOR failed: %v", err)
	}
	gotJSON, err = fromC.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(gotJSON) != string(wantJSON) {
		t.Errorf("CBOR round trip drifted:\n%s\n%s", gotJSON, wantJSON)
	}

	c2, err := fromC.ToCBOR()
	if err != nil {
		t.Fatal(err)
	}
	if string(c) != string(c2) {
		t.Error("canonical CBOR encoding is not deterministic")
	}
}

func TestEnumRoundTrip(t *testing.T) {
	tables := []struct {
		name     string
		literals []string
	}{
		{"InsulationType", []string{"Basic", "Double", "Functional", "Reinforced", "Supplementary"}},
		{"IsolationSide", []string{"primary", "secondary", "tertiary"}},
		{"WaveformLabel", []string{"Custom", "Rectangular", "Sinusoidal", "Triangular"}},
	}
	for _, tt := range tables {
		t.Run(tt.name, func(t *testing.T) {
			for _, lit := range tt.literals {
				var err error
				switch tt.name {
				case "InsulationType":
					_, err = insulationTypes.Decode("", lit)
				case "IsolationSide":
					_, err = isolationSides.Decode("", lit)
				case "WaveformLabel":
					_, err = waveformLabels.Decode("", lit)
				}
				if err != nil {
					t.Errorf("literal %q rejected: %v", lit, err)
				}
			}
		})
	}
}

func TestOutputsRoundTrip(t *testing.T) {
	raw := `{
		"inputs": {
			"designRequirements": {"magnetizingInductance": {"nominal": 1e-4}, "turnsRatios": []},
			"operatingPoints": []
		},
		"outputs": [{
			"coreLosses": {"coreLosses": 0.35, "magneticFluxDensityPeak": 0.18, "methodUsed": "iGSE"},
			"windingLosses": {"windingLosses": 0.42, "temperature": 65}
		}]
	}`
	doc, err := FromJSON([]byte(raw))
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	if len(doc.Outputs) != 1 {
		t.Fatalf("got %d outputs, want 1", len(doc.Outputs))
	}
	cl := doc.Outputs[0].CoreLosses
	if cl == nil || cl.CoreLosses != 0.35 {
		t.Fatalf("coreLosses = %+v", cl)
	}
	if cl.MethodUsed == nil || *cl.MethodUsed != "iGSE" {
		t.Errorf("methodUsed = %v", cl.MethodUsed)
	}
	out, err := doc.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	again, err := FromJSON(out)
	if err != nil {
		t.Fatalf("re-decode failed: %v", err)
	}
	if again.Outputs[0].WindingLosses.WindingLosses != 0.42 {
		t.Errorf("windingLosses = %v", again.Outputs[0].WindingLosses.WindingLosses)
	}
}

func mustParse(t *testing.T, raw string) any {
	t.Helper()
	v, err := parseJSON([]byte(raw))
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	return v
}
