package tas

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/mas-protocol/mas-go/pkg/convert"
)

func TestEmptyDocumentGetsDefaults(t *testing.T) {
	doc, err := FromJSON([]byte(`{}`))
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	if doc.Metadata.Version != "0.1.0" {
		t.Errorf("version = %q, want 0.1.0", doc.Metadata.Version)
	}
	if doc.Inputs.Requirements.EfficiencyTarget != 0.9 {
		t.Errorf("efficiency_target = %v, want 0.9", doc.Inputs.Requirements.EfficiencyTarget)
	}
	if doc.Outputs != nil {
		t.Error("outputs should be absent")
	}
}

func TestOperatingPointDefaults(t *testing.T) {
	op, err := decodeOperatingPoint("", map[string]any{})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if op.Name != "nominal" {
		t.Errorf("name = %q, want nominal", op.Name)
	}
	if op.Frequency != 100e3 {
		t.Errorf("frequency = %v, want 100e3", op.Frequency)
	}
	if op.Mode != OperatingModeCCM {
		t.Errorf("mode = %q, want ccm", op.Mode)
	}
	if op.AmbientTemperature != 25 {
		t.Errorf("ambient_temperature = %v, want 25", op.AmbientTemperature)
	}
	if op.DutyCycle != nil {
		t.Error("duty_cycle should stay absent")
	}
}

func TestModulationDefaults(t *testing.T) {
	md, err := decodeModulation("", map[string]any{})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if md.Type != ModulationPWM || md.ControlMode != ControlVoltageMode {
		t.Errorf("got %+v, want pwm/voltage_mode defaults", md)
	}
	if !md.FrequencyFixed || md.MaxDuty != 0.9 || md.MinDuty != 0 {
		t.Errorf("got %+v, want fixed frequency with 0.9 max duty", md)
	}
}

func TestUnknownOperatingModeFails(t *testing.T) {
	_, err := decodeOperatingPoint("", map[string]any{"mode": "burst"})
	var unknown *convert.UnknownEnumError
	if !errors.As(err, &unknown) {
		t.Fatalf("got %v, want UnknownEnumError", err)
	}
	if unknown.Set != "OperatingMode" || unknown.Value != "burst" {
		t.Errorf("got set=%q value=%q", unknown.Set, unknown.Value)
	}
}

func TestTypeErrorsStillFail(t *testing.T) {
	_, err := FromJSON([]byte(`{"inputs": {"requirements": {"v_out": "twelve"}}}`))
	if !errors.Is(err, convert.ErrTypeMismatch) {
		t.Fatalf("got %v, want type mismatch", err)
	}
	if !strings.Contains(err.Error(), "inputs.requirements.v_out") {
		t.Errorf("error %q should locate inputs.requirements.v_out", err)
	}
}

func TestEmptyTextOmittedOnEncode(t *testing.T) {
	doc := &Document{Metadata: Metadata{Name: "demo", Version: "0.1.0"}}
	m := doc.ToMap()
	meta, _ := m.Get("metadata")
	mm := meta.(*convert.Map)
	for _, key := range []string{"description", "author", "created", "modified"} {
		if mm.Has(key) {
			t.Errorf("metadata should omit empty %q", key)
		}
	}
	if !mm.Has("name") || !mm.Has("version") {
		t.Error("metadata must keep name and version")
	}
}

func TestRoundTrip(t *testing.T) {
	raw := `{
		"metadata": {"name": "usb-pd", "version": "0.1.0", "author": "lab"},
		"inputs": {
			"requirements": {"v_in_min": 18, "v_in_max": 32, "v_out": 12, "i_out_max": 3},
			"operating_points": [{
				"name": "nominal",
				"frequency": 250000,
				"duty_cycle": 0.48,
				"mode": "ccm",
				"modulation": {"type": "pwm", "control_mode": "current_mode", "frequency_fixed": true, "max_duty": 0.85, "min_duty": 0.05},
				"waveforms": {
					"inductor_current": {"data": [2.1, 3.9, 2.1], "time": [0, 0.0000019, 0.000004], "shape": "triangular", "unit": "A"}
				},
				"ambient_temperature": 40
			}]
		},
		"components": {
			"inductors": [{"name": "L1", "type": "inductor", "inductance": 0.000022, "dcr": 0.018, "saturation_current": 6.5}],
			"switches": [{"name": "Q1", "type": "switch", "rds_on": 0.012, "v_ds_max": 60}]
		},
		"outputs": {
			"losses": {"core_loss": 0.2, "winding_loss": 0.35, "switch_conduction": 0.15, "switch_switching": 0.25, "diode_conduction": 0, "capacitor_esr": 0.05},
			"kpis": {"efficiency": 0.94, "cost": 2.8}
		}
	}`
	doc, err := FromJSON([]byte(raw))
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
		t.Fatal(err)
	}
	if string(out) != string(out2) {
		t.Errorf("encode is not a fixed point:\n%s\n%s", out, out2)
	}

	wf := again.Inputs.OperatingPoints[0].Waveforms["inductor_current"]
	if wf.Shape != ShapeTriangular || wf.Unit != "A" {
		t.Errorf("waveform = %+v", wf)
	}
	if math.Abs(wf.PeakToPeak()-1.8) > 1e-9 {
		t.Errorf("peakToPeak = %v, want 1.8", wf.PeakToPeak())
	}
	if again.Outputs.Losses == nil {
		t.Fatal("losses lost in round trip")
	}
	if got := again.Outputs.Losses.Total(); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("total losses = %v, want 1.0", got)
	}
}

func TestTotalIsRecomputedNotRead(t *testing.T) {
	raw := `{"outputs": {"losses": {"core_loss": 1, "winding_loss": 1, "total": 99}}}`
	doc, err := FromJSON([]byte(raw))
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	m := doc.Outputs.Losses.encode()
	total, _ := m.Get("total")
	if total != 2.0 {
		t.Errorf("total = %v, want recomputed 2.0", total)
	}
}

func TestWaveformGenerators(t *testing.T) {
	tri := Triangular(1, 3, 0.4, 1e-5, "A")
	if tri.Shape != ShapeTriangular {
		t.Errorf("shape = %q", tri.Shape)
	}
	if tri.Period() != 1e-5 {
		t.Errorf("period = %v", tri.Period())
	}
	if math.Abs(tri.Frequency()-1e5) > 1e-6 {
		t.Errorf("frequency = %v, want 1e5", tri.Frequency())
	}
	if tri.Peak() != 3 || tri.Min() != 1 {
		t.Errorf("peak/min = %v/%v", tri.Peak(), tri.Min())
	}

	rect := Rectangular(24, 0, 0.5, 1e-5, "V")
	if len(rect.Data) != 4 || rect.Data[0] != 24 || rect.Data[3] != 0 {
		t.Errorf("rect data = %v", rect.Data)
	}
	if rect.Time[1] != rect.Time[2] {
		t.Error("rectangular edge should be instantaneous")
	}
}

func TestFactories(t *testing.T) {
	buck := NewBuck("demo-buck", 18, 32, 12, 3, 250e3)
	if buck.Metadata.Name != "demo-buck" {
		t.Errorf("name = %q", buck.Metadata.Name)
	}
	ops := buck.Inputs.OperatingPoints
	if len(ops) != 1 || ops[0].Frequency != 250e3 {
		t.Fatalf("operating points = %+v", ops)
	}
	wantDuty := 12.0 / 25.0
	if ops[0].DutyCycle == nil || math.Abs(*ops[0].DutyCycle-wantDuty) > 1e-9 {
		t.Errorf("duty = %v, want %v", ops[0].DutyCycle, wantDuty)
	}
	if buck.Inputs.Requirements.IsolationVoltage != nil {
		t.Error("buck must be non-isolated")
	}

	boost := NewBoost("demo-boost", 9, 15, 24, 1, 100e3)
	duty := boost.Inputs.OperatingPoints[0].DutyCycle
	if duty == nil || math.Abs(*duty-0.5) > 1e-9 {
		t.Errorf("boost duty = %v, want 0.5", duty)
	}

	fly := NewFlyback("demo-flyback", 85, 265, 12, 2, 65e3, 0.25)
	if fly.Inputs.Requirements.IsolationVoltage == nil || *fly.Inputs.Requirements.IsolationVoltage != 1500 {
		t.Errorf("flyback isolation = %v, want 1500", fly.Inputs.Requirements.IsolationVoltage)
	}

	// Factories must produce valid wire documents.
	out, err := fly.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if _, err := FromJSON(out); err != nil {
		t.Fatalf("factory output does not decode: %v", err)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	doc := NewBuck("yaml-buck", 10, 14, 5, 2, 500e3)
	y, err := doc.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML failed: %v", err)
	}
	again, err := FromYAML(y)
	if err != nil {
		t.Fatalf("FromYAML failed: %v", err)
	}
	if again.Metadata.Name != "yaml-buck" {
		t.Errorf("name = %q", again.Metadata.Name)
	}
	if again.Inputs.Requirements.Vout != 5 {
		t.Errorf("v_out = %v", again.Inputs.Requirements.Vout)
	}
}
