package tas

import "github.com/mas-protocol/mas-go/pkg/convert"

// Modulation captures how the converter is controlled. The scheme
// fundamentally affects waveform shapes downstream.
type Modulation struct {
	Type           ModulationType
	ControlMode    ControlMode
	FrequencyFixed bool
	MaxDuty        float64
	MinDuty        float64
}

func decodeModulation(p convert.Path, v any) (Modulation, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return Modulation{}, err
	}
	var out Modulation
	if out.Type, err = defEnum(m, p, "type", modulationTypes, ModulationPWM); err != nil {
		return Modulation{}, err
	}
	if out.ControlMode, err = defEnum(m, p, "control_mode", controlModes, ControlVoltageMode); err != nil {
		return Modulation{}, err
	}
	if out.FrequencyFixed, err = defBool(m, p, "frequency_fixed", true); err != nil {
		return Modulation{}, err
	}
	if out.MaxDuty, err = defFloat(m, p, "max_duty", 0.9); err != nil {
		return Modulation{}, err
	}
	if out.MinDuty, err = defFloat(m, p, "min_duty", 0); err != nil {
		return Modulation{}, err
	}
	return out, nil
}

func (md Modulation) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("type", md.Type)
	m.Set("control_mode", md.ControlMode)
	m.Set("frequency_fixed", md.FrequencyFixed)
	m.Set("max_duty", md.MaxDuty)
	m.Set("min_duty", md.MinDuty)
	return m
}

// Requirements are the electrical requirements of the converter. A nil
// IsolationVoltage means non-isolated.
type Requirements struct {
	VinMin           float64
	VinMax           float64
	VinNominal       *float64
	Vout             float64
	IoutMax          float64
	PoutMax          *float64
	EfficiencyTarget float64
	IsolationVoltage *float64
}

func decodeRequirements(p convert.Path, v any) (Requirements, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return Requirements{}, err
	}
	var out Requirements
	if out.VinMin, err = defFloat(m, p, "v_in_min", 0); err != nil {
		return Requirements{}, err
	}
	if out.VinMax, err = defFloat(m, p, "v_in_max", 0); err != nil {
		return Requirements{}, err
	}
	if out.VinNominal, err = convert.Opt(m, p, "v_in_nominal", convert.Float); err != nil {
		return Requirements{}, err
	}
	if out.Vout, err = defFloat(m, p, "v_out", 0); err != nil {
		return Requirements{}, err
	}
	if out.IoutMax, err = defFloat(m, p, "i_out_max", 0); err != nil {
		return Requirements{}, err
	}
	if out.PoutMax, err = convert.Opt(m, p, "p_out_max", convert.Float); err != nil {
		return Requirements{}, err
	}
	if out.EfficiencyTarget, err = defFloat(m, p, "efficiency_target", 0.9); err != nil {
		return Requirements{}, err
	}
	if out.IsolationVoltage, err = convert.Opt(m, p, "isolation_voltage", convert.Float); err != nil {
		return Requirements{}, err
	}
	return out, nil
}

func (r Requirements) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("v_in_min", r.VinMin)
	m.Set("v_in_max", r.VinMax)
	m.Set("v_out", r.Vout)
	m.Set("i_out_max", r.IoutMax)
	m.Set("efficiency_target", r.EfficiencyTarget)
	convert.Put(m, "v_in_nominal", r.VinNominal)
	convert.Put(m, "p_out_max", r.PoutMax)
	convert.Put(m, "isolation_voltage", r.IsolationVoltage)
	return m
}

// OperatingPoint is one waveform-based excitation scenario. Waveforms
// are keyed by the node or component they excite.
type OperatingPoint struct {
	Name               string
	Description        string
	Frequency          float64
	DutyCycle          *float64
	Mode               OperatingMode
	Modulation         *Modulation
	Waveforms          map[string]Waveform
	AmbientTemperature float64
}

func decodeOperatingPoint(p convert.Path, v any) (OperatingPoint, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return OperatingPoint{}, err
	}
	var out OperatingPoint
	if out.Name, err = defString(m, p, "name", "nominal"); err != nil {
		return OperatingPoint{}, err
	}
	if out.Description, err = defString(m, p, "description", ""); err != nil {
		return OperatingPoint{}, err
	}
	if out.Frequency, err = defFloat(m, p, "frequency", 100e3); err != nil {
		return OperatingPoint{}, err
	}
	if out.DutyCycle, err = convert.Opt(m, p, "duty_cycle", convert.Float); err != nil {
		return OperatingPoint{}, err
	}
	if out.Mode, err = defEnum(m, p, "mode", operatingModes, OperatingModeCCM); err != nil {
		return OperatingPoint{}, err
	}
	if out.Modulation, err = convert.Opt(m, p, "modulation", decodeModulation); err != nil {
		return OperatingPoint{}, err
	}
	if raw, ok := m["waveforms"]; ok && raw != nil {
		wp := p.Field("waveforms")
		wm, err := convert.Object(wp, raw)
		if err != nil {
			return OperatingPoint{}, err
		}
		out.Waveforms = make(map[string]Waveform, len(wm))
		for k, wv := range wm {
			w, err := decodeWaveform(wp.Field(k), wv)
			if err != nil {
				return OperatingPoint{}, err
			}
			out.Waveforms[k] = w
		}
	}
	if out.AmbientTemperature, err = defFloat(m, p, "ambient_temperature", 25); err != nil {
		return OperatingPoint{}, err
	}
	return out, nil
}

func (op OperatingPoint) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("name", op.Name)
	m.Set("frequency", op.Frequency)
	m.Set("mode", op.Mode)
	m.Set("ambient_temperature", op.AmbientTemperature)
	putText(m, "description", op.Description)
	convert.Put(m, "duty_cycle", op.DutyCycle)
	if op.Modulation != nil {
		m.Set("modulation", op.Modulation.encode())
	}
	if len(op.Waveforms) > 0 {
		wm := convert.NewMap()
		for _, k := range sortedKeys(op.Waveforms) {
			wm.Set(k, op.Waveforms[k].encode())
		}
		m.Set("waveforms", wm)
	}
	return m
}

// Inputs is the complete inputs section of a TAS document.
type Inputs struct {
	Requirements    Requirements
	OperatingPoints []OperatingPoint
}

func decodeInputs(p convert.Path, v any) (Inputs, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return Inputs{}, err
	}
	var out Inputs
	if raw, ok := m["requirements"]; ok && raw != nil {
		if out.Requirements, err = decodeRequirements(p.Field("requirements"), raw); err != nil {
			return Inputs{}, err
		}
	} else {
		out.Requirements = Requirements{EfficiencyTarget: 0.9}
	}
	if out.OperatingPoints, err = convert.OptSlice(m, p, "operating_points", decodeOperatingPoint); err != nil {
		return Inputs{}, err
	}
	return out, nil
}

func (i Inputs) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("requirements", i.Requirements.encode())
	if len(i.OperatingPoints) > 0 {
		points := make([]any, len(i.OperatingPoints))
		for idx, op := range i.OperatingPoints {
			points[idx] = op.encode()
		}
		m.Set("operating_points", points)
	}
	return m
}
