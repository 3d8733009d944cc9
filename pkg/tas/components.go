package tas

import "github.com/mas-protocol/mas-go/pkg/convert"

// Inductor is a discrete inductor component.
type Inductor struct {
	Name              string
	Inductance        float64
	DCR               float64
	SaturationCurrent *float64
	CoreMaterial      string
	CoreShape         string
	Description       string
}

func decodeInductor(p convert.Path, v any) (Inductor, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return Inductor{}, err
	}
	var out Inductor
	if out.Name, err = defString(m, p, "name", ""); err != nil {
		return Inductor{}, err
	}
	if out.Inductance, err = defFloat(m, p, "inductance", 0); err != nil {
		return Inductor{}, err
	}
	if out.DCR, err = defFloat(m, p, "dcr", 0); err != nil {
		return Inductor{}, err
	}
	if out.SaturationCurrent, err = convert.Opt(m, p, "saturation_current", convert.Float); err != nil {
		return Inductor{}, err
	}
	if out.CoreMaterial, err = defString(m, p, "core_material", ""); err != nil {
		return Inductor{}, err
	}
	if out.CoreShape, err = defString(m, p, "core_shape", ""); err != nil {
		return Inductor{}, err
	}
	if out.Description, err = defString(m, p, "description", ""); err != nil {
		return Inductor{}, err
	}
	return out, nil
}

func (c Inductor) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("name", c.Name)
	m.Set("type", "inductor")
	m.Set("inductance", c.Inductance)
	m.Set("dcr", c.DCR)
	convert.Put(m, "saturation_current", c.SaturationCurrent)
	putText(m, "core_material", c.CoreMaterial)
	putText(m, "core_shape", c.CoreShape)
	putText(m, "description", c.Description)
	return m
}

// Capacitor is a discrete capacitor component.
type Capacitor struct {
	Name          string
	Capacitance   float64
	ESR           float64
	VoltageRating *float64
	Description   string
}

func decodeCapacitor(p convert.Path, v any) (Capacitor, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return Capacitor{}, err
	}
	var out Capacitor
	if out.Name, err = defString(m, p, "name", ""); err != nil {
		return Capacitor{}, err
	}
	if out.Capacitance, err = defFloat(m, p, "capacitance", 0); err != nil {
		return Capacitor{}, err
	}
	if out.ESR, err = defFloat(m, p, "esr", 0); err != nil {
		return Capacitor{}, err
	}
	if out.VoltageRating, err = convert.Opt(m, p, "voltage_rating", convert.Float); err != nil {
		return Capacitor{}, err
	}
	if out.Description, err = defString(m, p, "description", ""); err != nil {
		return Capacitor{}, err
	}
	return out, nil
}

func (c Capacitor) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("name", c.Name)
	m.Set("type", "capacitor")
	m.Set("capacitance", c.Capacitance)
	m.Set("esr", c.ESR)
	convert.Put(m, "voltage_rating", c.VoltageRating)
	putText(m, "description", c.Description)
	return m
}

// Switch is a MOSFET switch component.
type Switch struct {
	Name        string
	RdsOn       float64
	VdsMax      *float64
	IdMax       *float64
	QgTotal     *float64
	Description string
}

func decodeSwitch(p convert.Path, v any) (Switch, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return Switch{}, err
	}
	var out Switch
	if out.Name, err = defString(m, p, "name", ""); err != nil {
		return Switch{}, err
	}
	if out.RdsOn, err = defFloat(m, p, "rds_on", 0); err != nil {
		return Switch{}, err
	}
	if out.VdsMax, err = convert.Opt(m, p, "v_ds_max", convert.Float); err != nil {
		return Switch{}, err
	}
	if out.IdMax, err = convert.Opt(m, p, "i_d_max", convert.Float); err != nil {
		return Switch{}, err
	}
	if out.QgTotal, err = convert.Opt(m, p, "qg_total", convert.Float); err != nil {
		return Switch{}, err
	}
	if out.Description, err = defString(m, p, "description", ""); err != nil {
		return Switch{}, err
	}
	return out, nil
}

func (c Switch) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("name", c.Name)
	m.Set("type", "switch")
	m.Set("rds_on", c.RdsOn)
	convert.Put(m, "v_ds_max", c.VdsMax)
	convert.Put(m, "i_d_max", c.IdMax)
	convert.Put(m, "qg_total", c.QgTotal)
	putText(m, "description", c.Description)
	return m
}

// Diode is a discrete diode component.
type Diode struct {
	Name        string
	Vf          float64
	Vrrm        *float64
	Description string
}

func decodeDiode(p convert.Path, v any) (Diode, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return Diode{}, err
	}
	var out Diode
	if out.Name, err = defString(m, p, "name", ""); err != nil {
		return Diode{}, err
	}
	if out.Vf, err = defFloat(m, p, "vf", 0); err != nil {
		return Diode{}, err
	}
	if out.Vrrm, err = convert.Opt(m, p, "v_rrm", convert.Float); err != nil {
		return Diode{}, err
	}
	if out.Description, err = defString(m, p, "description", ""); err != nil {
		return Diode{}, err
	}
	return out, nil
}

func (c Diode) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("name", c.Name)
	m.Set("type", "diode")
	m.Set("vf", c.Vf)
	convert.Put(m, "v_rrm", c.Vrrm)
	putText(m, "description", c.Description)
	return m
}

// TransformerMagnetic is a coupled magnetic component (transformer).
type TransformerMagnetic struct {
	Name                  string
	MagnetizingInductance float64
	LeakageInductance     float64
	TurnsRatio            float64
	CoreMaterial          string
	CoreShape             string
	Description           string
}

func decodeTransformerMagnetic(p convert.Path, v any) (TransformerMagnetic, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return TransformerMagnetic{}, err
	}
	var out TransformerMagnetic
	if out.Name, err = defString(m, p, "name", ""); err != nil {
		return TransformerMagnetic{}, err
	}
	if out.MagnetizingInductance, err = defFloat(m, p, "magnetizing_inductance", 0); err != nil {
		return TransformerMagnetic{}, err
	}
	if out.LeakageInductance, err = defFloat(m, p, "leakage_inductance", 0); err != nil {
		return TransformerMagnetic{}, err
	}
	if out.TurnsRatio, err = defFloat(m, p, "turns_ratio", 1); err != nil {
		return TransformerMagnetic{}, err
	}
	if out.CoreMaterial, err = defString(m, p, "core_material", ""); err != nil {
		return TransformerMagnetic{}, err
	}
	if out.CoreShape, err = defString(m, p, "core_shape", ""); err != nil {
		return TransformerMagnetic{}, err
	}
	if out.Description, err = defString(m, p, "description", ""); err != nil {
		return TransformerMagnetic{}, err
	}
	return out, nil
}

func (c TransformerMagnetic) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("name", c.Name)
	m.Set("type", "magnetic")
	m.Set("magnetizing_inductance", c.MagnetizingInductance)
	m.Set("leakage_inductance", c.LeakageInductance)
	m.Set("turns_ratio", c.TurnsRatio)
	putText(m, "core_material", c.CoreMaterial)
	putText(m, "core_shape", c.CoreShape)
	putText(m, "description", c.Description)
	return m
}

// Components groups the discrete parts of the converter by kind. Empty
// groups are omitted on encode.
type Components struct {
	Inductors  []Inductor
	Capacitors []Capacitor
	Switches   []Switch
	Diodes     []Diode
	Magnetics  []TransformerMagnetic
}

// Empty reports whether no component of any kind is present.
func (c Components) Empty() bool {
	return len(c.Inductors) == 0 && len(c.Capacitors) == 0 &&
		len(c.Switches) == 0 && len(c.Diodes) == 0 && len(c.Magnetics) == 0
}

func decodeComponents(p convert.Path, v any) (Components, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return Components{}, err
	}
	var out Components
	if out.Inductors, err = convert.OptSlice(m, p, "inductors", decodeInductor); err != nil {
		return Components{}, err
	}
	if out.Capacitors, err = convert.OptSlice(m, p, "capacitors", decodeCapacitor); err != nil {
		return Components{}, err
	}
	if out.Switches, err = convert.OptSlice(m, p, "switches", decodeSwitch); err != nil {
		return Components{}, err
	}
	if out.Diodes, err = convert.OptSlice(m, p, "diodes", decodeDiode); err != nil {
		return Components{}, err
	}
	if out.Magnetics, err = convert.OptSlice(m, p, "magnetics", decodeTransformerMagnetic); err != nil {
		return Components{}, err
	}
	return out, nil
}

func (c Components) encode() *convert.Map {
	m := convert.NewMap()
	if len(c.Inductors) > 0 {
		m.Set("inductors", encodeList(c.Inductors, Inductor.encode))
	}
	if len(c.Capacitors) > 0 {
		m.Set("capacitors", encodeList(c.Capacitors, Capacitor.encode))
	}
	if len(c.Switches) > 0 {
		m.Set("switches", encodeList(c.Switches, Switch.encode))
	}
	if len(c.Diodes) > 0 {
		m.Set("diodes", encodeList(c.Diodes, Diode.encode))
	}
	if len(c.Magnetics) > 0 {
		m.Set("magnetics", encodeList(c.Magnetics, TransformerMagnetic.encode))
	}
	return m
}

func encodeList[T any](items []T, enc func(T) *convert.Map) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = enc(item)
	}
	return out
}
