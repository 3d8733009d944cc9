package mas

import "github.com/mas-protocol/mas-go/pkg/convert"

// Cooling describes the cooling applied at an operating point. All fields
// are optional; natural convection needs only fluid and temperature, forced
// convection adds velocity, a heatsink is a thermal resistance.
type Cooling struct {
	Fluid             *string
	Temperature       *float64
	Velocity          *float64
	ThermalResistance *float64
}

func (d decoder) cooling(p convert.Path, v any) (Cooling, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return Cooling{}, err
	}
	var out Cooling
	if out.Fluid, err = convert.Opt(m, p, "fluid", convert.String); err != nil {
		return Cooling{}, err
	}
	if out.Temperature, err = convert.Opt(m, p, "temperature", convert.Float); err != nil {
		return Cooling{}, err
	}
	if out.Velocity, err = convert.Opt(m, p, "velocity", convert.Float); err != nil {
		return Cooling{}, err
	}
	if out.ThermalResistance, err = convert.Opt(m, p, "thermalResistance", convert.Float); err != nil {
		return Cooling{}, err
	}
	return out, nil
}

func (c Cooling) encode() *convert.Map {
	m := convert.NewMap()
	convert.Put(m, "fluid", c.Fluid)
	convert.Put(m, "temperature", c.Temperature)
	convert.Put(m, "velocity", c.Velocity)
	convert.Put(m, "thermalResistance", c.ThermalResistance)
	return m
}

// OperatingConditions holds the environment of an operating point.
type OperatingConditions struct {
	AmbientTemperature      float64
	AmbientRelativeHumidity *float64
	Cooling                 *Cooling
	Name                    *string
}

func (d decoder) operatingConditions(p convert.Path, v any) (OperatingConditions, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return OperatingConditions{}, err
	}
	var out OperatingConditions
	if out.AmbientTemperature, err = convert.Req(m, p, "OperatingConditions", "ambientTemperature", convert.Float, d.report); err != nil {
		return OperatingConditions{}, err
	}
	if out.AmbientRelativeHumidity, err = convert.Opt(m, p, "ambientRelativeHumidity", convert.Float); err != nil {
		return OperatingConditions{}, err
	}
	if out.Cooling, err = convert.Opt(m, p, "cooling", d.cooling); err != nil {
		return OperatingConditions{}, err
	}
	if out.Name, err = convert.Opt(m, p, "name", convert.String); err != nil {
		return OperatingConditions{}, err
	}
	return out, nil
}

func (c OperatingConditions) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("ambientTemperature", c.AmbientTemperature)
	convert.Put(m, "ambientRelativeHumidity", c.AmbientRelativeHumidity)
	if c.Cooling != nil {
		m.Set("cooling", c.Cooling.encode())
	}
	convert.Put(m, "name", c.Name)
	return m
}

// OperatingPointExcitation is the excitation applied to one winding:
// a switching frequency plus optional current and voltage signals.
type OperatingPointExcitation struct {
	Frequency float64
	Current   *SignalDescriptor
	Voltage   *SignalDescriptor
	Name      *string
}

func (d decoder) excitation(p convert.Path, v any) (OperatingPointExcitation, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return OperatingPointExcitation{}, err
	}
	var out OperatingPointExcitation
	if out.Frequency, err = convert.Req(m, p, "OperatingPointExcitation", "frequency", convert.Float, d.report); err != nil {
		return OperatingPointExcitation{}, err
	}
	if out.Current, err = convert.Opt(m, p, "current", d.signalDescriptor); err != nil {
		return OperatingPointExcitation{}, err
	}
	if out.Voltage, err = convert.Opt(m, p, "voltage", d.signalDescriptor); err != nil {
		return OperatingPointExcitation{}, err
	}
	if out.Name, err = convert.Opt(m, p, "name", convert.String); err != nil {
		return OperatingPointExcitation{}, err
	}
	return out, nil
}

func (e OperatingPointExcitation) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("frequency", e.Frequency)
	if e.Current != nil {
		m.Set("current", e.Current.encode())
	}
	if e.Voltage != nil {
		m.Set("voltage", e.Voltage.encode())
	}
	convert.Put(m, "name", e.Name)
	return m
}

// OperatingPoint is one operating condition of the magnetic, with an
// ordered excitation per winding.
type OperatingPoint struct {
	Conditions            OperatingConditions
	ExcitationsPerWinding []OperatingPointExcitation
	Name                  *string
}

func (d decoder) operatingPoint(p convert.Path, v any) (OperatingPoint, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return OperatingPoint{}, err
	}
	var out OperatingPoint
	if out.Conditions, err = convert.Req(m, p, "OperatingPoint", "conditions", d.operatingConditions, d.report); err != nil {
		return OperatingPoint{}, err
	}
	if out.ExcitationsPerWinding, err = convert.Req(m, p, "OperatingPoint", "excitationsPerWinding", convert.List(d.excitation), d.report); err != nil {
		return OperatingPoint{}, err
	}
	if out.Name, err = convert.Opt(m, p, "name", convert.String); err != nil {
		return OperatingPoint{}, err
	}
	return out, nil
}

func (op OperatingPoint) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("conditions", op.Conditions.encode())
	excitations := make([]any, len(op.ExcitationsPerWinding))
	for i, e := range op.ExcitationsPerWinding {
		excitations[i] = e.encode()
	}
	m.Set("excitationsPerWinding", excitations)
	convert.Put(m, "name", op.Name)
	return m
}
