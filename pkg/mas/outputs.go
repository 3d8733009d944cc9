package mas

import "github.com/mas-protocol/mas-go/pkg/convert"

// CoreLossesOutput reports the computed core losses of one operating
// point, in watts, plus the field and thermal figures a solver derives
// alongside them.
type CoreLossesOutput struct {
	CoreLosses                 float64
	EddyCurrentCoreLosses      *float64
	HysteresisCoreLosses       *float64
	MagneticFluxDensityPeak    *float64
	MaximumCoreTemperature     *float64
	MaximumCoreTemperatureRise *float64
	MethodUsed                 *string
	Origin                     *string
}

func (d decoder) coreLossesOutput(p convert.Path, v any) (CoreLossesOutput, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return CoreLossesOutput{}, err
	}
	var out CoreLossesOutput
	if out.CoreLosses, err = convert.Req(m, p, "CoreLossesOutput", "coreLosses", convert.Float, d.report); err != nil {
		return CoreLossesOutput{}, err
	}
	if out.EddyCurrentCoreLosses, err = convert.Opt(m, p, "eddyCurrentCoreLosses", convert.Float); err != nil {
		return CoreLossesOutput{}, err
	}
	if out.HysteresisCoreLosses, err = convert.Opt(m, p, "hysteresisCoreLosses", convert.Float); err != nil {
		return CoreLossesOutput{}, err
	}
	if out.MagneticFluxDensityPeak, err = convert.Opt(m, p, "magneticFluxDensityPeak", convert.Float); err != nil {
		return CoreLossesOutput{}, err
	}
	if out.MaximumCoreTemperature, err = convert.Opt(m, p, "maximumCoreTemperature", convert.Float); err != nil {
		return CoreLossesOutput{}, err
	}
	if out.MaximumCoreTemperatureRise, err = convert.Opt(m, p, "maximumCoreTemperatureRise", convert.Float); err != nil {
		return CoreLossesOutput{}, err
	}
	if out.MethodUsed, err = convert.Opt(m, p, "methodUsed", convert.String); err != nil {
		return CoreLossesOutput{}, err
	}
	if out.Origin, err = convert.Opt(m, p, "origin", convert.String); err != nil {
		return CoreLossesOutput{}, err
	}
	return out, nil
}

func (cl CoreLossesOutput) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("coreLosses", cl.CoreLosses)
	convert.Put(m, "eddyCurrentCoreLosses", cl.EddyCurrentCoreLosses)
	convert.Put(m, "hysteresisCoreLosses", cl.HysteresisCoreLosses)
	convert.Put(m, "magneticFluxDensityPeak", cl.MagneticFluxDensityPeak)
	convert.Put(m, "maximumCoreTemperature", cl.MaximumCoreTemperature)
	convert.Put(m, "maximumCoreTemperatureRise", cl.MaximumCoreTemperatureRise)
	convert.Put(m, "methodUsed", cl.MethodUsed)
	convert.Put(m, "origin", cl.Origin)
	return m
}

// WindingLossesOutput reports the copper losses of one operating point.
type WindingLossesOutput struct {
	WindingLosses     float64
	DcResistance      []float64
	MethodUsed        *string
	Origin            *string
	CurrentPerWinding *OperatingPoint
	Temperature       *float64
}

func (d decoder) windingLossesOutput(p convert.Path, v any) (WindingLossesOutput, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return WindingLossesOutput{}, err
	}
	var out WindingLossesOutput
	if out.WindingLosses, err = convert.Req(m, p, "WindingLossesOutput", "windingLosses", convert.Float, d.report); err != nil {
		return WindingLossesOutput{}, err
	}
	if out.DcResistance, err = convert.OptSlice(m, p, "dcResistancePerWinding", convert.Float); err != nil {
		return WindingLossesOutput{}, err
	}
	if out.MethodUsed, err = convert.Opt(m, p, "methodUsed", convert.String); err != nil {
		return WindingLossesOutput{}, err
	}
	if out.Origin, err = convert.Opt(m, p, "origin", convert.String); err != nil {
		return WindingLossesOutput{}, err
	}
	if out.CurrentPerWinding, err = convert.Opt(m, p, "currentPerWinding", d.operatingPoint); err != nil {
		return WindingLossesOutput{}, err
	}
	if out.Temperature, err = convert.Opt(m, p, "temperature", convert.Float); err != nil {
		return WindingLossesOutput{}, err
	}
	return out, nil
}

func (wl WindingLossesOutput) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("windingLosses", wl.WindingLosses)
	if wl.DcResistance != nil {
		m.Set("dcResistancePerWinding", floats(wl.DcResistance))
	}
	convert.Put(m, "methodUsed", wl.MethodUsed)
	convert.Put(m, "origin", wl.Origin)
	if wl.CurrentPerWinding != nil {
		m.Set("currentPerWinding", wl.CurrentPerWinding.encode())
	}
	convert.Put(m, "temperature", wl.Temperature)
	return m
}

// Outputs holds the simulated results for one operating point. A
// document carries one Outputs entry per operating point, in the same
// order as Inputs.OperatingPoints.
type Outputs struct {
	CoreLosses    *CoreLossesOutput
	WindingLosses *WindingLossesOutput
}

func (d decoder) outputs(p convert.Path, v any) (Outputs, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return Outputs{}, err
	}
	var out Outputs
	if out.CoreLosses, err = convert.Opt(m, p, "coreLosses", d.coreLossesOutput); err != nil {
		return Outputs{}, err
	}
	if out.WindingLosses, err = convert.Opt(m, p, "windingLosses", d.windingLossesOutput); err != nil {
		return Outputs{}, err
	}
	return out, nil
}

func (o Outputs) encode() *convert.Map {
	m := convert.NewMap()
	if o.CoreLosses != nil {
		m.Set("coreLosses", o.CoreLosses.encode())
	}
	if o.WindingLosses != nil {
		m.Set("windingLosses", o.WindingLosses.encode())
	}
	return m
}
