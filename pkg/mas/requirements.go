package mas

import "github.com/mas-protocol/mas-go/pkg/convert"

// MaximumDimensions bounds the envelope of the finished magnetic, in
// meters. Each axis is independently optional.
type MaximumDimensions struct {
	Width  *float64
	Height *float64
	Depth  *float64
}

func (d decoder) maximumDimensions(p convert.Path, v any) (MaximumDimensions, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return MaximumDimensions{}, err
	}
	var out MaximumDimensions
	if out.Width, err = convert.Opt(m, p, "width", convert.Float); err != nil {
		return MaximumDimensions{}, err
	}
	if out.Height, err = convert.Opt(m, p, "height", convert.Float); err != nil {
		return MaximumDimensions{}, err
	}
	if out.Depth, err = convert.Opt(m, p, "depth", convert.Float); err != nil {
		return MaximumDimensions{}, err
	}
	return out, nil
}

func (md MaximumDimensions) encode() *convert.Map {
	m := convert.NewMap()
	convert.Put(m, "width", md.Width)
	convert.Put(m, "height", md.Height)
	convert.Put(m, "depth", md.Depth)
	return m
}

// InsulationRequirements captures the safety-isolation constraints of the
// design. Every field is optional; absent means unconstrained.
type InsulationRequirements struct {
	Altitude            *DimensionWithTolerance
	Cti                 *CTI
	InsulationType      *InsulationType
	MainSupplyVoltage   *DimensionWithTolerance
	OvervoltageCategory *OvervoltageCategory
	PollutionDegree     *PollutionDegree
	Standards           []InsulationStandard
}

func (d decoder) insulationRequirements(p convert.Path, v any) (InsulationRequirements, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return InsulationRequirements{}, err
	}
	var out InsulationRequirements
	if out.Altitude, err = convert.Opt(m, p, "altitude", d.dimensionWithTolerance); err != nil {
		return InsulationRequirements{}, err
	}
	if out.Cti, err = convert.Opt(m, p, "cti", ctiGroups.Decode); err != nil {
		return InsulationRequirements{}, err
	}
	if out.InsulationType, err = convert.Opt(m, p, "insulationType", insulationTypes.Decode); err != nil {
		return InsulationRequirements{}, err
	}
	if out.MainSupplyVoltage, err = convert.Opt(m, p, "mainSupplyVoltage", d.dimensionWithTolerance); err != nil {
		return InsulationRequirements{}, err
	}
	if out.OvervoltageCategory, err = convert.Opt(m, p, "overvoltageCategory", overvoltageCats.Decode); err != nil {
		return InsulationRequirements{}, err
	}
	if out.PollutionDegree, err = convert.Opt(m, p, "pollutionDegree", pollutionDegrees.Decode); err != nil {
		return InsulationRequirements{}, err
	}
	if out.Standards, err = convert.OptSlice(m, p, "standards", insulationStandards.Decode); err != nil {
		return InsulationRequirements{}, err
	}
	return out, nil
}

func (ir InsulationRequirements) encode() *convert.Map {
	m := convert.NewMap()
	if ir.Altitude != nil {
		m.Set("altitude", ir.Altitude.encode())
	}
	convert.Put(m, "cti", ir.Cti)
	convert.Put(m, "insulationType", ir.InsulationType)
	if ir.MainSupplyVoltage != nil {
		m.Set("mainSupplyVoltage", ir.MainSupplyVoltage.encode())
	}
	convert.Put(m, "overvoltageCategory", ir.OvervoltageCategory)
	convert.Put(m, "pollutionDegree", ir.PollutionDegree)
	if ir.Standards != nil {
		standards := make([]any, len(ir.Standards))
		for i, s := range ir.Standards {
			standards[i] = s
		}
		m.Set("standards", standards)
	}
	return m
}

// DesignRequirements states what the magnetic must do. The turns-ratio
// list is required but may be empty: an inductor has zero turns ratios,
// which is structurally different from omitting the field.
type DesignRequirements struct {
	MagnetizingInductance DimensionWithTolerance
	TurnsRatios           []DimensionWithTolerance
	Insulation            *InsulationRequirements
	LeakageInductance     *DimensionWithTolerance
	MaximumDimensions     *MaximumDimensions
	MaximumWeight         *float64
	Market                *Market
	Name                  *string
	OperatingTemperature  *DimensionWithTolerance
	Topology              *Topology
}

func (d decoder) designRequirements(p convert.Path, v any) (DesignRequirements, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return DesignRequirements{}, err
	}
	var out DesignRequirements
	if out.MagnetizingInductance, err = convert.Req(m, p, "DesignRequirements", "magnetizingInductance", d.dimensionWithTolerance, d.report); err != nil {
		return DesignRequirements{}, err
	}
	if out.TurnsRatios, err = convert.Req(m, p, "DesignRequirements", "turnsRatios", convert.List(d.dimensionWithTolerance), d.report); err != nil {
		return DesignRequirements{}, err
	}
	if out.Insulation, err = convert.Opt(m, p, "insulation", d.insulationRequirements); err != nil {
		return DesignRequirements{}, err
	}
	if out.LeakageInductance, err = convert.Opt(m, p, "leakageInductance", d.dimensionWithTolerance); err != nil {
		return DesignRequirements{}, err
	}
	if out.MaximumDimensions, err = convert.Opt(m, p, "maximumDimensions", d.maximumDimensions); err != nil {
		return DesignRequirements{}, err
	}
	if out.MaximumWeight, err = convert.Opt(m, p, "maximumWeight", convert.Float); err != nil {
		return DesignRequirements{}, err
	}
	if out.Market, err = convert.Opt(m, p, "market", markets.Decode); err != nil {
		return DesignRequirements{}, err
	}
	if out.Name, err = convert.Opt(m, p, "name", convert.String); err != nil {
		return DesignRequirements{}, err
	}
	if out.OperatingTemperature, err = convert.Opt(m, p, "operatingTemperature", d.dimensionWithTolerance); err != nil {
		return DesignRequirements{}, err
	}
	if out.Topology, err = convert.Opt(m, p, "topology", topologies.Decode); err != nil {
		return DesignRequirements{}, err
	}
	return out, nil
}

func (dr DesignRequirements) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("magnetizingInductance", dr.MagnetizingInductance.encode())
	ratios := make([]any, len(dr.TurnsRatios))
	for i, r := range dr.TurnsRatios {
		ratios[i] = r.encode()
	}
	m.Set("turnsRatios", ratios)
	if dr.Insulation != nil {
		m.Set("insulation", dr.Insulation.encode())
	}
	if dr.LeakageInductance != nil {
		m.Set("leakageInductance", dr.LeakageInductance.encode())
	}
	if dr.MaximumDimensions != nil {
		m.Set("maximumDimensions", dr.MaximumDimensions.encode())
	}
	convert.Put(m, "maximumWeight", dr.MaximumWeight)
	convert.Put(m, "market", dr.Market)
	convert.Put(m, "name", dr.Name)
	if dr.OperatingTemperature != nil {
		m.Set("operatingTemperature", dr.OperatingTemperature.encode())
	}
	convert.Put(m, "topology", dr.Topology)
	return m
}

// Inputs aggregates the requirements and operating points that drive a
// design.
type Inputs struct {
	DesignRequirements DesignRequirements
	OperatingPoints    []OperatingPoint
}

func (d decoder) inputs(p convert.Path, v any) (Inputs, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return Inputs{}, err
	}
	var out Inputs
	if out.DesignRequirements, err = convert.Req(m, p, "Inputs", "designRequirements", d.designRequirements, d.report); err != nil {
		return Inputs{}, err
	}
	if out.OperatingPoints, err = convert.Req(m, p, "Inputs", "operatingPoints", convert.List(d.operatingPoint), d.report); err != nil {
		return Inputs{}, err
	}
	return out, nil
}

// ToMap encodes the inputs in wire form. Useful on its own because the
// external solver boundary consumes bare inputs documents.
func (i Inputs) ToMap() *convert.Map {
	m := convert.NewMap()
	m.Set("designRequirements", i.DesignRequirements.encode())
	points := make([]any, len(i.OperatingPoints))
	for idx, op := range i.OperatingPoints {
		points[idx] = op.encode()
	}
	m.Set("operatingPoints", points)
	return m
}
