package mas

import "github.com/mas-protocol/mas-go/pkg/convert"

// ManufacturerInfo identifies who makes a part and where it stands in
// its lifecycle.
type ManufacturerInfo struct {
	Name      string
	Cost      *string
	Datasheet *string
	Family    *string
	OrderCode *string
	Reference *string
	Status    *Status
}

func (d decoder) manufacturerInfo(p convert.Path, v any) (ManufacturerInfo, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return ManufacturerInfo{}, err
	}
	var out ManufacturerInfo
	if out.Name, err = convert.Req(m, p, "ManufacturerInfo", "name", convert.String, d.report); err != nil {
		return ManufacturerInfo{}, err
	}
	if out.Cost, err = convert.Opt(m, p, "cost", convert.String); err != nil {
		return ManufacturerInfo{}, err
	}
	if out.Datasheet, err = convert.Opt(m, p, "datasheet", convert.String); err != nil {
		return ManufacturerInfo{}, err
	}
	if out.Family, err = convert.Opt(m, p, "family", convert.String); err != nil {
		return ManufacturerInfo{}, err
	}
	if out.OrderCode, err = convert.Opt(m, p, "orderCode", convert.String); err != nil {
		return ManufacturerInfo{}, err
	}
	if out.Reference, err = convert.Opt(m, p, "reference", convert.String); err != nil {
		return ManufacturerInfo{}, err
	}
	if out.Status, err = convert.Opt(m, p, "status", manufacturingStatus.Decode); err != nil {
		return ManufacturerInfo{}, err
	}
	return out, nil
}

func (mi ManufacturerInfo) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("name", mi.Name)
	convert.Put(m, "cost", mi.Cost)
	convert.Put(m, "datasheet", mi.Datasheet)
	convert.Put(m, "family", mi.Family)
	convert.Put(m, "orderCode", mi.OrderCode)
	convert.Put(m, "reference", mi.Reference)
	convert.Put(m, "status", mi.Status)
	return m
}

// CoreGap describes a single gap in the magnetic circuit.
type CoreGap struct {
	Length      float64
	Type        GapType
	Area        *float64
	Coordinates []float64
}

func (d decoder) coreGap(p convert.Path, v any) (CoreGap, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return CoreGap{}, err
	}
	var out CoreGap
	if out.Length, err = convert.Req(m, p, "CoreGap", "length", convert.Float, d.report); err != nil {
		return CoreGap{}, err
	}
	if out.Type, err = convert.Req(m, p, "CoreGap", "type", gapTypes.Decode, d.report); err != nil {
		return CoreGap{}, err
	}
	if out.Area, err = convert.Opt(m, p, "area", convert.Float); err != nil {
		return CoreGap{}, err
	}
	if out.Coordinates, err = convert.OptSlice(m, p, "coordinates", convert.Float); err != nil {
		return CoreGap{}, err
	}
	return out, nil
}

func (g CoreGap) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("length", g.Length)
	m.Set("type", g.Type)
	convert.Put(m, "area", g.Area)
	if g.Coordinates != nil {
		m.Set("coordinates", floats(g.Coordinates))
	}
	return m
}

// CoreShape is either a catalogue shape name or a full parametric
// description. The parametric form keeps its dimensions as raw
// name-to-value pairs since shape families disagree on which
// dimensions exist.
type CoreShape struct {
	// Name is set when the shape came in as a bare string.
	Name string

	Family          *string
	Type            *CoreType
	MagneticCircuit *string
	Dimensions      map[string]float64

	// object records that the shape arrived in the parametric form, so
	// re-encoding keeps the object even when only the name is set.
	object bool
}

func (d decoder) coreShapeObject(p convert.Path, v any) (CoreShape, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return CoreShape{}, err
	}
	out := CoreShape{object: true}
	if name, err := convert.Opt(m, p, "name", convert.String); err != nil {
		return CoreShape{}, err
	} else if name != nil {
		out.Name = *name
	}
	if out.Family, err = convert.Opt(m, p, "family", convert.String); err != nil {
		return CoreShape{}, err
	}
	if out.Type, err = convert.Opt(m, p, "type", coreTypes.Decode); err != nil {
		return CoreShape{}, err
	}
	if out.MagneticCircuit, err = convert.Opt(m, p, "magneticCircuit", convert.String); err != nil {
		return CoreShape{}, err
	}
	if raw, ok := m["dimensions"]; ok {
		dp := p.Field("dimensions")
		dm, err := convert.Object(dp, raw)
		if err != nil {
			return CoreShape{}, err
		}
		out.Dimensions = make(map[string]float64, len(dm))
		for k, dv := range dm {
			f, err := convert.Float(dp.Field(k), dv)
			if err != nil {
				return CoreShape{}, err
			}
			out.Dimensions[k] = f
		}
	}
	return out, nil
}

// coreShape accepts a shape name string or a shape object.
func (d decoder) coreShape(p convert.Path, v any) (CoreShape, error) {
	return convert.FirstOf("CoreShape",
		func(p convert.Path, v any) (CoreShape, error) {
			s, err := convert.String(p, v)
			if err != nil {
				return CoreShape{}, err
			}
			return CoreShape{Name: s}, nil
		},
		d.coreShapeObject,
	)(p, v)
}

func (cs CoreShape) encode() any {
	if !cs.object && cs.Family == nil && cs.Type == nil && cs.MagneticCircuit == nil && cs.Dimensions == nil {
		return cs.Name
	}
	m := convert.NewMap()
	if cs.Name != "" {
		m.Set("name", cs.Name)
	}
	convert.Put(m, "family", cs.Family)
	convert.Put(m, "type", cs.Type)
	convert.Put(m, "magneticCircuit", cs.MagneticCircuit)
	if cs.Dimensions != nil {
		dm := convert.NewMap()
		for _, k := range sortedKeys(cs.Dimensions) {
			dm.Set(k, cs.Dimensions[k])
		}
		m.Set("dimensions", dm)
	}
	return m
}

// CoreFunctionalDescription names the material, shape and gapping of a
// core without committing to a processed geometry.
type CoreFunctionalDescription struct {
	Material     string
	Shape        CoreShape
	Gapping      []CoreGap
	NumberStacks *int
	Coating      *string
	Type         *CoreType
}

func (d decoder) coreFunctional(p convert.Path, v any) (CoreFunctionalDescription, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return CoreFunctionalDescription{}, err
	}
	var out CoreFunctionalDescription
	if out.Material, err = convert.Req(m, p, "CoreFunctionalDescription", "material", convert.String, d.report); err != nil {
		return CoreFunctionalDescription{}, err
	}
	if out.Shape, err = convert.Req(m, p, "CoreFunctionalDescription", "shape", d.coreShape, d.report); err != nil {
		return CoreFunctionalDescription{}, err
	}
	if out.Gapping, err = convert.Req(m, p, "CoreFunctionalDescription", "gapping", convert.List(d.coreGap), d.report); err != nil {
		return CoreFunctionalDescription{}, err
	}
	if out.NumberStacks, err = convert.Opt(m, p, "numberStacks", convert.Int); err != nil {
		return CoreFunctionalDescription{}, err
	}
	if out.Coating, err = convert.Opt(m, p, "coating", convert.String); err != nil {
		return CoreFunctionalDescription{}, err
	}
	if out.Type, err = convert.Opt(m, p, "type", coreTypes.Decode); err != nil {
		return CoreFunctionalDescription{}, err
	}
	return out, nil
}

func (cf CoreFunctionalDescription) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("material", cf.Material)
	m.Set("shape", cf.Shape.encode())
	gaps := make([]any, len(cf.Gapping))
	for i, g := range cf.Gapping {
		gaps[i] = g.encode()
	}
	m.Set("gapping", gaps)
	convert.Put(m, "numberStacks", cf.NumberStacks)
	convert.Put(m, "coating", cf.Coating)
	convert.Put(m, "type", cf.Type)
	return m
}

// Core is a physical core: its functional description plus optional
// manufacturer and naming metadata.
type Core struct {
	FunctionalDescription CoreFunctionalDescription
	ManufacturerInfo      *ManufacturerInfo
	Name                  *string
}

func (d decoder) core(p convert.Path, v any) (Core, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return Core{}, err
	}
	var out Core
	if out.FunctionalDescription, err = convert.Req(m, p, "Core", "functionalDescription", d.coreFunctional, d.report); err != nil {
		return Core{}, err
	}
	if out.ManufacturerInfo, err = convert.Opt(m, p, "manufacturerInfo", d.manufacturerInfo); err != nil {
		return Core{}, err
	}
	if out.Name, err = convert.Opt(m, p, "name", convert.String); err != nil {
		return Core{}, err
	}
	return out, nil
}

func (c Core) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("functionalDescription", c.FunctionalDescription.encode())
	if c.ManufacturerInfo != nil {
		m.Set("manufacturerInfo", c.ManufacturerInfo.encode())
	}
	convert.Put(m, "name", c.Name)
	return m
}

// WireDetails describes a wire when it arrives as an object rather than
// a catalogue name.
type WireDetails struct {
	Type               string
	Material           *string
	Name               *string
	NumberConductors   *int
	ConductingDiameter *DimensionWithTolerance
	OuterDiameter      *DimensionWithTolerance
	ManufacturerInfo   *ManufacturerInfo
	Standard           *string
}

func (d decoder) wireDetails(p convert.Path, v any) (WireDetails, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return WireDetails{}, err
	}
	var out WireDetails
	if out.Type, err = convert.Req(m, p, "WireDetails", "type", convert.String, d.report); err != nil {
		return WireDetails{}, err
	}
	if out.Material, err = convert.Opt(m, p, "material", convert.String); err != nil {
		return WireDetails{}, err
	}
	if out.Name, err = convert.Opt(m, p, "name", convert.String); err != nil {
		return WireDetails{}, err
	}
	if out.NumberConductors, err = convert.Opt(m, p, "numberConductors", convert.Int); err != nil {
		return WireDetails{}, err
	}
	if out.ConductingDiameter, err = convert.Opt(m, p, "conductingDiameter", d.dimensionWithTolerance); err != nil {
		return WireDetails{}, err
	}
	if out.OuterDiameter, err = convert.Opt(m, p, "outerDiameter", d.dimensionWithTolerance); err != nil {
		return WireDetails{}, err
	}
	if out.ManufacturerInfo, err = convert.Opt(m, p, "manufacturerInfo", d.manufacturerInfo); err != nil {
		return WireDetails{}, err
	}
	if out.Standard, err = convert.Opt(m, p, "standard", convert.String); err != nil {
		return WireDetails{}, err
	}
	return out, nil
}

func (wd WireDetails) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("type", wd.Type)
	convert.Put(m, "material", wd.Material)
	convert.Put(m, "name", wd.Name)
	convert.Put(m, "numberConductors", wd.NumberConductors)
	if wd.ConductingDiameter != nil {
		m.Set("conductingDiameter", wd.ConductingDiameter.encode())
	}
	if wd.OuterDiameter != nil {
		m.Set("outerDiameter", wd.OuterDiameter.encode())
	}
	if wd.ManufacturerInfo != nil {
		m.Set("manufacturerInfo", wd.ManufacturerInfo.encode())
	}
	convert.Put(m, "standard", wd.Standard)
	return m
}

// Wire is a string-or-object union: either a catalogue wire name or a
// full WireDetails description. Exactly one branch is populated.
type Wire struct {
	Name    string
	Details *WireDetails
}

func (d decoder) wire(p convert.Path, v any) (Wire, error) {
	return convert.FirstOf("Wire",
		func(p convert.Path, v any) (Wire, error) {
			s, err := convert.String(p, v)
			if err != nil {
				return Wire{}, err
			}
			return Wire{Name: s}, nil
		},
		func(p convert.Path, v any) (Wire, error) {
			det, err := d.wireDetails(p, v)
			if err != nil {
				return Wire{}, err
			}
			return Wire{Details: &det}, nil
		},
	)(p, v)
}

func (w Wire) encode() any {
	if w.Details != nil {
		return w.Details.encode()
	}
	return w.Name
}

// CoilFunctionalDescription is one winding of the coil.
type CoilFunctionalDescription struct {
	Name            string
	NumberTurns     int
	NumberParallels int
	IsolationSide   IsolationSide
	Wire            Wire
}

func (d decoder) coilFunctional(p convert.Path, v any) (CoilFunctionalDescription, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return CoilFunctionalDescription{}, err
	}
	var out CoilFunctionalDescription
	if out.Name, err = convert.Req(m, p, "CoilFunctionalDescription", "name", convert.String, d.report); err != nil {
		return CoilFunctionalDescription{}, err
	}
	if out.NumberTurns, err = convert.Req(m, p, "CoilFunctionalDescription", "numberTurns", convert.Int, d.report); err != nil {
		return CoilFunctionalDescription{}, err
	}
	if out.NumberParallels, err = convert.Req(m, p, "CoilFunctionalDescription", "numberParallels", convert.Int, d.report); err != nil {
		return CoilFunctionalDescription{}, err
	}
	if out.IsolationSide, err = convert.Req(m, p, "CoilFunctionalDescription", "isolationSide", isolationSides.Decode, d.report); err != nil {
		return CoilFunctionalDescription{}, err
	}
	if out.Wire, err = convert.Req(m, p, "CoilFunctionalDescription", "wire", d.wire, d.report); err != nil {
		return CoilFunctionalDescription{}, err
	}
	return out, nil
}

func (cf CoilFunctionalDescription) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("name", cf.Name)
	m.Set("numberTurns", cf.NumberTurns)
	m.Set("numberParallels", cf.NumberParallels)
	m.Set("isolationSide", cf.IsolationSide)
	m.Set("wire", cf.Wire.encode())
	return m
}

// Bobbin is, like CoreShape, either a catalogue name or an object kept
// as-is. The object form is passed through untyped because bobbin
// descriptions are open-ended.
type Bobbin struct {
	Name   string
	Object map[string]any
}

func (d decoder) bobbin(p convert.Path, v any) (Bobbin, error) {
	return convert.FirstOf("Bobbin",
		func(p convert.Path, v any) (Bobbin, error) {
			s, err := convert.String(p, v)
			if err != nil {
				return Bobbin{}, err
			}
			return Bobbin{Name: s}, nil
		},
		func(p convert.Path, v any) (Bobbin, error) {
			m, err := convert.Object(p, v)
			if err != nil {
				return Bobbin{}, err
			}
			return Bobbin{Object: m}, nil
		},
	)(p, v)
}

func (b Bobbin) encode() any {
	if b.Object != nil {
		m := convert.NewMap()
		for _, k := range sortedKeys(b.Object) {
			m.Set(k, b.Object[k])
		}
		return m
	}
	return b.Name
}

// Coil groups the windings with the bobbin they sit on.
type Coil struct {
	Bobbin                Bobbin
	FunctionalDescription []CoilFunctionalDescription
}

func (d decoder) coil(p convert.Path, v any) (Coil, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return Coil{}, err
	}
	var out Coil
	if out.Bobbin, err = convert.Req(m, p, "Coil", "bobbin", d.bobbin, d.report); err != nil {
		return Coil{}, err
	}
	if out.FunctionalDescription, err = convert.Req(m, p, "Coil", "functionalDescription", convert.List(d.coilFunctional), d.report); err != nil {
		return Coil{}, err
	}
	return out, nil
}

func (c Coil) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("bobbin", c.Bobbin.encode())
	windings := make([]any, len(c.FunctionalDescription))
	for i, w := range c.FunctionalDescription {
		windings[i] = w.encode()
	}
	m.Set("functionalDescription", windings)
	return m
}

// Magnetic pairs a core with its coil.
type Magnetic struct {
	Core             Core
	Coil             Coil
	ManufacturerInfo *ManufacturerInfo
}

func (d decoder) magnetic(p convert.Path, v any) (Magnetic, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return Magnetic{}, err
	}
	var out Magnetic
	if out.Core, err = convert.Req(m, p, "Magnetic", "core", d.core, d.report); err != nil {
		return Magnetic{}, err
	}
	if out.Coil, err = convert.Req(m, p, "Magnetic", "coil", d.coil, d.report); err != nil {
		return Magnetic{}, err
	}
	if out.ManufacturerInfo, err = convert.Opt(m, p, "manufacturerInfo", d.manufacturerInfo); err != nil {
		return Magnetic{}, err
	}
	return out, nil
}

// ToMap encodes the magnetic in wire form. Exposed because the solver
// boundary consumes bare magnetics as well as whole documents.
func (mg Magnetic) ToMap() *convert.Map {
	return mg.encode()
}

func (mg Magnetic) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("core", mg.Core.encode())
	m.Set("coil", mg.Coil.encode())
	if mg.ManufacturerInfo != nil {
		m.Set("manufacturerInfo", mg.ManufacturerInfo.encode())
	}
	return m
}
