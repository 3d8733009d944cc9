package mas

import "github.com/mas-protocol/mas-go/pkg/convert"

// DimensionWithTolerance is a number with optional independent bounds:
// an inductance, a turns ratio, a physical dimension. Only the nominal
// value is required. The exclude flags and bounds are independently
// optional and carry no cross-field consistency rule at the codec layer.
type DimensionWithTolerance struct {
	Nominal        float64
	Minimum        *float64
	Maximum        *float64
	ExcludeMinimum *bool
	ExcludeMaximum *bool
}

func (d decoder) dimensionWithTolerance(p convert.Path, v any) (DimensionWithTolerance, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return DimensionWithTolerance{}, err
	}
	var out DimensionWithTolerance
	if out.Nominal, err = convert.Req(m, p, "DimensionWithTolerance", "nominal", convert.Float, d.report); err != nil {
		return DimensionWithTolerance{}, err
	}
	if out.Minimum, err = convert.Opt(m, p, "minimum", convert.Float); err != nil {
		return DimensionWithTolerance{}, err
	}
	if out.Maximum, err = convert.Opt(m, p, "maximum", convert.Float); err != nil {
		return DimensionWithTolerance{}, err
	}
	if out.ExcludeMinimum, err = convert.Opt(m, p, "excludeMinimum", convert.Bool); err != nil {
		return DimensionWithTolerance{}, err
	}
	if out.ExcludeMaximum, err = convert.Opt(m, p, "excludeMaximum", convert.Bool); err != nil {
		return DimensionWithTolerance{}, err
	}
	return out, nil
}

func (d DimensionWithTolerance) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("nominal", d.Nominal)
	convert.Put(m, "minimum", d.Minimum)
	convert.Put(m, "maximum", d.Maximum)
	convert.Put(m, "excludeMinimum", d.ExcludeMinimum)
	convert.Put(m, "excludeMaximum", d.ExcludeMaximum)
	return m
}
