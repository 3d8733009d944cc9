package tas

import "github.com/mas-protocol/mas-go/pkg/convert"

// Waveform is a periodic signal as time/data sample pairs, compatible
// with the MAS waveform shape.
type Waveform struct {
	Data  []float64
	Time  []float64
	Shape WaveformShape
	Unit  string
}

// Triangular builds the typical inductor-current waveform.
func Triangular(min, max, duty, period float64, unit string) Waveform {
	return Waveform{
		Data:  []float64{min, max, min},
		Time:  []float64{0, duty * period, period},
		Shape: ShapeTriangular,
		Unit:  unit,
	}
}

// Rectangular builds the typical switch-voltage waveform.
func Rectangular(high, low, duty, period float64, unit string) Waveform {
	tOn := duty * period
	return Waveform{
		Data:  []float64{high, high, low, low},
		Time:  []float64{0, tOn, tOn, period},
		Shape: ShapeRectangular,
		Unit:  unit,
	}
}

func decodeWaveform(p convert.Path, v any) (Waveform, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return Waveform{}, err
	}
	var out Waveform
	if out.Data, err = convert.OptSlice(m, p, "data", convert.Float); err != nil {
		return Waveform{}, err
	}
	if out.Time, err = convert.OptSlice(m, p, "time", convert.Float); err != nil {
		return Waveform{}, err
	}
	if out.Shape, err = defEnum(m, p, "shape", waveformShapes, ShapeCustom); err != nil {
		return Waveform{}, err
	}
	if out.Unit, err = defString(m, p, "unit", ""); err != nil {
		return Waveform{}, err
	}
	if out.Data == nil {
		out.Data = []float64{}
	}
	if out.Time == nil {
		out.Time = []float64{}
	}
	return out, nil
}

func (w Waveform) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("data", floats(w.Data))
	m.Set("time", floats(w.Time))
	m.Set("shape", w.Shape)
	m.Set("unit", w.Unit)
	return m
}

// Period is the waveform period in seconds, zero when no samples exist.
func (w Waveform) Period() float64 {
	var max float64
	for _, t := range w.Time {
		if t > max {
			max = t
		}
	}
	return max
}

// Frequency is the waveform frequency in Hz.
func (w Waveform) Frequency() float64 {
	if p := w.Period(); p > 0 {
		return 1 / p
	}
	return 0
}

// Peak is the maximum sample value.
func (w Waveform) Peak() float64 {
	if len(w.Data) == 0 {
		return 0
	}
	max := w.Data[0]
	for _, d := range w.Data[1:] {
		if d > max {
			max = d
		}
	}
	return max
}

// Min is the minimum sample value.
func (w Waveform) Min() float64 {
	if len(w.Data) == 0 {
		return 0
	}
	min := w.Data[0]
	for _, d := range w.Data[1:] {
		if d < min {
			min = d
		}
	}
	return min
}

// PeakToPeak is the sample excursion.
func (w Waveform) PeakToPeak() float64 {
	return w.Peak() - w.Min()
}

func floats(fs []float64) []any {
	out := make([]any, len(fs))
	for i, f := range fs {
		out[i] = f
	}
	return out
}
