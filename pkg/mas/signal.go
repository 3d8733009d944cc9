package mas

import "github.com/mas-protocol/mas-go/pkg/convert"

// Waveform holds raw periodic sample data. Time may be omitted for
// equidistant sampling.
type Waveform struct {
	Data          []float64
	Time          []float64
	NumberPeriods *int
}

func (d decoder) waveform(p convert.Path, v any) (Waveform, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return Waveform{}, err
	}
	var out Waveform
	if out.Data, err = convert.Req(m, p, "Waveform", "data", convert.List(convert.Float), d.report); err != nil {
		return Waveform{}, err
	}
	if out.Time, err = convert.OptSlice(m, p, "time", convert.Float); err != nil {
		return Waveform{}, err
	}
	if out.NumberPeriods, err = convert.Opt(m, p, "numberPeriods", convert.Int); err != nil {
		return Waveform{}, err
	}
	return out, nil
}

func (w Waveform) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("data", floats(w.Data))
	if w.Time != nil {
		m.Set("time", floats(w.Time))
	}
	convert.Put(m, "numberPeriods", w.NumberPeriods)
	return m
}

// Processed holds summary statistics of a signal: shape label, offset, and
// whichever measures the producer computed.
type Processed struct {
	Label                WaveformLabel
	Offset               float64
	AcEffectiveFrequency *float64
	Average              *float64
	DutyCycle            *float64
	EffectiveFrequency   *float64
	Peak                 *float64
	PeakToPeak           *float64
	Phase                *float64
	Rms                  *float64
	Thd                  *float64
}

func (d decoder) processed(p convert.Path, v any) (Processed, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return Processed{}, err
	}
	var out Processed
	if out.Label, err = convert.Req(m, p, "Processed", "label", waveformLabels.Decode, d.report); err != nil {
		return Processed{}, err
	}
	if out.Offset, err = convert.Req(m, p, "Processed", "offset", convert.Float, d.report); err != nil {
		return Processed{}, err
	}
	if out.AcEffectiveFrequency, err = convert.Opt(m, p, "acEffectiveFrequency", convert.Float); err != nil {
		return Processed{}, err
	}
	if out.Average, err = convert.Opt(m, p, "average", convert.Float); err != nil {
		return Processed{}, err
	}
	if out.DutyCycle, err = convert.Opt(m, p, "dutyCycle", convert.Float); err != nil {
		return Processed{}, err
	}
	if out.EffectiveFrequency, err = convert.Opt(m, p, "effectiveFrequency", convert.Float); err != nil {
		return Processed{}, err
	}
	if out.Peak, err = convert.Opt(m, p, "peak", convert.Float); err != nil {
		return Processed{}, err
	}
	if out.PeakToPeak, err = convert.Opt(m, p, "peakToPeak", convert.Float); err != nil {
		return Processed{}, err
	}
	if out.Phase, err = convert.Opt(m, p, "phase", convert.Float); err != nil {
		return Processed{}, err
	}
	if out.Rms, err = convert.Opt(m, p, "rms", convert.Float); err != nil {
		return Processed{}, err
	}
	if out.Thd, err = convert.Opt(m, p, "thd", convert.Float); err != nil {
		return Processed{}, err
	}
	return out, nil
}

func (pr Processed) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("label", pr.Label)
	m.Set("offset", pr.Offset)
	convert.Put(m, "acEffectiveFrequency", pr.AcEffectiveFrequency)
	convert.Put(m, "average", pr.Average)
	convert.Put(m, "dutyCycle", pr.DutyCycle)
	convert.Put(m, "effectiveFrequency", pr.EffectiveFrequency)
	convert.Put(m, "peak", pr.Peak)
	convert.Put(m, "peakToPeak", pr.PeakToPeak)
	convert.Put(m, "phase", pr.Phase)
	convert.Put(m, "rms", pr.Rms)
	convert.Put(m, "thd", pr.Thd)
	return m
}

// Harmonics holds a frequency-domain view as parallel amplitude and
// frequency arrays.
type Harmonics struct {
	Amplitudes  []float64
	Frequencies []float64
}

func (d decoder) harmonics(p convert.Path, v any) (Harmonics, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return Harmonics{}, err
	}
	var out Harmonics
	if out.Amplitudes, err = convert.Req(m, p, "Harmonics", "amplitudes", convert.List(convert.Float), d.report); err != nil {
		return Harmonics{}, err
	}
	if out.Frequencies, err = convert.Req(m, p, "Harmonics", "frequencies", convert.List(convert.Float), d.report); err != nil {
		return Harmonics{}, err
	}
	return out, nil
}

func (h Harmonics) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("amplitudes", floats(h.Amplitudes))
	m.Set("frequencies", floats(h.Frequencies))
	return m
}

// SignalDescriptor describes one excitation signal. The three views are
// independently optional; a valid descriptor carries any non-empty subset.
type SignalDescriptor struct {
	Waveform  *Waveform
	Processed *Processed
	Harmonics *Harmonics
}

func (d decoder) signalDescriptor(p convert.Path, v any) (SignalDescriptor, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return SignalDescriptor{}, err
	}
	var out SignalDescriptor
	if out.Waveform, err = convert.Opt(m, p, "waveform", d.waveform); err != nil {
		return SignalDescriptor{}, err
	}
	if out.Processed, err = convert.Opt(m, p, "processed", d.processed); err != nil {
		return SignalDescriptor{}, err
	}
	if out.Harmonics, err = convert.Opt(m, p, "harmonics", d.harmonics); err != nil {
		return SignalDescriptor{}, err
	}
	return out, nil
}

func (s SignalDescriptor) encode() *convert.Map {
	m := convert.NewMap()
	if s.Waveform != nil {
		m.Set("waveform", s.Waveform.encode())
	}
	if s.Processed != nil {
		m.Set("processed", s.Processed.encode())
	}
	if s.Harmonics != nil {
		m.Set("harmonics", s.Harmonics.encode())
	}
	return m
}

// floats widens a slice for the JSON encoder without aliasing the source.
func floats(fs []float64) []any {
	out := make([]any, len(fs))
	for i, f := range fs {
		out[i] = f
	}
	return out
}
