package builder

import (
	"github.com/mas-protocol/mas-go/pkg/mas"
	"github.com/mas-protocol/mas-go/pkg/waveform"
)

// Buck builds the inputs for a buck converter inductor design.
type Buck struct {
	spec
	vinMin      float64
	vinMax      float64
	vout        float64
	iout        float64
	frequency   float64
	rippleRatio float64
	inductance  *float64
}

// NewBuck returns a buck builder with a 100 kHz switching frequency
// and 30% ripple ratio.
func NewBuck() *Buck {
	return &Buck{spec: newSpec(), frequency: 100e3, rippleRatio: 0.3}
}

// Vin sets the input voltage range. Pass equal values for a fixed rail.
func (b *Buck) Vin(min, max float64) *Buck {
	b.vinMin, b.vinMax = min, max
	return b
}

// Vout sets the output voltage.
func (b *Buck) Vout(v float64) *Buck {
	b.vout = v
	return b
}

// Iout sets the output current.
func (b *Buck) Iout(i float64) *Buck {
	b.iout = i
	return b
}

// Fsw sets the switching frequency in Hz.
func (b *Buck) Fsw(f float64) *Buck {
	b.frequency = f
	return b
}

// RippleRatio sets the target inductor ripple as a fraction of the
// output current.
func (b *Buck) RippleRatio(r float64) *Buck {
	b.rippleRatio = r
	return b
}

// Inductance fixes the inductance instead of deriving it from the
// ripple target.
func (b *Buck) Inductance(l float64) *Buck {
	b.inductance = &l
	return b
}

// MaxDimensions bounds the finished part, in meters.
func (b *Buck) MaxDimensions(width, height, depth float64) *Buck {
	b.maxWidth, b.maxHeight, b.maxDepth = &width, &height, &depth
	return b
}

// Ambient sets the ambient temperature in Celsius.
func (b *Buck) Ambient(celsius float64) *Buck {
	b.ambientTemp = celsius
	return b
}

func (b *Buck) validate() error {
	if b.vinMin == 0 {
		return incomplete("input voltage not specified")
	}
	if b.vout == 0 {
		return incomplete("output voltage not specified")
	}
	if b.iout == 0 {
		return incomplete("output current not specified")
	}
	if b.vout >= b.vinMin {
		return incomplete("buck output voltage must be below minimum input")
	}
	return nil
}

// CalculatedInductance returns the inductance the builder will use,
// derived from the ripple target at maximum input unless fixed.
func (b *Buck) CalculatedInductance() float64 {
	if b.inductance != nil {
		return *b.inductance
	}
	duty := b.vout / b.vinMax
	tOn := duty / b.frequency
	deltaI := b.rippleRatio * b.iout
	return (b.vinMax - b.vout) * tOn / deltaI
}

// Build assembles the MAS inputs: one operating point per input-line
// corner, skipping the minimum-line point when the range is narrow.
func (b *Buck) Build() (*mas.Inputs, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	l := b.CalculatedInductance()

	points := []mas.OperatingPoint{b.point("Max Vin", b.vinMax, l)}
	if b.vinMax > b.vinMin*1.1 {
		points = append(points, b.point("Min Vin", b.vinMin, l))
	}

	return &mas.Inputs{
		DesignRequirements: mas.DesignRequirements{
			MagnetizingInductance: tolerance(l, 0.1),
			TurnsRatios:           []mas.DimensionWithTolerance{},
			MaximumDimensions:     b.maxDimensions(),
			Name:                  strptr("Buck Inductor"),
			Topology:              topologyPtr(mas.TopologyBuckConverter),
		},
		OperatingPoints: points,
	}, nil
}

func (b *Buck) point(label string, vin, l float64) mas.OperatingPoint {
	current := waveform.BuckInductorCurrent(vin, b.vout, b.iout, l, b.frequency)
	voltage := waveform.BuckInductorVoltage(vin, b.vout, b.frequency)
	return operatingPoint(label, b.ambientTemp,
		excitation("Inductor", b.frequency, &current, &voltage))
}

func topologyPtr(t mas.Topology) *mas.Topology { return &t }
