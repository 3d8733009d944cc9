package builder

import (
	"github.com/mas-protocol/mas-go/pkg/mas"
	"github.com/mas-protocol/mas-go/pkg/waveform"
)

// Boost builds the inputs for a boost converter inductor design.
type Boost struct {
	spec
	vinMin      float64
	vinMax      float64
	vout        float64
	pout        float64
	frequency   float64
	rippleRatio float64
	efficiency  float64
	inductance  *float64
}

// NewBoost returns a boost builder with a 100 kHz switching frequency,
// 30% ripple ratio and 90% assumed efficiency.
func NewBoost() *Boost {
	return &Boost{spec: newSpec(), frequency: 100e3, rippleRatio: 0.3, efficiency: 0.9}
}

// Vin sets the input voltage range.
func (b *Boost) Vin(min, max float64) *Boost {
	b.vinMin, b.vinMax = min, max
	return b
}

// Vout sets the output voltage.
func (b *Boost) Vout(v float64) *Boost {
	b.vout = v
	return b
}

// Pout sets the output power.
func (b *Boost) Pout(p float64) *Boost {
	b.pout = p
	return b
}

// Fsw sets the switching frequency in Hz.
func (b *Boost) Fsw(f float64) *Boost {
	b.frequency = f
	return b
}

// Efficiency sets the assumed conversion efficiency.
func (b *Boost) Efficiency(eta float64) *Boost {
	b.efficiency = eta
	return b
}

// Inductance fixes the inductance instead of deriving it.
func (b *Boost) Inductance(l float64) *Boost {
	b.inductance = &l
	return b
}

// MaxDimensions bounds the finished part, in meters.
func (b *Boost) MaxDimensions(width, height, depth float64) *Boost {
	b.maxWidth, b.maxHeight, b.maxDepth = &width, &height, &depth
	return b
}

// Ambient sets the ambient temperature in Celsius.
func (b *Boost) Ambient(celsius float64) *Boost {
	b.ambientTemp = celsius
	return b
}

func (b *Boost) validate() error {
	if b.vinMin == 0 {
		return incomplete("input voltage not specified")
	}
	if b.vout == 0 {
		return incomplete("output voltage not specified")
	}
	if b.pout == 0 {
		return incomplete("output power not specified")
	}
	if b.vout <= b.vinMax {
		return incomplete("boost output voltage must exceed maximum input")
	}
	return nil
}

// CalculatedInductance returns the inductance derived from the ripple
// target at minimum input, unless fixed.
func (b *Boost) CalculatedInductance() float64 {
	if b.inductance != nil {
		return *b.inductance
	}
	duty := 1 - b.vinMin/b.vout
	tOn := duty / b.frequency
	pin := b.pout / b.efficiency
	iinAvg := pin / b.vinMin
	deltaI := b.rippleRatio * iinAvg
	return b.vinMin * tOn / deltaI
}

// Build assembles the MAS inputs. The minimum-input point carries the
// highest current stress and always comes first.
func (b *Boost) Build() (*mas.Inputs, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	l := b.CalculatedInductance()

	points := []mas.OperatingPoint{b.point("Min Vin", b.vinMin, l)}
	if b.vinMax > b.vinMin*1.1 {
		points = append(points, b.point("Max Vin", b.vinMax, l))
	}

	return &mas.Inputs{
		DesignRequirements: mas.DesignRequirements{
			MagnetizingInductance: tolerance(l, 0.1),
			TurnsRatios:           []mas.DimensionWithTolerance{},
			MaximumDimensions:     b.maxDimensions(),
			Name:                  strptr("Boost Inductor"),
			Topology:              topologyPtr(mas.TopologyBoostConverter),
		},
		OperatingPoints: points,
	}, nil
}

func (b *Boost) point(label string, vin, l float64) mas.OperatingPoint {
	current := waveform.BoostInductorCurrent(vin, b.vout, b.pout, l, b.frequency, b.efficiency)
	voltage := waveform.BoostInductorVoltage(vin, b.vout, b.frequency)
	return operatingPoint(label, b.ambientTemp,
		excitation("Inductor", b.frequency, &current, &voltage))
}
