package builder

import (
	"math"

	"github.com/mas-protocol/mas-go/pkg/mas"
	"github.com/mas-protocol/mas-go/pkg/waveform"
)

// Inductor builds the inputs for a standalone inductor design driven
// by a DC bias with AC ripple.
type Inductor struct {
	spec
	inductance *float64
	tolerance  float64
	idc        float64
	iacPP      float64
	iacRMS     float64
	frequency  float64
	duty       float64
	sinusoidal bool
}

// NewInductor returns an inductor builder with a 100 kHz excitation at
// 50% duty and 10% inductance tolerance.
func NewInductor() *Inductor {
	return &Inductor{spec: newSpec(), tolerance: 0.1, frequency: 100e3, duty: 0.5}
}

// Inductance sets the target inductance and its relative tolerance.
func (b *Inductor) Inductance(l, tol float64) *Inductor {
	b.inductance, b.tolerance = &l, tol
	return b
}

// Idc sets the DC bias current.
func (b *Inductor) Idc(i float64) *Inductor {
	b.idc = i
	return b
}

// IacPP sets the peak-to-peak ripple current. The RMS equivalent of a
// triangular ripple is derived for the sinusoidal excitation mode.
func (b *Inductor) IacPP(i float64) *Inductor {
	b.iacPP = i
	b.iacRMS = i / (2 * math.Sqrt(3))
	return b
}

// Fsw sets the excitation frequency in Hz.
func (b *Inductor) Fsw(f float64) *Inductor {
	b.frequency = f
	return b
}

// Duty sets the duty cycle of the triangular excitation.
func (b *Inductor) Duty(d float64) *Inductor {
	b.duty = d
	return b
}

// Sinusoidal switches the excitation from triangular to sinusoidal.
func (b *Inductor) Sinusoidal() *Inductor {
	b.sinusoidal = true
	return b
}

// MaxDimensions bounds the finished part, in meters.
func (b *Inductor) MaxDimensions(width, height, depth float64) *Inductor {
	b.maxWidth, b.maxHeight, b.maxDepth = &width, &height, &depth
	return b
}

// Ambient sets the ambient temperature in Celsius.
func (b *Inductor) Ambient(celsius float64) *Inductor {
	b.ambientTemp = celsius
	return b
}

// Build assembles the MAS inputs with a single operating point.
func (b *Inductor) Build() (*mas.Inputs, error) {
	if b.inductance == nil {
		return nil, incomplete("inductance not specified")
	}

	var current mas.SignalDescriptor
	if b.sinusoidal {
		rms := b.iacRMS
		if rms == 0 {
			rms = 0.1
		}
		current = waveform.SinusoidalCurrent(rms, b.frequency, b.idc, 64)
	} else {
		pp := b.iacPP
		if pp == 0 {
			pp = 0.1
		}
		current = waveform.TriangularCurrent(b.idc, pp, b.duty, b.frequency)
	}

	return &mas.Inputs{
		DesignRequirements: mas.DesignRequirements{
			MagnetizingInductance: tolerance(*b.inductance, b.tolerance),
			TurnsRatios:           []mas.DimensionWithTolerance{},
			MaximumDimensions:     b.maxDimensions(),
			Name:                  strptr("Inductor"),
		},
		OperatingPoints: []mas.OperatingPoint{
			operatingPoint("Operating Point", b.ambientTemp,
				excitation("Inductor", b.frequency, &current, nil)),
		},
	}, nil
}
