package builder

import (
	"math"
	"strconv"

	"github.com/mas-protocol/mas-go/pkg/mas"
	"github.com/mas-protocol/mas-go/pkg/waveform"
)

// FlybackOutput is one secondary output rail.
type FlybackOutput struct {
	Voltage float64
	Current float64
}

// Flyback builds the inputs for a flyback transformer design. Input
// can be an AC line (rectified internally) or a DC bus.
type Flyback struct {
	spec
	vinMin     float64
	vinMax     float64
	vinIsAC    bool
	outputs    []FlybackOutput
	frequency  float64
	efficiency float64
	dcm        bool
	insulation *mas.InsulationType
	inductance *float64
	turnsRatio *float64
}

// NewFlyback returns a flyback builder with a 100 kHz switching
// frequency and 85% assumed efficiency, in continuous conduction.
func NewFlyback() *Flyback {
	return &Flyback{spec: newSpec(), frequency: 100e3, efficiency: 0.85}
}

// VinAC sets an AC input range; the DC bus is derived from the
// rectified peaks.
func (b *Flyback) VinAC(min, max float64) *Flyback {
	b.vinMin, b.vinMax, b.vinIsAC = min, max, true
	return b
}

// VinDC sets a DC input range.
func (b *Flyback) VinDC(min, max float64) *Flyback {
	b.vinMin, b.vinMax, b.vinIsAC = min, max, false
	return b
}

// Output adds a secondary rail. The first output sets the primary
// turns ratio reference.
func (b *Flyback) Output(voltage, current float64) *Flyback {
	b.outputs = append(b.outputs, FlybackOutput{Voltage: voltage, Current: current})
	return b
}

// Fsw sets the switching frequency in Hz.
func (b *Flyback) Fsw(f float64) *Flyback {
	b.frequency = f
	return b
}

// Efficiency sets the assumed conversion efficiency.
func (b *Flyback) Efficiency(eta float64) *Flyback {
	b.efficiency = eta
	return b
}

// DCM switches the design to discontinuous conduction.
func (b *Flyback) DCM() *Flyback {
	b.dcm = true
	return b
}

// Isolation adds an insulation requirement of the given type.
func (b *Flyback) Isolation(t mas.InsulationType) *Flyback {
	b.insulation = &t
	return b
}

// MagnetizingInductance fixes the magnetizing inductance instead of
// deriving it.
func (b *Flyback) MagnetizingInductance(l float64) *Flyback {
	b.inductance = &l
	return b
}

// TurnsRatio fixes the primary-to-secondary turns ratio.
func (b *Flyback) TurnsRatio(n float64) *Flyback {
	b.turnsRatio = &n
	return b
}

// MaxDimensions bounds the finished part, in meters.
func (b *Flyback) MaxDimensions(width, height, depth float64) *Flyback {
	b.maxWidth, b.maxHeight, b.maxDepth = &width, &height, &depth
	return b
}

// Ambient sets the ambient temperature in Celsius.
func (b *Flyback) Ambient(celsius float64) *Flyback {
	b.ambientTemp = celsius
	return b
}

func (b *Flyback) validate() error {
	if b.vinMin == 0 {
		return incomplete("input voltage not specified")
	}
	if len(b.outputs) == 0 {
		return incomplete("no outputs specified")
	}
	return nil
}

// dcBus returns the worst-case DC bus range. An AC input is rectified
// with a 10% hold-up derating on the low line.
func (b *Flyback) dcBus() (float64, float64) {
	if b.vinIsAC {
		return b.vinMin * math.Sqrt2 * 0.9, b.vinMax * math.Sqrt2
	}
	return b.vinMin, b.vinMax
}

func (b *Flyback) totalPower() float64 {
	var p float64
	for _, out := range b.outputs {
		p += out.Voltage * out.Current
	}
	return p
}

// CalculatedTurnsRatio returns the primary-to-first-secondary turns
// ratio, targeting a 45% duty cycle at low line unless fixed.
func (b *Flyback) CalculatedTurnsRatio() float64 {
	if b.turnsRatio != nil {
		return *b.turnsRatio
	}
	vinMin, _ := b.dcBus()
	return (vinMin * 0.45) / (b.outputs[0].Voltage * 0.55)
}

func (b *Flyback) dutyCycle(vin, n float64) float64 {
	voutReflected := n * b.outputs[0].Voltage
	return voutReflected / (vin + voutReflected)
}

// CalculatedMagnetizingInductance returns the magnetizing inductance
// sized for the conduction mode at low line, unless fixed.
func (b *Flyback) CalculatedMagnetizingInductance() float64 {
	if b.inductance != nil {
		return *b.inductance
	}
	vinMin, _ := b.dcBus()
	n := b.CalculatedTurnsRatio()
	pin := b.totalPower() / b.efficiency
	d := b.dutyCycle(vinMin, n)
	tOn := d / b.frequency
	if b.dcm {
		ipkTarget := 2.5 * pin / vinMin
		return vinMin * tOn / ipkTarget
	}
	iavg := pin / vinMin
	deltaI := 0.3 * 2 * iavg
	return vinMin * tOn / deltaI
}

// Build assembles the MAS inputs: design requirements with one turns
// ratio per output, and low/high line operating points with primary
// voltage/current and per-secondary current excitations.
func (b *Flyback) Build() (*mas.Inputs, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	vinMin, vinMax := b.dcBus()
	n := b.CalculatedTurnsRatio()
	lm := b.CalculatedMagnetizingInductance()

	ratios := []mas.DimensionWithTolerance{nominal(n)}
	for _, out := range b.outputs[1:] {
		ratios = append(ratios, nominal(b.outputs[0].Voltage/out.Voltage))
	}

	dr := mas.DesignRequirements{
		MagnetizingInductance: tolerance(lm, 0.1),
		TurnsRatios:           ratios,
		MaximumDimensions:     b.maxDimensions(),
		Name:                  strptr("Flyback Transformer"),
		Topology:              topologyPtr(mas.TopologyFlybackConverter),
	}
	if b.insulation != nil {
		dr.Insulation = &mas.InsulationRequirements{
			InsulationType:      b.insulation,
			PollutionDegree:     pollutionPtr(mas.PollutionDegreeP2),
			OvervoltageCategory: overvoltagePtr(mas.OvervoltageCategoryOVCII),
		}
	}

	points := []mas.OperatingPoint{b.point("Low Line", vinMin, n, lm)}
	if vinMax > vinMin*1.1 {
		points = append(points, b.point("High Line", vinMax, n, lm))
	}

	return &mas.Inputs{DesignRequirements: dr, OperatingPoints: points}, nil
}

func (b *Flyback) point(label string, vin, n, lm float64) mas.OperatingPoint {
	pout := b.totalPower()
	vout := b.outputs[0].Voltage
	d := b.dutyCycle(vin, n)

	priCurrent := waveform.FlybackPrimaryCurrent(vin, vout, pout, n, lm, b.frequency, b.efficiency, b.dcm)
	priVoltage := waveform.RectangularVoltage(vin, 0, d, b.frequency)
	excitations := []mas.OperatingPointExcitation{
		excitation("Primary", b.frequency, &priCurrent, &priVoltage),
	}
	for i, out := range b.outputs {
		ratio := n
		if i > 0 {
			ratio = n * (vout / out.Voltage)
		}
		name := "Secondary"
		if len(b.outputs) > 1 {
			name = fmtSecondary(i + 1)
		}
		secCurrent := waveform.FlybackSecondaryCurrent(vin, out.Voltage, out.Current, ratio, lm, b.frequency, b.dcm)
		excitations = append(excitations, excitation(name, b.frequency, &secCurrent, nil))
	}
	return operatingPoint(label, b.ambientTemp, excitations...)
}

func fmtSecondary(i int) string {
	return "Secondary" + strconv.Itoa(i)
}

func pollutionPtr(p mas.PollutionDegree) *mas.PollutionDegree { return &p }

func overvoltagePtr(o mas.OvervoltageCategory) *mas.OvervoltageCategory { return &o }
