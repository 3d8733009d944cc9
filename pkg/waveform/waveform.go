// Package waveform generates MAS-shaped excitation signals for the
// standard DC-DC converter topologies. Every generator returns a
// mas.SignalDescriptor carrying raw time/data samples, ready to drop
// into an operating point excitation.
package waveform

import (
	"math"

	"github.com/mas-protocol/mas-go/pkg/mas"
)

// TriangularCurrent builds an inductor-style triangular current around
// a DC level with the given peak-to-peak ripple.
func TriangularCurrent(idc, ripplePP, duty, freq float64) mas.SignalDescriptor {
	period := 1 / freq
	tOn := duty * period
	min := idc - ripplePP/2
	max := idc + ripplePP/2
	return samples(
		[]float64{min, max, min},
		[]float64{0, tOn, period},
	)
}

// RectangularVoltage builds a switch-node style rectangular voltage.
func RectangularVoltage(von, voff, duty, freq float64) mas.SignalDescriptor {
	period := 1 / freq
	tOn := duty * period
	return samples(
		[]float64{von, von, voff, voff},
		[]float64{0, tOn, tOn, period},
	)
}

// SinusoidalCurrent samples one period of a sine at numPoints+1 evenly
// spaced instants, with an optional DC offset.
func SinusoidalCurrent(irms, freq, dcOffset float64, numPoints int) mas.SignalDescriptor {
	period := 1 / freq
	peak := irms * math.Sqrt2
	data := make([]float64, numPoints+1)
	time := make([]float64, numPoints+1)
	for i := 0; i <= numPoints; i++ {
		t := float64(i) * period / float64(numPoints)
		time[i] = t
		data[i] = dcOffset + peak*math.Sin(2*math.Pi*freq*t)
	}
	return samples(data, time)
}

// BuckInductorCurrent is the inductor current of a buck converter in
// continuous conduction.
func BuckInductorCurrent(vin, vout, iout, inductance, freq float64) mas.SignalDescriptor {
	period := 1 / freq
	duty := vout / vin
	tOn := duty * period
	deltaI := (vin - vout) * tOn / inductance
	min := math.Max(0, iout-deltaI/2)
	max := iout + deltaI/2
	return samples(
		[]float64{min, max, min},
		[]float64{0, tOn, period},
	)
}

// BuckInductorVoltage is the inductor voltage of a buck converter.
func BuckInductorVoltage(vin, vout, freq float64) mas.SignalDescriptor {
	period := 1 / freq
	tOn := vout / vin * period
	return samples(
		[]float64{vin - vout, vin - vout, -vout, -vout},
		[]float64{0, tOn, tOn, period},
	)
}

// BoostInductorCurrent is the inductor current of a boost converter in
// continuous conduction.
func BoostInductorCurrent(vin, vout, pout, inductance, freq, efficiency float64) mas.SignalDescriptor {
	period := 1 / freq
	duty := 1 - vin/vout
	tOn := duty * period
	pin := pout / efficiency
	iavg := pin / vin
	deltaI := vin * tOn / inductance
	min := math.Max(0, iavg-deltaI/2)
	max := iavg + deltaI/2
	return samples(
		[]float64{min, max, min},
		[]float64{0, tOn, period},
	)
}

// BoostInductorVoltage is the inductor voltage of a boost converter.
func BoostInductorVoltage(vin, vout, freq float64) mas.SignalDescriptor {
	period := 1 / freq
	duty := 1 - vin/vout
	tOn := duty * period
	return samples(
		[]float64{vin, vin, vin - vout, vin - vout},
		[]float64{0, tOn, tOn, period},
	)
}

// FlybackPrimaryCurrent is the primary winding current of a flyback
// converter. Discontinuous mode produces a sawtooth that returns to
// zero inside the period; continuous mode a trapezoid.
func FlybackPrimaryCurrent(vin, vout, pout, n, lm, freq, efficiency float64, dcm bool) mas.SignalDescriptor {
	period := 1 / freq
	pin := pout / efficiency
	voutReflected := n * vout
	duty := voutReflected / (vin + voutReflected)
	tOn := duty * period

	if dcm {
		ipk := math.Sqrt(2 * pin / (freq * lm * duty))
		tReset := 2 * lm * ipk / voutReflected
		tReset = math.Min(tReset, period-tOn)
		return samples(
			[]float64{0, ipk, 0, 0},
			[]float64{0, tOn, tOn + tReset, period},
		)
	}
	iavg := pin / vin
	deltaI := vin * tOn / lm
	min := math.Max(0, iavg-deltaI/2)
	max := iavg + deltaI/2
	return samples(
		[]float64{min, max, 0, 0},
		[]float64{0, tOn, tOn, period},
	)
}

// FlybackSecondaryCurrent is the secondary winding current of a
// flyback converter.
func FlybackSecondaryCurrent(vin, vout, iout, n, lm, freq float64, dcm bool) mas.SignalDescriptor {
	period := 1 / freq
	voutReflected := n * vout
	duty := voutReflected / (vin + voutReflected)
	tOn := duty * period
	tOff := period - tOn
	lmSec := lm / (n * n)

	if dcm {
		pout := vout * iout
		pin := pout / 0.85
		ipriPk := math.Sqrt(2 * pin / (freq * lm * duty))
		isecPk := ipriPk * n
		tReset := math.Min(lmSec*isecPk/vout, tOff)
		return samples(
			[]float64{0, 0, isecPk, 0, 0},
			[]float64{0, tOn, tOn, tOn + tReset, period},
		)
	}
	isecAvg := iout / (1 - duty)
	deltaI := vout * tOff / lmSec
	max := isecAvg + deltaI/2
	min := math.Max(0, isecAvg-deltaI/2)
	return samples(
		[]float64{0, 0, max, min},
		[]float64{0, tOn, tOn, period},
	)
}

// CriticalInductance is the DCM/CCM boundary inductance of a boost
// converter: below it the converter runs discontinuous.
func CriticalInductance(vin, vout, iout, freq float64) float64 {
	duty := 1 - vin/vout
	return vin * duty * (1 - duty) / (2 * freq * iout)
}

func samples(data, time []float64) mas.SignalDescriptor {
	return mas.SignalDescriptor{
		Waveform: &mas.Waveform{Data: data, Time: time},
	}
}
