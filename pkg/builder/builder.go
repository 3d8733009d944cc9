// Package builder turns a handful of electrical parameters into
// complete MAS inputs for the common magnetic design problems: flyback
// transformers, buck and boost inductors, and standalone inductors.
//
// Builders are fluent and validate at Build time, so a partially
// configured builder is cheap to pass around and the full parameter set
// is checked exactly once.
package builder

import (
	"errors"
	"fmt"

	"github.com/mas-protocol/mas-go/pkg/mas"
)

// ErrIncomplete marks a Build call on a builder missing a required
// parameter.
var ErrIncomplete = errors.New("builder: incomplete parameters")

func incomplete(what string) error {
	return fmt.Errorf("%w: %s", ErrIncomplete, what)
}

// spec carries the constraints shared by every topology: mechanical
// bounds and ambient temperature.
type spec struct {
	maxWidth    *float64
	maxHeight   *float64
	maxDepth    *float64
	ambientTemp float64
}

func newSpec() spec {
	return spec{ambientTemp: 25}
}

func (s *spec) maxDimensions() *mas.MaximumDimensions {
	if s.maxWidth == nil && s.maxHeight == nil && s.maxDepth == nil {
		return nil
	}
	return &mas.MaximumDimensions{
		Width:  s.maxWidth,
		Height: s.maxHeight,
		Depth:  s.maxDepth,
	}
}

// tolerance wraps a nominal value with symmetric relative bounds.
func tolerance(nominal, rel float64) mas.DimensionWithTolerance {
	min := nominal * (1 - rel)
	max := nominal * (1 + rel)
	return mas.DimensionWithTolerance{Nominal: nominal, Minimum: &min, Maximum: &max}
}

func nominal(v float64) mas.DimensionWithTolerance {
	return mas.DimensionWithTolerance{Nominal: v}
}

func operatingPoint(name string, ambient float64, excitations ...mas.OperatingPointExcitation) mas.OperatingPoint {
	return mas.OperatingPoint{
		Name:                  &name,
		Conditions:            mas.OperatingConditions{AmbientTemperature: ambient},
		ExcitationsPerWinding: excitations,
	}
}

func excitation(name string, freq float64, current, voltage *mas.SignalDescriptor) mas.OperatingPointExcitation {
	return mas.OperatingPointExcitation{
		Name:      &name,
		Frequency: freq,
		Current:   current,
		Voltage:   voltage,
	}
}

func strptr(s string) *string { return &s }
