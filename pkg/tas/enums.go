package tas

import "github.com/mas-protocol/mas-go/pkg/convert"

// OperatingMode is the converter conduction mode.
type OperatingMode string

const (
	OperatingModeCCM OperatingMode = "ccm"
	OperatingModeDCM OperatingMode = "dcm"
	OperatingModeBCM OperatingMode = "bcm"
)

// ModulationType is the switching modulation scheme.
type ModulationType string

const (
	ModulationPWM        ModulationType = "pwm"
	ModulationPFM        ModulationType = "pfm"
	ModulationHysteretic ModulationType = "hysteretic"
)

// ControlMode is the control loop architecture.
type ControlMode string

const (
	ControlVoltageMode ControlMode = "voltage_mode"
	ControlCurrentMode ControlMode = "current_mode"
)

// WaveformShape classifies a TAS waveform.
type WaveformShape string

const (
	ShapeTriangular  WaveformShape = "triangular"
	ShapeRectangular WaveformShape = "rectangular"
	ShapeCustom      WaveformShape = "custom"
)

var (
	operatingModes  = convert.NewEnum("OperatingMode", OperatingModeCCM, OperatingModeDCM, OperatingModeBCM)
	modulationTypes = convert.NewEnum("ModulationType", ModulationPWM, ModulationPFM, ModulationHysteretic)
	controlModes    = convert.NewEnum("ControlMode", ControlVoltageMode, ControlCurrentMode)
	waveformShapes  = convert.NewEnum("WaveformShape", ShapeTriangular, ShapeRectangular, ShapeCustom)
)
