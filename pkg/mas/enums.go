package mas

import "github.com/mas-protocol/mas-go/pkg/convert"

// Closed wire enums. Each type's legal values are a fixed literal table
// registered once below; decode is exact-match and encode always emits the
// registered spelling.

// InsulationType classifies the insulation grade between windings.
type InsulationType string

const (
	InsulationTypeBasic         InsulationType = "Basic"
	InsulationTypeDouble        InsulationType = "Double"
	InsulationTypeFunctional    InsulationType = "Functional"
	InsulationTypeReinforced    InsulationType = "Reinforced"
	InsulationTypeSupplementary InsulationType = "Supplementary"
)

// CTI is the comparative tracking index group of an insulating material.
type CTI string

const (
	CTIGroupI    CTI = "Group I"
	CTIGroupII   CTI = "Group II"
	CTIGroupIIIA CTI = "Group IIIA"
	CTIGroupIIIB CTI = "Group IIIB"
)

// PollutionDegree classifies the expected micro-environment contamination.
type PollutionDegree string

const (
	PollutionDegreeP1 PollutionDegree = "P1"
	PollutionDegreeP2 PollutionDegree = "P2"
	PollutionDegreeP3 PollutionDegree = "P3"
)

// OvervoltageCategory classifies transient overvoltage exposure.
type OvervoltageCategory string

const (
	OvervoltageCategoryOVCI   OvervoltageCategory = "OVC-I"
	OvervoltageCategoryOVCII  OvervoltageCategory = "OVC-II"
	OvervoltageCategoryOVCIII OvervoltageCategory = "OVC-III"
	OvervoltageCategoryOVCIV  OvervoltageCategory = "OVC-IV"
)

// InsulationStandard names a safety standard the design must satisfy.
type InsulationStandard string

const (
	InsulationStandardIEC606641 InsulationStandard = "IEC 60664-1"
	InsulationStandardIEC623681 InsulationStandard = "IEC 62368-1"
	InsulationStandardIEC615581 InsulationStandard = "IEC 61558-1"
	InsulationStandardIEC603351 InsulationStandard = "IEC 60335-1"
)

// IsolationSide places a winding on one side of the isolation barrier.
type IsolationSide string

const (
	IsolationSidePrimary   IsolationSide = "primary"
	IsolationSideSecondary IsolationSide = "secondary"
	IsolationSideTertiary  IsolationSide = "tertiary"
)

// Market is the target market segment of the design.
type Market string

const (
	MarketCommercial Market = "Commercial"
	MarketIndustrial Market = "Industrial"
	MarketMedical    Market = "Medical"
	MarketMilitary   Market = "Military"
	MarketSpace      Market = "Space"
)

// Topology names the converter topology the magnetic is designed for.
type Topology string

const (
	TopologyBuckConverter        Topology = "Buck Converter"
	TopologyBoostConverter       Topology = "Boost Converter"
	TopologyBuckBoostConverter   Topology = "Buck-Boost Converter"
	TopologyFlybackConverter     Topology = "Flyback Converter"
	TopologyForwardConverter     Topology = "Forward Converter"
	TopologyPushPullConverter    Topology = "Push-Pull Converter"
	TopologyHalfBridgeConverter  Topology = "Half-Bridge Converter"
	TopologyFullBridgeConverter  Topology = "Full-Bridge Converter"
	TopologyPhaseShiftedFBC      Topology = "Phase-Shifted Full-Bridge Converter"
	TopologyLLCResonantConverter Topology = "LLC Resonant Converter"
	TopologyInverter             Topology = "Inverter"
)

// WaveformLabel tags a processed signal with its shape family.
type WaveformLabel string

const (
	WaveformLabelSinusoidal  WaveformLabel = "Sinusoidal"
	WaveformLabelTriangular  WaveformLabel = "Triangular"
	WaveformLabelRectangular WaveformLabel = "Rectangular"
	WaveformLabelTrapezoidal WaveformLabel = "Trapezoidal"
	WaveformLabelCustom      WaveformLabel = "Custom"
)

// Status is the manufacturing status of a referenced part.
type Status string

const (
	StatusProduction Status = "production"
	StatusPrototype  Status = "prototype"
	StatusObsolete   Status = "obsolete"
)

// GapType classifies how a core gap is obtained.
type GapType string

const (
	GapTypeSubtractive GapType = "subtractive"
	GapTypeAdditive    GapType = "additive"
	GapTypeResidual    GapType = "residual"
)

// CoreType classifies the mechanical construction of a core.
type CoreType string

const (
	CoreTypeTwoPieceSet   CoreType = "two-piece set"
	CoreTypeToroidal      CoreType = "toroidal"
	CoreTypeClosedShape   CoreType = "closed shape"
	CoreTypePieceAndPlate CoreType = "piece and plate"
)

// Literal tables, built once at process start. Decoding goes through these;
// encoding is the typed constant's own spelling.
var (
	insulationTypes     = convert.NewEnum("InsulationType", InsulationTypeBasic, InsulationTypeDouble, InsulationTypeFunctional, InsulationTypeReinforced, InsulationTypeSupplementary)
	ctiGroups           = convert.NewEnum("CTI", CTIGroupI, CTIGroupII, CTIGroupIIIA, CTIGroupIIIB)
	pollutionDegrees    = convert.NewEnum("PollutionDegree", PollutionDegreeP1, PollutionDegreeP2, PollutionDegreeP3)
	overvoltageCats     = convert.NewEnum("OvervoltageCategory", OvervoltageCategoryOVCI, OvervoltageCategoryOVCII, OvervoltageCategoryOVCIII, OvervoltageCategoryOVCIV)
	insulationStandards = convert.NewEnum("InsulationStandard", InsulationStandardIEC606641, InsulationStandardIEC623681, InsulationStandardIEC615581, InsulationStandardIEC603351)
	isolationSides      = convert.NewEnum("IsolationSide", IsolationSidePrimary, IsolationSideSecondary, IsolationSideTertiary)
	markets             = convert.NewEnum("Market", MarketCommercial, MarketIndustrial, MarketMedical, MarketMilitary, MarketSpace)
	topologies          = convert.NewEnum("Topology", TopologyBuckConverter, TopologyBoostConverter, TopologyBuckBoostConverter, TopologyFlybackConverter, TopologyForwardConverter, TopologyPushPullConverter, TopologyHalfBridgeConverter, TopologyFullBridgeConverter, TopologyPhaseShiftedFBC, TopologyLLCResonantConverter, TopologyInverter)
	waveformLabels      = convert.NewEnum("WaveformLabel", WaveformLabelSinusoidal, WaveformLabelTriangular, WaveformLabelRectangular, WaveformLabelTrapezoidal, WaveformLabelCustom)
	manufacturingStatus = convert.NewEnum("Status", StatusProduction, StatusPrototype, StatusObsolete)
	gapTypes            = convert.NewEnum("GapType", GapTypeSubtractive, GapTypeAdditive, GapTypeResidual)
	coreTypes           = convert.NewEnum("CoreType", CoreTypeTwoPieceSet, CoreTypeToroidal, CoreTypeClosedShape, CoreTypePieceAndPlate)
)
