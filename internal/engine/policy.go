// Package engine implements the farm planning calculator: itemized cost
// model, yield and revenue projection, profitability metrics, strategy
// comparison, and input-intensity sensitivity analysis. All computations are
// pure functions of (catalog, request, policy); nothing here does I/O.
package engine

import "github.com/rotisserie/eris"

// Strategy names one of the three resourcing approaches.
type Strategy string

const (
	StrategyYieldMax Strategy = "yield_max"
	StrategyCostMin  Strategy = "cost_min"
	StrategyBalanced Strategy = "balanced"
)

// Strategies lists the supported strategies in comparison order.
var Strategies = []Strategy{StrategyCostMin, StrategyBalanced, StrategyYieldMax}

// CostBasis selects how per-hectare unit costs are derived. The historical
// cost surveys used both forms for the same line items, so both are kept as
// legitimate policies rather than unified.
type CostBasis string

const (
	// CostInterpolated derives the unit cost as min + (max-min)*intensity.
	CostInterpolated CostBasis = "interpolated"
	// CostFlat uses the published flat rate for the basic/manual approach.
	CostFlat CostBasis = "flat"
)

// LaborBasis selects the labor cost formula.
type LaborBasis string

const (
	// LaborDays prices labor as total field days x daily wage x hired share.
	LaborDays LaborBasis = "days"
	// LaborInterpolated interpolates a per-ha labor cost inversely with
	// intensity: more mechanization means less hired labor.
	LaborInterpolated LaborBasis = "interpolated"
)

// YieldBasis selects how yield per hectare is derived.
type YieldBasis string

const (
	// YieldOptimal reads the crop's optimal yield table entry directly.
	YieldOptimal YieldBasis = "optimal"
	// YieldBasic reads the crop's basic yield entry, falling back to
	// basicYieldFallback x optimal when the crop has no basic figure.
	YieldBasic YieldBasis = "basic"
	// YieldCurve scales optimal yield by floor + (1-floor)*intensity,
	// a diminishing-returns response to the input package.
	YieldCurve YieldBasis = "curve"
)

// basicYieldFallback approximates minimal-input yield for crops without a
// surveyed basic figure.
const basicYieldFallback = 0.55

// EquipmentOp names one selectively mechanized field operation. The unit
// cost for each operation comes from the catalog rates; the policy only
// fixes how much of it is done by machine.
type EquipmentOp struct {
	Name         string
	MechanizedAt float64 // fraction of the operation done by machine
}

// AdviceThresholds are the ROI percentage cut lines for the qualitative
// assessment messages. They differ per strategy.
type AdviceThresholds struct {
	Excellent float64
	Good      float64
	Positive  float64
}

// Policy is the fixed parameter set defining one resourcing strategy. Each
// named strategy is a constant Policy value; the sensitivity sweep derives
// per-level copies with WithIntensity, never mutating a shared instance.
type Policy struct {
	Strategy  Strategy
	Intensity float64 // [0,1], share of the full documented input package

	Costs            CostBasis
	ScaleInputPrices bool // premium input price scaled by intensity (input quality mix)

	Labor      LaborBasis
	HiredShare float64 // fraction of labor days hired vs family, LaborDays basis only

	// EquipmentOps, when set, replaces equipment interpolation with a
	// weighted sum of per-operation costs.
	EquipmentOps []EquipmentOp

	HandlingImprovement float64 // fraction of post-harvest loss avoided
	MarketReach         float64 // transport rate multiplier; <1 means local markets
	StorageQuality      float64 // storage rate multiplier

	Yield      YieldBasis
	YieldFloor float64 // YieldCurve only

	Advice AdviceThresholds
}

// WithIntensity returns a copy of the policy with the intensity replaced.
// The equipment op slice is shared but never written to.
func (p Policy) WithIntensity(intensity float64) Policy {
	p.Intensity = intensity
	return p
}

var yieldMaxPolicy = Policy{
	Strategy:  StrategyYieldMax,
	Intensity: 1.0,

	Costs: CostInterpolated,
	Labor: LaborInterpolated,

	MarketReach:    1.0,
	StorageQuality: 1.0,

	Yield: YieldOptimal,

	Advice: AdviceThresholds{Excellent: 50, Good: 30, Positive: 0},
}

var costMinPolicy = Policy{
	Strategy:  StrategyCostMin,
	Intensity: 0.65,

	Costs:      CostFlat,
	Labor:      LaborDays,
	HiredShare: 0.5, // half family labor

	MarketReach:    0.7, // sell at local markets
	StorageQuality: 0.5, // basic on-farm storage

	Yield: YieldBasic,

	Advice: AdviceThresholds{Excellent: 30, Good: 15, Positive: 0},
}

var balancedPolicy = Policy{
	Strategy:  StrategyBalanced,
	Intensity: 0.75,

	Costs:            CostInterpolated,
	ScaleInputPrices: true,
	Labor:            LaborDays,
	HiredShare:       0.7,

	// Selective mechanization: tractor for heavy work, manual for light.
	EquipmentOps: []EquipmentOp{
		{Name: "ploughing", MechanizedAt: 0.85},
		{Name: "harrowing", MechanizedAt: 0.50},
		{Name: "fuel", MechanizedAt: 0.70},
	},

	HandlingImprovement: 0.3,
	MarketReach:         0.85,
	StorageQuality:      0.6,

	Yield:      YieldCurve,
	YieldFloor: 0.6,

	Advice: AdviceThresholds{Excellent: 40, Good: 25, Positive: 10},
}

// PolicyFor returns the constant policy for a named strategy.
func PolicyFor(s Strategy) (Policy, error) {
	switch s {
	case StrategyYieldMax:
		return yieldMaxPolicy, nil
	case StrategyCostMin:
		return costMinPolicy, nil
	case StrategyBalanced:
		return balancedPolicy, nil
	default:
		return Policy{}, eris.Wrapf(ErrInvalidInput, "unknown strategy %q", s)
	}
}
