package engine

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/agrovista/farmplan-cli/internal/agridata"
)

const acresPerHectare = 2.471

// Request describes a single plan calculation. Immutable once constructed;
// nothing is persisted.
type Request struct {
	Crop     string   `json:"crop"`
	Hectares float64  `json:"hectares"`
	Strategy Strategy `json:"strategy"`
	Region   string   `json:"region,omitempty"`   // optional; empty uses the national irrigation default
	Budget   float64  `json:"budget,omitempty"`   // optional ceiling in XAF; 0 means no ceiling
	Intensity *float64 `json:"intensity,omitempty"` // optional override in [0,1], sensitivity use
}

// SeasonInfo carries the crop timing metadata into the result.
type SeasonInfo struct {
	GrowingDays     int      `json:"growing_days"`
	SeasonsPerYear  int      `json:"seasons_per_year"`
	PlantingWindows []string `json:"planting_windows"`
}

// BudgetAnalysis reports how a budget ceiling relates to the computed cost.
// An infeasible budget is a normal result variant, not an error.
type BudgetAnalysis struct {
	Budget   float64 `json:"budget"`
	Feasible bool    `json:"feasible"`

	// Infeasible case.
	Shortfall         float64 `json:"shortfall,omitempty"`
	SuggestedHectares float64 `json:"suggested_hectares,omitempty"`

	// Feasible case: the budget spread proportionally over the line items,
	// plus the uncommitted buffer.
	Allocations []LineItem `json:"allocations,omitempty"`
	Buffer      float64    `json:"buffer,omitempty"`
}

// Result is the complete projection for one request. Produced fresh per
// calculation and never mutated afterwards.
type Result struct {
	Crop      string   `json:"crop"`
	CropName  string   `json:"crop_name"`
	Strategy  Strategy `json:"strategy"`
	Intensity float64  `json:"intensity"`
	Region    string   `json:"region,omitempty"`
	Hectares  float64  `json:"hectares"`
	Acres     float64  `json:"acres"`

	Season     SeasonInfo      `json:"season"`
	Costs      CostBreakdown   `json:"costs"`
	CostPerHa  float64         `json:"cost_per_ha"`
	Production YieldRevenue    `json:"production"`
	Profit     Profitability   `json:"profit"`
	Budget     *BudgetAnalysis `json:"budget,omitempty"`
}

// validate rejects bad requests before any computation runs. Values are
// never silently clamped.
func validate(cat *agridata.Catalog, req Request) error {
	if req.Hectares <= 0 {
		return eris.Wrapf(ErrInvalidInput, "land size must be positive, got %v", req.Hectares)
	}
	if req.Budget < 0 {
		return eris.Wrapf(ErrInvalidInput, "budget must be positive when supplied, got %v", req.Budget)
	}
	if req.Intensity != nil && (*req.Intensity < 0 || *req.Intensity > 1) {
		return eris.Wrapf(ErrInvalidInput, "intensity %v outside [0,1]", *req.Intensity)
	}
	if req.Region != "" && !cat.HasRegion(req.Region) {
		return eris.Wrapf(ErrInvalidInput, "unknown region %q", req.Region)
	}
	return nil
}

// requireCropData rejects crops whose yield or price tables are missing.
// Silently defaulting these would corrupt every downstream ratio.
func requireCropData(crop agridata.CropProfile) error {
	if crop.OptimalYield <= 0 {
		return eris.Wrapf(ErrUnknownCrop, "%s: no yield data", crop.ID)
	}
	if crop.FarmgatePerKg <= 0 {
		return eris.Wrapf(ErrUnknownCrop, "%s: no price data", crop.ID)
	}
	if crop.Seed.PremiumQty <= 0 && crop.Seed.BasicQty <= 0 {
		return eris.Wrapf(ErrUnknownCrop, "%s: no seed rate", crop.ID)
	}
	return nil
}

// Plan runs the full cost, yield, and profitability pipeline for one
// request. Transport and storage depend on marketable production, so the
// cost total is finalized only after the yield model runs.
func Plan(cat *agridata.Catalog, req Request) (*Result, error) {
	if err := validate(cat, req); err != nil {
		return nil, err
	}

	policy, err := PolicyFor(req.Strategy)
	if err != nil {
		return nil, err
	}
	if req.Intensity != nil {
		policy = policy.WithIntensity(*req.Intensity)
	}

	crop, err := cat.Crop(req.Crop)
	if err != nil {
		return nil, err
	}
	if err := requireCropData(crop); err != nil {
		return nil, err
	}

	need := cat.IrrigationNeed(req.Region)

	costs := ComputeCosts(cat, crop, req.Hectares, policy, need)
	yr := ComputeYieldRevenue(cat, crop, req.Hectares, policy)

	costs.Transport = yr.TransportCost
	costs.Storage = yr.StorageCost
	costs.Total += yr.TransportCost + yr.StorageCost

	profit := ComputeProfitability(costs.Total, yr, req.Hectares, policy)

	res := &Result{
		Crop:      crop.ID,
		CropName:  crop.Name,
		Strategy:  policy.Strategy,
		Intensity: policy.Intensity,
		Region:    req.Region,
		Hectares:  req.Hectares,
		Acres:     req.Hectares * acresPerHectare,
		Season: SeasonInfo{
			GrowingDays:     crop.GrowingDays,
			SeasonsPerYear:  crop.SeasonsPerYear,
			PlantingWindows: crop.PlantingWindows,
		},
		Costs:      costs,
		CostPerHa:  costs.Total / req.Hectares,
		Production: yr,
		Profit:     profit,
	}

	if req.Budget > 0 {
		res.Budget = analyzeBudget(req.Budget, req.Hectares, costs)
	}

	zap.L().Debug("engine: plan computed",
		zap.String("crop", crop.ID),
		zap.String("strategy", string(policy.Strategy)),
		zap.Float64("hectares", req.Hectares),
		zap.Float64("total_cost", costs.Total),
		zap.Float64("net_profit", profit.NetProfit),
		zap.Float64("roi_percent", profit.ROIPercent),
	)

	return res, nil
}

// analyzeBudget compares the budget ceiling against the computed total.
// When the budget falls short, the suggestion scales land down in proportion
// to what the budget covers; when it suffices, the budget is allocated over
// the line items proportionally with the remainder kept as buffer.
func analyzeBudget(budget, hectares float64, costs CostBreakdown) *BudgetAnalysis {
	ba := &BudgetAnalysis{Budget: budget}

	if budget < costs.Total {
		ba.Shortfall = costs.Total - budget
		ba.SuggestedHectares = budget / costs.Total * hectares
		return ba
	}

	ba.Feasible = true
	ba.Buffer = budget - costs.Total
	if costs.Total > 0 {
		for _, it := range costs.Items() {
			ba.Allocations = append(ba.Allocations, LineItem{
				Name:   it.Name,
				Amount: it.Amount / costs.Total * budget,
			})
		}
	}
	return ba
}
