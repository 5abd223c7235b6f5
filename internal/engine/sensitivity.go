package engine

import (
	"github.com/rotisserie/eris"

	"github.com/agrovista/farmplan-cli/internal/agridata"
)

// DefaultSweepLevels are the intensity percentages swept when the caller
// supplies none.
var DefaultSweepLevels = []int{50, 60, 70, 75, 80, 85, 90, 95, 100}

// SweepScenario records the outcome of one intensity level.
type SweepScenario struct {
	LevelPercent   int     `json:"level_percent"`
	TotalCost      float64 `json:"total_cost"`
	MarketableTons float64 `json:"marketable_tons"`
	NetProfit      float64 `json:"net_profit"`
	ROIPercent     float64 `json:"roi_percent"`
	ProfitPerHa    float64 `json:"profit_per_ha"`
}

// Sweep is the result of a sensitivity analysis over input intensity.
type Sweep struct {
	Crop      string          `json:"crop"`
	Hectares  float64         `json:"hectares"`
	Scenarios []SweepScenario `json:"scenarios"`

	// The swept level with the highest ROI; earlier levels win ties.
	RecommendedLevel int     `json:"recommended_level_percent"`
	BestProfit       float64 `json:"best_profit"`
	BestROI          float64 `json:"best_roi_percent"`
}

// SensitivitySweep reruns the balanced-strategy pipeline across the given
// intensity levels. Each run uses its own policy copy; no state is shared
// between iterations.
func SensitivitySweep(cat *agridata.Catalog, crop string, hectares float64, region string, levels []int) (*Sweep, error) {
	if len(levels) == 0 {
		levels = DefaultSweepLevels
	}

	sw := &Sweep{Crop: crop, Hectares: hectares}
	for _, lvl := range levels {
		if lvl < 0 || lvl > 100 {
			return nil, eris.Wrapf(ErrInvalidInput, "sweep level %d%% outside [0,100]", lvl)
		}
		intensity := float64(lvl) / 100

		res, err := Plan(cat, Request{
			Crop:      crop,
			Hectares:  hectares,
			Strategy:  StrategyBalanced,
			Region:    region,
			Intensity: &intensity,
		})
		if err != nil {
			return nil, err
		}

		sw.Scenarios = append(sw.Scenarios, SweepScenario{
			LevelPercent:   lvl,
			TotalCost:      res.Costs.Total,
			MarketableTons: res.Production.MarketableTons,
			NetProfit:      res.Profit.NetProfit,
			ROIPercent:     res.Profit.ROIPercent,
			ProfitPerHa:    res.Profit.ProfitPerHa,
		})
	}

	best := sw.Scenarios[0]
	for _, sc := range sw.Scenarios[1:] {
		if sc.ROIPercent > best.ROIPercent {
			best = sc
		}
	}
	sw.RecommendedLevel = best.LevelPercent
	sw.BestProfit = best.NetProfit
	sw.BestROI = best.ROIPercent

	return sw, nil
}
