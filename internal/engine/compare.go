package engine

import (
	"github.com/agrovista/farmplan-cli/internal/agridata"
)

// StrategySummary condenses one strategy's full result for side-by-side
// comparison.
type StrategySummary struct {
	Strategy       Strategy `json:"strategy"`
	TotalCost      float64  `json:"total_cost"`
	MarketableTons float64  `json:"marketable_tons"`
	NetRevenue     float64  `json:"net_revenue"`
	NetProfit      float64  `json:"net_profit"`
	ROIPercent     float64  `json:"roi_percent"`
	CostPerKg      float64  `json:"cost_per_kg"`
	ProfitPerHa    float64  `json:"profit_per_ha"`
}

// Comparison holds the three strategy summaries and the winners along each
// axis. Ties go to the earlier strategy in input order.
type Comparison struct {
	Crop     string            `json:"crop"`
	Hectares float64           `json:"hectares"`
	Region   string            `json:"region,omitempty"`
	Rows     []StrategySummary `json:"rows"`

	HighestROI    Strategy `json:"highest_roi"`
	HighestProfit Strategy `json:"highest_profit"`
	MostEfficient Strategy `json:"most_efficient"` // lowest cost per kg
}

// CompareStrategies runs the full pipeline once per strategy and ranks the
// outcomes by ROI, absolute profit, and cost efficiency.
func CompareStrategies(cat *agridata.Catalog, crop string, hectares float64, region string) (*Comparison, error) {
	cmp := &Comparison{Crop: crop, Hectares: hectares, Region: region}

	for _, s := range Strategies {
		res, err := Plan(cat, Request{Crop: crop, Hectares: hectares, Strategy: s, Region: region})
		if err != nil {
			return nil, err
		}
		cmp.Rows = append(cmp.Rows, StrategySummary{
			Strategy:       s,
			TotalCost:      res.Costs.Total,
			MarketableTons: res.Production.MarketableTons,
			NetRevenue:     res.Production.NetRevenue,
			NetProfit:      res.Profit.NetProfit,
			ROIPercent:     res.Profit.ROIPercent,
			CostPerKg:      res.Profit.CostPerKg,
			ProfitPerHa:    res.Profit.ProfitPerHa,
		})
	}

	best := cmp.Rows[0]
	cmp.HighestROI, cmp.HighestProfit, cmp.MostEfficient = best.Strategy, best.Strategy, best.Strategy
	bestROI, bestProfit, bestCostKg := best.ROIPercent, best.NetProfit, best.CostPerKg
	for _, row := range cmp.Rows[1:] {
		if row.ROIPercent > bestROI {
			bestROI, cmp.HighestROI = row.ROIPercent, row.Strategy
		}
		if row.NetProfit > bestProfit {
			bestProfit, cmp.HighestProfit = row.NetProfit, row.Strategy
		}
		if row.CostPerKg < bestCostKg {
			bestCostKg, cmp.MostEfficient = row.CostPerKg, row.Strategy
		}
	}

	return cmp, nil
}
