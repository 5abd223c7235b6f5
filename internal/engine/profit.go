package engine

import "fmt"

// AdviceType classifies an advisory message.
type AdviceType string

const (
	AdvicePositive AdviceType = "positive"
	AdviceWarning  AdviceType = "warning"
	AdviceTip      AdviceType = "tip"
)

// Advisory is one qualitative message generated for a plan.
type Advisory struct {
	Type    AdviceType `json:"type"`
	Message string     `json:"message"`
}

// Profitability combines cost and revenue into the profit metrics. Ratio
// metrics degrade to zero (with Defined flags where callers must tell the
// difference) instead of dividing by zero.
type Profitability struct {
	NetProfit  float64 `json:"net_profit"`
	ROIPercent float64 `json:"roi_percent"`

	BreakEvenPerKg   float64 `json:"break_even_per_kg"`
	BreakEvenDefined bool    `json:"break_even_defined"` // false when nothing is marketable

	ProfitPerHa float64 `json:"profit_per_ha"`
	ProfitPerKg float64 `json:"profit_per_kg"`
	CostPerKg   float64 `json:"cost_per_kg"`

	Advisories []Advisory `json:"advisories"`
}

// ComputeProfitability derives profit, ROI, break-even price, and the
// per-hectare / per-kg efficiency metrics. totalCost must already include
// the production-dependent transport and storage items.
func ComputeProfitability(totalCost float64, yr YieldRevenue, hectares float64, p Policy) Profitability {
	pr := Profitability{
		NetProfit: yr.NetRevenue - totalCost,
	}

	// Zero total cost is a normal degenerate case, not an error.
	if totalCost > 0 {
		pr.ROIPercent = pr.NetProfit / totalCost * 100
	}

	marketableKg := yr.MarketableTons * 1000
	if marketableKg > 0 {
		pr.BreakEvenPerKg = totalCost / marketableKg
		pr.BreakEvenDefined = true
		pr.ProfitPerKg = pr.NetProfit / marketableKg
		pr.CostPerKg = totalCost / marketableKg
	}
	if hectares > 0 {
		pr.ProfitPerHa = pr.NetProfit / hectares
	}

	pr.Advisories = assess(pr, p)
	return pr
}

// assess maps ROI onto the policy's qualitative thresholds and appends the
// strategy-specific guidance.
func assess(pr Profitability, p Policy) []Advisory {
	t := p.Advice
	var out []Advisory

	switch {
	case pr.ROIPercent > t.Excellent:
		out = append(out, Advisory{AdvicePositive, fmt.Sprintf(
			"Excellent returns: ROI of %.1f%% is well above the %.0f%% benchmark for this strategy.",
			pr.ROIPercent, t.Excellent)})
	case pr.ROIPercent > t.Good:
		out = append(out, Advisory{AdvicePositive, fmt.Sprintf(
			"Good returns: ROI of %.1f%% with an estimated net profit of %.0f XAF.",
			pr.ROIPercent, pr.NetProfit)})
	case pr.ROIPercent > t.Positive:
		out = append(out, Advisory{AdvicePositive, fmt.Sprintf(
			"Positive returns: ROI of %.1f%%, sustainable but with thin margins.",
			pr.ROIPercent)})
	default:
		out = append(out, Advisory{AdviceWarning, fmt.Sprintf(
			"Projected ROI of %.1f%% is below the viability threshold. Reconsider the input level, crop, or strategy.",
			pr.ROIPercent)})
	}

	out = append(out, strategyTips(p)...)
	return out
}

func strategyTips(p Policy) []Advisory {
	switch p.Strategy {
	case StrategyYieldMax:
		return []Advisory{
			{AdviceTip, "Apply fertilizer in split doses and use certified improved seed for the full yield response."},
			{AdviceTip, "Integrated pest management limits losses, especially fall armyworm in maize."},
		}
	case StrategyCostMin:
		return []Advisory{
			{AdviceTip, "Local seed varieties and organic manure keep input spend down and suit local conditions."},
			{AdviceTip, "Selling at nearby markets avoids most transport cost; cooperative equipment sharing cuts the rest."},
		}
	case StrategyBalanced:
		return []Advisory{
			{AdviceTip, "Selective mechanization (tractor for heavy work, manual for light tasks) balances cost against timeliness."},
			{AdviceTip, "Improved handling and storage recovers roughly a third of typical post-harvest losses."},
		}
	default:
		return nil
	}
}
