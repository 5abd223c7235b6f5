package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeProfitability(t *testing.T) {
	t.Parallel()

	yr := YieldRevenue{MarketableTons: 4, NetRevenue: 1_600_000}
	pr := ComputeProfitability(800_000, yr, 2, mustPolicy(t, StrategyYieldMax))

	assert.InDelta(t, 800_000, pr.NetProfit, 0.01)
	assert.InDelta(t, 100, pr.ROIPercent, 0.01)
	require.True(t, pr.BreakEvenDefined)
	assert.InDelta(t, 200, pr.BreakEvenPerKg, 0.01) // 800000 / 4000 kg
	assert.InDelta(t, 200, pr.CostPerKg, 0.01)
	assert.InDelta(t, 200, pr.ProfitPerKg, 0.01)
	assert.InDelta(t, 400_000, pr.ProfitPerHa, 0.01)
}

func TestComputeProfitabilityZeroCost(t *testing.T) {
	t.Parallel()

	yr := YieldRevenue{MarketableTons: 1, NetRevenue: 500_000}
	pr := ComputeProfitability(0, yr, 1, mustPolicy(t, StrategyBalanced))

	// Degenerate zero cost: ROI stays zero instead of dividing by zero.
	assert.Zero(t, pr.ROIPercent)
	assert.InDelta(t, 500_000, pr.NetProfit, 0.01)
}

func TestComputeProfitabilityNothingMarketable(t *testing.T) {
	t.Parallel()

	yr := YieldRevenue{MarketableTons: 0, NetRevenue: 0}
	pr := ComputeProfitability(100_000, yr, 1, mustPolicy(t, StrategyCostMin))

	assert.False(t, pr.BreakEvenDefined)
	assert.Zero(t, pr.BreakEvenPerKg)
	assert.Zero(t, pr.CostPerKg)
	assert.InDelta(t, -100_000, pr.NetProfit, 0.01)
	assert.InDelta(t, -100, pr.ROIPercent, 0.01)
}

func TestAssessThresholds(t *testing.T) {
	t.Parallel()

	p := mustPolicy(t, StrategyBalanced) // thresholds 40 / 25 / 10

	tests := []struct {
		name string
		roi  float64
		want AdviceType
	}{
		{name: "excellent", roi: 55, want: AdvicePositive},
		{name: "good", roi: 30, want: AdvicePositive},
		{name: "thin", roi: 12, want: AdvicePositive},
		{name: "below viability", roi: 5, want: AdviceWarning},
		{name: "loss", roi: -20, want: AdviceWarning},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			advs := assess(Profitability{ROIPercent: tt.roi}, p)
			require.NotEmpty(t, advs)
			assert.Equal(t, tt.want, advs[0].Type)
		})
	}
}

func TestStrategyTipsPerStrategy(t *testing.T) {
	t.Parallel()

	for _, s := range Strategies {
		tips := strategyTips(mustPolicy(t, s))
		assert.Len(t, tips, 2, "strategy %s", s)
		for _, tip := range tips {
			assert.Equal(t, AdviceTip, tip.Type)
		}
	}
}
