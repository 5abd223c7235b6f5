package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agrovista/farmplan-cli/internal/agridata"
)

func TestComputeYieldRevenueYieldMax(t *testing.T) {
	t.Parallel()

	cat := agridata.Default()
	yr := ComputeYieldRevenue(cat, mustCrop(t, cat, "maize"), 1, mustPolicy(t, StrategyYieldMax))

	assert.InDelta(t, 4.5, yr.TotalTons, 0.001)
	assert.InDelta(t, 0.11, yr.LossRate, 0.001) // no handling improvement
	assert.InDelta(t, 4.005, yr.MarketableTons, 0.001)
	assert.InDelta(t, 4.005*8500, yr.TransportCost, 0.01)  // full market reach
	assert.InDelta(t, 4.005*2500*2, yr.StorageCost, 0.01)  // full storage quality
	assert.InDelta(t, 4.005*1000*480, yr.GrossRevenue, 0.01)
	assert.InDelta(t, yr.GrossRevenue-yr.TransportCost, yr.NetRevenue, 0.001)
}

func TestComputeYieldRevenueBalancedHandling(t *testing.T) {
	t.Parallel()

	cat := agridata.Default()
	yr := ComputeYieldRevenue(cat, mustCrop(t, cat, "maize"), 1, mustPolicy(t, StrategyBalanced))

	// Yield curve at 75% intensity: 4.5 x (0.6 + 0.4 x 0.75).
	assert.InDelta(t, 4.05, yr.TotalTons, 0.001)

	// Improved handling recovers 30% of the base loss.
	assert.InDelta(t, 0.11*0.7, yr.LossRate, 0.0001)
	assert.InDelta(t, 4.05*(1-0.077), yr.MarketableTons, 0.001)
}

func TestYieldCurveMonotonicInIntensity(t *testing.T) {
	t.Parallel()

	cat := agridata.Default()
	crop := mustCrop(t, cat, "rice")
	p := mustPolicy(t, StrategyBalanced)

	prev := -1.0
	for _, intensity := range []float64{0, 0.25, 0.5, 0.75, 1.0} {
		yr := ComputeYieldRevenue(cat, crop, 1, p.WithIntensity(intensity))
		assert.Greater(t, yr.TotalTons, prev, "intensity %v", intensity)
		prev = yr.TotalTons
	}

	// Floor at zero intensity, full response at one.
	floor := ComputeYieldRevenue(cat, crop, 1, p.WithIntensity(0))
	full := ComputeYieldRevenue(cat, crop, 1, p.WithIntensity(1))
	assert.InDelta(t, crop.OptimalYield*0.6, floor.TotalTons, 0.001)
	assert.InDelta(t, crop.OptimalYield, full.TotalTons, 0.001)
}

func TestYieldBasicFallback(t *testing.T) {
	t.Parallel()

	crop := agridata.CropProfile{ID: "x", OptimalYield: 10} // no surveyed basic yield
	p := Policy{Yield: YieldBasic}

	assert.InDelta(t, 5.5, yieldPerHa(crop, p), 0.001)

	crop.BasicYield = 7
	assert.InDelta(t, 7, yieldPerHa(crop, p), 0.001)
}

func TestCostMinUsesBasicYieldAndLocalMarkets(t *testing.T) {
	t.Parallel()

	cat := agridata.Default()
	yr := ComputeYieldRevenue(cat, mustCrop(t, cat, "maize"), 1, mustPolicy(t, StrategyCostMin))

	assert.InDelta(t, 2.8, yr.TotalTons, 0.001)
	assert.InDelta(t, 2.8*0.89*8500*0.7, yr.TransportCost, 0.01)
	assert.InDelta(t, 2.8*0.89*2500*2*0.5, yr.StorageCost, 0.01)
}
