package engine

import (
	"github.com/agrovista/farmplan-cli/internal/agridata"
)

// YieldRevenue holds the production and revenue projection for a plan.
// Masses are metric tons; revenue figures are XAF.
type YieldRevenue struct {
	YieldPerHa     float64 `json:"yield_per_ha_tons"`
	TotalTons      float64 `json:"total_production_tons"`
	LossRate       float64 `json:"post_harvest_loss_rate"`
	LossTons       float64 `json:"post_harvest_loss_tons"`
	MarketableTons float64 `json:"marketable_production_tons"`

	TransportCost float64 `json:"transport_cost"`
	StorageCost   float64 `json:"storage_cost"`

	FarmgatePerKg float64 `json:"farmgate_price_per_kg"`
	GrossRevenue  float64 `json:"gross_revenue"`
	NetRevenue    float64 `json:"net_revenue"` // gross minus transport
}

// yieldPerHa resolves the expected yield per hectare under the policy's
// yield basis.
func yieldPerHa(crop agridata.CropProfile, p Policy) float64 {
	switch p.Yield {
	case YieldOptimal:
		return crop.OptimalYield
	case YieldBasic:
		if crop.BasicYield > 0 {
			return crop.BasicYield
		}
		return crop.OptimalYield * basicYieldFallback
	default: // YieldCurve
		factor := p.YieldFloor + (1-p.YieldFloor)*p.Intensity
		return crop.OptimalYield * factor
	}
}

// ComputeYieldRevenue projects production, post-harvest losses, the
// production-dependent transport and storage costs, and revenue.
func ComputeYieldRevenue(cat *agridata.Catalog, crop agridata.CropProfile, hectares float64, p Policy) YieldRevenue {
	rates := cat.Rates()

	perHa := yieldPerHa(crop, p)
	total := perHa * hectares

	lossRate := crop.PostHarvestLoss * (1 - p.HandlingImprovement)
	marketable := total * (1 - lossRate)

	transport := marketable * rates.TransportPerTon * p.MarketReach
	storage := marketable * rates.StoragePerTonMonth * rates.StorageMonths * p.StorageQuality

	gross := marketable * 1000 * crop.FarmgatePerKg // tons to kg, exact factor
	net := gross - transport

	return YieldRevenue{
		YieldPerHa:     perHa,
		TotalTons:      total,
		LossRate:       lossRate,
		LossTons:       total - marketable,
		MarketableTons: marketable,
		TransportCost:  transport,
		StorageCost:    storage,
		FarmgatePerKg:  crop.FarmgatePerKg,
		GrossRevenue:   gross,
		NetRevenue:     net,
	}
}
