package engine

import (
	"github.com/agrovista/farmplan-cli/internal/agridata"
)

// LineItem is one named entry of a cost breakdown.
type LineItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// CostBreakdown itemizes the cost of a plan in XAF. Transport and Storage
// depend on marketable production and are filled in by the pipeline after
// the yield model runs; until then Total covers the per-hectare items only.
type CostBreakdown struct {
	LandPrep   float64 `json:"land_prep"`
	Seed       float64 `json:"seed"`
	Fertilizer float64 `json:"fertilizer"`
	Pesticide  float64 `json:"pesticide"`
	Irrigation float64 `json:"irrigation"`
	Equipment  float64 `json:"equipment"`
	Labor      float64 `json:"labor"`
	Transport  float64 `json:"transport"`
	Storage    float64 `json:"storage"`
	Total      float64 `json:"total"`
}

// Items returns the breakdown as named line items, in report order.
func (c CostBreakdown) Items() []LineItem {
	return []LineItem{
		{"land_prep", c.LandPrep},
		{"seed", c.Seed},
		{"fertilizer", c.Fertilizer},
		{"pesticide", c.Pesticide},
		{"irrigation", c.Irrigation},
		{"equipment", c.Equipment},
		{"labor", c.Labor},
		{"transport", c.Transport},
		{"storage", c.Storage},
	}
}

// interp linearly maps intensity onto a [min,max] unit cost range.
func interp(min, max, intensity float64) float64 {
	return min + (max-min)*intensity
}

// inputCost prices one purchased input line under the policy. The
// interpolated basis uses the premium package, optionally scaling the unit
// price by intensity to model a quality mix; the flat basis uses the
// published basic package, falling back to the premium figures for crops
// without a surveyed basic entry.
func inputCost(in agridata.InputRate, p Policy, hectares float64) float64 {
	price, qty := in.PremiumPrice, in.PremiumQty
	if p.Costs == CostFlat {
		if in.BasicPrice > 0 {
			price = in.BasicPrice
		}
		if in.BasicQty > 0 {
			qty = in.BasicQty
		}
	} else if p.ScaleInputPrices {
		price *= p.Intensity
	}
	return price * qty * hectares
}

// ComputeCosts produces the per-hectare cost items for a crop, land size,
// and policy. irrigationNeed is the region's irrigation fraction in [0,1].
// The returned Total excludes transport and storage.
func ComputeCosts(cat *agridata.Catalog, crop agridata.CropProfile, hectares float64, p Policy, irrigationNeed float64) CostBreakdown {
	rates := cat.Rates()
	var c CostBreakdown

	// Land preparation.
	if p.Costs == CostFlat {
		c.LandPrep = rates.LandPrepMin * hectares
	} else {
		c.LandPrep = interp(rates.LandPrepMin, rates.LandPrepMax, p.Intensity) * hectares
	}

	// Purchased inputs.
	c.Seed = inputCost(crop.Seed, p, hectares)
	c.Fertilizer = inputCost(crop.Fertilizer, p, hectares)
	c.Pesticide = inputCost(crop.Pesticide, p, hectares)

	// Irrigation.
	base := rates.IrrigationBaseMin
	if p.Costs == CostInterpolated {
		base = interp(rates.IrrigationBaseMin, rates.IrrigationBaseMax, p.Intensity)
	}
	c.Irrigation = base * irrigationNeed * hectares

	// Equipment: either selectively mechanized operations or a single
	// interpolated/flat rate.
	if len(p.EquipmentOps) > 0 {
		var unit float64
		for _, op := range p.EquipmentOps {
			unit += equipmentOpRate(rates, op.Name) * op.MechanizedAt
		}
		c.Equipment = unit * hectares
	} else if p.Costs == CostFlat {
		c.Equipment = rates.EquipmentMin * hectares
	} else {
		c.Equipment = interp(rates.EquipmentMin, rates.EquipmentMax, p.Intensity) * hectares
	}

	// Labor. The interpolated basis is inverse: higher intensity means more
	// mechanization and a lower per-hectare labor cost.
	switch p.Labor {
	case LaborInterpolated:
		unit := rates.LaborMechanized + (rates.LaborManual-rates.LaborMechanized)*(1-p.Intensity)
		c.Labor = unit * hectares
	default:
		c.Labor = rates.TotalLaborDays() * rates.DailyWage * p.HiredShare * hectares
	}

	c.Total = c.LandPrep + c.Seed + c.Fertilizer + c.Pesticide + c.Irrigation + c.Equipment + c.Labor
	return c
}

func equipmentOpRate(r agridata.Rates, name string) float64 {
	switch name {
	case "ploughing":
		return r.PloughingPerHa
	case "harrowing":
		return r.HarrowingPerHa
	case "fuel":
		return r.FuelOpsPerHa
	default:
		return 0
	}
}
