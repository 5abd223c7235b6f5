// Package agridata holds the Cameroon agricultural reference tables: per-crop
// input costs and application rates, yields, farmgate prices, regional
// irrigation requirements, and flat operation rates. All prices are XAF,
// masses are metric tons unless a field name says otherwise.
//
// A Catalog is immutable once constructed. Load one at startup and pass it
// down; tests build fixture catalogs instead of patching globals.
package agridata

import (
	"sort"

	"github.com/rotisserie/eris"
)

// ErrUnknownCrop is returned when a crop ID is absent from the catalog.
var ErrUnknownCrop = eris.New("agridata: unknown crop")

// InputRate describes one purchased input (seed, fertilizer, pesticide) for a
// crop: the premium (improved) and basic (local) unit price, and the quantity
// applied per hectare under each input package.
type InputRate struct {
	PremiumPrice float64 `yaml:"premium_price"` // XAF per unit, improved input
	PremiumQty   float64 `yaml:"premium_qty"`   // units per hectare, full package
	BasicPrice   float64 `yaml:"basic_price"`   // XAF per unit, local input
	BasicQty     float64 `yaml:"basic_qty"`     // units per hectare, minimal package
}

// CropProfile holds all reference data for a single crop.
type CropProfile struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`

	Seed       InputRate `yaml:"seed"`       // unit = kg
	Fertilizer InputRate `yaml:"fertilizer"` // unit = 50kg bag
	Pesticide  InputRate `yaml:"pesticide"`  // unit = liter

	OptimalYield float64 `yaml:"optimal_yield"` // t/ha with intensive management
	BasicYield   float64 `yaml:"basic_yield"`   // t/ha with minimal inputs; 0 = not surveyed

	FarmgatePerKg   float64 `yaml:"farmgate_per_kg"`   // XAF/kg received by producer
	PostHarvestLoss float64 `yaml:"post_harvest_loss"` // fraction lost with basic handling

	GrowingDays     int      `yaml:"growing_days"`
	SeasonsPerYear  int      `yaml:"seasons_per_year"`
	PlantingWindows []string `yaml:"planting_windows"`
}

// Rates holds the flat per-hectare and per-ton operation rates shared by all
// crops. Min/Max pairs bound the intensity interpolation; the Min value is
// also the published flat rate for the manual/basic approach.
type Rates struct {
	LandPrepMin float64 `yaml:"land_prep_min"` // manual clearing and tilling
	LandPrepMax float64 `yaml:"land_prep_max"` // mechanized

	IrrigationBaseMin float64 `yaml:"irrigation_base_min"` // gravity-fed system
	IrrigationBaseMax float64 `yaml:"irrigation_base_max"` // advanced system

	EquipmentMin float64 `yaml:"equipment_min"` // hand tools
	EquipmentMax float64 `yaml:"equipment_max"` // full mechanization

	LaborMechanized float64 `yaml:"labor_mechanized"` // per-ha labor cost under high mechanization
	LaborManual     float64 `yaml:"labor_manual"`     // per-ha labor cost, all manual

	DailyWage    float64 `yaml:"daily_wage"` // agricultural daily wage
	PlantingDays float64 `yaml:"planting_days_per_ha"`
	WeedingDays  float64 `yaml:"weeding_days_per_ha"`
	HarvestDays  float64 `yaml:"harvest_days_per_ha"`
	OtherDays    float64 `yaml:"other_days_per_ha"` // fertilizer application, pest control

	// Per-operation equipment unit costs, used when a policy mechanizes
	// operations selectively instead of interpolating a single rate.
	PloughingPerHa float64 `yaml:"ploughing_per_ha"`
	HarrowingPerHa float64 `yaml:"harrowing_per_ha"`
	FuelOpsPerHa   float64 `yaml:"fuel_ops_per_ha"`

	TransportPerTon    float64 `yaml:"transport_per_ton"`      // farm to market, full rate
	StoragePerTonMonth float64 `yaml:"storage_per_ton_month"`  // warehouse rate
	StorageMonths      float64 `yaml:"storage_months"`         // typical holding period
	DefaultIrrigation  float64 `yaml:"default_irrigation_need"` // national fraction when region unknown
}

// TotalLaborDays returns the per-hectare labor requirement across all field
// operations.
func (r Rates) TotalLaborDays() float64 {
	return r.PlantingDays + r.WeedingDays + r.HarvestDays + r.OtherDays
}

// Catalog is the read-only reference data set used by the planning engine.
type Catalog struct {
	crops   map[string]CropProfile
	regions map[string]float64
	rates   Rates
}

// NewCatalog builds a catalog from explicit tables. Callers keep no reference
// to the maps after construction.
func NewCatalog(crops []CropProfile, regions map[string]float64, rates Rates) *Catalog {
	byID := make(map[string]CropProfile, len(crops))
	for _, c := range crops {
		byID[c.ID] = c
	}
	rg := make(map[string]float64, len(regions))
	for k, v := range regions {
		rg[k] = v
	}
	return &Catalog{crops: byID, regions: rg, rates: rates}
}

// Crop looks up a crop profile by ID.
func (c *Catalog) Crop(id string) (CropProfile, error) {
	p, ok := c.crops[id]
	if !ok {
		return CropProfile{}, eris.Wrapf(ErrUnknownCrop, "%q", id)
	}
	return p, nil
}

// CropIDs returns all crop IDs in sorted order.
func (c *Catalog) CropIDs() []string {
	ids := make([]string, 0, len(c.crops))
	for id := range c.crops {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IrrigationNeed returns the irrigation-need fraction for a region. An empty
// or unknown region falls back to the national default.
func (c *Catalog) IrrigationNeed(region string) float64 {
	if f, ok := c.regions[region]; ok {
		return f
	}
	return c.rates.DefaultIrrigation
}

// HasRegion reports whether the region is in the catalog.
func (c *Catalog) HasRegion(region string) bool {
	_, ok := c.regions[region]
	return ok
}

// RegionNames returns all region names in sorted order.
func (c *Catalog) RegionNames() []string {
	names := make([]string, 0, len(c.regions))
	for n := range c.regions {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Rates returns the flat operation rates.
func (c *Catalog) Rates() Rates {
	return c.rates
}
