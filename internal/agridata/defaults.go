package agridata

// Default reference data, compiled from 2024-2025 Cameroon market surveys and
// regional pricing. Exchange rate reference: 1 USD ~ 612 XAF.

// defaultRegions maps each Cameroon region to its irrigation-need fraction,
// the share of the base irrigation package the region's rainfall deficit
// requires.
var defaultRegions = map[string]float64{
	"Adamaoua":  0.35,
	"Centre":    0.25,
	"East":      0.30,
	"Far North": 0.55,
	"Littoral":  0.20,
	"North":     0.50,
	"Northwest": 0.30,
	"South":     0.20,
	"Southwest": 0.22,
	"West":      0.28,
}

// defaultRates are the flat operation rates, per hectare unless noted.
var defaultRates = Rates{
	LandPrepMin: 35_000,
	LandPrepMax: 85_000,

	IrrigationBaseMin: 45_000,
	IrrigationBaseMax: 180_000,

	EquipmentMin: 15_000,
	EquipmentMax: 95_000,

	LaborMechanized: 120_000,
	LaborManual:     250_000,

	// Agricultural minimum wage is 45,000 XAF/month; daily rate 1,500-2,000.
	DailyWage:    1_800,
	PlantingDays: 8,
	WeedingDays:  12, // two rounds
	HarvestDays:  10,
	OtherDays:    6,

	PloughingPerHa: 65_000,
	HarrowingPerHa: 32_000,
	FuelOpsPerHa:   28_000,

	TransportPerTon:    8_500,
	StoragePerTonMonth: 2_500,
	StorageMonths:      2,
	DefaultIrrigation:  0.30,
}

var defaultCrops = []CropProfile{
	{
		ID: "maize", Name: "Maize",
		Seed:       InputRate{PremiumPrice: 3_500, PremiumQty: 25, BasicPrice: 1_200, BasicQty: 30},
		Fertilizer: InputRate{PremiumPrice: 32_000, PremiumQty: 6, BasicPrice: 15_000, BasicQty: 4},
		Pesticide:  InputRate{PremiumPrice: 18_000, PremiumQty: 8, BasicPrice: 7_000, BasicQty: 5},
		OptimalYield: 4.5, BasicYield: 2.8,
		FarmgatePerKg: 480, PostHarvestLoss: 0.11,
		GrowingDays: 120, SeasonsPerYear: 2,
		PlantingWindows: []string{"March-April", "August-September"},
	},
	{
		ID: "rice", Name: "Rice",
		Seed:       InputRate{PremiumPrice: 2_800, PremiumQty: 80, BasicPrice: 1_000, BasicQty: 100},
		Fertilizer: InputRate{PremiumPrice: 33_000, PremiumQty: 6, BasicPrice: 15_000, BasicQty: 4},
		Pesticide:  InputRate{PremiumPrice: 19_000, PremiumQty: 9, BasicPrice: 7_500, BasicQty: 5},
		OptimalYield: 5.5, BasicYield: 3.5,
		FarmgatePerKg: 680, PostHarvestLoss: 0.15,
		GrowingDays: 120, SeasonsPerYear: 2,
		PlantingWindows: []string{"March-May", "August-October"},
	},
	{
		ID: "cassava", Name: "Cassava",
		Seed:       InputRate{PremiumPrice: 1_500, PremiumQty: 400, BasicPrice: 600, BasicQty: 400},
		Fertilizer: InputRate{PremiumPrice: 28_000, PremiumQty: 4, BasicPrice: 12_000, BasicQty: 3},
		Pesticide:  InputRate{PremiumPrice: 15_000, PremiumQty: 6, BasicPrice: 6_000, BasicQty: 4},
		OptimalYield: 28, BasicYield: 18,
		FarmgatePerKg: 150, PostHarvestLoss: 0.30, // high perishability
		GrowingDays: 365, SeasonsPerYear: 1,
		PlantingWindows: []string{"March-May"},
	},
	{
		ID: "plantain", Name: "Plantain",
		Seed:       InputRate{PremiumPrice: 2_000, PremiumQty: 1_600, BasicPrice: 800, BasicQty: 1_600},
		Fertilizer: InputRate{PremiumPrice: 30_000, PremiumQty: 5, BasicPrice: 14_000, BasicQty: 3},
		Pesticide:  InputRate{PremiumPrice: 16_000, PremiumQty: 7, BasicPrice: 6_500, BasicQty: 4},
		OptimalYield: 18, BasicYield: 12,
		FarmgatePerKg: 144, PostHarvestLoss: 0.25,
		GrowingDays: 365, SeasonsPerYear: 1,
		PlantingWindows: []string{"March-May"},
	},
	{
		ID: "sorghum", Name: "Sorghum",
		Seed:       InputRate{PremiumPrice: 2_200, PremiumQty: 18, BasicPrice: 800, BasicQty: 18},
		Fertilizer: InputRate{PremiumPrice: 30_000, PremiumQty: 4, BasicPrice: 13_000, BasicQty: 2},
		Pesticide:  InputRate{PremiumPrice: 17_000, PremiumQty: 7, BasicPrice: 6_500, BasicQty: 4},
		OptimalYield: 3.5, BasicYield: 2.2,
		FarmgatePerKg: 168, PostHarvestLoss: 0.09,
		GrowingDays: 110, SeasonsPerYear: 1,
		PlantingWindows: []string{"May-June"},
	},
	{
		ID: "irish_potato", Name: "Irish Potato",
		Seed:       InputRate{PremiumPrice: 1_800, PremiumQty: 2_000, BasicPrice: 800, BasicQty: 2_000},
		Fertilizer: InputRate{PremiumPrice: 32_000, PremiumQty: 6, BasicPrice: 15_000, BasicQty: 4},
		Pesticide:  InputRate{PremiumPrice: 18_000, PremiumQty: 8, BasicPrice: 7_000, BasicQty: 5},
		OptimalYield: 25, BasicYield: 16,
		FarmgatePerKg: 200, PostHarvestLoss: 0.18,
		GrowingDays: 100, SeasonsPerYear: 2,
		PlantingWindows: []string{"March-April", "August-September"},
	},
	{
		ID: "tomato", Name: "Tomato",
		Seed:       InputRate{PremiumPrice: 25_000, PremiumQty: 0.3, BasicPrice: 10_000, BasicQty: 0.3},
		Fertilizer: InputRate{PremiumPrice: 34_000, PremiumQty: 7, BasicPrice: 16_000, BasicQty: 4},
		Pesticide:  InputRate{PremiumPrice: 22_000, PremiumQty: 12, BasicPrice: 9_000, BasicQty: 7},
		OptimalYield: 40, BasicYield: 25,
		FarmgatePerKg: 224, PostHarvestLoss: 0.35,
		GrowingDays: 90, SeasonsPerYear: 2,
		PlantingWindows: []string{"March-April", "September-October"},
	},
	{
		ID: "beans", Name: "Beans",
		Seed:       InputRate{PremiumPrice: 3_000, PremiumQty: 60, BasicPrice: 1_200, BasicQty: 60},
		Fertilizer: InputRate{PremiumPrice: 26_000, PremiumQty: 3, BasicPrice: 11_000, BasicQty: 2},
		Pesticide:  InputRate{PremiumPrice: 14_000, PremiumQty: 5, BasicPrice: 5_500, BasicQty: 3},
		OptimalYield: 2.2, BasicYield: 1.4,
		FarmgatePerKg: 780, PostHarvestLoss: 0.10,
		GrowingDays: 90, SeasonsPerYear: 2,
		PlantingWindows: []string{"March-April", "September-October"},
	},
	{
		ID: "groundnut", Name: "Groundnut (Peanut)",
		Seed:       InputRate{PremiumPrice: 2_500, PremiumQty: 100, BasicPrice: 1_000, BasicQty: 100},
		Fertilizer: InputRate{PremiumPrice: 27_000, PremiumQty: 3, BasicPrice: 11_500, BasicQty: 2},
		Pesticide:  InputRate{PremiumPrice: 15_000, PremiumQty: 6, BasicPrice: 6_000, BasicQty: 3},
		OptimalYield: 2.5, BasicYield: 1.6,
		FarmgatePerKg: 900, PostHarvestLoss: 0.12,
		GrowingDays: 100, SeasonsPerYear: 2,
		PlantingWindows: []string{"March-April", "August-September"},
	},
	{
		ID: "cocoa", Name: "Cocoa",
		Seed:       InputRate{PremiumPrice: 4_000, PremiumQty: 15, BasicPrice: 1_500, BasicQty: 15},
		Fertilizer: InputRate{PremiumPrice: 35_000, PremiumQty: 4, BasicPrice: 16_000, BasicQty: 3},
		Pesticide:  InputRate{PremiumPrice: 22_000, PremiumQty: 10, BasicPrice: 9_000, BasicQty: 6},
		OptimalYield: 1.2, BasicYield: 0.8,
		FarmgatePerKg: 1_440, PostHarvestLoss: 0.08,
		GrowingDays: 365, SeasonsPerYear: 1,
		PlantingWindows: []string{"March-May"},
	},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return NewCatalog(defaultCrops, defaultRegions, defaultRates)
}
