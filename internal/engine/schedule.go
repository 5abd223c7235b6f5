package engine

import (
	"fmt"

	"github.com/agrovista/farmplan-cli/internal/agridata"
)

// ScheduleStage is one phase of the field calendar for a crop.
type ScheduleStage struct {
	Stage      string   `json:"stage"`
	Timing     string   `json:"timing"`
	Activities []string `json:"activities"`
}

// Schedule builds the input application calendar for a crop, scaled to its
// growing period.
func Schedule(cat *agridata.Catalog, cropID string) ([]ScheduleStage, error) {
	crop, err := cat.Crop(cropID)
	if err != nil {
		return nil, err
	}

	days := crop.GrowingDays
	if days <= 0 {
		days = 120
	}

	return []ScheduleStage{
		{
			Stage:  "Land Preparation",
			Timing: "Weeks 1-2 before planting",
			Activities: []string{
				"Clear and plough the land",
				"Apply organic manure if available",
				"Harrow and level the field",
				"Mark planting rows",
			},
		},
		{
			Stage:  "Planting",
			Timing: "Day 0",
			Activities: []string{
				fmt.Sprintf("Plant %s seed at the recommended spacing", crop.Name),
				"Apply basal fertilizer (NPK)",
				"Treat seed before planting where required",
			},
		},
		{
			Stage:  "Early Growth",
			Timing: fmt.Sprintf("Weeks 2-4 (~day %d)", days/5),
			Activities: []string{
				"First weeding or herbicide application",
				"Monitor for pests and diseases",
				"Thin plants to optimal spacing if needed",
			},
		},
		{
			Stage:  "Vegetative Growth",
			Timing: fmt.Sprintf("Mid-season (~day %d)", days/2),
			Activities: []string{
				"Apply first top-dressing fertilizer",
				"Second weeding",
				"Targeted pest control",
				"Irrigate if rainfall is insufficient",
			},
		},
		{
			Stage:  "Reproductive Stage",
			Timing: fmt.Sprintf("~day %d", days*3/4),
			Activities: []string{
				"Apply second top-dressing fertilizer",
				"Keep water adequate through flowering",
				"Apply fungicide under high disease pressure",
			},
		},
		{
			Stage:  "Maturity & Harvest",
			Timing: fmt.Sprintf("Day %d", days),
			Activities: []string{
				"Harvest at optimal maturity",
				"Dry produce to safe moisture content",
				"Sort and grade for market",
				"Move into storage promptly",
			},
		},
	}, nil
}
