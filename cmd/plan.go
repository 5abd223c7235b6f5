package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/agrovista/farmplan-cli/internal/engine"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Project costs, yield, and profit for one crop and strategy",
	Long: `Runs the full planning pipeline for a single crop: cost breakdown,
yield and revenue projection, profitability metrics, and optional budget
feasibility analysis.

Examples:
  # Balanced plan for 2 hectares of maize
  farmplan plan --crop maize --land 2

  # Maximum-yield rice in the Far North with a budget ceiling
  farmplan plan --crop rice --land 5 --strategy yield_max --region "Far North" --budget 3000000

  # Include the input application calendar
  farmplan plan --crop tomato --land 0.5 --schedule`,
	RunE: runPlan,
}

func init() {
	f := planCmd.Flags()
	f.String("crop", "", "crop identifier (see 'farmplan crops')")
	f.Float64("land", 1, "land size in hectares")
	f.String("strategy", "balanced", "planning strategy: yield_max, cost_min, or balanced")
	f.String("region", "", "region name for irrigation adjustment")
	f.Float64("budget", 0, "budget ceiling in XAF (0 = no ceiling)")
	f.Float64("intensity", -1, "input intensity override in [0,1] (-1 = strategy default)")
	f.Bool("schedule", false, "include the input application calendar")
	f.String("format", "table", "output format: table or json")
	planCmd.MarkFlagRequired("crop")

	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	crop, _ := cmd.Flags().GetString("crop")
	land, _ := cmd.Flags().GetFloat64("land")
	strategy, _ := cmd.Flags().GetString("strategy")
	region, _ := cmd.Flags().GetString("region")
	budget, _ := cmd.Flags().GetFloat64("budget")
	intensity, _ := cmd.Flags().GetFloat64("intensity")
	withSchedule, _ := cmd.Flags().GetBool("schedule")
	format, _ := cmd.Flags().GetString("format")

	if format != "table" && format != "json" {
		return eris.Errorf("plan: --format must be table or json (got %q)", format)
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	req := engine.Request{
		Crop:     crop,
		Hectares: land,
		Strategy: engine.Strategy(strategy),
		Region:   region,
		Budget:   budget,
	}
	if intensity >= 0 {
		req.Intensity = &intensity
	}

	res, err := engine.Plan(cat, req)
	if err != nil {
		return err
	}

	var stages []engine.ScheduleStage
	if withSchedule {
		if stages, err = engine.Schedule(cat, crop); err != nil {
			return err
		}
	}

	if format == "json" {
		out := struct {
			*engine.Result
			Schedule []engine.ScheduleStage `json:"schedule,omitempty"`
		}{res, stages}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	printResult(os.Stdout, res)
	if withSchedule {
		printSchedule(os.Stdout, stages)
	}
	return nil
}
