package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agrovista/farmplan-cli/internal/engine"
	"github.com/agrovista/farmplan-cli/internal/report"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare all three strategies side by side",
	Long: `Runs the planning pipeline once per strategy and ranks the outcomes
by ROI, absolute profit, and cost per kilogram.

Examples:
  farmplan compare --crop maize --land 2
  farmplan compare --crop cocoa --land 10 --region Southwest --format xlsx --output cocoa.xlsx`,
	RunE: runCompare,
}

func init() {
	f := compareCmd.Flags()
	f.String("crop", "", "crop identifier (see 'farmplan crops')")
	f.Float64("land", 1, "land size in hectares")
	f.String("region", "", "region name for irrigation adjustment")
	f.String("format", "table", "output format: table, json, csv, or xlsx")
	f.String("output", "", "output file path (default: stdout; required for xlsx)")
	compareCmd.MarkFlagRequired("crop")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	crop, _ := cmd.Flags().GetString("crop")
	land, _ := cmd.Flags().GetFloat64("land")
	region, _ := cmd.Flags().GetString("region")
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	cmp, err := engine.CompareStrategies(cat, crop, land, region)
	if err != nil {
		return err
	}

	switch strings.ToLower(format) {
	case "table":
		printComparison(os.Stdout, cmp)
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cmp)
	case "csv":
		out := os.Stdout
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return eris.Wrapf(err, "compare: create %s", output)
			}
			defer f.Close()
			out = f
		}
		return report.WriteComparisonCSV(out, cmp)
	case "xlsx":
		if output == "" {
			return eris.New("compare: --output is required for xlsx")
		}
		if err := report.WriteComparisonXLSX(output, cmp); err != nil {
			return err
		}
		zap.L().Info("comparison written", zap.String("path", output))
		return nil
	default:
		return eris.Errorf("compare: unknown format %q", format)
	}
}
