package main

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agrovista/farmplan-cli/internal/engine"
	"github.com/agrovista/farmplan-cli/internal/report"
)

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity",
	Short: "Sweep input intensity and recommend the best level",
	Long: `Reruns the balanced-strategy pipeline across a range of input
intensity levels and recommends the level with the highest ROI.

Examples:
  farmplan sensitivity --crop maize --land 2
  farmplan sensitivity --crop rice --land 5 --levels 60,70,80,90 --format csv --output sweep.csv`,
	RunE: runSensitivity,
}

func init() {
	f := sensitivityCmd.Flags()
	f.String("crop", "", "crop identifier (see 'farmplan crops')")
	f.Float64("land", 1, "land size in hectares")
	f.String("region", "", "region name for irrigation adjustment")
	f.String("levels", "", "comma-separated intensity percentages (default 50-100)")
	f.String("format", "table", "output format: table, json, csv, or xlsx")
	f.String("output", "", "output file path (default: stdout; required for xlsx)")
	sensitivityCmd.MarkFlagRequired("crop")

	rootCmd.AddCommand(sensitivityCmd)
}

func parseLevels(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	levels := make([]int, 0, len(parts))
	for _, p := range parts {
		lvl, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, eris.Wrapf(err, "sensitivity: bad level %q", p)
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

func runSensitivity(cmd *cobra.Command, _ []string) error {
	crop, _ := cmd.Flags().GetString("crop")
	land, _ := cmd.Flags().GetFloat64("land")
	region, _ := cmd.Flags().GetString("region")
	levelsFlag, _ := cmd.Flags().GetString("levels")
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	levels, err := parseLevels(levelsFlag)
	if err != nil {
		return err
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	sw, err := engine.SensitivitySweep(cat, crop, land, region, levels)
	if err != nil {
		return err
	}

	switch strings.ToLower(format) {
	case "table":
		printSweep(os.Stdout, sw)
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sw)
	case "csv":
		out := os.Stdout
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return eris.Wrapf(err, "sensitivity: create %s", output)
			}
			defer f.Close()
			out = f
		}
		return report.WriteSweepCSV(out, sw)
	case "xlsx":
		if output == "" {
			return eris.New("sensitivity: --output is required for xlsx")
		}
		if err := report.WriteSweepXLSX(output, sw); err != nil {
			return err
		}
		zap.L().Info("sweep written", zap.String("path", output))
		return nil
	default:
		return eris.Errorf("sensitivity: unknown format %q", format)
	}
}
