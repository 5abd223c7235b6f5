package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agrovista/farmplan-cli/internal/agridata"
	"github.com/agrovista/farmplan-cli/internal/config"
)

var cfg *config.Config

var catalogPath string

var rootCmd = &cobra.Command{
	Use:   "farmplan",
	Short: "Farm cost, yield, and profitability planning for Cameroon",
	Long:  "Computes production cost breakdowns, yield and revenue projections, and strategy comparisons for Cameroonian crops, with regional irrigation adjustment and budget feasibility analysis.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// loadCatalog returns the default reference data, or the defaults merged
// with the override file from --catalog or config.
func loadCatalog() (*agridata.Catalog, error) {
	path := catalogPath
	if path == "" {
		path = cfg.Catalog.Path
	}
	if path == "" {
		return agridata.Default(), nil
	}
	return agridata.LoadFile(path)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "path to a YAML catalog override file")
}
