package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cropsCmd = &cobra.Command{
	Use:   "crops",
	Short: "List the crops and regions in the catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		w := newTable(os.Stdout)
		fmt.Fprintln(w, "ID\tNAME\tOPTIMAL YIELD\tFARMGATE\tSEASONS/YR")
		for _, id := range cat.CropIDs() {
			c, err := cat.Crop(id)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%.1f t/ha\t%.0f XAF/kg\t%d\n",
				c.ID, c.Name, c.OptimalYield, c.FarmgatePerKg, c.SeasonsPerYear)
		}
		w.Flush()

		fmt.Fprintf(os.Stdout, "\nRegions:")
		for _, r := range cat.RegionNames() {
			fmt.Fprintf(os.Stdout, " %s (%.0f%%)", r, cat.IrrigationNeed(r)*100)
		}
		fmt.Fprintln(os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cropsCmd)
}
