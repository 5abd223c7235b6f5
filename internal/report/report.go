// Package report exports comparison and sensitivity results as CSV or XLSX
// files for downstream spreadsheet use. The engine itself returns structured
// data only; all serialization lives here.
package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/agrovista/farmplan-cli/internal/engine"
)

var comparisonHeader = []string{
	"strategy", "total_cost_xaf", "marketable_tons", "net_revenue_xaf",
	"net_profit_xaf", "roi_percent", "cost_per_kg_xaf", "profit_per_ha_xaf",
}

var sweepHeader = []string{
	"intensity_percent", "total_cost_xaf", "marketable_tons",
	"net_profit_xaf", "roi_percent", "profit_per_ha_xaf",
}

func comparisonRows(cmp *engine.Comparison) [][]string {
	rows := make([][]string, 0, len(cmp.Rows))
	for _, r := range cmp.Rows {
		rows = append(rows, []string{
			string(r.Strategy),
			fmt.Sprintf("%.0f", r.TotalCost),
			fmt.Sprintf("%.2f", r.MarketableTons),
			fmt.Sprintf("%.0f", r.NetRevenue),
			fmt.Sprintf("%.0f", r.NetProfit),
			fmt.Sprintf("%.1f", r.ROIPercent),
			fmt.Sprintf("%.1f", r.CostPerKg),
			fmt.Sprintf("%.0f", r.ProfitPerHa),
		})
	}
	return rows
}

func sweepRows(sw *engine.Sweep) [][]string {
	rows := make([][]string, 0, len(sw.Scenarios))
	for _, sc := range sw.Scenarios {
		rows = append(rows, []string{
			fmt.Sprintf("%d", sc.LevelPercent),
			fmt.Sprintf("%.0f", sc.TotalCost),
			fmt.Sprintf("%.2f", sc.MarketableTons),
			fmt.Sprintf("%.0f", sc.NetProfit),
			fmt.Sprintf("%.1f", sc.ROIPercent),
			fmt.Sprintf("%.0f", sc.ProfitPerHa),
		})
	}
	return rows
}

// WriteComparisonCSV writes a comparison as CSV.
func WriteComparisonCSV(w io.Writer, cmp *engine.Comparison) error {
	return writeCSV(w, comparisonHeader, comparisonRows(cmp))
}

// WriteSweepCSV writes a sensitivity sweep as CSV.
func WriteSweepCSV(w io.Writer, sw *engine.Sweep) error {
	return writeCSV(w, sweepHeader, sweepRows(sw))
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "report: write csv header")
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "report: write csv row")
		}
	}
	cw.Flush()
	return eris.Wrap(cw.Error(), "report: flush csv")
}

// WriteComparisonXLSX writes a comparison workbook to path.
func WriteComparisonXLSX(path string, cmp *engine.Comparison) error {
	return writeXLSX(path, "Comparison", comparisonHeader, comparisonRows(cmp))
}

// WriteSweepXLSX writes a sensitivity sweep workbook to path.
func WriteSweepXLSX(path string, sw *engine.Sweep) error {
	return writeXLSX(path, "Sensitivity", sweepHeader, sweepRows(sw))
}

func writeXLSX(path, sheetName string, header []string, rows [][]string) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(sheetName)
	if err != nil {
		return eris.Wrap(err, "report: add sheet")
	}

	hr := sheet.AddRow()
	for _, h := range header {
		hr.AddCell().SetString(h)
	}
	for _, row := range rows {
		r := sheet.AddRow()
		for _, cell := range row {
			r.AddCell().SetString(cell)
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "report: save %s", path)
	}
	return nil
}
