package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/agrovista/farmplan-cli/internal/engine"
)

// English digit grouping; XAF has no minor unit so amounts round to whole
// francs.
var xafPrinter = message.NewPrinter(language.English)

func xaf(v float64) string {
	return xafPrinter.Sprintf("%d XAF", int64(v+0.5))
}

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func printResult(out io.Writer, res *engine.Result) {
	fmt.Fprintf(out, "\n%s — %s strategy (intensity %.0f%%)\n", res.CropName, res.Strategy, res.Intensity*100)
	fmt.Fprintf(out, "Land: %.2f ha (%.2f acres)", res.Hectares, res.Acres)
	if res.Region != "" {
		fmt.Fprintf(out, "  Region: %s", res.Region)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Season: %d growing days, %d season(s)/year\n\n", res.Season.GrowingDays, res.Season.SeasonsPerYear)

	w := newTable(out)
	fmt.Fprintln(w, "COST ITEM\tAMOUNT")
	for _, item := range res.Costs.Items() {
		fmt.Fprintf(w, "%s\t%s\n", item.Name, xaf(item.Amount))
	}
	fmt.Fprintf(w, "total\t%s\n", xaf(res.Costs.Total))
	fmt.Fprintf(w, "per hectare\t%s\n", xaf(res.CostPerHa))
	w.Flush()

	fmt.Fprintf(out, "\nPRODUCTION\n")
	w = newTable(out)
	fmt.Fprintf(w, "total yield\t%.2f t\n", res.Production.TotalTons)
	fmt.Fprintf(w, "post-harvest loss\t%.1f%%\n", res.Production.LossRate*100)
	fmt.Fprintf(w, "marketable\t%.2f t\n", res.Production.MarketableTons)
	fmt.Fprintf(w, "gross revenue\t%s\n", xaf(res.Production.GrossRevenue))
	fmt.Fprintf(w, "net revenue\t%s\n", xaf(res.Production.NetRevenue))
	w.Flush()

	fmt.Fprintf(out, "\nPROFITABILITY\n")
	w = newTable(out)
	fmt.Fprintf(w, "net profit\t%s\n", xaf(res.Profit.NetProfit))
	fmt.Fprintf(w, "ROI\t%.1f%%\n", res.Profit.ROIPercent)
	if res.Profit.BreakEvenDefined {
		fmt.Fprintf(w, "break-even price\t%.0f XAF/kg\n", res.Profit.BreakEvenPerKg)
	}
	fmt.Fprintf(w, "profit per ha\t%s\n", xaf(res.Profit.ProfitPerHa))
	fmt.Fprintf(w, "cost per kg\t%.1f XAF\n", res.Profit.CostPerKg)
	w.Flush()

	if len(res.Profit.Advisories) > 0 {
		fmt.Fprintln(out)
		for _, adv := range res.Profit.Advisories {
			fmt.Fprintf(out, "[%s] %s\n", adv.Type, adv.Message)
		}
	}

	if res.Budget != nil {
		printBudget(out, res.Budget)
	}
}

func printBudget(out io.Writer, b *engine.BudgetAnalysis) {
	fmt.Fprintf(out, "\nBUDGET %s\n", xaf(b.Budget))
	if !b.Feasible {
		fmt.Fprintf(out, "Infeasible: short by %s. Suggested land size: %.2f ha\n", xaf(b.Shortfall), b.SuggestedHectares)
		return
	}
	w := newTable(out)
	fmt.Fprintln(w, "ALLOCATION\tAMOUNT")
	for _, item := range b.Allocations {
		fmt.Fprintf(w, "%s\t%s\n", item.Name, xaf(item.Amount))
	}
	fmt.Fprintf(w, "buffer\t%s\n", xaf(b.Buffer))
	w.Flush()
}

func printComparison(out io.Writer, cmp *engine.Comparison) {
	fmt.Fprintf(out, "\nStrategy comparison: %s, %.2f ha\n\n", cmp.Crop, cmp.Hectares)

	w := newTable(out)
	fmt.Fprintln(w, "STRATEGY\tTOTAL COST\tMARKETABLE\tNET PROFIT\tROI\tCOST/KG")
	for _, row := range cmp.Rows {
		fmt.Fprintf(w, "%s\t%s\t%.2f t\t%s\t%.1f%%\t%.1f\n",
			row.Strategy, xaf(row.TotalCost), row.MarketableTons,
			xaf(row.NetProfit), row.ROIPercent, row.CostPerKg)
	}
	w.Flush()

	fmt.Fprintf(out, "\nHighest ROI: %s\nHighest profit: %s\nMost cost-efficient: %s\n",
		cmp.HighestROI, cmp.HighestProfit, cmp.MostEfficient)
}

func printSweep(out io.Writer, sw *engine.Sweep) {
	fmt.Fprintf(out, "\nIntensity sensitivity: %s, %.2f ha\n\n", sw.Crop, sw.Hectares)

	w := newTable(out)
	fmt.Fprintln(w, "INTENSITY\tTOTAL COST\tMARKETABLE\tNET PROFIT\tROI")
	for _, sc := range sw.Scenarios {
		marker := ""
		if sc.LevelPercent == sw.RecommendedLevel {
			marker = " *"
		}
		fmt.Fprintf(w, "%d%%%s\t%s\t%.2f t\t%s\t%.1f%%\n",
			sc.LevelPercent, marker, xaf(sc.TotalCost), sc.MarketableTons,
			xaf(sc.NetProfit), sc.ROIPercent)
	}
	w.Flush()

	fmt.Fprintf(out, "\nRecommended intensity: %d%% (ROI %.1f%%, profit %s)\n",
		sw.RecommendedLevel, sw.BestROI, xaf(sw.BestProfit))
}

func printSchedule(out io.Writer, stages []engine.ScheduleStage) {
	fmt.Fprintf(out, "\nSCHEDULE\n")
	w := newTable(out)
	fmt.Fprintln(w, "STAGE\tTIMING\tACTIVITIES")
	for _, st := range stages {
		fmt.Fprintf(w, "%s\t%s\t%s\n", st.Stage, st.Timing, strings.Join(st.Activities, "; "))
	}
	w.Flush()
}
