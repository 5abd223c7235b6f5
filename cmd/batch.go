package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync/atomic"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/agrovista/farmplan-cli/internal/agridata"
	"github.com/agrovista/farmplan-cli/internal/engine"
)

var batchCmd = &cobra.Command{
	Use:   "batch <input.csv>",
	Short: "Run plans for many farms from a CSV file",
	Long: `Reads plan requests from a CSV file and runs them concurrently.

Input columns: crop, hectares, strategy, region, budget. The strategy,
region, and budget columns may be empty; empty strategy means balanced.
Results are written as CSV in input order; a failed row carries its error
message and does not abort the batch.

Example:
  farmplan batch farms.csv --output results.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().String("output", "", "results file path (default: stdout)")
	batchCmd.Flags().Int("concurrency", 0, "worker count (default from config)")
	rootCmd.AddCommand(batchCmd)
}

type batchRow struct {
	line int
	req  engine.Request
}

type batchResult struct {
	req engine.Request
	res *engine.Result
	err error
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	output, _ := cmd.Flags().GetString("output")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	if concurrency <= 0 {
		concurrency = cfg.Batch.Concurrency
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	in, err := os.Open(args[0])
	if err != nil {
		return eris.Wrapf(err, "batch: open %s", args[0])
	}
	defer in.Close()

	rows, err := readBatchRows(in)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		zap.L().Info("no rows to process")
		return nil
	}

	zap.L().Info("processing batch",
		zap.Int("rows", len(rows)),
		zap.Int("concurrency", concurrency),
	)

	results := processBatch(ctx, cat, rows, concurrency)

	out := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return eris.Wrapf(err, "batch: create %s", output)
		}
		defer f.Close()
		out = f
	}
	return writeBatchResults(out, results)
}

// readBatchRows parses the input CSV. A header row is detected by a
// non-numeric hectares column and skipped.
func readBatchRows(r io.Reader) ([]batchRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var rows []batchRow
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "batch: read csv")
		}
		line++

		if len(rec) < 2 {
			return nil, eris.Errorf("batch: line %d: need at least crop and hectares", line)
		}

		ha, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			if line == 1 {
				continue // header
			}
			return nil, eris.Wrapf(err, "batch: line %d: bad hectares %q", line, rec[1])
		}

		req := engine.Request{
			Crop:     strings.TrimSpace(rec[0]),
			Hectares: ha,
			Strategy: engine.StrategyBalanced,
		}
		if len(rec) > 2 && strings.TrimSpace(rec[2]) != "" {
			req.Strategy = engine.Strategy(strings.TrimSpace(rec[2]))
		}
		if len(rec) > 3 {
			req.Region = strings.TrimSpace(rec[3])
		}
		if len(rec) > 4 && strings.TrimSpace(rec[4]) != "" {
			budget, err := strconv.ParseFloat(strings.TrimSpace(rec[4]), 64)
			if err != nil {
				return nil, eris.Wrapf(err, "batch: line %d: bad budget %q", line, rec[4])
			}
			req.Budget = budget
		}

		rows = append(rows, batchRow{line: line, req: req})
	}
	return rows, nil
}

// processBatch runs the rows concurrently. Results land at the row's own
// index, so output order matches input order regardless of scheduling.
func processBatch(ctx context.Context, cat *agridata.Catalog, rows []batchRow, concurrency int) []batchResult {
	results := make([]batchResult, len(rows))

	var succeeded, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, row := range rows {
		i, row := i, row
		g.Go(func() error {
			if gctx.Err() != nil {
				results[i] = batchResult{req: row.req, err: gctx.Err()}
				return nil
			}

			res, err := engine.Plan(cat, row.req)
			results[i] = batchResult{req: row.req, res: res, err: err}
			if err != nil {
				failed.Add(1)
				zap.L().Error("plan failed",
					zap.Int("line", row.line),
					zap.String("crop", row.req.Crop),
					zap.Error(err),
				)
				return nil // don't abort batch on individual failure
			}
			succeeded.Add(1)
			return nil
		})
	}
	g.Wait()

	zap.L().Info("batch complete",
		zap.Int64("succeeded", succeeded.Load()),
		zap.Int64("failed", failed.Load()),
	)
	return results
}

func writeBatchResults(w io.Writer, results []batchResult) error {
	cw := csv.NewWriter(w)
	header := []string{
		"crop", "hectares", "strategy", "region",
		"total_cost_xaf", "marketable_tons", "net_profit_xaf", "roi_percent", "budget_feasible", "error",
	}
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "batch: write header")
	}

	for _, r := range results {
		rec := []string{
			r.req.Crop,
			fmt.Sprintf("%g", r.req.Hectares),
			string(r.req.Strategy),
			r.req.Region,
			"", "", "", "", "", "",
		}
		if r.err != nil {
			rec[9] = r.err.Error()
		} else {
			rec[4] = fmt.Sprintf("%.0f", r.res.Costs.Total)
			rec[5] = fmt.Sprintf("%.2f", r.res.Production.MarketableTons)
			rec[6] = fmt.Sprintf("%.0f", r.res.Profit.NetProfit)
			rec[7] = fmt.Sprintf("%.1f", r.res.Profit.ROIPercent)
			if r.res.Budget != nil {
				rec[8] = strconv.FormatBool(r.res.Budget.Feasible)
			}
		}
		if err := cw.Write(rec); err != nil {
			return eris.Wrap(err, "batch: write row")
		}
	}
	cw.Flush()
	return eris.Wrap(cw.Error(), "batch: flush")
}
