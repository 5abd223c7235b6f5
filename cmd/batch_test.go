package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrovista/farmplan-cli/internal/agridata"
	"github.com/agrovista/farmplan-cli/internal/engine"
)

func TestReadBatchRows(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"crop,hectares,strategy,region,budget",
		"maize,2,yield_max,Centre,1500000",
		"cassava,1.5,,,",
		"rice,3,cost_min",
	}, "\n")

	rows, err := readBatchRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "maize", rows[0].req.Crop)
	assert.Equal(t, engine.StrategyYieldMax, rows[0].req.Strategy)
	assert.Equal(t, "Centre", rows[0].req.Region)
	assert.Equal(t, 1500000.0, rows[0].req.Budget)

	// Empty strategy defaults to balanced.
	assert.Equal(t, engine.StrategyBalanced, rows[1].req.Strategy)
	assert.Equal(t, 1.5, rows[1].req.Hectares)
	assert.Zero(t, rows[1].req.Budget)

	// Short rows are fine.
	assert.Equal(t, engine.StrategyCostMin, rows[2].req.Strategy)
	assert.Empty(t, rows[2].req.Region)
}

func TestReadBatchRowsNoHeader(t *testing.T) {
	t.Parallel()

	rows, err := readBatchRows(strings.NewReader("maize,2\nrice,1\n"))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "maize", rows[0].req.Crop)
}

func TestReadBatchRowsErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "bad hectares past header", input: "maize,2\nrice,abc\n"},
		{name: "bad budget", input: "maize,2,balanced,Centre,lots\n"},
		{name: "too few columns", input: "maize\n"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := readBatchRows(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestProcessBatchOrderAndFailures(t *testing.T) {
	t.Parallel()

	cat := agridata.Default()
	rows := []batchRow{
		{line: 1, req: engine.Request{Crop: "maize", Hectares: 2, Strategy: engine.StrategyBalanced}},
		{line: 2, req: engine.Request{Crop: "durian", Hectares: 1, Strategy: engine.StrategyBalanced}},
		{line: 3, req: engine.Request{Crop: "rice", Hectares: 1, Strategy: engine.StrategyYieldMax}},
	}

	results := processBatch(context.Background(), cat, rows, 2)
	require.Len(t, results, 3)

	// Output order matches input order even with concurrent execution.
	assert.Equal(t, "maize", results[0].req.Crop)
	require.NoError(t, results[0].err)
	assert.Greater(t, results[0].res.Costs.Total, 0.0)

	assert.Error(t, results[1].err)
	assert.Nil(t, results[1].res)

	require.NoError(t, results[2].err)
	assert.Equal(t, engine.StrategyYieldMax, results[2].res.Strategy)
}

func TestWriteBatchResults(t *testing.T) {
	t.Parallel()

	cat := agridata.Default()
	rows := []batchRow{
		{line: 1, req: engine.Request{Crop: "maize", Hectares: 2, Strategy: engine.StrategyBalanced, Budget: 10000000}},
		{line: 2, req: engine.Request{Crop: "durian", Hectares: 1, Strategy: engine.StrategyBalanced}},
	}
	results := processBatch(context.Background(), cat, rows, 1)

	var buf bytes.Buffer
	require.NoError(t, writeBatchResults(&buf, results))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "crop", records[0][0])
	assert.Equal(t, "maize", records[1][0])
	assert.NotEmpty(t, records[1][4])       // total cost
	assert.Equal(t, "true", records[1][8])  // generous budget is feasible
	assert.Empty(t, records[1][9])          // no error

	assert.Equal(t, "durian", records[2][0])
	assert.Empty(t, records[2][4])
	assert.NotEmpty(t, records[2][9])
}
