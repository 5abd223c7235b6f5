package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrovista/farmplan-cli/internal/agridata"
	"github.com/agrovista/farmplan-cli/internal/engine"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(New(agridata.Default(), 0, 0).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	return resp
}

func TestHealth(t *testing.T) {
	t.Parallel()
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestCrops(t *testing.T) {
	t.Parallel()
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/crops")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Crops []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"crops"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	ids := make([]string, 0, len(body.Crops))
	for _, c := range body.Crops {
		ids = append(ids, c.ID)
	}
	assert.Contains(t, ids, "maize")
	assert.Contains(t, ids, "cassava")
}

func TestRegions(t *testing.T) {
	t.Parallel()
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/regions")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Regions []string `json:"regions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.Regions, "Centre")
}

func TestPlan(t *testing.T) {
	t.Parallel()
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/plan", map[string]any{
		"crop":     "maize",
		"hectares": 2.0,
		"strategy": "yield_max",
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res engine.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "maize", res.Crop)
	assert.Equal(t, engine.StrategyYieldMax, res.Strategy)
	assert.Greater(t, res.Costs.Total, 0.0)
	assert.Greater(t, res.Production.MarketableTons, 0.0)
}

func TestPlanDefaultsToBalanced(t *testing.T) {
	t.Parallel()
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/plan", map[string]any{
		"crop":     "maize",
		"hectares": 1.0,
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res engine.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, engine.StrategyBalanced, res.Strategy)
}

func TestPlanErrors(t *testing.T) {
	t.Parallel()
	srv := testServer(t)

	tests := []struct {
		name string
		body map[string]any
		want int
	}{
		{
			name: "unknown crop",
			body: map[string]any{"crop": "durian", "hectares": 1.0},
			want: http.StatusNotFound,
		},
		{
			name: "zero hectares",
			body: map[string]any{"crop": "maize", "hectares": 0.0},
			want: http.StatusBadRequest,
		},
		{
			name: "negative hectares",
			body: map[string]any{"crop": "maize", "hectares": -3.0},
			want: http.StatusBadRequest,
		},
		{
			name: "unknown region",
			body: map[string]any{"crop": "maize", "hectares": 1.0, "region": "Atlantis"},
			want: http.StatusBadRequest,
		},
		{
			name: "bad strategy",
			body: map[string]any{"crop": "maize", "hectares": 1.0, "strategy": "maximal"},
			want: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, srv.URL+"/api/plan", tt.body)
			defer resp.Body.Close()
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestPlanMalformedBody(t *testing.T) {
	t.Parallel()
	srv := testServer(t)

	resp, err := http.Post(srv.URL+"/api/plan", "application/json", bytes.NewReader([]byte("{nope")))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCompare(t *testing.T) {
	t.Parallel()
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/compare", map[string]any{
		"crop":     "rice",
		"hectares": 3.0,
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cmp engine.Comparison
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cmp))
	require.Len(t, cmp.Rows, 3)
	assert.NotEmpty(t, cmp.HighestROI)
	assert.NotEmpty(t, cmp.HighestProfit)
	assert.NotEmpty(t, cmp.MostEfficient)
}

func TestSensitivity(t *testing.T) {
	t.Parallel()
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/sensitivity", map[string]any{
		"crop":     "maize",
		"hectares": 1.0,
		"levels":   []int{50, 75, 100},
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sw engine.Sweep
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sw))
	require.Len(t, sw.Scenarios, 3)
	assert.Equal(t, 50, sw.Scenarios[0].LevelPercent)
	assert.Contains(t, []int{50, 75, 100}, sw.RecommendedLevel)
}

func TestSensitivityBadLevel(t *testing.T) {
	t.Parallel()
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/sensitivity", map[string]any{
		"crop":     "maize",
		"hectares": 1.0,
		"levels":   []int{150},
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(New(agridata.Default(), 1, 1).Handler())
	t.Cleanup(srv.Close)

	codes := make(map[int]int)
	for i := 0; i < 5; i++ {
		resp, err := http.Get(srv.URL + "/health")
		require.NoError(t, err)
		resp.Body.Close()
		codes[resp.StatusCode]++
	}
	assert.Greater(t, codes[http.StatusTooManyRequests], 0)
	assert.Greater(t, codes[http.StatusOK], 0)
}
