package connectivity_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waternet/connectivity"
	"github.com/katalvlaran/waternet/core"
	"github.com/katalvlaran/waternet/gridgraph"
)

func analyzeGrid(t *testing.T, grid [][]int) connectivity.Metrics {
	t.Helper()
	res, err := gridgraph.Build(grid, gridgraph.DefaultOptions())
	require.NoError(t, err)
	m, err := connectivity.Analyze(res.Graph)
	require.NoError(t, err)
	return m
}

// TestAnalyze_Scenarios covers the reference rasters with hand-computed metrics.
func TestAnalyze_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		want connectivity.Metrics
	}{
		{
			name: "AllWater3x3",
			grid: [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
			want: connectivity.Metrics{
				Edges: 12, Nodes: 9, Components: 1, LargestComponent: 9,
				AvgDegree: 24.0 / 9.0,
				Score:     (12.0 - 81.0) / 9.0 * (1 + (24.0/9.0)/1.0),
			},
		},
		{
			name: "SingleWaterCell",
			grid: [][]int{{0}},
			want: connectivity.Metrics{Nodes: 1, Components: 1, LargestComponent: 1, Score: -1},
		},
		{
			name: "Checkerboard2x2",
			grid: [][]int{{0, 1}, {1, 0}},
			want: connectivity.Metrics{Nodes: 2, Components: 2, LargestComponent: 1, Score: -0.5},
		},
		{
			name: "AllDry",
			grid: [][]int{{1, 1, 1}, {1, 1, 1}},
			want: connectivity.Metrics{},
		},
		{
			name: "Empty",
			grid: [][]int{},
			want: connectivity.Metrics{},
		},
		{
			name: "TwoBodies",
			// a 3-cell strip and an isolated cell
			grid: [][]int{{0, 0, 0, 1, 0}},
			want: connectivity.Metrics{
				Edges: 2, Nodes: 4, Components: 2, LargestComponent: 3,
				AvgDegree: 1,
				Score:     (2.0 - 9.0) / 4.0 * (1 + 1.0/2.0),
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := analyzeGrid(t, tc.grid)
			assert.Equal(t, tc.want.Edges, got.Edges, "edges")
			assert.Equal(t, tc.want.Nodes, got.Nodes, "nodes")
			assert.Equal(t, tc.want.Components, got.Components, "components")
			assert.Equal(t, tc.want.LargestComponent, got.LargestComponent, "largest")
			assert.InDelta(t, tc.want.AvgDegree, got.AvgDegree, 1e-12, "avg degree")
			assert.InDelta(t, tc.want.Score, got.Score, 1e-12, "score")
		})
	}
}

// TestAnalyze_3x3Rounded checks the two-decimal values the report prints.
func TestAnalyze_3x3Rounded(t *testing.T) {
	m := analyzeGrid(t, [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})
	assert.InDelta(t, 2.67, m.AvgDegree, 0.005)
	assert.InDelta(t, -28.11, m.Score, 0.005)
}

// TestAnalyze_Nil rejects a nil graph.
func TestAnalyze_Nil(t *testing.T) {
	_, err := connectivity.Analyze(nil)
	require.ErrorIs(t, err, connectivity.ErrDegenerateInput)
	_, err = connectivity.Components(nil)
	require.ErrorIs(t, err, connectivity.ErrDegenerateInput)
	_, err = connectivity.DegreeHistogram(nil)
	require.ErrorIs(t, err, connectivity.ErrDegenerateInput)
}

// TestAnalyze_Invariants checks metric invariants on random rasters.
func TestAnalyze_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 40; trial++ {
		h, w := rng.Intn(15), rng.Intn(15)
		p := rng.Float64()
		grid := make([][]int, h)
		for r := range grid {
			grid[r] = make([]int, w)
			for c := range grid[r] {
				if rng.Float64() >= p {
					grid[r][c] = 1
				}
			}
		}
		m := analyzeGrid(t, grid)

		require.LessOrEqual(t, m.LargestComponent, m.Nodes)
		require.Equal(t, m.Nodes == 0, m.Components == 0)
		if m.Nodes > 0 {
			require.GreaterOrEqual(t, m.Components, 1)
			require.Equal(t, float64(2*m.Edges)/float64(m.Nodes), m.AvgDegree)
			require.Equal(t,
				connectivity.Score(m.Edges, m.Nodes, m.Components, m.LargestComponent, m.AvgDegree),
				m.Score)
		} else {
			require.Zero(t, m.AvgDegree)
			require.Zero(t, m.Score)
			require.Zero(t, m.LargestComponent)
		}
	}
}

// TestAnalyze_InsertionOrderIndependent builds the same graph in two orders.
func TestAnalyze_InsertionOrderIndependent(t *testing.T) {
	edges := []core.Edge{
		{From: core.Cell{Row: 0, Col: 0}, To: core.Cell{Row: 0, Col: 1}},
		{From: core.Cell{Row: 0, Col: 1}, To: core.Cell{Row: 1, Col: 1}},
		{From: core.Cell{Row: 4, Col: 4}, To: core.Cell{Row: 4, Col: 5}},
	}
	forward, backward := core.NewGraph(), core.NewGraph()
	for i := range edges {
		require.NoError(t, forward.AddEdge(edges[i].From, edges[i].To))
		e := edges[len(edges)-1-i]
		require.NoError(t, backward.AddEdge(e.To, e.From))
	}
	forward.AddVertex(core.Cell{Row: 9, Col: 0})
	backward.AddVertex(core.Cell{Row: 9, Col: 0})

	a, err := connectivity.Analyze(forward)
	require.NoError(t, err)
	b, err := connectivity.Analyze(backward)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 3, a.Components)
	assert.Equal(t, 3, a.LargestComponent)
}
