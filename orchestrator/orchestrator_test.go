package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenfield/layercross/graph"
)

// crossedGraph builds the same one-crossing fixture used throughout
// package graph and package heuristic's own tests: layer 0 has a, b;
// layer 1 has x, y; edges x-b and y-a cross in that left-to-right order.
func crossedGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph("crossed", 2)
	a := g.AddNode("a", 0)
	b := g.AddNode("b", 0)
	x := g.AddNode("x", 1)
	y := g.AddNode("y", 1)
	_, err := g.AddEdge(x, b)
	require.NoError(t, err)
	_, err = g.AddEdge(y, a)
	require.NoError(t, err)
	return g
}

func TestExecuteRejectsUnknownHeuristic(t *testing.T) {
	g := crossedGraph(t)
	cfg := DefaultConfig()
	cfg.Heuristic = HeuristicName("not_a_real_heuristic")
	_, err := Execute(g, cfg, nil)
	assert.Error(t, err)
}

func TestExecuteNeverIncreasesCrossings(t *testing.T) {
	for _, h := range []HeuristicName{
		HeuristicMedian, HeuristicBary, HeuristicModBary, HeuristicStaticBary,
		HeuristicAltBary, HeuristicUpDownBary, HeuristicRotateBary, HeuristicSlabBary,
		HeuristicMCN, HeuristicMCE, HeuristicMCES, HeuristicMSE, HeuristicSifting,
	} {
		h := h
		t.Run(string(h), func(t *testing.T) {
			g := crossedGraph(t)
			before := 0
			g.InitCrossings()
			g.UpdateAllCrossings()
			before = g.NumberOfCrossings()

			g2 := crossedGraph(t)
			cfg := DefaultConfig()
			cfg.Heuristic = h
			cfg.MaxIterations = 200
			cfg.StandardTermination = true
			result, err := Execute(g2, cfg, nil)
			require.NoError(t, err)
			assert.LessOrEqual(t, int(result.TotalCrossings.Best), before)
		})
	}
}

func TestExecuteWithPostProcessingSwaps(t *testing.T) {
	g := crossedGraph(t)
	cfg := DefaultConfig()
	cfg.Heuristic = HeuristicBary
	cfg.PostProcessSwaps = true
	cfg.MaxIterations = 50
	result, err := Execute(g, cfg, nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.PostProcessingIterations, 0)
}

func TestExecuteWithFavoredEdges(t *testing.T) {
	g := crossedGraph(t)
	cfg := DefaultConfig()
	cfg.Heuristic = HeuristicBary
	cfg.Favored = true
	cfg.MaxIterations = 50
	result, err := Execute(g, cfg, nil)
	require.NoError(t, err)
	require.NotNil(t, result.FavoredCrossings)
	assert.GreaterOrEqual(t, result.FavoredCrossings.Best, float64(0))
}

func TestExecuteWithPreprocessors(t *testing.T) {
	for _, p := range []PreprocessorName{PreprocessorNone, PreprocessorBFS, PreprocessorDFS, PreprocessorMDS} {
		p := p
		t.Run(string(p)+"_preprocessor", func(t *testing.T) {
			g := crossedGraph(t)
			cfg := DefaultConfig()
			cfg.Preprocessor = p
			cfg.MaxIterations = 50
			_, err := Execute(g, cfg, nil)
			require.NoError(t, err)
		})
	}
}

func TestExecuteRestorableOrderMatchesGraphAfterRestore(t *testing.T) {
	g := crossedGraph(t)
	cfg := DefaultConfig()
	cfg.Heuristic = HeuristicBary
	cfg.MaxIterations = 50
	result, err := Execute(g, cfg, nil)
	require.NoError(t, err)

	// Scramble the graph's order, then restore the best-known total
	// crossings order and confirm it reproduces the recorded best value.
	g.SetLayerOrder(1, []graph.NodeID{g.Layers[1].Nodes[1], g.Layers[1].Nodes[0]})
	g.UpdateAllCrossings()

	result.TotalCrossings.Order.Restore(g)
	assert.Equal(t, result.TotalCrossings.Best, float64(g.NumberOfCrossings()))
}

func TestExecuteCapturesConfiguredIteration(t *testing.T) {
	g := crossedGraph(t)
	cfg := DefaultConfig()
	cfg.Heuristic = HeuristicBary
	cfg.MaxIterations = 50
	cfg.StandardTermination = false
	cfg.CaptureIteration = 2
	result, err := Execute(g, cfg, nil)
	require.NoError(t, err)
	require.NotNil(t, result.Captured)

	before := append([]graph.NodeID(nil), g.Layers[1].Nodes...)
	g.SetLayerOrder(1, []graph.NodeID{g.Layers[1].Nodes[1], g.Layers[1].Nodes[0]})
	result.Captured.Restore(g)
	assert.ElementsMatch(t, before, g.Layers[1].Nodes)
}

func TestExecuteLeavesCapturedNilWhenIterationNeverReached(t *testing.T) {
	g := crossedGraph(t)
	cfg := DefaultConfig()
	cfg.Heuristic = HeuristicBary
	cfg.MaxIterations = 1
	cfg.CaptureIteration = 100
	result, err := Execute(g, cfg, nil)
	require.NoError(t, err)
	assert.Nil(t, result.Captured)
}

func TestExecuteReportsParetoFrontier(t *testing.T) {
	g := crossedGraph(t)
	cfg := DefaultConfig()
	cfg.Heuristic = HeuristicBary
	cfg.MaxIterations = 50
	result, err := Execute(g, cfg, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Pareto)
}
