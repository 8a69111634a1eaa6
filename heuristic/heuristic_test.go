package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenfield/layercross/graph"
)

// fakeController caps the number of EndOfIteration/ShouldStop calls so
// tests never loop forever, and records every trace message for
// inspection.
type fakeController struct {
	maxIterations       int
	iterations          int
	traces              []string
	standardTermination bool
}

func (f *fakeController) EndOfIteration() bool {
	f.iterations++
	return f.iterations >= f.maxIterations
}

func (f *fakeController) ShouldStop() bool {
	return f.iterations >= f.maxIterations
}

func (f *fakeController) StandardTermination() bool {
	return f.standardTermination
}

func (f *fakeController) Trace(layer int, message string) {
	f.traces = append(f.traces, message)
}

// crossedGraph builds the same one-crossing fixture used throughout
// package graph's own tests: layer 0 has a, b; layer 1 has x, y; edges
// x-b and y-a cross in that left-to-right order.
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
	g.InitCrossings()
	g.UpdateAllCrossings()
	return g
}

func TestMedianSweepsNeverIncreaseCrossings(t *testing.T) {
	g := crossedGraph(t)
	before := g.NumberOfCrossings()
	c := &fakeController{maxIterations: 100}
	Median(g, graph.SentinelAvg, c)
	assert.LessOrEqual(t, g.NumberOfCrossings(), before)
}

func TestBarycenterSweepsNeverIncreaseCrossings(t *testing.T) {
	g := crossedGraph(t)
	before := g.NumberOfCrossings()
	c := &fakeController{maxIterations: 100}
	Barycenter(g, false, graph.SentinelAvg, c)
	assert.LessOrEqual(t, g.NumberOfCrossings(), before)
}

func TestMaximumCrossingsNodeNeverIncreasesCrossings(t *testing.T) {
	g := crossedGraph(t)
	before := g.NumberOfCrossings()
	c := &fakeController{maxIterations: 1000, standardTermination: true}
	MaximumCrossingsNode(g, nil, c)
	assert.LessOrEqual(t, g.NumberOfCrossings(), before)
}

func TestSiftingNeverIncreasesCrossings(t *testing.T) {
	g := crossedGraph(t)
	before := g.NumberOfCrossings()
	c := &fakeController{maxIterations: 50}
	Sifting(g, SiftByDegree, false, nil, c)
	assert.LessOrEqual(t, g.NumberOfCrossings(), before)
}

func TestSwappingNeverIncreasesCrossings(t *testing.T) {
	g := crossedGraph(t)
	before := g.NumberOfCrossings()
	c := &fakeController{maxIterations: 50}
	Swapping(g, c)
	assert.LessOrEqual(t, g.NumberOfCrossings(), before)
}

func TestDepthFirstSearchAssignsEveryNodeAWeight(t *testing.T) {
	g := crossedGraph(t)
	DepthFirstSearch(g)
	for i := range g.Nodes {
		assert.GreaterOrEqual(t, g.Nodes[i].Weight, float64(0))
	}
}

func TestMiddleDegreeSortRunsWithoutPanicking(t *testing.T) {
	g := crossedGraph(t)
	assert.NotPanics(t, func() { MiddleDegreeSort(g) })
}

func TestMaximumStretchEdgeNeverIncreasesTotalStretch(t *testing.T) {
	g := crossedGraph(t)
	before := g.TotalStretch()
	c := &fakeController{maxIterations: 100}
	MaximumStretchEdge(g, nil, c)
	assert.LessOrEqual(t, g.TotalStretch(), before)
}

// lopsidedGraph builds a three-layer graph with one crossing in each
// channel, so the middle-layer nodes x and y carry two crossings each
// while the outer-layer nodes carry one; every edge's two endpoints
// therefore carry different crossing loads, so MCEOneNode's "sift
// whichever endpoint has more crossings" comparison has a real,
// checkable answer instead of an arbitrary tie.
func lopsidedGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph("lopsided", 3)
	a := g.AddNode("a", 0)
	b := g.AddNode("b", 0)
	x := g.AddNode("x", 1)
	y := g.AddNode("y", 1)
	p := g.AddNode("p", 2)
	q := g.AddNode("q", 2)
	_, err := g.AddEdge(x, b)
	require.NoError(t, err)
	_, err = g.AddEdge(y, a)
	require.NoError(t, err)
	_, err = g.AddEdge(p, y)
	require.NoError(t, err)
	_, err = g.AddEdge(q, x)
	require.NoError(t, err)
	g.InitCrossings()
	g.UpdateAllCrossings()
	return g
}

func TestMaximumCrossingsEdgeNeverIncreasesCrossings(t *testing.T) {
	for _, option := range []MCEOption{MCENodes, MCEEdges, MCEEarly, MCEOneNode} {
		t.Run("", func(t *testing.T) {
			g := lopsidedGraph(t)
			before := g.NumberOfCrossings()
			c := &fakeController{maxIterations: 200, standardTermination: true}
			MaximumCrossingsEdge(g, option, nil, c)
			assert.LessOrEqual(t, g.NumberOfCrossings(), before)
		})
	}
}

func TestMaximumCrossingsEdgeWithSiftingNeverIncreasesCrossings(t *testing.T) {
	g := lopsidedGraph(t)
	before := g.NumberOfCrossings()
	c := &fakeController{maxIterations: 200, standardTermination: true}
	MaximumCrossingsEdgeWithSifting(g, nil, c)
	assert.LessOrEqual(t, g.NumberOfCrossings(), before)
}

// TestSiftingSkipsAPassWhenBudgetIsAlreadyExhausted guards against a
// regression where the fail-count retry term let a full sifting pass
// run even though the controller's budget was already spent before
// Sifting was ever called - standard_termination must gate that term,
// not just "start the loop at all".
func TestSiftingSkipsAPassWhenBudgetIsAlreadyExhausted(t *testing.T) {
	g := crossedGraph(t)
	before := append([]graph.NodeID(nil), g.Layers[1].Nodes...)
	c := &fakeController{maxIterations: 0, standardTermination: false}
	Sifting(g, SiftByDegree, false, nil, c)
	assert.Equal(t, before, g.Layers[1].Nodes)
}
