package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenfield/layercross/graph"
)

func TestOrderRoundTrip(t *testing.T) {
	g := graph.NewGraph("g", 2)
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

	saved := NewOrder(g)
	before := append([]graph.NodeID(nil), g.Layers[0].Nodes...)

	g.SetLayerOrder(0, []graph.NodeID{b, a})
	assert.NotEqual(t, before, g.Layers[0].Nodes)

	saved.Restore(g)
	assert.Equal(t, before, g.Layers[0].Nodes)
}

func TestTrackerUpdateBestAndHasImproved(t *testing.T) {
	tr := NewTracker("Crossings")
	saves := 0
	tr.UpdateBest(5, 0, func() { saves++ })
	assert.Equal(t, float64(5), tr.Best)
	assert.Equal(t, 1, saves)
	assert.True(t, tr.HasImproved())
	assert.False(t, tr.HasImproved())

	tr.UpdateBest(7, 1, func() { saves++ })
	assert.Equal(t, float64(5), tr.Best, "worse value must not replace best")
	assert.Equal(t, 1, saves)

	tr.UpdateBest(2, 2, func() { saves++ })
	assert.Equal(t, float64(2), tr.Best)
	assert.Equal(t, 2, saves)
	assert.True(t, tr.HasImproved())
}

func TestParetoFrontierKeepsOnlyNonDominated(t *testing.T) {
	var f ParetoFrontier
	f.Insert(5, 10)
	f.Insert(3, 12) // strictly better bottleneck, worse total: a second, incomparable point
	f.Insert(6, 11) // dominated by (5,10) on both axes: dropped

	pts := f.Points()
	require.Len(t, pts, 2)
	for i := 1; i < len(pts); i++ {
		assert.Less(t, pts[i-1].Bottleneck, pts[i].Bottleneck)
		assert.Greater(t, pts[i-1].Total, pts[i].Total)
	}
}

func TestParetoFrontierSinglePoint(t *testing.T) {
	var f ParetoFrontier
	f.Insert(4, 20)
	f.Insert(4, 25) // same bottleneck, worse total: dominated, dropped
	assert.Equal(t, []ParetoPoint{{Bottleneck: 4, Total: 20}}, f.Points())
}
