package graph

import "math/rand"

// InitCrossings allocates the per-channel edge buffers. Call once after
// the graph's nodes and edges are fully built and before the first call
// to UpdateAllCrossings.
func (g *Graph) InitCrossings() {
	g.channels = make([]channel, g.NumLayers())
	for layer := 1; layer < g.NumLayers(); layer++ {
		g.channels[layer] = channel{edges: make([]EdgeID, countDownEdges(g, layer))}
	}
}

func countDownEdges(g *Graph, upperLayer int) int {
	count := 0
	for _, id := range g.Layers[upperLayer].Nodes {
		count += g.Nodes[id].DownDegree()
	}
	return count
}

// UpdateAllCrossings reassigns positions on every layer and rebuilds
// every channel from scratch. This is the only correct way to
// (re)establish crossing counts after bulk changes to layer order (for
// example loading a new graph, or restoring a saved order).
func (g *Graph) UpdateAllCrossings() {
	g.UpdateAllPositions()
	for layer := 1; layer < g.NumLayers(); layer++ {
		g.UpdateCrossingsBetweenLayers(layer)
	}
}

// UpdateCrossingsForLayer reassigns positions on the given layer and
// rebuilds the one or two channels adjacent to it. This is the
// maintenance call every local reordering primitive (sort, sift,
// swap) must make before crossing counts can be trusted again.
func (g *Graph) UpdateCrossingsForLayer(layer int) {
	g.UpdatePositionsForLayer(layer)
	if layer > 0 {
		g.UpdateCrossingsBetweenLayers(layer)
	}
	if layer < g.NumLayers()-1 {
		g.UpdateCrossingsBetweenLayers(layer + 1)
	}
}

// initializeCrossings zeroes the crossing counters that
// UpdateCrossingsBetweenLayers is about to recompute, so the recount
// below adds onto a clean slate instead of double-counting.
func (g *Graph) initializeCrossings(upperLayer int) {
	for _, id := range g.Layers[upperLayer].Nodes {
		n := &g.Nodes[id]
		n.DownCrossings = 0
		for _, e := range n.DownEdges {
			g.Edges[e].Crossings = 0
		}
	}
	for _, id := range g.Layers[upperLayer-1].Nodes {
		g.Nodes[id].UpCrossings = 0
	}
}

// UpdateCrossingsBetweenLayers rebuilds channel upperLayer (the edges
// between upperLayer-1 and upperLayer): it stably sorts each upper-layer
// node's down-edges by DownNode position, concatenates them in
// upper-layer node order into the channel's edge buffer, zeroes the
// counters the buffer is responsible for, and counts inversions against
// the fresh buffer - which is exactly the O(|E|+|C|) bilayer crossing
// count.
func (g *Graph) UpdateCrossingsBetweenLayers(upperLayer int) {
	ch := &g.channels[upperLayer]
	index := 0
	for _, id := range g.Layers[upperLayer].Nodes {
		n := &g.Nodes[id]
		g.SortEdgesByDownNodePosition(n.DownEdges)
		copy(ch.edges[index:], n.DownEdges)
		index += len(n.DownEdges)
	}
	g.initializeCrossings(upperLayer)
	g.CountInversionsDown(ch.edges, 1)
}

// NumberOfCrossings is the total crossing count of the whole drawing.
func (g *Graph) NumberOfCrossings() int {
	total := 0
	for layer := 1; layer < g.NumLayers(); layer++ {
		total += g.crossingsInChannel(layer)
	}
	return total
}

// crossingsInChannel sums the Crossings field of every edge in channel
// layer and halves it, since every crossing is charged to both of its
// edges; it is O(channel size) but channel sizes are small in practice
// and this keeps the channel struct free of a separately-maintained
// total that could drift out of sync with per-edge counters.
func (g *Graph) crossingsInChannel(layer int) int {
	total := 0
	for _, e := range g.channels[layer].edges {
		total += g.Edges[e].Crossings
	}
	return total / 2
}

// NumberOfCrossingsLayer is the crossing count charged to layer's two
// adjacent channels.
func (g *Graph) NumberOfCrossingsLayer(layer int) int {
	total := 0
	if layer > 0 {
		total += g.crossingsInChannel(layer)
	}
	if layer < g.NumLayers()-1 {
		total += g.crossingsInChannel(layer + 1)
	}
	return total
}

// NumberOfCrossingsNode is node's total crossing count.
func (g *Graph) NumberOfCrossingsNode(id NodeID) int { return g.Nodes[id].Crossings() }

// NumberOfCrossingsEdge is edge's crossing count.
func (g *Graph) NumberOfCrossingsEdge(id EdgeID) int { return g.Edges[id].Crossings }

// MaxEdgeCrossings is the greatest crossing count over every edge,
// ignoring the fixed flag.
func (g *Graph) MaxEdgeCrossings() int {
	id := g.MaxCrossingsEdgeStatic(nil)
	if id < 0 {
		return 0
	}
	return g.Edges[id].Crossings
}

// MaxCrossingsLayer returns the unfixed layer with the greatest
// crossing count, or -1 if every layer is fixed. rng, if non-nil,
// randomizes tie-breaking among equally-crossed layers.
func (g *Graph) MaxCrossingsLayer(rng *rand.Rand) int {
	return argmax(g.NumLayers(), func(i int) (int, bool) {
		if g.Layers[i].Fixed {
			return 0, false
		}
		return g.NumberOfCrossingsLayer(i), true
	}, rng)
}

// MaxCrossingsNode returns the unfixed node with the greatest crossing
// count, or -1 if every node is fixed.
func (g *Graph) MaxCrossingsNode(rng *rand.Rand) NodeID {
	i := argmax(g.NumNodes(), func(i int) (int, bool) {
		if g.Nodes[i].Fixed {
			return 0, false
		}
		return g.Nodes[i].Crossings(), true
	}, rng)
	if i < 0 {
		return -1
	}
	return NodeID(i)
}

// MaxCrossingsEdge returns the unfixed edge with the greatest crossing
// count, or -1 if every edge is fixed.
func (g *Graph) MaxCrossingsEdge(rng *rand.Rand) EdgeID {
	i := argmax(g.NumEdges(), func(i int) (int, bool) {
		if g.Edges[i].Fixed {
			return 0, false
		}
		return g.Edges[i].Crossings, true
	}, rng)
	if i < 0 {
		return -1
	}
	return EdgeID(i)
}

// MaxCrossingsEdgeStatic is like MaxCrossingsEdge but ignores the fixed
// flag entirely; used by MaxEdgeCrossings, which reports a global
// statistic rather than driving a per-edge iteration.
func (g *Graph) MaxCrossingsEdgeStatic(rng *rand.Rand) EdgeID {
	i := argmax(g.NumEdges(), func(i int) (int, bool) {
		return g.Edges[i].Crossings, true
	}, rng)
	if i < 0 {
		return -1
	}
	return EdgeID(i)
}
