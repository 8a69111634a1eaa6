package heuristic

import (
	"fmt"
	"math/rand"

	"github.com/wrenfield/layercross/graph"
)

// Objective names the two sifting objectives: a node's total crossing
// count or the maximum crossing count among its incident edges. The -g
// flag is parsed into Config.Objective, but no heuristic takes an
// Objective: Sifting, MaximumCrossingsNode and
// MaximumCrossingsEdgeWithSifting all sift for total crossings.
type Objective int

const (
	ObjectiveTotal Objective = iota
	ObjectiveMax
)

// MaximumCrossingsNode repeatedly sifts the unfixed node with the
// greatest crossing count to its optimal position, fixing it afterward,
// until every node is fixed or the controller signals the run should
// stop.
func MaximumCrossingsNode(g *graph.Graph, rng *rand.Rand, c Controller) {
	c.Trace(-1, "*** start maximum crossings node")
	for !c.ShouldStop() {
		g.ClearFixedNodes()
		for {
			node := g.MaxCrossingsNode(rng)
			if node == -1 {
				break
			}
			layer := g.Node(node).Layer
			g.Sift(node)
			g.FixNode(node)
			c.Trace(layer, fmt.Sprintf("sifted node %d", node))
			if c.EndOfIteration() {
				return
			}
		}
		c.Trace(-1, "=== mcn, all nodes fixed")
	}
}

// MCEOption selects both which of an edge's endpoints
// MaximumCrossingsEdge sifts and when its pass stops: NODES/EARLY sift
// only the unfixed endpoints and stop once every node (NODES) or an
// already-settled edge (EARLY) is reached; EDGES always sifts both
// endpoints and only stops once every edge is fixed; ONE_NODE sifts a
// single endpoint, whichever currently carries more crossings, when
// neither is fixed yet.
type MCEOption int

const (
	MCENodes MCEOption = iota
	MCEEdges
	MCEEarly
	MCEOneNode
)

// MaximumCrossingsEdgeWithSifting repeatedly finds the unfixed edge with
// the greatest crossing count and sifts whichever of its endpoint nodes
// are not already fixed, for total crossings, fixing each node as it is
// sifted and the edge once both endpoints are settled.
func MaximumCrossingsEdgeWithSifting(g *graph.Graph, rng *rand.Rand, c Controller) {
	c.Trace(-1, "*** start maximum crossings edge with sifting")
	for !c.ShouldStop() {
		g.ClearFixedNodes()
		g.ClearFixedEdges()
		for {
			edge := g.MaxCrossingsEdge(rng)
			if edge < 0 || g.AllNodesFixed() {
				break
			}
			e := *g.Edge(edge)
			if !g.IsFixedNode(e.UpNode) {
				g.Sift(e.UpNode)
				g.FixNode(e.UpNode)
				c.Trace(g.Node(e.UpNode).Layer, fmt.Sprintf("sifted up node of edge %d", edge))
				if c.EndOfIteration() {
					return
				}
			}
			if !g.IsFixedNode(e.DownNode) {
				g.Sift(e.DownNode)
				g.FixNode(e.DownNode)
				c.Trace(g.Node(e.DownNode).Layer, fmt.Sprintf("sifted down node of edge %d", edge))
				if c.EndOfIteration() {
					return
				}
			}
			g.FixEdge(edge)
		}
		c.Trace(-1, "=== mce_s, all edges fixed")
	}
}

// MaximumCrossingsEdge repeatedly finds the unfixed edge with the
// greatest crossing count and, per option, sifts one or both of its
// endpoint nodes for that edge's own crossing count (rather than the
// whole layer's), fixing each node it sifts and the edge once both
// endpoints are settled.
func MaximumCrossingsEdge(g *graph.Graph, option MCEOption, rng *rand.Rand, c Controller) {
	c.Trace(-1, "*** start maximum crossings edge")
	for !c.ShouldStop() {
		g.ClearFixedNodes()
		g.ClearFixedEdges()
		for {
			edge := g.MaxCrossingsEdge(rng)
			if endMcePass(g, option, edge) {
				break
			}
			if edgeSiftIteration(g, option, edge, c) {
				return
			}
			g.FixEdge(edge)
		}
		c.Trace(-1, "=== mce, pass complete")
	}
}

// endMcePass reports whether the current pass should stop before
// processing edge, per option: EARLY stops once an unfixed edge's two
// endpoints have both already been fixed by other edges' sifting
// (further work on it would be redundant); NODES stops once every node
// is fixed even if edges remain; EDGES and ONE_NODE only stop once
// maxCrossingsEdge itself has no unfixed edge left to offer.
func endMcePass(g *graph.Graph, option MCEOption, edge graph.EdgeID) bool {
	if edge < 0 {
		return true
	}
	e := g.Edge(edge)
	if option == MCEEarly && g.IsFixedNode(e.UpNode) && g.IsFixedNode(e.DownNode) {
		return true
	}
	if option == MCENodes && g.AllNodesFixed() {
		return true
	}
	return false
}

// edgeSiftIteration sifts whichever of edge's endpoints option selects:
// EDGES always sifts both; ONE_NODE sifts only the more-crossed
// endpoint when neither is already fixed; NODES and EARLY sift whatever
// endpoints are not yet fixed. It reports whether the controller
// signalled the run should stop.
func edgeSiftIteration(g *graph.Graph, option MCEOption, edge graph.EdgeID, c Controller) bool {
	e := *g.Edge(edge)
	siftUp := option == MCEEdges || !g.IsFixedNode(e.UpNode)
	siftDown := option == MCEEdges || !g.IsFixedNode(e.DownNode)
	if option == MCEOneNode && siftUp && siftDown {
		if g.NumberOfCrossingsNode(e.DownNode) > g.NumberOfCrossingsNode(e.UpNode) {
			siftUp = false
		} else {
			siftDown = false
		}
	}
	if siftUp {
		g.SiftNodeForEdgeCrossings(edge, e.UpNode)
		g.FixNode(e.UpNode)
		c.Trace(g.Node(e.UpNode).Layer, fmt.Sprintf("improved edge %d, up node, option = %d", edge, option))
		if c.EndOfIteration() {
			return true
		}
	}
	if siftDown {
		g.SiftNodeForEdgeCrossings(edge, e.DownNode)
		g.FixNode(e.DownNode)
		c.Trace(g.Node(e.DownNode).Layer, fmt.Sprintf("improved edge %d, down node, option = %d", edge, option))
		if c.EndOfIteration() {
			return true
		}
	}
	return false
}

// MaximumStretchEdge repeatedly finds the unfixed edge with the
// greatest stretch and sifts its lower endpoint node with g.Sift, fixing
// the edge afterward. Stretch only selects the edge: the sift itself
// minimizes total crossings, not stretch.
func MaximumStretchEdge(g *graph.Graph, rng *rand.Rand, c Controller) {
	c.Trace(-1, "*** start maximum stretch edge")
	for !c.ShouldStop() {
		g.ClearFixedEdges()
		for {
			edge := g.MaxStretchEdge(rng)
			if edge < 0 {
				break
			}
			e := g.Edge(edge)
			g.Sift(e.DownNode)
			g.FixEdge(edge)
			c.Trace(-1, fmt.Sprintf("sifted down node of edge %d for stretch", edge))
			if c.EndOfIteration() {
				return
			}
		}
		c.Trace(-1, "=== mse, all edges fixed")
	}
}
