package heuristic

import (
	"math/rand"

	"golang.org/x/exp/slices"

	"github.com/wrenfield/layercross/graph"
)

// maxSiftingFails bounds how many consecutive failed passes the sifting
// controller tolerates under standard termination before giving up,
// mirroring the upstream implementation's single-retry policy.
const maxSiftingFails = 1

// SiftOrder selects the order Sifting visits nodes in at the start of
// each pass.
type SiftOrder int

const (
	// SiftByDegree visits nodes in ascending-degree order (the only
	// order the original implementation supports).
	SiftByDegree SiftOrder = iota
	// SiftByLayer visits nodes in layer, then position, order.
	SiftByLayer
	// SiftRandom visits nodes in a freshly shuffled order every pass.
	SiftRandom
)

// masterNodeList returns every node in the graph ordered according to
// order, the order sifting visits nodes in.
func masterNodeList(g *graph.Graph, order SiftOrder, rng *rand.Rand) []graph.NodeID {
	nodes := make([]graph.NodeID, g.NumNodes())
	for i := range nodes {
		nodes[i] = graph.NodeID(i)
	}
	switch order {
	case SiftByLayer:
		// already in (layer, position) order: nodes are appended to
		// g.Nodes in the order AddNode was called, which callers
		// conventionally do layer by layer.
	case SiftRandom:
		rng.Shuffle(len(nodes), func(i, j int) { nodes[i], nodes[j] = nodes[j], nodes[i] })
	default:
		if rng != nil {
			rng.Shuffle(len(nodes), func(i, j int) { nodes[i], nodes[j] = nodes[j], nodes[i] })
		}
		sortByDegreeStable(g, nodes)
	}
	return nodes
}

// sortByDegreeStable sorts nodes in place by ascending degree, keeping
// the relative order of nodes with equal degree - which is what lets a
// shuffle performed before the sort actually randomize tie order.
func sortByDegreeStable(g *graph.Graph, nodes []graph.NodeID) {
	slices.SortStableFunc(nodes, func(a, b graph.NodeID) int {
		return g.Node(a).Degree() - g.Node(b).Degree()
	})
}

// siftDecreasing sifts every node in nodes from last to first and
// reports whether the pass improved on initialCrossings.
func siftDecreasing(g *graph.Graph, nodes []graph.NodeID, initialCrossings int, c Controller) bool {
	for i := len(nodes) - 1; i >= 0; i-- {
		g.Sift(nodes[i])
		c.Trace(g.Node(nodes[i]).Layer, "sift_decreasing")
		if c.EndOfIteration() {
			break
		}
	}
	return g.NumberOfCrossings() < initialCrossings
}

// siftIncreasing is the first-to-last mirror of siftDecreasing.
func siftIncreasing(g *graph.Graph, nodes []graph.NodeID, initialCrossings int, c Controller) bool {
	for i := 0; i < len(nodes); i++ {
		g.Sift(nodes[i])
		c.Trace(g.Node(nodes[i]).Layer, "sift_increasing")
		if c.EndOfIteration() {
			break
		}
	}
	return g.NumberOfCrossings() < initialCrossings
}

// Sifting repeatedly sifts every node of the graph, alternating
// decreasing and increasing degree order depending on whether the
// previous pass improved the crossing count, until standard termination
// tolerates maxSiftingFails consecutive failures or the controller
// otherwise decides to stop. When randomizeOrder is true, rng reshuffles
// ties within the degree order before every pass.
func Sifting(g *graph.Graph, order SiftOrder, randomizeOrder bool, rng *rand.Rand, c Controller) {
	c.Trace(-1, "*** start sifting")
	nodes := masterNodeList(g, order, rng)
	failCount := 0
	reshuffle := func() {
		if randomizeOrder {
			nodes = masterNodeList(g, order, rng)
		}
	}
	for (c.StandardTermination() && failCount < maxSiftingFails) || !c.ShouldStop() {
		crossingsBefore := g.NumberOfCrossings()
		reshuffle()
		ok := siftDecreasing(g, nodes, crossingsBefore, c)
		c.Trace(-1, "--- end of sifting pass")
		if !ok {
			failCount++
			reshuffle()
			ok = siftIncreasing(g, nodes, crossingsBefore, c)
			if c.EndOfIteration() {
				return
			}
		} else {
			reshuffle()
			ok = siftDecreasing(g, nodes, crossingsBefore, c)
			if c.EndOfIteration() {
				return
			}
		}
		c.Trace(-1, "--- end of sifting pass")
		if !ok {
			failCount++
		} else {
			failCount = 0
		}
	}
}
