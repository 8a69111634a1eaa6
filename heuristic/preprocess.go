package heuristic

import (
	"golang.org/x/exp/slices"

	"github.com/wrenfield/layercross/graph"
)

// BreadthFirstSearch is a placeholder preprocessor retained for
// compatibility with the initial-order flag space; it performs no
// reordering. A real breadth-first initial order was never implemented
// upstream either.
func BreadthFirstSearch(c Controller) {
	c.Trace(-1, "bfs preprocessor not implemented, leaving input order unchanged")
}

// DepthFirstSearch assigns every node its depth-first preorder number
// (visiting one connected component per unvisited node, scanning layers
// from layer 0 upward and, within a layer, left to right; a visited node
// recurses into its upper neighbors before its lower ones) and sorts
// every layer by that weight.
func DepthFirstSearch(g *graph.Graph) {
	assignDFSWeights(g)
	for layer := 0; layer < g.NumLayers(); layer++ {
		g.LayerSort(layer)
	}
}

func assignDFSWeights(g *graph.Graph) {
	for i := range g.Nodes {
		g.Nodes[i].Weight = -1
	}
	preorder := 0
	var visit func(id graph.NodeID)
	visit = func(id graph.NodeID) {
		n := g.Node(id)
		n.Weight = float64(preorder)
		preorder++
		for i := len(n.UpEdges) - 1; i >= 0; i-- {
			adjacent := g.Edge(n.UpEdges[i]).UpNode
			if g.Node(adjacent).Weight == -1 {
				visit(adjacent)
			}
		}
		for _, e := range n.DownEdges {
			adjacent := g.Edge(e).DownNode
			if g.Node(adjacent).Weight == -1 {
				visit(adjacent)
			}
		}
	}
	for layer := 0; layer < g.NumLayers(); layer++ {
		for _, id := range g.Layers[layer].Nodes {
			if g.Node(id).Weight == -1 {
				visit(id)
			}
		}
	}
}

// MiddleDegreeSort sorts every layer by ascending degree, then reweighs
// it so that the last node of that sort (the one of greatest degree)
// ends up in the middle position, the next-to-last alternately to its
// left or right, and so on outward, then sorts the layer again by that
// weight.
func MiddleDegreeSort(g *graph.Graph) {
	for layer := 0; layer < g.NumLayers(); layer++ {
		g.LayerSortByDegree(layer)
		weightFirstToMiddle(g, layer)
		layerQuicksort(g, layer)
	}
}

func weightFirstToMiddle(g *graph.Graph, layer int) {
	nodes := g.Layers[layer].Nodes
	n := len(nodes)
	for position, id := range nodes {
		positionFromLast := n - position - 1
		if positionFromLast%2 == 0 {
			g.Node(id).Weight = float64(n/2 - positionFromLast)
		} else {
			g.Node(id).Weight = float64(n/2 + positionFromLast)
		}
	}
}

// layerQuicksort sorts a layer by ascending weight without regard to
// tie stability, the same contract as graph.LayerSortByDegree but keyed
// on Weight instead of Degree.
func layerQuicksort(g *graph.Graph, layer int) {
	nodes := g.Layers[layer].Nodes
	slices.SortFunc(nodes, func(a, b graph.NodeID) int {
		wa, wb := g.Node(a).Weight, g.Node(b).Weight
		switch {
		case wa < wb:
			return -1
		case wa > wb:
			return 1
		default:
			return 0
		}
	})
	g.UpdatePositionsForLayer(layer)
}
