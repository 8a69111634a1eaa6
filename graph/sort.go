package graph

import "golang.org/x/exp/slices"

// LayerSort stably sorts a layer's nodes by ascending Weight and
// rewrites their positions. Equal-weight nodes keep their relative
// order.
func (g *Graph) LayerSort(layer int) {
	nodes := g.Layers[layer].Nodes
	slices.SortStableFunc(nodes, func(a, b NodeID) int {
		return compareFloat(g.Nodes[a].Weight, g.Nodes[b].Weight)
	})
	g.UpdatePositionsForLayer(layer)
}

// LayerSortUnstable sorts a layer's nodes by ascending Weight but, in
// contrast to LayerSort, reverses the relative order of nodes that
// compare equal. It is provided for heuristics that rely on that
// specific tie-breaking behavior rather than on stability.
func (g *Graph) LayerSortUnstable(layer int) {
	nodes := g.Layers[layer].Nodes
	insertionSortReverseTies(nodes, func(a, b NodeID) int {
		return compareFloat(g.Nodes[a].Weight, g.Nodes[b].Weight)
	})
	g.UpdatePositionsForLayer(layer)
}

// insertionSortReverseTies sorts in place using the same comparator
// contract as slices.SortFunc but treats a zero comparison as "less"
// while scanning left, which has the effect of reversing the relative
// order of elements that compare equal. slices.SortFunc does not
// support this directly since it is free to reorder equal elements
// arbitrarily (or not at all, if it recognizes a run as already
// sorted), so the tie behavior is implemented with a direct insertion
// sort instead.
func insertionSortReverseTies[T any](a []T, cmp func(x, y T) int) {
	for i := 1; i < len(a); i++ {
		tmp := a[i]
		j := i - 1
		for j >= 0 && cmp(tmp, a[j]) <= 0 {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = tmp
	}
}

// LayerSortByDegree sorts a layer's nodes by ascending total degree.
// Stability is not required for this sort (it is used only by the
// middle-degree-sort preprocessor), so the faster pattern-defeating
// quicksort is used.
func (g *Graph) LayerSortByDegree(layer int) {
	nodes := g.Layers[layer].Nodes
	slices.SortFunc(nodes, func(a, b NodeID) int {
		return g.Nodes[a].Degree() - g.Nodes[b].Degree()
	})
	g.UpdatePositionsForLayer(layer)
}

// SortEdgesByDownNodePosition stably sorts an edge array by the current
// Position of each edge's DownNode.
func (g *Graph) SortEdgesByDownNodePosition(edges []EdgeID) {
	slices.SortStableFunc(edges, func(a, b EdgeID) int {
		return g.Nodes[g.Edges[a].DownNode].Position - g.Nodes[g.Edges[b].DownNode].Position
	})
}

// SortEdgesByUpNodePosition stably sorts an edge array by the current
// Position of each edge's UpNode.
func (g *Graph) SortEdgesByUpNodePosition(edges []EdgeID) {
	slices.SortStableFunc(edges, func(a, b EdgeID) int {
		return g.Nodes[g.Edges[a].UpNode].Position - g.Nodes[g.Edges[b].UpNode].Position
	})
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
