package heuristic

import "github.com/wrenfield/layercross/graph"

// swapNodes exchanges the nodes at adjacent positions i and i+1 within
// layer and fixes up their Position fields.
func swapNodes(g *graph.Graph, layer, i int) {
	nodes := g.Layers[layer].Nodes
	nodes[i], nodes[i+1] = nodes[i+1], nodes[i]
	g.Node(nodes[i]).Position = i
	g.Node(nodes[i+1]).Position = i + 1
}

// swappingIteration considers every adjacent pair (i, i+1) on every
// other layer, starting from layer oddEven (0 or 1) and stepping by two,
// and swaps whichever pairs reduce the total crossing count. It returns
// the total crossing count after the iteration.
func swappingIteration(g *graph.Graph, crossings, oddEven int, c Controller) int {
	for layer := oddEven; layer < g.NumLayers(); layer += 2 {
		size := g.LayerSize(layer)
		for i := oddEven; i < size-1; i += 2 {
			nodes := g.Layers[layer].Nodes
			before := g.NodeCrossings(nodes[i], nodes[i+1])
			after := g.NodeCrossings(nodes[i+1], nodes[i])
			if diff := before - after; diff > 0 {
				swapNodes(g, layer, i)
				crossings -= diff
			}
		}
		g.UpdateCrossingsForLayer(layer)
		c.Trace(layer, "<-> swapping")
	}
	return crossings
}

// Swapping repeatedly considers every adjacent-node swap on even layers
// then on odd layers, keeping whichever swaps reduce total crossings,
// until a full even/odd cycle fails to improve on the crossing count it
// started with.
func Swapping(g *graph.Graph, c Controller) {
	c.Trace(-1, "*** start swapping ***")
	crossings := g.NumberOfCrossings()
	previousBest := crossings
	improved := true
	for improved {
		crossings = swappingIteration(g, crossings, 0, c)
		if crossings < previousBest {
			improved = true
			previousBest = crossings
		} else {
			improved = false
		}
		if c.EndOfIteration() {
			return
		}

		crossings = swappingIteration(g, crossings, 1, c)
		if crossings < previousBest {
			improved = true
			previousBest = crossings
		}
		c.Trace(-1, "-- end of swapping pass")
		if c.EndOfIteration() {
			return
		}
	}
}
