package stats

import "github.com/wrenfield/layercross/graph"

// Order is a saved copy of a graph's layer orderings, independent of
// the graph's live state. Capture it with Save and reapply it with
// Restore once a heuristic run finds that an earlier configuration was
// better than the one it ended up with.
type Order struct {
	layers [][]graph.NodeID
}

// NewOrder allocates an Order sized for g and immediately captures its
// current layout.
func NewOrder(g *graph.Graph) *Order {
	o := &Order{layers: make([][]graph.NodeID, g.NumLayers())}
	for i := 0; i < g.NumLayers(); i++ {
		o.layers[i] = make([]graph.NodeID, g.LayerSize(i))
	}
	o.Save(g)
	return o
}

// Save overwrites the snapshot with g's current layer orderings.
func (o *Order) Save(g *graph.Graph) {
	for i := 0; i < g.NumLayers(); i++ {
		copy(o.layers[i], g.Layers[i].Nodes)
	}
}

// Restore writes the snapshot's layer orderings back into g and
// recomputes every derived statistic (positions, crossings, stretch)
// from scratch.
func (o *Order) Restore(g *graph.Graph) {
	for i, nodes := range o.layers {
		g.SetLayerOrder(i, nodes)
	}
	g.UpdateAllCrossings()
}
