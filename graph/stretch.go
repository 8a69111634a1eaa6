package graph

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// layerScale is the divisor used to normalize a position into [0,1]
// before computing stretch: |layer|-1 ordinarily, or 2 for a
// single-node layer (a lone node has no meaningful spread to divide
// by, so an arbitrary constant keeps the formula total).
func (g *Graph) layerScale(layer int) float64 {
	size := g.LayerSize(layer)
	if size > 1 {
		return float64(size - 1)
	}
	return 2
}

// Stretch is the normalized positional distance between an edge's two
// endpoints.
func (g *Graph) Stretch(id EdgeID) float64 {
	e := g.Edges[id]
	v := g.Nodes[e.DownNode]
	w := g.Nodes[e.UpNode]
	vScale := g.layerScale(v.Layer)
	wScale := g.layerScale(w.Layer)
	return math.Abs(float64(v.Position)/vScale - float64(w.Position)/wScale)
}

// channelStretches returns the stretch of every edge in channel layer.
func (g *Graph) channelStretches(layer int) []float64 {
	edges := g.channels[layer].edges
	values := make([]float64, len(edges))
	for i, e := range edges {
		values[i] = g.Stretch(e)
	}
	return values
}

// TotalChannelStretch sums the stretch of every edge in channel layer.
func (g *Graph) TotalChannelStretch(layer int) float64 {
	return floats.Sum(g.channelStretches(layer))
}

// TotalStretch sums stretch over every edge in the graph.
func (g *Graph) TotalStretch() float64 {
	total := 0.0
	for layer := 1; layer < g.NumLayers(); layer++ {
		total += g.TotalChannelStretch(layer)
	}
	return total
}

// MaxEdgeStretchInChannel is the greatest stretch among channel layer's
// edges, or 0 if the channel is empty.
func (g *Graph) MaxEdgeStretchInChannel(layer int) float64 {
	values := g.channelStretches(layer)
	if len(values) == 0 {
		return 0
	}
	return floats.Max(values)
}

// MaxEdgeStretch is the greatest stretch over every edge in the graph.
func (g *Graph) MaxEdgeStretch() float64 {
	max := 0.0
	for layer := 1; layer < g.NumLayers(); layer++ {
		if v := g.MaxEdgeStretchInChannel(layer); v > max {
			max = v
		}
	}
	return max
}

// MaxStretchEdge returns the unfixed edge with the greatest stretch, or
// -1 if every edge is fixed.
func (g *Graph) MaxStretchEdge(rng *rand.Rand) EdgeID {
	best := EdgeID(-1)
	bestValue := -1.0
	ties := 0
	for i := range g.Edges {
		if g.Edges[i].Fixed {
			continue
		}
		v := g.Stretch(EdgeID(i))
		if v > bestValue {
			bestValue = v
			best = EdgeID(i)
			ties = 1
			continue
		}
		if rng != nil && v == bestValue {
			ties++
			if rng.Intn(ties) == 0 {
				best = EdgeID(i)
			}
		}
	}
	return best
}
