package heuristic

import "github.com/wrenfield/layercross/graph"

// MedianUpSweep repeats the median heuristic moving upward from
// startingLayer to the top layer, weighing each layer by its downward
// neighbors. It returns true if the controller signaled the run should
// stop.
func MedianUpSweep(g *graph.Graph, startingLayer int, policy graph.SentinelPolicy, c Controller) bool {
	for layer := startingLayer; layer < g.NumLayers(); layer++ {
		g.MedianWeights(layer, graph.Downward, policy)
		g.LayerSort(layer)
		g.UpdateCrossingsForLayer(layer)
		c.Trace(layer, "median upsweep")
		if c.EndOfIteration() {
			return true
		}
	}
	return false
}

// MedianDownSweep is the downward mirror of MedianUpSweep.
func MedianDownSweep(g *graph.Graph, startingLayer int, policy graph.SentinelPolicy, c Controller) bool {
	for layer := startingLayer; layer >= 0; layer-- {
		g.MedianWeights(layer, graph.Upward, policy)
		g.LayerSort(layer)
		g.UpdateCrossingsForLayer(layer)
		c.Trace(layer, "median downsweep")
		if c.EndOfIteration() {
			return true
		}
	}
	return false
}

// BarycenterUpSweep is the barycenter analogue of MedianUpSweep.
// balanced and parallel are forwarded to graph.BarycenterWeights.
func BarycenterUpSweep(g *graph.Graph, startingLayer int, balanced bool, policy graph.SentinelPolicy, parallel bool, c Controller) bool {
	for layer := startingLayer; layer < g.NumLayers(); layer++ {
		g.BarycenterWeights(layer, graph.Downward, balanced, policy, parallel)
		g.LayerSort(layer)
		g.UpdateCrossingsForLayer(layer)
		c.Trace(layer, "barycenter upsweep")
		if c.EndOfIteration() {
			return true
		}
	}
	return false
}

// BarycenterDownSweep is the downward mirror of BarycenterUpSweep.
func BarycenterDownSweep(g *graph.Graph, startingLayer int, balanced bool, policy graph.SentinelPolicy, parallel bool, c Controller) bool {
	for layer := startingLayer; layer >= 0; layer-- {
		g.BarycenterWeights(layer, graph.Upward, balanced, policy, parallel)
		g.LayerSort(layer)
		g.UpdateCrossingsForLayer(layer)
		c.Trace(layer, "barycenter downsweep")
		if c.EndOfIteration() {
			return true
		}
	}
	return false
}
