package heuristic

import (
	"fmt"
	"math/rand"

	"github.com/wrenfield/layercross/graph"
)

// Median alternates median up-sweeps (starting from layer 0) and
// down-sweeps (starting from the top layer) until the controller
// decides to stop.
func Median(g *graph.Graph, policy graph.SentinelPolicy, c Controller) {
	for !c.ShouldStop() {
		if MedianUpSweep(g, 0, policy, c) {
			return
		}
		if MedianDownSweep(g, g.NumLayers()-1, policy, c) {
			return
		}
	}
}

// Barycenter alternates barycenter up-sweeps and down-sweeps until the
// controller decides to stop.
func Barycenter(g *graph.Graph, balanced bool, policy graph.SentinelPolicy, c Controller) {
	for !c.ShouldStop() {
		if BarycenterUpSweep(g, 0, balanced, policy, false, c) {
			return
		}
		if BarycenterDownSweep(g, g.NumLayers()-1, balanced, policy, false, c) {
			return
		}
	}
}

// ModifiedBarycenter repeatedly picks the unfixed layer with the most
// crossings, sorts it using both neighboring layers, then sweeps
// outward from it in both directions, until every layer has been fixed
// in a pass or the controller decides to stop.
func ModifiedBarycenter(g *graph.Graph, policy graph.SentinelPolicy, rng *rand.Rand, c Controller) {
	c.Trace(-1, "*** start modified barycenter")
	for !c.ShouldStop() {
		g.ClearFixedLayers()
		for {
			layer := g.MaxCrossingsLayer(rng)
			if layer == -1 {
				break
			}
			g.FixLayer(layer)
			g.BarycenterWeights(layer, graph.Both, false, policy, false)
			g.LayerSort(layer)
			g.UpdateCrossingsForLayer(layer)
			c.Trace(layer, "max crossings layer")
			if c.EndOfIteration() {
				return
			}
			if BarycenterUpSweep(g, layer+1, false, policy, false, c) {
				return
			}
			if BarycenterDownSweep(g, layer-1, false, policy, false, c) {
				return
			}
			c.Trace(-1, "--- mod_bary end of pass")
		}
		c.Trace(-1, "=== mod_bary, all layers fixed")
	}
}

// StaticBarycenter computes BOTH-orientation barycenter weights for
// every layer from the order at the start of the pass (so weight
// computation for any one layer never observes another layer's sort
// result from the same pass), then sorts every layer. This is the
// heuristic whose weight computation is safe to parallelize across
// layers, since it reads only the positions fixed at the start of the
// pass; any processors value other than 1 (0 included) delays the
// synchronization point (EndOfIteration) to once per pass instead of
// once per layer.
func StaticBarycenter(g *graph.Graph, policy graph.SentinelPolicy, processors int, c Controller) {
	c.Trace(-1, "*** start static barycenter")
	for !c.ShouldStop() {
		runParallel(processors, g.NumLayers(), func(layer int) {
			g.BarycenterWeights(layer, graph.Both, false, policy, processors != 1)
		})
		for layer := 0; layer < g.NumLayers(); layer++ {
			g.LayerSort(layer)
			g.UpdateCrossingsForLayer(layer)
			c.Trace(layer, "static barycenter")
			if processors == 1 && c.EndOfIteration() {
				return
			}
		}
		if processors != 1 && c.EndOfIteration() {
			return
		}
	}
}

// AltBarycenter (odd/even barycenter) alternates sorting the
// odd-numbered and even-numbered layers, weighing each from both
// neighbors.
func AltBarycenter(g *graph.Graph, policy graph.SentinelPolicy, processors int, c Controller) {
	c.Trace(-1, "*** start odd/even barycenter")
	for !c.ShouldStop() {
		for layer := 1; layer < g.NumLayers(); layer += 2 {
			g.BarycenterWeights(layer, graph.Both, false, policy, processors != 1)
			g.LayerSort(layer)
			g.UpdateCrossingsForLayer(layer)
			c.Trace(layer, "odd layers")
			if processors == 1 && c.EndOfIteration() {
				return
			}
		}
		c.Trace(-1, "--- alt barycenter end of iteration")
		if processors != 1 && c.EndOfIteration() {
			return
		}
		for layer := 0; layer < g.NumLayers(); layer += 2 {
			g.BarycenterWeights(layer, graph.Both, false, policy, processors != 1)
			g.LayerSort(layer)
			g.UpdateCrossingsForLayer(layer)
			c.Trace(layer, "even layers")
			if processors == 1 && c.EndOfIteration() {
				return
			}
		}
		c.Trace(-1, "--- alt barycenter end of iteration")
		if processors != 1 && c.EndOfIteration() {
			return
		}
	}
}

// UpDownBarycenter alternates odd/even layer selection every pass and
// flips the sort orientation (downward/upward) every full cycle through
// every layer.
func UpDownBarycenter(g *graph.Graph, policy graph.SentinelPolicy, processors int, c Controller) {
	c.Trace(-1, "*** start up/down barycenter")
	direction := graph.Downward
	for !c.ShouldStop() {
		startLayer := 1
		for i := 0; i < g.NumLayers(); i++ {
			for layer := startLayer; layer < g.NumLayers(); layer += 2 {
				g.BarycenterWeights(layer, direction, false, policy, processors != 1)
				g.LayerSort(layer)
				g.UpdateCrossingsForLayer(layer)
				c.Trace(layer, fmt.Sprintf("odd/even = %d, direction = %s", startLayer, direction))
				if processors == 1 && c.EndOfIteration() {
					return
				}
			}
			c.Trace(-1, "--- up/down barycenter, end of iteration")
			if processors != 1 && c.EndOfIteration() {
				return
			}
			startLayer = 1 - startLayer
		}
		if direction == graph.Downward {
			direction = graph.Upward
		} else {
			direction = graph.Downward
		}
	}
}

// RotatingBarycenter alternates odd/even layer selection every pass and
// rotates the sort orientation through downward, upward, and both.
func RotatingBarycenter(g *graph.Graph, policy graph.SentinelPolicy, processors int, c Controller) {
	c.Trace(-1, "*** start rotating barycenter")
	direction := graph.Both
	startLayer := 1
	for !c.ShouldStop() {
		for layer := startLayer; layer < g.NumLayers(); layer += 2 {
			g.BarycenterWeights(layer, direction, false, policy, processors != 1)
			g.LayerSort(layer)
			g.UpdateCrossingsForLayer(layer)
			c.Trace(layer, fmt.Sprintf("odd/even = %d, direction = %s", startLayer, direction))
			if processors == 1 && c.EndOfIteration() {
				return
			}
		}
		c.Trace(-1, "--- rotating barycenter, end of iteration")
		if processors != 1 && c.EndOfIteration() {
			return
		}
		startLayer = 1 - startLayer
		switch direction {
		case graph.Downward:
			direction = graph.Upward
		case graph.Upward:
			direction = graph.Both
		default:
			direction = graph.Downward
		}
	}
}

// SlabBarycenter divides the layers into slabs of roughly
// layers/processors size and runs a staggered full barycenter sweep in
// each, simulating how the algorithm would behave split across
// multiple workers even when run with a single one.
func SlabBarycenter(g *graph.Graph, policy graph.SentinelPolicy, processors int, c Controller) {
	slabSize := g.NumLayers()
	if processors > 1 {
		slabSize /= processors
	}
	if slabSize < 2 {
		slabSize = 2
	}
	c.Trace(-1, fmt.Sprintf("*** start slab barycenter, slab size = %d", slabSize))
	for !c.ShouldStop() {
		for offset := 1; offset < g.NumLayers(); offset++ {
			if slabBaryIteration(g, offset, slabSize, graph.Downward, policy, processors, c) {
				return
			}
		}
		for offset := slabSize - 1; offset > 0; offset-- {
			if slabBaryIteration(g, offset, slabSize, graph.Upward, policy, processors, c) {
				return
			}
		}
	}
}

func slabBaryIteration(g *graph.Graph, offset, slabSize int, direction graph.Orientation, policy graph.SentinelPolicy, processors int, c Controller) bool {
	for slabBottom := 0; slabBottom < g.NumLayers()-1; slabBottom += slabSize {
		layer := (slabBottom + offset) % g.NumLayers()
		if (direction == graph.Downward && layer == 0) || (direction == graph.Upward && layer == g.NumLayers()-1) {
			continue
		}
		g.BarycenterWeights(layer, direction, false, policy, processors != 1)
		g.LayerSort(layer)
		g.UpdateCrossingsForLayer(layer)
		c.Trace(layer, fmt.Sprintf("offset = %d, slab_bottom = %d, direction = %s", offset, slabBottom, direction))
		if processors == 1 && c.EndOfIteration() {
			return true
		}
	}
	c.Trace(-1, fmt.Sprintf("--- slab barycenter, end of iteration, offset = %d", offset))
	return processors != 1 && c.EndOfIteration()
}

// runParallel calls fn(i) for every i in [0,n) using up to processors
// goroutines, and waits for all of them to finish before returning.
// processors <= 1 runs sequentially without spawning anything.
func runParallel(processors, n int, fn func(i int)) {
	if processors <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	sem := make(chan struct{}, processors)
	done := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		i := i
		sem <- struct{}{}
		go func() {
			defer func() { <-sem; done <- struct{}{} }()
			fn(i)
		}()
	}
	for i := 0; i < n; i++ {
		<-done
	}
}
