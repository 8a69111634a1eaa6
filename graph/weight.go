package graph

import "gonum.org/v1/gonum/stat"

// SentinelPolicy controls how a node with no incident edges in the
// requested orientation gets a weight once every node on the layer has
// been visited. It corresponds to the adjust_weights setting of the
// barycenter and median heuristics.
type SentinelPolicy int

const (
	// SentinelNone gives a missing node weight -1, which sorts it ahead
	// of every node with a real (non-negative) weight. A node with no
	// incident edges at all gets weight 0 under every policy.
	SentinelNone SentinelPolicy = iota
	// SentinelLeft assigns a missing node its left neighbor's resolved
	// weight, or 0 if it is leftmost.
	SentinelLeft
	// SentinelAvg assigns a missing node the average of its two
	// neighbors' resolved weights, or whichever neighbor has one if
	// only one does, or 0 if neither does.
	SentinelAvg
)

// weightSample is the sum-type result of sampling a node's neighbor
// positions in one orientation: either an empty sample (no incident
// edges in that direction) or a concrete sum/count pair a mean can be
// computed from. This replaces the literal -1.0 sentinel value used by
// the heuristic this package is modeled on with a value that cannot be
// mistaken for a legitimate weight.
type weightSample struct {
	sum   float64
	count int
}

func (s weightSample) hasAny() bool { return s.count > 0 }

func (s weightSample) mean() float64 {
	if s.count == 0 {
		return 0
	}
	return s.sum / float64(s.count)
}

func sampleDown(g *Graph, id NodeID) weightSample {
	n := &g.Nodes[id]
	if len(n.DownEdges) == 0 {
		return weightSample{}
	}
	positions := make([]float64, len(n.DownEdges))
	for i, e := range n.DownEdges {
		positions[i] = float64(g.Nodes[g.Edges[e].DownNode].Position)
	}
	return weightSample{sum: stat.Mean(positions, nil) * float64(len(positions)), count: len(positions)}
}

func sampleUp(g *Graph, id NodeID) weightSample {
	n := &g.Nodes[id]
	if len(n.UpEdges) == 0 {
		return weightSample{}
	}
	positions := make([]float64, len(n.UpEdges))
	for i, e := range n.UpEdges {
		positions[i] = float64(g.Nodes[g.Edges[e].UpNode].Position)
	}
	return weightSample{sum: stat.Mean(positions, nil) * float64(len(positions)), count: len(positions)}
}

// nodeSample combines the samples relevant to orientation into one,
// matching node_weight's accumulation of total_degree/total_of_positions
// across whichever directions the orientation selects.
func nodeSample(g *Graph, id NodeID, orientation Orientation) weightSample {
	var combined weightSample
	if orientation != Upward {
		s := sampleDown(g, id)
		combined.sum += s.sum
		combined.count += s.count
	}
	if orientation != Downward {
		s := sampleUp(g, id)
		combined.sum += s.sum
		combined.count += s.count
	}
	return combined
}

// BarycenterWeights assigns every node on layer a weight equal to the
// average position of its neighbors in the given orientation. balanced
// requests the BOTH-orientation variant that averages the downward and
// upward means separately rather than pooling every incident edge into
// one mean; it only applies when orientation is Both. Nodes with no
// incident edges in the requested orientation are left as a pending
// sentinel and resolved by policy once every node on the layer has been
// sampled, mirroring adjust_weights_left/adjust_weights_avg.
func (g *Graph) BarycenterWeights(layer int, orientation Orientation, balanced bool, policy SentinelPolicy, parallel bool) {
	nodes := g.Layers[layer].Nodes
	missing := make([]bool, len(nodes))
	for i, id := range nodes {
		n := &g.Nodes[id]
		if orientation == Both && balanced {
			down := sampleDown(g, id)
			up := sampleUp(g, id)
			n.Weight = (down.mean() + up.mean()) / 2
			continue
		}
		sample := nodeSample(g, id, orientation)
		switch {
		case sample.hasAny():
			n.Weight = sample.mean()
		case n.Degree() == 0:
			n.Weight = 0
		case policy == SentinelNone:
			n.Weight = -1
		default:
			missing[i] = true
		}
	}
	resolveSentinels(g, layer, missing, policy, parallel)
}

// MedianWeights assigns every node on layer a weight equal to the
// median position (lower of the two middle elements, when the degree is
// even) of its neighbors in the given orientation, or the average of
// the upward and downward medians when orientation is Both.
func (g *Graph) MedianWeights(layer int, orientation Orientation, policy SentinelPolicy) {
	nodes := g.Layers[layer].Nodes
	missing := make([]bool, len(nodes))
	for i, id := range nodes {
		n := &g.Nodes[id]
		if orientation == Both {
			up, upOK := g.upperMedian(id)
			down, downOK := g.lowerMedian(id)
			if !upOK {
				up = 0
			}
			if !downOK {
				down = 0
			}
			n.Weight = (up + down) / 2
			continue
		}
		var value float64
		var ok bool
		if orientation == Upward {
			value, ok = g.upperMedian(id)
		} else {
			value, ok = g.lowerMedian(id)
		}
		if ok {
			n.Weight = value
		} else {
			missing[i] = true
		}
	}
	resolveSentinels(g, layer, missing, policy, false)
}

// upperMedian returns the position of the node's lower-middle upward
// neighbor, sorted by that neighbor's current position.
func (g *Graph) upperMedian(id NodeID) (float64, bool) {
	n := &g.Nodes[id]
	if len(n.UpEdges) == 0 {
		return 0, false
	}
	g.SortEdgesByUpNodePosition(n.UpEdges)
	mid := n.UpEdges[(len(n.UpEdges)-1)/2]
	return float64(g.Nodes[g.Edges[mid].UpNode].Position), true
}

// lowerMedian is the downward-neighbor mirror of upperMedian.
func (g *Graph) lowerMedian(id NodeID) (float64, bool) {
	n := &g.Nodes[id]
	if len(n.DownEdges) == 0 {
		return 0, false
	}
	g.SortEdgesByDownNodePosition(n.DownEdges)
	mid := n.DownEdges[(len(n.DownEdges)-1)/2]
	return float64(g.Nodes[g.Edges[mid].DownNode].Position), true
}

// resolveSentinels fills in the weight of every node flagged missing,
// according to policy. When snapshotParallel is true and more than one
// worker may have been used to compute the layer's samples (the
// barycenter sweep's parallel variants), the averaging pass reads a
// snapshot of weights taken before any adjustment so that one node's
// resolved weight never leaks into its neighbor's average within the
// same pass - matching adjust_weights_avg's temp_weights behavior.
// Median's simpler, always-sequential adjustment (resolveSentinels with
// snapshotParallel=false) lets a left neighbor's freshly resolved weight
// flow rightward, matching median.c's adjust_weights_avg.
func resolveSentinels(g *Graph, layer int, missing []bool, policy SentinelPolicy, snapshotParallel bool) {
	nodes := g.Layers[layer].Nodes
	if policy == SentinelNone {
		for i, id := range nodes {
			if !missing[i] {
				continue
			}
			if g.Nodes[id].Degree() == 0 {
				g.Nodes[id].Weight = 0
			} else {
				g.Nodes[id].Weight = -1
			}
		}
		return
	}
	if policy == SentinelLeft {
		for i, id := range nodes {
			if !missing[i] {
				continue
			}
			if i == 0 {
				g.Nodes[id].Weight = 0
			} else {
				g.Nodes[id].Weight = g.Nodes[nodes[i-1]].Weight
			}
		}
		return
	}

	// SentinelAvg
	var snapshot []float64
	if snapshotParallel {
		snapshot = make([]float64, len(nodes))
		for i, id := range nodes {
			snapshot[i] = g.Nodes[id].Weight
		}
	}
	weightAt := func(i int) float64 {
		if snapshotParallel {
			return snapshot[i]
		}
		return g.Nodes[nodes[i]].Weight
	}
	// resolved tracks, for the sequential (non-parallel) sweep, whether
	// each node currently holds a genuine weight - either because it was
	// never missing, or because an earlier iteration of this same
	// left-to-right pass has already resolved it. This lets a freshly
	// resolved left neighbor's weight cascade into the next sentinel's
	// average, matching adjust_weights_avg's live read of
	// nodes[i-1]->weight. The parallel snapshot path deliberately does
	// not cascade: every sentinel there is resolved from the pre-pass
	// snapshot in isolation.
	resolved := make([]bool, len(nodes))
	for i := range nodes {
		resolved[i] = !missing[i]
	}
	for i, id := range nodes {
		if !missing[i] {
			continue
		}
		var haveLeft, haveRight bool
		if snapshotParallel {
			haveLeft = i > 0 && !missing[i-1]
			haveRight = i < len(nodes)-1 && !missing[i+1]
		} else {
			haveLeft = i > 0 && resolved[i-1]
			haveRight = i < len(nodes)-1 && !missing[i+1]
		}
		switch {
		case haveLeft && haveRight:
			g.Nodes[id].Weight = (weightAt(i-1) + weightAt(i+1)) / 2
		case haveLeft:
			g.Nodes[id].Weight = weightAt(i - 1)
		case haveRight:
			g.Nodes[id].Weight = weightAt(i + 1)
		default:
			g.Nodes[id].Weight = 0
		}
		resolved[i] = true
	}
}
