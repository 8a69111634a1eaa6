package graph

// NodeCrossings counts the crossings that would arise among the
// incident edges of a and b, in that left-to-right order, if they were
// adjacent on their shared layer. Both nodes must be on the same layer.
func (g *Graph) NodeCrossings(a, b NodeID) int {
	total := 0
	layer := g.Nodes[a].Layer
	if layer < g.NumLayers()-1 {
		edges := g.combinedEdges(g.Nodes[a].UpEdges, g.Nodes[b].UpEdges, true)
		total += g.CountInversionsUp(edges, 1)
	}
	if layer > 0 {
		edges := g.combinedEdges(g.Nodes[a].DownEdges, g.Nodes[b].DownEdges, false)
		total += g.CountInversionsDown(edges, 1)
	}
	return total
}

// changeCrossings applies diff to the crossing counters for the
// inversions that arise when left's incident edges are followed by
// right's, on their shared layer.
func (g *Graph) changeCrossings(left, right NodeID, diff int) {
	layer := g.Nodes[left].Layer
	if layer < g.NumLayers()-1 {
		edges := g.combinedEdges(g.Nodes[left].UpEdges, g.Nodes[right].UpEdges, true)
		g.CountInversionsUp(edges, diff)
	}
	if layer > 0 {
		edges := g.combinedEdges(g.Nodes[left].DownEdges, g.Nodes[right].DownEdges, false)
		g.CountInversionsDown(edges, diff)
	}
}

// combinedEdges sorts each node's edge set by the appropriate endpoint
// position and concatenates first then second, which is the layout
// count_inversions_{up,down} needs to treat "first comes before second"
// as the baseline order.
func (g *Graph) combinedEdges(first, second []EdgeID, up bool) []EdgeID {
	if up {
		g.SortEdgesByUpNodePosition(first)
		g.SortEdgesByUpNodePosition(second)
	} else {
		g.SortEdgesByDownNodePosition(first)
		g.SortEdgesByDownNodePosition(second)
	}
	combined := make([]EdgeID, 0, len(first)+len(second))
	combined = append(combined, first...)
	combined = append(combined, second...)
	return combined
}

// edgeCrossingsForNode is the greatest crossing count among node's
// incident edges.
func (g *Graph) edgeCrossingsForNode(id NodeID) int {
	n := &g.Nodes[id]
	max := 0
	for _, e := range n.UpEdges {
		if c := g.Edges[e].Crossings; c > max {
			max = c
		}
	}
	for _, e := range n.DownEdges {
		if c := g.Edges[e].Crossings; c > max {
			max = c
		}
	}
	return max
}

// edgeCrossingsAfterSwap swaps left and right's positional contribution
// to the crossing counters (as if left and right, adjacent on their
// layer, traded places) and returns the greater of the two nodes'
// resulting max-edge-crossing counts.
func (g *Graph) edgeCrossingsAfterSwap(left, right NodeID) int {
	g.changeCrossings(left, right, -1)
	g.changeCrossings(right, left, 1)
	l := g.edgeCrossingsForNode(left)
	r := g.edgeCrossingsForNode(right)
	if l > r {
		return l
	}
	return r
}

// reposition moves node to sit immediately after the node currently at
// afterPosition within layer, shifting the nodes in between.
// afterPosition == -1 means "before everything".
func (g *Graph) reposition(layer int, node NodeID, afterPosition int) {
	nodes := g.Layers[layer].Nodes
	pos := g.Nodes[node].Position
	i := pos
	switch {
	case afterPosition < pos-1:
		for ; i > afterPosition+1; i-- {
			nodes[i] = nodes[i-1]
			g.Nodes[nodes[i]].Position = i
		}
		nodes[afterPosition+1] = node
		g.Nodes[node].Position = afterPosition + 1
	case afterPosition > pos:
		for ; i < afterPosition; i++ {
			nodes[i] = nodes[i+1]
			g.Nodes[nodes[i]].Position = i
		}
		nodes[afterPosition] = node
		g.Nodes[node].Position = afterPosition
	}
}

// Sift moves node to the position within its layer that minimizes the
// total number of crossings, using the prefix-sum algorithm: for every
// other node y on the layer, diff(y) = crossings(y,node) -
// crossings(node,y); the minimum prefix sum over the diff sequence
// identifies the optimal insertion point. Ties are broken in favor of
// the position furthest from node's current one.
func (g *Graph) Sift(node NodeID) {
	layer := g.Nodes[node].Layer
	nodes := g.Layers[layer].Nodes
	diff := make([]int, len(nodes))
	for i, y := range nodes {
		if y == node {
			continue
		}
		diff[i] = g.NodeCrossings(y, node) - g.NodeCrossings(node, y)
	}

	prefixSum := 0
	minPrefixSum := 0
	minPosition := -1
	maxDistance := 0
	currentPos := g.Nodes[node].Position
	for i := range nodes {
		prefixSum += diff[i]
		distance := abs(i - currentPos)
		if prefixSum < minPrefixSum || (prefixSum == minPrefixSum && distance > maxDistance) {
			minPrefixSum = prefixSum
			minPosition = i
			maxDistance = distance
		}
	}

	g.reposition(layer, node, minPosition)
	g.UpdateCrossingsForLayer(layer)
}

// SiftNodeForEdgeCrossings moves node to the position within its layer
// that minimizes the maximum crossing count among edge's incident
// edges, by sweeping node left then right across the layer and tracking
// the best max-edge-crossing value seen, undoing the left sweep's
// trial swaps before trying the right sweep.
func (g *Graph) SiftNodeForEdgeCrossings(edge EdgeID, node NodeID) {
	layer := g.Nodes[node].Layer
	nodes := g.Layers[layer].Nodes
	layerSize := len(nodes)

	minCount := g.Edges[edge].Crossings
	minPosition := g.Nodes[node].Position
	maxDistance := 0
	startPos := minPosition

	for i := startPos - 1; i >= 0; i-- {
		count := g.edgeCrossingsAfterSwap(nodes[i], node)
		distance := startPos - i
		if count < minCount || (count == minCount && distance > maxDistance) {
			minCount = count
			minPosition = i - 1
			maxDistance = startPos - i + 1
		}
	}
	for i := 0; i < startPos; i++ {
		g.edgeCrossingsAfterSwap(node, nodes[i])
	}
	for i := startPos + 1; i < layerSize; i++ {
		count := g.edgeCrossingsAfterSwap(node, nodes[i])
		distance := abs(startPos - i)
		if count < minCount || (count == minCount && distance > maxDistance) {
			minCount = count
			minPosition = i
			maxDistance = distance
		}
	}

	g.reposition(layer, node, minPosition)
	g.UpdateCrossingsForLayer(layer)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
