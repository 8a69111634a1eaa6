package graph

// updateCrossings applies diff (+1 or -1) to the crossing counters of
// two edges that form an inversion, and to the up/down crossing
// counters of their four (not necessarily distinct) endpoints.
func (g *Graph) updateCrossings(one, two EdgeID, diff int) {
	g.Edges[one].Crossings += diff
	g.Edges[two].Crossings += diff
	upOne := g.Edges[one].UpNode
	upTwo := g.Edges[two].UpNode
	downOne := g.Edges[one].DownNode
	downTwo := g.Edges[two].DownNode
	g.Nodes[upOne].DownCrossings += diff
	g.Nodes[upTwo].DownCrossings += diff
	g.Nodes[downOne].UpCrossings += diff
	g.Nodes[downTwo].UpCrossings += diff
}

// insertAndCountInversionsDown inserts edges[at] into the already-sorted
// prefix edges[:at], ordered by DownNode position, applying diff to
// every pair it passes over, and returns the number of inversions
// resolved.
func (g *Graph) insertAndCountInversionsDown(edges []EdgeID, at int, diff int) int {
	count := 0
	toInsert := edges[at]
	toInsertPos := g.Nodes[g.Edges[toInsert].DownNode].Position
	i := at - 1
	for i >= 0 && g.Nodes[g.Edges[edges[i]].DownNode].Position > toInsertPos {
		count++
		g.updateCrossings(edges[i], toInsert, diff)
		edges[i+1] = edges[i]
		i--
	}
	edges[i+1] = toInsert
	return count
}

// CountInversionsDown insertion-sorts edges by DownNode position,
// applying diff to the crossing counters for every inversion resolved,
// and returns the total number of inversions. edges is assumed to
// already be sorted by UpNode position (the channel-building order);
// the result is the number of crossings among those edges.
func (g *Graph) CountInversionsDown(edges []EdgeID, diff int) int {
	total := 0
	for i := 1; i < len(edges); i++ {
		total += g.insertAndCountInversionsDown(edges, i, diff)
	}
	return total
}

func (g *Graph) insertAndCountInversionsUp(edges []EdgeID, at int, diff int) int {
	count := 0
	toInsert := edges[at]
	toInsertPos := g.Nodes[g.Edges[toInsert].UpNode].Position
	i := at - 1
	for i >= 0 && g.Nodes[g.Edges[edges[i]].UpNode].Position > toInsertPos {
		count++
		g.updateCrossings(edges[i], toInsert, diff)
		edges[i+1] = edges[i]
		i--
	}
	edges[i+1] = toInsert
	return count
}

// CountInversionsUp is the mirror image of CountInversionsDown, keyed
// on UpNode position; edges is assumed sorted by DownNode position on
// entry.
func (g *Graph) CountInversionsUp(edges []EdgeID, diff int) int {
	total := 0
	for i := 1; i < len(edges); i++ {
		total += g.insertAndCountInversionsUp(edges, i, diff)
	}
	return total
}
