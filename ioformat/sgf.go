package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/wrenfield/layercross/graph"
)

// ReadSgf parses the unified single-file format: "c ..." comment
// lines, one "t NAME N M L" header giving the graph's name, node
// count, edge count and layer count, N "n ID LAYER POSITION" node
// records, and M "e SRC_ID DST_ID" edge records (SRC_ID is the up
// endpoint, matching the dot reader's "u -> v" convention). Records may
// appear in any relative order: every record is collected before any
// edge is resolved, so an edge may precede the node records it names.
func ReadSgf(r io.Reader) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)

	var name string
	numLayers := -1
	type nodeRecord struct {
		id       int
		layer    int
		position int
	}
	var nodes []nodeRecord
	type edgeRecord struct{ src, dst int }
	var edges []edgeRecord

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "c":
			continue
		case "t":
			if len(fields) != 5 {
				return nil, fmt.Errorf("ioformat: sgf line %d: expected \"t NAME N M L\", got %q", lineNo, line)
			}
			name = fields[1]
			layers, err := strconv.Atoi(fields[4])
			if err != nil {
				return nil, fmt.Errorf("ioformat: sgf line %d: invalid layer count %q: %w", lineNo, fields[4], err)
			}
			numLayers = layers
		case "n":
			if len(fields) != 4 {
				return nil, fmt.Errorf("ioformat: sgf line %d: expected \"n ID LAYER POSITION\", got %q", lineNo, line)
			}
			id, err1 := strconv.Atoi(fields[1])
			layer, err2 := strconv.Atoi(fields[2])
			position, err3 := strconv.Atoi(fields[3])
			if err1 != nil || err2 != nil || err3 != nil {
				return nil, fmt.Errorf("ioformat: sgf line %d: malformed node record %q", lineNo, line)
			}
			nodes = append(nodes, nodeRecord{id: id, layer: layer, position: position})
		case "e":
			if len(fields) != 3 {
				return nil, fmt.Errorf("ioformat: sgf line %d: expected \"e SRC_ID DST_ID\", got %q", lineNo, line)
			}
			src, err1 := strconv.Atoi(fields[1])
			dst, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("ioformat: sgf line %d: malformed edge record %q", lineNo, line)
			}
			edges = append(edges, edgeRecord{src: src, dst: dst})
		default:
			return nil, fmt.Errorf("ioformat: sgf line %d: unknown record type %q", lineNo, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformat: scanning sgf input: %w", err)
	}
	if numLayers < 0 {
		return nil, fmt.Errorf("ioformat: sgf input has no \"t\" header")
	}

	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].layer != nodes[j].layer {
			return nodes[i].layer < nodes[j].layer
		}
		return nodes[i].position < nodes[j].position
	})

	g := graph.NewGraph(name, numLayers)
	ids := make(map[int]graph.NodeID, len(nodes))
	for _, n := range nodes {
		if n.layer < 0 || n.layer >= numLayers {
			return nil, fmt.Errorf("ioformat: sgf node %d has layer %d, outside [0,%d)", n.id, n.layer, numLayers)
		}
		ids[n.id] = g.AddNode(strconv.Itoa(n.id), n.layer)
	}
	for _, e := range edges {
		src, ok := ids[e.src]
		if !ok {
			return nil, fmt.Errorf("ioformat: sgf edge references unknown node %d", e.src)
		}
		dst, ok := ids[e.dst]
		if !ok {
			return nil, fmt.Errorf("ioformat: sgf edge references unknown node %d", e.dst)
		}
		if _, err := g.AddEdge(src, dst); err != nil {
			return nil, fmt.Errorf("ioformat: %w", err)
		}
	}
	return g, nil
}

// WriteSgf emits g in the unified format: a header comment, the "t"
// record, one "n" record per node in id order, and one "e" record per
// edge. Node ids are g's own dense NodeIDs.
func WriteSgf(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "c %s\n", g.Name); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "t %s %d %d %d\n", g.Name, g.NumNodes(), g.NumEdges(), g.NumLayers()); err != nil {
		return err
	}
	for id := 0; id < g.NumNodes(); id++ {
		n := g.Node(graph.NodeID(id))
		if _, err := fmt.Fprintf(bw, "n %d %d %d\n", id, n.Layer, n.Position); err != nil {
			return err
		}
	}
	for id := 0; id < g.NumEdges(); id++ {
		e := g.Edge(graph.EdgeID(id))
		if _, err := fmt.Fprintf(bw, "e %d %d\n", e.UpNode, e.DownNode); err != nil {
			return err
		}
	}
	return bw.Flush()
}
