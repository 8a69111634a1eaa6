package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wrenfield/layercross/graph"
)

// ReadOrd parses a ".ord" file's "LAYER { n1 n2 ... } # comment" blocks
// and combines them with dot's node/edge lists to build a fully laid
// out graph.Graph: every node named in dot must appear in exactly one
// layer block, layer numbers must be consecutive starting at 0, and
// the graph's name is taken from the first comment's last
// whitespace-separated token when there is one, replacing dot's name;
// otherwise dot's name is kept.
func ReadOrd(r io.Reader, dot *DotGraph) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)

	var tokens []string
	name := dot.Name
	nameFromComment := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		body, comment := splitOrdComment(line)
		if !nameFromComment && comment != "" {
			if fields := strings.Fields(comment); len(fields) > 0 {
				name = fields[len(fields)-1]
				nameFromComment = true
			}
		}
		tokens = append(tokens, strings.Fields(body)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformat: scanning ord input: %w", err)
	}

	type layerBlock struct {
		number int
		names  []string
	}
	var blocks []layerBlock
	for i := 0; i < len(tokens); {
		header := strings.TrimPrefix(tokens[i], "L")
		number, err := strconv.Atoi(header)
		if err != nil {
			return nil, fmt.Errorf("ioformat: expected a layer number, got %q", tokens[i])
		}
		i++
		if i >= len(tokens) || tokens[i] != "{" {
			return nil, fmt.Errorf("ioformat: expected \"{\" after layer %d", number)
		}
		i++
		var names []string
		for i < len(tokens) && tokens[i] != "}" {
			names = append(names, tokens[i])
			i++
		}
		if i >= len(tokens) {
			return nil, fmt.Errorf("ioformat: unterminated layer %d block, missing \"}\"", number)
		}
		i++ // consume "}"
		blocks = append(blocks, layerBlock{number: number, names: names})
	}

	for i, b := range blocks {
		if b.number != i {
			return nil, fmt.Errorf("ioformat: ord layer numbers must be consecutive starting at 0, got %d at position %d", b.number, i)
		}
	}

	g := graph.NewGraph(name, len(blocks))
	ids := make(map[string]graph.NodeID, len(dot.Nodes))
	for _, b := range blocks {
		for _, n := range b.names {
			if _, exists := ids[n]; exists {
				return nil, fmt.Errorf("ioformat: node %q assigned a layer more than once", n)
			}
			ids[n] = g.AddNode(n, b.number)
		}
	}
	for _, n := range dot.Nodes {
		if _, ok := ids[n]; !ok {
			return nil, fmt.Errorf("ioformat: node %q appears in the dot input but not in any ord layer block", n)
		}
	}

	for _, e := range dot.Edges {
		upID, ok := ids[e.Up]
		if !ok {
			return nil, fmt.Errorf("ioformat: edge references unknown node %q", e.Up)
		}
		downID, ok := ids[e.Down]
		if !ok {
			return nil, fmt.Errorf("ioformat: edge references unknown node %q", e.Down)
		}
		if _, err := g.AddEdge(upID, downID); err != nil {
			return nil, fmt.Errorf("ioformat: %w", err)
		}
	}
	return g, nil
}

func splitOrdComment(line string) (body, comment string) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i], strings.TrimSpace(line[i+1:])
	}
	return line, ""
}

// WriteOrd emits a ".ord" snapshot of g: a heading comment naming the
// graph, then one "L { n1 n2 ... }" block per layer wrapped to roughly
// 75 columns.
func WriteOrd(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "# %s\n", g.Name); err != nil {
		return err
	}
	const wrapColumn = 75
	for layer := 0; layer < g.NumLayers(); layer++ {
		if _, err := fmt.Fprintf(bw, "%d {\n", layer); err != nil {
			return err
		}
		col := 0
		first := true
		for _, id := range g.Layers[layer].Nodes {
			word := g.Node(id).Name
			if !first && col+1+len(word) > wrapColumn {
				if _, err := bw.WriteString("\n"); err != nil {
					return err
				}
				col = 0
				first = true
			}
			if !first {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
				col++
			}
			if _, err := bw.WriteString(word); err != nil {
				return err
			}
			col += len(word)
			first = false
		}
		if _, err := bw.WriteString("\n}\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
