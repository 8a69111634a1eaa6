// Package ioformat reads and writes the textual graph formats the
// orchestrator's command-line surface accepts and produces: the
// .dot/.ord pair and the unified .sgf format. It depends only on
// package graph - graph, heuristic, stats, and orchestrator never
// import it, so the core never commits to any one textual
// representation.
package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/wrenfield/layercross/graph"
)

// DotEdge is one "u -> v;" statement, recorded in file order and with
// no layer information - a .dot file alone never carries layers.
type DotEdge struct {
	Up   string
	Down string
}

// DotGraph is the parsed form of a .dot file: its declared name, every
// edge in source order, and every node name encountered (in first-seen
// order). Only edge statements are parsed, so a node that appears in no
// edge is not listed.
type DotGraph struct {
	Name  string
	Edges []DotEdge
	Nodes []string
}

// HasNode reports whether name was seen anywhere in the file.
func (d *DotGraph) HasNode(name string) bool {
	for _, n := range d.Nodes {
		if n == name {
			return true
		}
	}
	return false
}

var dotHeaderPattern = regexp.MustCompile(`^digraph\s+([A-Za-z0-9_]+)\s*\{\s*$`)
var dotEdgePattern = regexp.MustCompile(`^([A-Za-z0-9_]+)\s*->\s*([A-Za-z0-9_]+)\s*;?\s*$`)

// ParseDot reads a "digraph NAME { u -> v; ... }" file, stripping
// "/* ... */" and "// ..." comments, and returns its edges and node
// names in file order.
func ParseDot(r io.Reader) (*DotGraph, error) {
	text, err := stripComments(r)
	if err != nil {
		return nil, fmt.Errorf("ioformat: reading dot input: %w", err)
	}

	g := &DotGraph{}
	seen := make(map[string]bool)
	addNode := func(name string) {
		if !seen[name] {
			seen[name] = true
			g.Nodes = append(g.Nodes, name)
		}
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	headerSeen := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "}" {
			continue
		}
		if !headerSeen {
			m := dotHeaderPattern.FindStringSubmatch(line)
			if m == nil {
				return nil, fmt.Errorf("ioformat: expected \"digraph NAME {\", got %q", line)
			}
			g.Name = m[1]
			headerSeen = true
			continue
		}
		m := dotEdgePattern.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("ioformat: malformed dot statement %q", line)
		}
		up, down := m[1], m[2]
		addNode(up)
		addNode(down)
		g.Edges = append(g.Edges, DotEdge{Up: up, Down: down})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformat: scanning dot input: %w", err)
	}
	if !headerSeen {
		return nil, fmt.Errorf("ioformat: empty dot input, expected \"digraph NAME {\"")
	}
	return g, nil
}

// stripComments removes "/* ... */" block comments (which may span
// lines) and "// ..." line comments from r's contents.
func stripComments(r io.Reader) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s := string(raw)

	var out strings.Builder
	inBlock := false
	for i := 0; i < len(s); i++ {
		if inBlock {
			if i+1 < len(s) && s[i] == '*' && s[i+1] == '/' {
				inBlock = false
				i++
			}
			continue
		}
		if i+1 < len(s) && s[i] == '/' && s[i+1] == '*' {
			inBlock = true
			i++
			continue
		}
		if i+1 < len(s) && s[i] == '/' && s[i+1] == '/' {
			for i < len(s) && s[i] != '\n' {
				i++
			}
			if i < len(s) {
				out.WriteByte('\n')
			}
			continue
		}
		out.WriteByte(s[i])
	}
	return out.String(), nil
}

// WriteDot emits g as a "digraph NAME { u -> v; ... }" file with a
// preamble comment, one edge statement per line in (up, down) pairs
// visited layer by layer from the top.
func WriteDot(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "// %s, %d layers, %d nodes, %d edges\n", g.Name, g.NumLayers(), g.NumNodes(), g.NumEdges()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "digraph %s {\n", g.Name); err != nil {
		return err
	}
	for layer := g.NumLayers() - 1; layer >= 0; layer-- {
		for _, id := range g.Layers[layer].Nodes {
			for _, e := range g.Node(id).DownEdges {
				edge := g.Edge(e)
				if _, err := fmt.Fprintf(bw, "\t%s -> %s;\n", g.Node(edge.UpNode).Name, g.Node(edge.DownNode).Name); err != nil {
					return err
				}
			}
		}
	}
	if _, err := bw.WriteString("}\n"); err != nil {
		return err
	}
	return bw.Flush()
}
