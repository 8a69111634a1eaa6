package ioformat

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDot = `
// a sample graph
digraph sample {
	x -> a;
	y -> b; // inline comment
	/* block
	   comment */
	x -> b;
}
`

const sampleOrd = `
0 { a b } # sample
1 { x y }
`

func TestParseDotCollectsEdgesAndNodesInOrder(t *testing.T) {
	dot, err := ParseDot(strings.NewReader(sampleDot))
	require.NoError(t, err)
	assert.Equal(t, "sample", dot.Name)
	assert.Equal(t, []string{"x", "a", "y", "b"}, dot.Nodes)
	assert.Equal(t, []DotEdge{{Up: "x", Down: "a"}, {Up: "y", Down: "b"}, {Up: "x", Down: "b"}}, dot.Edges)
}

func TestParseDotRejectsMalformedHeader(t *testing.T) {
	_, err := ParseDot(strings.NewReader("not a digraph\n"))
	assert.Error(t, err)
}

func TestReadOrdBuildsLayeredGraph(t *testing.T) {
	dot, err := ParseDot(strings.NewReader(sampleDot))
	require.NoError(t, err)

	g, err := ReadOrd(strings.NewReader(sampleOrd), dot)
	require.NoError(t, err)

	assert.Equal(t, "sample", g.Name)
	assert.Equal(t, 2, g.NumLayers())
	assert.Equal(t, 4, g.NumNodes())
	assert.Equal(t, 3, g.NumEdges())
	assert.Equal(t, 2, g.LayerSize(0))
	assert.Equal(t, 2, g.LayerSize(1))
}

func TestReadOrdRejectsNonConsecutiveLayers(t *testing.T) {
	dot, err := ParseDot(strings.NewReader(sampleDot))
	require.NoError(t, err)

	badOrd := "0 { a b }\n2 { x y }\n"
	_, err = ReadOrd(strings.NewReader(badOrd), dot)
	assert.Error(t, err)
}

func TestReadOrdRejectsNodeMissingFromDot(t *testing.T) {
	dot, err := ParseDot(strings.NewReader(sampleDot))
	require.NoError(t, err)

	badOrd := "0 { a b }\n1 { x z }\n"
	_, err = ReadOrd(strings.NewReader(badOrd), dot)
	assert.Error(t, err)
}

func TestWriteOrdThenReadOrdRoundTrips(t *testing.T) {
	dot, err := ParseDot(strings.NewReader(sampleDot))
	require.NoError(t, err)
	g, err := ReadOrd(strings.NewReader(sampleOrd), dot)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteOrd(&buf, g))

	g2, err := ReadOrd(strings.NewReader(buf.String()), dot)
	require.NoError(t, err)
	assert.Equal(t, g.Layers[0].Nodes, g2.Layers[0].Nodes)
	assert.Equal(t, g.Layers[1].Nodes, g2.Layers[1].Nodes)
}

func TestWriteDotThenParseDotRoundTrips(t *testing.T) {
	dot, err := ParseDot(strings.NewReader(sampleDot))
	require.NoError(t, err)
	g, err := ReadOrd(strings.NewReader(sampleOrd), dot)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteDot(&buf, g))

	dot2, err := ParseDot(&buf)
	require.NoError(t, err)
	assert.Equal(t, len(dot.Edges), len(dot2.Edges))
}

func TestSgfRoundTrip(t *testing.T) {
	dot, err := ParseDot(strings.NewReader(sampleDot))
	require.NoError(t, err)
	g, err := ReadOrd(strings.NewReader(sampleOrd), dot)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSgf(&buf, g))

	g2, err := ReadSgf(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.NumNodes(), g2.NumNodes())
	assert.Equal(t, g.NumEdges(), g2.NumEdges())
	assert.Equal(t, g.NumLayers(), g2.NumLayers())
}

func TestReadSgfRejectsUnknownRecordType(t *testing.T) {
	_, err := ReadSgf(strings.NewReader("t g 0 0 1\nq nonsense\n"))
	assert.Error(t, err)
}

func TestSnapshotName(t *testing.T) {
	assert.Equal(t, "run-dfs+bary.ord", SnapshotName("run", "dfs", "bary", ""))
	assert.Equal(t, "run-dfs+bary-post.ord", SnapshotName("run", "dfs", "bary", "-post"))
	assert.Equal(t, "run-+sifting_edge.ord", SnapshotName("run", "", "sifting", "_edge"))
}
