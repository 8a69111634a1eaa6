package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenfield/layercross/orchestrator"
)

func TestBuildConfigAppliesFlagsOntoDefaults(t *testing.T) {
	f := flags{
		heuristic:    "sifting",
		preprocessor: "dfs",
		postProcess:  true,
		iterations:   10,
		seed:         7,
		pareto:       string(orchestrator.ParetoStretchTotal),
		weightPolicy: "left",
		siftOrder:    "layer",
		mceOption:    "edges",
		objective:    "max",
		capture:      3,
		outputBase:   "out",
		processors:   4,
		workers:      4,
		traceFreq:    5,
		verbose:      true,
		favored:      true,
	}

	cfg, err := buildConfig(f)
	require.NoError(t, err)
	assert.Equal(t, orchestrator.HeuristicSifting, cfg.Heuristic)
	assert.Equal(t, orchestrator.PreprocessorDFS, cfg.Preprocessor)
	assert.True(t, cfg.PostProcessSwaps)
	assert.Equal(t, 10, cfg.MaxIterations)
	assert.True(t, cfg.Randomize)
	assert.Equal(t, int64(7), cfg.RandomSeed)
	assert.Equal(t, orchestrator.ParetoStretchTotal, cfg.Pareto)
	assert.Equal(t, 3, cfg.CaptureIteration)
	assert.Equal(t, "out", cfg.OutputBase)
	assert.True(t, cfg.EmitSnapshots)
	assert.True(t, cfg.Favored)
}

func TestBuildConfigRejectsUnknownFlagValue(t *testing.T) {
	f := flags{heuristic: "bary", weightPolicy: "not_a_policy", pareto: string(orchestrator.ParetoBottleneckTotal), siftOrder: "degree", mceOption: "nodes", objective: "total"}
	_, err := buildConfig(f)
	assert.Error(t, err)
}

func TestBuildConfigRejectsRandomSiftOrderWithoutSeed(t *testing.T) {
	f := flags{
		heuristic: "sifting", siftOrder: "random", weightPolicy: "avg",
		mceOption: "nodes", objective: "total", pareto: string(orchestrator.ParetoBottleneckTotal),
	}
	_, err := buildConfig(f)
	assert.Error(t, err)
}

func TestLoadGraphFromDotAndOrdFiles(t *testing.T) {
	dir := t.TempDir()
	dotPath := filepath.Join(dir, "g.dot")
	ordPath := filepath.Join(dir, "g.ord")
	require.NoError(t, os.WriteFile(dotPath, []byte("digraph sample {\n\tx -> a;\n\ty -> b;\n}\n"), 0o644))
	require.NoError(t, os.WriteFile(ordPath, []byte("0 { a b } # sample\n1 { x y }\n"), 0o644))

	g, err := loadGraph([]string{dotPath, ordPath})
	require.NoError(t, err)
	assert.Equal(t, "sample", g.Name)
	assert.Equal(t, 2, g.NumLayers())
	assert.Equal(t, 4, g.NumNodes())
	assert.Equal(t, 2, g.NumEdges())
}

func TestLoadGraphFromSgfFile(t *testing.T) {
	dir := t.TempDir()
	sgfPath := filepath.Join(dir, "g.sgf")
	content := "c sample\nt sample 4 2 2\nn 0 0 0\nn 1 0 1\nn 2 1 0\nn 3 1 1\ne 2 0\ne 3 1\n"
	require.NoError(t, os.WriteFile(sgfPath, []byte(content), 0o644))

	g, err := loadGraph([]string{sgfPath})
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumNodes())
	assert.Equal(t, 2, g.NumEdges())
	assert.Equal(t, 2, g.NumLayers())
}

func TestLoadGraphRejectsMissingFile(t *testing.T) {
	_, err := loadGraph([]string{filepath.Join(t.TempDir(), "missing.sgf")})
	assert.Error(t, err)
}
