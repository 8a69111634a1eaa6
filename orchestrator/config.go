// Package orchestrator wires the graph, heuristic, and stats packages
// into the fixed crossing-minimization pipeline: load, preprocess,
// run the main heuristic, optionally post-process, and emit snapshots.
// It owns every piece of state the original engine kept as module-level
// globals - the iteration counter, the stats trackers, the Pareto
// frontier, randomization, and trace policy - behind one Config/Run
// pair, and is the only package that implements heuristic.Controller.
package orchestrator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/wrenfield/layercross/graph"
	"github.com/wrenfield/layercross/heuristic"
)

// HeuristicName selects the main reordering heuristic (-h).
type HeuristicName string

const (
	HeuristicMedian       HeuristicName = "median"
	HeuristicBary         HeuristicName = "bary"
	HeuristicModBary      HeuristicName = "mod_bary"
	HeuristicStaticBary   HeuristicName = "static_bary"
	HeuristicAltBary      HeuristicName = "alt_bary"
	HeuristicUpDownBary   HeuristicName = "up_down_bary"
	HeuristicRotateBary   HeuristicName = "rotate_bary"
	HeuristicSlabBary     HeuristicName = "slab_bary"
	HeuristicMCN          HeuristicName = "mcn"
	HeuristicMCE          HeuristicName = "mce"
	HeuristicMCES         HeuristicName = "mce_s"
	HeuristicMSE          HeuristicName = "mse"
	HeuristicSifting      HeuristicName = "sifting"
)

// PreprocessorName selects the initial-order preprocessor (-p).
type PreprocessorName string

const (
	PreprocessorNone PreprocessorName = ""
	PreprocessorBFS  PreprocessorName = "bfs"
	PreprocessorDFS  PreprocessorName = "dfs"
	PreprocessorMDS  PreprocessorName = "mds"
)

// ParetoPair selects which two of the four standard objectives the
// Pareto frontier tracks (-P).
type ParetoPair string

const (
	ParetoBottleneckTotal  ParetoPair = "b_t"
	ParetoStretchTotal     ParetoPair = "s_t"
	ParetoBottleneckStretch ParetoPair = "b_s"
)

// WeightPolicyName is the string form of graph.SentinelPolicy accepted
// on the command line (-w).
type WeightPolicyName string

const (
	WeightPolicyNone WeightPolicyName = "none"
	WeightPolicyAvg  WeightPolicyName = "avg"
	WeightPolicyLeft WeightPolicyName = "left"
)

// Config is the immutable set of options a single orchestrator Run is
// configured with - the union of every flag in the CLI surface. The
// zero value is not meaningful; build one with DefaultConfig and
// override fields, or via the CLI's flag binding.
type Config struct {
	Heuristic    HeuristicName
	Preprocessor PreprocessorName

	PostProcessSwaps bool // -z

	MaxIterations       int  // -i; <0 means unset
	MaxRuntime          time.Duration // -r; 0 means unset
	StandardTermination bool // disabled by -i or -r being set

	RandomSeed    int64 // -R
	Randomize     bool  // whether -R gave a non-zero seed

	Pareto ParetoPair // -P

	WeightPolicy graph.SentinelPolicy // -w
	Balanced     bool                 // -b

	SiftOrder     heuristic.SiftOrder // -s
	MCEOption     heuristic.MCEOption // -e
	Objective     heuristic.Objective // -g

	CaptureIteration int // -c; <0 means unset

	OutputBase  string // -o; "" means disabled, "_" means derive from input
	EmitSnapshots bool

	Processors int // -k: simulated processor count, 0 = unlimited, 1 = synchronous
	Workers    int // -m: validated and stored; no heuristic reads it (Processors sizes the worker pool)

	TraceFrequency int // -t: -1 silent, 0 pass boundaries only, >0 every N iterations

	Verbose bool // -v
	Favored bool // -f
}

// DefaultConfig returns the configuration the CLI starts from before
// flags are applied: standard termination enabled, no post-processing,
// no snapshot emission, fully synchronous.
func DefaultConfig() Config {
	return Config{
		Heuristic:           HeuristicBary,
		Preprocessor:        PreprocessorNone,
		MaxIterations:       -1,
		StandardTermination: true,
		Pareto:              ParetoBottleneckTotal,
		WeightPolicy:        graph.SentinelAvg,
		SiftOrder:           heuristic.SiftByDegree,
		MCEOption:           heuristic.MCENodes,
		Objective:           heuristic.ObjectiveTotal,
		CaptureIteration:    -1,
		Processors:          1,
		Workers:             1,
		TraceFrequency:      -1,
	}
}

// Validate rejects option combinations that are not well-formed. It is
// an argument error (§7) for the caller to surface with usage output.
func (c Config) Validate() error {
	switch c.Heuristic {
	case HeuristicMedian, HeuristicBary, HeuristicModBary, HeuristicStaticBary,
		HeuristicAltBary, HeuristicUpDownBary, HeuristicRotateBary, HeuristicSlabBary,
		HeuristicMCN, HeuristicMCE, HeuristicMCES, HeuristicMSE, HeuristicSifting:
	default:
		return fmt.Errorf("orchestrator: unknown heuristic %q", c.Heuristic)
	}
	switch c.Preprocessor {
	case PreprocessorNone, PreprocessorBFS, PreprocessorDFS, PreprocessorMDS:
	default:
		return fmt.Errorf("orchestrator: unknown preprocessor %q", c.Preprocessor)
	}
	switch c.Pareto {
	case ParetoBottleneckTotal, ParetoStretchTotal, ParetoBottleneckStretch:
	default:
		return fmt.Errorf("orchestrator: unknown pareto pair %q", c.Pareto)
	}
	if c.Processors < 0 {
		return fmt.Errorf("orchestrator: processor count must be >= 0, got %d", c.Processors)
	}
	if c.SiftOrder == heuristic.SiftRandom && !c.Randomize {
		return fmt.Errorf("orchestrator: sift order %q requires a random seed (-R)", "random")
	}
	return nil
}

// newRand builds the tie-break/randomization source for a run: nil
// (disables randomization everywhere it is threaded) unless -R was
// given.
func (c Config) newRand() *rand.Rand {
	if !c.Randomize {
		return nil
	}
	return rand.New(rand.NewSource(c.RandomSeed))
}
