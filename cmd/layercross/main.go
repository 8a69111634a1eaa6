package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wrenfield/layercross/graph"
	"github.com/wrenfield/layercross/ioformat"
	"github.com/wrenfield/layercross/orchestrator"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// flags holds the raw string/numeric flag values cobra binds to,
// before they are validated and mapped onto an orchestrator.Config.
type flags struct {
	heuristic    string
	preprocessor string
	postProcess  bool
	iterations   int
	runtime      time.Duration
	seed         int64
	randomize    bool
	pareto       string
	weightPolicy string
	balanced     bool
	siftOrder    string
	mceOption    string
	objective    string
	capture      int
	outputBase   string
	processors   int
	workers      int
	traceFreq    int
	verbose      bool
	favored      bool
}

func newRootCommand() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "layercross <dot-file> <ord-file> | <sgf-file>",
		Short: "minimize edge crossings in a layered graph drawing",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayercross(cmd, args, f)
		},
	}

	flagset := cmd.Flags()
	flagset.StringVarP(&f.heuristic, "heuristic", "h", string(orchestrator.HeuristicBary), "main reordering heuristic")
	flagset.StringVarP(&f.preprocessor, "preprocessor", "p", "", "initial-order preprocessor (bfs, dfs, mds)")
	flagset.BoolVarP(&f.postProcess, "swap", "z", false, "run adjacent-swap post-processing")
	flagset.IntVarP(&f.iterations, "iterations", "i", -1, "iteration cap (-1 = unset)")
	flagset.DurationVarP(&f.runtime, "runtime", "r", 0, "wall-clock runtime cap (0 = unset)")
	flagset.Int64VarP(&f.seed, "seed", "R", 0, "randomization seed; a non-zero seed enables randomization")
	flagset.StringVarP(&f.pareto, "pareto", "P", string(orchestrator.ParetoBottleneckTotal), "pareto objective pair (b_t, s_t, b_s)")
	flagset.StringVarP(&f.weightPolicy, "weight-policy", "w", "avg", "missing-neighbor weight sentinel policy (none, avg, left)")
	flagset.BoolVarP(&f.balanced, "balanced", "b", false, "use balanced barycenter weights")
	flagset.StringVarP(&f.siftOrder, "sift-order", "s", "degree", "sifting node visit order (degree, layer, random)")
	flagset.StringVarP(&f.mceOption, "mce-option", "e", "nodes", "max-crossings-edge re-sift policy (nodes, edges, early, one_node)")
	flagset.StringVarP(&f.objective, "objective", "g", "total", "sifting objective style (total, max)")
	flagset.IntVarP(&f.capture, "capture", "c", -1, "capture a snapshot at this iteration (-1 = unset)")
	flagset.StringVarP(&f.outputBase, "output", "o", "", "output basename; when set, writes the five .ord snapshots")
	flagset.IntVarP(&f.processors, "processors", "k", 1, "simulated processor count for the parallel barycenter variants")
	flagset.IntVarP(&f.workers, "workers", "m", 1, "worker count (validated but unused; -k sizes the worker pool)")
	flagset.IntVarP(&f.traceFreq, "trace", "t", -1, "trace frequency in iterations (-1 = silent, 0 = pass boundaries only)")
	flagset.BoolVarP(&f.verbose, "verbose", "v", false, "print a statistics summary to stdout")
	flagset.BoolVarP(&f.favored, "favored", "f", false, "track the favored-edges objective")

	return cmd
}

func runLayercross(cmd *cobra.Command, args []string, f flags) error {
	g, err := loadGraph(args)
	if err != nil {
		return fmt.Errorf("layercross: %w", err)
	}

	cfg, err := buildConfig(f)
	if err != nil {
		return fmt.Errorf("layercross: %w", err)
	}

	logger, err := newLogger(f.verbose)
	if err != nil {
		return fmt.Errorf("layercross: building logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	result, err := orchestrator.Execute(g, cfg, logger)
	if err != nil {
		return fmt.Errorf("layercross: %w", err)
	}

	if f.outputBase != "" {
		if err := writeSnapshots(result, cfg, f.outputBase); err != nil {
			return fmt.Errorf("layercross: %w", err)
		}
	}

	if f.verbose {
		printSummary(cmd, result, cfg.Pareto)
	}
	return nil
}

// loadGraph reads either a <dot-file> <ord-file> pair or a single
// <sgf-file>, per the positional-argument surface.
func loadGraph(args []string) (*graph.Graph, error) {
	switch len(args) {
	case 2:
		dotFile, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("opening dot file: %w", err)
		}
		defer dotFile.Close()
		dot, err := ioformat.ParseDot(dotFile)
		if err != nil {
			return nil, err
		}

		ordFile, err := os.Open(args[1])
		if err != nil {
			return nil, fmt.Errorf("opening ord file: %w", err)
		}
		defer ordFile.Close()
		return ioformat.ReadOrd(ordFile, dot)
	case 1:
		sgfFile, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("opening sgf file: %w", err)
		}
		defer sgfFile.Close()
		return ioformat.ReadSgf(sgfFile)
	default:
		return nil, fmt.Errorf("expected <dot-file> <ord-file> or <sgf-file>, got %d arguments", len(args))
	}
}

func buildConfig(f flags) (orchestrator.Config, error) {
	cfg := orchestrator.DefaultConfig()
	cfg.Heuristic = orchestrator.HeuristicName(f.heuristic)
	cfg.Preprocessor = orchestrator.PreprocessorName(f.preprocessor)
	cfg.PostProcessSwaps = f.postProcess
	cfg.MaxIterations = f.iterations
	cfg.MaxRuntime = f.runtime
	cfg.StandardTermination = f.iterations < 0 && f.runtime <= 0
	cfg.RandomSeed = f.seed
	cfg.Randomize = f.seed != 0
	cfg.Pareto = orchestrator.ParetoPair(f.pareto)
	cfg.Balanced = f.balanced
	cfg.CaptureIteration = f.capture
	cfg.OutputBase = f.outputBase
	cfg.EmitSnapshots = f.outputBase != ""
	cfg.Processors = f.processors
	cfg.Workers = f.workers
	cfg.TraceFrequency = f.traceFreq
	cfg.Verbose = f.verbose
	cfg.Favored = f.favored

	var err error
	if cfg.WeightPolicy, err = orchestrator.ParseWeightPolicy(f.weightPolicy); err != nil {
		return cfg, err
	}
	if cfg.SiftOrder, err = orchestrator.ParseSiftOrder(f.siftOrder); err != nil {
		return cfg, err
	}
	if cfg.MCEOption, err = orchestrator.ParseMCEOption(f.mceOption); err != nil {
		return cfg, err
	}
	if cfg.Objective, err = orchestrator.ParseObjective(f.objective); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// writeSnapshots emits the five-shape .ord snapshot set named
// BASE-PRE+HEUR[_TAG].ord.
func writeSnapshots(result *orchestrator.Result, cfg orchestrator.Config, base string) error {
	snapshots := []struct {
		tag    string
		result *orchestrator.TrackerResult
	}{
		{"", result.TotalCrossings},
		{"-post", result.TotalCrossings},
		{"_edge", result.BottleneckCrossings},
		{"_stretch", result.TotalStretch},
		{"_bs", result.BottleneckStretch},
	}
	for _, snap := range snapshots {
		name := ioformat.SnapshotName(base, string(cfg.Preprocessor), string(cfg.Heuristic), snap.tag)
		if err := writeOrdSnapshot(name, result.Graph, snap.result); err != nil {
			return err
		}
	}
	if result.Captured != nil {
		name := ioformat.SnapshotName(base, string(cfg.Preprocessor), string(cfg.Heuristic), "_capture")
		if err := writeCapturedSnapshot(name, result.Graph, result.Captured); err != nil {
			return err
		}
	}
	return nil
}

func writeCapturedSnapshot(name string, g *graph.Graph, order *orchestrator.Order) error {
	order.Restore(g)
	file, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating snapshot %s: %w", name, err)
	}
	defer file.Close()
	if err := ioformat.WriteOrd(file, g); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", name, err)
	}
	return nil
}

func writeOrdSnapshot(name string, g *graph.Graph, tr *orchestrator.TrackerResult) error {
	tr.Order.Restore(g)
	file, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating snapshot %s: %w", name, err)
	}
	defer file.Close()
	if err := ioformat.WriteOrd(file, g); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", name, err)
	}
	return nil
}

func printSummary(cmd *cobra.Command, result *orchestrator.Result, pair orchestrator.ParetoPair) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "iterations: %d (post-processing: %d)\n", result.Iterations, result.PostProcessingIterations)
	fmt.Fprintf(out, "total crossings:      %.0f (best at iteration %d)\n", result.TotalCrossings.Best, result.TotalCrossings.BestIteration)
	fmt.Fprintf(out, "bottleneck crossings: %.0f (best at iteration %d)\n", result.BottleneckCrossings.Best, result.BottleneckCrossings.BestIteration)
	fmt.Fprintf(out, "total stretch:        %.2f (best at iteration %d)\n", result.TotalStretch.Best, result.TotalStretch.BestIteration)
	fmt.Fprintf(out, "bottleneck stretch:   %.2f (best at iteration %d)\n", result.BottleneckStretch.Best, result.BottleneckStretch.BestIteration)
	if result.FavoredCrossings != nil {
		fmt.Fprintf(out, "favored edge crossings: %.0f (best at iteration %d)\n", result.FavoredCrossings.Best, result.FavoredCrossings.BestIteration)
	}
	fmt.Fprintf(out, "pareto frontier (%s): %v\n", pair, result.Pareto)
}
