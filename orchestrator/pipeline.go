package orchestrator

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/wrenfield/layercross/graph"
	"github.com/wrenfield/layercross/heuristic"
	"github.com/wrenfield/layercross/stats"
)

// Result is everything the pipeline produced: the final graph state
// (whatever order the post-processing/heuristic left it in), the five
// CROSSING_STATS trackers, the best-known order for each objective, and
// the Pareto frontier.
type Result struct {
	Graph *graph.Graph

	TotalCrossings      *TrackerResult
	BottleneckCrossings *TrackerResult
	TotalStretch        *TrackerResult
	BottleneckStretch   *TrackerResult
	FavoredCrossings    *TrackerResult // nil unless Config.Favored

	Pareto []ParetoPoint

	Iterations              int
	PostProcessingIterations int

	Captured *Order // non-nil once Config.CaptureIteration was reached during the run
}

// TrackerResult is a read-only view of one objective's final numbers
// and the order that achieved its best value.
type TrackerResult struct {
	Name                string
	AtBeginning         float64
	AfterPreprocessing  float64
	AfterHeuristic      float64
	AfterPostProcessing float64
	Best                float64
	BestIteration       int
	Order               *Order
}

// Order is an opaque snapshot of a layered order, restorable onto any
// graph with the same node/layer structure it was saved from.
type Order struct {
	restore func(g *graph.Graph)
}

// Restore writes the snapshotted order back onto g.
func (o *Order) Restore(g *graph.Graph) {
	if o == nil {
		return
	}
	o.restore(g)
}

// ParetoPoint mirrors stats.ParetoPoint without exposing the stats
// package to callers of Run.
type ParetoPoint struct {
	Bottleneck int
	Total      int
}

// Execute runs the fixed pipeline over g under cfg: initialize crossing
// state, capture the beginning snapshot, run the configured
// preprocessor, capture the preprocessing snapshot, mark iteration 0's
// boundary, run the configured main heuristic, capture the heuristic
// snapshot, optionally restore the best order and run post-processing
// swaps, capture the post-processing snapshot, and return every
// tracked statistic. g must be fully built (every node/edge added) but
// need not have InitCrossings called yet.
func Execute(g *graph.Graph, cfg Config, logger *zap.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g.InitCrossings()
	g.UpdateAllCrossings()

	r := NewRun(g, cfg, logger)
	r.totalCrossings.CaptureBeginning(float64(g.NumberOfCrossings()))
	r.bottleneckCrossings.CaptureBeginning(float64(g.MaxEdgeCrossings()))
	r.totalStretch.CaptureBeginning(g.TotalStretch())
	r.bottleneckStretch.CaptureBeginning(g.MaxEdgeStretch())
	if r.favoredCrossings != nil {
		r.favoredCrossings.CaptureBeginning(float64(r.favored.Crossings(g)))
	}

	runPreprocessor(g, cfg)
	g.UpdateAllCrossings()

	r.totalCrossings.CapturePreprocessing(float64(g.NumberOfCrossings()))
	r.bottleneckCrossings.CapturePreprocessing(float64(g.MaxEdgeCrossings()))
	r.totalStretch.CapturePreprocessing(g.TotalStretch())
	r.bottleneckStretch.CapturePreprocessing(g.MaxEdgeStretch())
	if r.favoredCrossings != nil {
		r.favoredCrossings.CapturePreprocessing(float64(r.favored.Crossings(g)))
	}
	r.EndOfIteration() // iteration 0 boundary

	runHeuristic(g, cfg, r.rng, r)

	r.totalCrossings.CaptureHeuristic()
	r.bottleneckCrossings.CaptureHeuristic()
	r.totalStretch.CaptureHeuristic()
	r.bottleneckStretch.CaptureHeuristic()
	if r.favoredCrossings != nil {
		r.favoredCrossings.CaptureHeuristic()
	}

	if cfg.PostProcessSwaps {
		r.totalOrder.Restore(g)
		before := r.iteration
		heuristic.Swapping(g, r)
		r.postProcessingIteration = r.iteration - before
	}

	r.totalCrossings.CapturePostProcessing(r.postProcessingIteration)
	r.bottleneckCrossings.CapturePostProcessing(r.postProcessingIteration)
	r.totalStretch.CapturePostProcessing(r.postProcessingIteration)
	r.bottleneckStretch.CapturePostProcessing(r.postProcessingIteration)
	if r.favoredCrossings != nil {
		r.favoredCrossings.CapturePostProcessing(r.postProcessingIteration)
	}

	return r.result(), nil
}

func runPreprocessor(g *graph.Graph, cfg Config) {
	switch cfg.Preprocessor {
	case PreprocessorBFS:
		heuristic.BreadthFirstSearch(noopController{})
	case PreprocessorDFS:
		heuristic.DepthFirstSearch(g)
	case PreprocessorMDS:
		heuristic.MiddleDegreeSort(g)
	}
}

func runHeuristic(g *graph.Graph, cfg Config, rng *rand.Rand, r *Run) {
	switch cfg.Heuristic {
	case HeuristicMedian:
		heuristic.Median(g, cfg.WeightPolicy, r)
	case HeuristicBary:
		heuristic.Barycenter(g, cfg.Balanced, cfg.WeightPolicy, r)
	case HeuristicModBary:
		heuristic.ModifiedBarycenter(g, cfg.WeightPolicy, rng, r)
	case HeuristicStaticBary:
		heuristic.StaticBarycenter(g, cfg.WeightPolicy, cfg.Processors, r)
	case HeuristicAltBary:
		heuristic.AltBarycenter(g, cfg.WeightPolicy, cfg.Processors, r)
	case HeuristicUpDownBary:
		heuristic.UpDownBarycenter(g, cfg.WeightPolicy, cfg.Processors, r)
	case HeuristicRotateBary:
		heuristic.RotatingBarycenter(g, cfg.WeightPolicy, cfg.Processors, r)
	case HeuristicSlabBary:
		heuristic.SlabBarycenter(g, cfg.WeightPolicy, cfg.Processors, r)
	case HeuristicMCN:
		heuristic.MaximumCrossingsNode(g, rng, r)
	case HeuristicMCE:
		heuristic.MaximumCrossingsEdge(g, cfg.MCEOption, rng, r)
	case HeuristicMCES:
		heuristic.MaximumCrossingsEdgeWithSifting(g, rng, r)
	case HeuristicMSE:
		heuristic.MaximumStretchEdge(g, rng, r)
	case HeuristicSifting:
		heuristic.Sifting(g, cfg.SiftOrder, cfg.Randomize, rng, r)
	}
}

// noopController satisfies heuristic.Controller for preprocessors
// (currently only BreadthFirstSearch) that need to trace a message but
// never synchronize or check termination.
type noopController struct{}

func (noopController) EndOfIteration() bool      { return false }
func (noopController) ShouldStop() bool          { return false }
func (noopController) StandardTermination() bool { return false }
func (noopController) Trace(int, string)         {}

// trackerResult copies a stats.Tracker's checkpoint values into the
// public TrackerResult shape and wraps order in the Order/Restore
// indirection Result exposes, so callers outside this package never
// need to import package stats.
func trackerResult(t *stats.Tracker, order *stats.Order) *TrackerResult {
	return &TrackerResult{
		Name:                t.Name,
		AtBeginning:         t.AtBeginning,
		AfterPreprocessing:  t.AfterPreprocessing,
		AfterHeuristic:      t.AfterHeuristic,
		AfterPostProcessing: t.AfterPostProcessing,
		Best:                t.Best,
		BestIteration:       t.BestIteration,
		Order:               &Order{restore: order.Restore},
	}
}

func (r *Run) result() *Result {
	res := &Result{
		Graph:                    r.g,
		Iterations:               r.iteration,
		PostProcessingIterations: r.postProcessingIteration,
		TotalCrossings:           trackerResult(r.totalCrossings, r.totalOrder),
		BottleneckCrossings:      trackerResult(r.bottleneckCrossings, r.bottleneckOrder),
		TotalStretch:             trackerResult(r.totalStretch, r.stretchOrder),
		BottleneckStretch:        trackerResult(r.bottleneckStretch, r.bsOrder),
	}
	for _, p := range r.pareto.Points() {
		res.Pareto = append(res.Pareto, ParetoPoint{Bottleneck: p.Bottleneck, Total: p.Total})
	}
	if r.favoredCrossings != nil {
		res.FavoredCrossings = trackerResult(r.favoredCrossings, r.favoredOrder)
	}
	if r.captured {
		res.Captured = &Order{restore: r.capturedOrder.Restore}
	}
	return res
}
