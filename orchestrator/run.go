package orchestrator

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/google/uuid"

	"github.com/wrenfield/layercross/graph"
	"github.com/wrenfield/layercross/stats"
)

// Run holds every piece of state one invocation of the pipeline needs:
// the graph being reordered, the configuration it was started with, the
// five CROSSING_STATS trackers, the Pareto frontier, the iteration
// counter, and the logger every trace line is attached to. It
// implements heuristic.Controller, which is how package heuristic calls
// back into iteration counting, termination, and trace output without
// importing this package.
type Run struct {
	g      *graph.Graph
	cfg    Config
	logger *zap.Logger
	runID  string
	rng    *rand.Rand
	start  time.Time

	iteration int

	totalCrossings      *stats.Tracker
	bottleneckCrossings *stats.Tracker
	totalStretch        *stats.Tracker
	bottleneckStretch   *stats.Tracker
	favoredCrossings    *stats.Tracker // nil unless cfg.Favored

	totalOrder      *stats.Order
	bottleneckOrder *stats.Order
	stretchOrder    *stats.Order
	bsOrder         *stats.Order
	favoredOrder    *stats.Order

	pareto *stats.ParetoFrontier

	favored *graph.FavoredEdges

	postProcessingIteration int

	capturedOrder *stats.Order // snapshot taken at cfg.CaptureIteration
	captured      bool
}

// NewRun builds a Run ready to drive the pipeline over g under cfg. g
// must already have InitCrossings/UpdateAllCrossings called on it.
func NewRun(g *graph.Graph, cfg Config, logger *zap.Logger) *Run {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Run{
		g:                   g,
		cfg:                 cfg,
		logger:              logger,
		runID:               uuid.NewString(),
		rng:                 cfg.newRand(),
		start:               time.Now(),
		totalCrossings:      stats.NewTracker("total_crossings"),
		bottleneckCrossings: stats.NewTracker("bottleneck_crossings"),
		totalStretch:        stats.NewTracker("total_stretch"),
		bottleneckStretch:   stats.NewTracker("bottleneck_stretch"),
		pareto:              &stats.ParetoFrontier{},
		totalOrder:          stats.NewOrder(g),
		bottleneckOrder:     stats.NewOrder(g),
		stretchOrder:        stats.NewOrder(g),
		bsOrder:             stats.NewOrder(g),
		capturedOrder:       stats.NewOrder(g),
	}
	if cfg.Favored {
		r.favoredCrossings = stats.NewTracker("favored_edge_crossings")
		r.favoredOrder = stats.NewOrder(g)
		r.favored = graph.ComputeFavoredEdges(g, g.MiddleNode())
	}
	return r
}

// captureAll reads every objective's current value, updates the best
// snapshot and tracker for each, and appends the total/bottleneck
// values to the Pareto frontier.
func (r *Run) captureAll() {
	r.totalCrossings.UpdateBest(float64(r.g.NumberOfCrossings()), r.iteration, func() { r.totalOrder.Save(r.g) })
	r.bottleneckCrossings.UpdateBest(float64(r.g.MaxEdgeCrossings()), r.iteration, func() { r.bottleneckOrder.Save(r.g) })
	r.totalStretch.UpdateBest(r.g.TotalStretch(), r.iteration, func() { r.stretchOrder.Save(r.g) })
	r.bottleneckStretch.UpdateBest(r.g.MaxEdgeStretch(), r.iteration, func() { r.bsOrder.Save(r.g) })
	if r.favored != nil {
		r.favoredCrossings.UpdateBest(float64(r.favored.Crossings(r.g)), r.iteration, func() { r.favoredOrder.Save(r.g) })
	}
	switch r.cfg.Pareto {
	case ParetoStretchTotal:
		r.pareto.Insert(int(r.bottleneckStretch.Best), int(r.totalStretch.Best))
	case ParetoBottleneckStretch:
		r.pareto.Insert(int(r.bottleneckCrossings.Best), int(r.bottleneckStretch.Best))
	default:
		r.pareto.Insert(int(r.bottleneckCrossings.Best), int(r.totalCrossings.Best))
	}
}

// budgetExhausted reports whether the configured iteration cap or
// runtime cap has been reached.
func (r *Run) budgetExhausted() bool {
	if r.cfg.MaxIterations >= 0 && r.iteration >= r.cfg.MaxIterations {
		return true
	}
	if r.cfg.MaxRuntime > 0 && time.Since(r.start) >= r.cfg.MaxRuntime {
		return true
	}
	return false
}

// EndOfIteration implements heuristic.Controller: it increments the
// iteration counter, captures every objective, optionally emits a
// snapshot at the configured capture iteration, traces according to
// the configured frequency, and reports whether the run's budget is
// exhausted.
func (r *Run) EndOfIteration() bool {
	r.iteration++
	r.captureAll()
	if !r.captured && r.cfg.CaptureIteration >= 0 && r.iteration == r.cfg.CaptureIteration {
		r.capturedOrder.Save(r.g)
		r.captured = true
	}
	if r.cfg.TraceFrequency > 0 && r.iteration%r.cfg.TraceFrequency == 0 {
		r.traceLine(-1, "end of iteration")
	}
	return r.budgetExhausted()
}

// ShouldStop implements heuristic.Controller: the run stops once the
// budget is exhausted, or, when standard termination is active (no
// iteration/runtime cap was given), once none of the tracked objectives
// has improved since the last check.
func (r *Run) ShouldStop() bool {
	if r.budgetExhausted() {
		return true
	}
	if !r.cfg.StandardTermination {
		return false
	}
	improved := false
	// every HasImproved call must run - short-circuiting would skip
	// advancing some trackers' PreviousBest and falsely report
	// "still improving" on the next check.
	if r.totalCrossings.HasImproved() {
		improved = true
	}
	if r.bottleneckCrossings.HasImproved() {
		improved = true
	}
	if r.totalStretch.HasImproved() {
		improved = true
	}
	if r.bottleneckStretch.HasImproved() {
		improved = true
	}
	if r.favoredCrossings != nil && r.favoredCrossings.HasImproved() {
		improved = true
	}
	return !improved
}

// StandardTermination implements heuristic.Controller.
func (r *Run) StandardTermination() bool { return r.cfg.StandardTermination }

// Trace implements heuristic.Controller: -1 suppresses all trace
// output, 0 shows only pass-boundary messages (layer == -1), and a
// positive frequency additionally shows per-layer messages every N
// iterations.
func (r *Run) Trace(layer int, message string) {
	switch {
	case r.cfg.TraceFrequency < 0:
		return
	case r.cfg.TraceFrequency == 0:
		if layer == -1 {
			r.traceLine(layer, message)
		}
	default:
		if layer == -1 || r.iteration%r.cfg.TraceFrequency == 0 {
			r.traceLine(layer, message)
		}
	}
}

func (r *Run) traceLine(layer int, message string) {
	fields := []zap.Field{
		zap.String("run_id", r.runID),
		zap.Int("iteration", r.iteration),
		zap.Int("layer", layer),
		zap.Int("crossings", int(r.totalCrossings.Best)),
		zap.Int("bottleneck", int(r.bottleneckCrossings.Best)),
		zap.Float64("stretch", r.totalStretch.Best),
		zap.Duration("elapsed", time.Since(r.start)),
	}
	r.logger.Info(message, fields...)
}
