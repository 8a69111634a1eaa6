package stats

import "math"

// Tracker mirrors one CROSSING_STATS objective: it remembers the
// value of a metric at four checkpoints of a run (beginning, after
// preprocessing, after the main heuristic, after post-processing),
// plus the best value ever seen and the iteration it first appeared at.
// Values are floats so the same tracker type serves integer crossing
// counts and fractional stretch totals.
type Tracker struct {
	Name string

	AtBeginning         float64
	AfterPreprocessing  float64
	AfterHeuristic      float64
	AfterPostProcessing float64

	Best                    float64
	PreviousBest            float64
	BestIteration           int
	PostProcessingIteration int
}

// NewTracker returns a Tracker with every checkpoint initialized to
// +Inf, so the first real measurement always counts as an improvement.
func NewTracker(name string) *Tracker {
	return &Tracker{
		Name:                    name,
		AtBeginning:             math.Inf(1),
		AfterPreprocessing:      math.Inf(1),
		AfterHeuristic:          math.Inf(1),
		AfterPostProcessing:     math.Inf(1),
		Best:                    math.Inf(1),
		PreviousBest:            math.Inf(1),
		BestIteration:           -1,
		PostProcessingIteration: -1,
	}
}

// CaptureBeginning records the metric's value before any preprocessing
// or heuristic has run.
func (t *Tracker) CaptureBeginning(value float64) { t.AtBeginning = value }

// CapturePreprocessing records the metric's value after the
// preprocessor finished, before the main heuristic starts.
func (t *Tracker) CapturePreprocessing(value float64) { t.AfterPreprocessing = value }

// CaptureHeuristic records Best as the value achieved by the main
// heuristic.
func (t *Tracker) CaptureHeuristic() { t.AfterHeuristic = t.Best }

// CapturePostProcessing records Best as the value achieved by
// post-processing and the iteration count post-processing ran for.
func (t *Tracker) CapturePostProcessing(postProcessingIteration int) {
	t.AfterPostProcessing = t.Best
	t.PostProcessingIteration = postProcessingIteration
}

// UpdateBest compares value against the tracker's best-so-far and, if
// it improves on it, records the new best, the iteration it was found
// at, and saves the graph's current order via save.
func (t *Tracker) UpdateBest(value float64, iteration int, save func()) {
	if value < t.Best {
		t.Best = value
		t.BestIteration = iteration
		save()
	}
}

// HasImproved reports whether Best has improved since the last call to
// HasImproved (or since construction), and advances PreviousBest to
// match if so. Calling it is itself a side effect, matching the
// original heuristic controller's use of it as a one-shot "did anything
// change" check across every tracked objective each iteration.
func (t *Tracker) HasImproved() bool {
	if t.Best < t.PreviousBest {
		t.PreviousBest = t.Best
		return true
	}
	return false
}
