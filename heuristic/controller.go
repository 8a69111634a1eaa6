package heuristic

// Controller is the synchronization boundary every heuristic in this
// package calls into after each layer it touches. It owns iteration
// counting, the standard-termination convergence check, and trace
// output, none of which this package concerns itself with directly.
type Controller interface {
	// EndOfIteration records a synchronization point and reports
	// whether the iteration budget (iteration cap or runtime budget) has
	// been exhausted - checked mid-pass so a sweep can bail out as soon
	// as the budget runs out instead of finishing the layer it's on.
	EndOfIteration() bool
	// ShouldStop reports whether the whole run should stop: either the
	// iteration budget is exhausted, or (when standard termination is
	// enabled) none of the tracked objectives have improved since the
	// last call. Checked once at the top of every outer pass loop.
	ShouldStop() bool
	// StandardTermination reports whether the run is using convergence
	// ("no improvement") termination rather than a fixed iteration or
	// runtime budget. Sifting's fail-count retry policy only applies
	// under standard termination; with a fixed budget it must not keep a
	// pass running once the budget is already exhausted.
	StandardTermination() bool
	// Trace emits one progress line. layer is -1 for pass-level
	// messages.
	Trace(layer int, message string)
}
