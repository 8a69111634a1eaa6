package ioformat

// SnapshotName builds one of the five ".ord" snapshot filenames the
// orchestrator emits when -o is given: BASE-PRE+HEUR[_TAG].ord, where
// PRE is the preprocessor name (may be empty) and TAG distinguishes the
// non-default objective snapshots ("-post" for after post-processing,
// "_edge" for bottleneck crossings, "_stretch" for total stretch,
// "_bs" for bottleneck stretch; the empty tag names the total-crossings
// snapshot).
func SnapshotName(base, preprocessor, heuristic, tag string) string {
	name := base + "-" + preprocessor + "+" + heuristic + tag + ".ord"
	return name
}
