// Package heuristic implements the family of iterative layer-reordering
// heuristics built on top of package graph: barycenter and median
// sweeps (including the parallel-friendly static/odd-even/up-down/slab
// variants), the maximum-crossings-node/edge/edge-with-sifting and
// maximum-stretch-edge local searches, the sifting controller, the
// breadth-first/depth-first/middle-degree preprocessors, and the
// adjacent-swap post-processing pass.
//
// Every entry point takes a Controller, which owns iteration counting,
// termination, and trace output - the same separation of concerns as
// the engine's orchestrator, just expressed as an interface so this
// package never has to import it.
package heuristic
