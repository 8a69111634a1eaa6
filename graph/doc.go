// Package graph implements the layered-graph data model used by the
// crossing-minimization engine: dense-id nodes and edges grouped into
// layers, the per-channel edge arrays used to count bilayer crossings,
// and the low-level primitives (sorting, inversion counting, weight
// assignment, sifting) that every heuristic in package heuristic is
// built from.
//
// A graph is created once, from input read by package ioformat, and
// mutated only by reordering nodes within a layer - nodes and edges are
// never added or removed after construction.
package graph
