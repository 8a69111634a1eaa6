package graph

import "errors"

// Sentinel errors of the graph package. Heuristics never return these;
// a violated invariant inside the core is a programming error, not a
// recoverable one, and the core neither checks for it nor reports it
// as an error.
var (
	// ErrNonAdjacentEdge is returned by AddEdge when the two endpoints
	// are not on consecutive layers.
	ErrNonAdjacentEdge = errors.New("graph: edge endpoints are not on adjacent layers")

	// ErrEmptyLayer names the condition of a layer with no nodes. No
	// function in this module returns it; MiddleNode indexes the middle
	// layer directly and so needs that layer to be non-empty.
	ErrEmptyLayer = errors.New("graph: layer has no nodes")

	// ErrUnknownNode names a failed node-name lookup. No function in this
	// module returns it; the ioformat readers report unresolved names
	// with their own error messages, which do not wrap it.
	ErrUnknownNode = errors.New("graph: unknown node name")
)
