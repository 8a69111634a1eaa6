// Package stats tracks the bookkeeping that sits on top of the
// crossing-minimization engine in package graph: saved layer orders
// that can be restored later, the four (or five, with favored edges)
// objective trackers that remember the best value seen for each
// objective and the iteration it was found at, and a Pareto frontier
// over one configurable pair of those objectives.
package stats
