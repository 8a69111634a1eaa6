package orchestrator

import (
	"fmt"

	"github.com/wrenfield/layercross/graph"
	"github.com/wrenfield/layercross/heuristic"
)

// ParseWeightPolicy maps the -w flag's string value onto a
// graph.SentinelPolicy.
func ParseWeightPolicy(s string) (graph.SentinelPolicy, error) {
	switch WeightPolicyName(s) {
	case WeightPolicyNone:
		return graph.SentinelNone, nil
	case WeightPolicyAvg:
		return graph.SentinelAvg, nil
	case WeightPolicyLeft:
		return graph.SentinelLeft, nil
	default:
		return 0, fmt.Errorf("orchestrator: unknown weight policy %q", s)
	}
}

// ParseSiftOrder maps the -s flag's string value onto a
// heuristic.SiftOrder.
func ParseSiftOrder(s string) (heuristic.SiftOrder, error) {
	switch s {
	case "layer":
		return heuristic.SiftByLayer, nil
	case "degree":
		return heuristic.SiftByDegree, nil
	case "random":
		return heuristic.SiftRandom, nil
	default:
		return 0, fmt.Errorf("orchestrator: unknown sift order %q", s)
	}
}

// ParseMCEOption maps the -e flag's string value onto a
// heuristic.MCEOption.
func ParseMCEOption(s string) (heuristic.MCEOption, error) {
	switch s {
	case "nodes":
		return heuristic.MCENodes, nil
	case "edges":
		return heuristic.MCEEdges, nil
	case "early":
		return heuristic.MCEEarly, nil
	case "one_node":
		return heuristic.MCEOneNode, nil
	default:
		return 0, fmt.Errorf("orchestrator: unknown mce option %q", s)
	}
}

// ParseObjective maps the -g flag's string value onto a
// heuristic.Objective.
func ParseObjective(s string) (heuristic.Objective, error) {
	switch s {
	case "total":
		return heuristic.ObjectiveTotal, nil
	case "max":
		return heuristic.ObjectiveMax, nil
	default:
		return 0, fmt.Errorf("orchestrator: unknown sifting objective %q", s)
	}
}
