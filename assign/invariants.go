package assign

// The checks in this file are debug-only: they are O(arcs) or worse and
// exist to catch bugs in the solver itself, not to validate user input.
// They run only when Solver.Debug is true. Production code never pays
// their cost and never panics because of them.

// isActiveForDebugging is isActive generalized to any node, left or
// right, for use by allMatched. The production isActive only accepts
// left nodes because only left nodes carry excess by construction; this
// variant exists purely so debug assertions can scan every node.
func (s *Solver) isActiveForDebugging(node NodeIndex) bool {
	if node < s.numLeftNodes {
		return s.isActive(node)
	}
	return s.matchedNode.get(node) == NilNode
}

// allMatched reports whether every node, left and right, is matched.
func (s *Solver) allMatched() bool {
	for node := NodeIndex(0); node < s.graph.NumNodes(); node++ {
		if s.isActiveForDebugging(node) {
			return false
		}
	}
	return true
}

// implicitPrice computes the implicit price of a left node: the negated
// minimum partial reduced cost over its outgoing arcs other than its matching arc
// (if any), or, when the node has exactly one outgoing arc and that arc
// is its matching arc, a value low enough that epsilonOptimal never
// considers unmatching it (mirroring the slack-relabeling freedom granted
// to such nodes during DoublePush).
//
// Precondition: left has at least one outgoing arc (guaranteed by the
// incidence precondition checked at FinalizeSetup).
func (s *Solver) implicitPrice(left NodeIndex) CostValue {
	it := s.graph.OutgoingArcs(left)
	bestArc := it.Index()
	if bestArc == s.matchedArc[left] {
		it.Next()
		if it.Ok() {
			bestArc = it.Index()
		}
	}
	minPRC := s.partialReducedCost(bestArc)
	if !it.Ok() {
		// Only one outgoing arc, and it is the matching arc: any feasible
		// solution keeps it matched, so price this node low enough that
		// it is never reconsidered.
		return -(minPRC + s.slackRelabelingPrice)
	}
	for it.Next(); it.Ok(); it.Next() {
		arc := it.Index()
		if arc != s.matchedArc[left] {
			if prc := s.partialReducedCost(arc); prc < minPRC {
				minPRC = prc
			}
		}
	}
	return -minPRC
}

// epsilonOptimal reports whether the current pseudoflow is
// epsilon-optimal under the asymmetric definition this solver maintains:
// residual left-to-right arcs have reduced cost >= 0, and the single
// residual right-to-left arc implied by a matching arc has reduced cost
// >= -epsilon (equivalently, the forward matching arc's reduced cost is
// <= epsilon).
func (s *Solver) epsilonOptimal() bool {
	for left := NodeIndex(0); left < s.numLeftNodes; left++ {
		leftPrice := s.implicitPrice(left)
		for it := s.graph.OutgoingArcs(left); it.Ok(); it.Next() {
			arc := it.Index()
			reducedCost := leftPrice + s.partialReducedCost(arc)
			if s.matchedArc[left] == arc {
				if reducedCost > s.epsilon {
					return false
				}
			} else if reducedCost < 0 {
				return false
			}
		}
	}
	return true
}
