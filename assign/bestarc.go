package assign

// partialReducedCost returns c'_p(a) = sc[a] - p(head(a)), the reduced
// cost of arc a omitting the (implicit) left-node price.
func (s *Solver) partialReducedCost(arc ArcIndex) CostValue {
	return s.scaledArcCost[arc] - s.price.get(s.graph.Head(arc))
}

// bestArcAndGap returns the minimum partial-reduced-cost arc incident to
// left and the gap by which that arc's partial reduced cost would need to
// grow to equal the next-best residual arc's, capped at maxGap.
//
// Precondition: left is active (unmatched) and has at least one outgoing
// arc; FinalizeSetup's incidence check guarantees the latter for every
// left node before any refinement runs.
//
// This makes a single pass over left's outgoing arcs, tracking a running
// minimum and an upper-capped running second-minimum: once a candidate's
// partial reduced cost exceeds the cap, there is no need to track it
// precisely, because the final gap can never exceed maxGap anyway.
func (s *Solver) bestArcAndGap(left NodeIndex) (ArcIndex, CostValue) {
	it := s.graph.OutgoingArcs(left)
	if !it.Ok() {
		return NilArc, 0
	}
	bestArc := it.Index()
	minPRC := s.partialReducedCost(bestArc)

	// maxGap is chosen so that a left node with exactly one outgoing arc
	// (second_min == min + maxGap) gets gap == maxGap: its mate is then
	// relabeled by exactly slackRelabelingPrice, the slack-relabeling
	// amount that keeps a forced match from being undone again this scale.
	maxGap := s.slackRelabelingPrice - s.epsilon
	secondMinPRC := minPRC + maxGap

	for it.Next(); it.Ok(); it.Next() {
		arc := it.Index()
		prc := s.partialReducedCost(arc)
		if prc < secondMinPRC {
			if prc < minPRC {
				bestArc = arc
				secondMinPRC = minPRC
				minPRC = prc
			} else {
				secondMinPRC = prc
			}
		}
	}

	gap := secondMinPRC - minPRC
	if gap > maxGap {
		gap = maxGap
	}
	return bestArc, gap
}
