package assign

// isActive reports whether the given left node carries unit excess (is
// unmatched). Excess itself is never stored; it is this predicate over
// matchedArc that stands in for it everywhere.
func (s *Solver) isActive(left NodeIndex) bool {
	return s.matchedArc[left] == NilArc
}

// doublePush discharges the unit of excess at source: it matches source
// along its best residual arc, evicting that arc's right-side node's
// previous mate (if any) back onto the active set, then relabels the
// right-side node just enough to restore epsilon-optimality.
//
// Returns false if source has no outgoing arc (infeasible) or if the
// right-side node's price fell below priceLowerBound after relabeling
// (also infeasible, or arithmetic overflow that was flagged at setup).
func (s *Solver) doublePush(source NodeIndex) bool {
	bestArc, gap := s.bestArcAndGap(source)
	if bestArc == NilArc {
		return false
	}
	newMate := s.graph.Head(bestArc)
	toUnmatch := s.matchedNode.get(newMate)
	if toUnmatch != NilNode {
		// newMate was already matched: kick its old mate back onto the
		// active set. This is the "double" in double-push.
		s.matchedArc[toUnmatch] = NilArc
		s.activeNodes.push(toUnmatch)
		s.iterStats.DoublePushes++
	} else {
		// The matching grows by one arc.
		s.totalExcess--
		s.iterStats.Pushes++
	}
	s.matchedArc[source] = bestArc
	s.matchedNode.set(newMate, source)

	s.iterStats.Relabelings++
	newPrice := s.price.get(newMate) - gap - s.epsilon
	s.price.set(newMate, newPrice)

	return newPrice >= s.priceLowerBound
}
