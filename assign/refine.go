package assign

// saturateNegativeArcs unmatches every matched left node, setting
// totalExcess to the number of left nodes. Under the asymmetric
// epsilon-optimality this module maintains, every matching arc from the
// previous scale has reverse residual reduced cost within the new
// epsilon, so simply unmatching is exactly "saturate every admissible
// residual arc" — there is no search involved. Right-side prices are left
// untouched; only the matching is reset.
func (s *Solver) saturateNegativeArcs() {
	s.totalExcess = 0
	for node := NodeIndex(0); node < s.numLeftNodes; node++ {
		if s.isActive(node) {
			// Can happen in the first refinement, when nothing is
			// matched yet.
			s.totalExcess++
			continue
		}
		s.totalExcess++
		mate := s.graph.Head(s.matchedArc[node])
		s.matchedArc[node] = NilArc
		s.matchedNode.set(mate, NilNode)
	}
}

// initializeActiveNodeContainer pushes every (now-unmatched) left node
// onto the active set, in preparation for the refinement's push loop.
func (s *Solver) initializeActiveNodeContainer() {
	for node := NodeIndex(0); node < s.numLeftNodes; node++ {
		if s.isActive(node) {
			s.activeNodes.push(node)
		}
	}
}

// refine runs one scaling iteration at the current epsilon: saturate,
// then drain the active set via double-push until no excess remains.
// Returns false if a double-push reports infeasibility.
func (s *Solver) refine() bool {
	s.saturateNegativeArcs()
	s.initializeActiveNodeContainer()
	for s.totalExcess > 0 {
		node := s.activeNodes.pop()
		if !s.doublePush(node) {
			if s.Debug && s.stats.Refinements > 0 {
				panic("assign: infeasibility detected after the first refinement; this is an internal bug")
			}
			return false
		}
	}
	s.iterStats.Refinements++
	return true
}

// reportAndAccumulateStats folds the per-refinement counters into the
// cumulative totals and clears them for the next refinement.
func (s *Solver) reportAndAccumulateStats() {
	s.stats.add(s.iterStats)
	s.iterStats.clear()
}
