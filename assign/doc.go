// Package assign implements a cost-scaling push-relabel algorithm for the
// linear sum assignment problem (minimum-cost perfect bipartite matching on
// integer arc costs), due to Goldberg & Kennedy (1995).
//
// Given a bipartite graph with n left nodes, n right nodes, and arcs from
// left to right carrying integer costs, Solver finds a perfect matching of
// minimum total cost or reports that none exists.
//
// The key algorithms and ideas in play:
//
//   - Cost scaling: arc costs are multiplied by (numLeftNodes+1) at input
//     time and the algorithm runs a sequence of "refinements," one per
//     value of an error parameter epsilon that shrinks geometrically from
//     the largest scaled cost down to 1. When epsilon reaches 1, integrality
//     of the scaled costs guarantees the matching found is truly optimal.
//
//   - Implicit left-side pricing: only right-side nodes carry an explicit
//     price. A left node's price is recomputed on demand from its
//     outgoing arcs whenever it is scanned for a push, which costs nothing
//     extra because that scan happens anyway.
//
//   - Double-push: the core primitive. An active (unmatched) left node is
//     matched along its best residual arc; if that arc's right-side
//     endpoint was already matched, its former mate is kicked back onto the
//     active set (the "double" push), and the right-side node's price is
//     lowered by just enough to restore epsilon-optimality.
//
//   - Asymmetric epsilon-optimality: left-to-right residual arcs must have
//     reduced cost >= 0; right-to-left residual arcs must have reduced cost
//     >= -epsilon. This asymmetry is what lets a refinement begin simply by
//     unmatching every matched node (SaturateNegativeArcs) instead of
//     searching for admissible arcs to saturate.
//
// # Graph contract
//
// Solver depends only on the Graph interface (types.go): left-node count,
// arc count, an arc's head, and a restartable iterator over a left node's
// outgoing arcs. Solver does not own the graph and never asks for incoming
// or reverse arcs. See package assign/graphs for a concrete adapter.
//
// # Usage
//
//	g := graphs.NewListGraph(numLeft)
//	for _, a := range arcs {
//	    g.AddArc(a.Tail, a.Head)
//	}
//	s := assign.New(g, numLeft)
//	for i, a := range arcs {
//	    s.SetArcCost(assign.ArcIndex(i), a.Cost)
//	}
//	if !s.ComputeAssignment() {
//	    // infeasible, or overflow suspected (check s.OverflowRisk())
//	}
//	cost := s.GetCost()
//
// # Concurrency
//
// Solver is single-threaded and synchronous: ComputeAssignment is a blocking call with
// no suspension points and no cancellation hook. A Solver instance owns all
// of its memory; the graph it is given is borrowed immutably for the
// duration of ComputeAssignment. Independent Solver instances on disjoint
// graphs may run concurrently without synchronization.
//
// # References
//
// A. V. Goldberg and R. Kennedy, "An Efficient Cost Scaling Algorithm for
// the Assignment Problem," Mathematical Programming, Vol. 71, 1995.
package assign
