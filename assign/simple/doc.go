// Package simple provides SimpleAssignment, a builder that lets callers
// add arcs (left, right, cost) without pre-sizing a graph, then solves
// via assign.Solver underneath.
//
// Example usage:
//
//	var a simple.SimpleAssignment
//	a.AddArcWithCost(0, 0, 2)
//	a.AddArcWithCost(0, 1, 11)
//	a.AddArcWithCost(1, 0, 7)
//	a.AddArcWithCost(1, 1, 3)
//	switch a.Solve() {
//	case simple.Optimal:
//		fmt.Println(a.OptimalCost())
//	case simple.Infeasible:
//		// no perfect matching exists
//	case simple.PossibleOverflow:
//		// an arc cost's magnitude is too large to scale safely
//	}
package simple
