package simple

import (
	"fmt"
	"math"

	"github.com/vlath/lsap/assign"
	"github.com/vlath/lsap/assign/graphs"
)

// Status is the outcome of a Solve call.
type Status int

const (
	// Optimal means a minimum-cost perfect matching was found.
	Optimal Status = iota
	// Infeasible means no perfect matching exists on the given arcs.
	Infeasible
	// PossibleOverflow means some arc cost's magnitude is too large to
	// scale safely; Solve returns without entering the core.
	PossibleOverflow
)

// String renders a Status for logging.
func (st Status) String() string {
	switch st {
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	case PossibleOverflow:
		return "possible overflow"
	default:
		return fmt.Sprintf("simple.Status(%d)", int(st))
	}
}

// SimpleAssignment is an arc-list builder over assign.Solver: callers add
// arcs with AddArcWithCost without declaring a node count up front, then
// call Solve. The zero value is ready to use.
type SimpleAssignment struct {
	numNodes assign.NodeIndex

	arcTail []assign.NodeIndex
	arcHead []assign.NodeIndex
	arcCost []assign.CostValue

	assignmentArcs []assign.ArcIndex
	optimalCost    assign.CostValue
	overflowRisk   bool
}

// AddArcWithCost adds an arc from leftNode to rightNode with the given
// cost and returns its arc id (NumArcs() - 1 after the call). Node
// indices are 0-based and relative to their own side; for a perfect
// matching to exist on n nodes, the left_node values used across all
// calls must cover [0, n), and likewise for right_node.
func (a *SimpleAssignment) AddArcWithCost(leftNode, rightNode assign.NodeIndex, cost assign.CostValue) assign.ArcIndex {
	arc := assign.ArcIndex(len(a.arcTail))
	a.arcTail = append(a.arcTail, leftNode)
	a.arcHead = append(a.arcHead, rightNode)
	a.arcCost = append(a.arcCost, cost)
	if leftNode+1 > a.numNodes {
		a.numNodes = leftNode + 1
	}
	if rightNode+1 > a.numNodes {
		a.numNodes = rightNode + 1
	}
	return arc
}

// NumNodes returns the current number of left nodes, which is the same
// as the number of right nodes: one greater than the largest node index
// seen so far in AddArcWithCost.
func (a *SimpleAssignment) NumNodes() assign.NodeIndex { return a.numNodes }

// NumArcs returns the current number of arcs.
func (a *SimpleAssignment) NumArcs() assign.ArcIndex { return assign.ArcIndex(len(a.arcTail)) }

// LeftNode returns arc's left endpoint.
func (a *SimpleAssignment) LeftNode(arc assign.ArcIndex) assign.NodeIndex { return a.arcTail[arc] }

// RightNode returns arc's right endpoint.
func (a *SimpleAssignment) RightNode(arc assign.ArcIndex) assign.NodeIndex { return a.arcHead[arc] }

// Cost returns arc's cost.
func (a *SimpleAssignment) Cost(arc assign.ArcIndex) assign.CostValue { return a.arcCost[arc] }

// Solve finds the minimum-cost perfect matching over the arcs added so
// far and returns the outcome. On Optimal, OptimalCost, RightMate and
// AssignmentCost become valid.
func (a *SimpleAssignment) Solve() Status {
	a.optimalCost = 0
	a.overflowRisk = false
	if a.numNodes == 0 {
		a.optimalCost = 0
		return Optimal
	}

	limit := assign.CostValue(math.MaxInt64) / assign.CostValue(a.numNodes+1)
	for _, cost := range a.arcCost {
		abs := cost
		if abs < 0 {
			abs = -abs
		}
		if abs > limit {
			return PossibleOverflow
		}
	}

	g := graphs.NewListGraph(a.numNodes)
	solver := assign.New(g, a.numNodes)
	for i, tail := range a.arcTail {
		graphArc := g.AddArc(tail, a.numNodes+a.arcHead[i])
		solver.SetArcCost(graphArc, a.arcCost[i])
	}

	if !solver.ComputeAssignment() {
		return Infeasible
	}
	a.overflowRisk = solver.OverflowRisk()

	a.optimalCost = solver.GetCost()
	a.assignmentArcs = make([]assign.ArcIndex, a.numNodes)
	for left := assign.NodeIndex(0); left < a.numNodes; left++ {
		a.assignmentArcs[left] = solver.GetAssignmentArc(left)
	}
	return Optimal
}

// OptimalCost returns the cost of the last Optimal solve, or 0 if the
// last Solve didn't return Optimal.
func (a *SimpleAssignment) OptimalCost() assign.CostValue { return a.optimalCost }

// RightMate returns the right node assigned to leftNode by the last
// Optimal solve.
func (a *SimpleAssignment) RightMate(leftNode assign.NodeIndex) assign.NodeIndex {
	return a.arcHead[a.assignmentArcs[leftNode]]
}

// AssignmentCost returns the cost of the arc assigned to leftNode by the
// last Optimal solve.
func (a *SimpleAssignment) AssignmentCost(leftNode assign.NodeIndex) assign.CostValue {
	return a.arcCost[a.assignmentArcs[leftNode]]
}

// OverflowRisk reports whether the last Optimal solve's price lower bound
// computation signaled a possible overflow. Unlike PossibleOverflow (a
// Status value returned by the pre-flight per-arc guard), this can only
// be true alongside Optimal: the solve still completed, but its result is
// not guaranteed correct.
func (a *SimpleAssignment) OverflowRisk() bool { return a.overflowRisk }
