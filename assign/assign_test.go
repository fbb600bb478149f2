package assign_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/vlath/lsap/assign"
	"github.com/vlath/lsap/assign/graphs"
)

// buildComplete wires a complete bipartite graph with numLeft left nodes
// and the given cost matrix, cost[i][j] being the cost of arc (i, j).
func buildComplete(numLeft assign.NodeIndex, cost [][]assign.CostValue) (*graphs.ListGraph, *assign.Solver) {
	g := graphs.NewListGraph(numLeft)
	s := assign.New(g, numLeft)
	for i := assign.NodeIndex(0); i < numLeft; i++ {
		for j := assign.NodeIndex(0); j < numLeft; j++ {
			arc := g.AddArc(i, numLeft+j)
			s.SetArcCost(arc, cost[i][j])
		}
	}
	return g, s
}

// bruteForceOptimalCost returns the minimum-cost perfect matching's cost
// by trying every permutation of right-node assignments, for validating
// the solver on small hand-built instances.
func bruteForceOptimalCost(cost [][]assign.CostValue) assign.CostValue {
	n := len(cost)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	best := assign.CostValue(0)
	first := true
	var permute func(k int)
	permute = func(k int) {
		if k == n {
			var total assign.CostValue
			for i, j := range perm {
				total += cost[i][j]
			}
			if first || total < best {
				best = total
				first = false
			}
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			permute(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	permute(0)
	return best
}

type SolverSuite struct {
	suite.Suite
}

func (s *SolverSuite) TestTwoByTwoUniqueOptimum() {
	cost := [][]assign.CostValue{
		{0, 2},
		{3, 4},
	}
	_, solver := buildComplete(2, cost)
	require.True(s.T(), solver.ComputeAssignment())
	require.Equal(s.T(), assign.CostValue(4), solver.GetCost())
	require.Equal(s.T(), assign.NodeIndex(2), solver.GetMate(0))
	require.Equal(s.T(), assign.NodeIndex(3), solver.GetMate(1))
}

func (s *SolverSuite) TestTwoByTwoNegativeCosts() {
	cost := [][]assign.CostValue{
		{2, -10},
		{3, -20},
	}
	_, solver := buildComplete(2, cost)
	require.True(s.T(), solver.ComputeAssignment())
	require.Equal(s.T(), assign.CostValue(-18), solver.GetCost())
	require.Equal(s.T(), assign.NodeIndex(2), solver.GetMate(0))
	require.Equal(s.T(), assign.NodeIndex(3), solver.GetMate(1))
}

func (s *SolverSuite) TestTwoByTwoInfeasibleNoArcIntoNode2() {
	g := graphs.NewListGraph(2)
	solver := assign.New(g, 2)
	a0 := g.AddArc(0, 3)
	a1 := g.AddArc(0, 3)
	a2 := g.AddArc(1, 3)
	a3 := g.AddArc(1, 3)
	solver.SetArcCost(a0, 2)
	solver.SetArcCost(a1, -10)
	solver.SetArcCost(a2, 3)
	solver.SetArcCost(a3, -20)

	require.False(s.T(), solver.ComputeAssignment())
}

func (s *SolverSuite) TestEmptyModelIsOptimalWithZeroCost() {
	g := graphs.NewListGraph(0)
	solver := assign.New(g, 0)
	require.True(s.T(), solver.ComputeAssignment())
	require.Equal(s.T(), assign.CostValue(0), solver.GetCost())
}

func (s *SolverSuite) TestLeftNodeWithZeroOutgoingArcsIsInfeasible() {
	g := graphs.NewListGraph(2)
	solver := assign.New(g, 2)
	arc := g.AddArc(0, 2)
	solver.SetArcCost(arc, 1)
	// Left node 1 has no outgoing arcs at all.

	require.False(s.T(), solver.ComputeAssignment())
}

func (s *SolverSuite) TestUnbalancedNodeCountIsInfeasible() {
	g := graphs.NewListGraph(2)
	solver := assign.New(g, 2)
	arc := g.AddArc(0, 2)
	solver.SetArcCost(arc, 1)
	arc = g.AddArc(1, 2)
	solver.SetArcCost(arc, 1)
	// g.NumNodes() reports 4 (2*numLeft), but the assignment below builds a
	// graph where numLeft disagrees with what a caller hands the solver.
	badSolver := assign.New(&unbalancedGraph{ListGraph: g}, 2)
	badSolver.SetArcCost(arc, 1)
	require.False(s.T(), badSolver.ComputeAssignment())
}

func (s *SolverSuite) TestAllArcCostsEqual() {
	const common assign.CostValue = 7
	cost := [][]assign.CostValue{
		{common, common, common},
		{common, common, common},
		{common, common, common},
	}
	_, solver := buildComplete(3, cost)
	require.True(s.T(), solver.ComputeAssignment())
	require.Equal(s.T(), common*3, solver.GetCost())
}

func (s *SolverSuite) TestMultigraphPrefersCheaperParallelArc() {
	g := graphs.NewListGraph(2)
	solver := assign.New(g, 2)
	cheap := g.AddArc(0, 2)
	expensive := g.AddArc(0, 2)
	solver.SetArcCost(cheap, 1)
	solver.SetArcCost(expensive, 100)
	only := g.AddArc(1, 3)
	solver.SetArcCost(only, 1)

	require.True(s.T(), solver.ComputeAssignment())
	require.Equal(s.T(), cheap, solver.GetAssignmentArc(0))
	require.Equal(s.T(), assign.CostValue(2), solver.GetCost())
}

func (s *SolverSuite) TestMacholWienFamily() {
	const n = 10
	g := graphs.NewListGraph(n)
	solver := assign.New(g, n)
	for i := assign.NodeIndex(0); i < n; i++ {
		for j := assign.NodeIndex(0); j < n; j++ {
			arc := g.AddArc(i, n+j)
			solver.SetArcCost(arc, assign.CostValue(int64(i)*int64(j)))
		}
	}
	require.True(s.T(), solver.ComputeAssignment())
	for left := assign.NodeIndex(0); left < n; left++ {
		mate := solver.GetMate(left)
		s.Equalf(assign.NodeIndex(2*n-1), left+mate, "left %d should pair with right node %d", left, 2*n-1-int(left))
	}
}

func (s *SolverSuite) TestModifiedHungarianBenchmark() {
	cost := [][]assign.CostValue{
		{90, 76, 75, 80},
		{35, 85, 55, 65},
		{125, 95, 90, 105},
		{45, 110, 95, 115},
	}
	_, solver := buildComplete(4, cost)
	require.True(s.T(), solver.ComputeAssignment())
	require.Equal(s.T(), assign.CostValue(275), solver.GetCost())
	require.Equal(s.T(), assign.NodeIndex(7), solver.GetMate(0))
	require.Equal(s.T(), assign.NodeIndex(6), solver.GetMate(1))
	require.Equal(s.T(), assign.NodeIndex(5), solver.GetMate(2))
	require.Equal(s.T(), assign.NodeIndex(4), solver.GetMate(3))
}

func (s *SolverSuite) TestDeterministicAcrossRepeatedSolves() {
	cost := [][]assign.CostValue{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	}
	_, solver := buildComplete(3, cost)
	require.True(s.T(), solver.ComputeAssignment())
	first := solver.GetCost()
	require.True(s.T(), solver.ComputeAssignment())
	require.Equal(s.T(), first, solver.GetCost())
	require.Equal(s.T(), bruteForceOptimalCost(cost), first)
}

func (s *SolverSuite) TestMatchesBruteForceOnRandomSmallInstance() {
	cost := [][]assign.CostValue{
		{9, 4, 7, 2},
		{6, 1, 5, 8},
		{3, 9, 2, 4},
		{5, 3, 6, 1},
	}
	_, solver := buildComplete(4, cost)
	require.True(s.T(), solver.ComputeAssignment())
	require.Equal(s.T(), bruteForceOptimalCost(cost), solver.GetCost())
}

func (s *SolverSuite) TestFIFOActiveNodePolicyAgreesWithLIFO() {
	cost := [][]assign.CostValue{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	}
	g := graphs.NewListGraph(3)
	s2 := assign.New(g, 3, assign.WithActiveNodePolicy(assign.FIFOPolicy))
	for i := assign.NodeIndex(0); i < 3; i++ {
		for j := assign.NodeIndex(0); j < 3; j++ {
			arc := g.AddArc(i, 3+j)
			s2.SetArcCost(arc, cost[i][j])
		}
	}
	require.True(s.T(), s2.ComputeAssignment())
	require.Equal(s.T(), bruteForceOptimalCost(cost), s2.GetCost())
}

func (s *SolverSuite) TestDeferredGraphConstruction() {
	solver := assign.NewDeferred(2, 4)
	g := graphs.NewListGraph(2)
	arcs := [4]assign.ArcIndex{
		g.AddArc(0, 2),
		g.AddArc(0, 3),
		g.AddArc(1, 2),
		g.AddArc(1, 3),
	}
	costs := [4]assign.CostValue{0, 2, 3, 4}
	for i, arc := range arcs {
		solver.SetArcCost(arc, costs[i])
	}
	solver.SetGraph(g)

	require.True(s.T(), solver.ComputeAssignment())
	require.Equal(s.T(), assign.CostValue(4), solver.GetCost())
}

func (s *SolverSuite) TestSetGraphTwicePanics() {
	solver := assign.NewDeferred(1, 1)
	g := graphs.NewListGraph(1)
	solver.SetGraph(g)
	require.Panics(s.T(), func() { solver.SetGraph(g) })
}

func (s *SolverSuite) TestCostScalingDivisorBelowTwoPanics() {
	require.Panics(s.T(), func() {
		assign.New(graphs.NewListGraph(1), 1, assign.WithCostScalingDivisor(1))
	})
}

func (s *SolverSuite) TestStatsStringFormat() {
	cost := [][]assign.CostValue{
		{0, 2},
		{3, 4},
	}
	_, solver := buildComplete(2, cost)
	require.True(s.T(), solver.ComputeAssignment())
	require.Regexp(s.T(), `^\d+ refinements; \d+ relabelings; \d+ double pushes; \d+ pushes$`, solver.StatsString())
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}

// unbalancedGraph reports a node count that disagrees with 2*NumLeftNodes,
// simulating a malformed adapter so the solver's own balance check can be
// exercised directly rather than only via a correctly-built graph.
type unbalancedGraph struct {
	*graphs.ListGraph
}

func (g *unbalancedGraph) NumNodes() assign.NodeIndex { return g.ListGraph.NumNodes() + 1 }
