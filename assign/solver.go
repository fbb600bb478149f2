package assign

import "math"

// zVector stores data indexed by right-side nodes only, the same memory
// optimization the source algorithm uses: right nodes occupy
// [numLeftNodes, 2*numLeftNodes), so a plain numLeftNodes-sized slice
// offset by numLeftNodes covers them without wasting space on the left
// half, which never needs explicit per-node storage.
type zVector[T any] struct {
	offset NodeIndex
	data   []T
}

func newZVector[T any](offset, size NodeIndex) zVector[T] {
	return zVector[T]{offset: offset, data: make([]T, size)}
}

func (z *zVector[T]) get(node NodeIndex) T { return z.data[node-z.offset] }

func (z *zVector[T]) set(node NodeIndex, v T) { z.data[node-z.offset] = v }

func (z *zVector[T]) reset(v T) {
	for i := range z.data {
		z.data[i] = v
	}
}

// Option configures a Solver at construction time.
type Option func(*Solver)

// WithCostScalingDivisor sets alpha, the divisor applied to epsilon at the
// end of every scale. Panics if alpha < 2, the same class of panic as
// SetCostScalingDivisor.
func WithCostScalingDivisor(alpha CostValue) Option {
	return func(s *Solver) { s.SetCostScalingDivisor(alpha) }
}

// WithActiveNodePolicy selects the active-node container's extraction
// order. Defaults to LIFOPolicy.
func WithActiveNodePolicy(policy ActiveNodePolicy) Option {
	return func(s *Solver) { s.activeNodePolicy = policy }
}

// WithDebug enables the debug-only invariant checks and the
// post-first-refinement infeasibility panic.
func WithDebug(debug bool) Option {
	return func(s *Solver) { s.Debug = debug }
}

// Solver computes a minimum-cost perfect matching on a bipartite graph of
// integer arc costs via cost-scaling push-relabel with double-push. A
// Solver is not safe for concurrent use, but independent Solvers over
// disjoint graphs need no synchronization between them.
type Solver struct {
	// Debug enables invariant assertions (epsilon-optimality, all-matched,
	// incidence) and turns a post-first-refinement infeasibility signal
	// from a quiet return into a panic. Leave false in production.
	Debug bool

	graph        Graph
	numLeftNodes NodeIndex

	costScalingFactor CostValue
	scaledArcCost     []CostValue
	cMaxScaled        CostValue

	price       zVector[CostValue]
	matchedArc  []ArcIndex
	matchedNode zVector[NodeIndex]

	activeNodePolicy ActiveNodePolicy
	activeNodes      activeNodeContainer

	alpha                CostValue
	epsilon              CostValue
	slackRelabelingPrice CostValue
	priceLowerBound      CostValue
	overflowRisk         bool

	incidenceOK bool
	totalExcess int64

	stats     Stats
	iterStats Stats
}

// newSolver allocates the fields that depend only on numLeftNodes; the
// caller fills in graph and scaledArcCost afterward, since those differ
// between New and NewDeferred.
func newSolver(numLeftNodes NodeIndex, opts ...Option) *Solver {
	s := &Solver{
		numLeftNodes:      numLeftNodes,
		costScalingFactor: CostValue(numLeftNodes) + 1,
		alpha:             5,
		activeNodePolicy:  LIFOPolicy,
		matchedArc:        make([]ArcIndex, numLeftNodes),
		price:             newZVector[CostValue](numLeftNodes, numLeftNodes),
		matchedNode:       newZVector[NodeIndex](numLeftNodes, numLeftNodes),
	}
	for i := range s.matchedArc {
		s.matchedArc[i] = NilArc
	}
	for _, opt := range opts {
		opt(s)
	}
	s.activeNodes = newActiveNodeContainer(s.activeNodePolicy)
	return s
}

// New builds a Solver over a graph, which may still be under construction:
// scaledArcCost grows on demand as SetArcCost is called, so arcs may be
// added to graph (and their costs set) either before or after New returns.
func New(graph Graph, numLeftNodes NodeIndex, opts ...Option) *Solver {
	s := newSolver(numLeftNodes, opts...)
	s.graph = graph
	s.scaledArcCost = make([]CostValue, graph.NumArcs())
	return s
}

// NewDeferred builds a Solver before its graph exists, for callers that
// collect arc costs first and construct the graph afterward. The graph
// must be supplied via SetGraph before FinalizeSetup or ComputeAssignment
// is called.
func NewDeferred(numLeftNodes NodeIndex, numArcs ArcIndex, opts ...Option) *Solver {
	s := newSolver(numLeftNodes, opts...)
	s.scaledArcCost = make([]CostValue, numArcs)
	return s
}

// SetGraph supplies the graph for a Solver built with NewDeferred. Panics
// if called twice, or if the Solver was built with New.
func (s *Solver) SetGraph(graph Graph) {
	if s.graph != nil {
		panic("assign: SetGraph called more than once, or on a Solver built with New")
	}
	s.graph = graph
}

// SetCostScalingDivisor sets alpha, the amount epsilon is divided by at
// the end of every scale (default 5). Panics if alpha < 2: a schedule
// that doesn't strictly shrink never terminates, so this is a programmer
// error rather than a runtime condition.
func (s *Solver) SetCostScalingDivisor(alpha CostValue) {
	if alpha < 2 {
		panic("assign: cost scaling divisor must be >= 2")
	}
	s.alpha = alpha
}

// SetArcCost records arc's user-supplied cost, scaled by costScalingFactor
// (numLeftNodes + 1) for the duration of solving. Grows scaledArcCost if
// arc wasn't covered by the arc count known at construction time (New
// called on a graph still being built, rather than NewDeferred's
// upfront numArcs).
func (s *Solver) SetArcCost(arc ArcIndex, cost CostValue) {
	if int(arc) >= len(s.scaledArcCost) {
		grown := make([]CostValue, arc+1)
		copy(grown, s.scaledArcCost)
		s.scaledArcCost = grown
	}
	scaled := cost * s.costScalingFactor
	s.scaledArcCost[arc] = scaled
	abs := scaled
	if abs < 0 {
		abs = -abs
	}
	if abs > s.cMaxScaled {
		s.cMaxScaled = abs
	}
}

// ArcCost returns arc's original, unscaled cost.
func (s *Solver) ArcCost(arc ArcIndex) CostValue {
	scaled := s.scaledArcCost[arc]
	cost := scaled / s.costScalingFactor
	if cost*s.costScalingFactor != scaled {
		panic("assign: scaled arc cost is not a multiple of the cost scaling factor")
	}
	return cost
}

// initialEpsilon is max(cMaxScaled, 2): even a zero-cost model runs one
// refinement, which is what turns an empty active set into a verified
// perfect matching.
func (s *Solver) initialEpsilon() CostValue {
	if s.cMaxScaled > 2 {
		return s.cMaxScaled
	}
	return 2
}

// computePriceLowerBound simulates the entire epsilon schedule from
// initialEpsilon down to 1, summing 2*priceChangeBound per scale in
// double precision, and returns the resulting pmin together with whether
// the sum stayed within int64 range.
func (s *Solver) computePriceLowerBound() (CostValue, bool) {
	eps := s.initialEpsilon()
	sum := 0.0
	for eps > 1 {
		newEps := s.newEpsilon(eps)
		bound, _ := s.priceChangeBound(eps, newEps)
		sum += 2 * float64(bound)
		eps = newEps
	}
	limit := float64(math.MaxInt64)
	if sum > limit {
		return -math.MaxInt64, false
	}
	return -CostValue(sum), true
}

// FinalizeSetup resets all per-solve state (prices, matching, stats) and
// recomputes the epsilon schedule's bounds from cMaxScaled. Idempotent:
// safe to call before every ComputeAssignment, including on a reused
// Solver whose arc costs were changed via SetArcCost since the last
// solve — cMaxScaled only ever grows as SetArcCost is called, so a solve
// after costs shrink still uses a safe, if non-minimal, epsilon schedule
// (the same monotonic-max convention the original algorithm uses).
//
// Returns false iff the pmin computation signaled an overflow risk; this
// does not by itself prevent solving from proceeding (see OverflowRisk).
func (s *Solver) FinalizeSetup() bool {
	s.price.reset(0)
	s.matchedNode.reset(NilNode)
	for i := range s.matchedArc {
		s.matchedArc[i] = NilArc
	}
	s.stats.clear()
	s.iterStats.clear()
	s.activeNodes = newActiveNodeContainer(s.activeNodePolicy)

	s.incidenceOK = true
	for left := NodeIndex(0); left < s.numLeftNodes; left++ {
		if !s.graph.OutgoingArcs(left).Ok() {
			s.incidenceOK = false
			break
		}
	}

	bound, inRange := s.computePriceLowerBound()
	s.priceLowerBound = bound
	s.overflowRisk = !inRange
	s.epsilon = s.initialEpsilon()
	return inRange
}

// ComputeAssignment runs FinalizeSetup, then the cost-scaling loop:
// repeatedly advance epsilon and refine until epsilon reaches 1. Returns
// false iff the instance is infeasible (no perfect matching exists, an
// unbalanced node count, a left node with no outgoing arc, or — in a
// refinement after the first — a right-node price underflow, which is
// either honest infeasibility or an internal bug; see refine).
func (s *Solver) ComputeAssignment() bool {
	s.FinalizeSetup()
	if s.graph.NumNodes() != 2*s.numLeftNodes {
		return false
	}
	if !s.incidenceOK {
		return false
	}
	if s.Debug && !s.epsilonOptimal() {
		panic("assign: invariant violated: not epsilon-optimal after FinalizeSetup")
	}
	for s.epsilon > 1 {
		s.updateEpsilon()
		if !s.refine() {
			return false
		}
		s.reportAndAccumulateStats()
		if s.Debug {
			if !s.epsilonOptimal() {
				panic("assign: invariant violated: not epsilon-optimal after refine")
			}
			if !s.allMatched() {
				panic("assign: invariant violated: not all nodes matched after refine")
			}
		}
	}
	return true
}

// OverflowRisk reports whether the last FinalizeSetup (directly, or via
// ComputeAssignment) detected that pmin's theoretical value would not fit
// in int64. Solving still proceeds with a clamped bound in that case; a
// caller such as the simple wrapper may choose to surface this as a
// warning alongside an Optimal result.
func (s *Solver) OverflowRisk() bool { return s.overflowRisk }

// GetCost returns the total unscaled cost of the matching found by the
// most recent successful ComputeAssignment.
//
// Precondition: the last ComputeAssignment returned true.
func (s *Solver) GetCost() CostValue {
	var total CostValue
	for left := NodeIndex(0); left < s.numLeftNodes; left++ {
		total += s.ArcCost(s.matchedArc[left])
	}
	return total
}

// GetAssignmentArc returns the arc matching left node u, or NilArc if u
// is unmatched.
func (s *Solver) GetAssignmentArc(u NodeIndex) ArcIndex { return s.matchedArc[u] }

// GetMate returns node's mate on the other side of the bipartition, or
// NilNode if unmatched. Accepts either a left or a right node.
func (s *Solver) GetMate(node NodeIndex) NodeIndex {
	if node < s.numLeftNodes {
		arc := s.matchedArc[node]
		if arc == NilArc {
			return NilNode
		}
		return s.graph.Head(arc)
	}
	return s.matchedNode.get(node)
}

// Stats returns the cumulative operation counters for the most recent
// ComputeAssignment.
func (s *Solver) Stats() Stats { return s.stats }

// StatsString renders Stats in the canonical reporting format.
func (s *Solver) StatsString() string { return s.stats.String() }
