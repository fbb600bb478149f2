package assign

// NodeIndex identifies a node in the bipartite graph. Left nodes occupy
// [0, numLeftNodes); right nodes occupy [numLeftNodes, 2*numLeftNodes).
type NodeIndex int32

// ArcIndex identifies an arc, always directed from a left node to a right
// node. Arc ids are stable and lie in [0, numArcs).
type ArcIndex int32

// CostValue is the integer type used for arc costs, scaled costs, and
// node prices throughout the solver.
type CostValue int64

// NilNode is the sentinel "no such node" value, used for unmatched
// right-side nodes.
const NilNode NodeIndex = -1

// NilArc is the sentinel "no such arc" value, used for unmatched left-side
// nodes and to signal that the best-arc selector found no outgoing arc.
const NilArc ArcIndex = -1

// ArcIterator is a lazy, restartable, finite sequence over the outgoing
// arcs of a single left node. A fresh iterator for the same node must
// yield the same arcs in the same order every time; this determinism is
// what makes BestArcAndGap's tie-breaking deterministic.
//
//	it := g.OutgoingArcs(left)
//	for ; it.Ok(); it.Next() {
//	    arc := it.Index()
//	    ...
//	}
type ArcIterator interface {
	// Ok reports whether Index is valid; false once the sequence is
	// exhausted.
	Ok() bool
	// Next advances the iterator.
	Next()
	// Index returns the current arc id. Only valid while Ok() is true.
	Index() ArcIndex
}

// Graph is the capability set Solver requires of its underlying bipartite
// graph. Solver never asks for incoming or reverse arcs, never mutates the
// graph, and does not own it; it is borrowed for the duration of a solve.
//
// Implementations are external collaborators: Solver is written against
// this interface alone so that any graph representation — static,
// adjacency-list, or otherwise — can supply it. See package assign/graphs
// for one concrete adapter.
type Graph interface {
	// NumLeftNodes returns the number of nodes on the left side.
	NumLeftNodes() NodeIndex
	// NumNodes returns the total node count. A well-formed bipartite
	// instance has NumNodes() == 2*NumLeftNodes().
	NumNodes() NodeIndex
	// NumArcs returns the number of arcs.
	NumArcs() ArcIndex
	// Head returns the right-side node an arc points to.
	Head(arc ArcIndex) NodeIndex
	// OutgoingArcs returns a fresh iterator over the arcs leaving the
	// given left node.
	OutgoingArcs(left NodeIndex) ArcIterator
}
