package graphs

import "github.com/vlath/lsap/assign"

// ListGraph is a static bipartite graph: numLeftNodes left nodes with ids
// [0, numLeftNodes), an equal number of right nodes with ids
// [numLeftNodes, 2*numLeftNodes), and arcs added one at a time via AddArc.
// Arc ids are assigned in insertion order and are stable thereafter.
type ListGraph struct {
	numLeftNodes assign.NodeIndex
	head         []assign.NodeIndex
	outgoing     [][]assign.ArcIndex
}

// NewListGraph allocates an empty graph with the given number of left
// (and, implicitly, right) nodes.
func NewListGraph(numLeftNodes assign.NodeIndex) *ListGraph {
	return &ListGraph{
		numLeftNodes: numLeftNodes,
		outgoing:     make([][]assign.ArcIndex, numLeftNodes),
	}
}

// AddArc appends an arc from tail to head and returns its id. tail must
// be a left node id; head must be a right node id.
func (g *ListGraph) AddArc(tail, head assign.NodeIndex) assign.ArcIndex {
	arc := assign.ArcIndex(len(g.head))
	g.head = append(g.head, head)
	g.outgoing[tail] = append(g.outgoing[tail], arc)
	return arc
}

// NumLeftNodes implements assign.Graph.
func (g *ListGraph) NumLeftNodes() assign.NodeIndex { return g.numLeftNodes }

// NumNodes implements assign.Graph.
func (g *ListGraph) NumNodes() assign.NodeIndex { return 2 * g.numLeftNodes }

// NumArcs implements assign.Graph.
func (g *ListGraph) NumArcs() assign.ArcIndex { return assign.ArcIndex(len(g.head)) }

// Head implements assign.Graph.
func (g *ListGraph) Head(arc assign.ArcIndex) assign.NodeIndex { return g.head[arc] }

// OutgoingArcs implements assign.Graph.
func (g *ListGraph) OutgoingArcs(left assign.NodeIndex) assign.ArcIterator {
	return &arcIterator{arcs: g.outgoing[left]}
}

// arcIterator walks a left node's outgoing arc ids in insertion order.
type arcIterator struct {
	arcs []assign.ArcIndex
	pos  int
}

func (it *arcIterator) Ok() bool { return it.pos < len(it.arcs) }

func (it *arcIterator) Next() { it.pos++ }

func (it *arcIterator) Index() assign.ArcIndex { return it.arcs[it.pos] }
