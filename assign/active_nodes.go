package assign

// ActiveNodePolicy selects the extraction order of the active-node
// container. Both policies are correct and find a matching of the same
// (optimal) cost; when several optimal matchings exist, the two policies
// may return different ones, since ties are broken in pop order. Per the Goldberg-Kennedy implementation this is wired up, LIFO is
// typically faster and is the default.
type ActiveNodePolicy int

const (
	// LIFOPolicy pops the most recently pushed node first (a stack).
	LIFOPolicy ActiveNodePolicy = iota
	// FIFOPolicy pops the earliest pushed node first (a queue).
	FIFOPolicy
)

// activeNodeContainer holds the set of left nodes currently carrying unit
// excess (i.e., unmatched). Extraction order is a policy choice and is not
// observable outside the solver.
type activeNodeContainer interface {
	empty() bool
	push(node NodeIndex)
	pop() NodeIndex
}

// newActiveNodeContainer builds the container for the given policy. The
// choice is deliberately not baked into the Solver's type — making Solver
// generic over the container would complicate testing for a negligible
// performance gain.
func newActiveNodeContainer(policy ActiveNodePolicy) activeNodeContainer {
	switch policy {
	case FIFOPolicy:
		return &activeNodeQueue{}
	default:
		return &activeNodeStack{}
	}
}

// activeNodeStack is a LIFO active-node container.
type activeNodeStack struct {
	v []NodeIndex
}

func (s *activeNodeStack) empty() bool { return len(s.v) == 0 }

func (s *activeNodeStack) push(node NodeIndex) { s.v = append(s.v, node) }

func (s *activeNodeStack) pop() NodeIndex {
	last := len(s.v) - 1
	node := s.v[last]
	s.v = s.v[:last]
	return node
}

// activeNodeQueue is a FIFO active-node container, backed by a slice with
// a head cursor. The backing slice is reset once fully drained so it
// doesn't grow without bound across refinements.
type activeNodeQueue struct {
	v    []NodeIndex
	head int
}

func (q *activeNodeQueue) empty() bool { return q.head >= len(q.v) }

func (q *activeNodeQueue) push(node NodeIndex) {
	if q.head > 0 && q.head == len(q.v) {
		q.v = q.v[:0]
		q.head = 0
	}
	q.v = append(q.v, node)
}

func (q *activeNodeQueue) pop() NodeIndex {
	node := q.v[q.head]
	q.head++
	return node
}
