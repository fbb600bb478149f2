package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vlath/lsap/assign"
	"github.com/vlath/lsap/assign/graphs"
)

// ErrSyntax is returned, wrapped with the offending line, for any
// malformed line.
var ErrSyntax = errors.New("malformed line")

// ErrMissingProblemLine is returned when a node or arc line appears
// before the "p asn" problem line.
var ErrMissingProblemLine = errors.New("node or arc line precedes problem line")

// ErrEmpty is returned when the input contains no arc lines.
var ErrEmpty = errors.New("empty problem description")

// Parse reads a DIMACS assignment problem from r. If maximize is true,
// every arc cost is negated as it is read, so that solving the result
// for a minimum finds the original problem's maximum.
//
// Node descriptions ("n" lines) must all precede the first arc
// description, matching the format's grammar; the solver and graph are
// allocated lazily, once the left-node count is known, on the first arc
// line.
func Parse(r io.Reader, maximize bool, opts ...assign.Option) (*assign.Solver, *graphs.ListGraph, error) {
	scanner := bufio.NewScanner(r)

	var (
		haveProblem    bool
		nodesDescribed bool
		numLeftNodes   assign.NodeIndex
		graph          *graphs.ListGraph
		solver         *assign.Solver
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch line[0] {
		case 'c':
			continue

		case 'p':
			if len(fields) != 4 || fields[1] != "asn" {
				return nil, nil, fmt.Errorf("dimacs: %w: %q", ErrSyntax, line)
			}
			haveProblem = true

		case 'n':
			if !haveProblem {
				return nil, nil, fmt.Errorf("dimacs: %w: %q", ErrMissingProblemLine, line)
			}
			if nodesDescribed {
				return nil, nil, fmt.Errorf("dimacs: %w: node line after first arc line: %q", ErrSyntax, line)
			}
			if len(fields) != 2 {
				return nil, nil, fmt.Errorf("dimacs: %w: %q", ErrSyntax, line)
			}
			id, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, nil, fmt.Errorf("dimacs: %w: %q", ErrSyntax, line)
			}
			if assign.NodeIndex(id) > numLeftNodes {
				numLeftNodes = assign.NodeIndex(id)
			}

		case 'a':
			if !haveProblem {
				return nil, nil, fmt.Errorf("dimacs: %w: %q", ErrMissingProblemLine, line)
			}
			if !nodesDescribed {
				nodesDescribed = true
				graph = graphs.NewListGraph(numLeftNodes)
				solver = assign.New(graph, numLeftNodes, opts...)
			}
			if len(fields) != 4 {
				return nil, nil, fmt.Errorf("dimacs: %w: %q", ErrSyntax, line)
			}
			tail, errTail := strconv.Atoi(fields[1])
			head, errHead := strconv.Atoi(fields[2])
			cost, errCost := strconv.ParseInt(fields[3], 10, 64)
			if errTail != nil || errHead != nil || errCost != nil {
				return nil, nil, fmt.Errorf("dimacs: %w: %q", ErrSyntax, line)
			}
			arcCost := assign.CostValue(cost)
			if maximize {
				arcCost = -arcCost
			}
			arc := graph.AddArc(assign.NodeIndex(tail-1), assign.NodeIndex(head-1))
			solver.SetArcCost(arc, arcCost)

		default:
			return nil, nil, fmt.Errorf("dimacs: %w: unknown line type: %q", ErrSyntax, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("dimacs: %w", err)
	}
	if graph == nil {
		return nil, nil, fmt.Errorf("dimacs: %w", ErrEmpty)
	}
	return solver, graph, nil
}

// WriteProblem writes g's arcs and solver's costs back out in DIMACS
// assignment format, mirroring the same grammar Parse consumes.
func WriteProblem(w io.Writer, g assign.Graph, s *assign.Solver) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "p asn %d %d\n", g.NumNodes(), g.NumArcs()); err != nil {
		return fmt.Errorf("dimacs: %w", err)
	}
	for left := assign.NodeIndex(0); left < g.NumLeftNodes(); left++ {
		if _, err := fmt.Fprintf(bw, "n %d\n", left+1); err != nil {
			return fmt.Errorf("dimacs: %w", err)
		}
	}
	for left := assign.NodeIndex(0); left < g.NumLeftNodes(); left++ {
		for it := g.OutgoingArcs(left); it.Ok(); it.Next() {
			arc := it.Index()
			if _, err := fmt.Fprintf(bw, "a %d %d %d\n", left+1, g.Head(arc)+1, s.ArcCost(arc)); err != nil {
				return fmt.Errorf("dimacs: %w", err)
			}
		}
	}
	return bw.Flush()
}
