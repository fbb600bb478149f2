package assign

import "fmt"

// Stats holds cumulative counters for the operations the solver performs.
// A fresh per-refinement Stats (Solver.iterStats) accumulates during one refinement and is folded
// into the cumulative total when the refinement completes.
type Stats struct {
	Refinements  int64
	Relabelings  int64
	DoublePushes int64
	Pushes       int64
}

// add folds that's counters into s.
func (s *Stats) add(that Stats) {
	s.Refinements += that.Refinements
	s.Relabelings += that.Relabelings
	s.DoublePushes += that.DoublePushes
	s.Pushes += that.Pushes
}

func (s *Stats) clear() { *s = Stats{} }

// String renders stats in the canonical "<R> refinements; <Rl>
// relabelings; <Dp> double pushes; <Pp> pushes" format.
func (s Stats) String() string {
	return fmt.Sprintf("%d refinements; %d relabelings; %d double pushes; %d pushes",
		s.Refinements, s.Relabelings, s.DoublePushes, s.Pushes)
}
