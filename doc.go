// Package lsap (lvlath/lsap) solves the linear sum assignment problem —
// minimum-cost perfect bipartite matching on integer arc costs — using
// Goldberg & Kennedy's cost-scaling push-relabel algorithm.
//
// 🚀 What is lsap?
//
//	A focused, zero-surprise implementation of the assignment problem
//	core, plus the thin layers a real program needs around it:
//
//	  • assign/         — the cost-scaling push-relabel solver itself
//	  • assign/graphs/   — a concrete bipartite arc-graph adapter
//	  • assign/simple/   — an arc-list builder wrapper for casual callers
//	  • assign/dimacs/   — DIMACS assignment-format parsing and printing
//	  • cmd/lsap/        — a command-line front-end over all of the above
//
// ✨ Why choose lsap?
//
//   - Deterministic   — same instance, same arc order ⇒ same matching
//   - Rock-solid      — integer arithmetic throughout, overflow is detected
//   - Pure Go         — no cgo; the solver itself has zero third-party deps
//
// Quick ASCII example — a 2×2 assignment:
//
//	left 0 ──0── right 2
//	left 0 ──2── right 3
//	left 1 ──3── right 2
//	left 1 ──4── right 3
//
// yields the unique optimal matching 0→2, 1→3 at cost 4.
//
// See assign/doc.go for the algorithm itself, and DESIGN.md for the
// grounding of every package in this module.
package lsap
