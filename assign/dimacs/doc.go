// Package dimacs reads and writes linear sum assignment problems in the
// DIMACS assignment text format:
// http://lpsolve.sourceforge.net/5.5/DIMACS_asn.htm
//
//	c comment line
//	p asn N A     problem header: N nodes, A arcs
//	n i           node i is on the left side
//	a tail head cost   arc, 1-based node ids
//
// Node ids in the file are 1-based; arc tails and heads are converted to
// the 0-based assign.NodeIndex space directly, matching how the source
// parser does it (AddArc(tail-1, head-1)) — left node ids therefore land
// in [0, numLeft) and right node ids in [numLeft, 2*numLeft) exactly as
// assign.Graph requires, with no separate remapping step.
package dimacs
