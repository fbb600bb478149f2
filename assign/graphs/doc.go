// Package graphs provides ListGraph, a concrete, static, arc-indexed
// bipartite graph adapter satisfying assign.Graph.
//
// ListGraph groups arcs by tail at construction time — arcs are appended
// to a left node's outgoing list in the order AddArc is called — so the
// adapter is already tail-grouped for cache locality, without a separate
// layout-optimization pass.
package graphs
