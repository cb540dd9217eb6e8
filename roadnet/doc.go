// Package roadnet holds the graph store: cities addressed by name and by a
// dense integer id, and the bidirectional road segments between them.
//
// A Network is a simple undirected graph (at most one Road per unordered
// pair of cities, no self-loops, no negative lengths) with per-edge
// metadata (Length, Year). Cities are immutable once created; the only
// mutation a Road supports after creation is a non-decreasing Year bump
// via RepairRoad.
//
// Network is not safe for concurrent use; callers serialize access (see
// the cli package, which processes one command at a time).
package roadnet
