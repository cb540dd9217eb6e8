// Package routeindex implements the route-edge index: for every edge
// currently present in the graph, the multiset of route ids that
// traverse it. Attach/Detach are O(1) amortized; RoutesThrough is linear
// in the number of routes on that edge.
//
// The index is a plain multiset (per-edge counts), not a set: attaching
// the same route to an edge twice takes two detaches to clear it.
// Snapshot and Restore copy and reinstate the whole index exactly.
package routeindex
