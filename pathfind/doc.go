// Package pathfind implements a lexicographic shortest-path engine: a
// Bellman-Ford-style relaxation over a FIFO worklist, ordering paths
// first by total length (ascending) and, on a length tie, by the path's
// bottleneck year (descending — a newer bottleneck wins).
//
// The engine additionally detects ambiguity: whether some other feasible
// path achieves the exact same (length, bottleneck year) pair. Route
// operations must refuse to act on an ambiguous shortest path, so the
// engine surfaces ErrAmbiguous as a first-class outcome rather than
// silently picking one of several tied paths.
//
// The shape follows a functional-options/runner-struct design: a
// DefaultOptions constructor, functional Option values, and a private
// runner struct holding the mutable per-call state, sized by
// graph.CityCount().
package pathfind
