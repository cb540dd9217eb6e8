package routeindex

// Edge is an unordered pair of city ids, normalized so U <= V, used as a
// map key into the index.
type Edge struct {
	U, V int
}

// NewEdge builds a normalized Edge from two city ids in either order.
func NewEdge(a, b int) Edge {
	if a <= b {
		return Edge{U: a, V: b}
	}
	return Edge{U: b, V: a}
}

// Index maps each existing edge to the multiset of route ids traversing it,
// represented as route id -> occurrence count. The zero value is not
// usable; use New.
type Index struct {
	entries map[Edge]map[int]int
}

// New returns an empty Index.
func New() *Index {
	return &Index{entries: make(map[Edge]map[int]int)}
}

// Attach records that routeID traverses the edge {a,b}. Calling it more
// than once for the same route/edge increments the occurrence count
// rather than erroring; this supports a route transiently being attached
// to the same edge twice while a repair is staged and possibly rolled
// back.
func (ix *Index) Attach(a, b, routeID int) {
	e := NewEdge(a, b)
	bucket, ok := ix.entries[e]
	if !ok {
		bucket = make(map[int]int)
		ix.entries[e] = bucket
	}
	bucket[routeID]++
}

// Detach removes one occurrence of routeID from the edge {a,b}. It is a
// no-op if routeID was not attached to that edge.
func (ix *Index) Detach(a, b, routeID int) {
	e := NewEdge(a, b)
	bucket, ok := ix.entries[e]
	if !ok {
		return
	}
	if bucket[routeID] <= 1 {
		delete(bucket, routeID)
	} else {
		bucket[routeID]--
	}
	if len(bucket) == 0 {
		delete(ix.entries, e)
	}
}

// RoutesThrough returns the distinct route ids currently attached to edge
// {a,b}, in unspecified order.
func (ix *Index) RoutesThrough(a, b int) []int {
	bucket, ok := ix.entries[NewEdge(a, b)]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(bucket))
	for routeID := range bucket {
		out = append(out, routeID)
	}
	return out
}

// EraseEdge drops the entire index entry for edge {a,b}, regardless of
// what routes were attached. Used once a road is actually removed from
// the graph.
func (ix *Index) EraseEdge(a, b int) {
	delete(ix.entries, NewEdge(a, b))
}

// AttachPath attaches routeID to every consecutive pair in seq.
func (ix *Index) AttachPath(seq []int, routeID int) {
	for i := 0; i+1 < len(seq); i++ {
		ix.Attach(seq[i], seq[i+1], routeID)
	}
}

// DetachPath detaches routeID from every consecutive pair in seq.
func (ix *Index) DetachPath(seq []int, routeID int) {
	for i := 0; i+1 < len(seq); i++ {
		ix.Detach(seq[i], seq[i+1], routeID)
	}
}

// Snapshot returns a deep copy of the index, which Restore can later
// reinstate exactly.
func (ix *Index) Snapshot() *Index {
	clone := &Index{entries: make(map[Edge]map[int]int, len(ix.entries))}
	for e, bucket := range ix.entries {
		cloned := make(map[int]int, len(bucket))
		for routeID, count := range bucket {
			cloned[routeID] = count
		}
		clone.entries[e] = cloned
	}
	return clone
}

// Restore replaces the index's contents with a previously taken Snapshot.
func (ix *Index) Restore(snapshot *Index) {
	ix.entries = snapshot.entries
}
