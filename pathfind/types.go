package pathfind

import (
	"errors"
)

// Sentinel errors returned by Run.
var (
	// ErrEmptyGraph indicates the supplied graph view has no cities.
	ErrEmptyGraph = errors.New("pathfind: graph has no cities")

	// ErrBadVertex indicates src or dst is out of range for the graph.
	ErrBadVertex = errors.New("pathfind: vertex id out of range")

	// ErrNotFound indicates dst is unreachable from src (or src == dst).
	ErrNotFound = errors.New("pathfind: no path found")

	// ErrAmbiguous indicates two or more distinct feasible paths tie on
	// (total length, bottleneck year).
	ErrAmbiguous = errors.New("pathfind: shortest path is ambiguous")
)

// EdgeRef names an unordered edge by its two city ids, used to forbid a
// single edge from participating in the search (route repair excludes the
// edge being removed).
type EdgeRef struct {
	A, B int
}

func (e EdgeRef) matches(x, y int) bool {
	return (e.A == x && e.B == y) || (e.A == y && e.B == x)
}

// Options configures one Run call.
type Options struct {
	Forbidden    map[int]bool // vertices the path may not traverse (excludes src, dst)
	ForbiddenEdge *EdgeRef    // a single edge the path may not use, or nil
}

// Option is a functional option for Run.
type Option func(*Options)

// WithForbiddenVertices sets the forbidden-vertex set V_f.
func WithForbiddenVertices(vs map[int]bool) Option {
	return func(o *Options) { o.Forbidden = vs }
}

// WithForbiddenEdge excludes a single edge from the search.
func WithForbiddenEdge(e EdgeRef) Option {
	return func(o *Options) { o.ForbiddenEdge = &e }
}

// DefaultOptions returns an Options value with no forbidden vertices or edge.
func DefaultOptions() Options {
	return Options{}
}

// Result is the successful outcome of Run: the predecessor array of the
// uniquely-chosen best path, plus its cost.
type Result struct {
	Prev           []int // Prev[v] = predecessor of v on the best path; Prev[src] = -1
	TotalLength    uint64
	BottleneckYear int32
}

// Path reconstructs the city sequence from src to dst using r.Prev.
func (r Result) Path(src, dst int) []int {
	var rev []int
	for v := dst; v != -1; {
		rev = append(rev, v)
		if v == src {
			break
		}
		v = r.Prev[v]
	}
	// rev is dst...src; reverse in place.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
