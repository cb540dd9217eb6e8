package pathfind

import (
	"math"

	"github.com/katalvlaran/roadmap/roadnet"
)

// infDist marks a vertex not yet reached.
const infDist = math.MaxUint64

// infYear marks a vertex whose bottleneck year has not yet been set by any
// relaxation: a year no real road year can reach.
const infYear = int64(math.MaxInt64)

// Run computes the lexicographically-preferred path from src to dst: first
// by ascending total length, then (on a tie) by descending bottleneck
// year. It reports ErrNotFound if dst is unreachable (including the
// src == dst case) and ErrAmbiguous if some other feasible path ties the
// chosen one on both components of the cost.
func Run(g *roadnet.Network, src, dst int, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.CityCount()
	if n == 0 {
		return Result{}, ErrEmptyGraph
	}
	if src < 0 || src >= n || dst < 0 || dst >= n {
		return Result{}, ErrBadVertex
	}
	if src == dst {
		return Result{}, ErrNotFound
	}

	r := &runner{
		g:         g,
		forbidden: cfg.Forbidden,
		forbiddenEdge: cfg.ForbiddenEdge,
		dist:      make([]uint64, n),
		yearBest:  make([]int64, n),
		prev:      make([]int, n),
		ambiguous: make([]bool, n),
		inQueue:   make([]bool, n),
	}
	r.init(src)
	r.process()

	if r.dist[dst] == infDist {
		return Result{}, ErrNotFound
	}

	result := Result{
		Prev:           r.prev,
		TotalLength:    r.dist[dst],
		BottleneckYear: int32(r.yearBest[dst]),
	}

	// Walk the chosen path back from dst to src; any ambiguous vertex on
	// it (other than src, which has no predecessor) means some other path
	// ties the same cost.
	for v := dst; v != src; v = r.prev[v] {
		if r.ambiguous[v] {
			return Result{}, ErrAmbiguous
		}
		if r.prev[v] == -1 {
			// Unreachable guard; should not happen since dist[dst] < inf.
			return Result{}, ErrNotFound
		}
	}

	return result, nil
}

type runner struct {
	g             *roadnet.Network
	forbidden     map[int]bool
	forbiddenEdge *EdgeRef

	dist      []uint64
	yearBest  []int64
	prev      []int
	ambiguous []bool

	queue   []int
	inQueue []bool
}

func (r *runner) init(src int) {
	for v := range r.dist {
		r.dist[v] = infDist
		r.yearBest[v] = infYear
		r.prev[v] = -1
	}
	r.dist[src] = 0
	r.queue = append(r.queue, src)
	r.inQueue[src] = true
}

func (r *runner) process() {
	for len(r.queue) > 0 {
		x := r.queue[0]
		r.queue = r.queue[1:]
		r.inQueue[x] = false

		if r.forbidden[x] {
			continue
		}

		for _, nb := range r.g.Neighbors(x) {
			y := nb.To
			if r.forbiddenEdge != nil && r.forbiddenEdge.matches(x, y) {
				continue
			}

			newDist := r.dist[x] + uint64(nb.Length)
			newYear := r.yearBest[x]
			if int64(nb.Year) < newYear {
				newYear = int64(nb.Year)
			}

			switch {
			case newDist < r.dist[y]:
				r.dist[y] = newDist
				r.yearBest[y] = newYear
				r.prev[y] = x
				r.ambiguous[y] = false
				r.enqueue(y)
			case newDist == r.dist[y] && newYear > r.yearBest[y]:
				r.yearBest[y] = newYear
				r.prev[y] = x
				r.ambiguous[y] = false
				r.enqueue(y)
			case newDist == r.dist[y] && newYear == r.yearBest[y] && x != r.prev[y]:
				r.ambiguous[y] = true
			}
		}
	}
}

func (r *runner) enqueue(v int) {
	if !r.inQueue[v] {
		r.inQueue[v] = true
		r.queue = append(r.queue, v)
	}
}
