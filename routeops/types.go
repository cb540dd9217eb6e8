package routeops

import (
	"github.com/katalvlaran/roadmap/roadnet"
	"github.com/katalvlaran/roadmap/routeindex"
	"github.com/katalvlaran/roadmap/routetable"
)

// Engine binds together the graph store, route table, and route-edge index
// and exposes the route lifecycle operations as a single unit of
// transactional work per call.
type Engine struct {
	Net   *roadnet.Network
	Table *routetable.Table
	Index *routeindex.Index
}

// New constructs an Engine over the given (already-initialized) components.
func New(net *roadnet.Network, table *routetable.Table, index *routeindex.Index) *Engine {
	return &Engine{Net: net, Table: table, Index: index}
}

func validRouteID(id int) error {
	if id < routetable.MinRouteID || id > routetable.MaxRouteID {
		return ErrBadRouteID
	}
	return nil
}

// forbiddenSetExcept builds the V_f forbidden-vertex set from a route's
// sequence, excluding the named vertices (typically an endpoint that the
// search is allowed to pass through as its own src/dst).
func forbiddenSetExcept(seq []int, except ...int) map[int]bool {
	skip := make(map[int]bool, len(except))
	for _, v := range except {
		skip[v] = true
	}
	out := make(map[int]bool, len(seq))
	for _, v := range seq {
		if !skip[v] {
			out[v] = true
		}
	}
	return out
}

func contains(seq []int, v int) bool {
	for _, x := range seq {
		if x == v {
			return true
		}
	}
	return false
}
