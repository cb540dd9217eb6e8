package routeops

import (
	"errors"

	"github.com/katalvlaran/roadmap/pathfind"
)

// RemoveRoad deletes the road between uName and vName, repairing every
// route that currently traverses it.
//
// For each affected route, a replacement is sought from v to u with the
// removed edge forbidden and every other vertex of that route excluded
// from the search (only u and v themselves remain eligible). If any
// affected route has no feasible or no unique replacement, the whole call
// fails and neither the graph, the route table, nor the route-edge index
// is touched — all replacement subpaths are computed and validated before
// any commit, building every replacement off to the side and committing
// only once every route has a confirmed repair.
func (e *Engine) RemoveRoad(uName, vName string) error {
	u, ok := e.Net.CityID(uName)
	if !ok {
		return ErrCityNotFound
	}
	v, ok := e.Net.CityID(vName)
	if !ok {
		return ErrCityNotFound
	}
	if !e.Net.HasRoad(u, v) {
		return ErrRoadNotFound
	}

	affected := e.Index.RoutesThrough(u, v)
	type patch struct {
		routeID int
		newSeq  []int
		oriented []int // the replacement subpath spliced in, for index attachment
	}
	patches := make([]patch, 0, len(affected))

	forbiddenEdge := pathfind.EdgeRef{A: u, B: v}
	for _, routeID := range affected {
		seq, ok := e.Table.Get(routeID)
		if !ok {
			continue // index and table disagree only if invariants are broken; skip defensively
		}
		pos, orient := locateEdge(seq, u, v)
		if orient == orientNone {
			continue
		}

		res, err := pathfind.Run(e.Net, v, u,
			pathfind.WithForbiddenVertices(forbiddenSetExcept(seq, u, v)),
			pathfind.WithForbiddenEdge(forbiddenEdge))
		if err != nil {
			if errors.Is(err, pathfind.ErrAmbiguous) {
				return ErrAmbiguous
			}
			return ErrUnreachable
		}

		subpath := res.Path(v, u) // v...u
		var oriented []int
		if orient == orientUV {
			oriented = reversed(subpath) // u...v
		} else {
			oriented = subpath // v...u, matches seq[pos]==v
		}

		newSeq := make([]int, 0, len(seq)-2+len(oriented))
		newSeq = append(newSeq, seq[:pos]...)
		newSeq = append(newSeq, oriented...)
		newSeq = append(newSeq, seq[pos+2:]...)
		patches = append(patches, patch{routeID: routeID, newSeq: newSeq, oriented: oriented})
	}

	// All replacements validated; commit.
	for _, p := range patches {
		e.Index.Detach(u, v, p.routeID)
		if err := e.Table.Replace(p.routeID, p.newSeq); err != nil {
			// Cannot happen: routeID was Present (fetched via Table.Get above).
			return err
		}
		e.Index.AttachPath(p.oriented, p.routeID)
	}

	if err := e.Net.RemoveRoad(u, v); err != nil {
		return err
	}
	e.Index.EraseEdge(u, v)
	return nil
}

type edgeOrientation int

const (
	orientNone edgeOrientation = iota
	orientUV                   // seq[pos] == u, seq[pos+1] == v
	orientVU                   // seq[pos] == v, seq[pos+1] == u
)

// locateEdge finds the consecutive pair {u,v} in seq and reports its
// orientation as stored.
func locateEdge(seq []int, u, v int) (int, edgeOrientation) {
	for i := 0; i+1 < len(seq); i++ {
		switch {
		case seq[i] == u && seq[i+1] == v:
			return i, orientUV
		case seq[i] == v && seq[i+1] == u:
			return i, orientVU
		}
	}
	return -1, orientNone
}

func reversed(seq []int) []int {
	out := make([]int, len(seq))
	for i, v := range seq {
		out[len(seq)-1-i] = v
	}
	return out
}
