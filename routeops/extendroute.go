package routeops

import (
	"errors"

	"github.com/katalvlaran/roadmap/pathfind"
)

// ExtendRoute grows routeID at whichever end yields the lexicographically
// preferred extension to wName.
//
// Fails if the route is absent, wName is missing, w is already on the
// route (including either current endpoint), either end's search reports
// an ambiguous path, neither end is reachable, or both ends tie exactly on
// (length, bottleneck year).
func (e *Engine) ExtendRoute(routeID int, wName string) error {
	seq, ok := e.Table.Get(routeID)
	if !ok {
		return ErrRouteNotFound
	}
	w, ok := e.Net.CityID(wName)
	if !ok {
		return ErrCityNotFound
	}
	if contains(seq, w) {
		return ErrVertexOnRoute
	}

	first, last := seq[0], seq[len(seq)-1]

	// Pass A: w -> first, forbidding every route vertex except first.
	resA, errA := pathfind.Run(e.Net, w, first, pathfind.WithForbiddenVertices(forbiddenSetExcept(seq, first)))
	// Pass B: w -> last, forbidding every route vertex except last.
	resB, errB := pathfind.Run(e.Net, w, last, pathfind.WithForbiddenVertices(forbiddenSetExcept(seq, last)))

	foundA := errA == nil
	foundB := errB == nil

	switch {
	case foundA && foundB:
		newSeq, err := choosePreferred(seq, w, first, last, resA, resB)
		if err != nil {
			return err
		}
		return e.commitExtend(routeID, seq, newSeq)

	case foundA && !foundB:
		if errors.Is(errB, pathfind.ErrAmbiguous) {
			return ErrAmbiguous
		}
		newSeq := prependPath(seq, resA.Path(w, first))
		return e.commitExtend(routeID, seq, newSeq)

	case foundB && !foundA:
		if errors.Is(errA, pathfind.ErrAmbiguous) {
			return ErrAmbiguous
		}
		newSeq := appendPath(seq, resB.Path(w, last))
		return e.commitExtend(routeID, seq, newSeq)

	default:
		if errors.Is(errA, pathfind.ErrAmbiguous) || errors.Is(errB, pathfind.ErrAmbiguous) {
			return ErrAmbiguous
		}
		return ErrUnreachable
	}
}

// choosePreferred picks between two found extensions by (length, then
// bottleneck year descending); an exact tie on both fails as ambiguous.
func choosePreferred(seq []int, w, first, last int, resA, resB pathfind.Result) ([]int, error) {
	switch {
	case resA.TotalLength < resB.TotalLength:
		return prependPath(seq, resA.Path(w, first)), nil
	case resB.TotalLength < resA.TotalLength:
		return appendPath(seq, resB.Path(w, last)), nil
	case resA.BottleneckYear > resB.BottleneckYear:
		return prependPath(seq, resA.Path(w, first)), nil
	case resB.BottleneckYear > resA.BottleneckYear:
		return appendPath(seq, resB.Path(w, last)), nil
	default:
		return nil, ErrAmbiguous
	}
}

// prependPath splices a w...first path onto the front of seq, which
// already starts with first.
func prependPath(seq, path []int) []int {
	out := make([]int, 0, len(path)-1+len(seq))
	out = append(out, path[:len(path)-1]...)
	out = append(out, seq...)
	return out
}

// appendPath splices a w...last path onto the back of seq, which already
// ends with last.
func appendPath(seq, path []int) []int {
	out := make([]int, 0, len(seq)+len(path)-1)
	out = append(out, seq...)
	for i := len(path) - 2; i >= 0; i-- {
		out = append(out, path[i])
	}
	return out
}

// commitExtend writes newSeq into the route table and attaches the
// route-edge index entries for every pair newly introduced relative to
// the prior sequence.
func (e *Engine) commitExtend(routeID int, oldSeq, newSeq []int) error {
	if err := e.Table.Replace(routeID, newSeq); err != nil {
		return err
	}
	oldSet := make(map[[2]int]bool, len(oldSeq))
	for i := 0; i+1 < len(oldSeq); i++ {
		oldSet[pairKey(oldSeq[i], oldSeq[i+1])] = true
	}
	for i := 0; i+1 < len(newSeq); i++ {
		k := pairKey(newSeq[i], newSeq[i+1])
		if !oldSet[k] {
			e.Index.Attach(newSeq[i], newSeq[i+1], routeID)
		}
	}
	return nil
}

func pairKey(a, b int) [2]int {
	if a <= b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}
