package routeops

import (
	"errors"

	"github.com/katalvlaran/roadmap/pathfind"
)

// NewRoute defines routeID as the shortest path between uName and vName.
//
// Fails if routeID is out of range, the slot is already occupied, either
// city is missing, or u == v. The shortest-path search uses an empty
// forbidden-vertex set; NotFound/Ambiguous results fail the whole call
// with no side effects.
func (e *Engine) NewRoute(routeID int, uName, vName string) error {
	if err := validRouteID(routeID); err != nil {
		return err
	}
	if e.Table.IsPresent(routeID) {
		return ErrRouteExists
	}
	u, ok := e.Net.CityID(uName)
	if !ok {
		return ErrCityNotFound
	}
	v, ok := e.Net.CityID(vName)
	if !ok {
		return ErrCityNotFound
	}
	if u == v {
		return ErrSameCity
	}

	res, err := pathfind.Run(e.Net, u, v)
	if err != nil {
		return translatePathErr(err)
	}

	path := res.Path(u, v)
	if err := e.Table.Set(routeID, path); err != nil {
		// Cannot happen: presence was checked above and no mutation has
		// occurred since, but surface it rather than panic.
		return err
	}
	e.Index.AttachPath(path, routeID)
	return nil
}

func translatePathErr(err error) error {
	switch {
	case errors.Is(err, pathfind.ErrAmbiguous):
		return ErrAmbiguous
	case errors.Is(err, pathfind.ErrNotFound):
		return ErrUnreachable
	default:
		return err
	}
}
