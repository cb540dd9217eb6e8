package routeops

// RouteThrough implements the route-through command form: a route
// description line that doubles as an implicit addRoad/repairRoad for
// every edge it lists.
//
// Unlike a bare addRoad (whose city-creation side effect is allowed to
// survive a later failure), this command is fully atomic: on any
// failure — bad routeId, route already present, a declared
// length disagreeing with an existing road, or a repair year older than
// the road's current year — no city, road, route, or index entry may be
// left behind. This is achieved by validating every edge against the
// graph as it stands today (a city that does not yet exist trivially has
// no conflicting road) before creating or repairing anything.
//
// cities has one more entry than lengths/years: cities[i] connects to
// cities[i+1] via (lengths[i], years[i]).
func (e *Engine) RouteThrough(routeID int, cities []string, lengths []uint32, years []int32) error {
	if err := validRouteID(routeID); err != nil {
		return err
	}
	if e.Table.IsPresent(routeID) {
		return ErrRouteExists
	}
	if len(cities) < 2 || len(lengths) != len(cities)-1 || len(years) != len(cities)-1 {
		return ErrRouteTooShort
	}

	for i, length := range lengths {
		year := years[i]
		u, uExists := e.Net.CityID(cities[i])
		v, vExists := e.Net.CityID(cities[i+1])
		if !uExists || !vExists {
			continue // brand-new edge: nothing to reconcile against
		}
		road, ok := e.Net.GetRoad(u, v)
		if !ok {
			continue // both cities exist but not yet connected: a create
		}
		if road.Length != length {
			return ErrLengthMismatch
		}
		if year < road.Year {
			return ErrYearRegression
		}
	}

	ids := make([]int, len(cities))
	for i, name := range cities {
		id, err := e.Net.AddCity(name)
		if err != nil {
			return err
		}
		ids[i] = id
	}
	for i, length := range lengths {
		year := years[i]
		if e.Net.HasRoad(ids[i], ids[i+1]) {
			if err := e.Net.RepairRoad(cities[i], cities[i+1], year); err != nil {
				return err
			}
		} else if err := e.Net.AddRoad(cities[i], cities[i+1], length, year); err != nil {
			return err
		}
	}

	if err := e.Table.Set(routeID, ids); err != nil {
		return err
	}
	e.Index.AttachPath(ids, routeID)
	return nil
}
