package roadnet

import "sort"

// AddCity inserts name if absent and returns its id either way (idempotent).
//
// Complexity: O(1) amortized.
func (n *Network) AddCity(name string) (int, error) {
	if err := validCityName(name); err != nil {
		return 0, err
	}
	if id, ok := n.nameToID[name]; ok {
		return id, nil
	}
	id := len(n.idToName)
	n.nameToID[name] = id
	n.idToName = append(n.idToName, name)
	n.adjacency = append(n.adjacency, nil)
	return id, nil
}

// AddRoad creates a new road between uName and vName.
//
// Fails with ErrBadName/ErrEmptyName if either name is invalid, ErrSameCity
// if uName == vName, ErrBadLength/ErrBadYear on out-of-range values, and
// ErrRoadExists if a road already connects the two cities.
//
// Missing cities are created as a side effect even when the call later
// fails on length/year/duplicate validation; city creation is never
// rolled back (cities are never deleted).
func (n *Network) AddRoad(uName, vName string, length uint32, year int32) error {
	if err := validCityName(uName); err != nil {
		return err
	}
	if err := validCityName(vName); err != nil {
		return err
	}
	if uName == vName {
		return ErrSameCity
	}

	u, err := n.AddCity(uName)
	if err != nil {
		return err
	}
	v, err := n.AddCity(vName)
	if err != nil {
		return err
	}

	if length < 1 {
		return ErrBadLength
	}
	if year == 0 {
		return ErrBadYear
	}
	if n.hasRoad(u, v) {
		return ErrRoadExists
	}

	road := &Road{Length: length, Year: year}
	n.link(u, v, road)
	return nil
}

// RepairRoad bumps the year of an existing road. Fails with ErrCityNotFound,
// ErrRoadNotFound, ErrBadYear (year == 0), or ErrYearRegression (year less
// than the road's current year).
func (n *Network) RepairRoad(uName, vName string, year int32) error {
	u, ok := n.nameToID[uName]
	if !ok {
		return ErrCityNotFound
	}
	v, ok := n.nameToID[vName]
	if !ok {
		return ErrCityNotFound
	}
	road, ok := n.adjacency[u][v]
	if !ok {
		return ErrRoadNotFound
	}
	if year == 0 {
		return ErrBadYear
	}
	if year < road.Year {
		return ErrYearRegression
	}
	road.Year = year
	return nil
}

// GetRoad reports the (length, year) of the road between ids u and v, if any.
func (n *Network) GetRoad(u, v int) (Road, bool) {
	if u < 0 || u >= len(n.adjacency) {
		return Road{}, false
	}
	road, ok := n.adjacency[u][v]
	if !ok {
		return Road{}, false
	}
	return *road, true
}

// HasRoad reports whether a road exists between ids u and v.
func (n *Network) HasRoad(u, v int) bool {
	return n.hasRoad(u, v)
}

func (n *Network) hasRoad(u, v int) bool {
	if u < 0 || u >= len(n.adjacency) {
		return false
	}
	_, ok := n.adjacency[u][v]
	return ok
}

// Neighbors returns every edge incident to city id u, sorted by neighbor id
// for deterministic iteration (mirrors core.Edges' determinism policy).
func (n *Network) Neighbors(u int) []Neighbor {
	if u < 0 || u >= len(n.adjacency) {
		return nil
	}
	out := make([]Neighbor, 0, len(n.adjacency[u]))
	for v, road := range n.adjacency[u] {
		out = append(out, Neighbor{To: v, Length: road.Length, Year: road.Year})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })
	return out
}

// RemoveRoad deletes the road between ids u and v. It is the caller's
// responsibility (routeops) to have already established that removal is
// safe (no route left stranded); RemoveRoad itself performs no route
// bookkeeping.
func (n *Network) RemoveRoad(u, v int) error {
	if !n.hasRoad(u, v) {
		return ErrRoadNotFound
	}
	delete(n.adjacency[u], v)
	delete(n.adjacency[v], u)
	return nil
}

// link installs road as the shared edge metadata for both directions.
func (n *Network) link(u, v int, road *Road) {
	if n.adjacency[u] == nil {
		n.adjacency[u] = make(map[int]*Road)
	}
	if n.adjacency[v] == nil {
		n.adjacency[v] = make(map[int]*Road)
	}
	n.adjacency[u][v] = road
	n.adjacency[v][u] = road
}
