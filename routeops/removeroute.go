package routeops

// RemoveRoute detaches every edge of routeID from the route-edge index and
// clears its slot. Fails if the route is absent or (defensively) has
// fewer than two cities.
func (e *Engine) RemoveRoute(routeID int) error {
	seq, ok := e.Table.Get(routeID)
	if !ok {
		return ErrRouteNotFound
	}
	if len(seq) < 2 {
		return ErrRouteTooShort
	}
	e.Index.DetachPath(seq, routeID)
	return e.Table.Clear(routeID)
}
