package routeops

import "errors"

var (
	// ErrBadRouteID indicates routeId is outside [1, 999].
	ErrBadRouteID = errors.New("routeops: route id out of range")

	// ErrRouteExists indicates newRoute targeted an already-occupied slot.
	ErrRouteExists = errors.New("routeops: route already exists")

	// ErrRouteNotFound indicates an operation targeted an absent route.
	ErrRouteNotFound = errors.New("routeops: route not found")

	// ErrCityNotFound indicates a referenced city does not exist.
	ErrCityNotFound = errors.New("routeops: city not found")

	// ErrSameCity indicates u == v where two distinct cities were required.
	ErrSameCity = errors.New("routeops: cities must be distinct")

	// ErrRoadNotFound indicates no road exists where one was required.
	ErrRoadNotFound = errors.New("routeops: road not found")

	// ErrVertexOnRoute indicates extendRoute targeted a city already on
	// the route (including its current endpoints).
	ErrVertexOnRoute = errors.New("routeops: city already on route")

	// ErrUnreachable indicates no feasible path exists for the requested
	// operation.
	ErrUnreachable = errors.New("routeops: no path available")

	// ErrAmbiguous indicates the requested operation's shortest path is
	// not unique under the lexicographic tie-break.
	ErrAmbiguous = errors.New("routeops: path is ambiguous")

	// ErrRouteTooShort indicates an operation targeted a route with fewer
	// than two cities, which should not occur for a Present route but is
	// guarded against anyway.
	ErrRouteTooShort = errors.New("routeops: route has fewer than two cities")

	// ErrLengthMismatch indicates a route-through command declared a
	// length disagreeing with an already-existing road.
	ErrLengthMismatch = errors.New("routeops: declared length disagrees with existing road")

	// ErrYearRegression indicates a route-through command declared a
	// repair year older than the road's current year.
	ErrYearRegression = errors.New("routeops: repair year is older than current year")
)
