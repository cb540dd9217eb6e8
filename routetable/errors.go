package routetable

import "errors"

var (
	// ErrBadRouteID indicates routeId is outside [1, 999].
	ErrBadRouteID = errors.New("routetable: route id out of range")

	// ErrRoutePresent indicates Set was called on a slot already occupied.
	ErrRoutePresent = errors.New("routetable: route already present")

	// ErrRouteAbsent indicates a slot was queried/mutated while empty.
	ErrRouteAbsent = errors.New("routetable: route not present")
)
