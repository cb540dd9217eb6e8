package roadnet

import "errors"

// Sentinel errors returned by the roadnet package. Callers branch on these
// with errors.Is; messages are never parsed.
var (
	// ErrEmptyName indicates a city name that is the empty string.
	ErrEmptyName = errors.New("roadnet: city name is empty")

	// ErrBadName indicates a city name containing a ';' or an ASCII control
	// byte, which would corrupt the line protocol.
	ErrBadName = errors.New("roadnet: city name contains a forbidden byte")

	// ErrSameCity indicates an operation that requires two distinct cities
	// was given the same city twice.
	ErrSameCity = errors.New("roadnet: cities must be distinct")

	// ErrCityNotFound indicates a referenced city does not exist.
	ErrCityNotFound = errors.New("roadnet: city not found")

	// ErrBadLength indicates a road length outside [1, 2^32-1].
	ErrBadLength = errors.New("roadnet: length out of range")

	// ErrBadYear indicates year == 0; zero is reserved for "absent".
	ErrBadYear = errors.New("roadnet: year must be non-zero")

	// ErrRoadExists indicates a road already exists between the two cities.
	ErrRoadExists = errors.New("roadnet: road already exists")

	// ErrRoadNotFound indicates no road exists between the two cities.
	ErrRoadNotFound = errors.New("roadnet: road not found")

	// ErrYearRegression indicates a repair year older than the current year.
	ErrYearRegression = errors.New("roadnet: repair year is older than current year")
)
