package cli

import (
	"strconv"
	"strings"
)

// parseRouteID validates s as a decimal routeId in [1, 999] with no
// leading zero.
func parseRouteID(s string) (int, error) {
	if s == "" {
		return 0, ErrMalformed
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, ErrMalformed
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, ErrMalformed
	}
	if v < 1 || v > 999 {
		return 0, ErrMalformed
	}
	return int(v), nil
}

// parseLength validates s as a decimal length in [1, 2^32-1].
func parseLength(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, ErrMalformed
	}
	if v < 1 {
		return 0, ErrMalformed
	}
	return uint32(v), nil
}

// parseYear validates s as a non-zero signed 32-bit decimal year.
func parseYear(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, ErrMalformed
	}
	if v == 0 {
		return 0, ErrMalformed
	}
	return int32(v), nil
}

// validCityToken enforces the city token grammar: non-empty, no ';', no
// ASCII control byte.
func validCityToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] == ';' || s[i] < 32 {
			return false
		}
	}
	return true
}

// routeThroughLeg is one (length, year, city) step following the route's
// first city.
type routeThroughLeg struct {
	length uint32
	year   int32
	city   string
}

// routeThroughCmd is a fully-parsed "routeId;city;len;year;city;...;city"
// line.
type routeThroughCmd struct {
	routeID    int
	firstCity  string
	legs       []routeThroughLeg
}

// parseRouteThrough parses the route-through grammar from already-split
// fields (fields[0] is the routeId token). It returns ErrMalformed for
// any shape or numeric violation.
func parseRouteThrough(fields []string) (routeThroughCmd, error) {
	routeID, err := parseRouteID(fields[0])
	if err != nil {
		return routeThroughCmd{}, err
	}

	rest := fields[1:]
	// rest must be city,(len,year,city)+ : length 1 + 3k, k >= 1.
	if len(rest) < 4 || (len(rest)-1)%3 != 0 {
		return routeThroughCmd{}, ErrMalformed
	}
	if !validCityToken(rest[0]) {
		return routeThroughCmd{}, ErrMalformed
	}

	cmd := routeThroughCmd{routeID: routeID, firstCity: rest[0]}
	seen := map[string]bool{rest[0]: true}
	k := (len(rest) - 1) / 3
	for j := 0; j < k; j++ {
		i := 1 + 3*j
		length, err := parseLength(rest[i])
		if err != nil {
			return routeThroughCmd{}, err
		}
		year, err := parseYear(rest[i+1])
		if err != nil {
			return routeThroughCmd{}, err
		}
		city := rest[i+2]
		if !validCityToken(city) {
			return routeThroughCmd{}, ErrMalformed
		}
		if seen[city] {
			return routeThroughCmd{}, ErrMalformed // "no city may repeat"
		}
		seen[city] = true
		cmd.legs = append(cmd.legs, routeThroughLeg{length: length, year: year, city: city})
	}
	return cmd, nil
}

// isCommentOrBlank reports whether line is a no-op line.
func isCommentOrBlank(line string) bool {
	return line == "" || strings.HasPrefix(line, "#")
}
