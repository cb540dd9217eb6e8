// Package routedesc implements the read-only textual route projection:
// routeId;city;length;year;city;length;year;...;city.
package routedesc
