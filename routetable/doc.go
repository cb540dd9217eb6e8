// Package routetable implements the fixed-capacity table of numbered
// routes: 999 slots, each either Absent or Present with an ordered
// sequence of city ids forming the route's path.
package routetable
