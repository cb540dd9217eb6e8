package routedesc

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/roadmap/roadnet"
	"github.com/katalvlaran/roadmap/routetable"
)

// Describe renders routeId as routeId;city;length;year;city;...;city,
// drawing each length/year from the current graph state. It returns the
// empty string if the route is absent or routeId is out of range — never
// an error.
func Describe(net *roadnet.Network, table *routetable.Table, routeID int) string {
	seq, ok := table.Get(routeID)
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(strconv.Itoa(routeID))
	for i, id := range seq {
		name, ok := net.CityName(id)
		if !ok {
			return "" // defensive: invariant violation, never expected in practice
		}
		if i > 0 {
			road, ok := net.GetRoad(seq[i-1], id)
			if !ok {
				return ""
			}
			b.WriteByte(';')
			b.WriteString(strconv.FormatUint(uint64(road.Length), 10))
			b.WriteByte(';')
			b.WriteString(strconv.FormatInt(int64(road.Year), 10))
		}
		b.WriteByte(';')
		b.WriteString(name)
	}
	return b.String()
}
