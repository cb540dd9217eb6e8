package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/roadmap/roadnet"
	"github.com/katalvlaran/roadmap/routedesc"
	"github.com/katalvlaran/roadmap/routeindex"
	"github.com/katalvlaran/roadmap/routeops"
	"github.com/katalvlaran/roadmap/routetable"
)

// Dispatcher owns the three core components for one process lifetime and
// drives them from the line protocol.
type Dispatcher struct {
	Net   *roadnet.Network
	Table *routetable.Table
	Index *routeindex.Index
	eng   *routeops.Engine
}

// NewDispatcher constructs a Dispatcher with fresh, empty components.
func NewDispatcher() *Dispatcher {
	net := roadnet.New()
	table := routetable.New()
	index := routeindex.New()
	return &Dispatcher{
		Net:   net,
		Table: table,
		Index: index,
		eng:   routeops.New(net, table, index),
	}
}

// Run reads one command per line from in, writes getRouteDescription
// output to out, and writes "ERROR <n>" to errOut for every failing
// command. It returns a non-nil error only on a read error from in; at
// EOF it returns nil.
func (d *Dispatcher) Run(in io.Reader, out, errOut io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		output, err := d.dispatch(line)
		if err != nil {
			fmt.Fprintf(errOut, "ERROR %d\n", lineNo)
			continue
		}
		if output != "" {
			fmt.Fprintf(out, "%s\n", output)
		}
	}
	return scanner.Err()
}

// dispatch executes a single line, returning getRouteDescription's output
// (empty for every other command) and the command's success/failure.
func (d *Dispatcher) dispatch(line string) (string, error) {
	if isCommentOrBlank(line) {
		return "", nil
	}

	fields := strings.Split(line, ";")
	if len(fields) < 2 {
		return "", ErrMalformed
	}

	switch fields[0] {
	case "addRoad":
		return "", d.execAddRoad(fields[1:])
	case "repairRoad":
		return "", d.execRepairRoad(fields[1:])
	case "getRouteDescription":
		return d.execGetRouteDescription(fields[1:])
	case "newRoute":
		return "", d.execNewRoute(fields[1:])
	case "extendRoute":
		return "", d.execExtendRoute(fields[1:])
	case "removeRoad":
		return "", d.execRemoveRoad(fields[1:])
	case "removeRoute":
		return "", d.execRemoveRoute(fields[1:])
	default:
		return "", d.execRouteThrough(fields)
	}
}

func (d *Dispatcher) execAddRoad(args []string) error {
	if len(args) != 4 {
		return ErrMalformed
	}
	if !validCityToken(args[0]) || !validCityToken(args[1]) {
		return ErrMalformed
	}
	length, err := parseLength(args[2])
	if err != nil {
		return err
	}
	year, err := parseYear(args[3])
	if err != nil {
		return err
	}
	return d.Net.AddRoad(args[0], args[1], length, year)
}

func (d *Dispatcher) execRepairRoad(args []string) error {
	if len(args) != 3 {
		return ErrMalformed
	}
	if !validCityToken(args[0]) || !validCityToken(args[1]) {
		return ErrMalformed
	}
	year, err := parseYear(args[2])
	if err != nil {
		return err
	}
	return d.Net.RepairRoad(args[0], args[1], year)
}

func (d *Dispatcher) execGetRouteDescription(args []string) (string, error) {
	if len(args) != 1 {
		return "", ErrMalformed
	}
	routeID, err := parseRouteID(args[0])
	if err != nil {
		return "", err
	}
	return routedesc.Describe(d.Net, d.Table, routeID), nil
}

func (d *Dispatcher) execNewRoute(args []string) error {
	if len(args) != 3 {
		return ErrMalformed
	}
	routeID, err := parseRouteID(args[0])
	if err != nil {
		return err
	}
	if !validCityToken(args[1]) || !validCityToken(args[2]) {
		return ErrMalformed
	}
	return d.eng.NewRoute(routeID, args[1], args[2])
}

func (d *Dispatcher) execExtendRoute(args []string) error {
	if len(args) != 2 {
		return ErrMalformed
	}
	routeID, err := parseRouteID(args[0])
	if err != nil {
		return err
	}
	if !validCityToken(args[1]) {
		return ErrMalformed
	}
	return d.eng.ExtendRoute(routeID, args[1])
}

func (d *Dispatcher) execRemoveRoad(args []string) error {
	if len(args) != 2 {
		return ErrMalformed
	}
	if !validCityToken(args[0]) || !validCityToken(args[1]) {
		return ErrMalformed
	}
	return d.eng.RemoveRoad(args[0], args[1])
}

func (d *Dispatcher) execRemoveRoute(args []string) error {
	if len(args) != 1 {
		return ErrMalformed
	}
	routeID, err := parseRouteID(args[0])
	if err != nil {
		return err
	}
	return d.eng.RemoveRoute(routeID)
}

func (d *Dispatcher) execRouteThrough(fields []string) error {
	cmd, err := parseRouteThrough(fields)
	if err != nil {
		return err
	}
	cities := make([]string, 0, len(cmd.legs)+1)
	lengths := make([]uint32, 0, len(cmd.legs))
	years := make([]int32, 0, len(cmd.legs))
	cities = append(cities, cmd.firstCity)
	for _, leg := range cmd.legs {
		lengths = append(lengths, leg.length)
		years = append(years, leg.year)
		cities = append(cities, leg.city)
	}
	return d.eng.RouteThrough(cmd.routeID, cities, lengths, years)
}
