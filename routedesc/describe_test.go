package routedesc_test

import (
	"testing"

	"github.com/katalvlaran/roadmap/roadnet"
	"github.com/katalvlaran/roadmap/routedesc"
	"github.com/katalvlaran/roadmap/routeindex"
	"github.com/katalvlaran/roadmap/routeops"
	"github.com/katalvlaran/roadmap/routetable"
)

func TestDescribe_Scenario1(t *testing.T) {
	net := roadnet.New()
	table := routetable.New()
	index := routeindex.New()
	eng := routeops.New(net, table, index)

	if err := net.AddRoad("A", "B", 10, 2000); err != nil {
		t.Fatalf("AddRoad: %v", err)
	}
	if err := net.AddRoad("B", "C", 10, 2000); err != nil {
		t.Fatalf("AddRoad: %v", err)
	}
	if err := eng.NewRoute(1, "A", "C"); err != nil {
		t.Fatalf("NewRoute: %v", err)
	}

	got := routedesc.Describe(net, table, 1)
	want := "1;A;10;2000;B;10;2000;C"
	if got != want {
		t.Fatalf("Describe = %q, want %q", got, want)
	}
}

func TestDescribe_AbsentOrOutOfRange(t *testing.T) {
	net := roadnet.New()
	table := routetable.New()

	if got := routedesc.Describe(net, table, 1); got != "" {
		t.Fatalf("expected empty string for absent route, got %q", got)
	}
	if got := routedesc.Describe(net, table, 0); got != "" {
		t.Fatalf("expected empty string for out-of-range route, got %q", got)
	}
	if got := routedesc.Describe(net, table, 5000); got != "" {
		t.Fatalf("expected empty string for out-of-range route, got %q", got)
	}
}
