package pathfind_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/roadmap/pathfind"
	"github.com/katalvlaran/roadmap/roadnet"
)

func ids(t *testing.T, n *roadnet.Network, names ...string) []int {
	t.Helper()
	out := make([]int, len(names))
	for i, name := range names {
		id, ok := n.CityID(name)
		if !ok {
			t.Fatalf("city %q not found", name)
		}
		out[i] = id
	}
	return out
}

func TestRun_SimpleChain(t *testing.T) {
	n := roadnet.New()
	_ = n.AddRoad("A", "B", 10, 2000)
	_ = n.AddRoad("B", "C", 10, 2000)
	a, b, c := ids(t, n, "A", "B", "C")[0], ids(t, n, "A", "B", "C")[1], ids(t, n, "A", "B", "C")[2]

	res, err := pathfind.Run(n, a, c)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	path := res.Path(a, c)
	want := []int{a, b, c}
	if len(path) != len(want) {
		t.Fatalf("path mismatch: %v", path)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("path mismatch at %d: %v", i, path)
		}
	}
	if res.TotalLength != 20 {
		t.Fatalf("expected length 20, got %d", res.TotalLength)
	}
}

func TestRun_SrcEqualsDst(t *testing.T) {
	n := roadnet.New()
	_ = n.AddRoad("A", "B", 10, 2000)
	a := ids(t, n, "A")[0]

	_, err := pathfind.Run(n, a, a)
	if !errors.Is(err, pathfind.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestRun_Unreachable(t *testing.T) {
	n := roadnet.New()
	_ = n.AddRoad("A", "B", 10, 2000)
	_, _ = n.AddCity("C")
	a, c := ids(t, n, "A")[0], ids(t, n, "C")[0]

	_, err := pathfind.Run(n, a, c)
	if !errors.Is(err, pathfind.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

// diamond builds A-B-D and A-C-D, both 5+5 = 10, same year, so both paths
// tie exactly.
func diamond(t *testing.T) (*roadnet.Network, int, int) {
	n := roadnet.New()
	_ = n.AddRoad("A", "B", 5, 2000)
	_ = n.AddRoad("A", "C", 5, 2000)
	_ = n.AddRoad("B", "D", 5, 2000)
	_ = n.AddRoad("C", "D", 5, 2000)
	a, d := ids(t, n, "A")[0], ids(t, n, "D")[0]
	return n, a, d
}

func TestRun_AmbiguousDiamond(t *testing.T) {
	n, a, d := diamond(t)
	_, err := pathfind.Run(n, a, d)
	if !errors.Is(err, pathfind.ErrAmbiguous) {
		t.Fatalf("want ErrAmbiguous, got %v", err)
	}
}

func TestRun_RepairBreaksAmbiguity(t *testing.T) {
	n, a, d := diamond(t)
	if err := n.RepairRoad("A", "B", 2010); err != nil {
		t.Fatalf("RepairRoad: %v", err)
	}
	if err := n.RepairRoad("B", "D", 2010); err != nil {
		t.Fatalf("RepairRoad: %v", err)
	}
	res, err := pathfind.Run(n, a, d)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	b := ids(t, n, "B")[0]
	path := res.Path(a, d)
	if len(path) != 3 || path[1] != b {
		t.Fatalf("expected path through B (newer bottleneck), got %v", path)
	}
}

func TestRun_ForbiddenVertex(t *testing.T) {
	n, a, d := diamond(t)
	b := ids(t, n, "B")[0]
	res, err := pathfind.Run(n, a, d, pathfind.WithForbiddenVertices(map[int]bool{b: true}))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	c := ids(t, n, "C")[0]
	path := res.Path(a, d)
	if len(path) != 3 || path[1] != c {
		t.Fatalf("expected path through C only, got %v", path)
	}
}

func TestRun_ForbiddenEdge(t *testing.T) {
	n := roadnet.New()
	_ = n.AddRoad("A", "B", 1, 2000)
	_ = n.AddRoad("B", "C", 1, 2000)
	_ = n.AddRoad("A", "C", 10, 2000)
	a, b, c := ids(t, n, "A")[0], ids(t, n, "B")[0], ids(t, n, "C")[0]

	res, err := pathfind.Run(n, a, c, pathfind.WithForbiddenEdge(pathfind.EdgeRef{A: a, B: b}))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	path := res.Path(a, c)
	want := []int{a, c}
	if len(path) != len(want) || path[1] != want[1] {
		t.Fatalf("expected direct A-C path, got %v", path)
	}
}
