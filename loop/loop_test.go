package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/routeloop/engine/classify"
	"github.com/routeloop/engine/graph"
	"github.com/routeloop/engine/loop"
)

// grid builds an n x n walkable footway grid centered near (0,0), with
// spacing degrees between adjacent nodes in both axes — a generation
// fixture at unit-test scale rather than a real city extract.
func grid(t *testing.T, n int, spacing float64) *graph.Graph {
	t.Helper()

	half := n / 2
	var nodes []graph.RawNode
	var ways []graph.RawWay
	id := int64(1)

	index := make([][]int64, n)
	for i := 0; i < n; i++ {
		index[i] = make([]int64, n)
		for j := 0; j < n; j++ {
			lat := float64(i-half) * spacing
			lon := float64(j-half) * spacing
			nodes = append(nodes, graph.RawNode{ID: id, Lat: lat, Lon: lon})
			index[i][j] = id
			id++
		}
	}

	wayID := int64(1)
	tags := map[string]string{"highway": "footway", "surface": "asphalt"}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j+1 < n {
				ways = append(ways, graph.RawWay{ID: wayID, NodeIDs: []int64{index[i][j], index[i][j+1]}, Tags: tags})
				wayID++
			}
			if i+1 < n {
				ways = append(ways, graph.RawWay{ID: wayID, NodeIDs: []int64{index[i][j], index[i+1][j]}, Tags: tags})
				wayID++
			}
		}
	}

	g, err := graph.Build(nodes, ways, graph.DefaultBuildOptions())
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	return g
}

func TestGenerate_GridProducesValidLoops(t *testing.T) {
	g := grid(t, 9, 0.003) // ~330m spacing, 9x9 grid spans roughly 2.6km

	req := loop.DefaultRequest(0, 0, 1200)
	req.MaxVariants = 3
	// The grid's edges are ~330m each, far coarser than the default 5%
	// distance band, so widen the band to what the fixture can satisfy.
	req.Tolerance = 0.5

	loops, debug, err := loop.Generate(context.Background(), g, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loops) == 0 {
		t.Fatalf("expected at least one viable loop")
	}
	if len(loops) > req.MaxVariants {
		t.Fatalf("expected at most %d loops, got %d", req.MaxVariants, len(loops))
	}

	for _, l := range loops {
		if len(l.Nodes) < 2 {
			t.Fatalf("loop has too few nodes: %v", l.Nodes)
		}
		if l.Duration <= 0 {
			t.Fatalf("loop has no estimated duration")
		}
		if l.Meta.TargetDistance != req.TargetDistance {
			t.Fatalf("loop metadata target = %v, want %v", l.Meta.TargetDistance, req.TargetDistance)
		}
		if share := l.Meta.SurfaceMix["paved"]; share < 0.99 {
			t.Fatalf("all-asphalt grid should report a fully paved mix, got %v", l.Meta.SurfaceMix)
		}
		band := req.TargetDistance * req.Tolerance
		if diff := l.TotalDistance - req.TargetDistance; diff > band || diff < -band {
			t.Fatalf("loop distance %v outside tolerance band around %v", l.TotalDistance, req.TargetDistance)
		}
		if l.Nodes[0] != l.Nodes[len(l.Nodes)-1] {
			t.Fatalf("loop is not closed: starts at %s, ends at %s", l.Nodes[0], l.Nodes[len(l.Nodes)-1])
		}
		for _, edgeID := range l.Edges {
			e, ok := g.Edge(edgeID)
			if !ok {
				t.Fatalf("loop references edge %s not present in the graph", edgeID)
			}
			if e.WayID == "" {
				t.Fatalf("loop edge %s has no originating way id", edgeID)
			}
		}
	}

	if debug.Timings == nil {
		t.Fatalf("expected a populated timings map")
	}
	if len(debug.Timings) == 0 {
		t.Fatalf("expected at least one phase timing recorded")
	}
}

func TestGenerate_RejectsNonPositiveTargetDistance(t *testing.T) {
	g := grid(t, 5, 0.003)

	_, _, err := loop.Generate(context.Background(), g, loop.DefaultRequest(0, 0, 0))
	if err != loop.ErrInvalidTargetDistance {
		t.Fatalf("expected ErrInvalidTargetDistance, got %v", err)
	}
}

func TestGenerate_NoAccessibleStartOnEmptyGraph(t *testing.T) {
	// Build refuses to return an empty graph, so a zero-value graph.Graph
	// stands in for one: NearestNode finds no node and Generate reports
	// ErrNoAccessibleStart.
	_, _, err := loop.Generate(context.Background(), &graph.Graph{}, loop.DefaultRequest(0, 0, 500))
	if err != loop.ErrNoAccessibleStart {
		t.Fatalf("expected ErrNoAccessibleStart on an empty graph, got %v", err)
	}

	// Once the graph is non-empty, nearest-node anchoring never fails: a
	// request far outside a tiny graph's extent still resolves to *some*
	// accessible start and does not panic.
	g := grid(t, 3, 0.003)

	_, _, err = loop.Generate(context.Background(), g, loop.DefaultRequest(89, 179, 500))
	if err != nil && err != loop.ErrNoViableLoops {
		t.Fatalf("expected either success or ErrNoViableLoops for a far-off start, got %v", err)
	}
}

func TestGenerate_NoViableLoopsWhenTargetTooLarge(t *testing.T) {
	g := grid(t, 5, 0.003)

	req := loop.DefaultRequest(0, 0, 10_000_000)
	_, _, err := loop.Generate(context.Background(), g, req)
	if err != loop.ErrNoViableLoops {
		t.Fatalf("expected ErrNoViableLoops for an unreachable target distance, got %v", err)
	}
}

func TestGenerate_RejectsOutOfRangeStart(t *testing.T) {
	g := grid(t, 3, 0.003)

	_, _, err := loop.Generate(context.Background(), g, loop.DefaultRequest(91, 0, 1000))
	if err != loop.ErrInvalidCoordinates {
		t.Fatalf("expected ErrInvalidCoordinates for latitude 91, got %v", err)
	}
}

func TestGenerate_ClampsMaxVariants(t *testing.T) {
	g := grid(t, 9, 0.003)

	req := loop.DefaultRequest(0, 0, 1200)
	req.Tolerance = 0.5
	req.MaxVariants = 99

	loops, _, err := loop.Generate(context.Background(), g, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loops) > 10 {
		t.Fatalf("MaxVariants must clamp to 10, got %d loops", len(loops))
	}
}

func TestGenerate_DrainedBudgetMarksDebugRecord(t *testing.T) {
	g := grid(t, 9, 0.003)

	req := loop.DefaultRequest(0, 0, 1200)
	req.Budget = time.Nanosecond

	_, debug, err := loop.Generate(context.Background(), g, req)
	if err != loop.ErrTimeout {
		t.Fatalf("expected ErrTimeout once the budget drained before exploration, got %v", err)
	}
	if !debug.TimedOut {
		t.Fatalf("expected TimedOut to be set on the debug record")
	}
}

func TestGenerate_SurfaceAllowListStillFindsLoops(t *testing.T) {
	g := grid(t, 9, 0.003) // entirely asphalt, so the paved allow-list rules nothing out

	req := loop.DefaultRequest(0, 0, 1200)
	req.Tolerance = 0.5
	req.SurfaceTypes = []classify.Surface{classify.SurfacePaved}

	loops, _, err := loop.Generate(context.Background(), g, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loops) == 0 {
		t.Fatalf("expected loops on an all-paved grid with a paved allow-list")
	}
}
