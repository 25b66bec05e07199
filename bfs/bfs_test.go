package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/waternet/bfs"
	"github.com/katalvlaran/waternet/core"
)

func cell(r, c int) core.Cell { return core.Cell{Row: r, Col: c} }

// ring builds the 4-cycle (0,0)-(0,1)-(1,1)-(1,0).
func ring(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]core.Cell{
		{cell(0, 0), cell(0, 1)}, {cell(0, 1), cell(1, 1)},
		{cell(1, 1), cell(1, 0)}, {cell(1, 0), cell(0, 0)},
	} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

// chain builds (0,0)-(0,1)-...-(0,n-1).
func chain(t testing.TB, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	g.AddVertex(cell(0, 0))
	for i := 1; i < n; i++ {
		if err := g.AddEdge(cell(0, i-1), cell(0, i)); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, cell(0, 0)); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, cell(9, 9)); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	g.AddVertex(cell(0, 0))
	if _, err := bfs.BFS(g, cell(0, 0), bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleCell covers the trivial one-vertex graph.
func TestBFS_SingleCell(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(cell(3, 4))
	res, err := bfs.BFS(g, cell(3, 4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []core.Cell{cell(3, 4)}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth[cell(3, 4)]; d != 0 {
		t.Errorf("Depth = %d; want 0", d)
	}
}

// TestBFS_RingOrder checks layered, row-major neighbour order on a cycle.
func TestBFS_RingOrder(t *testing.T) {
	res, err := bfs.BFS(ring(t), cell(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	want := []core.Cell{cell(0, 0), cell(0, 1), cell(1, 0), cell(1, 1)}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth[cell(1, 1)]; d != 2 {
		t.Errorf("Depth[(1,1)] = %d; want 2", d)
	}
}

// TestBFS_Disconnected stays inside the start component.
func TestBFS_Disconnected(t *testing.T) {
	g := ring(t)
	g.AddVertex(cell(5, 5))
	res, err := bfs.BFS(g, cell(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.Depth[cell(5, 5)]; ok {
		t.Error("isolated cell reached")
	}
	if len(res.Order) != 4 {
		t.Errorf("visited %d cells; want 4", len(res.Order))
	}
}

func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(chain(t, 6), cell(0, 0), bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	want := []core.Cell{cell(0, 0), cell(0, 1), cell(0, 2)}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

func TestBFS_FilterNeighbor(t *testing.T) {
	// never step into row 1
	res, err := bfs.BFS(ring(t), cell(0, 0),
		bfs.WithFilterNeighbor(func(_, nbr core.Cell) bool { return nbr.Row == 0 }))
	if err != nil {
		t.Fatal(err)
	}
	want := []core.Cell{cell(0, 0), cell(0, 1)}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_Hooks checks hook ordering and OnVisit abort.
func TestBFS_Hooks(t *testing.T) {
	var enq, deq int
	stop := errors.New("stop")
	_, err := bfs.BFS(chain(t, 5), cell(0, 0),
		bfs.WithOnEnqueue(func(core.Cell, int) { enq++ }),
		bfs.WithOnDequeue(func(core.Cell, int) { deq++ }),
		bfs.WithOnVisit(func(c core.Cell, _ int) error {
			if c == cell(0, 2) {
				return stop
			}
			return nil
		}),
	)
	if !errors.Is(err, stop) {
		t.Fatalf("want wrapped stop error, got %v", err)
	}
	if deq != 3 {
		t.Errorf("dequeued %d; want 3", deq)
	}
	if enq != 3 {
		t.Errorf("enqueued %d; want 3", enq)
	}
}

func TestBFS_PathTo(t *testing.T) {
	res, err := bfs.BFS(chain(t, 4), cell(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	path, err := res.PathTo(cell(0, 3))
	if err != nil {
		t.Fatal(err)
	}
	if want := []core.Cell{cell(0, 0), cell(0, 1), cell(0, 2), cell(0, 3)}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo = %v; want %v", path, want)
	}
	if _, err := res.PathTo(cell(7, 7)); err == nil {
		t.Error("PathTo unreachable: want error")
	}
}

func TestBFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(chain(t, 3), cell(0, 0), bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
