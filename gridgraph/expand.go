package gridgraph

import (
	"container/list"

	"github.com/katalvlaran/waternet/core"
)

// Bridge finds the fewest dry cells that must become water so that the water
// body containing src joins the water body containing dst under 4-connectivity,
// the same rule Graph uses. Each converted dry cell costs 1.
// Returns the path of cells from a cell of src's body to a cell of dst's body
// (both ends included) and the conversion cost. If src and dst already share a
// body the cost is 0.
//
// Behavior:
//  1. Validate that src and dst are in-bounds water cells.
//  2. Flood dst's body to get the target set.
//  3. 0–1 BFS from src: moving into water costs 0, into a dry cell costs 1.
//  4. Stop when any target cell is popped and rebuild the path via predecessors.
//
// Complexity: O(W·H·4), Memory: O(W·H) for distance and prev arrays.
func (gg *Grid) Bridge(src, dst core.Cell) (path []core.Cell, cost int, err error) {
	for _, c := range []core.Cell{src, dst} {
		if !gg.InBounds(c.Row, c.Col) {
			return nil, 0, ErrOutOfBounds
		}
		if !gg.IsWater(c.Row, c.Col) {
			return nil, 0, ErrNotWater
		}
	}

	target := gg.body(gg.index(dst.Row, dst.Col))

	n := gg.Rows * gg.Cols
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	s := gg.index(src.Row, src.Col)
	dist[s] = 0
	dq.PushFront(s)
	end := -1

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if target[u] {
			end = u
			break
		}
		uc := gg.Coordinate(u)
		for _, d := range offsets4 {
			vr, vc := uc.Row+d[0], uc.Col+d[1]
			if !gg.InBounds(vr, vc) {
				continue
			}
			v := gg.index(vr, vc)
			step := 0
			if !gg.water[v] {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// every in-bounds cell is reachable, so end is always found
	for at := end; at >= 0; at = prev[at] {
		path = append(path, gg.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[end], nil
}

// body returns membership flags for the 4-connected water body containing i0.
func (gg *Grid) body(i0 int) []bool {
	in := make([]bool, gg.Rows*gg.Cols)
	in[i0] = true
	queue := []int{i0}
	for qi := 0; qi < len(queue); qi++ {
		u := gg.Coordinate(queue[qi])
		for _, d := range offsets4 {
			vr, vc := u.Row+d[0], u.Col+d[1]
			if !gg.IsWater(vr, vc) {
				continue
			}
			vi := gg.index(vr, vc)
			if !in[vi] {
				in[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return in
}
