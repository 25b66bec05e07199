package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/waternet/core"
)

// queueItem pairs a cell with its depth.
type queueItem struct {
	cell  core.Cell
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g from start, applying opts.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
// ErrNeighbors, a context error, or a wrapped OnVisit error.
func BFS(g *core.Graph, start core.Cell, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]core.Cell, 0, n),
			Depth:  make(map[core.Cell]int, n),
			Parent: make(map[core.Cell]core.Cell, n),
		},
	}

	w.enqueue(start, 0, nil)

	return w.res, w.loop()
}

// enqueue marks c discovered at depth d and records its parent.
// Depth doubles as the visited set.
func (w *walker) enqueue(c core.Cell, d int, parent *core.Cell) {
	w.res.Depth[c] = d
	if parent != nil {
		w.res.Parent[c] = *parent
	}
	w.opts.OnEnqueue(c, d)
	w.queue = append(w.queue, queueItem{cell: c, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[head]
		w.opts.OnDequeue(item.cell, item.depth)
		w.res.Order = append(w.res.Order, item.cell)
		if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %s: %w", item.cell, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each unseen neighbour.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.Neighbors(item.cell)
	if err != nil {
		return fmt.Errorf("%w: neighbors of %s: %v", ErrNeighbors, item.cell, err)
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.cell, nbr) {
			continue
		}
		if _, seen := w.res.Depth[nbr]; !seen {
			parent := item.cell
			w.enqueue(nbr, next, &parent)
		}
	}

	return nil
}
