// Package bfs provides breadth-first search over a location directory,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, neighbor filtering, early stop at a
// target and a cap on discovered vertices.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// walker encapsulates the mutable state of one search.
//
// arena holds every discovered vertex in discovery order and doubles as the
// worklist: arena[head:] is the FIFO frontier. index maps a vertex ID to its
// arena slot and is the visited set. None of it outlives the call except
// through the BFSResult that owns it.
type walker struct {
	graph Neighborer
	opts  BFSOptions
	ctx   context.Context
	arena []slot
	head  int
	index map[string]int
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrVisitLimit when the discovered set
// outgrows WithVisitLimit, ErrNeighbors for graph failures, or any
// user-supplied hook error. On error the partial result is still returned.
func BFS(g Neighborer, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if startID == "" {
		return nil, ErrStartVertexNotFound
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		arena: make([]slot, 0, 16),
		index: make(map[string]int, 16),
		res:   &BFSResult{Order: make([]string, 0, 16)},
	}

	// Seed the worklist with the start vertex (no parent)
	w.enqueue(startID, 0, -1)
	err := w.loop()
	w.res.slots, w.res.index = w.arena, w.index

	return w.res, err
}

// enqueue claims a new arena slot for id, marks it visited and calls OnEnqueue.
func (w *walker) enqueue(id string, d int, parent int) {
	w.index[id] = len(w.arena)
	w.arena = append(w.arena, slot{id: id, depth: d, parent: parent})
	w.opts.OnEnqueue(id, d)
}

// loop processes the worklist until empty, target reached, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.arena) {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		at := w.dequeue()
		if err := w.visit(at); err != nil {
			return err
		}
		if w.opts.Target != "" && w.arena[at].id == w.opts.Target {
			w.res.Reached = true
			return nil
		}
		if err := w.enqueueNeighbors(at); err != nil {
			return err
		}
	}
	return nil
}

// dequeue advances the worklist cursor, invokes OnDequeue, and returns the slot index.
func (w *walker) dequeue() int {
	at := w.head
	w.head++
	w.opts.OnDequeue(w.arena[at].id, w.arena[at].depth)
	return at
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(at int) error {
	s := w.arena[at]
	w.res.Order = append(w.res.Order, s.id)
	if err := w.opts.OnVisit(s.id, s.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", s.id, err)
	}
	return nil
}

// enqueueNeighbors retrieves neighbors, applies filtering, MaxDepth and
// VisitLimit, and enqueues each unseen neighbor. A lookup failure on the
// start vertex is reported as ErrStartVertexNotFound, elsewhere as ErrNeighbors.
func (w *walker) enqueueNeighbors(at int) error {
	cur := w.arena[at]
	neighbors, err := w.graph.Neighbors(cur.id)
	if err != nil {
		if cur.parent < 0 {
			return fmt.Errorf("%w: %q: %v", ErrStartVertexNotFound, cur.id, err)
		}
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, cur.id, err)
	}
	nextDepth := cur.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		// cancellation check inside neighbor iteration
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if !w.opts.FilterNeighbor(cur.id, nbr) {
			continue
		}
		if _, seen := w.index[nbr]; seen {
			continue
		}
		if w.opts.VisitLimit > 0 && len(w.arena) >= w.opts.VisitLimit {
			return fmt.Errorf("%w: %d vertices discovered, next %q", ErrVisitLimit, len(w.arena), nbr)
		}
		w.enqueue(nbr, nextDepth, at)
	}
	return nil
}
