// Package bfs provides tunable options and error definitions
// for breadth‐first search over a location directory.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is blank or unknown to the directory.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil directory is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrVisitLimit is returned when more vertices are discovered than WithVisitLimit allows.
	ErrVisitLimit = errors.New("bfs: visit limit exceeded")

	// ErrNoPath is returned by PathTo for a vertex the search never discovered.
	ErrNoPath = errors.New("bfs: no path")
)

// Neighborer is the only capability BFS needs from a graph: the identifiers
// adjacent to a vertex, in a deterministic order. core.Graph implements it.
type Neighborer interface {
	Neighbors(id string) ([]string, error)
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is enqueued, before visiting.
	// Receives vertex ID and its depth from the start.
	OnEnqueue func(id string, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(id string, depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	// Target, if non-empty, stops the search as soon as it is dequeued.
	Target string

	// VisitLimit, if > 0, caps the number of discovered vertices.
	VisitLimit int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0), no visit limit, no target
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(string, int) {},
		OnDequeue:      func(string, int) {},
		OnVisit:        func(string, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ string) bool { return true },
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (exclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithTarget stops the search once id is dequeued; BFSResult.Reached reports
// whether that happened. An empty id is an ErrOptionViolation.
func WithTarget(id string) Option {
	return func(o *BFSOptions) {
		if id == "" {
			o.err = fmt.Errorf("%w: empty target", ErrOptionViolation)
			return
		}
		o.Target = id
	}
}

// WithVisitLimit aborts with ErrVisitLimit once more than n vertices have been
// discovered. Pass the number of known vertices to fail fast on an adjacency
// relation that names vertices the directory does not hold.
//
//	n > 0: cap discovered vertices at n
//	n == 0: no cap
//	n < 0: invalid option → ErrOptionViolation
func WithVisitLimit(n int) Option {
	return func(o *BFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: VisitLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.VisitLimit = n
	}
}

// slot is one arena cell: a discovered vertex, its depth and the arena index
// of its predecessor (-1 for the root).
type slot struct {
	id     string
	depth  int
	parent int
}

// BFSResult holds the outcome of a BFS traversal.
//
// Order lists vertices in visit sequence. Reached is true when a target was
// set with WithTarget and was dequeued. Depth, Parent and PathTo read the
// search arena, which belongs to this result alone.
type BFSResult struct {
	Order   []string
	Reached bool

	slots []slot
	index map[string]int
}

// Depth returns the distance (in edges) from the start to id.
func (r *BFSResult) Depth(id string) (int, bool) {
	i, ok := r.index[id]
	if !ok {
		return 0, false
	}
	return r.slots[i].depth, true
}

// Parent returns the predecessor of id in the BFS tree; the start has none.
func (r *BFSResult) Parent(id string) (string, bool) {
	i, ok := r.index[id]
	if !ok || r.slots[i].parent < 0 {
		return "", false
	}
	return r.slots[r.slots[i].parent].id, true
}

// Discovered returns how many vertices were enqueued, the start included.
func (r *BFSResult) Discovered() int {
	return len(r.slots)
}

// PathTo reconstructs the path from the start vertex to dest by following
// predecessor slots backwards and reversing.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	i, ok := r.index[dest]
	if !ok {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}
	// build reversed path
	path := make([]string, 0, r.slots[i].depth+1)
	for ; i >= 0; i = r.slots[i].parent {
		path = append(path, r.slots[i].id)
	}
	// reverse to get start → dest
	for a, b := 0, len(path)-1; a < b; a, b = a+1, b-1 {
		path[a], path[b] = path[b], path[a]
	}

	return path, nil
}
