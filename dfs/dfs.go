package dfs

import (
	"fmt"

	"github.com/katalvlaran/wayfinder/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g from startID. With WithFullTraversal
// startID is ignored and every location is covered, one tree per
// disconnected part, roots taken in directory order.
// On error the partial result is still returned.
func DFS(g Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	var roots []string
	if dopts.FullTraversal {
		locs, err := g.Locations()
		if err != nil {
			return nil, fmt.Errorf("dfs: Locations: %w", err)
		}
		roots = make([]string, len(locs))
		for i, loc := range locs {
			roots[i] = loc.ID
		}
	} else {
		startID = core.NormalizeID(startID)
		if startID == "" {
			return nil, ErrStartVertexNotFound
		}
		if _, err := g.Neighbors(startID); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrStartVertexNotFound, startID, err)
		}
		roots = []string{startID}
	}

	res := &DFSResult{
		Order:   make([]string, 0, len(roots)),
		Depth:   make(map[string]int, len(roots)),
		Parent:  make(map[string]string, len(roots)),
		Visited: make(map[string]bool, len(roots)),
	}
	w := &dfsWalker{graph: g, opts: dopts, res: res}

	for _, root := range roots {
		if res.Visited[root] {
			continue
		}
		if dopts.OnTree != nil {
			dopts.OnTree(root)
		}
		if err := w.traverse(root, 0); err != nil {
			return res, err
		}
	}

	return res, nil
}

// traverse visits vertex id at the given depth, recursing into neighbors.
func (w *dfsWalker) traverse(id string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		w.res.Order = nil
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		if err := w.explore(id, depth); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}

	w.res.Order = append(w.res.Order, id)

	return nil
}

// explore recurses into every unvisited, unfiltered neighbor of id.
func (w *dfsWalker) explore(id string, depth int) error {
	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		w.res.Order = nil
		return fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
	}

	for _, nid := range nbs {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nid] {
			continue
		}
		w.res.Parent[nid] = id
		if err := w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	return nil
}
