// Package bfs provides breadth-first search over any Neighborer (core.Graph,
// sqlstore.Store), returning unweighted shortest-path distances, parent
// links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth(id): distance (edges) from start
//   - Parent(id): predecessor in the BFS tree
//   - PathTo(id): start → id path rebuilt from predecessor slots
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Stops early at a target (WithTarget) and caps discovery (WithVisitLimit).
//
// Search state
//
//	Each call owns an arena of slots (vertex, depth, parent slot). The arena is
//	also the worklist: a cursor walks it front to back, so the frontier is the
//	tail not yet visited and nothing is ever shifted or copied. A map from
//	vertex ID to slot is the visited set. The arena is handed to the result
//	and is never shared between calls, so concurrent searches over one graph
//	need no coordination beyond the graph's own read locking.
//
// Determinism
//
//	Neighbors are enqueued in the order the Neighborer returns them. For
//	core.Graph that is connection insertion order, so the visit sequence and
//	the chosen shortest path are fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (arena and index)
//
// Usage
//
//	res, err := bfs.BFS(g, "R132", bfs.WithTarget("R137"), bfs.WithVisitLimit(n))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//		// ErrVisitLimit, ErrNeighbors, context errors or hook errors
//	}
//	if res.Reached {
//		path, _ := res.PathTo("R137")
//	}
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start vertex is blank or unknown.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrVisitLimit           if discovery exceeds WithVisitLimit.
//   - ErrNeighbors            if Neighbors fails for a non-start vertex.
//   - ErrNoPath               from PathTo for an undiscovered vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
