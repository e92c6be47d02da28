// Package dfs implements depth-first traversal over a location directory and
// uses it to audit connectivity.
//
// What:
//
//   - DFS: explores as far as possible along each corridor before
//     backtracking. Supports:
//   - Pre-order (OnVisit) and post-order (OnExit) hooks
//   - A hook per traversal tree (OnTree) in full-traversal mode
//   - Cancellation via context.Context
//   - Depth limiting and neighbor filtering
//   - Islands: partitions a building into connected groups of locations.
//     A building with more than one island has locations no route can reach,
//     such as a plant room that is registered but not connected.
//
// Complexity:
//
//   - DFS:     Time O(V+E), Memory O(V) for the recursion stack and maps.
//   - Islands: Time O(V+E + V log V), Memory O(V).
//
// Errors:
//
//   - ErrGraphNil             graph is nil
//   - ErrStartVertexNotFound  start location is unknown to the graph
//   - context.Canceled        traversal canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
