// Package route is the routing engine: given a start and a target location it
// finds a fewest-hop walk through a core.Directory and renders it as
// step-by-step directions.
//
// Evaluation order of ComputeRoute:
//
//  1. Normalize both identifiers (trim, upper-case).
//  2. Blank identifier            → ErrInvalidInput.
//  3. Unknown start and/or target → ErrUnknownStart / ErrUnknownTarget
//     (joined when both are unknown; both match ErrUnknownLocation).
//  4. start == target             → success, Path [start], hop count 0.
//  5. Breadth-first search        → success, or ErrNoRoute when the
//     frontier empties before the target is dequeued.
//
// Expected failures never surface as a Go error or a panic: every call returns
// a fresh *Result and callers branch on Result.Success, using errors.Is on
// Result.Err when they need the reason.
//
// The Engine keeps no state between calls. Search state lives in the bfs
// arena of one call and is dropped with it, so one Engine may serve any number
// of goroutines as long as the Directory tolerates concurrent reads.
//
// Descriptions are produced by a Phrasebook; English is the default and
// German is provided.
package route
