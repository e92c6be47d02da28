// Package core provides the in-memory location directory: a small, sparse,
// undirected graph of named building locations (rooms, corridors, stairwells)
// with unit-cost connections between them.
//
// The Directory D = (L, C) holds:
//
//   - Locations keyed by a normalized identifier (trimmed, upper-cased):
//     "r132", " R132 " and "R132" all address the same record.
//   - Connections as unordered pairs; every Connect(a, b) is traversable in
//     both directions regardless of the order it was declared in.
//   - Insertion-ordered catalogs, so Locations() and Neighbors() enumerate
//     deterministically and route searches are reproducible.
//
// Core Methods:
//
//	// Location lifecycle
//	AddLocation(loc Location) error        // O(1)
//	Location(id string) (Location, error)  // O(1)
//	Locations() ([]Location, error)        // O(L)
//
//	// Connections
//	Connect(a, b string) error             // O(deg(a))
//	Neighbors(id string) ([]string, error) // O(deg(id))
//	HasConnection(a, b string) bool        // O(deg(a))
//	Connections() []Connection             // O(C)
//
//	// Diagnostics
//	LocationCount() (int, error)
//	Stats() (Stats, error)
//
// Concurrency:
//
//	A single sync.RWMutex guards all catalogs. Mutations (AddLocation,
//	Connect) take the write lock; every query takes the read lock, so any
//	number of route searches may run in parallel against a loaded Graph
//	(single writer / multiple readers).
//
// Errors:
//
//	ErrEmptyLocationID   - identifier is blank after normalization.
//	ErrLocationNotFound  - identifier is not in the directory.
//	ErrDuplicateLocation - AddLocation with an identifier already present.
//	ErrSelfLoop          - Connect(a, a).
//
// Directory and Counter describe the read-only capabilities consumed by the
// routing engine; *Graph implements both, and so does sqlstore.Store.
package core
