// File: methods_adjacent.go
// Role: Connection lifecycle and neighborhood queries (Connect, Neighbors, HasConnection, Connections).
// Determinism:
//   - Neighbors(id) lists adjacent IDs in the order the connections were inserted.
//   - Connections() lists pairs in insertion order, as declared.
// Concurrency:
//   - Connect holds mu for writing; queries hold mu for reading.

package core

import "fmt"

// Connect inserts the undirected connection a–b.
//
// Implementation:
//   - Stage 1: Normalize both identifiers; blank → ErrEmptyLocationID.
//   - Stage 2: Reject a == b (ErrSelfLoop).
//   - Stage 3: Under the write lock verify both endpoints exist (ErrLocationNotFound).
//   - Stage 4: If the pair is already connected (either orientation) return nil.
//   - Stage 5: Append b to a's list and a to b's list, record the Connection.
//
// Behavior highlights:
//   - Symmetric by construction: one call yields traversal in both directions.
//   - Idempotent for repeated pairs, so datasets may list a connection from both sides.
//
// Complexity:
//   - Time O(deg(a)) for the duplicate check, Space O(1) amortized.
func (g *Graph) Connect(a, b string) error {
	a, b = NormalizeID(a), NormalizeID(b)
	if a == "" || b == "" {
		return ErrEmptyLocationID
	}
	if a == b {
		return fmt.Errorf("Connect(%s, %s): %w", a, b, ErrSelfLoop)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range [...]string{a, b} {
		if _, ok := g.locations[id]; !ok {
			return fmt.Errorf("Connect(%s, %s): %q: %w", a, b, id, ErrLocationNotFound)
		}
	}
	if containsID(g.adjacency[a], b) {
		return nil
	}

	g.adjacency[a] = append(g.adjacency[a], b)
	g.adjacency[b] = append(g.adjacency[b], a)
	g.connections = append(g.connections, Connection{A: a, B: b})

	return nil
}

// Neighbors returns the identifiers adjacent to id.
//
// Behavior highlights:
//   - Returns a fresh slice (never nil) in connection insertion order; callers may modify it.
//   - An isolated location yields an empty slice and no error.
//
// Errors:
//   - ErrEmptyLocationID: id is blank after normalization.
//   - ErrLocationNotFound: id is not registered.
//
// Complexity:
//   - Time O(deg(id)), Space O(deg(id)).
func (g *Graph) Neighbors(id string) ([]string, error) {
	key := NormalizeID(id)
	if key == "" {
		return nil, ErrEmptyLocationID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.locations[key]; !ok {
		return nil, fmt.Errorf("%q: %w", key, ErrLocationNotFound)
	}
	adj := g.adjacency[key]
	out := make([]string, len(adj))
	copy(out, adj)

	return out, nil
}

// HasConnection reports whether a and b are directly connected (either orientation).
func (g *Graph) HasConnection(a, b string) bool {
	a, b = NormalizeID(a), NormalizeID(b)

	g.mu.RLock()
	defer g.mu.RUnlock()

	return containsID(g.adjacency[a], b)
}

// Connections returns a copy of all connections in insertion order.
func (g *Graph) Connections() []Connection {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Connection, len(g.connections))
	copy(out, g.connections)

	return out
}

// ConnectionCount returns the number of distinct connections.
func (g *Graph) ConnectionCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.connections)
}

// containsID is a linear membership scan; adjacency lists in building graphs are short.
func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
