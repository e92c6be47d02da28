// File: methods_locations.go
// Role: Location lifecycle and identity queries (AddLocation, Location, Locations, LocationCount).
// Determinism:
//   - Locations() returns records in insertion order.
// Concurrency:
//   - AddLocation holds mu for writing; queries hold mu for reading.

package core

import "fmt"

// AddLocation registers loc under its normalized identifier.
//
// Implementation:
//   - Stage 1: Normalize loc.ID and reject blank identifiers (ErrEmptyLocationID).
//   - Stage 2: Acquire the write lock and reject duplicates (ErrDuplicateLocation).
//   - Stage 3: Store the record, append to the insertion order and bootstrap an empty neighbor list.
//
// Behavior highlights:
//   - The stored record carries the normalized ID; the caller's value is not retained.
//   - Unlike connections, re-adding a location is an error: an identifier is immutable once created.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddLocation(loc Location) error {
	loc.ID = NormalizeID(loc.ID)
	if loc.ID == "" {
		return ErrEmptyLocationID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.locations[loc.ID]; exists {
		return fmt.Errorf("AddLocation(%s): %w", loc.ID, ErrDuplicateLocation)
	}
	g.locations[loc.ID] = loc
	g.order = append(g.order, loc.ID)
	g.adjacency[loc.ID] = []string{}

	return nil
}

// HasLocation reports whether id (after normalization) is known. Blank ids are never known.
func (g *Graph) HasLocation(id string) bool {
	id = NormalizeID(id)
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.locations[id]

	return ok
}

// Location resolves id to its stored record.
//
// Errors:
//   - ErrEmptyLocationID: id is blank after normalization.
//   - ErrLocationNotFound: id is not registered.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Location(id string) (Location, error) {
	key := NormalizeID(id)
	if key == "" {
		return Location{}, ErrEmptyLocationID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	loc, ok := g.locations[key]
	if !ok {
		return Location{}, fmt.Errorf("%q: %w", key, ErrLocationNotFound)
	}

	return loc, nil
}

// Locations returns a copy of every location in insertion order.
// The error is always nil for the in-memory directory; it exists so that
// *Graph and database-backed directories share one method set.
func (g *Graph) Locations() ([]Location, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Location, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.locations[id])
	}

	return out, nil
}

// LocationCount returns the number of registered locations.
func (g *Graph) LocationCount() (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.locations), nil
}
