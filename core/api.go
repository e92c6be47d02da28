// File: api.go
// Role: Read-only capability interfaces consumed by the routing engine, plus
// catalog summaries (Stats, GroupByLevel) shared by every Directory implementation.
// Policy:
//   - No search logic here; see package bfs and package route.

package core

import "sort"

// Directory is the read-only view the routing engine queries.
//
// Location resolves an identifier (normalized by the implementation) and
// returns an error wrapping ErrLocationNotFound for unknown ones.
// Neighbors returns the adjacent identifiers of a known location, an empty
// slice for an isolated one, and an error wrapping ErrLocationNotFound only
// when the identifier itself is unknown.
type Directory interface {
	Location(id string) (Location, error)
	Neighbors(id string) ([]string, error)
}

// Counter is implemented by directories that can report their size.
// The engine uses it to bound traversal by the number of known locations.
type Counter interface {
	LocationCount() (int, error)
}

// Catalog is a Directory that can also enumerate and summarize itself.
type Catalog interface {
	Directory
	Counter
	Locations() ([]Location, error)
	Stats() (Stats, error)
}

// Stats is a snapshot of directory sizes.
type Stats struct {
	Locations   int            `json:"locations"`
	Connections int            `json:"connections"`
	Levels      []int          `json:"levels"`
	Categories  map[string]int `json:"categories"`
}

// Stats summarizes the directory: location and connection counts, the sorted
// distinct levels, and the number of locations per category.
//
// Implementation:
//   - Stage 1: Snapshot locations and the connection count under the read lock.
//   - Stage 2: Delegate to Summarize outside the lock.
//
// Complexity:
//   - Time O(L log L), Space O(L).
func (g *Graph) Stats() (Stats, error) {
	g.mu.RLock()
	locs := make([]Location, 0, len(g.order))
	for _, id := range g.order {
		locs = append(locs, g.locations[id])
	}
	connections := len(g.connections)
	g.mu.RUnlock()

	return Summarize(locs, connections), nil
}

// Summarize builds a Stats value from a location snapshot and a connection count.
// Locations without a category are counted under "".
func Summarize(locs []Location, connections int) Stats {
	st := Stats{
		Locations:   len(locs),
		Connections: connections,
		Categories:  make(map[string]int),
	}
	levels := make([]int, 0, len(locs))
	for _, l := range locs {
		levels = append(levels, l.Level)
		st.Categories[l.Category]++
	}
	st.Levels = SortedLevels(levels)

	return st
}

// SortedLevels returns the distinct values of levels in ascending order.
// The input slice is not modified.
func SortedLevels(levels []int) []int {
	seen := make(map[int]struct{}, len(levels))
	out := make([]int, 0, len(levels))
	for _, lv := range levels {
		if _, ok := seen[lv]; ok {
			continue
		}
		seen[lv] = struct{}{}
		out = append(out, lv)
	}
	sort.Ints(out)

	return out
}

// GroupByLevel buckets locs by Level; each bucket is ordered by display name,
// then by ID for equal names.
func GroupByLevel(locs []Location) map[int][]Location {
	grouped := make(map[int][]Location)
	for _, l := range locs {
		grouped[l.Level] = append(grouped[l.Level], l)
	}
	for lv := range grouped {
		bucket := grouped[lv]
		sort.SliceStable(bucket, func(i, j int) bool {
			if bucket[i].DisplayName() != bucket[j].DisplayName() {
				return bucket[i].DisplayName() < bucket[j].DisplayName()
			}
			return bucket[i].ID < bucket[j].ID
		})
	}

	return grouped
}
