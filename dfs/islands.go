package dfs

import (
	"context"
	"sort"
)

// Islands partitions the locations of g into connected groups. Groups are
// ordered largest first, ties by the directory position of their first
// member; each group lists its IDs in directory order. A fully connected
// building yields exactly one island.
func Islands(ctx context.Context, g Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	locs, err := g.Locations()
	if err != nil {
		return nil, err
	}
	pos := make(map[string]int, len(locs))
	for i, loc := range locs {
		pos[loc.ID] = i
	}

	var islands [][]string
	_, err = DFS(g, "",
		WithContext(ctx),
		WithFullTraversal(),
		WithOnTree(func(string) {
			islands = append(islands, nil)
		}),
		WithOnVisit(func(id string) error {
			last := len(islands) - 1
			islands[last] = append(islands[last], id)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	for _, isl := range islands {
		sort.Slice(isl, func(i, j int) bool { return pos[isl[i]] < pos[isl[j]] })
	}
	sort.SliceStable(islands, func(i, j int) bool { return len(islands[i]) > len(islands[j]) })

	return islands, nil
}
