package builder

import (
	"fmt"

	"github.com/katalvlaran/wayfinder/core"
)

const (
	methodLocations   = "Locations"
	methodConnections = "Connections"
	methodChain       = "Chain"
)

// Locations returns a Constructor adding the given records verbatim, in order.
func Locations(locs ...core.Location) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, loc := range locs {
			if err := g.AddLocation(loc); err != nil {
				return fmt.Errorf("%s: AddLocation(%s): %w", methodLocations, loc.ID, err)
			}
		}
		return nil
	}
}

// Connections returns a Constructor connecting each pair, in order.
// Both endpoints must already exist.
func Connections(pairs ...core.Connection) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, c := range pairs {
			if err := g.Connect(c.A, c.B); err != nil {
				return fmt.Errorf("%s: Connect(%s–%s): %w", methodConnections, c.A, c.B, err)
			}
		}
		return nil
	}
}

// Chain returns a Constructor connecting consecutive ids: ids[0]–ids[1]–…
// It needs at least two ids (ErrTooFewVertices).
func Chain(ids ...string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if len(ids) < 2 {
			return fmt.Errorf("%s: %d ids < min=2: %w", methodChain, len(ids), ErrTooFewVertices)
		}
		for i := 1; i < len(ids); i++ {
			if err := g.Connect(ids[i-1], ids[i]); err != nil {
				return fmt.Errorf("%s: Connect(%s–%s): %w", methodChain, ids[i-1], ids[i], err)
			}
		}
		return nil
	}
}
